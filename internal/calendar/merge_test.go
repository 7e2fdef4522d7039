package calendar

import (
	"testing"

	"example.com/fitness4all/backend/internal/models"
)

func mealDay(title string) models.DayMeals {
	return models.DayMeals{Breakfast: &models.Meal{Title: title}}
}

func TestFilterWeeks(t *testing.T) {
	plan := models.MonthDocument{
		"1":  mealDay("avena"),
		"7":  mealDay("tortilla"),
		"10": mealDay("lentejas"),
		"31": mealDay("pescado"),
	}

	// January 2024: days 1-7 are week 1, day 10 is week 2, day 31 is week 5.
	filtered := FilterWeeks(plan, 2024, 1, []int{1})
	if len(filtered) != 2 {
		t.Fatalf("expected 2 days, got %d", len(filtered))
	}
	if _, ok := filtered["1"]; !ok {
		t.Fatal("expected day 1 to survive")
	}
	if _, ok := filtered["10"]; ok {
		t.Fatal("day 10 belongs to week 2 and must be excluded")
	}

	filtered = FilterWeeks(plan, 2024, 1, []int{2, 5})
	if len(filtered) != 2 {
		t.Fatalf("expected 2 days, got %d", len(filtered))
	}
	if _, ok := filtered["10"]; !ok {
		t.Fatal("expected day 10 to survive for week 2")
	}
	if _, ok := filtered["31"]; !ok {
		t.Fatal("expected day 31 to survive for week 5")
	}
}

func TestFilterWeeksDropsInvalidKeys(t *testing.T) {
	plan := models.MonthDocument{
		"0":   mealDay("a"),
		"30":  mealDay("b"),
		"uno": mealDay("c"),
		"-1":  mealDay("d"),
		"2.5": mealDay("e"),
		"29":  mealDay("f"),
		"2":   mealDay("g"),
	}

	// February 2024 has 29 days; "30" and the malformed keys must go.
	filtered := FilterWeeks(plan, 2024, 2, []int{1, 2, 3, 4, 5, 6})
	if len(filtered) != 2 {
		t.Fatalf("expected only valid day keys to survive, got %v", filtered)
	}
	if _, ok := filtered["2"]; !ok {
		t.Fatal("expected day 2 to survive")
	}
	if _, ok := filtered["29"]; !ok {
		t.Fatal("expected day 29 to survive")
	}
}

func TestFilterWeeksCanonicalizesDayKeys(t *testing.T) {
	plan := models.MonthDocument{
		"07": mealDay("gachas"),
		"+8": mealDay("crema"),
	}

	filtered := FilterWeeks(plan, 2024, 1, []int{1, 2})
	if len(filtered) != 2 {
		t.Fatalf("expected 2 days, got %v", filtered)
	}
	if _, ok := filtered["7"]; !ok {
		t.Fatal("expected \"07\" stored under key \"7\"")
	}
	if _, ok := filtered["8"]; !ok {
		t.Fatal("expected \"+8\" stored under key \"8\"")
	}
	if _, ok := filtered["07"]; ok {
		t.Fatal("non-canonical key \"07\" must not survive")
	}

	// A shadow key merges into the canonical day instead of duplicating it.
	merged := MergeImport(models.MonthDocument{"7": mealDay("tortilla")}, filtered)
	if len(merged) != 2 {
		t.Fatalf("expected days 7 and 8 only, got %v", merged)
	}
	if merged["7"].Breakfast.Title != "gachas" {
		t.Fatalf("expected day 7 replaced by import, got %+v", merged["7"])
	}
}

func TestSelectedDayKeys(t *testing.T) {
	keys := SelectedDayKeys(2024, 1, []int{2})
	expected := []string{"8", "9", "10", "11", "12", "13", "14"}
	if len(keys) != len(expected) {
		t.Fatalf("expected %d keys, got %v", len(expected), keys)
	}
	for _, key := range expected {
		if _, ok := keys[key]; !ok {
			t.Fatalf("expected key %s in week 2", key)
		}
	}
}

func TestMergeImport(t *testing.T) {
	existing := models.MonthDocument{
		"1": {Breakfast: &models.Meal{Title: "avena"}, Dinner: &models.Meal{Title: "sopa"}},
		"2": mealDay("tostadas"),
	}
	imported := models.MonthDocument{
		"1": mealDay("batido"),
		"5": mealDay("arroz"),
	}

	merged := MergeImport(existing, imported)

	if len(merged) != 3 {
		t.Fatalf("expected 3 days, got %d", len(merged))
	}
	// Imported days replace the existing entry wholesale.
	if merged["1"].Breakfast.Title != "batido" || merged["1"].Dinner != nil {
		t.Fatalf("expected day 1 replaced by import, got %+v", merged["1"])
	}
	// Untouched days survive as-is.
	if merged["2"].Breakfast.Title != "tostadas" {
		t.Fatalf("expected day 2 untouched, got %+v", merged["2"])
	}
	if merged["5"].Breakfast.Title != "arroz" {
		t.Fatalf("expected day 5 added, got %+v", merged["5"])
	}

	// Inputs are not mutated.
	if existing["1"].Breakfast.Title != "avena" || len(existing) != 2 {
		t.Fatal("existing document was mutated")
	}
	if len(imported) != 2 {
		t.Fatal("imported document was mutated")
	}
}

func TestMergeImportEmptyImportIsIdentity(t *testing.T) {
	existing := models.MonthDocument{"3": mealDay("fruta")}

	merged := MergeImport(existing, models.MonthDocument{})
	if len(merged) != 1 || merged["3"].Breakfast.Title != "fruta" {
		t.Fatalf("expected identity merge, got %v", merged)
	}
}

func TestSetMealPreservesOtherSlots(t *testing.T) {
	doc := models.MonthDocument{
		"4": {Lunch: &models.Meal{Title: "pasta"}},
	}

	updated := SetMeal(doc, "4", models.MealTypeDinner, models.Meal{Title: "ensalada"})

	if updated["4"].Lunch == nil || updated["4"].Lunch.Title != "pasta" {
		t.Fatalf("expected lunch preserved, got %+v", updated["4"])
	}
	if updated["4"].Dinner == nil || updated["4"].Dinner.Title != "ensalada" {
		t.Fatalf("expected dinner set, got %+v", updated["4"])
	}
	if doc["4"].Dinner != nil {
		t.Fatal("input document was mutated")
	}
}

func TestSetMealCreatesDay(t *testing.T) {
	updated := SetMeal(models.MonthDocument{}, "12", models.MealTypeBreakfast, models.Meal{Title: "huevos"})
	if updated["12"].Breakfast == nil || updated["12"].Breakfast.Title != "huevos" {
		t.Fatalf("expected new day 12, got %v", updated)
	}
}

func TestRemoveMeal(t *testing.T) {
	doc := models.MonthDocument{
		"6": {
			Breakfast: &models.Meal{Title: "avena"},
			Lunch:     &models.Meal{Title: "pollo"},
		},
	}

	updated := RemoveMeal(doc, "6", models.MealTypeBreakfast)
	if updated["6"].Breakfast != nil {
		t.Fatal("expected breakfast removed")
	}
	if updated["6"].Lunch == nil {
		t.Fatal("expected lunch preserved")
	}

	// Removing the last meal drops the day entirely.
	updated = RemoveMeal(updated, "6", models.MealTypeLunch)
	if _, ok := updated["6"]; ok {
		t.Fatal("expected emptied day to disappear")
	}
}

func TestRemoveMealMissingDay(t *testing.T) {
	doc := models.MonthDocument{"1": mealDay("avena")}

	updated := RemoveMeal(doc, "9", models.MealTypeLunch)
	if len(updated) != 1 {
		t.Fatalf("expected document unchanged, got %v", updated)
	}
}
