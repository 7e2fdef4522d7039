package calendar

import (
	"strconv"

	"example.com/fitness4all/backend/internal/models"
)

// FilterWeeks keeps only the plan days whose week-of-month belongs to the
// selected set. Day keys that are not valid day numbers for the month are
// dropped, and kept keys are re-canonicalized so variants like "07" cannot
// shadow "7" in the stored document.
func FilterWeeks(plan models.MonthDocument, year, month int, weeks []int) models.MonthDocument {
	selected := make(map[int]struct{}, len(weeks))
	for _, week := range weeks {
		selected[week] = struct{}{}
	}

	filtered := make(models.MonthDocument, len(plan))
	for key, entry := range plan {
		day, err := strconv.Atoi(key)
		if err != nil || day < 1 || day > DaysInMonth(year, month) {
			continue
		}
		if _, ok := selected[WeekOfMonth(year, month, day)]; ok {
			filtered[strconv.Itoa(day)] = entry
		}
	}

	return filtered
}

// SelectedDayKeys returns the day keys of the month whose week-of-month is
// in the selected set.
func SelectedDayKeys(year, month int, weeks []int) map[string]struct{} {
	selected := make(map[int]struct{}, len(weeks))
	for _, week := range weeks {
		selected[week] = struct{}{}
	}

	keys := make(map[string]struct{})
	for day := 1; day <= DaysInMonth(year, month); day++ {
		if _, ok := selected[WeekOfMonth(year, month, day)]; ok {
			keys[strconv.Itoa(day)] = struct{}{}
		}
	}
	return keys
}

// MergeImport overlays an imported plan onto the existing month document.
// Imported days replace the existing entry wholesale; days absent from the
// import are left untouched. The input documents are not mutated.
func MergeImport(existing, imported models.MonthDocument) models.MonthDocument {
	merged := make(models.MonthDocument, len(existing)+len(imported))
	for key, entry := range existing {
		merged[key] = entry
	}
	for key, entry := range imported {
		merged[key] = entry
	}
	return merged
}

// SetMeal assigns one meal slot of one day, merging at the meal level.
func SetMeal(doc models.MonthDocument, dayKey string, mealType models.MealType, meal models.Meal) models.MonthDocument {
	out := cloneDocument(doc)
	entry := out[dayKey]

	switch mealType {
	case models.MealTypeBreakfast:
		entry.Breakfast = &meal
	case models.MealTypeLunch:
		entry.Lunch = &meal
	case models.MealTypeDinner:
		entry.Dinner = &meal
	}

	out[dayKey] = entry
	return out
}

// RemoveMeal clears one meal slot of one day. A day with no remaining meals is
// removed from the document entirely.
func RemoveMeal(doc models.MonthDocument, dayKey string, mealType models.MealType) models.MonthDocument {
	out := cloneDocument(doc)
	entry, ok := out[dayKey]
	if !ok {
		return out
	}

	switch mealType {
	case models.MealTypeBreakfast:
		entry.Breakfast = nil
	case models.MealTypeLunch:
		entry.Lunch = nil
	case models.MealTypeDinner:
		entry.Dinner = nil
	}

	if entry.IsEmpty() {
		delete(out, dayKey)
		return out
	}

	out[dayKey] = entry
	return out
}

func cloneDocument(doc models.MonthDocument) models.MonthDocument {
	out := make(models.MonthDocument, len(doc)+1)
	for key, entry := range doc {
		out[key] = entry
	}
	return out
}
