package calendar

import "testing"

func TestMonthKey(t *testing.T) {
	if got := MonthKey(2024, 1); got != "2024-1" {
		t.Fatalf("expected 2024-1, got %s", got)
	}
	if got := MonthKey(2025, 12); got != "2025-12" {
		t.Fatalf("expected 2025-12, got %s", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2024, 1, 31},
		{2024, 2, 29},
		{2023, 2, 28},
		{2024, 4, 30},
		{2024, 12, 31},
	}

	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Fatalf("DaysInMonth(%d, %d) = %d, expected %d", tc.year, tc.month, got, tc.want)
		}
	}
}

// January 2024 starts on a Monday, so the Monday list is fully regular.
func TestWeekdayDaysJanuary2024(t *testing.T) {
	days := WeekdayDays(2024, 1)

	mondays := days["Lunes"]
	expected := []int{1, 8, 15, 22, 29}
	if len(mondays) != len(expected) {
		t.Fatalf("expected %d mondays, got %v", len(expected), mondays)
	}
	for i, day := range expected {
		if mondays[i] != day {
			t.Fatalf("expected monday %d at index %d, got %d", day, i, mondays[i])
		}
	}
}

func TestWeekdayDaysPartition(t *testing.T) {
	for _, tc := range []struct{ year, month int }{
		{2024, 1},
		{2024, 2},
		{2026, 8},
		{2023, 12},
	} {
		days := WeekdayDays(tc.year, tc.month)

		if len(days) != 7 {
			t.Fatalf("%d-%d: expected 7 weekday keys, got %d", tc.year, tc.month, len(days))
		}
		for _, name := range WeekdayNames {
			if _, ok := days[name]; !ok {
				t.Fatalf("%d-%d: missing weekday %s", tc.year, tc.month, name)
			}
		}

		seen := make(map[int]bool)
		for name, list := range days {
			prev := 0
			for _, day := range list {
				if day <= prev {
					t.Fatalf("%d-%d: %s list is not ascending: %v", tc.year, tc.month, name, list)
				}
				prev = day
				if seen[day] {
					t.Fatalf("%d-%d: day %d appears twice", tc.year, tc.month, day)
				}
				seen[day] = true
			}
		}

		total := DaysInMonth(tc.year, tc.month)
		if len(seen) != total {
			t.Fatalf("%d-%d: expected %d days covered, got %d", tc.year, tc.month, total, len(seen))
		}
		for day := 1; day <= total; day++ {
			if !seen[day] {
				t.Fatalf("%d-%d: day %d not covered", tc.year, tc.month, day)
			}
		}
	}
}

func TestWeekOfMonth(t *testing.T) {
	// January 2024: Monday the 1st, so weeks align with 1-7, 8-14, ...
	if got := WeekOfMonth(2024, 1, 1); got != 1 {
		t.Fatalf("expected week 1 for day 1, got %d", got)
	}
	if got := WeekOfMonth(2024, 1, 7); got != 1 {
		t.Fatalf("expected week 1 for day 7, got %d", got)
	}
	if got := WeekOfMonth(2024, 1, 10); got != 2 {
		t.Fatalf("expected week 2 for day 10, got %d", got)
	}
	if got := WeekOfMonth(2024, 1, 31); got != 5 {
		t.Fatalf("expected week 5 for day 31, got %d", got)
	}

	// September 2024 starts on a Sunday; the partial first week is week 1.
	if got := WeekOfMonth(2024, 9, 1); got != 1 {
		t.Fatalf("expected week 1 for Sep 1, got %d", got)
	}
	if got := WeekOfMonth(2024, 9, 2); got != 2 {
		t.Fatalf("expected week 2 for Sep 2, got %d", got)
	}
}

func TestWeekOfMonthMonotonic(t *testing.T) {
	for _, tc := range []struct{ year, month int }{
		{2024, 2},
		{2026, 8},
	} {
		prev := WeekOfMonth(tc.year, tc.month, 1)
		if prev != 1 {
			t.Fatalf("%d-%d: first day must be week 1, got %d", tc.year, tc.month, prev)
		}
		for day := 2; day <= DaysInMonth(tc.year, tc.month); day++ {
			week := WeekOfMonth(tc.year, tc.month, day)
			if week < prev || week > prev+1 {
				t.Fatalf("%d-%d: week jumped from %d to %d at day %d", tc.year, tc.month, prev, week, day)
			}
			prev = week
		}
	}
}
