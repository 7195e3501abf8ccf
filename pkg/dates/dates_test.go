package dates

import (
	"testing"
	"time"
)

func TestAddDaysRollsOverMonths(t *testing.T) {
	cases := []struct {
		in   Key
		days int
		want Key
	}{
		{"2024-02-28", 1, "2024-02-29"}, // leap year
		{"2023-02-28", 1, "2023-03-01"}, // non-leap
		{"2024-12-31", 1, "2025-01-01"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2024-01-15", 0, "2024-01-15"},
	}
	for _, tc := range cases {
		if got := tc.in.AddDays(tc.days); got != tc.want {
			t.Errorf("%s + %d = %s, want %s", tc.in, tc.days, got, tc.want)
		}
	}
}

func TestAddDaysRoundTrips(t *testing.T) {
	d := Key("2024-07-17")
	for _, n := range []int{1, 7, 30, 365, 366, 1000, -1, -400} {
		if got := d.AddDays(n).AddDays(-n); got != d {
			t.Errorf("AddDays(%d) did not round-trip: got %s", n, got)
		}
	}
}

func TestParseRejectsMalformedKeys(t *testing.T) {
	for _, s := range []string{"", "2024-13-01", "2024-1-1", "20240101", "not a date"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", s)
		}
	}
	k, err := Parse("2024-02-29")
	if err != nil {
		t.Fatalf("Parse valid leap day: %v", err)
	}
	if k != "2024-02-29" {
		t.Errorf("Parse returned %s", k)
	}
}

func TestShiftMatchesGridMovement(t *testing.T) {
	d := Key("2024-05-15")
	if d.Shift(Left) != "2024-05-14" || d.Shift(Right) != "2024-05-16" {
		t.Error("horizontal shift should move one day")
	}
	if d.Shift(Up) != "2024-05-08" || d.Shift(Down) != "2024-05-22" {
		t.Error("vertical shift should move one week")
	}
}

func TestMonthGridLeadingBlanks(t *testing.T) {
	// May 2024 starts on a Wednesday (offset 3).
	grid := MonthGrid(2024, time.May)
	if len(grid) != 3+31 {
		t.Fatalf("grid length = %d, want %d", len(grid), 3+31)
	}
	for i := 0; i < 3; i++ {
		if grid[i] != None {
			t.Errorf("slot %d = %s, want blank", i, grid[i])
		}
	}
	if grid[3] != "2024-05-01" {
		t.Errorf("first day slot = %s", grid[3])
	}
	if grid[len(grid)-1] != "2024-05-31" {
		t.Errorf("last day slot = %s", grid[len(grid)-1])
	}
}

func TestDaysIn(t *testing.T) {
	if DaysIn(2024, time.February) != 29 {
		t.Error("2024 February should have 29 days")
	}
	if DaysIn(2023, time.February) != 28 {
		t.Error("2023 February should have 28 days")
	}
	if DaysIn(2024, time.April) != 30 {
		t.Error("April should have 30 days")
	}
}
