package civil

import "testing"

func TestIsLeapYear(t *testing.T) {
	cases := []struct {
		year     int
		expected bool
	}{
		{2000, true},
		{1900, false},
		{2004, true},
		{2100, false},
		{2019, false},
		{2020, true},
		{1600, true},
		{0, true},
		{-4, true},
		{-100, false},
		{-400, true},
	}

	for _, tc := range cases {
		if got := IsLeapYear(tc.year); got != tc.expected {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tc.year, got, tc.expected)
		}
	}
}

func TestDaysInYear(t *testing.T) {
	if got := DaysInYear(2020); got != 366 {
		t.Errorf("DaysInYear(2020) = %d, want 366", got)
	}
	if got := DaysInYear(2021); got != 365 {
		t.Errorf("DaysInYear(2021) = %d, want 365", got)
	}
}

func TestDaysInYearMonth(t *testing.T) {
	cases := []struct {
		year     int
		month    Month
		expected int
	}{
		{2020, February, 29},
		{2021, February, 28},
		{2021, January, 31},
		{2021, April, 30},
		{2021, June, 30},
		{2021, September, 30},
		{2021, November, 30},
		{2021, December, 31},
	}

	for _, tc := range cases {
		if got := DaysInYearMonth(tc.year, tc.month); got != tc.expected {
			t.Errorf("DaysInYearMonth(%d, %s) = %d, want %d", tc.year, tc.month, got, tc.expected)
		}
	}
}

func TestWeeksInYear(t *testing.T) {
	cases := []struct {
		year     int
		expected int
	}{
		{2019, 52},
		{2020, 53},
		{2021, 52},
		{2015, 53},
		{2004, 53},
		{1998, 53},
		{2000, 52},
		{1900, 52},
	}

	for _, tc := range cases {
		if got := WeeksInYear(tc.year); got != tc.expected {
			t.Errorf("WeeksInYear(%d) = %d, want %d", tc.year, got, tc.expected)
		}
	}
}

// The number of ISO weeks in a year must equal the number of Thursdays in
// it; checking the full 400-year Gregorian cycle pins the residue table.
func TestWeeksInYearFullCycle(t *testing.T) {
	for year := 2000; year < 2400; year++ {
		thursdays := 0
		for ordinal := 1; ordinal <= DaysInYear(year); ordinal++ {
			d, err := DateFromOrdinal(year, ordinal)
			if err != nil {
				t.Fatalf("DateFromOrdinal(%d, %d) failed: %v", year, ordinal, err)
			}
			if d.Weekday() == Thursday {
				thursdays++
			}
		}
		if got := WeeksInYear(year); got != thursdays {
			t.Errorf("WeeksInYear(%d) = %d, want %d (number of Thursdays)", year, got, thursdays)
		}
	}
}

func TestFloorDivMod(t *testing.T) {
	cases := []struct {
		a, b, div, mod int
	}{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{7, -3, -3, -2},
		{-7, -3, 2, -1},
		{6, 3, 2, 0},
		{-6, 3, -2, 0},
	}

	for _, tc := range cases {
		if got := floorDiv(tc.a, tc.b); got != tc.div {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.div)
		}
		if got := floorMod(tc.a, tc.b); got != tc.mod {
			t.Errorf("floorMod(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.mod)
		}
	}
}
