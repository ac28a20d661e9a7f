// Package civil implements proleptic Gregorian calendar and civil-time
// arithmetic: dates, wall-clock times, UTC offsets, signed durations, and
// their compositions. All types are small immutable values; every public
// constructor validates its inputs and reports failures as *ComponentRange
// errors, and arithmetic that can overflow the supported range is offered in
// checked (ok-returning) and saturating variants.
package civil

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar. Years use astronomical numbering: year 0 exists and is 1 BCE.
func IsLeapYear(year int) bool {
	// Equivalent to the textbook rule (divisible by 4, except centuries not
	// divisible by 400) for all years, positive and negative.
	return year%4 == 0 && (year%25 != 0 || year%16 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInYearMonth returns the number of days in the given month of the given
// year: 28, 29, 30, or 31.
func DaysInYearMonth(year int, month Month) int {
	switch month {
	case February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}

// WeeksInYear returns the number of ISO-8601 weeks in the given year: 52 or
// 53. A year has 53 weeks exactly when January 1 or December 31 falls on a
// Thursday in the ISO calendar.
func WeeksInYear(year int) int {
	// The 53-week years repeat on the 400-year Gregorian cycle. The residue
	// set below is fixed; do not regenerate it by hand.
	switch floorMod(year, 400) {
	case 4, 9, 15, 20, 26, 32, 37, 43, 48, 54, 60, 65, 71, 76, 82, 88, 93,
		99, 105, 111, 116, 122, 128, 133, 139, 144, 150, 156, 161, 167, 172,
		178, 184, 189, 195, 201, 207, 212, 218, 224, 229, 235, 240, 246, 252,
		257, 263, 268, 274, 280, 285, 291, 296, 303, 308, 314, 320, 325, 331,
		336, 342, 348, 353, 359, 364, 370, 376, 381, 387, 392, 398:
		return 53
	default:
		return 52
	}
}

// floorDiv divides a by b, rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorDiv64 is floorDiv for int64 operands.
func floorDiv64(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a modulo b with the result taking the sign of b.
func floorMod(a, b int) int {
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		r += b
	}
	return r
}

// floorMod64 is floorMod for int64 operands.
func floorMod64(a, b int64) int64 {
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		r += b
	}
	return r
}
