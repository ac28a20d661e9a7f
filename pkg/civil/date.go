package civil

import "fmt"

// MinYear and MaxYear bound the supported range of calendar years.
const (
	MinYear = -9999
	MaxYear = 9999
)

// Date is a calendar date in the proleptic Gregorian calendar, within years
// MinYear through MaxYear. The backing value packs the year and the ordinal
// day-of-year, so day arithmetic reduces to Julian day arithmetic with no
// calendar-aware carries.
type Date struct {
	// value is (year << 9) | ordinal. The year occupies the upper bits as a
	// signed quantity; the ordinal fits in the low 9 bits (1..=366).
	value int32
}

// MinDate and MaxDate are the earliest and latest representable dates.
var (
	MinDate = dateFromOrdinalUnchecked(MinYear, 1)
	MaxDate = dateFromOrdinalUnchecked(MaxYear, DaysInYear(MaxYear))
)

// dateFromOrdinalUnchecked packs a year and ordinal the caller has already
// validated. Trusted internal callers only.
func dateFromOrdinalUnchecked(year, ordinal int) Date {
	return Date{int32(year)<<9 | int32(ordinal)}
}

// Cumulative days through the end of the previous month, for common and leap
// years.
var daysCumulative = [2][12]int{
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334},
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335},
}

func leapIndex(year int) int {
	if IsLeapYear(year) {
		return 1
	}
	return 0
}

// NewDate builds a Date from a year, month, and day of month. The day must
// exist in that month of that year.
func NewDate(year int, month Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, rangeError("year", int64(year), MinYear, MaxYear)
	}
	if month < January || month > December {
		return Date{}, rangeError("month", int64(month), 1, 12)
	}
	if max := DaysInYearMonth(year, month); day < 1 || day > max {
		return Date{}, conditionalRangeError("day", int64(day), 1, int64(max))
	}
	return dateFromOrdinalUnchecked(year, daysCumulative[leapIndex(year)][month-1]+day), nil
}

// DateFromOrdinal builds a Date from a year and 1-indexed day of year.
func DateFromOrdinal(year, ordinal int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, rangeError("year", int64(year), MinYear, MaxYear)
	}
	if max := DaysInYear(year); ordinal < 1 || ordinal > max {
		return Date{}, conditionalRangeError("ordinal", int64(ordinal), 1, int64(max))
	}
	return dateFromOrdinalUnchecked(year, ordinal), nil
}

// DateFromISOWeek builds a Date from an ISO-8601 week date: the ISO year,
// the week number (1 through WeeksInYear(year)), and the weekday. Week 1 is
// the week containing the first Thursday of the year, so the resulting
// calendar year can differ from the ISO year near year boundaries.
func DateFromISOWeek(year, week int, weekday Weekday) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, rangeError("year", int64(year), MinYear, MaxYear)
	}
	if max := WeeksInYear(year); week < 1 || week > max {
		return Date{}, conditionalRangeError("week", int64(week), 1, int64(max))
	}

	adjYear := year - 1
	raw := 365*adjYear + floorDiv(adjYear, 4) - floorDiv(adjYear, 100) + floorDiv(adjYear, 400)
	var jan4 int
	switch raw % 7 {
	case -6, 1:
		jan4 = 8
	case -5, 2:
		jan4 = 9
	case -4, 3:
		jan4 = 10
	case -3, 4:
		jan4 = 4
	case -2, 5:
		jan4 = 5
	case -1, 6:
		jan4 = 6
	default:
		jan4 = 7
	}

	ordinal := week*7 + weekday.NumberFromMonday() - jan4
	switch {
	case ordinal <= 0:
		return dateFromOrdinalUnchecked(year-1, ordinal+DaysInYear(year-1)), nil
	case ordinal > DaysInYear(year):
		return dateFromOrdinalUnchecked(year+1, ordinal-DaysInYear(year)), nil
	default:
		return dateFromOrdinalUnchecked(year, ordinal), nil
	}
}

// DateFromJulianDay builds a Date from a Julian day number, validating that
// it falls within the supported year range.
func DateFromJulianDay(julianDay int) (Date, error) {
	if min, max := MinDate.ToJulianDay(), MaxDate.ToJulianDay(); julianDay < min || julianDay > max {
		return Date{}, rangeError("julian_day", int64(julianDay), int64(min), int64(max))
	}
	return dateFromJulianDayUnchecked(julianDay), nil
}

// dateFromJulianDayUnchecked converts a Julian day the caller knows to be in
// range. The algorithm is Peter Baum's Gregorian conversion.
func dateFromJulianDayUnchecked(julianDay int) Date {
	z := julianDay - 1_721_119
	g := 100*int64(z) - 25
	a := int(g / 3_652_425)
	b := a - a/4
	year := int(floorDiv64(100*int64(b)+g, 36_525))
	ordinal := b + z - int(floorDiv64(36_525*int64(year), 100))

	if IsLeapYear(year) {
		ordinal += 60
		if ordinal >= 367 {
			ordinal -= 366
			year++
		} else if ordinal < 1 {
			ordinal += 366
			year--
		}
	} else {
		ordinal += 59
		if ordinal >= 366 {
			ordinal -= 365
			year++
		} else if ordinal < 1 {
			ordinal += 365
			year--
		}
	}
	return dateFromOrdinalUnchecked(year, ordinal)
}

// Year returns the calendar year.
func (d Date) Year() int {
	return int(d.value >> 9)
}

// Ordinal returns the 1-indexed day of year, 1 through 366.
func (d Date) Ordinal() int {
	return int(d.value & 0x1FF)
}

// monthDay resolves the month and day of month from the ordinal.
func (d Date) monthDay() (Month, int) {
	days := daysCumulative[leapIndex(d.Year())]
	ordinal := d.Ordinal()
	for m := December; m > January; m-- {
		if ordinal > days[m-1] {
			return m, ordinal - days[m-1]
		}
	}
	return January, ordinal
}

// Month returns the month.
func (d Date) Month() Month {
	month, _ := d.monthDay()
	return month
}

// Day returns the day of month, 1 through 31.
func (d Date) Day() int {
	_, day := d.monthDay()
	return day
}

// ToCalendarDate returns the year, month, and day of month.
func (d Date) ToCalendarDate() (year int, month Month, day int) {
	month, day = d.monthDay()
	return d.Year(), month, day
}

// ToOrdinalDate returns the year and 1-indexed day of year.
func (d Date) ToOrdinalDate() (year, ordinal int) {
	return d.Year(), d.Ordinal()
}

// isoYearWeek returns the ISO year and week number.
func (d Date) isoYearWeek() (isoYear, week int) {
	year, ordinal := d.ToOrdinalDate()
	switch week = (ordinal + 10 - d.Weekday().NumberFromMonday()) / 7; {
	case week == 0:
		return year - 1, WeeksInYear(year - 1)
	case week == 53 && WeeksInYear(year) == 52:
		return year + 1, 1
	default:
		return year, week
	}
}

// ISOWeek returns the ISO-8601 week number, 1 through 53.
func (d Date) ISOWeek() int {
	_, week := d.isoYearWeek()
	return week
}

// ToISOWeekDate returns the ISO year, week number, and weekday.
func (d Date) ToISOWeekDate() (isoYear, week int, weekday Weekday) {
	isoYear, week = d.isoYearWeek()
	return isoYear, week, d.Weekday()
}

// SundayBasedWeek returns the week number where week 1 begins on the first
// Sunday of the year, 0 through 53.
func (d Date) SundayBasedWeek() int {
	return (d.Ordinal() - d.Weekday().DaysFromSunday() + 6) / 7
}

// MondayBasedWeek returns the week number where week 1 begins on the first
// Monday of the year, 0 through 53.
func (d Date) MondayBasedWeek() int {
	return (d.Ordinal() - d.Weekday().DaysFromMonday() + 6) / 7
}

// Weekday returns the day of the week.
func (d Date) Weekday() Weekday {
	switch d.ToJulianDay() % 7 {
	case -6, 1:
		return Tuesday
	case -5, 2:
		return Wednesday
	case -4, 3:
		return Thursday
	case -3, 4:
		return Friday
	case -2, 5:
		return Saturday
	case -1, 6:
		return Sunday
	default:
		return Monday
	}
}

// ToJulianDay returns the Julian day number, via Peter Baum's algorithm.
func (d Date) ToJulianDay() int {
	year := d.Year() - 1
	return d.Ordinal() + 365*year + floorDiv(year, 4) - floorDiv(year, 100) +
		floorDiv(year, 400) + 1_721_425
}

// NextDay returns the following date, or ok=false at MaxDate.
func (d Date) NextDay() (Date, bool) {
	if d.Ordinal() == DaysInYear(d.Year()) {
		if d == MaxDate {
			return Date{}, false
		}
		return dateFromOrdinalUnchecked(d.Year()+1, 1), true
	}
	return Date{d.value + 1}, true
}

// PreviousDay returns the preceding date, or ok=false at MinDate.
func (d Date) PreviousDay() (Date, bool) {
	if d.Ordinal() != 1 {
		return Date{d.value - 1}, true
	}
	if d == MinDate {
		return Date{}, false
	}
	return dateFromOrdinalUnchecked(d.Year()-1, DaysInYear(d.Year()-1)), true
}

// CheckedAdd computes d plus the whole-day portion of duration, reporting
// false when the result falls outside the supported range. Sub-day portions
// of the duration are truncated: adding 23 hours moves nothing.
func (d Date) CheckedAdd(duration Duration) (Date, bool) {
	wholeDays := duration.WholeDays()
	julianDay := int64(d.ToJulianDay()) + wholeDays
	if julianDay < int64(MinDate.ToJulianDay()) || julianDay > int64(MaxDate.ToJulianDay()) {
		return Date{}, false
	}
	return dateFromJulianDayUnchecked(int(julianDay)), true
}

// CheckedSub computes d minus the whole-day portion of duration, reporting
// false when the result falls outside the supported range.
func (d Date) CheckedSub(duration Duration) (Date, bool) {
	wholeDays := duration.WholeDays()
	julianDay := int64(d.ToJulianDay()) - wholeDays
	if julianDay < int64(MinDate.ToJulianDay()) || julianDay > int64(MaxDate.ToJulianDay()) {
		return Date{}, false
	}
	return dateFromJulianDayUnchecked(int(julianDay)), true
}

// SaturatingAdd computes d plus the whole-day portion of duration, clamping
// to MinDate/MaxDate on overflow. Clamping is silent and intentional; use
// CheckedAdd to detect it.
func (d Date) SaturatingAdd(duration Duration) Date {
	if out, ok := d.CheckedAdd(duration); ok {
		return out
	}
	if duration.IsNegative() {
		return MinDate
	}
	return MaxDate
}

// SaturatingSub computes d minus the whole-day portion of duration, clamping
// to MinDate/MaxDate on overflow.
func (d Date) SaturatingSub(duration Duration) Date {
	if out, ok := d.CheckedSub(duration); ok {
		return out
	}
	if duration.IsNegative() {
		return MaxDate
	}
	return MinDate
}

// Midnight pairs d with 00:00:00.0 as a DateTime.
func (d Date) Midnight() DateTime {
	return NewDateTime(d, Midnight)
}

// WithTime pairs d with the given Time as a DateTime.
func (d Date) WithTime(t Time) DateTime {
	return NewDateTime(d, t)
}

// WithHMS pairs d with the given wall-clock components, validating them.
func (d Date) WithHMS(hour, minute, second int) (DateTime, error) {
	t, err := TimeFromHMS(hour, minute, second)
	if err != nil {
		return DateTime{}, err
	}
	return NewDateTime(d, t), nil
}

// WithHMSMilli is WithHMS with millisecond precision.
func (d Date) WithHMSMilli(hour, minute, second, millisecond int) (DateTime, error) {
	t, err := TimeFromHMSMilli(hour, minute, second, millisecond)
	if err != nil {
		return DateTime{}, err
	}
	return NewDateTime(d, t), nil
}

// WithHMSMicro is WithHMS with microsecond precision.
func (d Date) WithHMSMicro(hour, minute, second, microsecond int) (DateTime, error) {
	t, err := TimeFromHMSMicro(hour, minute, second, microsecond)
	if err != nil {
		return DateTime{}, err
	}
	return NewDateTime(d, t), nil
}

// WithHMSNano is WithHMS with nanosecond precision.
func (d Date) WithHMSNano(hour, minute, second, nanosecond int) (DateTime, error) {
	t, err := TimeFromHMSNano(hour, minute, second, nanosecond)
	if err != nil {
		return DateTime{}, err
	}
	return NewDateTime(d, t), nil
}

func (d Date) String() string {
	year, month, day := d.ToCalendarDate()
	if year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -year, month, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
