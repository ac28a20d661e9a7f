package civil

// DateTime is a calendar date paired with a wall-clock time, carrying no
// offset information.
type DateTime struct {
	date Date
	time Time
}

// MinDateTime and MaxDateTime are the earliest and latest representable
// datetimes.
var (
	MinDateTime = NewDateTime(MinDate, Midnight)
	MaxDateTime = NewDateTime(MaxDate, maxTime)
)

// NewDateTime pairs a Date and a Time. Both inputs are already valid, so
// there is no failure mode.
func NewDateTime(date Date, time Time) DateTime {
	return DateTime{date, time}
}

// Date returns the date component.
func (dt DateTime) Date() Date { return dt.date }

// Time returns the time component.
func (dt DateTime) Time() Time { return dt.time }

// Year returns the calendar year.
func (dt DateTime) Year() int { return dt.date.Year() }

// Month returns the month.
func (dt DateTime) Month() Month { return dt.date.Month() }

// Day returns the day of month.
func (dt DateTime) Day() int { return dt.date.Day() }

// Ordinal returns the day of year.
func (dt DateTime) Ordinal() int { return dt.date.Ordinal() }

// ISOWeek returns the ISO-8601 week number.
func (dt DateTime) ISOWeek() int { return dt.date.ISOWeek() }

// Weekday returns the day of the week.
func (dt DateTime) Weekday() Weekday { return dt.date.Weekday() }

// ToJulianDay returns the Julian day of the date component.
func (dt DateTime) ToJulianDay() int { return dt.date.ToJulianDay() }

// Hour returns the hour.
func (dt DateTime) Hour() int { return dt.time.Hour() }

// Minute returns the minute.
func (dt DateTime) Minute() int { return dt.time.Minute() }

// Second returns the second.
func (dt DateTime) Second() int { return dt.time.Second() }

// Millisecond returns the sub-second portion in milliseconds.
func (dt DateTime) Millisecond() int { return dt.time.Millisecond() }

// Microsecond returns the sub-second portion in microseconds.
func (dt DateTime) Microsecond() int { return dt.time.Microsecond() }

// Nanosecond returns the sub-second portion in nanoseconds.
func (dt DateTime) Nanosecond() int { return dt.time.Nanosecond() }

// CheckedAdd computes dt + duration, reporting false when the result falls
// outside the supported range. The time component wraps within the day and
// the crossing rolls the date.
func (dt DateTime) CheckedAdd(duration Duration) (DateTime, bool) {
	adjustment, t := dt.time.AdjustingAdd(duration)
	date, ok := dt.date.CheckedAdd(duration)
	if !ok {
		return DateTime{}, false
	}
	switch adjustment {
	case -1:
		if date, ok = date.PreviousDay(); !ok {
			return DateTime{}, false
		}
	case 1:
		if date, ok = date.NextDay(); !ok {
			return DateTime{}, false
		}
	}
	return DateTime{date, t}, true
}

// CheckedSub computes dt - duration, reporting false when the result falls
// outside the supported range.
func (dt DateTime) CheckedSub(duration Duration) (DateTime, bool) {
	adjustment, t := dt.time.AdjustingSub(duration)
	date, ok := dt.date.CheckedSub(duration)
	if !ok {
		return DateTime{}, false
	}
	switch adjustment {
	case -1:
		if date, ok = date.PreviousDay(); !ok {
			return DateTime{}, false
		}
	case 1:
		if date, ok = date.NextDay(); !ok {
			return DateTime{}, false
		}
	}
	return DateTime{date, t}, true
}

// SaturatingAdd computes dt + duration, clamping to MinDateTime/MaxDateTime
// on overflow. Clamping is silent and intentional; use CheckedAdd to detect
// it.
func (dt DateTime) SaturatingAdd(duration Duration) DateTime {
	if out, ok := dt.CheckedAdd(duration); ok {
		return out
	}
	if duration.IsNegative() {
		return MinDateTime
	}
	return MaxDateTime
}

// SaturatingSub computes dt - duration, clamping to MinDateTime/MaxDateTime
// on overflow.
func (dt DateTime) SaturatingSub(duration Duration) DateTime {
	if out, ok := dt.CheckedSub(duration); ok {
		return out
	}
	if duration.IsNegative() {
		return MaxDateTime
	}
	return MinDateTime
}

// Sub returns the signed span from other to dt.
func (dt DateTime) Sub(other DateTime) Duration {
	seconds := int64(dt.date.ToJulianDay()-other.date.ToJulianDay())*86_400 +
		dt.time.secondsOfDay() - other.time.secondsOfDay()
	nanoseconds := int64(dt.time.Nanosecond() - other.time.Nanosecond())
	return NewDuration(seconds, nanoseconds)
}

// ReplaceDate returns dt with the date swapped and the time preserved.
func (dt DateTime) ReplaceDate(date Date) DateTime {
	return DateTime{date, dt.time}
}

// ReplaceTime returns dt with the time swapped and the date preserved.
func (dt DateTime) ReplaceTime(time Time) DateTime {
	return DateTime{dt.date, time}
}

// AssumeUTC interprets dt as a wall-clock reading in UTC, producing an
// OffsetDateTime. The visible fields are unchanged.
func (dt DateTime) AssumeUTC() OffsetDateTime {
	return OffsetDateTime{utc: dt, offset: UTC}
}

// AssumeOffset interprets dt as a wall-clock reading at the given offset,
// producing an OffsetDateTime. The visible fields are unchanged; the instant
// it denotes depends on the offset.
func (dt DateTime) AssumeOffset(offset UtcOffset) OffsetDateTime {
	return OffsetDateTime{utc: dt.offsetToUTC(offset), offset: offset}
}

// offsetToUTC shifts dt, read as local wall-clock time at offset, to the
// equivalent UTC wall-clock reading. The cascade may step outside the
// supported year range by up to a day; such values stay internal.
func (dt DateTime) offsetToUTC(offset UtcOffset) DateTime {
	second := dt.Second() - offset.SecondsPastMinute()
	minute := dt.Minute() - offset.MinutesPastHour()
	hour := dt.Hour() - offset.WholeHours()
	year, ordinal := dt.date.ToOrdinalDate()

	if second >= 60 {
		second -= 60
		minute++
	} else if second < 0 {
		second += 60
		minute--
	}
	if minute >= 60 {
		minute -= 60
		hour++
	} else if minute < 0 {
		minute += 60
		hour--
	}
	if hour >= 24 {
		hour -= 24
		ordinal++
	} else if hour < 0 {
		hour += 24
		ordinal--
	}
	if ordinal > DaysInYear(year) {
		year++
		ordinal = 1
	} else if ordinal == 0 {
		year--
		ordinal = DaysInYear(year)
	}

	return DateTime{
		date: dateFromOrdinalUnchecked(year, ordinal),
		time: timeUnchecked(hour, minute, second, dt.Nanosecond()),
	}
}

// utcToOffset shifts dt, read as a UTC wall-clock reading, to the equivalent
// local wall-clock reading at offset.
func (dt DateTime) utcToOffset(offset UtcOffset) DateTime {
	return dt.offsetToUTC(offset.Neg())
}

func (dt DateTime) String() string {
	return dt.date.String() + " " + dt.time.String()
}
