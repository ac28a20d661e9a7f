package civil

// unixEpochJulianDay is the Julian day of 1970-01-01.
const unixEpochJulianDay = 2_440_588

// OffsetDateTime is an instant in time, stored as the UTC wall-clock reading
// plus the UTC offset under which it is viewed. All arithmetic keeps the
// offset fixed while the wall-clock fields roll; ToOffset reinterprets the
// same instant under another offset.
type OffsetDateTime struct {
	utc    DateTime
	offset UtcOffset
}

// UnixEpoch is 1970-01-01 00:00:00 UTC.
var UnixEpoch = MustNewDate(1970, January, 1).Midnight().AssumeUTC()

// minUnixTimestamp and maxUnixTimestamp bound the timestamps representable
// within the supported date range.
var (
	minUnixTimestamp = MinDate.Midnight().AssumeUTC().UnixTimestamp()
	maxUnixTimestamp = MaxDate.WithTime(maxTime).AssumeUTC().UnixTimestamp()
)

// MustNewDate is NewDate for inputs known to be valid; it panics otherwise.
// Intended for package-level constants and tests.
func MustNewDate(year int, month Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromUnixTimestamp builds the OffsetDateTime for the given number of
// seconds since the Unix epoch, with the offset fixed at UTC. Timestamps
// outside the supported date range fail with a ComponentRange.
func FromUnixTimestamp(timestamp int64) (OffsetDateTime, error) {
	if timestamp < minUnixTimestamp || timestamp > maxUnixTimestamp {
		return OffsetDateTime{}, rangeError("timestamp", timestamp, minUnixTimestamp, maxUnixTimestamp)
	}
	date := dateFromJulianDayUnchecked(unixEpochJulianDay + int(floorDiv64(timestamp, 86_400)))
	secs := floorMod64(timestamp, 86_400)
	time := timeUnchecked(int(secs/3_600), int(secs/60)%60, int(secs%60), 0)
	return OffsetDateTime{utc: NewDateTime(date, time), offset: UTC}, nil
}

// FromUnixTimestampNanos is FromUnixTimestamp at nanosecond resolution.
func FromUnixTimestampNanos(nanos int64) (OffsetDateTime, error) {
	odt, err := FromUnixTimestamp(floorDiv64(nanos, nanosPerSecond))
	if err != nil {
		return OffsetDateTime{}, err
	}
	t := odt.utc.time
	odt.utc.time = timeUnchecked(int(t.hour), int(t.minute), int(t.second), int(floorMod64(nanos, nanosPerSecond)))
	return odt, nil
}

// Offset returns the UTC offset under which the instant is viewed.
func (o OffsetDateTime) Offset() UtcOffset { return o.offset }

// ToOffset reinterprets the same instant under a new offset. The visible
// date and time fields shift by the offset delta; UnixTimestamp is
// unchanged. Contrast with DateTime.AssumeOffset, which keeps the fields and
// changes the instant.
func (o OffsetDateTime) ToOffset(offset UtcOffset) OffsetDateTime {
	return OffsetDateTime{utc: o.utc, offset: offset}
}

// ToUTC is ToOffset(UTC).
func (o OffsetDateTime) ToUTC() OffsetDateTime {
	return o.ToOffset(UTC)
}

// DateTime returns the wall-clock reading under the stored offset.
func (o OffsetDateTime) DateTime() DateTime {
	return o.utc.utcToOffset(o.offset)
}

// Date returns the date under the stored offset.
func (o OffsetDateTime) Date() Date { return o.DateTime().Date() }

// Time returns the wall-clock time under the stored offset.
func (o OffsetDateTime) Time() Time { return o.DateTime().Time() }

// Year returns the year under the stored offset.
func (o OffsetDateTime) Year() int { return o.DateTime().Year() }

// Month returns the month under the stored offset.
func (o OffsetDateTime) Month() Month { return o.DateTime().Month() }

// Day returns the day of month under the stored offset.
func (o OffsetDateTime) Day() int { return o.DateTime().Day() }

// Weekday returns the day of the week under the stored offset.
func (o OffsetDateTime) Weekday() Weekday { return o.DateTime().Weekday() }

// Hour returns the hour under the stored offset.
func (o OffsetDateTime) Hour() int { return o.DateTime().Hour() }

// Minute returns the minute under the stored offset.
func (o OffsetDateTime) Minute() int { return o.DateTime().Minute() }

// Second returns the second under the stored offset.
func (o OffsetDateTime) Second() int { return o.DateTime().Second() }

// Nanosecond returns the sub-second portion in nanoseconds.
func (o OffsetDateTime) Nanosecond() int { return o.utc.Nanosecond() }

// UnixTimestamp returns the number of whole seconds since the Unix epoch.
// Sub-second nanoseconds are truncated.
func (o OffsetDateTime) UnixTimestamp() int64 {
	days := int64(o.utc.date.ToJulianDay()-unixEpochJulianDay) * 86_400
	return days + o.utc.time.secondsOfDay()
}

// UnixTimestampNanos returns the number of nanoseconds since the Unix epoch,
// saturating at the int64 bounds for instants beyond their reach.
func (o OffsetDateTime) UnixTimestampNanos() int64 {
	ns, ok := checkedMul64(o.UnixTimestamp(), nanosPerSecond)
	if !ok {
		return saturate64(o.UnixTimestamp())
	}
	out, ok := checkedAdd64(ns, int64(o.utc.Nanosecond()))
	if !ok {
		return saturate64(o.UnixTimestamp())
	}
	return out
}

// CheckedAdd computes o + duration with the offset fixed, reporting false
// when the result falls outside the supported range.
func (o OffsetDateTime) CheckedAdd(duration Duration) (OffsetDateTime, bool) {
	utc, ok := o.utc.CheckedAdd(duration)
	if !ok {
		return OffsetDateTime{}, false
	}
	return OffsetDateTime{utc: utc, offset: o.offset}, true
}

// CheckedSub computes o - duration with the offset fixed, reporting false
// when the result falls outside the supported range.
func (o OffsetDateTime) CheckedSub(duration Duration) (OffsetDateTime, bool) {
	utc, ok := o.utc.CheckedSub(duration)
	if !ok {
		return OffsetDateTime{}, false
	}
	return OffsetDateTime{utc: utc, offset: o.offset}, true
}

// SaturatingAdd computes o + duration, clamping the underlying instant to
// the representable range on overflow.
func (o OffsetDateTime) SaturatingAdd(duration Duration) OffsetDateTime {
	return OffsetDateTime{utc: o.utc.SaturatingAdd(duration), offset: o.offset}
}

// SaturatingSub computes o - duration, clamping the underlying instant to
// the representable range on overflow.
func (o OffsetDateTime) SaturatingSub(duration Duration) OffsetDateTime {
	return OffsetDateTime{utc: o.utc.SaturatingSub(duration), offset: o.offset}
}

// Sub returns the signed span from other to o. Offsets play no part: the
// difference is between the instants.
func (o OffsetDateTime) Sub(other OffsetDateTime) Duration {
	return o.utc.Sub(other.utc)
}

func (o OffsetDateTime) String() string {
	return o.DateTime().String() + " " + o.offset.String()
}
