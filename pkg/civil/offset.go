package civil

import "fmt"

// UtcOffset is a signed offset from UTC, up to ±23:59:59. All three
// components always share one sign (or are zero): -1h -30m is representable,
// -1h +30m is not.
type UtcOffset struct {
	hours   int8
	minutes int8
	seconds int8
}

// UTC is the zero offset.
var UTC = UtcOffset{}

func offsetUnchecked(hours, minutes, seconds int) UtcOffset {
	return UtcOffset{int8(hours), int8(minutes), int8(seconds)}
}

// OffsetFromHMS builds a UtcOffset from hour, minute, and second components.
// Each component must be within ±23, ±59, and ±59 respectively. The signs of
// all components should match; when they do not, the smaller components have
// their signs flipped to agree with the larger ones, so OffsetFromHMS(1, -2,
// -3) yields +01:02:03.
func OffsetFromHMS(hours, minutes, seconds int) (UtcOffset, error) {
	if hours < -23 || hours > 23 {
		return UtcOffset{}, rangeError("hours", int64(hours), -23, 23)
	}
	if minutes < -59 || minutes > 59 {
		return UtcOffset{}, rangeError("minutes", int64(minutes), -59, 59)
	}
	if seconds < -59 || seconds > 59 {
		return UtcOffset{}, rangeError("seconds", int64(seconds), -59, 59)
	}

	if (hours > 0 && minutes < 0) || (hours < 0 && minutes > 0) {
		minutes = -minutes
	}
	if (hours > 0 && seconds < 0) || (hours < 0 && seconds > 0) ||
		(minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0) {
		seconds = -seconds
	}
	return offsetUnchecked(hours, minutes, seconds), nil
}

// OffsetFromWholeSeconds builds a UtcOffset from a total number of seconds,
// valid within ±86_399 (one second short of ±24 hours).
func OffsetFromWholeSeconds(seconds int) (UtcOffset, error) {
	if seconds < -86_399 || seconds > 86_399 {
		return UtcOffset{}, rangeError("seconds", int64(seconds), -86_399, 86_399)
	}
	return offsetUnchecked(seconds/3_600, (seconds/60)%60, seconds%60), nil
}

// AsHMS returns the hour, minute, and second components. All three share the
// same sign.
func (o UtcOffset) AsHMS() (hours, minutes, seconds int) {
	return int(o.hours), int(o.minutes), int(o.seconds)
}

// WholeHours returns the number of whole hours in the offset.
func (o UtcOffset) WholeHours() int {
	return int(o.hours)
}

// WholeMinutes returns the offset as a total number of minutes.
func (o UtcOffset) WholeMinutes() int {
	return int(o.hours)*60 + int(o.minutes)
}

// MinutesPastHour returns the minute component alone.
func (o UtcOffset) MinutesPastHour() int {
	return int(o.minutes)
}

// WholeSeconds returns the offset as a total number of seconds.
func (o UtcOffset) WholeSeconds() int {
	return int(o.hours)*3_600 + int(o.minutes)*60 + int(o.seconds)
}

// SecondsPastMinute returns the second component alone.
func (o UtcOffset) SecondsPastMinute() int {
	return int(o.seconds)
}

// IsUTC reports whether the offset is exactly zero. The zero offset is
// neither positive nor negative.
func (o UtcOffset) IsUTC() bool {
	return o.hours == 0 && o.minutes == 0 && o.seconds == 0
}

// IsPositive reports whether the offset is east of UTC.
func (o UtcOffset) IsPositive() bool {
	return o.hours > 0 || o.minutes > 0 || o.seconds > 0
}

// IsNegative reports whether the offset is west of UTC.
func (o UtcOffset) IsNegative() bool {
	return o.hours < 0 || o.minutes < 0 || o.seconds < 0
}

// Neg returns the offset with its direction flipped.
func (o UtcOffset) Neg() UtcOffset {
	return offsetUnchecked(-int(o.hours), -int(o.minutes), -int(o.seconds))
}

func (o UtcOffset) String() string {
	sign := "+"
	h, m, s := o.AsHMS()
	if o.IsNegative() {
		sign = "-"
		h, m, s = -h, -m, -s
	}
	if s != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}
