package civil

import "fmt"

// Time is a wall-clock time within a single day, with nanosecond precision.
// It carries no date or offset information.
type Time struct {
	hour       uint8
	minute     uint8
	second     uint8
	nanosecond uint32
}

// Midnight is 00:00:00.0, the first instant of a day.
var Midnight = Time{}

// maxTime is the last representable instant of a day.
var maxTime = Time{23, 59, 59, nanosPerSecond - 1}

func timeUnchecked(hour, minute, second, nanosecond int) Time {
	return Time{uint8(hour), uint8(minute), uint8(second), uint32(nanosecond)}
}

// TimeFromHMS builds a Time from hour, minute, and second components.
func TimeFromHMS(hour, minute, second int) (Time, error) {
	if err := validateHMS(hour, minute, second); err != nil {
		return Time{}, err
	}
	return timeUnchecked(hour, minute, second, 0), nil
}

// TimeFromHMSMilli builds a Time with millisecond precision.
func TimeFromHMSMilli(hour, minute, second, millisecond int) (Time, error) {
	if err := validateHMS(hour, minute, second); err != nil {
		return Time{}, err
	}
	if millisecond < 0 || millisecond > 999 {
		return Time{}, rangeError("millisecond", int64(millisecond), 0, 999)
	}
	return timeUnchecked(hour, minute, second, millisecond*1_000_000), nil
}

// TimeFromHMSMicro builds a Time with microsecond precision.
func TimeFromHMSMicro(hour, minute, second, microsecond int) (Time, error) {
	if err := validateHMS(hour, minute, second); err != nil {
		return Time{}, err
	}
	if microsecond < 0 || microsecond > 999_999 {
		return Time{}, rangeError("microsecond", int64(microsecond), 0, 999_999)
	}
	return timeUnchecked(hour, minute, second, microsecond*1_000), nil
}

// TimeFromHMSNano builds a Time with nanosecond precision.
func TimeFromHMSNano(hour, minute, second, nanosecond int) (Time, error) {
	if err := validateHMS(hour, minute, second); err != nil {
		return Time{}, err
	}
	if nanosecond < 0 || nanosecond > nanosPerSecond-1 {
		return Time{}, rangeError("nanosecond", int64(nanosecond), 0, nanosPerSecond-1)
	}
	return timeUnchecked(hour, minute, second, nanosecond), nil
}

// TimeFromHMS12 builds a Time from a twelve-hour clock reading. The hour must
// be 1 through 12; pm selects the afternoon period. The result is normalized
// to the 24-hour form, so 12 AM is 00 and 12 PM is 12.
func TimeFromHMS12(hour, minute, second int, pm bool) (Time, error) {
	if hour < 1 || hour > 12 {
		return Time{}, rangeError("hour", int64(hour), 1, 12)
	}
	switch {
	case pm && hour != 12:
		hour += 12
	case !pm && hour == 12:
		hour = 0
	}
	return TimeFromHMS(hour, minute, second)
}

func validateHMS(hour, minute, second int) error {
	if hour < 0 || hour > 23 {
		return rangeError("hour", int64(hour), 0, 23)
	}
	if minute < 0 || minute > 59 {
		return rangeError("minute", int64(minute), 0, 59)
	}
	if second < 0 || second > 59 {
		return rangeError("second", int64(second), 0, 59)
	}
	return nil
}

// Hour returns the hour, 0 through 23.
func (t Time) Hour() int { return int(t.hour) }

// Minute returns the minute, 0 through 59.
func (t Time) Minute() int { return int(t.minute) }

// Second returns the second, 0 through 59.
func (t Time) Second() int { return int(t.second) }

// Millisecond returns the sub-second portion in milliseconds, 0 through 999.
func (t Time) Millisecond() int { return int(t.nanosecond / 1_000_000) }

// Microsecond returns the sub-second portion in microseconds.
func (t Time) Microsecond() int { return int(t.nanosecond / 1_000) }

// Nanosecond returns the sub-second portion in nanoseconds.
func (t Time) Nanosecond() int { return int(t.nanosecond) }

// AsHMS returns the hour, minute, and second.
func (t Time) AsHMS() (hour, minute, second int) {
	return int(t.hour), int(t.minute), int(t.second)
}

// AdjustingAdd adds the sub-day portion of d to t, wrapping within 24 hours.
// The returned adjustment is +1 when the result crossed into the next day,
// -1 when it crossed into the previous day, and 0 otherwise. DateTime uses
// the adjustment to roll its Date component.
func (t Time) AdjustingAdd(d Duration) (adjustment int, out Time) {
	nanoseconds := int(t.nanosecond) + d.SubsecNanoseconds()
	seconds := int(t.second) + int(d.WholeSeconds()%60)
	minutes := int(t.minute) + int(d.WholeMinutes()%60)
	hours := int(t.hour) + int(d.WholeHours()%24)

	if nanoseconds >= nanosPerSecond {
		nanoseconds -= nanosPerSecond
		seconds++
	} else if nanoseconds < 0 {
		nanoseconds += nanosPerSecond
		seconds--
	}
	if seconds >= 60 {
		seconds -= 60
		minutes++
	} else if seconds < 0 {
		seconds += 60
		minutes--
	}
	if minutes >= 60 {
		minutes -= 60
		hours++
	} else if minutes < 0 {
		minutes += 60
		hours--
	}
	if hours >= 24 {
		hours -= 24
		adjustment = 1
	} else if hours < 0 {
		hours += 24
		adjustment = -1
	}
	return adjustment, timeUnchecked(hours, minutes, seconds, nanoseconds)
}

// AdjustingSub subtracts the sub-day portion of d from t, wrapping within 24
// hours and reporting the day adjustment as AdjustingAdd does.
func (t Time) AdjustingSub(d Duration) (adjustment int, out Time) {
	nanoseconds := int(t.nanosecond) - d.SubsecNanoseconds()
	seconds := int(t.second) - int(d.WholeSeconds()%60)
	minutes := int(t.minute) - int(d.WholeMinutes()%60)
	hours := int(t.hour) - int(d.WholeHours()%24)

	if nanoseconds >= nanosPerSecond {
		nanoseconds -= nanosPerSecond
		seconds++
	} else if nanoseconds < 0 {
		nanoseconds += nanosPerSecond
		seconds--
	}
	if seconds >= 60 {
		seconds -= 60
		minutes++
	} else if seconds < 0 {
		seconds += 60
		minutes--
	}
	if minutes >= 60 {
		minutes -= 60
		hours++
	} else if minutes < 0 {
		minutes += 60
		hours--
	}
	if hours >= 24 {
		hours -= 24
		adjustment = 1
	} else if hours < 0 {
		hours += 24
		adjustment = -1
	}
	return adjustment, timeUnchecked(hours, minutes, seconds, nanoseconds)
}

// secondsOfDay returns the whole seconds elapsed since midnight.
func (t Time) secondsOfDay() int64 {
	return int64(t.hour)*3_600 + int64(t.minute)*60 + int64(t.second)
}

func (t Time) String() string {
	if t.nanosecond == 0 {
		return fmt.Sprintf("%d:%02d:%02d.0", t.hour, t.minute, t.second)
	}
	value, width := int(t.nanosecond), 9
	for value%10 == 0 {
		value /= 10
		width--
	}
	return fmt.Sprintf("%d:%02d:%02d.%0*d", t.hour, t.minute, t.second, width, value)
}
