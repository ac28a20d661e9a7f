package civil

import (
	"fmt"
	"math"
	"time"
)

const nanosPerSecond = 1_000_000_000

// Duration is a signed span of time with nanosecond precision, stored as
// whole seconds plus a sub-second nanosecond remainder.
//
// The representation is sign-normalized: the nanosecond field always has the
// same sign as the seconds field, or is zero. Every constructor and
// arithmetic operation maintains this invariant; a violation would be an
// internal bug, not a user error.
type Duration struct {
	seconds     int64
	nanoseconds int32
}

// MinDuration and MaxDuration are the most negative and most positive
// representable durations.
var (
	MinDuration = Duration{math.MinInt64, -(nanosPerSecond - 1)}
	MaxDuration = Duration{math.MaxInt64, nanosPerSecond - 1}
)

// ZeroDuration is the zero-length duration.
var ZeroDuration = Duration{}

func durationUnchecked(seconds int64, nanoseconds int32) Duration {
	return Duration{seconds, nanoseconds}
}

// NewDuration builds a Duration from seconds and nanoseconds. Nanoseconds of
// magnitude one second or more wrap into the seconds field, and the pair is
// sign-normalized. The result saturates at MinDuration/MaxDuration if the
// wrap overflows the seconds field.
func NewDuration(seconds int64, nanoseconds int64) Duration {
	carry := nanoseconds / nanosPerSecond
	nsec := int32(nanoseconds % nanosPerSecond)
	sec, ok := checkedAdd64(seconds, carry)
	if !ok {
		if seconds > 0 {
			return MaxDuration
		}
		return MinDuration
	}
	if sec > 0 && nsec < 0 {
		sec--
		nsec += nanosPerSecond
	} else if sec < 0 && nsec > 0 {
		sec++
		nsec -= nanosPerSecond
	}
	return durationUnchecked(sec, nsec)
}

// Weeks returns a Duration of the given number of weeks, saturating on
// overflow.
func Weeks(weeks int64) Duration {
	sec, ok := checkedMul64(weeks, 604_800)
	if !ok {
		return saturateSign(weeks)
	}
	return durationUnchecked(sec, 0)
}

// Days returns a Duration of the given number of days, saturating on
// overflow.
func Days(days int64) Duration {
	sec, ok := checkedMul64(days, 86_400)
	if !ok {
		return saturateSign(days)
	}
	return durationUnchecked(sec, 0)
}

// Hours returns a Duration of the given number of hours, saturating on
// overflow.
func Hours(hours int64) Duration {
	sec, ok := checkedMul64(hours, 3_600)
	if !ok {
		return saturateSign(hours)
	}
	return durationUnchecked(sec, 0)
}

// Minutes returns a Duration of the given number of minutes, saturating on
// overflow.
func Minutes(minutes int64) Duration {
	sec, ok := checkedMul64(minutes, 60)
	if !ok {
		return saturateSign(minutes)
	}
	return durationUnchecked(sec, 0)
}

// Seconds returns a Duration of the given number of seconds.
func Seconds(seconds int64) Duration {
	return durationUnchecked(seconds, 0)
}

// Milliseconds returns a Duration of the given number of milliseconds.
func Milliseconds(milliseconds int64) Duration {
	return durationUnchecked(milliseconds/1_000, int32(milliseconds%1_000)*1_000_000)
}

// Microseconds returns a Duration of the given number of microseconds.
func Microseconds(microseconds int64) Duration {
	return durationUnchecked(microseconds/1_000_000, int32(microseconds%1_000_000)*1_000)
}

// Nanoseconds returns a Duration of the given number of nanoseconds.
func Nanoseconds(nanoseconds int64) Duration {
	return durationUnchecked(nanoseconds/nanosPerSecond, int32(nanoseconds%nanosPerSecond))
}

// SecondsFloat64 converts a floating-point second count to a Duration. The
// conversion loses precision for very large magnitudes; values beyond the
// representable range saturate and NaN maps to the zero duration.
func SecondsFloat64(seconds float64) Duration {
	if math.IsNaN(seconds) {
		return ZeroDuration
	}
	if seconds >= math.MaxInt64 {
		return MaxDuration
	}
	if seconds <= math.MinInt64 {
		return MinDuration
	}
	sec := int64(seconds)
	nsec := int64(math.Round((seconds - float64(sec)) * nanosPerSecond))
	return NewDuration(sec, nsec)
}

// SecondsFloat32 is SecondsFloat64 for float32 input.
func SecondsFloat32(seconds float32) Duration {
	return SecondsFloat64(float64(seconds))
}

// FromStd converts a standard library time.Duration to a Duration. The
// conversion is exact.
func FromStd(d time.Duration) Duration {
	return durationUnchecked(int64(d)/nanosPerSecond, int32(int64(d)%nanosPerSecond))
}

// ToStd converts d to a standard library time.Duration. The second return
// value is false when d does not fit in time.Duration's nanosecond range.
func (d Duration) ToStd() (time.Duration, bool) {
	total, ok := checkedMul64(d.seconds, nanosPerSecond)
	if !ok {
		return 0, false
	}
	total, ok = checkedAdd64(total, int64(d.nanoseconds))
	if !ok {
		return 0, false
	}
	return time.Duration(total), true
}

// IsZero reports whether d has zero length.
func (d Duration) IsZero() bool {
	return d.seconds == 0 && d.nanoseconds == 0
}

// IsPositive reports whether d is strictly positive.
func (d Duration) IsPositive() bool {
	return d.seconds > 0 || d.nanoseconds > 0
}

// IsNegative reports whether d is strictly negative.
func (d Duration) IsNegative() bool {
	return d.seconds < 0 || d.nanoseconds < 0
}

// Abs returns the absolute value of d. MinDuration, whose magnitude is not
// representable, saturates to MaxDuration.
func (d Duration) Abs() Duration {
	if !d.IsNegative() {
		return d
	}
	return d.Neg()
}

// Neg returns d with its sign flipped. MinDuration, whose negation is not
// representable, saturates to MaxDuration.
func (d Duration) Neg() Duration {
	if d.seconds == math.MinInt64 {
		return MaxDuration
	}
	return durationUnchecked(-d.seconds, -d.nanoseconds)
}

// AbsUnsigned returns the absolute value of d as a non-negative standard
// library time.Duration, for interop with APIs that take unsigned spans.
// Magnitudes beyond time.Duration's range saturate to its maximum.
func (d Duration) AbsUnsigned() time.Duration {
	std, ok := d.Abs().ToStd()
	if !ok {
		return time.Duration(math.MaxInt64)
	}
	return std
}

// WholeWeeks returns the number of whole weeks in d, truncated toward zero.
func (d Duration) WholeWeeks() int64 {
	return d.seconds / 604_800
}

// WholeDays returns the number of whole days in d, truncated toward zero.
func (d Duration) WholeDays() int64 {
	return d.seconds / 86_400
}

// WholeHours returns the number of whole hours in d, truncated toward zero.
func (d Duration) WholeHours() int64 {
	return d.seconds / 3_600
}

// WholeMinutes returns the number of whole minutes in d, truncated toward
// zero.
func (d Duration) WholeMinutes() int64 {
	return d.seconds / 60
}

// WholeSeconds returns the number of whole seconds in d, truncated toward
// zero.
func (d Duration) WholeSeconds() int64 {
	return d.seconds
}

// WholeMilliseconds returns the number of whole milliseconds in d,
// saturating at the int64 bounds.
func (d Duration) WholeMilliseconds() int64 {
	ms, ok := checkedMul64(d.seconds, 1_000)
	if !ok {
		return saturate64(d.seconds)
	}
	out, ok := checkedAdd64(ms, int64(d.nanoseconds/1_000_000))
	if !ok {
		return saturate64(d.seconds)
	}
	return out
}

// WholeMicroseconds returns the number of whole microseconds in d,
// saturating at the int64 bounds.
func (d Duration) WholeMicroseconds() int64 {
	us, ok := checkedMul64(d.seconds, 1_000_000)
	if !ok {
		return saturate64(d.seconds)
	}
	out, ok := checkedAdd64(us, int64(d.nanoseconds/1_000))
	if !ok {
		return saturate64(d.seconds)
	}
	return out
}

// WholeNanoseconds returns the number of nanoseconds in d, saturating at the
// int64 bounds.
func (d Duration) WholeNanoseconds() int64 {
	ns, ok := checkedMul64(d.seconds, nanosPerSecond)
	if !ok {
		return saturate64(d.seconds)
	}
	out, ok := checkedAdd64(ns, int64(d.nanoseconds))
	if !ok {
		return saturate64(d.seconds)
	}
	return out
}

// SubsecMilliseconds returns the sub-second portion of d in milliseconds.
// The sign matches the duration's sign; the value is in -999 through 999.
func (d Duration) SubsecMilliseconds() int {
	return int(d.nanoseconds / 1_000_000)
}

// SubsecMicroseconds returns the sub-second portion of d in microseconds.
func (d Duration) SubsecMicroseconds() int {
	return int(d.nanoseconds / 1_000)
}

// SubsecNanoseconds returns the sub-second portion of d in nanoseconds.
func (d Duration) SubsecNanoseconds() int {
	return int(d.nanoseconds)
}

// AsSecondsF64 returns d as a floating-point number of seconds.
func (d Duration) AsSecondsF64() float64 {
	return float64(d.seconds) + float64(d.nanoseconds)/nanosPerSecond
}

// AsSecondsF32 returns d as a single-precision number of seconds.
func (d Duration) AsSecondsF32() float32 {
	return float32(d.AsSecondsF64())
}

// CheckedAdd computes d + rhs, reporting false on overflow.
func (d Duration) CheckedAdd(rhs Duration) (Duration, bool) {
	seconds, ok := checkedAdd64(d.seconds, rhs.seconds)
	if !ok {
		return Duration{}, false
	}
	nanoseconds := d.nanoseconds + rhs.nanoseconds
	if nanoseconds >= nanosPerSecond || (seconds < 0 && nanoseconds > 0) {
		nanoseconds -= nanosPerSecond
		if seconds, ok = checkedAdd64(seconds, 1); !ok {
			return Duration{}, false
		}
	} else if nanoseconds <= -nanosPerSecond || (seconds > 0 && nanoseconds < 0) {
		nanoseconds += nanosPerSecond
		if seconds, ok = checkedAdd64(seconds, -1); !ok {
			return Duration{}, false
		}
	}
	return durationUnchecked(seconds, nanoseconds), true
}

// CheckedSub computes d - rhs, reporting false on overflow.
func (d Duration) CheckedSub(rhs Duration) (Duration, bool) {
	seconds, ok := checkedSub64(d.seconds, rhs.seconds)
	if !ok {
		return Duration{}, false
	}
	nanoseconds := d.nanoseconds - rhs.nanoseconds
	if nanoseconds >= nanosPerSecond || (seconds < 0 && nanoseconds > 0) {
		nanoseconds -= nanosPerSecond
		if seconds, ok = checkedAdd64(seconds, 1); !ok {
			return Duration{}, false
		}
	} else if nanoseconds <= -nanosPerSecond || (seconds > 0 && nanoseconds < 0) {
		nanoseconds += nanosPerSecond
		if seconds, ok = checkedAdd64(seconds, -1); !ok {
			return Duration{}, false
		}
	}
	return durationUnchecked(seconds, nanoseconds), true
}

// CheckedMul computes d * rhs, reporting false on overflow.
func (d Duration) CheckedMul(rhs int) (Duration, bool) {
	totalNanos := int64(d.nanoseconds) * int64(rhs)
	extraSecs := totalNanos / nanosPerSecond
	nanoseconds := int32(totalNanos % nanosPerSecond)
	seconds, ok := checkedMul64(d.seconds, int64(rhs))
	if !ok {
		return Duration{}, false
	}
	seconds, ok = checkedAdd64(seconds, extraSecs)
	if !ok {
		return Duration{}, false
	}
	return durationUnchecked(seconds, nanoseconds), true
}

// CheckedDiv computes d / rhs, reporting false when rhs is zero.
func (d Duration) CheckedDiv(rhs int) (Duration, bool) {
	if rhs == 0 {
		return Duration{}, false
	}
	seconds := d.seconds / int64(rhs)
	carry := d.seconds - seconds*int64(rhs)
	extraNanos := carry * nanosPerSecond / int64(rhs)
	nanoseconds := int32(int64(d.nanoseconds)/int64(rhs) + extraNanos)
	return durationUnchecked(seconds, nanoseconds), true
}

// SaturatingAdd computes d + rhs, clamping to MinDuration/MaxDuration on
// overflow. Clamping is silent and intentional; use CheckedAdd to detect it.
func (d Duration) SaturatingAdd(rhs Duration) Duration {
	if sum, ok := d.CheckedAdd(rhs); ok {
		return sum
	}
	if d.seconds > 0 || (d.seconds == 0 && rhs.seconds > 0) {
		return MaxDuration
	}
	return MinDuration
}

// SaturatingSub computes d - rhs, clamping to MinDuration/MaxDuration on
// overflow.
func (d Duration) SaturatingSub(rhs Duration) Duration {
	if diff, ok := d.CheckedSub(rhs); ok {
		return diff
	}
	if d.seconds > 0 || (d.seconds == 0 && rhs.seconds < 0) {
		return MaxDuration
	}
	return MinDuration
}

// SaturatingMul computes d * rhs, clamping to MinDuration/MaxDuration on
// overflow.
func (d Duration) SaturatingMul(rhs int) Duration {
	if product, ok := d.CheckedMul(rhs); ok {
		return product
	}
	if (d.IsPositive() && rhs > 0) || (d.IsNegative() && rhs < 0) {
		return MaxDuration
	}
	return MinDuration
}

func (d Duration) String() string {
	if d.nanoseconds == 0 {
		return fmt.Sprintf("%ds", d.seconds)
	}
	sign := ""
	sec, nsec := d.seconds, d.nanoseconds
	if d.IsNegative() {
		sign = "-"
		sec, nsec = -sec, -nsec
	}
	s := fmt.Sprintf("%s%d.%09d", sign, sec, nsec)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	return s + "s"
}

func saturateSign(n int64) Duration {
	if n > 0 {
		return MaxDuration
	}
	return MinDuration
}

func saturate64(sign int64) int64 {
	if sign > 0 {
		return math.MaxInt64
	}
	return math.MinInt64
}

func checkedAdd64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

func checkedSub64(a, b int64) (int64, bool) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, false
	}
	return diff, true
}

func checkedMul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product := a * b
	if product/b != a || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	return product, true
}
