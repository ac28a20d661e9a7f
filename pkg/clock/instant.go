// Package clock is the non-pure boundary of the civil-time library: the
// monotonic clock used for measuring elapsed time, and the wall-clock "now"
// queries, including the guarded local-UTC-offset lookup.
package clock

import (
	"time"

	"github.com/coolbeans/tempora/pkg/civil"
)

// Instant is a reading of the process-relative monotonic clock. Instants are
// only meaningful relative to one another and must never be conflated with
// calendar time: there is deliberately no conversion between Instant and
// civil.OffsetDateTime.
type Instant struct {
	t time.Time
}

// Now returns the current monotonic clock reading.
func Now() Instant {
	return Instant{time.Now()}
}

// Elapsed returns the span from i to now.
func (i Instant) Elapsed() civil.Duration {
	return civil.FromStd(time.Since(i.t))
}

// Sub returns the signed span from other to i.
func (i Instant) Sub(other Instant) civil.Duration {
	return civil.FromStd(i.t.Sub(other.t))
}

// TimeFunc runs f and returns how long it took alongside f's result.
func TimeFunc[T any](f func() T) (civil.Duration, T) {
	start := Now()
	out := f()
	return start.Elapsed(), out
}
