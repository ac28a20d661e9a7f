package clock

import (
	"sync/atomic"
	"time"

	"github.com/coolbeans/tempora/pkg/civil"
)

// localOffsetAllowed gates local-offset queries. Determining the local UTC
// offset reads process-wide timezone state, which on Unix is not safe to do
// concurrently with environment mutation from other threads. Callers that
// can guarantee this must opt in; until then LocalOffset fails with
// civil.ErrIndeterminateOffset rather than risk reading torn state.
var localOffsetAllowed atomic.Bool

// AllowLocalOffset declares that the process will not mutate its environment
// concurrently with local-offset queries, enabling LocalOffset and NowLocal.
func AllowLocalOffset() {
	localOffsetAllowed.Store(true)
}

// ForbidLocalOffset revokes AllowLocalOffset; subsequent local-offset
// queries fail with civil.ErrIndeterminateOffset.
func ForbidLocalOffset() {
	localOffsetAllowed.Store(false)
}

// NowUTC returns the current instant as an OffsetDateTime at UTC.
func NowUTC() civil.OffsetDateTime {
	now := time.Now()
	odt, err := civil.FromUnixTimestampNanos(now.UnixNano())
	if err != nil {
		// The system clock is outside the supported calendar range; the
		// nearest representable instant is the best available answer.
		if now.Unix() > 0 {
			return civil.MaxDate.Midnight().AssumeUTC()
		}
		return civil.MinDate.Midnight().AssumeUTC()
	}
	return odt
}

// LocalOffset returns the system's UTC offset at the given instant. It fails
// with civil.ErrIndeterminateOffset when local-offset queries have not been
// enabled via AllowLocalOffset or when the platform query yields an offset
// outside the representable range.
func LocalOffset(at civil.OffsetDateTime) (civil.UtcOffset, error) {
	if !localOffsetAllowed.Load() {
		return civil.UTC, civil.ErrIndeterminateOffset
	}
	_, seconds := time.Unix(at.UnixTimestamp(), 0).In(time.Local).Zone()
	offset, err := civil.OffsetFromWholeSeconds(seconds)
	if err != nil {
		return civil.UTC, civil.ErrIndeterminateOffset
	}
	return offset, nil
}

// NowLocal returns the current instant under the system's local UTC offset.
// It fails with civil.ErrIndeterminateOffset under the same conditions as
// LocalOffset.
func NowLocal() (civil.OffsetDateTime, error) {
	now := NowUTC()
	offset, err := LocalOffset(now)
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	return now.ToOffset(offset), nil
}

// Clock supplies the current time; it is the seam tests use to substitute a
// fixed instant for the system clock.
type Clock interface {
	NowUTC() civil.OffsetDateTime
}

// System is the Clock backed by the operating system's time source.
type System struct{}

// NowUTC implements Clock.
func (System) NowUTC() civil.OffsetDateTime {
	return NowUTC()
}

// Fixed is a Clock frozen at a single instant.
type Fixed struct {
	At civil.OffsetDateTime
}

// NowUTC implements Clock.
func (f Fixed) NowUTC() civil.OffsetDateTime {
	return f.At.ToUTC()
}
