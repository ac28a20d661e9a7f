package clock

import (
	"errors"
	"testing"

	"github.com/coolbeans/tempora/pkg/civil"
)

func TestNowUTCInRange(t *testing.T) {
	now := NowUTC()
	if now.Offset() != civil.UTC {
		t.Errorf("NowUTC().Offset() = %v, want UTC", now.Offset())
	}
	if year := now.Year(); year < 2020 || year > civil.MaxYear {
		t.Errorf("NowUTC().Year() = %d, outside plausible range", year)
	}
}

func TestLocalOffsetGated(t *testing.T) {
	ForbidLocalOffset()
	_, err := LocalOffset(civil.UnixEpoch)
	if !errors.Is(err, civil.ErrIndeterminateOffset) {
		t.Errorf("LocalOffset without opt-in = %v, want ErrIndeterminateOffset", err)
	}
	if _, err := NowLocal(); !errors.Is(err, civil.ErrIndeterminateOffset) {
		t.Errorf("NowLocal without opt-in = %v, want ErrIndeterminateOffset", err)
	}
}

func TestLocalOffsetAllowed(t *testing.T) {
	AllowLocalOffset()
	defer ForbidLocalOffset()

	offset, err := LocalOffset(civil.UnixEpoch)
	if err != nil {
		t.Fatalf("LocalOffset after opt-in failed: %v", err)
	}
	if offset.WholeSeconds() < -86_399 || offset.WholeSeconds() > 86_399 {
		t.Errorf("LocalOffset = %v, outside representable range", offset)
	}

	now, err := NowLocal()
	if err != nil {
		t.Fatalf("NowLocal after opt-in failed: %v", err)
	}
	if drift := now.Sub(NowUTC()); drift.Abs().WholeSeconds() > 5 {
		t.Errorf("NowLocal and NowUTC denote instants %v apart", drift)
	}
}

func TestFixedClock(t *testing.T) {
	odt, err := civil.FromUnixTimestamp(1_546_300_800)
	if err != nil {
		t.Fatal(err)
	}
	east, err := civil.OffsetFromHMS(5, 30, 0)
	if err != nil {
		t.Fatal(err)
	}

	var c Clock = Fixed{At: odt.ToOffset(east)}
	got := c.NowUTC()
	if got.Offset() != civil.UTC {
		t.Errorf("Fixed.NowUTC().Offset() = %v, want UTC", got.Offset())
	}
	if got.UnixTimestamp() != 1_546_300_800 {
		t.Errorf("Fixed.NowUTC().UnixTimestamp() = %d, want 1546300800", got.UnixTimestamp())
	}

	c = System{}
	if c.NowUTC().Year() < 2020 {
		t.Error("System clock reports a year before 2020")
	}
}

func TestInstant(t *testing.T) {
	start := Now()
	if elapsed := start.Elapsed(); elapsed.IsNegative() {
		t.Errorf("Elapsed() = %v, want non-negative", elapsed)
	}

	later := Now()
	if d := later.Sub(start); d.IsNegative() {
		t.Errorf("later.Sub(start) = %v, want non-negative", d)
	}
	if d := start.Sub(start); !d.IsZero() {
		t.Errorf("start.Sub(start) = %v, want zero", d)
	}
}

func TestTimeFunc(t *testing.T) {
	elapsed, out := TimeFunc(func() int {
		total := 0
		for i := 0; i < 1_000; i++ {
			total += i
		}
		return total
	})
	if out != 499_500 {
		t.Errorf("TimeFunc result = %d, want 499500", out)
	}
	if elapsed.IsNegative() {
		t.Errorf("TimeFunc elapsed = %v, want non-negative", elapsed)
	}
}
