package civil

import "testing"

func TestNewMonth(t *testing.T) {
	m, err := NewMonth(6)
	if err != nil || m != June {
		t.Errorf("NewMonth(6) = (%v, %v), want June", m, err)
	}
	for _, n := range []int{0, 13, -1} {
		if _, err := NewMonth(n); err == nil {
			t.Errorf("NewMonth(%d) succeeded, want error", n)
		}
	}
}

func TestMonthNextPrevious(t *testing.T) {
	if got := December.Next(); got != January {
		t.Errorf("December.Next() = %s, want January", got)
	}
	if got := January.Previous(); got != December {
		t.Errorf("January.Previous() = %s, want December", got)
	}
	for m := January; m <= December; m++ {
		if got := m.Next().Previous(); got != m {
			t.Errorf("%s.Next().Previous() = %s", m, got)
		}
	}
}

func TestMonthString(t *testing.T) {
	if got := January.String(); got != "January" {
		t.Errorf("January.String() = %q", got)
	}
	if got := Month(0).String(); got != "Month(invalid)" {
		t.Errorf("Month(0).String() = %q", got)
	}
}
