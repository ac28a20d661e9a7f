package civil

import "testing"

func TestUnixEpoch(t *testing.T) {
	if got := UnixEpoch.UnixTimestamp(); got != 0 {
		t.Errorf("UnixEpoch.UnixTimestamp() = %d, want 0", got)
	}
	if got := UnixEpoch.String(); got != "1970-01-01 0:00:00.0 +00:00" {
		t.Errorf("UnixEpoch.String() = %q", got)
	}
}

func TestFromUnixTimestamp(t *testing.T) {
	cases := []struct {
		timestamp int64
		expected  string
	}{
		{0, "1970-01-01 0:00:00.0 +00:00"},
		{1_546_300_800, "2019-01-01 0:00:00.0 +00:00"},
		{1_546_300_799, "2018-12-31 23:59:59.0 +00:00"},
		{-1, "1969-12-31 23:59:59.0 +00:00"},
		{-86_400, "1969-12-31 0:00:00.0 +00:00"},
	}

	for _, tc := range cases {
		odt, err := FromUnixTimestamp(tc.timestamp)
		if err != nil {
			t.Errorf("FromUnixTimestamp(%d) failed: %v", tc.timestamp, err)
			continue
		}
		if got := odt.String(); got != tc.expected {
			t.Errorf("FromUnixTimestamp(%d) = %s, want %s", tc.timestamp, got, tc.expected)
		}
		if got := odt.UnixTimestamp(); got != tc.timestamp {
			t.Errorf("round trip of %d gave %d", tc.timestamp, got)
		}
	}
}

func TestFromUnixTimestampBounds(t *testing.T) {
	for _, ts := range []int64{minUnixTimestamp, maxUnixTimestamp} {
		odt, err := FromUnixTimestamp(ts)
		if err != nil {
			t.Errorf("FromUnixTimestamp(%d) failed at bound: %v", ts, err)
			continue
		}
		if got := odt.UnixTimestamp(); got != ts {
			t.Errorf("round trip at bound %d gave %d", ts, got)
		}
	}
	if _, err := FromUnixTimestamp(minUnixTimestamp - 1); err == nil {
		t.Error("FromUnixTimestamp below the supported range succeeded")
	}
	if _, err := FromUnixTimestamp(maxUnixTimestamp + 1); err == nil {
		t.Error("FromUnixTimestamp above the supported range succeeded")
	}
}

func TestFromUnixTimestampNanos(t *testing.T) {
	odt, err := FromUnixTimestampNanos(1_546_300_800_500_000_000)
	if err != nil {
		t.Fatalf("FromUnixTimestampNanos failed: %v", err)
	}
	if odt.UnixTimestamp() != 1_546_300_800 || odt.Nanosecond() != 500_000_000 {
		t.Errorf("got timestamp %d, nanosecond %d", odt.UnixTimestamp(), odt.Nanosecond())
	}
	if got := odt.UnixTimestampNanos(); got != 1_546_300_800_500_000_000 {
		t.Errorf("UnixTimestampNanos() = %d", got)
	}

	// Negative nanos floor toward the earlier second.
	odt, err = FromUnixTimestampNanos(-500_000_000)
	if err != nil {
		t.Fatalf("FromUnixTimestampNanos failed: %v", err)
	}
	if odt.UnixTimestamp() != -1 || odt.Nanosecond() != 500_000_000 {
		t.Errorf("got timestamp %d, nanosecond %d, want -1 and 5e8", odt.UnixTimestamp(), odt.Nanosecond())
	}
	if got := odt.UnixTimestampNanos(); got != -500_000_000 {
		t.Errorf("UnixTimestampNanos() = %d, want -500000000", got)
	}
}

func TestToOffsetPreservesInstant(t *testing.T) {
	odt, err := FromUnixTimestamp(1_546_300_800)
	if err != nil {
		t.Fatal(err)
	}

	east := odt.ToOffset(mustOffsetCal(5, 30, 0))
	if got := east.UnixTimestamp(); got != 1_546_300_800 {
		t.Errorf("ToOffset changed the instant: %d", got)
	}
	if got := east.String(); got != "2019-01-01 5:30:00.0 +05:30" {
		t.Errorf("east String() = %q", got)
	}

	west := odt.ToOffset(mustOffsetCal(-8, 0, 0))
	if got := west.String(); got != "2018-12-31 16:00:00.0 -08:00" {
		t.Errorf("west String() = %q", got)
	}
	if west.Day() != 31 || west.Hour() != 16 {
		t.Errorf("west accessors wrong: day %d, hour %d", west.Day(), west.Hour())
	}

	if back := west.ToUTC(); back.String() != "2019-01-01 0:00:00.0 +00:00" {
		t.Errorf("ToUTC() = %q", back.String())
	}
}

func TestOffsetDateTimeArithmetic(t *testing.T) {
	odt, err := FromUnixTimestamp(1_546_300_800)
	if err != nil {
		t.Fatal(err)
	}
	local := odt.ToOffset(mustOffsetCal(-8, 0, 0))

	sum, ok := local.CheckedAdd(Hours(27))
	if !ok {
		t.Fatal("CheckedAdd reported overflow")
	}
	if got := sum.UnixTimestamp(); got != 1_546_300_800+27*3_600 {
		t.Errorf("CheckedAdd(27h).UnixTimestamp() = %d", got)
	}
	if sum.Offset() != local.Offset() {
		t.Error("CheckedAdd changed the offset")
	}

	back, ok := sum.CheckedSub(Hours(27))
	if !ok || back.Sub(local) != ZeroDuration {
		t.Errorf("add then sub drifted by %v", back.Sub(local))
	}

	if d := sum.Sub(local); d != Hours(27) {
		t.Errorf("Sub = %v, want 27h", d)
	}

	// Instants compare across offsets.
	if d := local.Sub(odt); d != ZeroDuration {
		t.Errorf("same instant at different offsets differs by %v", d)
	}
}

func TestOffsetDateTimeSaturating(t *testing.T) {
	max, err := FromUnixTimestamp(maxUnixTimestamp)
	if err != nil {
		t.Fatal(err)
	}
	if got := max.SaturatingAdd(Days(1)); got.UnixTimestamp() != maxUnixTimestamp {
		t.Errorf("saturating add beyond the range moved to %d", got.UnixTimestamp())
	}

	min, err := FromUnixTimestamp(minUnixTimestamp)
	if err != nil {
		t.Fatal(err)
	}
	if got := min.SaturatingSub(Days(1)); got.UnixTimestamp() != minUnixTimestamp {
		t.Errorf("saturating sub beyond the range moved to %d", got.UnixTimestamp())
	}
}

func TestUnixTimestampBoundsValues(t *testing.T) {
	if minUnixTimestamp != -377_705_116_800 {
		t.Errorf("minUnixTimestamp = %d, want -377705116800", minUnixTimestamp)
	}
	if maxUnixTimestamp != 253_402_300_799 {
		t.Errorf("maxUnixTimestamp = %d, want 253402300799", maxUnixTimestamp)
	}
}
