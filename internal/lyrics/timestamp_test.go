package lyrics

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{"[00:00.00]", 0},
		{"[00:05.00]", 5000},
		{"[00:12.34]", 12340},
		{"[00:01.05]", 1050},
		{"[00:20.5]", 20500},
		{"[00:40.500]", 40500},
		{"[14:25.565]", 865565},
		{"[01:00:00]", 60000},
		{"[00:01.1234]", 1123},
		{"[120:00.00]", 7_200_000},
		{"not a timestamp", 0},
		{"[99999999999999999999:00.00]", 0},
		{"[00:99999999999999999999.00]", 0},
	}

	for _, tt := range tests {
		if got := ParseTimestamp(tt.token); got != tt.want {
			t.Errorf("ParseTimestamp(%q) = %d, want %d", tt.token, got, tt.want)
		}
	}
}

func TestParseTimestamps(t *testing.T) {
	got := ParseTimestamps("[00:10.00][00:15.00][01:30.25]")
	want := []int{10000, 15000, 90250}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		ms   int
		want string
	}{
		{0, "[00:00.00]"},
		{1000, "[00:01.00]"},
		{200001, "[03:20.00]"},
		{200111, "[03:20.11]"},
		{59999, "[00:59.99]"},
		{5_999_999, "[99:59.99]"},
		{6_000_000, "[100:00.00]"},
		{-5, "[00:00.00]"},
	}

	for _, tt := range tests {
		if got := FormatTimestamp(tt.ms); got != tt.want {
			t.Errorf("FormatTimestamp(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestTimestampCodec_Inverse(t *testing.T) {
	check := func(ms int) {
		want := ms - ms%10
		if got := ParseTimestamp(FormatTimestamp(ms)); got != want {
			t.Fatalf("ParseTimestamp(FormatTimestamp(%d)) = %d, want %d", ms, got, want)
		}
	}
	for ms := 0; ms <= 5_999_999; ms += 7 {
		check(ms)
	}
	for _, ms := range []int{1, 9, 10, 999, 59_999, 60_000, 5_999_990, 5_999_999} {
		check(ms)
	}
}

func TestTimestamp_Values(t *testing.T) {
	var zero Timestamp
	if zero.Valid() || zero != NoTimestamp {
		t.Error("zero Timestamp should be absent")
	}
	if zero.String() != "" {
		t.Errorf("absent String() = %q, want empty", zero.String())
	}

	ts := NewTimestamp(12340)
	if !ts.Valid() || ts.Millis() != 12340 {
		t.Errorf("NewTimestamp(12340) = %+v", ts)
	}
	if ts.Duration() != 12*time.Second+340*time.Millisecond {
		t.Errorf("Duration() = %v", ts.Duration())
	}
	if ts.String() != "[00:12.34]" {
		t.Errorf("String() = %q", ts.String())
	}

	if neg := NewTimestamp(-100); !neg.Valid() || neg.Millis() != 0 {
		t.Errorf("NewTimestamp(-100) = %+v, want present 0", neg)
	}
	if NewTimestamp(0) == NoTimestamp {
		t.Error("timestamp 0 must differ from no timestamp")
	}
}
