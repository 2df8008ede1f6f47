package cashbook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-03-01", want: NewDate(2025, time.March, 1)},
		{in: "2025-3-1", want: NewDate(2025, time.March, 1)},
		{in: "01-03-2025", wantErr: true},
		{in: "not a date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) accepted, want error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDateString(t *testing.T) {
	if got := NewDate(2025, time.March, 1).String(); got != "2025-03-01" {
		t.Errorf("String() = %q, want 2025-03-01", got)
	}
}

func TestDateAddNormalizes(t *testing.T) {
	got := NewDate(2025, time.January, 31).Add(1)
	if got != NewDate(2025, time.February, 1) {
		t.Errorf("Jan 31 + 1 = %s, want 2025-02-01", got)
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2025, time.March, 1)
	b := NewDate(2025, time.March, 2)
	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Errorf("ordering broken for %s vs %s", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Error("a date is before or after itself")
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.March, 1)
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(raw) != `"2025-03-01"` {
		t.Errorf("Marshal() = %s, want \"2025-03-01\"", raw)
	}
	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
