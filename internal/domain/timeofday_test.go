package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "07:30", want: 450},
		{name: "last minute of day", input: "23:59", want: 1439},
		{name: "missing separator", input: "0730", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "too long", input: "07:30:00", wantErr: true},
		{name: "letter in minutes", input: "07:5m", wantErr: true},
		{name: "trailing space", input: "07:5 ", wantErr: true},
		{name: "leading space", input: " 7:30", wantErr: true},
		{name: "sign in hours", input: "-1:30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTimeOfDay(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidTimeOfDay) {
					t.Errorf("error = %v, want ErrInvalidTimeOfDay", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimeOfDay_Add_WrapsPastMidnight(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		minutes int
		want    string
	}{
		{name: "no wrap", start: "07:00", minutes: 90, want: "08:30"},
		{name: "wrap forward", start: "23:30", minutes: 60, want: "00:30"},
		{name: "full day is identity", start: "10:15", minutes: MinutesPerDay, want: "10:15"},
		{name: "wrap backward", start: "00:30", minutes: -60, want: "23:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustTimeOfDay(tt.start).Add(tt.minutes)
			if got.String() != tt.want {
				t.Errorf("Add(%d) = %s, want %s", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestTimeOfDayFrom(t *testing.T) {
	instant := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	got := TimeOfDayFrom(instant)
	if got.String() != "09:26" {
		t.Errorf("TimeOfDayFrom() = %s, want 09:26", got)
	}
}

func TestTimeOfDay_JSONRoundTrip(t *testing.T) {
	original := MustTimeOfDay("22:05")

	data, err := original.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error: %v", err)
	}
	if string(data) != `"22:05"` {
		t.Errorf("MarshalJSON() = %s, want \"22:05\"", data)
	}

	var decoded TimeOfDay
	if err := decoded.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() error: %v", err)
	}
	if decoded != original {
		t.Errorf("round trip = %d, want %d", decoded, original)
	}
}
