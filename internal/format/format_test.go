package format

import "testing"

func TestFormatMagnitude(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{5.12345, "5.123"},
		{1000, "1K"},
		{1500, "1.5K"},
		{18000, "18K"},
		{1000000, "1M"},
		{2500000, "2.5M"},
		{1000000000, "1B"},
		{1400000000000, "1.4T"},
		{26000000000000000, "26000T"},
	}
	for _, tt := range tests {
		if got := FormatMagnitude(tt.in); got != tt.want {
			t.Errorf("FormatMagnitude(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMagnitude_Scientific(t *testing.T) {
	got := FormatMagnitude(1e17)
	if got != "1.000e+5T" {
		t.Errorf("FormatMagnitude(1e17) = %q, want 1.000e+5T", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0s"},
		{59.9, "59s"},
		{60, "1min 0s"},
		{125, "2min 5s"},
		{3661, "1h 1min 1s"},
		{90000, "1d 1h 0min"},
		{86400 * 45, "1mo 15d 0h"},
		{86400 * 30 * 13, "1y 1mo 0d"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatExact(t *testing.T) {
	if got := FormatExact(1234567.89); got != "1,234,567" {
		t.Errorf("FormatExact = %q, want 1,234,567", got)
	}
	// Past int64 range: a level-5 prestige run holds balances around 1e21.
	if got := FormatExact(1e21); got != "1,000,000,000,000,000,000,000" {
		t.Errorf("FormatExact(1e21) = %q", got)
	}
}

func TestRound3(t *testing.T) {
	if got := Round3(12.00049); got != 12.0 {
		t.Errorf("Round3(12.00049) = %v, want 12", got)
	}
	if got := Round3(1.23456); got != 1.235 {
		t.Errorf("Round3(1.23456) = %v, want 1.235", got)
	}
}
