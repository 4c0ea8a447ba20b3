package services

import (
	"testing"
	"time"
)

func TestFormatGBP(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		expect string
	}{
		{"zero", 0, "£0.00"},
		{"whole pounds", 905, "£905.00"},
		{"pence", 1234.56, "£1,234.56"},
		{"exactly a thousand", 1000, "£1,000.00"},
		{"just under a thousand", 999.99, "£999.99"},
		{"millions", 1234567.89, "£1,234,567.89"},
		{"negative", -100, "-£100.00"},
		{"rounds half up", 10.005, "£10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatGBP(tt.amount); got != tt.expect {
				t.Errorf("FormatGBP(%v) = %q, want %q", tt.amount, got, tt.expect)
			}
		})
	}
}

func TestFormatUKDate(t *testing.T) {
	d := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatUKDate(d); got != "05/03/2026" {
		t.Errorf("FormatUKDate = %q, want 05/03/2026", got)
	}
}

func TestParseUKDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
		ok     bool
	}{
		{"uk layout", "05/03/2026", "05/03/2026", true},
		{"iso layout", "2026-03-05", "05/03/2026", true},
		{"with surrounding space", " 05/03/2026 ", "05/03/2026", true},
		{"us layout rejected", "03-05-2026", "", false},
		{"nonsense", "next tuesday", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseUKDate(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseUKDate(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && FormatUKDate(got) != tt.expect {
				t.Errorf("ParseUKDate(%q) = %v, want %s", tt.input, got, tt.expect)
			}
		})
	}
}
