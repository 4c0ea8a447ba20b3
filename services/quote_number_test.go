package services

import (
	"testing"
	"time"

	"tradequote/testhelpers"
)

func TestGetTaxYear(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		expect string
	}{
		{"january is previous tax year", time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), "25-26"},
		{"march is previous tax year", time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), "25-26"},
		{"april starts new tax year", time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), "26-27"},
		{"may", time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC), "26-27"},
		{"december", time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC), "25-26"},
		{"decade rollover", time.Date(2029, time.June, 1, 0, 0, 0, 0, time.UTC), "29-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetTaxYear(tt.date); got != tt.expect {
				t.Errorf("GetTaxYear(%v) = %q, want %q", tt.date, got, tt.expect)
			}
		})
	}
}

func TestGenerateQuoteNumber(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	now := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	t.Run("first quote of the tax year", func(t *testing.T) {
		if got := GenerateQuoteNumber(app, now); got != "TQ-25-26-001" {
			t.Errorf("GenerateQuoteNumber = %q, want TQ-25-26-001", got)
		}
	})

	t.Run("sequence counts existing quotes in the same tax year", func(t *testing.T) {
		client := testhelpers.CreateTestClient(t, app, "John Johnson")
		testhelpers.CreateTestQuote(t, app, client.Id, "Kitchen rewire") // TQ-25-26-901

		if got := GenerateQuoteNumber(app, now); got != "TQ-25-26-002" {
			t.Errorf("GenerateQuoteNumber = %q, want TQ-25-26-002", got)
		}
	})

	t.Run("sequence resets for a new tax year", func(t *testing.T) {
		nextYear := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
		if got := GenerateQuoteNumber(app, nextYear); got != "TQ-26-27-001" {
			t.Errorf("GenerateQuoteNumber = %q, want TQ-26-27-001", got)
		}
	})
}
