package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// GetTaxYear returns the UK tax year string for a given date. The UK tax
// year runs April to March.
// Jan 2026 → "25-26", May 2026 → "26-27"
func GetTaxYear(t time.Time) string {
	year := t.Year()
	month := t.Month()

	var startYear int
	if month >= time.April {
		startYear = year
	} else {
		startYear = year - 1
	}
	endYear := startYear + 1

	return fmt.Sprintf("%02d-%02d", startYear%100, endYear%100)
}

// formatQuoteNumber constructs the quote number string from components.
func formatQuoteNumber(taxYear string, sequence int) string {
	return fmt.Sprintf("TQ-%s-%03d", taxYear, sequence)
}

// GenerateQuoteNumber creates the next quote number.
// Format: TQ-{tax_year}-{sequence}
// - tax_year: UK tax year (Apr-Mar), e.g., "25-26"
// - sequence: 3-digit zero-padded, per tax year
func GenerateQuoteNumber(app *pocketbase.PocketBase, now time.Time) string {
	taxYear := GetTaxYear(now)
	prefix := fmt.Sprintf("TQ-%s-", taxYear)

	existing, err := app.FindRecordsByFilter(
		"quotes",
		"quote_number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		// Collection missing or no records yet, start at 1
		existing = nil
	}

	return formatQuoteNumber(taxYear, len(existing)+1)
}
