package services

import "testing"

func TestComputeDashboardStats(t *testing.T) {
	t.Run("mixed statuses", func(t *testing.T) {
		quotes := []QuoteForStats{
			{Status: QuoteStatusAccepted, Total: 1200},
			{Status: QuoteStatusAccepted, Total: 800},
			{Status: QuoteStatusPending, Total: 500},
			{Status: QuoteStatusDraft, Total: 300},
		}

		got := ComputeDashboardStats(quotes)

		if got.TotalQuotes != 4 {
			t.Errorf("TotalQuotes = %d, want 4", got.TotalQuotes)
		}
		if got.AcceptedQuotes != 2 || got.PendingQuotes != 1 || got.DraftQuotes != 1 {
			t.Errorf("status counts = accepted %d pending %d draft %d, want 2/1/1",
				got.AcceptedQuotes, got.PendingQuotes, got.DraftQuotes)
		}
		if got.TotalRevenue != 2000 {
			t.Errorf("TotalRevenue = %v, want 2000", got.TotalRevenue)
		}
		if got.AvgQuoteValue != 700 {
			t.Errorf("AvgQuoteValue = %v, want 700", got.AvgQuoteValue)
		}
		if got.AcceptanceRate != 50 {
			t.Errorf("AcceptanceRate = %d, want 50", got.AcceptanceRate)
		}
	})

	t.Run("declined quotes count toward totals but not revenue", func(t *testing.T) {
		quotes := []QuoteForStats{
			{Status: QuoteStatusDeclined, Total: 900},
			{Status: QuoteStatusAccepted, Total: 100},
		}

		got := ComputeDashboardStats(quotes)

		if got.TotalQuotes != 2 {
			t.Errorf("TotalQuotes = %d, want 2", got.TotalQuotes)
		}
		if got.TotalRevenue != 100 {
			t.Errorf("TotalRevenue = %v, want 100", got.TotalRevenue)
		}
		if got.AvgQuoteValue != 500 {
			t.Errorf("AvgQuoteValue = %v, want 500", got.AvgQuoteValue)
		}
	})

	t.Run("no quotes", func(t *testing.T) {
		got := ComputeDashboardStats(nil)
		if got.TotalQuotes != 0 || got.AvgQuoteValue != 0 || got.AcceptanceRate != 0 {
			t.Errorf("expected zero stats, got %+v", got)
		}
	})
}
