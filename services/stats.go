package services

import "math"

// QuoteForStats carries the fields of a quote that feed dashboard figures.
type QuoteForStats struct {
	Status string
	Total  float64 // VAT-inclusive quote total
}

// DashboardStats holds the aggregate figures shown on the dashboard.
type DashboardStats struct {
	TotalQuotes    int
	AcceptedQuotes int
	PendingQuotes  int
	DraftQuotes    int
	TotalRevenue   float64 // sum of accepted quote totals
	AvgQuoteValue  float64
	AcceptanceRate int // percentage of all quotes accepted
}

// ComputeDashboardStats aggregates quote statuses and values.
func ComputeDashboardStats(quotes []QuoteForStats) DashboardStats {
	var stats DashboardStats
	var totalValue float64

	for _, q := range quotes {
		stats.TotalQuotes++
		totalValue += q.Total

		switch q.Status {
		case QuoteStatusAccepted:
			stats.AcceptedQuotes++
			stats.TotalRevenue += q.Total
		case QuoteStatusPending:
			stats.PendingQuotes++
		case QuoteStatusDraft:
			stats.DraftQuotes++
		}
	}

	if stats.TotalQuotes > 0 {
		stats.AvgQuoteValue = totalValue / float64(stats.TotalQuotes)
		stats.AcceptanceRate = int(math.Round(float64(stats.AcceptedQuotes) / float64(stats.TotalQuotes) * 100))
	}

	return stats
}
