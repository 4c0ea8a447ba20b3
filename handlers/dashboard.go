package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradequote/services"
	"tradequote/templates"
)

// HandleDashboard returns a handler that renders the dashboard page with
// aggregate stats and the most recent quotes.
func HandleDashboard(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotesCol, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("dashboard: could not find quotes collection: %v", err)
			return e.String(500, "Internal error")
		}

		records, err := app.FindAllRecords(quotesCol)
		if err != nil {
			log.Printf("dashboard: could not query quotes: %v", err)
			return e.String(500, "Internal error")
		}

		statsInput := make([]services.QuoteForStats, 0, len(records))
		for _, rec := range records {
			items, err := services.LoadQuoteItems(app, rec.Id)
			if err != nil {
				log.Printf("dashboard: could not load items for quote %s: %v", rec.Id, err)
				items = nil
			}
			totals := services.QuoteTotals(
				services.ItemsForTotals(items),
				rec.GetBool("vat_registered"),
				services.DefaultVATRate,
			)
			statsInput = append(statsInput, services.QuoteForStats{
				Status: rec.GetString("status"),
				Total:  totals.Total,
			})
		}

		stats := services.ComputeDashboardStats(statsInput)

		recent, err := app.FindRecordsByFilter(quotesCol, "id != ''", "-created", 5, 0)
		if err != nil {
			log.Printf("dashboard: could not query recent quotes: %v", err)
			recent = nil
		}

		var recentRows []templates.RecentQuote
		for _, rec := range recent {
			items, _ := services.LoadQuoteItems(app, rec.Id)
			totals := services.QuoteTotals(
				services.ItemsForTotals(items),
				rec.GetBool("vat_registered"),
				services.DefaultVATRate,
			)

			clientName := "—"
			if clientID := rec.GetString("client"); clientID != "" {
				if client, err := app.FindRecordById("clients", clientID); err == nil {
					clientName = client.GetString("name")
				}
			}

			createdDate := ""
			if dt := rec.GetDateTime("created"); !dt.IsZero() {
				createdDate = services.FormatUKDate(dt.Time())
			}

			recentRows = append(recentRows, templates.RecentQuote{
				ID:          rec.Id,
				QuoteNumber: rec.GetString("quote_number"),
				Title:       rec.GetString("title"),
				ClientName:  clientName,
				Status:      rec.GetString("status"),
				Total:       services.FormatGBP(totals.Total),
				CreatedDate: createdDate,
			})
		}

		data := templates.DashboardData{
			TotalQuotes:    stats.TotalQuotes,
			AcceptedQuotes: stats.AcceptedQuotes,
			PendingQuotes:  stats.PendingQuotes,
			DraftQuotes:    stats.DraftQuotes,
			TotalRevenue:   services.FormatGBP(stats.TotalRevenue),
			AvgQuoteValue:  services.FormatGBP(stats.AvgQuoteValue),
			AcceptanceRate: stats.AcceptanceRate,
			RecentQuotes:   recentRows,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.DashboardContent(data)
		} else {
			component = templates.DashboardPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
