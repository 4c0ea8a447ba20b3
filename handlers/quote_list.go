package handlers

import (
	"log"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradequote/services"
	"tradequote/templates"
)

// HandleQuoteList returns a handler that renders the quotes list with
// optional search and status filtering.
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		search := strings.TrimSpace(e.Request.URL.Query().Get("q"))
		status := strings.TrimSpace(e.Request.URL.Query().Get("status"))
		if status == "all" {
			status = ""
		}

		filter := "id != ''"
		params := map[string]any{}
		if status != "" {
			filter += " && status = {:status}"
			params["status"] = status
		}
		if search != "" {
			filter += " && (title ~ {:search} || quote_number ~ {:search} || client.name ~ {:search})"
			params["search"] = search
		}

		records, err := app.FindRecordsByFilter("quotes", filter, "-created", 0, 0, params)
		if err != nil {
			log.Printf("quote_list: could not query quotes: %v", err)
			return e.String(500, "Internal error")
		}

		items := make([]templates.QuoteListItem, 0, len(records))
		for _, rec := range records {
			quoteItems, err := services.LoadQuoteItems(app, rec.Id)
			if err != nil {
				log.Printf("quote_list: could not load items for quote %s: %v", rec.Id, err)
				quoteItems = nil
			}
			totals := services.QuoteTotals(
				services.ItemsForTotals(quoteItems),
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

			items = append(items, templates.QuoteListItem{
				ID:          rec.Id,
				QuoteNumber: rec.GetString("quote_number"),
				Title:       rec.GetString("title"),
				ClientName:  clientName,
				Status:      rec.GetString("status"),
				Total:       services.FormatGBP(totals.Total),
				CreatedDate: createdDate,
				ValidUntil:  rec.GetString("valid_until"),
			})
		}

		data := templates.QuoteListData{
			Items:        items,
			Search:       search,
			StatusFilter: status,
			TotalCount:   len(items),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteListContent(data)
		} else {
			component = templates.QuoteListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
