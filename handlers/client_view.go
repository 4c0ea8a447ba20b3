package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradequote/services"
	"tradequote/templates"
)

// findQuoteByToken resolves a share token to its quote record.
func findQuoteByToken(app *pocketbase.PocketBase, token string) (*core.Record, error) {
	records, err := app.FindRecordsByFilter(
		"quotes",
		"share_token = {:token}",
		"",
		1,
		0,
		map[string]any{"token": token},
	)
	if err != nil || len(records) == 0 {
		return nil, err
	}
	return records[0], nil
}

// buildClientViewData assembles the public acceptance page for a quote.
func buildClientViewData(app *pocketbase.PocketBase, quote *core.Record, token string) (templates.ClientViewData, error) {
	items, err := services.LoadQuoteItems(app, quote.Id)
	if err != nil {
		return templates.ClientViewData{}, err
	}

	var required, optional []templates.ItemView
	for _, view := range itemViews(items) {
		if view.Optional {
			optional = append(optional, view)
		} else {
			required = append(required, view)
		}
	}

	forTotals := services.ItemsForTotals(items)
	acceptedSubtotal := services.AcceptedSubtotal(forTotals)
	vat := services.CalculateVAT(acceptedSubtotal, services.DefaultVATRate)

	accepted := 0
	for _, item := range items {
		if item.Status == services.ItemStatusAccepted {
			accepted++
		}
	}

	settings, err := services.LoadCompanySettings(app)
	if err != nil {
		log.Printf("client_view: could not load company settings: %v", err)
	}
	companyName := settings.TradingName
	if companyName == "" {
		companyName = "Your contractor"
	}

	return templates.ClientViewData{
		Token:            token,
		CompanyName:      companyName,
		ContractorName:   settings.OwnerName,
		Phone:            services.FormatUKPhoneNumber(settings.Phone),
		Email:            settings.Email,
		Certifications:   settings.Certifications,
		QuoteNumber:      quote.GetString("quote_number"),
		Title:            quote.GetString("title"),
		ValidUntil:       quote.GetString("valid_until"),
		RequiredItems:    required,
		OptionalItems:    optional,
		AcceptedSubtotal: services.FormatGBP(acceptedSubtotal),
		VATAmount:        services.FormatGBP(vat.VATAmount),
		FinalTotal:       services.FormatGBP(vat.Total),
		AcceptedCount:    accepted,
		TotalCount:       len(items),
		CompletionPct:    services.CompletionPercentage(accepted, len(items)),
	}, nil
}

// HandleClientQuoteView handles GET /q/{token}, the public acceptance page.
func HandleClientQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		token := e.Request.PathValue("token")

		quote, err := findQuoteByToken(app, token)
		if err != nil || quote == nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		data, err := buildClientViewData(app, quote, token)
		if err != nil {
			log.Printf("client_view: buildClientViewData failed: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ClientQuoteContent(data)
		} else {
			component = templates.ClientQuotePage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// findTokenItem loads a line item and verifies it belongs to the quote the
// token resolves to. Public endpoints must never trust the item ID alone.
func findTokenItem(app *pocketbase.PocketBase, token, itemID string) (*core.Record, *core.Record, error) {
	quote, err := findQuoteByToken(app, token)
	if err != nil || quote == nil {
		return nil, nil, err
	}
	item, err := app.FindRecordById("quote_items", itemID)
	if err != nil || item.GetString("quote") != quote.Id {
		return nil, nil, err
	}
	return quote, item, nil
}

// HandleClientItemStatus handles POST /q/{token}/items/{itemId}/status.
// Clients can switch any item between pending, accepted, declined and
// modified until the quote is finalised.
func HandleClientItemStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		token := e.Request.PathValue("token")
		itemID := e.Request.PathValue("itemId")

		quote, item, err := findTokenItem(app, token, itemID)
		if err != nil || item == nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		status := strings.TrimSpace(e.Request.FormValue("status"))
		switch status {
		case services.ItemStatusPending, services.ItemStatusAccepted,
			services.ItemStatusDeclined, services.ItemStatusModified:
		default:
			return ErrorToast(e, http.StatusBadRequest, "Unknown status")
		}

		item.Set("status", status)
		if err := app.Save(item); err != nil {
			log.Printf("client_view: could not update item %s status: %v", itemID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data, err := buildClientViewData(app, quote, token)
		if err != nil {
			log.Printf("client_view: buildClientViewData failed after status update: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return templates.ClientQuoteContent(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleClientItemNote handles POST /q/{token}/items/{itemId}/note, storing
// a free-text note from the client against a line item.
func HandleClientItemNote(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		token := e.Request.PathValue("token")
		itemID := e.Request.PathValue("itemId")

		quote, item, err := findTokenItem(app, token, itemID)
		if err != nil || item == nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		item.Set("client_note", strings.TrimSpace(e.Request.FormValue("note")))
		if err := app.Save(item); err != nil {
			log.Printf("client_view: could not save note on item %s: %v", itemID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Note saved")

		data, err := buildClientViewData(app, quote, token)
		if err != nil {
			log.Printf("client_view: buildClientViewData failed after note: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return templates.ClientQuoteContent(data).Render(e.Request.Context(), e.Response)
	}
}
