package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradequote/services"
	"tradequote/templates"
)

// HandleQuoteNew returns a handler that renders the empty quote form.
func HandleQuoteNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.QuoteFormData{
			IsNew:         true,
			Status:        services.QuoteStatusDraft,
			TradeCategory: "electrical",
			VATRegistered: true,
			Clients:       clientOptions(app),
			Trades:        tradeOptions(),
			Categories:    categoryOptions(),
			Units:         unitOptions(),
		}
		if tc, ok := services.TradeCategoryByKey(data.TradeCategory); ok {
			data.Regulations = tc.Regulations
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteFormContent(data)
		} else {
			component = templates.QuoteFormPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteCreate handles POST /quotes. It assigns the next quote number
// and a share token, then redirects to the builder for the new quote.
func HandleQuoteCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		title := strings.TrimSpace(e.Request.FormValue("title"))
		if title == "" {
			return ErrorToast(e, http.StatusBadRequest, "Title is required")
		}

		col, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_create: could not find quotes collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("quote_number", services.GenerateQuoteNumber(app, time.Now()))
		record.Set("title", title)
		record.Set("description", strings.TrimSpace(e.Request.FormValue("description")))
		record.Set("client", e.Request.FormValue("client"))
		record.Set("status", quoteStatusOrDraft(e.Request.FormValue("status")))
		record.Set("trade_category", e.Request.FormValue("trade_category"))
		record.Set("valid_until", normaliseUKDate(e.Request.FormValue("valid_until")))
		record.Set("vat_registered", formBool(e, "vat_registered"))
		record.Set("requires_part_p", formBool(e, "requires_part_p"))
		record.Set("requires_building_control", formBool(e, "requires_building_control"))
		record.Set("cis_applicable", formBool(e, "cis_applicable"))
		record.Set("share_token", uuid.NewString())

		if err := app.Save(record); err != nil {
			log.Printf("quote_create: could not save quote: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quote "+record.GetString("quote_number")+" created")

		redirectURL := "/quotes/" + record.Id
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", redirectURL)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, redirectURL)
	}
}

// quoteStatusOrDraft returns a valid quote status, defaulting to draft.
func quoteStatusOrDraft(s string) string {
	switch s {
	case services.QuoteStatusDraft, services.QuoteStatusPending, services.QuoteStatusAccepted,
		services.QuoteStatusDeclined, services.QuoteStatusExpired:
		return s
	}
	return services.QuoteStatusDraft
}

// normaliseUKDate reformats a recognised date input to dd/mm/yyyy; anything
// else is stored as typed.
func normaliseUKDate(s string) string {
	s = strings.TrimSpace(s)
	if t, ok := services.ParseUKDate(s); ok {
		return services.FormatUKDate(t)
	}
	return s
}
