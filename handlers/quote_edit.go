package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradequote/templates"
)

// HandleQuoteEdit returns a handler that renders the builder for an
// existing quote.
func HandleQuoteEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")

		data, err := buildQuoteFormData(app, quoteID)
		if err != nil {
			log.Printf("quote_edit: buildQuoteFormData failed for %s: %v", quoteID, err)
			return e.String(404, "Quote not found")
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

// HandleQuoteUpdate handles POST /quotes/{id}, saving the project details
// section of the builder.
func HandleQuoteUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")

		record, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		title := strings.TrimSpace(e.Request.FormValue("title"))
		if title == "" {
			return ErrorToast(e, http.StatusBadRequest, "Title is required")
		}

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

		if err := app.Save(record); err != nil {
			log.Printf("quote_edit: could not save quote %s: %v", quoteID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quote saved")

		data, err := buildQuoteFormData(app, quoteID)
		if err != nil {
			log.Printf("quote_edit: buildQuoteFormData failed after save: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return templates.QuoteFormContent(data).Render(e.Request.Context(), e.Response)
	}
}
