package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuoteDelete handles DELETE /quotes/{id}. Line items cascade.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")

		record, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}

		quoteNumber := record.GetString("quote_number")
		if err := app.Delete(record); err != nil {
			log.Printf("quote_delete: could not delete quote %s: %v", quoteID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quote "+quoteNumber+" deleted")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/quotes")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/quotes")
	}
}
