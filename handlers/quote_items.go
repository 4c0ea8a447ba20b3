package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradequote/services"
	"tradequote/templates"
)

// getNextSortOrder queries the existing items for a quote and returns the
// next sort_order value.
func getNextSortOrder(app *pocketbase.PocketBase, quoteID string) int {
	existing, err := app.FindRecordsByFilter(
		"quote_items",
		"quote = {:quoteId}",
		"-sort_order",
		1,
		0,
		map[string]any{"quoteId": quoteID},
	)
	if err != nil || len(existing) == 0 {
		return 1
	}
	return existing[0].GetInt("sort_order") + 1
}

// renderItemsSection re-renders the line items table plus totals after any
// item mutation.
func renderItemsSection(e *core.RequestEvent, app *pocketbase.PocketBase, quoteID string) error {
	data, err := buildQuoteFormData(app, quoteID)
	if err != nil {
		log.Printf("quote_items: buildQuoteFormData failed for %s: %v", quoteID, err)
		return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
	return templates.ItemsSection(data).Render(e.Request.Context(), e.Response)
}

// HandleQuoteAddItem handles POST /quotes/{id}/items, appending a blank
// line item with sensible defaults.
func HandleQuoteAddItem(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")

		if _, err := app.FindRecordById("quotes", quoteID); err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}

		col, err := app.FindCollectionByNameOrId("quote_items")
		if err != nil {
			log.Printf("quote_items: could not find quote_items collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("quote", quoteID)
		record.Set("sort_order", getNextSortOrder(app, quoteID))
		record.Set("description", "New line item")
		record.Set("category", services.CategoryLabour)
		record.Set("qty", 1)
		record.Set("unit", "each")
		record.Set("unit_price", 0)
		record.Set("vat_rate", services.DefaultVATRate)
		record.Set("optional", false)
		record.Set("status", services.ItemStatusPending)

		if err := app.Save(record); err != nil {
			log.Printf("quote_items: could not save line item: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Line item added")
		return renderItemsSection(e, app, quoteID)
	}
}

// HandleQuoteUpdateItem handles PATCH /quotes/{id}/items/{itemId}. Only the
// submitted fields change; numeric parse failures fall back to zero.
func HandleQuoteUpdateItem(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")

		record, err := app.FindRecordById("quote_items", itemID)
		if err != nil || record.GetString("quote") != quoteID {
			return ErrorToast(e, http.StatusNotFound, "Line item not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		form := e.Request.Form
		if _, ok := form["description"]; ok {
			desc := strings.TrimSpace(e.Request.FormValue("description"))
			if desc != "" {
				record.Set("description", desc)
			}
		}
		if _, ok := form["category"]; ok {
			record.Set("category", e.Request.FormValue("category"))
		}
		if _, ok := form["unit"]; ok {
			record.Set("unit", e.Request.FormValue("unit"))
		}
		if _, ok := form["qty"]; ok {
			record.Set("qty", parseFloatOrZero(e.Request.FormValue("qty")))
		}
		if _, ok := form["unit_price"]; ok {
			record.Set("unit_price", parseFloatOrZero(e.Request.FormValue("unit_price")))
		}
		if _, ok := form["vat_rate"]; ok {
			record.Set("vat_rate", parseFloatOrZero(e.Request.FormValue("vat_rate")))
		}
		if _, ok := form["optional"]; ok {
			record.Set("optional", formBool(e, "optional"))
		}

		if err := app.Save(record); err != nil {
			log.Printf("quote_items: could not update line item %s: %v", itemID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return renderItemsSection(e, app, quoteID)
	}
}

// HandleQuoteDeleteItem handles DELETE /quotes/{id}/items/{itemId}.
func HandleQuoteDeleteItem(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")

		record, err := app.FindRecordById("quote_items", itemID)
		if err != nil || record.GetString("quote") != quoteID {
			return ErrorToast(e, http.StatusNotFound, "Line item not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("quote_items: could not delete line item %s: %v", itemID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Line item removed")
		return renderItemsSection(e, app, quoteID)
	}
}
