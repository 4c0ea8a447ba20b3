package handlers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradequote/services"
	"tradequote/templates"
)

// parseFloatOrZero converts a form value to a float. Unparseable input
// deliberately falls back to zero instead of failing the request.
func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// formBool reports whether a checkbox form value was ticked.
func formBool(e *core.RequestEvent, name string) bool {
	v := e.Request.FormValue(name)
	return v == "on" || v == "true"
}

// formatInputNumber renders a numeric value back into a form input: whole
// numbers without decimals, fractional values with two.
func formatInputNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// itemViews converts item records into display rows with derived totals.
func itemViews(items []services.QuoteItemRecord) []templates.ItemView {
	views := make([]templates.ItemView, len(items))
	for i, item := range items {
		views[i] = templates.ItemView{
			ID:          item.ID,
			Description: item.Description,
			Category:    item.Category,
			Qty:         formatInputNumber(item.Qty),
			Unit:        item.Unit,
			UnitPrice:   formatInputNumber(item.UnitPrice),
			VATRate:     formatInputNumber(item.VATRate),
			Total:       services.FormatGBP(item.Total()),
			Optional:    item.Optional,
			Status:      item.Status,
			ClientNote:  item.ClientNote,
		}
	}
	return views
}

// clientOptions loads all clients as select options ordered by name.
func clientOptions(app *pocketbase.PocketBase) []templates.ClientOption {
	records, err := app.FindRecordsByFilter("clients", "id != ''", "name", 0, 0)
	if err != nil {
		return nil
	}
	options := make([]templates.ClientOption, 0, len(records))
	for _, rec := range records {
		options = append(options, templates.ClientOption{
			ID:      rec.Id,
			Name:    rec.GetString("name"),
			Company: rec.GetString("company"),
		})
	}
	return options
}

func tradeOptions() []templates.TradeOption {
	options := make([]templates.TradeOption, len(services.TradeCategories))
	for i, tc := range services.TradeCategories {
		options[i] = templates.TradeOption{Key: tc.Key, Name: tc.Name}
	}
	return options
}

func categoryOptions() []templates.CategoryOption {
	options := make([]templates.CategoryOption, len(services.ItemCategories))
	for i, c := range services.ItemCategories {
		options[i] = templates.CategoryOption{Value: c.Value, Label: c.Label}
	}
	return options
}

func unitOptions() []templates.UnitOption {
	options := make([]templates.UnitOption, len(services.ItemUnits))
	for i, u := range services.ItemUnits {
		options[i] = templates.UnitOption{Value: u.Value, Label: u.Label}
	}
	return options
}

// buildQuoteFormData assembles everything the builder page needs for an
// existing quote: the quote record, its items with derived totals, the
// trade regulations and supplier suggestions.
func buildQuoteFormData(app *pocketbase.PocketBase, quoteID string) (templates.QuoteFormData, error) {
	quote, err := app.FindRecordById("quotes", quoteID)
	if err != nil {
		return templates.QuoteFormData{}, fmt.Errorf("quote not found: %w", err)
	}

	items, err := services.LoadQuoteItems(app, quoteID)
	if err != nil {
		return templates.QuoteFormData{}, err
	}

	vatRegistered := quote.GetBool("vat_registered")
	totals := services.QuoteTotals(services.ItemsForTotals(items), vatRegistered, services.DefaultVATRate)

	data := templates.QuoteFormData{
		ID:                      quote.Id,
		QuoteNumber:             quote.GetString("quote_number"),
		Title:                   quote.GetString("title"),
		Description:             quote.GetString("description"),
		Status:                  quote.GetString("status"),
		TradeCategory:           quote.GetString("trade_category"),
		ValidUntil:              quote.GetString("valid_until"),
		ClientID:                quote.GetString("client"),
		ShareToken:              quote.GetString("share_token"),
		VATRegistered:           vatRegistered,
		RequiresPartP:           quote.GetBool("requires_part_p"),
		RequiresBuildingControl: quote.GetBool("requires_building_control"),
		CISApplicable:           quote.GetBool("cis_applicable"),
		Clients:                 clientOptions(app),
		Trades:                  tradeOptions(),
		Categories:              categoryOptions(),
		Units:                   unitOptions(),
		Items:                   itemViews(items),
		Totals: templates.TotalsView{
			Subtotal:      services.FormatGBP(totals.Subtotal),
			VATRate:       totals.VATRate,
			VATAmount:     services.FormatGBP(totals.VATAmount),
			Total:         services.FormatGBP(totals.Total),
			VATRegistered: vatRegistered,
			CISApplicable: quote.GetBool("cis_applicable"),
		},
	}

	if data.CISApplicable {
		cis := services.CalculateCISDeduction(
			services.LabourSubtotal(services.ItemsForTotals(items)),
			services.DefaultCISRate,
		)
		data.Totals.CISDeduction = services.FormatGBP(cis)
	}

	if tc, ok := services.TradeCategoryByKey(data.TradeCategory); ok {
		data.Regulations = tc.Regulations
		data.Suppliers = services.UKSuppliers[tc.Key]
		if data.Suppliers == nil {
			data.Suppliers = services.UKSuppliers["general"]
		}
	}

	return data, nil
}
