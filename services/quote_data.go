package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
)

// QuoteItemRecord is a quote_items record mapped to plain fields. The stored
// record has no total column; totals are derived on every read.
type QuoteItemRecord struct {
	ID          string
	SortOrder   int
	Description string
	Category    string
	Qty         float64
	Unit        string
	UnitPrice   float64
	VATRate     float64
	Optional    bool
	Status      string
	ClientNote  string
}

// Total returns the derived line total.
func (q QuoteItemRecord) Total() float64 {
	return LineTotal(q.Qty, q.UnitPrice)
}

// ForTotals converts the record to its aggregation view.
func (q QuoteItemRecord) ForTotals() ItemForTotals {
	return ItemForTotals{
		Qty:       q.Qty,
		UnitPrice: q.UnitPrice,
		Category:  q.Category,
		Status:    q.Status,
		Optional:  q.Optional,
	}
}

// ItemsForTotals converts a slice of item records to their aggregation views.
func ItemsForTotals(items []QuoteItemRecord) []ItemForTotals {
	out := make([]ItemForTotals, len(items))
	for i, item := range items {
		out[i] = item.ForTotals()
	}
	return out
}

// LoadQuoteItems returns all line items of a quote ordered by sort_order.
func LoadQuoteItems(app *pocketbase.PocketBase, quoteID string) ([]QuoteItemRecord, error) {
	records, err := app.FindRecordsByFilter(
		"quote_items",
		"quote = {:quoteId}",
		"sort_order",
		0,
		0,
		map[string]any{"quoteId": quoteID},
	)
	if err != nil {
		return nil, fmt.Errorf("load quote items for %s: %w", quoteID, err)
	}

	items := make([]QuoteItemRecord, 0, len(records))
	for _, rec := range records {
		items = append(items, QuoteItemRecord{
			ID:          rec.Id,
			SortOrder:   rec.GetInt("sort_order"),
			Description: rec.GetString("description"),
			Category:    rec.GetString("category"),
			Qty:         rec.GetFloat("qty"),
			Unit:        rec.GetString("unit"),
			UnitPrice:   rec.GetFloat("unit_price"),
			VATRate:     rec.GetFloat("vat_rate"),
			Optional:    rec.GetBool("optional"),
			Status:      rec.GetString("status"),
			ClientNote:  rec.GetString("client_note"),
		})
	}
	return items, nil
}

// BuildQuoteExport loads a quote with its client and line items and
// assembles the ExportData for Excel/PDF generation.
func BuildQuoteExport(app *pocketbase.PocketBase, quoteID string) (ExportData, error) {
	quote, err := app.FindRecordById("quotes", quoteID)
	if err != nil {
		return ExportData{}, fmt.Errorf("quote not found: %w", err)
	}

	items, err := LoadQuoteItems(app, quoteID)
	if err != nil {
		return ExportData{}, err
	}

	clientName := ""
	clientAddr := ""
	if clientID := quote.GetString("client"); clientID != "" {
		if client, err := app.FindRecordById("clients", clientID); err == nil {
			clientName = client.GetString("name")
			clientAddr = FormatUKAddress(UKAddress{
				Line1:    client.GetString("address_line_1"),
				Line2:    client.GetString("address_line_2"),
				City:     client.GetString("city"),
				County:   client.GetString("county"),
				Postcode: client.GetString("postcode"),
			})
		}
	}

	companyName := "TradeQuote Pro"
	if settings, err := LoadCompanySettings(app); err == nil && settings.TradingName != "" {
		companyName = settings.TradingName
	}

	exportItems := make([]ExportItem, len(items))
	for i, item := range items {
		exportItems[i] = ExportItem{
			Description: item.Description,
			Category:    item.Category,
			Qty:         item.Qty,
			Unit:        item.Unit,
			UnitPrice:   item.UnitPrice,
			VATRate:     item.VATRate,
			Optional:    item.Optional,
		}
	}

	createdDate := ""
	if dt := quote.GetDateTime("created"); !dt.IsZero() {
		createdDate = FormatUKDate(dt.Time())
	}
	validUntil := quote.GetString("valid_until")
	if t, ok := ParseUKDate(validUntil); ok {
		validUntil = FormatUKDate(t)
	}

	return BuildExportData(
		quote.GetString("quote_number"),
		quote.GetString("title"),
		companyName,
		clientName,
		clientAddr,
		createdDate,
		validUntil,
		exportItems,
		quote.GetBool("vat_registered"),
		DefaultVATRate,
		quote.GetBool("cis_applicable"),
		DefaultCISRate,
	), nil
}
