package services

// ExportRow represents a single line item row in a quote export.
type ExportRow struct {
	Index       int
	Description string
	Category    string
	Qty         float64
	Unit        string
	UnitPrice   float64
	Total       float64
	VATRate     float64
	Optional    bool
}

// ExportData holds all data needed to render a quote as Excel or PDF.
type ExportData struct {
	QuoteNumber  string
	Title        string
	CompanyName  string
	ClientName   string
	ClientAddr   string
	CreatedDate  string
	ValidUntil   string
	Rows         []ExportRow
	Subtotal     float64
	VATRate      float64
	VATAmount    float64
	Total        float64
	CISDeduction float64 // zero when CIS does not apply
	Notes        string
}

// BuildExportRows converts pricing items plus display fields into export
// rows with derived totals.
type ExportItem struct {
	Description string
	Category    string
	Qty         float64
	Unit        string
	UnitPrice   float64
	VATRate     float64
	Optional    bool
}

// BuildExportData assembles an ExportData from quote fields and items,
// computing all derived figures so exports can never disagree with the
// builder view.
func BuildExportData(quoteNumber, title, companyName, clientName, clientAddr, createdDate, validUntil string, items []ExportItem, vatRegistered bool, vatRate float64, cisApplicable bool, cisRate float64) ExportData {
	calcItems := make([]ItemForTotals, len(items))
	rows := make([]ExportRow, len(items))
	for i, item := range items {
		calcItems[i] = ItemForTotals{
			Qty:       item.Qty,
			UnitPrice: item.UnitPrice,
			Category:  item.Category,
			Optional:  item.Optional,
		}
		rows[i] = ExportRow{
			Index:       i + 1,
			Description: item.Description,
			Category:    item.Category,
			Qty:         item.Qty,
			Unit:        item.Unit,
			UnitPrice:   item.UnitPrice,
			Total:       LineTotal(item.Qty, item.UnitPrice),
			VATRate:     item.VATRate,
			Optional:    item.Optional,
		}
	}

	totals := QuoteTotals(calcItems, vatRegistered, vatRate)

	var cis float64
	if cisApplicable {
		cis = CalculateCISDeduction(LabourSubtotal(calcItems), cisRate)
	}

	return ExportData{
		QuoteNumber: quoteNumber,
		Title:       title,
		CompanyName: companyName,
		ClientName:  clientName,
		ClientAddr:  clientAddr,
		CreatedDate: createdDate,
		ValidUntil:  validUntil,
		Rows:        rows,
		Subtotal:    totals.Subtotal,
		VATRate:     totals.VATRate,
		VATAmount:   totals.VATAmount,
		Total:       totals.Total,
		CISDeduction: cis,
	}
}
