package services

import (
	"fmt"
	"math"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF creates a client-ready quote document from ExportData using
// maroto/v2. It returns the raw PDF bytes or an error.
func GeneratePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addTableHeader(m)
	for _, r := range data.Rows {
		addTableRow(m, r)
	}
	addSummary(m, data)
	addFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader adds the title, quote number, client and validity dates.
func addHeader(m core.Maroto, data ExportData) {
	title := data.Title
	if title == "" {
		title = "Quotation"
	}

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	grey := &props.Color{Red: 80, Green: 80, Blue: 80}

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Quote Ref: %s", data.QuoteNumber), props.Text{
					Size:  9,
					Align: align.Left,
					Color: grey,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: grey,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("From: %s", data.CompanyName), props.Text{
					Size:  9,
					Align: align.Left,
					Color: grey,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Valid until: %s", data.ValidUntil), props.Text{
					Size:  9,
					Align: align.Right,
					Color: grey,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Prepared for: %s", data.ClientName), props.Text{
					Size:  9,
					Align: align.Left,
					Color: grey,
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addTableHeader adds the column header row for the items table.
func addTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 29, Green: 78, Blue: 216}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(
				text.New("#", headerText),
			).WithStyle(&headerCell),
			col.New(4).Add(
				text.New("Description", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Qty", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Unit", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Unit Price", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Total", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("VAT%", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addTableRow adds a single item row, greying out optional items.
func addTableRow(m core.Maroto, r ExportRow) {
	var cellStyle *props.Cell
	desc := r.Description
	if r.Optional {
		desc += " (optional)"
		bg := &props.Color{Red: 245, Green: 245, Blue: 245}
		cellStyle = &props.Cell{BackgroundColor: bg}
	}

	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	qtyStr := formatQty(r.Qty)
	vatStr := fmt.Sprintf("%.0f%%", r.VATRate)

	colIndex := col.New(1).Add(text.New(fmt.Sprintf("%d", r.Index), baseText))
	colDesc := col.New(4).Add(text.New(desc, leftText))
	colQty := col.New(1).Add(text.New(qtyStr, rightText))
	colUnit := col.New(1).Add(text.New(r.Unit, baseText))
	colPrice := col.New(2).Add(text.New(FormatGBP(r.UnitPrice), rightText))
	colTotal := col.New(2).Add(text.New(FormatGBP(r.Total), rightText))
	colVAT := col.New(1).Add(text.New(vatStr, baseText))

	if cellStyle != nil {
		colIndex = colIndex.WithStyle(cellStyle)
		colDesc = colDesc.WithStyle(cellStyle)
		colQty = colQty.WithStyle(cellStyle)
		colUnit = colUnit.WithStyle(cellStyle)
		colPrice = colPrice.WithStyle(cellStyle)
		colTotal = colTotal.WithStyle(cellStyle)
		colVAT = colVAT.WithStyle(cellStyle)
	}

	m.AddRows(
		row.New(7).Add(
			colIndex,
			colDesc,
			colQty,
			colUnit,
			colPrice,
			colTotal,
			colVAT,
		),
	)
}

// addSummary adds the subtotal, VAT, total and CIS section.
func addSummary(m core.Maroto, data ExportData) {
	// Spacer before summary
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	addLine := func(label, value string) {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(value, valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}

	addLine("Subtotal (ex VAT)", FormatGBP(data.Subtotal))
	if data.VATAmount != 0 || data.VATRate != 0 {
		addLine(fmt.Sprintf("VAT (%.0f%%)", data.VATRate), FormatGBP(data.VATAmount))
	}
	addLine("Total (inc VAT)", FormatGBP(data.Total))
	if data.CISDeduction != 0 {
		addLine("CIS deduction (labour)", FormatGBP(data.CISDeduction))
	}
}

// addFooter adds the generated-date line at the bottom.
func addFooter(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.CreatedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}

// formatQty returns a string representation of the quantity value.
// Whole numbers are formatted without decimals; fractional values get 2 decimal places.
func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
