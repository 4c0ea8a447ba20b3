package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel creates an Excel file from the given ExportData and returns
// the file contents as a byte slice.
func GenerateExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Determine sheet name (max 31 chars).
	sheetName := data.QuoteNumber
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Quote"
	}

	// Rename default sheet.
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through H).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	lastCol := columns[len(columns)-1] // "H"

	// Set column widths.
	widths := []float64{6, 44, 14, 10, 10, 14, 14, 8}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#1D4ED8"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	optionalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size:   10,
			Italic: true,
			Color:  "#666666",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create optional style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-4) ───────────────────────────────────────────────

	// Row 1: Title merged across all columns.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	title := data.Title
	if title == "" {
		title = "Quotation"
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	// Row 2: Quote number and company.
	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge ref: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "Quote Ref: "+data.QuoteNumber+" — "+data.CompanyName)
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	// Row 3: Client.
	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge client: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Prepared for: "+sanitizeExcelCell(data.ClientName))
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// Row 4: Dates.
	if err := f.MergeCell(sheetName, "A4", lastCol+"4"); err != nil {
		return nil, fmt.Errorf("merge dates: %w", err)
	}
	f.SetCellValue(sheetName, "A4", "Date: "+data.CreatedDate+"   Valid until: "+data.ValidUntil)
	f.SetCellStyle(sheetName, "A4", lastCol+"4", subtitleStyle)

	// ── Row 6: Column Headers ───────────────────────────────────────────

	headers := []string{"#", "Description", "Category", "Qty", "Unit", "Unit Price", "Total", "VAT%"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s6", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A6", lastCol+"6", headerStyle)

	// ── Data Rows (starting row 7) ──────────────────────────────────────

	row := 7
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, r.Index)

		desc := r.Description
		if r.Optional {
			desc += " (optional)"
		}
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(desc))

		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.Category))
		f.SetCellValue(sheetName, "D"+rowStr, r.Qty)
		f.SetCellValue(sheetName, "E"+rowStr, sanitizeExcelCell(r.Unit))
		f.SetCellValue(sheetName, "F"+rowStr, FormatGBP(r.UnitPrice))
		f.SetCellValue(sheetName, "G"+rowStr, FormatGBP(r.Total))
		f.SetCellValue(sheetName, "H"+rowStr, r.VATRate)

		style := itemStyle
		if r.Optional {
			style = optionalStyle
		}
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, style)

		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	// Skip a blank row.
	row++

	summaryRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "F"+summaryRow, "Subtotal (ex VAT):")
	f.SetCellStyle(sheetName, "F"+summaryRow, "F"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheetName, "G"+summaryRow, FormatGBP(data.Subtotal))
	f.SetCellStyle(sheetName, "G"+summaryRow, "G"+summaryRow, summaryValueStyle)
	row++

	if data.VATAmount != 0 || data.VATRate != 0 {
		summaryRow = fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "F"+summaryRow, fmt.Sprintf("VAT (%.0f%%):", data.VATRate))
		f.SetCellStyle(sheetName, "F"+summaryRow, "F"+summaryRow, summaryLabelStyle)
		f.SetCellValue(sheetName, "G"+summaryRow, FormatGBP(data.VATAmount))
		f.SetCellStyle(sheetName, "G"+summaryRow, "G"+summaryRow, summaryValueStyle)
		row++
	}

	summaryRow = fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "F"+summaryRow, "Total (inc VAT):")
	f.SetCellStyle(sheetName, "F"+summaryRow, "F"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheetName, "G"+summaryRow, FormatGBP(data.Total))
	f.SetCellStyle(sheetName, "G"+summaryRow, "G"+summaryRow, summaryValueStyle)
	row++

	if data.CISDeduction != 0 {
		summaryRow = fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "F"+summaryRow, "CIS deduction (labour):")
		f.SetCellStyle(sheetName, "F"+summaryRow, "F"+summaryRow, summaryLabelStyle)
		f.SetCellValue(sheetName, "G"+summaryRow, FormatGBP(data.CISDeduction))
		f.SetCellStyle(sheetName, "G"+summaryRow, "G"+summaryRow, summaryValueStyle)
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
