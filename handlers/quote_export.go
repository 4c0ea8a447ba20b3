package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradequote/services"
)

// exportFilename builds a safe download filename from the quote number.
func exportFilename(quoteNumber, ext string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, quoteNumber)
	if name == "" {
		name = "quote"
	}
	return name + "." + ext
}

// HandleQuoteExportExcel handles GET /quotes/{id}/export/excel.
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")

		data, err := services.BuildQuoteExport(app, quoteID)
		if err != nil {
			log.Printf("quote_export: BuildQuoteExport failed for %s: %v", quoteID, err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		xlsxBytes, err := services.GenerateExcel(data)
		if err != nil {
			log.Printf("quote_export: GenerateExcel failed for %s: %v", quoteID, err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := exportFilename(data.QuoteNumber, "xlsx")
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleQuoteExportPDF handles GET /quotes/{id}/export/pdf.
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")

		data, err := services.BuildQuoteExport(app, quoteID)
		if err != nil {
			log.Printf("quote_export: BuildQuoteExport failed for %s: %v", quoteID, err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		pdfBytes, err := services.GeneratePDF(data)
		if err != nil {
			log.Printf("quote_export: GeneratePDF failed for %s: %v", quoteID, err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF")
		}

		filename := exportFilename(data.QuoteNumber, "pdf")
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
