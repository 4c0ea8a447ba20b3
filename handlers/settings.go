package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradequote/services"
	"tradequote/templates"
)

// HandleSettings renders the company settings page.
func HandleSettings(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		settings, err := services.LoadCompanySettings(app)
		if err != nil {
			log.Printf("settings: could not load company settings: %v", err)
			return e.String(500, "Internal error")
		}

		data := settingsData(settings, nil)

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.SettingsContent(data)
		} else {
			component = templates.SettingsPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleSettingsSave handles POST /settings. UK-specific fields are
// validated and normalised; a failing field re-renders the form with the
// message inline.
func HandleSettingsSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		submitted := services.CompanySettings{
			TradingName:    strings.TrimSpace(e.Request.FormValue("trading_name")),
			OwnerName:      strings.TrimSpace(e.Request.FormValue("owner_name")),
			Email:          strings.TrimSpace(e.Request.FormValue("email")),
			Phone:          strings.TrimSpace(e.Request.FormValue("phone")),
			AddressLine1:   strings.TrimSpace(e.Request.FormValue("address_line_1")),
			AddressLine2:   strings.TrimSpace(e.Request.FormValue("address_line_2")),
			City:           strings.TrimSpace(e.Request.FormValue("city")),
			Postcode:       strings.TrimSpace(e.Request.FormValue("postcode")),
			VATNumber:      strings.TrimSpace(e.Request.FormValue("vat_number")),
			VATRegistered:  formBool(e, "vat_registered"),
			CISRegistered:  formBool(e, "cis_registered"),
			SortCode:       strings.TrimSpace(e.Request.FormValue("sort_code")),
			AccountNumber:  strings.TrimSpace(e.Request.FormValue("account_number")),
			DefaultVATRate: parseFloatOrZero(e.Request.FormValue("default_vat_rate")),
			Certifications: e.Request.Form["certifications"],
		}

		errors := make(map[string]string)
		if submitted.TradingName == "" {
			errors["trading_name"] = "Trading name is required"
		}
		if !services.ValidateEmail(submitted.Email) {
			errors["email"] = "Invalid email address"
		}
		if submitted.Postcode != "" && !services.ValidateUKPostcode(submitted.Postcode) {
			errors["postcode"] = "Invalid UK postcode"
		}
		if !services.ValidateUKVATNumber(submitted.VATNumber) {
			errors["vat_number"] = "VAT number must be GB followed by 9 digits"
		}
		if submitted.SortCode != "" && !services.ValidateUKSortCode(submitted.SortCode) {
			errors["sort_code"] = "Sort code must be 6 digits"
		}
		if submitted.AccountNumber != "" && !services.ValidateUKAccountNumber(submitted.AccountNumber) {
			errors["account_number"] = "Account number must be 8 digits"
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return templates.SettingsContent(settingsData(submitted, errors)).Render(e.Request.Context(), e.Response)
		}

		var record *core.Record
		existing, err := services.LoadCompanySettings(app)
		if err == nil && existing.ID != "" {
			record, err = app.FindRecordById("company_settings", existing.ID)
			if err != nil {
				log.Printf("settings: could not load settings record %s: %v", existing.ID, err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
		} else {
			col, err := app.FindCollectionByNameOrId("company_settings")
			if err != nil {
				log.Printf("settings: could not find company_settings collection: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			record = core.NewRecord(col)
		}

		record.Set("trading_name", submitted.TradingName)
		record.Set("owner_name", submitted.OwnerName)
		record.Set("email", submitted.Email)
		record.Set("phone", services.FormatUKPhoneNumber(submitted.Phone))
		record.Set("address_line_1", submitted.AddressLine1)
		record.Set("address_line_2", submitted.AddressLine2)
		record.Set("city", submitted.City)
		record.Set("postcode", services.FormatUKPostcode(submitted.Postcode))
		record.Set("vat_number", strings.ToUpper(submitted.VATNumber))
		record.Set("vat_registered", submitted.VATRegistered)
		record.Set("cis_registered", submitted.CISRegistered)
		record.Set("sort_code", services.FormatUKSortCode(submitted.SortCode))
		record.Set("account_number", submitted.AccountNumber)
		record.Set("default_vat_rate", submitted.DefaultVATRate)
		record.Set("certifications", submitted.Certifications)

		if err := app.Save(record); err != nil {
			log.Printf("settings: could not save company settings: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Settings saved")

		saved, err := services.LoadCompanySettings(app)
		if err != nil {
			saved = submitted
		}
		return templates.SettingsContent(settingsData(saved, nil)).Render(e.Request.Context(), e.Response)
	}
}

func settingsData(s services.CompanySettings, errors map[string]string) templates.SettingsData {
	return templates.SettingsData{
		TradingName:    s.TradingName,
		OwnerName:      s.OwnerName,
		Email:          s.Email,
		Phone:          s.Phone,
		AddressLine1:   s.AddressLine1,
		AddressLine2:   s.AddressLine2,
		City:           s.City,
		Postcode:       s.Postcode,
		VATNumber:      s.VATNumber,
		VATRegistered:  s.VATRegistered,
		CISRegistered:  s.CISRegistered,
		SortCode:       s.SortCode,
		AccountNumber:  s.AccountNumber,
		DefaultVATRate: s.DefaultVATRate,
		Certifications: s.Certifications,
		CertOptions:    services.UKCertifications,
		Errors:         errors,
	}
}
