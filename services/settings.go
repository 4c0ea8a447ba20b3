package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
)

// CompanySettings is the single company_settings record mapped to plain
// fields. There is at most one record; LoadCompanySettings returns defaults
// when none exists yet.
type CompanySettings struct {
	ID             string
	TradingName    string
	OwnerName      string
	Email          string
	Phone          string
	AddressLine1   string
	AddressLine2   string
	City           string
	Postcode       string
	VATNumber      string
	VATRegistered  bool
	CISRegistered  bool
	SortCode       string
	AccountNumber  string
	DefaultVATRate float64
	Certifications []string
}

// LoadCompanySettings returns the stored company settings, or defaults when
// no record has been saved yet.
func LoadCompanySettings(app *pocketbase.PocketBase) (CompanySettings, error) {
	records, err := app.FindRecordsByFilter("company_settings", "id != ''", "-created", 1, 0)
	if err != nil {
		return CompanySettings{}, fmt.Errorf("load company settings: %w", err)
	}
	if len(records) == 0 {
		return CompanySettings{
			VATRegistered:  true,
			DefaultVATRate: DefaultVATRate,
		}, nil
	}

	rec := records[0]
	settings := CompanySettings{
		ID:             rec.Id,
		TradingName:    rec.GetString("trading_name"),
		OwnerName:      rec.GetString("owner_name"),
		Email:          rec.GetString("email"),
		Phone:          rec.GetString("phone"),
		AddressLine1:   rec.GetString("address_line_1"),
		AddressLine2:   rec.GetString("address_line_2"),
		City:           rec.GetString("city"),
		Postcode:       rec.GetString("postcode"),
		VATNumber:      rec.GetString("vat_number"),
		VATRegistered:  rec.GetBool("vat_registered"),
		CISRegistered:  rec.GetBool("cis_registered"),
		SortCode:       rec.GetString("sort_code"),
		AccountNumber:  rec.GetString("account_number"),
		DefaultVATRate: rec.GetFloat("default_vat_rate"),
	}
	if err := rec.UnmarshalJSONField("certifications", &settings.Certifications); err != nil {
		settings.Certifications = nil
	}
	if settings.DefaultVATRate == 0 {
		settings.DefaultVATRate = DefaultVATRate
	}
	return settings, nil
}
