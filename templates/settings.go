package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// SettingsData feeds the company settings page.
type SettingsData struct {
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
	CertOptions    map[string][]string
	Errors         map[string]string
}

// SettingsPage renders the settings page inside the full layout.
func SettingsPage(data SettingsData) templ.Component {
	return page("Settings", "settings", func(w io.Writer) error {
		return writeSettings(w, data)
	})
}

// SettingsContent renders only the settings form, for HTMX swaps.
func SettingsContent(data SettingsData) templ.Component {
	return component(func(w io.Writer) error {
		return writeSettings(w, data)
	})
}

func writeSettings(w io.Writer, data SettingsData) error {
	if _, err := fmt.Fprintf(w, `<h1 class="text-3xl font-bold mb-8">Company Settings</h1>
<form hx-post="/settings" hx-target="#main-content" class="bg-white rounded-xl shadow p-6 max-w-2xl">
<h2 class="text-lg font-semibold mb-4">Business details</h2>
<div class="grid md:grid-cols-2 gap-4">
%s%s%s%s%s%s%s%s</div>
<h2 class="text-lg font-semibold mt-8 mb-4">VAT &amp; CIS</h2>
<div class="grid md:grid-cols-2 gap-4">
%s<label class="block">
<span class="text-sm text-slate-600">Default VAT rate (%%)</span>
<input type="text" name="default_vat_rate" value="%.0f" inputmode="decimal"
  class="mt-1 w-full border border-slate-300 rounded px-3 py-2">
</label>
<div class="flex flex-wrap gap-6 md:col-span-2">
%s%s</div>
</div>
<h2 class="text-lg font-semibold mt-8 mb-4">Bank details</h2>
<div class="grid md:grid-cols-2 gap-4">
%s%s</div>
<h2 class="text-lg font-semibold mt-8 mb-4">Certifications</h2>
<div class="space-y-4">
`,
		formField("Trading name", "trading_name", data.TradingName, "Johnson Electrical Services Ltd", data.Errors),
		formField("Owner name", "owner_name", data.OwnerName, "Mike Johnson", data.Errors),
		formField("Email", "email", data.Email, "mike@johnsonelectrical.co.uk", data.Errors),
		formField("Phone", "phone", data.Phone, "07123 456 789", data.Errors),
		formField("Address line 1", "address_line_1", data.AddressLine1, "Unit 4, Trafford Trade Park", data.Errors),
		formField("Address line 2", "address_line_2", data.AddressLine2, "", data.Errors),
		formField("City", "city", data.City, "Manchester", data.Errors),
		formField("Postcode", "postcode", data.Postcode, "M17 1AB", data.Errors),
		formField("VAT number", "vat_number", data.VATNumber, "GB987654321", data.Errors),
		data.DefaultVATRate,
		checkbox("vat_registered", "VAT registered", data.VATRegistered),
		checkbox("cis_registered", "CIS registered", data.CISRegistered),
		formField("Sort code", "sort_code", data.SortCode, "12-34-56", data.Errors),
		formField("Account number", "account_number", data.AccountNumber, "12345678", data.Errors),
	); err != nil {
		return err
	}

	held := make(map[string]bool, len(data.Certifications))
	for _, c := range data.Certifications {
		held[c] = true
	}

	for _, group := range []string{"electrical", "gas", "construction"} {
		options := data.CertOptions[group]
		if len(options) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, `<div>
<h3 class="text-sm font-semibold text-slate-500 uppercase mb-2">%s</h3>
<div class="flex flex-wrap gap-4">
`, esc(group)); err != nil {
			return err
		}
		for _, opt := range options {
			if _, err := fmt.Fprintf(w, `<label class="inline-flex items-center gap-2">
<input type="checkbox" name="certifications" value="%s"%s>
<span class="text-sm">%s</span>
</label>
`, esc(opt), checked(held[opt]), esc(opt)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, `</div>
</div>
`); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, `</div>
<div class="mt-8">
<button type="submit" class="px-4 py-2 rounded bg-blue-600 text-white hover:bg-blue-700">Save Settings</button>
</div>
</form>
`)
	return err
}
