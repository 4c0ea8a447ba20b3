package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ClientOption is a selectable client in the quote form.
type ClientOption struct {
	ID      string
	Name    string
	Company string
}

// TradeOption is a selectable trade category.
type TradeOption struct {
	Key  string
	Name string
}

// CategoryOption is a selectable line item category.
type CategoryOption struct {
	Value string
	Label string
}

// UnitOption is a selectable unit of measure.
type UnitOption struct {
	Value string
	Label string
}

// ItemView is one line item row in the builder. Numeric fields arrive
// preformatted for display; Total is always derived, never stored.
type ItemView struct {
	ID          string
	Description string
	Category    string
	Qty         string
	Unit        string
	UnitPrice   string
	VATRate     string
	Total       string
	Optional    bool
	Status      string
	ClientNote  string
}

// TotalsView is the summary panel of the builder.
type TotalsView struct {
	Subtotal      string
	VATRate       float64
	VATAmount     string
	Total         string
	CISDeduction  string
	VATRegistered bool
	CISApplicable bool
}

// QuoteFormData feeds the quote builder page.
type QuoteFormData struct {
	IsNew                   bool
	ID                      string
	QuoteNumber             string
	Title                   string
	Description             string
	Status                  string
	TradeCategory           string
	ValidUntil              string
	ClientID                string
	ShareToken              string
	VATRegistered           bool
	RequiresPartP           bool
	RequiresBuildingControl bool
	CISApplicable           bool
	Clients                 []ClientOption
	Trades                  []TradeOption
	Regulations             []string
	Suppliers               []string
	Categories              []CategoryOption
	Units                   []UnitOption
	Items                   []ItemView
	Totals                  TotalsView
}

// QuoteFormPage renders the builder inside the full layout.
func QuoteFormPage(data QuoteFormData) templ.Component {
	return page("Quote Builder", "quotes", func(w io.Writer) error {
		return writeQuoteForm(w, data)
	})
}

// QuoteFormContent renders only the builder content, for HTMX swaps.
func QuoteFormContent(data QuoteFormData) templ.Component {
	return component(func(w io.Writer) error {
		return writeQuoteForm(w, data)
	})
}

func writeQuoteForm(w io.Writer, data QuoteFormData) error {
	heading := "New Quote"
	action := "/quotes"
	if !data.IsNew {
		heading = fmt.Sprintf("Quote %s", data.QuoteNumber)
		action = "/quotes/" + data.ID
	}

	if _, err := fmt.Fprintf(w, `<div class="flex justify-between items-center mb-8">
<div>
<h1 class="text-3xl font-bold">%s</h1>
<p class="text-slate-600 mt-1">UK trade quote builder</p>
</div>
`, esc(heading)); err != nil {
		return err
	}

	if !data.IsNew {
		if _, err := fmt.Fprintf(w, `<div class="flex gap-3">
<a href="/q/%s" class="px-3 py-2 rounded border border-slate-300 hover:bg-slate-50">Client view</a>
<a href="/quotes/%s/export/pdf" class="px-3 py-2 rounded border border-slate-300 hover:bg-slate-50">PDF</a>
<a href="/quotes/%s/export/excel" class="px-3 py-2 rounded border border-slate-300 hover:bg-slate-50">Excel</a>
</div>
`, esc(data.ShareToken), esc(data.ID), esc(data.ID)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, `</div>
<form hx-post="%s" hx-target="#main-content" class="bg-white rounded-xl shadow p-6 mb-6">
<h2 class="text-lg font-semibold mb-4">Project Details</h2>
<div class="grid md:grid-cols-2 gap-4">
<label class="block">
<span class="text-sm text-slate-600">Title</span>
<input type="text" name="title" value="%s" required placeholder="Kitchen Electrical Upgrade - Socket &amp; Lighting Installation"
  class="mt-1 w-full border border-slate-300 rounded px-3 py-2">
</label>
<label class="block">
<span class="text-sm text-slate-600">Client</span>
<select name="client" class="mt-1 w-full border border-slate-300 rounded px-3 py-2">
<option value="">— Select client —</option>
`, action, esc(data.Title)); err != nil {
		return err
	}

	for _, c := range data.Clients {
		sel := ""
		if c.ID == data.ClientID {
			sel = " selected"
		}
		label := c.Name
		if c.Company != "" {
			label += " (" + c.Company + ")"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, esc(c.ID), sel, esc(label)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, `</select>
</label>
<label class="block md:col-span-2">
<span class="text-sm text-slate-600">Description</span>
<textarea name="description" rows="2" class="mt-1 w-full border border-slate-300 rounded px-3 py-2">%s</textarea>
</label>
<label class="block">
<span class="text-sm text-slate-600">Trade category</span>
<select name="trade_category" class="mt-1 w-full border border-slate-300 rounded px-3 py-2">
`, esc(data.Description)); err != nil {
		return err
	}

	for _, tc := range data.Trades {
		sel := ""
		if tc.Key == data.TradeCategory {
			sel = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, esc(tc.Key), sel, esc(tc.Name)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, `</select>
</label>
<label class="block">
<span class="text-sm text-slate-600">Valid until</span>
<input type="text" name="valid_until" value="%s" placeholder="dd/mm/yyyy"
  class="mt-1 w-full border border-slate-300 rounded px-3 py-2">
</label>
<label class="block">
<span class="text-sm text-slate-600">Status</span>
<select name="status" class="mt-1 w-full border border-slate-300 rounded px-3 py-2">
`, esc(data.ValidUntil)); err != nil {
		return err
	}

	for _, s := range []string{"draft", "pending", "accepted", "declined", "expired"} {
		sel := ""
		if s == data.Status || (data.Status == "" && s == "draft") {
			sel = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, s, sel, s); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, `</select>
</label>
<div class="flex flex-wrap gap-6 md:col-span-2">
%s%s%s%s</div>
</div>
<div class="mt-4">
<button type="submit" class="px-4 py-2 rounded bg-blue-600 text-white hover:bg-blue-700">Save Quote</button>
</div>
</form>
`,
		checkbox("vat_registered", "VAT registered", data.VATRegistered),
		checkbox("requires_part_p", "Part P notification required", data.RequiresPartP),
		checkbox("requires_building_control", "Building Control involved", data.RequiresBuildingControl),
		checkbox("cis_applicable", "CIS applies (labour)", data.CISApplicable),
	); err != nil {
		return err
	}

	if len(data.Regulations) > 0 {
		if _, err := fmt.Fprint(w, `<div class="bg-blue-50 border border-blue-200 rounded-xl p-4 mb-6">
<h3 class="font-semibold text-blue-900 mb-2">Applicable regulations</h3>
<ul class="list-disc list-inside text-blue-800 text-sm">
`); err != nil {
			return err
		}
		for _, reg := range data.Regulations {
			if _, err := fmt.Fprintf(w, `<li>%s</li>
`, esc(reg)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, `</ul>
</div>
`); err != nil {
			return err
		}
	}

	if data.IsNew {
		_, err := fmt.Fprint(w, `<p class="text-slate-500">Save the quote to start adding line items.</p>
`)
		return err
	}

	if err := writeItemsSection(w, data); err != nil {
		return err
	}

	if len(data.Suppliers) > 0 {
		if _, err := fmt.Fprint(w, `<div class="bg-white rounded-xl shadow p-6 mt-6">
<h3 class="font-semibold mb-2">Suggested UK suppliers</h3>
<div class="flex flex-wrap gap-2">
`); err != nil {
			return err
		}
		for _, s := range data.Suppliers {
			if _, err := fmt.Fprintf(w, `<span class="px-2 py-1 rounded bg-slate-100 text-sm">%s</span>
`, esc(s)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, `</div>
</div>
`); err != nil {
			return err
		}
	}

	return nil
}

// ItemsSection renders the line items table plus the summary panel. It is
// the swap target for every item mutation so totals can never go stale.
func ItemsSection(data QuoteFormData) templ.Component {
	return component(func(w io.Writer) error {
		return writeItemsSection(w, data)
	})
}

func writeItemsSection(w io.Writer, data QuoteFormData) error {
	if _, err := fmt.Fprintf(w, `<div id="items-section">
<div class="bg-white rounded-xl shadow p-6 mb-6">
<h2 class="text-lg font-semibold mb-4">Line Items</h2>
<table class="w-full text-sm">
<thead>
<tr class="text-left text-slate-500 border-b border-slate-200">
<th class="py-2">Description</th><th>Category</th><th>Qty</th><th>Unit</th><th>Unit Price (£)</th><th>VAT %%</th><th>Optional</th><th>Total</th><th></th>
</tr>
</thead>
<tbody>
`); err != nil {
		return err
	}

	for _, item := range data.Items {
		patchURL := fmt.Sprintf("/quotes/%s/items/%s", data.ID, item.ID)
		if _, err := fmt.Fprintf(w, `<tr class="border-b border-slate-100">
<td class="py-2 pr-2"><input type="text" name="description" value="%s"
  hx-patch="%s" hx-target="#items-section" hx-swap="outerHTML" hx-trigger="change"
  class="w-full border border-slate-200 rounded px-2 py-1"></td>
<td class="pr-2">%s</td>
<td class="pr-2"><input type="text" name="qty" value="%s" inputmode="decimal"
  hx-patch="%s" hx-target="#items-section" hx-swap="outerHTML" hx-trigger="change"
  class="w-16 border border-slate-200 rounded px-2 py-1"></td>
<td class="pr-2">%s</td>
<td class="pr-2"><input type="text" name="unit_price" value="%s" inputmode="decimal"
  hx-patch="%s" hx-target="#items-section" hx-swap="outerHTML" hx-trigger="change"
  class="w-24 border border-slate-200 rounded px-2 py-1"></td>
<td class="pr-2"><input type="text" name="vat_rate" value="%s" inputmode="decimal"
  hx-patch="%s" hx-target="#items-section" hx-swap="outerHTML" hx-trigger="change"
  class="w-14 border border-slate-200 rounded px-2 py-1"></td>
<td class="pr-2 text-center"><input type="checkbox"%s
  hx-patch="%s" hx-vals="js:{optional: event.target.checked}"
  hx-target="#items-section" hx-swap="outerHTML" hx-trigger="change"></td>
<td class="pr-2 font-medium">%s</td>
<td><button hx-delete="%s" hx-target="#items-section" hx-swap="outerHTML"
  class="text-red-600 hover:underline">Remove</button></td>
</tr>
`,
			esc(item.Description), patchURL,
			categorySelect(data.Categories, item.Category, patchURL),
			esc(item.Qty), patchURL,
			unitSelect(data.Units, item.Unit, patchURL),
			esc(item.UnitPrice), patchURL,
			esc(item.VATRate), patchURL,
			checked(item.Optional), patchURL,
			esc(item.Total), patchURL); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, `</tbody>
</table>
<form hx-post="/quotes/%s/items" hx-target="#items-section" hx-swap="outerHTML" class="mt-4">
<button type="submit" class="px-3 py-2 rounded border border-dashed border-slate-400 text-slate-600 hover:bg-slate-50 w-full">+ Add line item</button>
</form>
</div>
`, esc(data.ID)); err != nil {
		return err
	}

	if err := writeSummaryPanel(w, data.Totals); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, `</div>
`)
	return err
}

func writeSummaryPanel(w io.Writer, totals TotalsView) error {
	if _, err := fmt.Fprintf(w, `<div class="bg-white rounded-xl shadow p-6">
<h2 class="text-lg font-semibold mb-4">Quote Summary</h2>
<div class="space-y-2 max-w-sm ml-auto text-right">
<div class="flex justify-between"><span class="text-slate-600">Subtotal (ex VAT)</span><span class="font-medium">%s</span></div>
`, esc(totals.Subtotal)); err != nil {
		return err
	}

	if totals.VATRegistered {
		if _, err := fmt.Fprintf(w, `<div class="flex justify-between"><span class="text-slate-600">VAT (%.0f%%)</span><span class="font-medium">%s</span></div>
`, totals.VATRate, esc(totals.VATAmount)); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprint(w, `<div class="flex justify-between"><span class="text-slate-600">VAT</span><span class="text-slate-500">Not VAT registered</span></div>
`); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, `<div class="flex justify-between text-lg font-bold border-t border-slate-200 pt-2"><span>Total</span><span>%s</span></div>
`, esc(totals.Total)); err != nil {
		return err
	}

	if totals.CISApplicable {
		if _, err := fmt.Fprintf(w, `<div class="flex justify-between text-amber-700"><span>CIS deduction (labour)</span><span>%s</span></div>
`, esc(totals.CISDeduction)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, `</div>
</div>
`)
	return err
}

func categorySelect(options []CategoryOption, current, patchURL string) string {
	s := fmt.Sprintf(`<select name="category" hx-patch="%s" hx-target="#items-section" hx-swap="outerHTML" class="border border-slate-200 rounded px-2 py-1">`, patchURL)
	for _, o := range options {
		sel := ""
		if o.Value == current {
			sel = " selected"
		}
		s += fmt.Sprintf(`<option value="%s"%s>%s</option>`, esc(o.Value), sel, esc(o.Label))
	}
	return s + `</select>`
}

func unitSelect(options []UnitOption, current, patchURL string) string {
	s := fmt.Sprintf(`<select name="unit" hx-patch="%s" hx-target="#items-section" hx-swap="outerHTML" class="border border-slate-200 rounded px-2 py-1">`, patchURL)
	for _, o := range options {
		sel := ""
		if o.Value == current {
			sel = " selected"
		}
		s += fmt.Sprintf(`<option value="%s"%s>%s</option>`, esc(o.Value), sel, esc(o.Label))
	}
	return s + `</select>`
}

func checkbox(name, label string, on bool) string {
	return fmt.Sprintf(`<label class="inline-flex items-center gap-2">
<input type="checkbox" name="%s" value="true"%s>
<span class="text-sm">%s</span>
</label>
`, name, checked(on), esc(label))
}

func checked(on bool) string {
	if on {
		return " checked"
	}
	return ""
}
