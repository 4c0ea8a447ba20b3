package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ClientCard is one card on the clients page.
type ClientCard struct {
	ID      string
	Name    string
	Company string
	Email   string
	Phone   string
	Address string
}

// ClientsData feeds the clients page.
type ClientsData struct {
	Clients []ClientCard
	Search  string
}

// ClientFormData feeds the add/edit client form. Errors maps field names to
// validation messages.
type ClientFormData struct {
	IsNew        bool
	ID           string
	Name         string
	Company      string
	Email        string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	County       string
	Postcode     string
	VATNumber    string
	Errors       map[string]string
}

// ClientsPage renders the clients list inside the full layout.
func ClientsPage(data ClientsData) templ.Component {
	return page("Clients", "clients", func(w io.Writer) error {
		return writeClients(w, data)
	})
}

// ClientsContent renders only the clients list content, for HTMX swaps.
func ClientsContent(data ClientsData) templ.Component {
	return component(func(w io.Writer) error {
		return writeClients(w, data)
	})
}

func writeClients(w io.Writer, data ClientsData) error {
	if _, err := fmt.Fprintf(w, `<div class="flex justify-between items-center mb-8">
<div>
<h1 class="text-3xl font-bold">Clients</h1>
<p class="text-slate-600 mt-1">Manage your client relationships</p>
</div>
<a href="/clients/new" class="px-4 py-2 rounded bg-blue-600 text-white hover:bg-blue-700">Add Client</a>
</div>
<form class="bg-white rounded-xl shadow p-4 mb-6" hx-get="/clients" hx-target="#main-content">
<input type="search" name="q" value="%s" placeholder="Search clients..."
  class="w-full border border-slate-300 rounded px-3 py-2">
</form>
<div class="grid md:grid-cols-2 lg:grid-cols-3 gap-6">
`, esc(data.Search)); err != nil {
		return err
	}

	if len(data.Clients) == 0 {
		if _, err := fmt.Fprint(w, `<p class="text-slate-500">No clients found.</p>
`); err != nil {
			return err
		}
	}

	for _, c := range data.Clients {
		if _, err := fmt.Fprintf(w, `<div class="bg-white rounded-xl shadow p-6">
<h3 class="text-lg font-semibold">%s</h3>
<p class="text-sm text-slate-500 mb-3">%s</p>
<p class="text-sm text-slate-600">%s</p>
<p class="text-sm text-slate-600">%s</p>
<p class="text-sm text-slate-600">%s</p>
<div class="mt-4 pt-3 border-t border-slate-200 flex gap-3">
<a href="/clients/%s" class="text-blue-600 hover:underline text-sm">Edit</a>
<button class="text-red-600 hover:underline text-sm"
  hx-delete="/clients/%s" hx-confirm="Delete client %s?" hx-target="#main-content">Delete</button>
</div>
</div>
`, esc(c.Name), esc(c.Company), esc(c.Email), esc(c.Phone), esc(c.Address),
			esc(c.ID), esc(c.ID), esc(c.Name)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, `</div>
`)
	return err
}

// ClientFormPage renders the add/edit client form inside the full layout.
func ClientFormPage(data ClientFormData) templ.Component {
	return page("Client", "clients", func(w io.Writer) error {
		return writeClientForm(w, data)
	})
}

// ClientFormContent renders only the client form, for HTMX swaps (used to
// re-render with validation errors).
func ClientFormContent(data ClientFormData) templ.Component {
	return component(func(w io.Writer) error {
		return writeClientForm(w, data)
	})
}

func writeClientForm(w io.Writer, data ClientFormData) error {
	heading := "Add Client"
	action := "/clients"
	if !data.IsNew {
		heading = "Edit Client"
		action = "/clients/" + data.ID
	}

	if _, err := fmt.Fprintf(w, `<h1 class="text-3xl font-bold mb-8">%s</h1>
<form hx-post="%s" hx-target="#main-content" class="bg-white rounded-xl shadow p-6 max-w-2xl">
<div class="grid md:grid-cols-2 gap-4">
%s%s%s%s%s%s%s%s%s%s</div>
<div class="mt-6">
<button type="submit" class="px-4 py-2 rounded bg-blue-600 text-white hover:bg-blue-700">Save Client</button>
</div>
</form>
`, heading, action,
		formField("Name", "name", data.Name, "John Johnson", data.Errors),
		formField("Company", "company", data.Company, "Johnson Residence Ltd", data.Errors),
		formField("Email", "email", data.Email, "john@example.co.uk", data.Errors),
		formField("Phone", "phone", data.Phone, "07123 456 789", data.Errors),
		formField("Address line 1", "address_line_1", data.AddressLine1, "123 Oak Street", data.Errors),
		formField("Address line 2", "address_line_2", data.AddressLine2, "", data.Errors),
		formField("City", "city", data.City, "Manchester", data.Errors),
		formField("County", "county", data.County, "Greater Manchester", data.Errors),
		formField("Postcode", "postcode", data.Postcode, "M1 1AA", data.Errors),
		formField("VAT number", "vat_number", data.VATNumber, "GB123456789", data.Errors),
	); err != nil {
		return err
	}
	return nil
}

// formField renders a labelled text input with an optional validation error.
func formField(label, name, value, placeholder string, errors map[string]string) string {
	errHTML := ""
	border := "border-slate-300"
	if msg, ok := errors[name]; ok && msg != "" {
		errHTML = fmt.Sprintf(`<span class="text-sm text-red-600">%s</span>`, esc(msg))
		border = "border-red-400"
	}
	return fmt.Sprintf(`<label class="block">
<span class="text-sm text-slate-600">%s</span>
<input type="text" name="%s" value="%s" placeholder="%s"
  class="mt-1 w-full border %s rounded px-3 py-2">
%s</label>
`, esc(label), name, esc(value), esc(placeholder), border, errHTML)
}
