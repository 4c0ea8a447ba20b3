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

// HandleClientList returns a handler that renders the clients page with
// optional search.
func HandleClientList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		search := strings.TrimSpace(e.Request.URL.Query().Get("q"))

		filter := "id != ''"
		params := map[string]any{}
		if search != "" {
			filter += " && (name ~ {:search} || company ~ {:search} || email ~ {:search})"
			params["search"] = search
		}

		records, err := app.FindRecordsByFilter("clients", filter, "name", 0, 0, params)
		if err != nil {
			log.Printf("clients: could not query clients: %v", err)
			return e.String(500, "Internal error")
		}

		cards := make([]templates.ClientCard, 0, len(records))
		for _, rec := range records {
			cards = append(cards, templates.ClientCard{
				ID:      rec.Id,
				Name:    rec.GetString("name"),
				Company: rec.GetString("company"),
				Email:   rec.GetString("email"),
				Phone:   services.FormatUKPhoneNumber(rec.GetString("phone")),
				Address: services.FormatUKAddress(services.UKAddress{
					Line1:    rec.GetString("address_line_1"),
					City:     rec.GetString("city"),
					Postcode: rec.GetString("postcode"),
				}),
			})
		}

		data := templates.ClientsData{Clients: cards, Search: search}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ClientsContent(data)
		} else {
			component = templates.ClientsPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleClientNew renders the empty add-client form.
func HandleClientNew() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.ClientFormData{IsNew: true}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ClientFormContent(data)
		} else {
			component = templates.ClientFormPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleClientEdit renders the edit form for an existing client.
func HandleClientEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")

		rec, err := app.FindRecordById("clients", clientID)
		if err != nil {
			return e.String(http.StatusNotFound, "Client not found")
		}

		data := clientFormFromRecord(rec)

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ClientFormContent(data)
		} else {
			component = templates.ClientFormPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleClientCreate handles POST /clients.
func HandleClientCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return saveClient(e, app, "")
	}
}

// HandleClientUpdate handles POST /clients/{id}.
func HandleClientUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return saveClient(e, app, e.Request.PathValue("id"))
	}
}

// saveClient validates and persists a client. An empty clientID creates a
// new record. Postcode, phone and sort-code style fields are normalised to
// their canonical UK formats before saving.
func saveClient(e *core.RequestEvent, app *pocketbase.PocketBase, clientID string) error {
	if err := e.Request.ParseForm(); err != nil {
		return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
	}

	fields := map[string]string{
		"name":           strings.TrimSpace(e.Request.FormValue("name")),
		"company":        strings.TrimSpace(e.Request.FormValue("company")),
		"email":          strings.TrimSpace(e.Request.FormValue("email")),
		"phone":          strings.TrimSpace(e.Request.FormValue("phone")),
		"address_line_1": strings.TrimSpace(e.Request.FormValue("address_line_1")),
		"address_line_2": strings.TrimSpace(e.Request.FormValue("address_line_2")),
		"city":           strings.TrimSpace(e.Request.FormValue("city")),
		"county":         strings.TrimSpace(e.Request.FormValue("county")),
		"postcode":       strings.TrimSpace(e.Request.FormValue("postcode")),
		"vat_number":     strings.TrimSpace(e.Request.FormValue("vat_number")),
	}

	errors := services.ValidateClientFields(fields)
	if fields["name"] == "" {
		errors["name"] = "Name is required"
	}
	if len(errors) > 0 {
		SetToast(e, "warning", "Please fix the errors below")
		data := templates.ClientFormData{
			IsNew:        clientID == "",
			ID:           clientID,
			Name:         fields["name"],
			Company:      fields["company"],
			Email:        fields["email"],
			Phone:        fields["phone"],
			AddressLine1: fields["address_line_1"],
			AddressLine2: fields["address_line_2"],
			City:         fields["city"],
			County:       fields["county"],
			Postcode:     fields["postcode"],
			VATNumber:    fields["vat_number"],
			Errors:       errors,
		}
		return templates.ClientFormContent(data).Render(e.Request.Context(), e.Response)
	}

	var record *core.Record
	if clientID == "" {
		col, err := app.FindCollectionByNameOrId("clients")
		if err != nil {
			log.Printf("clients: could not find clients collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		record = core.NewRecord(col)
	} else {
		var err error
		record, err = app.FindRecordById("clients", clientID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Client not found")
		}
	}

	record.Set("name", fields["name"])
	record.Set("company", fields["company"])
	record.Set("email", fields["email"])
	record.Set("phone", services.FormatUKPhoneNumber(fields["phone"]))
	record.Set("address_line_1", fields["address_line_1"])
	record.Set("address_line_2", fields["address_line_2"])
	record.Set("city", fields["city"])
	record.Set("county", fields["county"])
	record.Set("postcode", services.FormatUKPostcode(fields["postcode"]))
	record.Set("vat_number", strings.ToUpper(fields["vat_number"]))

	if err := app.Save(record); err != nil {
		log.Printf("clients: could not save client: %v", err)
		return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}

	SetToast(e, "success", "Client saved")

	if e.Request.Header.Get("HX-Request") == "true" {
		e.Response.Header().Set("HX-Redirect", "/clients")
		return e.String(http.StatusOK, "")
	}
	return e.Redirect(http.StatusFound, "/clients")
}

// HandleClientDelete handles DELETE /clients/{id}.
func HandleClientDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")

		record, err := app.FindRecordById("clients", clientID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Client not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("clients: could not delete client %s: %v", clientID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Client deleted")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/clients")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/clients")
	}
}

func clientFormFromRecord(rec *core.Record) templates.ClientFormData {
	return templates.ClientFormData{
		ID:           rec.Id,
		Name:         rec.GetString("name"),
		Company:      rec.GetString("company"),
		Email:        rec.GetString("email"),
		Phone:        rec.GetString("phone"),
		AddressLine1: rec.GetString("address_line_1"),
		AddressLine2: rec.GetString("address_line_2"),
		City:         rec.GetString("city"),
		County:       rec.GetString("county"),
		Postcode:     rec.GetString("postcode"),
		VATNumber:    rec.GetString("vat_number"),
	}
}
