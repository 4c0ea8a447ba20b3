package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the clients, quotes, quote_items
// and company_settings collections exist.
func Setup(app *pocketbase.PocketBase) {
	clients := ensureCollection(app, "clients", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "company", Required: false})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "address_line_1", Required: false})
		c.Fields.Add(&core.TextField{Name: "address_line_2", Required: false})
		c.Fields.Add(&core.TextField{Name: "city", Required: false})
		c.Fields.Add(&core.TextField{Name: "county", Required: false})
		c.Fields.Add(&core.TextField{Name: "postcode", Required: false})
		c.Fields.Add(&core.TextField{Name: "vat_number", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	quotes := ensureCollection(app, "quotes", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quote_number", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:         "client",
			Required:     false,
			CollectionId: clients.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "title", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"draft", "pending", "accepted", "declined", "expired"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "trade_category",
			Required:  false,
			Values:    []string{"electrical", "plumbing", "construction", "roofing", "carpentry"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "valid_until", Required: false})
		c.Fields.Add(&core.BoolField{Name: "vat_registered"})
		c.Fields.Add(&core.BoolField{Name: "requires_part_p"})
		c.Fields.Add(&core.BoolField{Name: "requires_building_control"})
		c.Fields.Add(&core.BoolField{Name: "cis_applicable"})
		c.Fields.Add(&core.TextField{Name: "share_token", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quote_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quote",
			Required:      true,
			CollectionId:  quotes.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "category",
			Required:  true,
			Values:    []string{"labour", "materials", "plant", "subcontractor", "other"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "qty", Required: false})
		c.Fields.Add(&core.TextField{Name: "unit", Required: true})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "vat_rate", Required: false})
		c.Fields.Add(&core.BoolField{Name: "optional"})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"pending", "accepted", "declined", "modified"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "client_note", Required: false})
	})

	ensureCollection(app, "company_settings", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "trading_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "owner_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "address_line_1", Required: false})
		c.Fields.Add(&core.TextField{Name: "address_line_2", Required: false})
		c.Fields.Add(&core.TextField{Name: "city", Required: false})
		c.Fields.Add(&core.TextField{Name: "postcode", Required: false})
		c.Fields.Add(&core.TextField{Name: "vat_number", Required: false})
		c.Fields.Add(&core.BoolField{Name: "vat_registered"})
		c.Fields.Add(&core.BoolField{Name: "cis_registered"})
		c.Fields.Add(&core.TextField{Name: "sort_code", Required: false})
		c.Fields.Add(&core.TextField{Name: "account_number", Required: false})
		c.Fields.Add(&core.NumberField{Name: "default_vat_rate", Required: false})
		c.Fields.Add(&core.JSONField{Name: "certifications"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
