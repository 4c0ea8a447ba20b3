package collections

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type clientDef struct {
	name         string
	company      string
	email        string
	phone        string
	addressLine1 string
	addressLine2 string
	city         string
	county       string
	postcode     string
	vatNumber    string
}

type itemDef struct {
	sortOrder   int
	description string
	category    string
	qty         float64
	unit        string
	unitPrice   float64
	vatRate     float64
	optional    bool
	status      string
}

type quoteDef struct {
	quoteNumber             string
	title                   string
	description             string
	status                  string
	tradeCategory           string
	validUntil              string
	vatRegistered           bool
	requiresPartP           bool
	requiresBuildingControl bool
	cisApplicable           bool
	items                   []itemDef
}

// Seed populates the collections with a realistic starting data set for a
// small UK electrical contractor. It is safe to call on every startup
// because it returns early if any client records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if clients already exist ───────────────────
	clientsCol, err := app.FindCollectionByNameOrId("clients")
	if err != nil {
		return fmt.Errorf("seed: could not find clients collection: %w", err)
	}
	existing, err := app.FindAllRecords(clientsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query clients: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: clients collection is empty – inserting seed data …")

	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("seed: could not find quotes collection: %w", err)
	}
	itemsCol, err := app.FindCollectionByNameOrId("quote_items")
	if err != nil {
		return fmt.Errorf("seed: could not find quote_items collection: %w", err)
	}
	settingsCol, err := app.FindCollectionByNameOrId("company_settings")
	if err != nil {
		return fmt.Errorf("seed: could not find company_settings collection: %w", err)
	}

	// ── helper: create client ────────────────────────────────────────
	createClient := func(d clientDef) (*core.Record, error) {
		r := core.NewRecord(clientsCol)
		r.Set("name", d.name)
		r.Set("company", d.company)
		r.Set("email", d.email)
		r.Set("phone", d.phone)
		r.Set("address_line_1", d.addressLine1)
		r.Set("address_line_2", d.addressLine2)
		r.Set("city", d.city)
		r.Set("county", d.county)
		r.Set("postcode", d.postcode)
		r.Set("vat_number", d.vatNumber)
		if err := app.Save(r); err != nil {
			return nil, fmt.Errorf("seed: save client %q: %w", d.name, err)
		}
		return r, nil
	}

	// ── helper: create quote with line items ─────────────────────────
	createQuote := func(clientID string, d quoteDef) error {
		r := core.NewRecord(quotesCol)
		r.Set("quote_number", d.quoteNumber)
		r.Set("client", clientID)
		r.Set("title", d.title)
		r.Set("description", d.description)
		r.Set("status", d.status)
		r.Set("trade_category", d.tradeCategory)
		r.Set("valid_until", d.validUntil)
		r.Set("vat_registered", d.vatRegistered)
		r.Set("requires_part_p", d.requiresPartP)
		r.Set("requires_building_control", d.requiresBuildingControl)
		r.Set("cis_applicable", d.cisApplicable)
		r.Set("share_token", uuid.NewString())
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save quote %q: %w", d.quoteNumber, err)
		}

		for _, item := range d.items {
			ir := core.NewRecord(itemsCol)
			ir.Set("quote", r.Id)
			ir.Set("sort_order", item.sortOrder)
			ir.Set("description", item.description)
			ir.Set("category", item.category)
			ir.Set("qty", item.qty)
			ir.Set("unit", item.unit)
			ir.Set("unit_price", item.unitPrice)
			ir.Set("vat_rate", item.vatRate)
			ir.Set("optional", item.optional)
			status := item.status
			if status == "" {
				status = "pending"
			}
			ir.Set("status", status)
			if err := app.Save(ir); err != nil {
				return fmt.Errorf("seed: save quote item %q: %w", item.description, err)
			}
		}
		return nil
	}

	// ── Clients ──────────────────────────────────────────────────────
	johnson, err := createClient(clientDef{
		name: "John Johnson", company: "Johnson Residence",
		email: "john@johnson.co.uk", phone: "07123 456 789",
		addressLine1: "123 Oak Street", city: "Manchester",
		county: "Greater Manchester", postcode: "M1 1AA",
	})
	if err != nil {
		return err
	}

	miller, err := createClient(clientDef{
		name: "Sarah Miller", company: "Miller Construction",
		email: "sarah@millerconstruction.co.uk", phone: "020 7946 0958",
		addressLine1: "456 Business Avenue", addressLine2: "Unit 12",
		city: "London", county: "Greater London", postcode: "SW1A 1AA",
		vatNumber: "GB123456789",
	})
	if err != nil {
		return err
	}

	brown, err := createClient(clientDef{
		name: "Emma Brown", company: "Brown Family Home",
		email: "emma.brown@gmail.com", phone: "07700 900 123",
		addressLine1: "78 Victoria Road", city: "Leeds",
		county: "West Yorkshire", postcode: "LS1 2AB",
	})
	if err != nil {
		return err
	}

	// ── Quotes ───────────────────────────────────────────────────────
	if err := createQuote(johnson.Id, quoteDef{
		quoteNumber:   "TQ-25-26-001",
		title:         "Kitchen Electrical Upgrade - Socket & Lighting Installation",
		description:   "Full kitchen rewire with new sockets, downlights and under-cabinet lighting.",
		status:        "pending",
		tradeCategory: "electrical",
		validUntil:    "29/01/2026",
		vatRegistered: true,
		requiresPartP: true,
		items: []itemDef{
			{sortOrder: 1, description: "Electrical socket installation - 13A double socket with USB charging", category: "labour", qty: 4, unit: "each", unitPrice: 85.00, vatRate: 20},
			{sortOrder: 2, description: "LED downlight installation - 5W warm white IP65 rated", category: "labour", qty: 8, unit: "each", unitPrice: 45.00, vatRate: 20},
			{sortOrder: 3, description: "Kitchen under-cabinet LED strip lighting", category: "materials", qty: 3, unit: "metre", unitPrice: 25.00, vatRate: 20, optional: true},
			{sortOrder: 4, description: "Smart dimmer switch upgrade", category: "materials", qty: 2, unit: "each", unitPrice: 65.00, vatRate: 20, optional: true},
		},
	}); err != nil {
		return err
	}

	if err := createQuote(miller.Id, quoteDef{
		quoteNumber:             "TQ-25-26-002",
		title:                   "Office Unit Rewire - Three Phase Distribution",
		description:             "Rewire of two-storey office unit including new distribution board and emergency lighting.",
		status:                  "accepted",
		tradeCategory:           "construction",
		validUntil:              "28/01/2026",
		vatRegistered:           true,
		requiresBuildingControl: true,
		cisApplicable:           true,
		items: []itemDef{
			{sortOrder: 1, description: "First fix wiring - office floors 1 and 2", category: "labour", qty: 10, unit: "day", unitPrice: 320.00, vatRate: 20, status: "accepted"},
			{sortOrder: 2, description: "Three phase distribution board supply and fit", category: "materials", qty: 1, unit: "each", unitPrice: 1850.00, vatRate: 20, status: "accepted"},
			{sortOrder: 3, description: "Emergency lighting circuit and fittings", category: "materials", qty: 24, unit: "each", unitPrice: 85.00, vatRate: 20, status: "accepted"},
			{sortOrder: 4, description: "Groundworks for external supply trench", category: "subcontractor", qty: 18, unit: "metre", unitPrice: 95.00, vatRate: 20, status: "accepted"},
		},
	}); err != nil {
		return err
	}

	if err := createQuote(brown.Id, quoteDef{
		quoteNumber:   "TQ-25-26-003",
		title:         "Bathroom Electrics - Shower Circuit & Extractor",
		description:   "New 10.5kW shower circuit, extractor fan and shaver socket.",
		status:        "draft",
		tradeCategory: "electrical",
		validUntil:    "27/01/2026",
		vatRegistered: true,
		requiresPartP: true,
		items: []itemDef{
			{sortOrder: 1, description: "10.5kW shower circuit installation with RCD protection", category: "labour", qty: 1, unit: "each", unitPrice: 380.00, vatRate: 20},
			{sortOrder: 2, description: "Inline extractor fan with timer overrun", category: "materials", qty: 1, unit: "each", unitPrice: 145.00, vatRate: 20},
			{sortOrder: 3, description: "Shaver socket supply and fit", category: "materials", qty: 1, unit: "each", unitPrice: 55.00, vatRate: 20, optional: true},
		},
	}); err != nil {
		return err
	}

	// ── Company settings ─────────────────────────────────────────────
	settings := core.NewRecord(settingsCol)
	settings.Set("trading_name", "Johnson Electrical Services Ltd")
	settings.Set("owner_name", "Mike Johnson")
	settings.Set("email", "mike@johnsonelectrical.co.uk")
	settings.Set("phone", "07123 456 789")
	settings.Set("address_line_1", "Unit 4, Trafford Trade Park")
	settings.Set("city", "Manchester")
	settings.Set("postcode", "M17 1AB")
	settings.Set("vat_number", "GB987654321")
	settings.Set("vat_registered", true)
	settings.Set("cis_registered", false)
	settings.Set("sort_code", "12-34-56")
	settings.Set("account_number", "12345678")
	settings.Set("default_vat_rate", 20)
	settings.Set("certifications", []string{
		"NICEIC Approved Contractor",
		"Part P Certified",
		"18th Edition BS 7671",
	})
	if err := app.Save(settings); err != nil {
		return fmt.Errorf("seed: save company settings: %w", err)
	}

	log.Println("seed: all seed data inserted successfully (3 clients, 3 quotes, 11 items, company settings)")
	return nil
}
