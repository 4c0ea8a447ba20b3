package collections_test

import (
	"testing"

	"tradequote/collections"
	"tradequote/testhelpers"
)

func TestSeed(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	clients, err := app.FindAllRecords("clients")
	if err != nil {
		t.Fatalf("could not load clients: %v", err)
	}
	if len(clients) != 3 {
		t.Errorf("expected 3 seeded clients, got %d", len(clients))
	}

	quotes, err := app.FindAllRecords("quotes")
	if err != nil {
		t.Fatalf("could not load quotes: %v", err)
	}
	if len(quotes) != 3 {
		t.Errorf("expected 3 seeded quotes, got %d", len(quotes))
	}
	for _, q := range quotes {
		if q.GetString("share_token") == "" {
			t.Errorf("quote %s seeded without a share token", q.GetString("quote_number"))
		}
	}

	items, err := app.FindAllRecords("quote_items")
	if err != nil {
		t.Fatalf("could not load quote items: %v", err)
	}
	if len(items) == 0 {
		t.Error("expected seeded line items")
	}
	for _, item := range items {
		if item.GetString("status") == "" {
			t.Errorf("seeded item %q has no status", item.GetString("description"))
		}
	}

	settings, err := app.FindAllRecords("company_settings")
	if err != nil {
		t.Fatalf("could not load company settings: %v", err)
	}
	if len(settings) != 1 {
		t.Fatalf("expected 1 settings record, got %d", len(settings))
	}
	if got := settings[0].GetString("trading_name"); got != "Johnson Electrical Services Ltd" {
		t.Errorf("trading_name = %q", got)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed failed: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}

	clients, err := app.FindAllRecords("clients")
	if err != nil {
		t.Fatalf("could not load clients: %v", err)
	}
	if len(clients) != 3 {
		t.Errorf("expected 3 clients after re-seeding, got %d", len(clients))
	}
}
