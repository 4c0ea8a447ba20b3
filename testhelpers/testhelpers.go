// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tradequote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestClient creates a client record with the given name and returns it.
func CreateTestClient(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("clients")
	if err != nil {
		t.Fatalf("failed to find clients collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("email", "client@example.co.uk")
	record.Set("phone", "07123 456 789")
	record.Set("address_line_1", "123 Test Street")
	record.Set("city", "Manchester")
	record.Set("postcode", "M1 1AA")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test client: %v", err)
	}

	return record
}

// CreateTestQuote creates a quote record linked to a client and returns it.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, clientID, title string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote_number", "TQ-25-26-901")
	record.Set("client", clientID)
	record.Set("title", title)
	record.Set("status", "draft")
	record.Set("trade_category", "electrical")
	record.Set("vat_registered", true)
	record.Set("share_token", uuid.NewString())

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// CreateTestQuoteItem creates a line item record under a quote.
func CreateTestQuoteItem(t *testing.T, app *pocketbase.PocketBase, quoteID, description string, qty, unitPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_items")
	if err != nil {
		t.Fatalf("failed to find quote_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("sort_order", 1)
	record.Set("description", description)
	record.Set("category", "labour")
	record.Set("qty", qty)
	record.Set("unit", "each")
	record.Set("unit_price", unitPrice)
	record.Set("vat_rate", 20.0)
	record.Set("status", "pending")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote item: %v", err)
	}

	return record
}

// CreateTestCompanySettings creates the company_settings record.
func CreateTestCompanySettings(t *testing.T, app *pocketbase.PocketBase, tradingName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("company_settings")
	if err != nil {
		t.Fatalf("failed to find company_settings collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("trading_name", tradingName)
	record.Set("owner_name", "Test Owner")
	record.Set("email", "owner@example.co.uk")
	record.Set("vat_registered", true)
	record.Set("default_vat_rate", 20)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test company settings: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
