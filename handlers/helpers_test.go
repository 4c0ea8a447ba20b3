package handlers

import (
	"testing"

	"tradequote/testhelpers"
)

func TestParseFloatOrZero(t *testing.T) {
	tests := []struct {
		input  string
		expect float64
	}{
		{"12.5", 12.5},
		{" 85 ", 85},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"1,000", 0}, // thousands separators are not accepted
	}

	for _, tt := range tests {
		if got := parseFloatOrZero(tt.input); got != tt.expect {
			t.Errorf("parseFloatOrZero(%q) = %v, want %v", tt.input, got, tt.expect)
		}
	}
}

func TestFormatInputNumber(t *testing.T) {
	tests := []struct {
		input  float64
		expect string
	}{
		{4, "4"},
		{2.5, "2.50"},
		{85.00, "85"},
		{0, "0"},
		{19.99, "19.99"},
	}

	for _, tt := range tests {
		if got := formatInputNumber(tt.input); got != tt.expect {
			t.Errorf("formatInputNumber(%v) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestBuildQuoteFormData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "John Johnson")
	quote := testhelpers.CreateTestQuote(t, app, client.Id, "Kitchen rewire")
	testhelpers.CreateTestQuoteItem(t, app, quote.Id, "Install sockets", 4, 85.00)

	data, err := buildQuoteFormData(app, quote.Id)
	if err != nil {
		t.Fatalf("buildQuoteFormData failed: %v", err)
	}

	if data.QuoteNumber != "TQ-25-26-901" {
		t.Errorf("QuoteNumber = %q, want TQ-25-26-901", data.QuoteNumber)
	}
	if len(data.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(data.Items))
	}
	if data.Items[0].Total != "£340.00" {
		t.Errorf("item total = %q, want £340.00", data.Items[0].Total)
	}
	if data.Totals.Subtotal != "£340.00" || data.Totals.Total != "£408.00" {
		t.Errorf("totals = subtotal %q total %q, want £340.00 and £408.00",
			data.Totals.Subtotal, data.Totals.Total)
	}
	if len(data.Regulations) == 0 {
		t.Error("expected electrical regulations to be populated")
	}
	if len(data.Suppliers) == 0 {
		t.Error("expected supplier suggestions to be populated")
	}
}

func TestBuildQuoteFormDataUnknownQuote(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if _, err := buildQuoteFormData(app, "missing"); err == nil {
		t.Error("expected an error for an unknown quote")
	}
}

func TestBuildQuoteFormDataCIS(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Sarah Miller")
	quote := testhelpers.CreateTestQuote(t, app, client.Id, "Extension groundworks")
	quote.Set("trade_category", "construction")
	quote.Set("cis_applicable", true)
	if err := app.Save(quote); err != nil {
		t.Fatalf("failed to update quote: %v", err)
	}
	testhelpers.CreateTestQuoteItem(t, app, quote.Id, "Groundworks labour", 10, 50.00)

	data, err := buildQuoteFormData(app, quote.Id)
	if err != nil {
		t.Fatalf("buildQuoteFormData failed: %v", err)
	}

	if !data.Totals.CISApplicable {
		t.Error("expected CISApplicable to be set")
	}
	// 500 labour at the default CIS rate
	if data.Totals.CISDeduction != "£100.00" {
		t.Errorf("CISDeduction = %q, want £100.00", data.Totals.CISDeduction)
	}
}
