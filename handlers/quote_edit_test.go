package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"tradequote/testhelpers"
)

func TestHandleQuoteUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "John Johnson")
	quote := testhelpers.CreateTestQuote(t, app, client.Id, "Kitchen rewire")

	form := url.Values{
		"title":          {"Kitchen rewire and consumer unit"},
		"client":         {client.Id},
		"status":         {"pending"},
		"trade_category": {"electrical"},
		"valid_until":    {"2026-06-30"},
		"vat_registered": {"on"},
		"cis_applicable": {"on"},
	}
	req := newFormRequest(http.MethodPost, "/quotes/"+quote.Id, form)
	req.SetPathValue("id", quote.Id)
	e, rec := newTestRequestEvent(app, req)

	if err := HandleQuoteUpdate(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	updated, err := app.FindRecordById("quotes", quote.Id)
	if err != nil {
		t.Fatalf("could not reload quote: %v", err)
	}
	if got := updated.GetString("title"); got != "Kitchen rewire and consumer unit" {
		t.Errorf("title = %q", got)
	}
	if got := updated.GetString("status"); got != "pending" {
		t.Errorf("status = %q, want pending", got)
	}
	if got := updated.GetString("valid_until"); got != "30/06/2026" {
		t.Errorf("valid_until = %q, want 30/06/2026", got)
	}
	if !updated.GetBool("cis_applicable") {
		t.Error("cis_applicable should be set")
	}

	// Quote number and share token survive detail edits.
	if got := updated.GetString("quote_number"); got != "TQ-25-26-901" {
		t.Errorf("quote_number changed to %q", got)
	}
	if updated.GetString("share_token") == "" {
		t.Error("share_token was lost")
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Kitchen rewire and consumer unit")
}

func TestHandleQuoteUpdateRequiresTitle(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "John Johnson")
	quote := testhelpers.CreateTestQuote(t, app, client.Id, "Kitchen rewire")

	form := url.Values{"title": {""}}
	req := newFormRequest(http.MethodPost, "/quotes/"+quote.Id, form)
	req.SetPathValue("id", quote.Id)
	e, rec := newTestRequestEvent(app, req)

	if err := HandleQuoteUpdate(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	unchanged, _ := app.FindRecordById("quotes", quote.Id)
	if got := unchanged.GetString("title"); got != "Kitchen rewire" {
		t.Errorf("title = %q, want unchanged", got)
	}
}

func TestHandleQuoteUpdateNotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{"title": {"Anything"}}
	req := newFormRequest(http.MethodPost, "/quotes/missing", form)
	req.SetPathValue("id", "missing")
	e, rec := newTestRequestEvent(app, req)

	if err := HandleQuoteUpdate(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
