package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tradequote/testhelpers"
)

func TestHandleQuoteList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "John Johnson")
	quote := testhelpers.CreateTestQuote(t, app, client.Id, "Kitchen rewire")
	testhelpers.CreateTestQuoteItem(t, app, quote.Id, "Install sockets", 4, 85.00)

	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	e, rec := newTestRequestEvent(app, req)

	if err := HandleQuoteList(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Kitchen rewire",
		"TQ-25-26-901",
		"John Johnson",
		"£408.00", // derived total inc VAT
	)
}

func TestHandleQuoteListStatusFilter(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "John Johnson")
	testhelpers.CreateTestQuote(t, app, client.Id, "Draft job")
	accepted := testhelpers.CreateTestQuote(t, app, client.Id, "Accepted job")
	accepted.Set("status", "accepted")
	if err := app.Save(accepted); err != nil {
		t.Fatalf("could not mark quote accepted: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/quotes?status=accepted", nil)
	e, rec := newTestRequestEvent(app, req)

	if err := HandleQuoteList(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Accepted job")
	if strings.Contains(body, "Draft job") {
		t.Error("filtered list should not include the draft quote")
	}
}

func TestHandleQuoteListSearch(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "John Johnson")
	testhelpers.CreateTestQuote(t, app, client.Id, "Kitchen rewire")
	testhelpers.CreateTestQuote(t, app, client.Id, "Bathroom refit")

	req := httptest.NewRequest(http.MethodGet, "/quotes?q=Bathroom", nil)
	e, rec := newTestRequestEvent(app, req)

	if err := HandleQuoteList(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Bathroom refit")
	if strings.Contains(body, "Kitchen rewire") {
		t.Error("search result should not include the other quote")
	}
}

func TestHandleQuoteEdit(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "John Johnson")
	quote := testhelpers.CreateTestQuote(t, app, client.Id, "Kitchen rewire")
	testhelpers.CreateTestQuoteItem(t, app, quote.Id, "Install sockets", 4, 85.00)

	req := httptest.NewRequest(http.MethodGet, "/quotes/"+quote.Id, nil)
	req.SetPathValue("id", quote.Id)
	e, rec := newTestRequestEvent(app, req)

	if err := HandleQuoteEdit(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Kitchen rewire", "Install sockets", "TQ-25-26-901")
}

func TestHandleQuoteEditNotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/quotes/missing", nil)
	req.SetPathValue("id", "missing")
	e, rec := newTestRequestEvent(app, req)

	if err := HandleQuoteEdit(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleQuoteDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "John Johnson")
	quote := testhelpers.CreateTestQuote(t, app, client.Id, "Kitchen rewire")
	item := testhelpers.CreateTestQuoteItem(t, app, quote.Id, "Install sockets", 4, 85.00)

	req := newFormRequest(http.MethodDelete, "/quotes/"+quote.Id, nil)
	req.SetPathValue("id", quote.Id)
	e, rec := newTestRequestEvent(app, req)

	if err := HandleQuoteDelete(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/quotes")

	if _, err := app.FindRecordById("quotes", quote.Id); err == nil {
		t.Error("quote still exists after delete")
	}
	// Line items cascade with the quote.
	if _, err := app.FindRecordById("quote_items", item.Id); err == nil {
		t.Error("line item survived the quote delete")
	}
}
