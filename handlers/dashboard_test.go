package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tradequote/testhelpers"
)

func TestHandleDashboardEmpty(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	e, rec := newTestRequestEvent(app, req)

	if err := HandleDashboard(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Dashboard", "No quotes yet")
}

func TestHandleDashboardStats(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "John Johnson")

	accepted := testhelpers.CreateTestQuote(t, app, client.Id, "Kitchen rewire")
	accepted.Set("status", "accepted")
	if err := app.Save(accepted); err != nil {
		t.Fatalf("could not mark quote accepted: %v", err)
	}
	// 4 × 85 at 20% VAT = 408 inc VAT
	testhelpers.CreateTestQuoteItem(t, app, accepted.Id, "Install sockets", 4, 85.00)

	testhelpers.CreateTestQuote(t, app, client.Id, "Garage consumer unit") // draft

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	e, rec := newTestRequestEvent(app, req)

	if err := HandleDashboard(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Kitchen rewire",
		"John Johnson",
		"£408.00", // accepted revenue
		"50%",     // acceptance rate: 1 of 2
	)
}

func TestHandleDashboardHTMXRendersContentOnly(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("HX-Request", "true")
	e, rec := newTestRequestEvent(app, req)

	if err := HandleDashboard(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Dashboard")
	if strings.Contains(body, "<!DOCTYPE") {
		t.Error("HTMX response should not include the full page shell")
	}
}
