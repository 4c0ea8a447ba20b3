package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"tradequote/testhelpers"
)

func TestHandleQuoteAddItem(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "John Johnson")
	quote := testhelpers.CreateTestQuote(t, app, client.Id, "Kitchen rewire")

	req := newFormRequest(http.MethodPost, "/quotes/"+quote.Id+"/items", url.Values{})
	req.SetPathValue("id", quote.Id)
	e, rec := newTestRequestEvent(app, req)

	if err := HandleQuoteAddItem(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	items, err := app.FindRecordsByFilter("quote_items", "quote = {:q}", "", 0, 0, map[string]any{"q": quote.Id})
	if err != nil || len(items) != 1 {
		t.Fatalf("expected 1 item after add, got %d (err %v)", len(items), err)
	}
	item := items[0]
	if item.GetString("description") != "New line item" {
		t.Errorf("description = %q, want New line item", item.GetString("description"))
	}
	if item.GetFloat("qty") != 1 || item.GetString("unit") != "each" {
		t.Errorf("defaults wrong: qty %v unit %q", item.GetFloat("qty"), item.GetString("unit"))
	}
	if item.GetInt("sort_order") != 1 {
		t.Errorf("sort_order = %d, want 1", item.GetInt("sort_order"))
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "items-section", "New line item")
}

func TestHandleQuoteAddItemIncrementsSortOrder(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "John Johnson")
	quote := testhelpers.CreateTestQuote(t, app, client.Id, "Kitchen rewire")
	testhelpers.CreateTestQuoteItem(t, app, quote.Id, "Existing item", 1, 10)

	req := newFormRequest(http.MethodPost, "/quotes/"+quote.Id+"/items", url.Values{})
	req.SetPathValue("id", quote.Id)
	e, _ := newTestRequestEvent(app, req)

	if err := HandleQuoteAddItem(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	items, err := app.FindRecordsByFilter("quote_items", "quote = {:q}", "-sort_order", 1, 0, map[string]any{"q": quote.Id})
	if err != nil || len(items) == 0 {
		t.Fatalf("could not load items: %v", err)
	}
	if items[0].GetInt("sort_order") != 2 {
		t.Errorf("new item sort_order = %d, want 2", items[0].GetInt("sort_order"))
	}
}

func TestHandleQuoteAddItemUnknownQuote(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := newFormRequest(http.MethodPost, "/quotes/missing/items", url.Values{})
	req.SetPathValue("id", "missing")
	e, rec := newTestRequestEvent(app, req)

	if err := HandleQuoteAddItem(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleQuoteUpdateItem(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "John Johnson")
	quote := testhelpers.CreateTestQuote(t, app, client.Id, "Kitchen rewire")
	item := testhelpers.CreateTestQuoteItem(t, app, quote.Id, "Install sockets", 4, 85.00)

	t.Run("updates only submitted fields", func(t *testing.T) {
		form := url.Values{"unit_price": {"95.50"}}
		req := newFormRequest(http.MethodPatch, "/quotes/"+quote.Id+"/items/"+item.Id, form)
		req.SetPathValue("id", quote.Id)
		req.SetPathValue("itemId", item.Id)
		e, rec := newTestRequestEvent(app, req)

		if err := HandleQuoteUpdateItem(app)(e); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		updated, err := app.FindRecordById("quote_items", item.Id)
		if err != nil {
			t.Fatalf("could not reload item: %v", err)
		}
		if updated.GetFloat("unit_price") != 95.50 {
			t.Errorf("unit_price = %v, want 95.50", updated.GetFloat("unit_price"))
		}
		if updated.GetString("description") != "Install sockets" {
			t.Errorf("description changed unexpectedly to %q", updated.GetString("description"))
		}
		if updated.GetFloat("qty") != 4 {
			t.Errorf("qty changed unexpectedly to %v", updated.GetFloat("qty"))
		}
	})

	t.Run("unparseable number falls back to zero", func(t *testing.T) {
		form := url.Values{"qty": {"lots"}}
		req := newFormRequest(http.MethodPatch, "/quotes/"+quote.Id+"/items/"+item.Id, form)
		req.SetPathValue("id", quote.Id)
		req.SetPathValue("itemId", item.Id)
		e, _ := newTestRequestEvent(app, req)

		if err := HandleQuoteUpdateItem(app)(e); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}

		updated, _ := app.FindRecordById("quote_items", item.Id)
		if updated.GetFloat("qty") != 0 {
			t.Errorf("qty = %v, want 0", updated.GetFloat("qty"))
		}
	})

	t.Run("blank description is ignored", func(t *testing.T) {
		form := url.Values{"description": {"   "}}
		req := newFormRequest(http.MethodPatch, "/quotes/"+quote.Id+"/items/"+item.Id, form)
		req.SetPathValue("id", quote.Id)
		req.SetPathValue("itemId", item.Id)
		e, _ := newTestRequestEvent(app, req)

		if err := HandleQuoteUpdateItem(app)(e); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}

		updated, _ := app.FindRecordById("quote_items", item.Id)
		if updated.GetString("description") != "Install sockets" {
			t.Errorf("description = %q, want unchanged", updated.GetString("description"))
		}
	})

	t.Run("optional flag can be cleared", func(t *testing.T) {
		item.Set("optional", true)
		if err := app.Save(item); err != nil {
			t.Fatalf("could not flag item optional: %v", err)
		}

		form := url.Values{"optional": {"false"}}
		req := newFormRequest(http.MethodPatch, "/quotes/"+quote.Id+"/items/"+item.Id, form)
		req.SetPathValue("id", quote.Id)
		req.SetPathValue("itemId", item.Id)
		e, _ := newTestRequestEvent(app, req)

		if err := HandleQuoteUpdateItem(app)(e); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}

		updated, _ := app.FindRecordById("quote_items", item.Id)
		if updated.GetBool("optional") {
			t.Error("optional should have been cleared")
		}
	})
}

func TestHandleQuoteUpdateItemWrongQuote(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "John Johnson")
	quote := testhelpers.CreateTestQuote(t, app, client.Id, "Kitchen rewire")
	other := testhelpers.CreateTestQuote(t, app, client.Id, "Garage consumer unit")
	item := testhelpers.CreateTestQuoteItem(t, app, quote.Id, "Install sockets", 4, 85.00)

	// The item belongs to quote, not other; the handler must refuse.
	form := url.Values{"unit_price": {"1.00"}}
	req := newFormRequest(http.MethodPatch, "/quotes/"+other.Id+"/items/"+item.Id, form)
	req.SetPathValue("id", other.Id)
	req.SetPathValue("itemId", item.Id)
	e, rec := newTestRequestEvent(app, req)

	if err := HandleQuoteUpdateItem(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	unchanged, _ := app.FindRecordById("quote_items", item.Id)
	if unchanged.GetFloat("unit_price") != 85.00 {
		t.Errorf("unit_price = %v, want unchanged 85.00", unchanged.GetFloat("unit_price"))
	}
}

func TestHandleQuoteDeleteItem(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "John Johnson")
	quote := testhelpers.CreateTestQuote(t, app, client.Id, "Kitchen rewire")
	item := testhelpers.CreateTestQuoteItem(t, app, quote.Id, "Install sockets", 4, 85.00)

	req := newFormRequest(http.MethodDelete, "/quotes/"+quote.Id+"/items/"+item.Id, nil)
	req.SetPathValue("id", quote.Id)
	req.SetPathValue("itemId", item.Id)
	e, rec := newTestRequestEvent(app, req)

	if err := HandleQuoteDeleteItem(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if _, err := app.FindRecordById("quote_items", item.Id); err == nil {
		t.Error("item still exists after delete")
	}
}
