package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// newTestRequestEvent builds a RequestEvent around a recorder so handlers can
// be invoked directly without a running server.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request) (*core.RequestEvent, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e, rec
}

// newFormRequest builds an HTMX form submission.
func newFormRequest(method, target string, form url.Values) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("HX-Request", "true")
	return req
}
