package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ClientViewData feeds the public quote acceptance page reached via the
// share token link.
type ClientViewData struct {
	Token            string
	CompanyName      string
	ContractorName   string
	Phone            string
	Email            string
	Certifications   []string
	QuoteNumber      string
	Title            string
	ValidUntil       string
	RequiredItems    []ItemView
	OptionalItems    []ItemView
	AcceptedSubtotal string
	VATAmount        string
	FinalTotal       string
	AcceptedCount    int
	TotalCount       int
	CompletionPct    int
}

// ClientQuotePage renders the standalone client acceptance page.
func ClientQuotePage(data ClientViewData) templ.Component {
	return component(func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Your Quote from %s</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gradient-to-br from-slate-50 via-white to-blue-50 text-slate-900">
<header class="bg-white/80 border-b border-slate-200 sticky top-0">
<div class="max-w-6xl mx-auto px-6 py-4">
<h1 class="text-xl font-bold">Your Quote from %s</h1>
<p class="text-sm text-slate-500">%s · %s · valid until %s</p>
</div>
</header>
<main class="max-w-6xl mx-auto px-6 py-8">
`, esc(data.CompanyName), esc(data.CompanyName), esc(data.QuoteNumber), esc(data.Title), esc(data.ValidUntil)); err != nil {
			return err
		}

		if err := writeClientQuoteContent(w, data); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<div class="bg-white rounded-xl shadow p-6 mt-6">
<h2 class="font-semibold mb-2">Your contractor</h2>
<p class="font-medium">%s</p>
<p class="text-sm text-slate-600">%s · %s</p>
<div class="flex flex-wrap gap-2 mt-3">
`, esc(data.ContractorName), esc(data.Phone), esc(data.Email)); err != nil {
			return err
		}
		for _, cert := range data.Certifications {
			if _, err := fmt.Fprintf(w, `<span class="px-2 py-1 rounded bg-blue-50 text-blue-800 text-xs">%s</span>
`, esc(cert)); err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, `</div>
</div>
</main>
</body>
</html>
`)
		return err
	})
}

// ClientQuoteContent renders the decisions area plus running total, the
// swap target for item status updates and client notes.
func ClientQuoteContent(data ClientViewData) templ.Component {
	return component(func(w io.Writer) error {
		return writeClientQuoteContent(w, data)
	})
}

func writeClientQuoteContent(w io.Writer, data ClientViewData) error {
	if _, err := fmt.Fprintf(w, `<div id="client-quote">
<div class="bg-white rounded-xl shadow p-6 mb-6">
<div class="flex justify-between items-center mb-2">
<h2 class="font-semibold">Your decisions</h2>
<span class="text-sm text-slate-500">%d of %d items accepted</span>
</div>
<div class="w-full bg-slate-200 rounded-full h-2 mb-6">
<div class="bg-blue-600 h-2 rounded-full" style="width: %d%%"></div>
</div>
<h3 class="text-sm font-semibold text-slate-500 uppercase mb-3">Included work</h3>
`, data.AcceptedCount, data.TotalCount, data.CompletionPct); err != nil {
		return err
	}

	for _, item := range data.RequiredItems {
		if err := writeClientItem(w, data.Token, item); err != nil {
			return err
		}
	}

	if len(data.OptionalItems) > 0 {
		if _, err := fmt.Fprint(w, `<h3 class="text-sm font-semibold text-slate-500 uppercase mt-6 mb-3">Optional extras</h3>
`); err != nil {
			return err
		}
		for _, item := range data.OptionalItems {
			if err := writeClientItem(w, data.Token, item); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, `</div>
<div class="bg-white rounded-xl shadow p-6">
<h2 class="font-semibold mb-4">Your price so far</h2>
<div class="space-y-2 max-w-sm ml-auto text-right">
<div class="flex justify-between"><span class="text-slate-600">Accepted items (ex VAT)</span><span class="font-medium">%s</span></div>
<div class="flex justify-between"><span class="text-slate-600">VAT (20%%)</span><span class="font-medium">%s</span></div>
<div class="flex justify-between text-lg font-bold border-t border-slate-200 pt-2"><span>Total</span><span>%s</span></div>
</div>
</div>
</div>
`, esc(data.AcceptedSubtotal), esc(data.VATAmount), esc(data.FinalTotal))
	return err
}

func writeClientItem(w io.Writer, token string, item ItemView) error {
	if _, err := fmt.Fprintf(w, `<div class="border border-slate-200 rounded-lg p-4 mb-3">
<div class="flex justify-between items-start gap-4">
<div>
<p class="font-medium">%s</p>
<p class="text-sm text-slate-500">%s × %s @ %s</p>
</div>
<div class="flex items-center gap-3">
%s
<span class="font-semibold">%s</span>
</div>
</div>
<div class="flex gap-2 mt-3">
`, esc(item.Description), esc(item.Qty), esc(item.Unit), esc(item.UnitPrice),
		statusBadge(item.Status), esc(item.Total)); err != nil {
		return err
	}

	for _, action := range []struct{ status, label, cls string }{
		{"accepted", "Accept", "bg-green-600 text-white hover:bg-green-700"},
		{"declined", "Decline", "bg-red-600 text-white hover:bg-red-700"},
		{"modified", "Request change", "border border-blue-300 text-blue-700 hover:bg-blue-50"},
	} {
		if _, err := fmt.Fprintf(w, `<button class="px-3 py-1 rounded text-sm %s"
  hx-post="/q/%s/items/%s/status" hx-vals='{"status": "%s"}'
  hx-target="#client-quote" hx-swap="outerHTML">%s</button>
`, action.cls, esc(token), esc(item.ID), action.status, action.label); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, `</div>
<form hx-post="/q/%s/items/%s/note" hx-target="#client-quote" hx-swap="outerHTML" class="mt-2 flex gap-2">
<input type="text" name="note" value="%s" placeholder="Add a note for your contractor..."
  class="flex-1 border border-slate-200 rounded px-2 py-1 text-sm">
<button type="submit" class="px-3 py-1 rounded border border-slate-300 text-sm hover:bg-slate-50">Save note</button>
</form>
</div>
`, esc(token), esc(item.ID), esc(item.ClientNote))
	return err
}
