package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// QuoteListItem is one row of the quotes list.
type QuoteListItem struct {
	ID          string
	QuoteNumber string
	Title       string
	ClientName  string
	Status      string
	Total       string
	CreatedDate string
	ValidUntil  string
}

// QuoteListData feeds the quotes list page.
type QuoteListData struct {
	Items        []QuoteListItem
	Search       string
	StatusFilter string
	TotalCount   int
}

var quoteStatusFilters = []string{"all", "draft", "pending", "accepted", "declined", "expired"}

// QuoteListPage renders the quotes list inside the full layout.
func QuoteListPage(data QuoteListData) templ.Component {
	return page("Quotes", "quotes", func(w io.Writer) error {
		return writeQuoteList(w, data)
	})
}

// QuoteListContent renders only the quotes list content, for HTMX swaps.
func QuoteListContent(data QuoteListData) templ.Component {
	return component(func(w io.Writer) error {
		return writeQuoteList(w, data)
	})
}

func writeQuoteList(w io.Writer, data QuoteListData) error {
	if _, err := fmt.Fprintf(w, `<div class="flex justify-between items-center mb-8">
<div>
<h1 class="text-3xl font-bold">Quotes</h1>
<p class="text-slate-600 mt-1">Manage all your quotes and proposals</p>
</div>
<a href="/quotes/new" class="px-4 py-2 rounded bg-blue-600 text-white hover:bg-blue-700">New Quote</a>
</div>
<form class="bg-white rounded-xl shadow p-4 mb-6 flex gap-4"
  hx-get="/quotes" hx-target="#main-content" hx-trigger="submit, change from:select">
<input type="search" name="q" value="%s" placeholder="Search quotes by client or title..."
  class="flex-1 border border-slate-300 rounded px-3 py-2">
<select name="status" class="border border-slate-300 rounded px-3 py-2">
`, esc(data.Search)); err != nil {
		return err
	}

	for _, s := range quoteStatusFilters {
		sel := ""
		if s == data.StatusFilter || (s == "all" && data.StatusFilter == "") {
			sel = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, s, sel, s); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, `</select>
<button type="submit" class="px-4 py-2 rounded border border-slate-300 hover:bg-slate-50">Filter</button>
</form>
<div class="bg-white rounded-xl shadow p-6">
<h2 class="text-lg font-semibold mb-4">All Quotes (%d)</h2>
`, data.TotalCount); err != nil {
		return err
	}

	if len(data.Items) == 0 {
		if _, err := fmt.Fprint(w, `<p class="text-slate-500">No quotes match.</p>
`); err != nil {
			return err
		}
	}

	for _, q := range data.Items {
		if _, err := fmt.Fprintf(w, `<div class="flex items-center justify-between p-4 border border-slate-200 rounded-lg mb-3">
<div>
<div class="font-medium">%s</div>
<div class="text-sm text-slate-500">%s · %s · valid until %s</div>
</div>
<div class="flex items-center gap-4">
%s
<span class="font-semibold">%s</span>
<a href="/quotes/%s" class="text-blue-600 hover:underline">Edit</a>
<button class="text-red-600 hover:underline"
  hx-delete="/quotes/%s" hx-confirm="Delete quote %s?" hx-target="#main-content">Delete</button>
</div>
</div>
`, esc(q.Title), esc(q.QuoteNumber), esc(q.ClientName), esc(q.ValidUntil),
			statusBadge(q.Status), esc(q.Total), esc(q.ID), esc(q.ID), esc(q.QuoteNumber)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, `</div>
`)
	return err
}
