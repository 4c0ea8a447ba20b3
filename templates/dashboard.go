package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// RecentQuote is a row in the dashboard's recent quotes list.
type RecentQuote struct {
	ID          string
	QuoteNumber string
	Title       string
	ClientName  string
	Status      string
	Total       string
	CreatedDate string
}

// DashboardData feeds the dashboard page. Money figures arrive preformatted.
type DashboardData struct {
	TotalQuotes    int
	AcceptedQuotes int
	PendingQuotes  int
	DraftQuotes    int
	TotalRevenue   string
	AvgQuoteValue  string
	AcceptanceRate int
	RecentQuotes   []RecentQuote
}

// DashboardPage renders the dashboard inside the full layout.
func DashboardPage(data DashboardData) templ.Component {
	return page("Dashboard", "dashboard", func(w io.Writer) error {
		return writeDashboard(w, data)
	})
}

// DashboardContent renders only the dashboard content, for HTMX swaps.
func DashboardContent(data DashboardData) templ.Component {
	return component(func(w io.Writer) error {
		return writeDashboard(w, data)
	})
}

func writeDashboard(w io.Writer, data DashboardData) error {
	if _, err := fmt.Fprintf(w, `<div class="flex justify-between items-center mb-8">
<div>
<h1 class="text-3xl font-bold">Dashboard</h1>
<p class="text-slate-600 mt-1">Your quoting activity at a glance</p>
</div>
<a href="/quotes/new" class="px-4 py-2 rounded bg-blue-600 text-white hover:bg-blue-700">New Quote</a>
</div>
<div class="grid md:grid-cols-4 gap-6 mb-8">
%s%s%s%s</div>
<div class="grid md:grid-cols-3 gap-6 mb-8">
%s%s%s</div>
`,
		statCard("Total Quotes", fmt.Sprintf("%d", data.TotalQuotes)),
		statCard("Accepted", fmt.Sprintf("%d", data.AcceptedQuotes)),
		statCard("Pending", fmt.Sprintf("%d", data.PendingQuotes)),
		statCard("Drafts", fmt.Sprintf("%d", data.DraftQuotes)),
		statCard("Revenue (accepted)", esc(data.TotalRevenue)),
		statCard("Average quote value", esc(data.AvgQuoteValue)),
		statCard("Acceptance rate", fmt.Sprintf("%d%%", data.AcceptanceRate)),
	); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, `<div class="bg-white rounded-xl shadow p-6">
<h2 class="text-lg font-semibold mb-4">Recent Quotes</h2>
`); err != nil {
		return err
	}

	if len(data.RecentQuotes) == 0 {
		if _, err := fmt.Fprint(w, `<p class="text-slate-500">No quotes yet. Create your first quote to get started.</p>
`); err != nil {
			return err
		}
	}

	for _, q := range data.RecentQuotes {
		if _, err := fmt.Fprintf(w, `<a href="/quotes/%s" class="flex items-center justify-between py-3 border-b border-slate-100 hover:bg-slate-50">
<div>
<div class="font-medium">%s</div>
<div class="text-sm text-slate-500">%s · %s · %s</div>
</div>
<div class="flex items-center gap-4">
%s
<span class="font-semibold">%s</span>
</div>
</a>
`, esc(q.ID), esc(q.Title), esc(q.QuoteNumber), esc(q.ClientName), esc(q.CreatedDate),
			statusBadge(q.Status), esc(q.Total)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, `</div>
`)
	return err
}

func statCard(label, value string) string {
	return fmt.Sprintf(`<div class="bg-white rounded-xl shadow p-6">
<div class="text-sm text-slate-500">%s</div>
<div class="text-2xl font-bold mt-1">%s</div>
</div>
`, label, value)
}

// statusBadge returns a coloured badge span for a quote or item status.
func statusBadge(status string) string {
	cls := "bg-gray-100 text-gray-800"
	switch status {
	case "pending":
		cls = "bg-yellow-100 text-yellow-800"
	case "accepted":
		cls = "bg-green-100 text-green-800"
	case "declined":
		cls = "bg-red-100 text-red-800"
	case "expired":
		cls = "bg-red-100 text-red-800"
	case "modified":
		cls = "bg-blue-100 text-blue-800"
	}
	return fmt.Sprintf(`<span class="px-2 py-1 rounded text-xs font-medium %s">%s</span>`, cls, esc(status))
}
