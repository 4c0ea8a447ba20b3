package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LandingPage renders the public marketing page.
func LandingPage() templ.Component {
	return component(func(w io.Writer) error {
		_, err := fmt.Fprint(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>TradeQuote Pro · Professional quotes for UK trades</title>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gradient-to-br from-slate-50 via-white to-blue-50 text-slate-900">
<header class="max-w-6xl mx-auto px-6 py-6 flex items-center justify-between">
<div class="text-xl font-bold">TradeQuote Pro</div>
<a href="/dashboard" class="px-4 py-2 rounded bg-blue-600 text-white hover:bg-blue-700">Open App</a>
</header>
<main class="max-w-6xl mx-auto px-6 py-20 text-center">
<h1 class="text-5xl font-bold mb-6">Professional quotes for UK trades</h1>
<p class="text-xl text-slate-600 mb-10 max-w-2xl mx-auto">Build VAT-ready quotes with CIS deductions, Part P flags and client-facing acceptance pages. Built for electricians, plumbers and builders.</p>
<a href="/quotes/new" class="px-6 py-3 rounded-lg bg-blue-600 text-white text-lg hover:bg-blue-700 shadow-lg shadow-blue-600/25">Create your first quote</a>
<div class="grid md:grid-cols-3 gap-8 mt-24 text-left">
<div class="bg-white rounded-xl shadow p-6">
<h3 class="font-semibold text-lg mb-2">UK compliance built in</h3>
<p class="text-slate-600">VAT at 20%, CIS deductions on labour, Part P and Building Control flags per trade.</p>
</div>
<div class="bg-white rounded-xl shadow p-6">
<h3 class="font-semibold text-lg mb-2">Clients accept online</h3>
<p class="text-slate-600">Share a link. Clients accept, decline or query each line item and watch the total update.</p>
</div>
<div class="bg-white rounded-xl shadow p-6">
<h3 class="font-semibold text-lg mb-2">PDF &amp; Excel export</h3>
<p class="text-slate-600">Send polished quote documents with your trading name, bank details and certifications.</p>
</div>
</div>
</main>
</body>
</html>
`)
		return err
	})
}
