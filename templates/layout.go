// Package templates renders all HTML for the app as templ components.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// component wraps a plain writer function as a templ.Component.
func component(render func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return render(w)
	})
}

// esc HTML-escapes user-supplied text before it is written into markup.
func esc(s string) string {
	return templ.EscapeString(s)
}

type navLink struct {
	href  string
	label string
	key   string
}

var navLinks = []navLink{
	{href: "/dashboard", label: "Dashboard", key: "dashboard"},
	{href: "/quotes", label: "Quotes", key: "quotes"},
	{href: "/clients", label: "Clients", key: "clients"},
	{href: "/settings", label: "Settings", key: "settings"},
}

// writePageTop writes the document head, toast script and sidebar up to the
// opening of the main content area.
func writePageTop(w io.Writer, title, active string) error {
	if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s · TradeQuote Pro</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-slate-50 text-slate-900">
<div id="toast-container" class="fixed top-4 right-4 z-50 space-y-2"></div>
<script>
function showToast(message, type) {
  var el = document.createElement('div');
  el.className = 'px-4 py-3 rounded shadow text-white ' +
    (type === 'error' ? 'bg-red-600' : type === 'success' ? 'bg-green-600' : 'bg-slate-700');
  el.textContent = message;
  document.getElementById('toast-container').appendChild(el);
  setTimeout(function () { el.remove(); }, 4000);
}
document.body.addEventListener('showToast', function (evt) {
  showToast(evt.detail.message, evt.detail.type);
});
document.addEventListener('DOMContentLoaded', function () {
  var match = document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);
  if (match) {
    try {
      var data = JSON.parse(decodeURIComponent(match[1]));
      showToast(data.message, data.type);
    } catch (e) {}
    document.cookie = 'flash_toast=; Max-Age=0; path=/';
  }
});
</script>
<div class="flex min-h-screen">
<aside class="w-56 bg-slate-900 text-slate-100 flex flex-col">
<div class="px-5 py-6 text-lg font-bold">TradeQuote Pro</div>
<nav class="flex-1 px-2 space-y-1">
`, esc(title)); err != nil {
		return err
	}

	for _, link := range navLinks {
		cls := "block px-3 py-2 rounded hover:bg-slate-800"
		if link.key == active {
			cls = "block px-3 py-2 rounded bg-blue-700"
		}
		if _, err := fmt.Fprintf(w, `<a href="%s" class="%s">%s</a>
`, link.href, cls, link.label); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, `</nav>
</aside>
<main id="main-content" class="flex-1 overflow-auto p-8">
`)
	return err
}

// writePageBottom closes the main content area and the document.
func writePageBottom(w io.Writer) error {
	_, err := fmt.Fprint(w, `</main>
</div>
</body>
</html>
`)
	return err
}

// page wraps a content writer in the full document layout.
func page(title, active string, content func(w io.Writer) error) templ.Component {
	return component(func(w io.Writer) error {
		if err := writePageTop(w, title, active); err != nil {
			return err
		}
		if err := content(w); err != nil {
			return err
		}
		return writePageBottom(w)
	})
}
