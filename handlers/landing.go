package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"tradequote/templates"
)

// HandleLanding renders the public marketing page.
func HandleLanding() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return templates.LandingPage().Render(e.Request.Context(), e.Response)
	}
}
