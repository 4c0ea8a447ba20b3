package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"tradequote/collections"
	"tradequote/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Public pages ─────────────────────────────────────────
		se.Router.GET("/", handlers.HandleLanding())
		se.Router.GET("/q/{token}", handlers.HandleClientQuoteView(app))
		se.Router.POST("/q/{token}/items/{itemId}/status", handlers.HandleClientItemStatus(app))
		se.Router.POST("/q/{token}/items/{itemId}/note", handlers.HandleClientItemNote(app))

		// ── Dashboard ────────────────────────────────────────────
		se.Router.GET("/dashboard", handlers.HandleDashboard(app))

		// ── Quote CRUD ───────────────────────────────────────────
		se.Router.GET("/quotes", handlers.HandleQuoteList(app))
		se.Router.GET("/quotes/new", handlers.HandleQuoteNew(app))
		se.Router.POST("/quotes", handlers.HandleQuoteCreate(app))

		// Quote exports (before /quotes/{id} so "export" never matches as an ID suffix route)
		se.Router.GET("/quotes/{id}/export/excel", handlers.HandleQuoteExportExcel(app))
		se.Router.GET("/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app))

		// ── Quote line items ─────────────────────────────────────
		se.Router.POST("/quotes/{id}/items", handlers.HandleQuoteAddItem(app))
		se.Router.PATCH("/quotes/{id}/items/{itemId}", handlers.HandleQuoteUpdateItem(app))
		se.Router.DELETE("/quotes/{id}/items/{itemId}", handlers.HandleQuoteDeleteItem(app))

		se.Router.GET("/quotes/{id}", handlers.HandleQuoteEdit(app))
		se.Router.POST("/quotes/{id}", handlers.HandleQuoteUpdate(app))
		se.Router.DELETE("/quotes/{id}", handlers.HandleQuoteDelete(app))

		// ── Clients ──────────────────────────────────────────────
		se.Router.GET("/clients", handlers.HandleClientList(app))
		se.Router.GET("/clients/new", handlers.HandleClientNew())
		se.Router.POST("/clients", handlers.HandleClientCreate(app))
		se.Router.GET("/clients/{id}", handlers.HandleClientEdit(app))
		se.Router.POST("/clients/{id}", handlers.HandleClientUpdate(app))
		se.Router.DELETE("/clients/{id}", handlers.HandleClientDelete(app))

		// ── Settings ─────────────────────────────────────────────
		se.Router.GET("/settings", handlers.HandleSettings(app))
		se.Router.POST("/settings", handlers.HandleSettingsSave(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
