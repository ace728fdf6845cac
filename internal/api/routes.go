package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/health", handler.Health)

	auth := api.Group("/auth")
	auth.Post("/signup", handler.Signup)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", handler.Me)

	entries := api.Group("/entries", handler.AuthRequired)
	entries.Get("", handler.ListEntries)
	entries.Get("/today", handler.GetTodayEntry)
	entries.Get("/:date", handler.GetEntryByDate)
	entries.Post("", handler.UpsertEntry)
	entries.Delete("/:date", handler.DeleteEntry)

	api.Get("/insights", handler.AuthRequired, handler.GetInsights)
	api.Post("/transcribe", handler.AuthRequired, handler.Transcribe)
}
