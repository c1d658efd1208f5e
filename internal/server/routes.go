package server

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, db *sql.DB, templates *TemplateStore, games *Registry, admin *adminAuth) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("QuizWheel API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	r.Post("/api/games", handleCreateGame(games, templates, logger))

	// Game routes — {gameID} resolved by gameMiddleware. Mutations
	// additionally require the host token.
	r.Route("/api/games/{gameID}", func(r chi.Router) {
		r.Use(gameMiddleware(games))
		r.Get("/", handleGameState())
		r.Delete("/", handleDeleteGame(games, broker))
		r.Post("/spin", handleSpin(broker))
		r.Post("/answer", handleAnswer(broker))
		r.Post("/surprise/ack", handleSurpriseAck(broker))
		r.Get("/events", handleEvents(broker))
	})

	r.Post("/api/admin/login", handleAdminLogin(admin))
	r.Post("/api/admin/logout", handleAdminLogout(admin))

	// Operator console — requires the admin session cookie.
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(adminAuthMiddleware(admin))
		r.Get("/sessions", handleAdminListSessions(games))
		r.Delete("/sessions/{gameID}", handleAdminEndSession(games, broker))
		r.Get("/templates", handleAdminListTemplates(templates))
		r.Post("/templates", handleAdminCreateTemplate(templates))
		r.Put("/templates/{id}", handleAdminUpdateTemplate(templates))
		r.Delete("/templates/{id}", handleAdminDeleteTemplate(templates))
	})
}
