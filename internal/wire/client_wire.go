package wire

import (
	"manaibay/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireClient(r chi.Router, clientHandler *adaptor.ClientHandler, g guards) {
	// ==================== PROTECTED ROUTES (any role) ====================
	r.Route("/clients", func(r chi.Router) {
		r.Use(g.authenticate)

		r.Get("/", clientHandler.List)
		r.Post("/", clientHandler.Create)
		r.Get("/{id}", clientHandler.Get)
		r.Put("/{id}", clientHandler.Update)
		r.Delete("/{id}", clientHandler.Delete)
	})
}
