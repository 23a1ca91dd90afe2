package wire

import (
	"manaibay/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, g guards) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.With(g.authenticate).Get("/me", authHandler.Me)
	if g.canLogout {
		r.With(g.authenticate).Post("/logout", authHandler.Logout)
	}
}
