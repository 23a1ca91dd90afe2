package wire

import (
	"manaibay/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler, g guards) {
	r.Route("/products", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", productHandler.List)
		r.Get("/{id}", productHandler.Get)
		r.Get("/{id}/reviews", productHandler.ListReviews)

		// ==================== PROTECTED ROUTES ====================
		r.With(g.authenticate).Post("/{id}/reviews", productHandler.CreateReview)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(g.authenticate, g.admin)

			r.Post("/", productHandler.Create)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
			r.Delete("/{id}/reviews/{review_id}", productHandler.DeleteReview)
		})
	})
}
