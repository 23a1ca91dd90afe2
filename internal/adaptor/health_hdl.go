package adaptor

import (
	"context"
	"net/http"
	"time"

	"manaibay/internal/data/repository"
	"manaibay/pkg/utils"

	"go.uber.org/zap"
)

type HealthHandler struct {
	store repository.Pinger
	log   *zap.Logger
}

func NewHealthHandler(store repository.Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		store: store,
		log:   log.With(zap.String("handler", "health")),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Error("Store ping failed", zap.Error(err))
		utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "Store unavailable", map[string]string{"store": "down"}, nil)
		return
	}

	utils.ResponseSuccess(w, "OK", map[string]string{"store": "up"})
}
