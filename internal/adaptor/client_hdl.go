package adaptor

import (
	"net/http"

	"manaibay/internal/dto/request"
	"manaibay/internal/dto/response"
	"manaibay/internal/usecase"
	"manaibay/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ClientHandler struct {
	service usecase.ClientService
	log     *zap.Logger
}

func NewClientHandler(service usecase.ClientService, log *zap.Logger) *ClientHandler {
	return &ClientHandler{
		service: service,
		log:     log.With(zap.String("handler", "client")),
	}
}

// List handles GET /clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list clients")
		return
	}

	utils.ResponseSuccess(w, "success", clients)
}

// Get handles GET /clients/{id}
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	client, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get client")
		return
	}

	utils.ResponseSuccess(w, "success", client)
}

// Create handles POST /clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateClientRequest
	if !decodeBody(w, r, &req) {
		return
	}

	client, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create client")
		return
	}

	utils.ResponseCreated(w, "Client created", client)
}

// Update handles PUT /clients/{id}
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateClientRequest
	if !decodeBody(w, r, &req) {
		return
	}

	client, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update client")
		return
	}

	utils.ResponseSuccess(w, "Client updated", client)
}

// Delete handles DELETE /clients/{id}
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete client")
		return
	}

	utils.ResponseSuccess(w, "Client deleted", response.DeleteResponse{Deleted: true})
}
