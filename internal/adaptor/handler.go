package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"manaibay/internal/data/repository"
	"manaibay/internal/usecase"
	"manaibay/pkg/apperror"
	"manaibay/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Client  *ClientHandler
	Product *ProductHandler
	Health  *HealthHandler
}

func NewHandler(service *usecase.Service, store repository.Pinger, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Client:  NewClientHandler(service.Client, log),
		Product: NewProductHandler(service.Product, log),
		Health:  NewHealthHandler(store, log),
	}
}

// decodeBody decodes JSON into dst and validates it, answering the request
// itself on failure. It returns false when the handler should stop.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

// handleServiceError maps a service error onto its status by kind. Store
// failures are logged with their cause and answered with a generic message.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	switch appErr.Kind {
	case apperror.KindValidation:
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseError(w, appErr.Kind, appErr.Message, appErr.Fields)

	case apperror.KindNotFound, apperror.KindConflict, apperror.KindForbidden:
		log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseError(w, appErr.Kind, appErr.Message, nil)

	case apperror.KindUnauthorized:
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, appErr.Message)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
