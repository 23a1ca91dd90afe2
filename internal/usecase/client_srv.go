package usecase

import (
	"context"

	"manaibay/internal/data/entity"
	"manaibay/internal/data/repository"
	"manaibay/internal/dto/request"
	"manaibay/internal/dto/response"
	"manaibay/pkg/apperror"
	"manaibay/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ClientService interface {
	Create(ctx context.Context, req *request.CreateClientRequest) (*response.ClientResponse, error)
	GetByID(ctx context.Context, clientID string) (*response.ClientResponse, error)
	List(ctx context.Context) ([]response.ClientResponse, error)
	Update(ctx context.Context, clientID string, req *request.UpdateClientRequest) (*response.ClientResponse, error)
	Delete(ctx context.Context, clientID string) error
}

type clientService struct {
	clientRepo repository.ClientRepository
	log        *zap.Logger
}

func NewClientService(clientRepo repository.ClientRepository, log *zap.Logger) ClientService {
	return &clientService{
		clientRepo: clientRepo,
		log:        log.With(zap.String("service", "client")),
	}
}

func (s *clientService) Create(ctx context.Context, req *request.CreateClientRequest) (*response.ClientResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, invalidInput(errs)
	}

	client := &entity.Client{
		ID:    uuid.New(),
		Name:  req.Name,
		Email: req.Email,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, apperror.Store("failed to create client", err)
	}

	s.log.Info("Client created", zap.String("client_id", client.ID.String()), actor(ctx))

	resp := response.ClientToResponse(client)
	return &resp, nil
}

func (s *clientService) find(ctx context.Context, clientID string) (*entity.Client, error) {
	id, err := parseID(clientID, "id")
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store("failed to get client", err)
	}
	if client == nil {
		return nil, apperror.NotFound("Client not found")
	}
	return client, nil
}

func (s *clientService) GetByID(ctx context.Context, clientID string) (*response.ClientResponse, error) {
	client, err := s.find(ctx, clientID)
	if err != nil {
		return nil, err
	}

	resp := response.ClientToResponse(client)
	return &resp, nil
}

func (s *clientService) List(ctx context.Context) ([]response.ClientResponse, error) {
	clients, err := s.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Store("failed to get clients", err)
	}

	out := make([]response.ClientResponse, 0, len(clients))
	for _, client := range clients {
		out = append(out, response.ClientToResponse(client))
	}
	return out, nil
}

// Update merges the patch into the stored row. The existence check and the
// write are separate calls; a delete in between recreates the row.
func (s *clientService) Update(ctx context.Context, clientID string, req *request.UpdateClientRequest) (*response.ClientResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, invalidInput(errs)
	}

	client, err := s.find(ctx, clientID)
	if err != nil {
		return nil, err
	}

	client.Apply(entity.ClientPatch{Name: req.Name, Email: req.Email})

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, apperror.Store("failed to update client", err)
	}

	s.log.Info("Client updated", zap.String("client_id", client.ID.String()), actor(ctx))

	resp := response.ClientToResponse(client)
	return &resp, nil
}

func (s *clientService) Delete(ctx context.Context, clientID string) error {
	client, err := s.find(ctx, clientID)
	if err != nil {
		return err
	}

	if err := s.clientRepo.Delete(ctx, client.ID); err != nil {
		return apperror.Store("failed to delete client", err)
	}

	s.log.Info("Client deleted", zap.String("client_id", client.ID.String()), actor(ctx))
	return nil
}
