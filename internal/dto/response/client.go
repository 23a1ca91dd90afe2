package response

import "manaibay/internal/data/entity"

type ClientResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ClientToResponse(client *entity.Client) ClientResponse {
	return ClientResponse{
		ID:    client.ID.String(),
		Name:  client.Name,
		Email: client.Email,
	}
}
