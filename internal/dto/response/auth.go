package response

import (
	"time"

	"manaibay/internal/data/entity"
)

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	Role        entity.Role `json:"role"`
	ExpiresAt   time.Time   `json:"expires_at"`
}

type UserResponse struct {
	ID          string      `json:"id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Location    string      `json:"location"`
	Role        entity.Role `json:"role"`
	CreatedDate time.Time   `json:"created_date"`
	UpdatedDate time.Time   `json:"updated_date"`
}

// UserToResponse is the only way a user leaves the service layer; it drops the password hash.
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Phone:       user.Phone,
		Location:    user.Location,
		Role:        user.Role,
		CreatedDate: user.CreatedDate,
		UpdatedDate: user.UpdatedDate,
	}
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
