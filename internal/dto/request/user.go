package request

// UpdateUserRequest is a partial update: omitted and null fields are left as they are.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=1"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	Location  *string `json:"location" validate:"omitempty,max=200"`
	Role      *string `json:"role"`
}
