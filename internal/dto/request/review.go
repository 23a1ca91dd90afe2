package request

type CreateReviewRequest struct {
	// UserName defaults to the caller's name when empty.
	UserName string `json:"user_name" validate:"max=100"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"max=2000"`
}
