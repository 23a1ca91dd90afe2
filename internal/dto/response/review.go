package response

import (
	"time"

	"manaibay/internal/data/entity"
)

type ReviewResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	UserName    string    `json:"user_name"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedDate time.Time `json:"created_date"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:          review.ID.String(),
		ProductID:   review.ProductID.String(),
		UserName:    review.UserName,
		Rating:      review.Rating,
		Comment:     review.Comment,
		CreatedDate: review.CreatedDate,
	}
}

// ReviewsToResponse never returns nil so the field always encodes as an array.
func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, ReviewToResponse(review))
	}
	return out
}
