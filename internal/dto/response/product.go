package response

import (
	"time"

	"manaibay/internal/data/entity"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	ImageData     string           `json:"image_data"`
	ImageFilename string           `json:"image_filename"`
	Price         decimal.Decimal  `json:"price"`
	CreatedDate   time.Time        `json:"created_date"`
	UpdatedDate   time.Time        `json:"updated_date"`
	Reviews       []ReviewResponse `json:"reviews"`
}

func ProductToResponse(product *entity.ProductWithReviews) ProductResponse {
	return ProductResponse{
		ID:            product.ID.String(),
		Title:         product.Title,
		Description:   product.Description,
		ImageData:     product.ImageData,
		ImageFilename: product.ImageFilename,
		Price:         product.Price,
		CreatedDate:   product.CreatedDate,
		UpdatedDate:   product.UpdatedDate,
		Reviews:       ReviewsToResponse(product.Reviews),
	}
}
