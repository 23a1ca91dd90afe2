package request

import "github.com/shopspring/decimal"

// Price accepts both JSON numbers and strings; it must not be negative.
type CreateProductRequest struct {
	Title         string           `json:"title" validate:"required,max=200"`
	Description   string           `json:"description" validate:"max=5000"`
	ImageData     string           `json:"image_data" validate:"omitempty,base64"`
	ImageFilename string           `json:"image_filename" validate:"max=255"`
	Price         *decimal.Decimal `json:"price" validate:"required"`
}

type UpdateProductRequest struct {
	Title         *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description" validate:"omitempty,max=5000"`
	ImageData     *string          `json:"image_data" validate:"omitempty,base64"`
	ImageFilename *string          `json:"image_filename" validate:"omitempty,max=255"`
	Price         *decimal.Decimal `json:"price"`
}

type ProductFilter struct {
	Search string
}
