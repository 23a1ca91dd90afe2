package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is the stored row. Reviews live in their own table and are
// attached at read time, see ProductWithReviews.
type Product struct {
	Base
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	ImageData     string          `db:"image_data"`
	ImageFilename string          `db:"image_filename"`
	Price         decimal.Decimal `db:"price"`
}

type ProductWithReviews struct {
	Product
	Reviews []*Review
}

// MatchesTitle reports whether search is a case-insensitive substring of the title.
// An empty search matches everything.
func (p *Product) MatchesTitle(search string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), strings.ToLower(search))
}

type ProductPatch struct {
	Title         *string
	Description   *string
	ImageData     *string
	ImageFilename *string
	Price         *decimal.Decimal
}

func (p *Product) Apply(patch ProductPatch, now time.Time) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ImageData != nil {
		p.ImageData = *patch.ImageData
	}
	if patch.ImageFilename != nil {
		p.ImageFilename = *patch.ImageFilename
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	p.UpdatedDate = now.UTC()
}
