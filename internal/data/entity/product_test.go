package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_MatchesTitle(t *testing.T) {
	p := &Product{Title: "Red Wool Scarf"}

	assert.True(t, p.MatchesTitle(""))
	assert.True(t, p.MatchesTitle("   "))
	assert.True(t, p.MatchesTitle("wool"))
	assert.True(t, p.MatchesTitle("RED W"))
	assert.False(t, p.MatchesTitle("hat"))
}

func TestProduct_Apply(t *testing.T) {
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	p := &Product{
		Base:          Base{CreatedDate: created, UpdatedDate: created},
		Title:         "Scarf",
		Description:   "warm",
		ImageData:     "aGVsbG8=",
		ImageFilename: "scarf.png",
		Price:         decimal.RequireFromString("10.50"),
	}

	price := decimal.RequireFromString("12.00")
	now := created.Add(24 * time.Hour)
	p.Apply(ProductPatch{Price: &price}, now)

	assert.True(t, p.Price.Equal(price))
	assert.Equal(t, "Scarf", p.Title)
	assert.Equal(t, "warm", p.Description)
	assert.Equal(t, "aGVsbG8=", p.ImageData)
	assert.Equal(t, "scarf.png", p.ImageFilename)
	assert.Equal(t, created, p.CreatedDate)
	assert.Equal(t, now, p.UpdatedDate)
}

func TestClient_Apply(t *testing.T) {
	c := &Client{Name: "Acme", Email: "ops@acme.io"}
	name := "Acme Ltd"
	c.Apply(ClientPatch{Name: &name})

	assert.Equal(t, "Acme Ltd", c.Name)
	assert.Equal(t, "ops@acme.io", c.Email)
}
