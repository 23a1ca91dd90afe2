package entity

import "github.com/google/uuid"

// Client has no ownership relation to User and carries no timestamps.
type Client struct {
	ID    uuid.UUID `db:"id"`
	Name  string    `db:"name"`
	Email string    `db:"email"`
}

type ClientPatch struct {
	Name  *string
	Email *string
}

func (c *Client) Apply(p ClientPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
}
