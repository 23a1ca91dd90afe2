package cassandra

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"manaibay/internal/data/entity"
	"manaibay/pkg/database"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type call struct {
	stmt string
	args []any
}

// fakeSession answers reads from canned rows and records every statement.
type fakeSession struct {
	calls  []call
	rows   [][]any
	rowErr error
	err    error
}

func (f *fakeSession) Exec(_ context.Context, stmt string, args ...any) error {
	f.calls = append(f.calls, call{stmt, args})
	return f.err
}

func (f *fakeSession) QueryRow(_ context.Context, stmt string, args ...any) database.Row {
	f.calls = append(f.calls, call{stmt, args})
	return rowAdapter{&fakeRows{rows: f.rows, err: f.rowErr}}
}

func (f *fakeSession) Query(_ context.Context, stmt string, args ...any) database.Rows {
	f.calls = append(f.calls, call{stmt, args})
	return &fakeRows{rows: f.rows, err: f.rowErr}
}

func (f *fakeSession) Ping(context.Context) error { return nil }
func (f *fakeSession) Close()                     {}

type fakeRows struct {
	rows [][]any
	pos  int
	err  error
}

func (r *fakeRows) fill(dest []any) {
	for i, v := range r.rows[r.pos] {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	r.pos++
}

func (r *fakeRows) ScanRow(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(r.rows) == 0 {
		return gocql.ErrNotFound
	}
	r.fill(dest)
	return nil
}

func (r *fakeRows) Scan(dest ...any) bool {
	if r.err != nil || r.pos >= len(r.rows) {
		return false
	}
	r.fill(dest)
	return true
}

func (r *fakeRows) Close() error { return r.err }

// rowAdapter lets one fake serve both the single-row and iterator shapes.
type rowAdapter struct{ *fakeRows }

func (a rowAdapter) Scan(dest ...any) error { return a.ScanRow(dest...) }

func TestUserRepository_FindByIDNotFound(t *testing.T) {
	session := &fakeSession{}
	repo := NewUserRepository(session, zap.NewNop())

	user, err := repo.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_FindByEmailScans(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Millisecond)
	session := &fakeSession{rows: [][]any{{
		gocql.UUID(id), "Ada", "Lovelace", "ada@x.com", "hash", "", "", "admin", now, now,
	}}}
	repo := NewUserRepository(session, zap.NewNop())

	user, err := repo.FindByEmail(context.Background(), "ada@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Equal(t, "hash", user.HashedPassword)
	assert.Contains(t, session.calls[0].stmt, "ALLOW FILTERING")
	assert.Equal(t, []any{"ada@x.com"}, session.calls[0].args)
}

func TestUserRepository_FindByIDStoreError(t *testing.T) {
	session := &fakeSession{rowErr: errors.New("unavailable")}
	repo := NewUserRepository(session, zap.NewNop())

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "unavailable")
}

func TestUserRepository_CreateConvertsColumns(t *testing.T) {
	session := &fakeSession{}
	repo := NewUserRepository(session, zap.NewNop())

	user := &entity.User{Base: entity.NewBase(time.Now()), Email: "a@b.co", Role: entity.RoleUser}
	require.NoError(t, repo.Create(context.Background(), user))

	args := session.calls[0].args
	assert.Equal(t, gocql.UUID(user.ID), args[0])
	assert.Equal(t, "user", args[7])
}

func TestProductRepository_FindAllParsesPrice(t *testing.T) {
	now := time.Now().UTC()
	session := &fakeSession{rows: [][]any{
		{gocql.UUID(uuid.New()), "Scarf", "", "", "", "10.50", now, now},
		{gocql.UUID(uuid.New()), "Hat", "", "", "", "3", now, now},
	}}
	repo := NewProductRepository(session, zap.NewNop())

	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("10.5")))
	assert.Equal(t, "Hat", products[1].Title)
}

func TestProductRepository_FindAllBadPrice(t *testing.T) {
	now := time.Now().UTC()
	session := &fakeSession{rows: [][]any{
		{gocql.UUID(uuid.New()), "Scarf", "", "", "", "ten", now, now},
	}}
	repo := NewProductRepository(session, zap.NewNop())

	_, err := repo.FindAll(context.Background())
	assert.Error(t, err)
}

func TestReviewRepository_FindByProductIDOldestFirst(t *testing.T) {
	productID := uuid.New()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	session := &fakeSession{rows: [][]any{
		{gocql.UUID(uuid.New()), gocql.UUID(productID), "b", 4, "later", t0.Add(time.Hour)},
		{gocql.UUID(uuid.New()), gocql.UUID(productID), "a", 5, "first", t0},
	}}
	repo := NewReviewRepository(session, zap.NewNop())

	reviews, err := repo.FindByProductID(context.Background(), productID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "first", reviews[0].Comment)
	assert.Equal(t, productID, reviews[1].ProductID)
	assert.Contains(t, session.calls[0].stmt, "ALLOW FILTERING")
}

func TestReviewRepository_FindByProductIDEmpty(t *testing.T) {
	repo := NewReviewRepository(&fakeSession{}, zap.NewNop())

	reviews, err := repo.FindByProductID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestClientRepository_DeleteError(t *testing.T) {
	repo := NewClientRepository(&fakeSession{err: errors.New("timeout")}, zap.NewNop())

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "timeout")
}
