package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, v := range r.values {
		switch d := dest[i].(type) {
		case *uuid.UUID:
			*d = v.(uuid.UUID)
		case *string:
			*d = v.(string)
		case *time.Time:
			*d = v.(time.Time)
		}
	}
	return nil
}

type fakePool struct {
	row      fakeRow
	queryErr error
	execArgs []any
	execSQL  string
}

func (f *fakePool) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, f.queryErr
}

func (f *fakePool) QueryRow(context.Context, string, ...any) pgx.Row {
	return f.row
}

func (f *fakePool) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execSQL = sql
	f.execArgs = args
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (f *fakePool) Ping(context.Context) error { return nil }
func (f *fakePool) Close()                     {}

func TestUserRepository_FindByIDNoRows(t *testing.T) {
	repo := NewUserRepository(&fakePool{row: fakeRow{err: pgx.ErrNoRows}}, zap.NewNop())

	user, err := repo.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestProductRepository_FindByIDParsesPrice(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC()
	pool := &fakePool{row: fakeRow{values: []any{id, "Scarf", "warm", "", "", "19.99", now, now}}}
	repo := NewProductRepository(pool, zap.NewNop())

	product, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, id, product.ID)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("19.99")))
}

func TestProductRepository_FindAllQueryError(t *testing.T) {
	repo := NewProductRepository(&fakePool{queryErr: errors.New("conn refused")}, zap.NewNop())

	_, err := repo.FindAll(context.Background())
	assert.ErrorContains(t, err, "conn refused")
}

func TestReviewRepository_DeleteUsesID(t *testing.T) {
	pool := &fakePool{}
	repo := NewReviewRepository(pool, zap.NewNop())

	id := uuid.New()
	require.NoError(t, repo.Delete(context.Background(), id))
	assert.Contains(t, pool.execSQL, "DELETE FROM product_reviews")
	assert.Equal(t, []any{id}, pool.execArgs)
}
