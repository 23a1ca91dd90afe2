package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"manaibay/internal/data/entity"
	"manaibay/internal/dto/request"
	"manaibay/internal/testutil"
	"manaibay/pkg/apperror"
	"manaibay/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProductServiceAt(store *testutil.Store, now time.Time) *productService {
	repo := store.Repository()
	svc := NewProductService(repo.Product, repo.Review, zap.NewNop()).(*productService)
	svc.now = func() time.Time { return now }
	return svc
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestProductService_CreateStartsWithoutReviews(t *testing.T) {
	svc := newProductServiceAt(testutil.NewStore(), time.Now())

	product, err := svc.Create(context.Background(), &request.CreateProductRequest{
		Title: "Scarf", ImageData: "aGVsbG8=", ImageFilename: "scarf.png", Price: price("10.50"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.NotNil(t, product.Reviews)
	assert.Empty(t, product.Reviews)
	assert.Equal(t, product.CreatedDate, product.UpdatedDate)
}

func TestProductService_CreateValidation(t *testing.T) {
	svc := newProductServiceAt(testutil.NewStore(), time.Now())

	tests := []struct {
		name  string
		req   request.CreateProductRequest
		field string
	}{
		{name: "negative price", req: request.CreateProductRequest{Title: "x", Price: price("-0.01")}, field: "price"},
		{name: "missing price", req: request.CreateProductRequest{Title: "x"}, field: "price"},
		{name: "missing title", req: request.CreateProductRequest{Price: price("1")}, field: "title"},
		{name: "image not base64", req: request.CreateProductRequest{Title: "x", Price: price("1"), ImageData: "%%%"}, field: "image_data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			var appErr *apperror.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperror.KindValidation, appErr.Kind)
			assert.Contains(t, appErr.Fields, tt.field)
		})
	}

	_, err := svc.Create(context.Background(), &request.CreateProductRequest{Title: "free", Price: price("0")})
	assert.NoError(t, err)
}

func TestProductService_ListSearchIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc := newProductServiceAt(testutil.NewStore(), time.Now())

	for _, title := range []string{"Red Wool Scarf", "Blue Hat", "wool socks"} {
		_, err := svc.Create(ctx, &request.CreateProductRequest{Title: title, Price: price("5")})
		require.NoError(t, err)
	}

	tests := []struct {
		search string
		want   int
	}{
		{search: "", want: 3},
		{search: "  ", want: 3},
		{search: "WOOL", want: 2},
		{search: "hat", want: 1},
		{search: "boots", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			products, err := svc.List(ctx, request.ProductFilter{Search: tt.search})
			require.NoError(t, err)
			assert.Len(t, products, tt.want)
			assert.NotNil(t, products)
		})
	}
}

func TestProductService_UpdateMergesAndRefreshesDate(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore()
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newProductServiceAt(store, created)

	product, err := svc.Create(ctx, &request.CreateProductRequest{
		Title: "Scarf", Description: "warm", Price: price("10.50"),
	})
	require.NoError(t, err)

	later := created.Add(2 * time.Hour)
	svc.now = func() time.Time { return later }

	updated, err := svc.Update(ctx, product.ID, &request.UpdateProductRequest{Price: price("12")})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, "Scarf", updated.Title)
	assert.Equal(t, "warm", updated.Description)
	assert.Equal(t, created, updated.CreatedDate)
	assert.Equal(t, later, updated.UpdatedDate)

	_, err = svc.Update(ctx, product.ID, &request.UpdateProductRequest{Price: price("-1")})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = svc.Update(ctx, uuid.NewString(), &request.UpdateProductRequest{Title: ptr("x")})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestProductService_DeleteRemovesReviews(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore()
	svc := newProductServiceAt(store, time.Now())

	product, err := svc.Create(ctx, &request.CreateProductRequest{Title: "Scarf", Price: price("1")})
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		_, err := svc.CreateReview(ctx, product.ID, &request.CreateReviewRequest{UserName: "bob", Rating: i})
		require.NoError(t, err)
	}
	pid := uuid.MustParse(product.ID)
	require.Equal(t, 3, store.ReviewCount(pid))

	require.NoError(t, svc.Delete(ctx, product.ID))

	_, err = svc.GetByID(ctx, product.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Zero(t, store.ReviewCount(pid))

	reviews, err := svc.ListReviews(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	err = svc.Delete(ctx, product.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestProductService_DeletePartialFailure(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore()
	svc := newProductServiceAt(store, time.Now())

	product, err := svc.Create(ctx, &request.CreateProductRequest{Title: "Scarf", Price: price("1")})
	require.NoError(t, err)
	_, err = svc.CreateReview(ctx, product.ID, &request.CreateReviewRequest{UserName: "bob", Rating: 5})
	require.NoError(t, err)

	store.FailOn("product.delete", errors.New("write timeout"))

	err = svc.Delete(ctx, product.ID)
	assert.Equal(t, apperror.KindStore, apperror.KindOf(err))

	// reviews are gone, the product row is not
	assert.Zero(t, store.ReviewCount(uuid.MustParse(product.ID)))
	got, err := svc.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Reviews)
}

func TestProductService_Reviews(t *testing.T) {
	store := testutil.NewStore()
	svc := newProductServiceAt(store, time.Now())
	caller := &entity.Identity{UserID: uuid.New(), Email: "ada@x.com", Name: "Ada Lovelace", Role: entity.RoleUser}
	ctx := utils.SetIdentity(context.Background(), caller)

	product, err := svc.Create(ctx, &request.CreateProductRequest{Title: "Scarf", Price: price("1")})
	require.NoError(t, err)

	t.Run("user name defaults to caller", func(t *testing.T) {
		review, err := svc.CreateReview(ctx, product.ID, &request.CreateReviewRequest{Rating: 4, Comment: "nice"})
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", review.UserName)

		got, err := svc.GetByID(ctx, product.ID)
		require.NoError(t, err)
		require.Len(t, got.Reviews, 1)
		assert.Equal(t, review.ID, got.Reviews[0].ID)
	})

	t.Run("rating out of range", func(t *testing.T) {
		_, err := svc.CreateReview(ctx, product.ID, &request.CreateReviewRequest{Rating: 6})
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})

	t.Run("orphan review is accepted", func(t *testing.T) {
		_, err := svc.CreateReview(ctx, uuid.NewString(), &request.CreateReviewRequest{Rating: 1})
		assert.NoError(t, err)
	})

	t.Run("delete review of another product", func(t *testing.T) {
		review, err := svc.CreateReview(ctx, product.ID, &request.CreateReviewRequest{Rating: 2})
		require.NoError(t, err)

		err = svc.DeleteReview(ctx, uuid.NewString(), review.ID)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

		require.NoError(t, svc.DeleteReview(ctx, product.ID, review.ID))

		err = svc.DeleteReview(ctx, product.ID, review.ID)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})
}
