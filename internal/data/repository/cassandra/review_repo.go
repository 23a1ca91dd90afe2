package cassandra

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"manaibay/internal/data/entity"
	"manaibay/internal/data/repository"
	"manaibay/pkg/database"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const reviewColumns = `id, product_id, user_name, rating, comment, created_date`

type reviewRepository struct {
	db  database.CassandraIface
	log *zap.Logger
}

func NewReviewRepository(db database.CassandraIface, log *zap.Logger) repository.ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

type reviewScan struct {
	review    entity.Review
	id        gocql.UUID
	productID gocql.UUID
}

func (s *reviewScan) dest() []any {
	rv := &s.review
	return []any{&s.id, &s.productID, &rv.UserName, &rv.Rating, &rv.Comment, &rv.CreatedDate}
}

func (s *reviewScan) result() *entity.Review {
	rv := s.review
	rv.ID = fromCQL(s.id)
	rv.ProductID = fromCQL(s.productID)
	return &rv
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `INSERT INTO product_reviews (` + reviewColumns + `) VALUES (?, ?, ?, ?, ?, ?)`

	err := r.db.Exec(ctx, query,
		toCQL(review.ID),
		toCQL(review.ProductID),
		review.UserName,
		review.Rating,
		review.Comment,
		review.CreatedDate,
	)
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("product_id", review.ProductID.String()),
		)
		return fmt.Errorf("create review for product %s: %w", review.ProductID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM product_reviews WHERE id = ?`

	var s reviewScan
	err := r.db.QueryRow(ctx, query, toCQL(id)).Scan(s.dest()...)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return s.result(), nil
}

// FindByProductID is a filtered scan; product_id is not part of the key.
func (r *reviewRepository) FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM product_reviews WHERE product_id = ? ALLOW FILTERING`

	rows := r.db.Query(ctx, query, toCQL(productID))

	reviews := []*entity.Review{}
	var s reviewScan
	for rows.Scan(s.dest()...) {
		reviews = append(reviews, s.result())
		s = reviewScan{}
	}

	if err := rows.Close(); err != nil {
		r.log.Error("Failed to find reviews by product ID",
			zap.Error(err),
			zap.String("product_id", productID.String()),
		)
		return nil, fmt.Errorf("find reviews by product ID %s: %w", productID.String(), err)
	}

	// token order is meaningless to callers
	slices.SortStableFunc(reviews, func(a, b *entity.Review) int {
		return a.CreatedDate.Compare(b.CreatedDate)
	})

	return reviews, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.Exec(ctx, `DELETE FROM product_reviews WHERE id = ?`, toCQL(id)); err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}
