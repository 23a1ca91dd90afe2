package cassandra

import (
	"context"
	"errors"
	"fmt"

	"manaibay/internal/data/entity"
	"manaibay/internal/data/repository"
	"manaibay/pkg/database"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const productColumns = `id, title, description, image_data, image_filename, price, created_date, updated_date`

type productRepository struct {
	db  database.CassandraIface
	log *zap.Logger
}

func NewProductRepository(db database.CassandraIface, log *zap.Logger) repository.ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

// Price is kept as text so no precision is lost to a float column.
type productScan struct {
	product entity.Product
	id      gocql.UUID
	price   string
}

func (s *productScan) dest() []any {
	p := &s.product
	return []any{&s.id, &p.Title, &p.Description, &p.ImageData, &p.ImageFilename,
		&s.price, &p.CreatedDate, &p.UpdatedDate}
}

func (s *productScan) result() (*entity.Product, error) {
	p := s.product
	p.ID = fromCQL(s.id)
	if s.price != "" {
		price, err := decimal.NewFromString(s.price)
		if err != nil {
			return nil, fmt.Errorf("parse price of product %s: %w", p.ID.String(), err)
		}
		p.Price = price
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `INSERT INTO products (` + productColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	err := r.db.Exec(ctx, query,
		toCQL(product.ID),
		product.Title,
		product.Description,
		product.ImageData,
		product.ImageFilename,
		product.Price.String(),
		product.CreatedDate,
		product.UpdatedDate,
	)
	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("title", product.Title),
		)
		return fmt.Errorf("create product %s: %w", product.ID.String(), err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`

	var s productScan
	err := r.db.QueryRow(ctx, query, toCQL(id)).Scan(s.dest()...)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return s.result()
}

func (r *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	rows := r.db.Query(ctx, `SELECT `+productColumns+` FROM products`)

	products := []*entity.Product{}
	var s productScan
	for rows.Scan(s.dest()...) {
		product, err := s.result()
		if err != nil {
			rows.Close()
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, product)
		s = productScan{}
	}

	if err := rows.Close(); err != nil {
		r.log.Error("Failed to get all products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}

	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET title = ?, description = ?, image_data = ?, image_filename = ?,
		    price = ?, created_date = ?, updated_date = ?
		WHERE id = ?
	`

	err := r.db.Exec(ctx, query,
		product.Title,
		product.Description,
		product.ImageData,
		product.ImageFilename,
		product.Price.String(),
		product.CreatedDate,
		product.UpdatedDate,
		toCQL(product.ID),
	)
	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return fmt.Errorf("update product %s: %w", product.ID.String(), err)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.Exec(ctx, `DELETE FROM products WHERE id = ?`, toCQL(id)); err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	r.log.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}
