package usecase

import (
	"context"
	"time"

	"manaibay/internal/data/entity"
	"manaibay/internal/data/repository"
	"manaibay/internal/dto/request"
	"manaibay/internal/dto/response"
	"manaibay/pkg/apperror"
	"manaibay/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductService interface {
	Create(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error)
	GetByID(ctx context.Context, productID string) (*response.ProductResponse, error)
	List(ctx context.Context, filter request.ProductFilter) ([]response.ProductResponse, error)
	Update(ctx context.Context, productID string, req *request.UpdateProductRequest) (*response.ProductResponse, error)
	Delete(ctx context.Context, productID string) error

	CreateReview(ctx context.Context, productID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListReviews(ctx context.Context, productID string) ([]response.ReviewResponse, error)
	DeleteReview(ctx context.Context, productID, reviewID string) error
}

type productService struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	log         *zap.Logger
	now         func() time.Time
}

func NewProductService(
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
	log *zap.Logger,
) ProductService {
	return &productService{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		log:         log.With(zap.String("service", "product")),
		now:         time.Now,
	}
}

func checkPrice(price *decimal.Decimal) map[string]string {
	if price != nil && price.IsNegative() {
		return map[string]string{"price": "Must not be negative"}
	}
	return nil
}

func (s *productService) Create(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	errs := utils.ValidateStruct(req)
	if len(errs) == 0 {
		errs = checkPrice(req.Price)
	}
	if len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, invalidInput(errs)
	}

	product := &entity.Product{
		Base:          entity.NewBase(s.now()),
		Title:         req.Title,
		Description:   req.Description,
		ImageData:     req.ImageData,
		ImageFilename: req.ImageFilename,
		Price:         *req.Price,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, apperror.Store("failed to create product", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("title", product.Title),
		actor(ctx),
	)

	resp := response.ProductToResponse(&entity.ProductWithReviews{Product: *product})
	return &resp, nil
}

func (s *productService) find(ctx context.Context, productID string) (*entity.Product, error) {
	id, err := parseID(productID, "id")
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store("failed to get product", err)
	}
	if product == nil {
		return nil, apperror.NotFound("Product not found")
	}
	return product, nil
}

// withReviews reads the review table on every call; reviews are never cached.
func (s *productService) withReviews(ctx context.Context, product *entity.Product) (*entity.ProductWithReviews, error) {
	reviews, err := s.reviewRepo.FindByProductID(ctx, product.ID)
	if err != nil {
		return nil, apperror.Store("failed to get reviews", err)
	}
	return &entity.ProductWithReviews{Product: *product, Reviews: reviews}, nil
}

func (s *productService) GetByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	product, err := s.find(ctx, productID)
	if err != nil {
		return nil, err
	}

	full, err := s.withReviews(ctx, product)
	if err != nil {
		return nil, err
	}

	resp := response.ProductToResponse(full)
	return &resp, nil
}

// List scans every product and filters by title in memory.
func (s *productService) List(ctx context.Context, filter request.ProductFilter) ([]response.ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Store("failed to get products", err)
	}

	out := make([]response.ProductResponse, 0, len(products))
	for _, product := range products {
		if !product.MatchesTitle(filter.Search) {
			continue
		}
		full, err := s.withReviews(ctx, product)
		if err != nil {
			return nil, err
		}
		out = append(out, response.ProductToResponse(full))
	}

	s.log.Debug("Products listed",
		zap.Int("scanned", len(products)),
		zap.Int("matched", len(out)),
		zap.String("search", filter.Search),
	)
	return out, nil
}

func (s *productService) Update(ctx context.Context, productID string, req *request.UpdateProductRequest) (*response.ProductResponse, error) {
	errs := utils.ValidateStruct(req)
	if len(errs) == 0 {
		errs = checkPrice(req.Price)
	}
	if len(errs) > 0 {
		return nil, invalidInput(errs)
	}

	product, err := s.find(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Apply(entity.ProductPatch{
		Title:         req.Title,
		Description:   req.Description,
		ImageData:     req.ImageData,
		ImageFilename: req.ImageFilename,
		Price:         req.Price,
	}, s.now())

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, apperror.Store("failed to update product", err)
	}

	s.log.Info("Product updated", zap.String("product_id", product.ID.String()), actor(ctx))

	full, err := s.withReviews(ctx, product)
	if err != nil {
		return nil, err
	}
	resp := response.ProductToResponse(full)
	return &resp, nil
}

// Delete removes the product's reviews first, then the product. There is no
// rollback: if the last step fails the product stays without its reviews.
func (s *productService) Delete(ctx context.Context, productID string) error {
	product, err := s.find(ctx, productID)
	if err != nil {
		return err
	}

	reviews, err := s.reviewRepo.FindByProductID(ctx, product.ID)
	if err != nil {
		return apperror.Store("failed to get reviews", err)
	}

	for i, review := range reviews {
		if err := s.reviewRepo.Delete(ctx, review.ID); err != nil {
			s.log.Error("Cascade delete stopped",
				zap.Error(err),
				zap.String("product_id", product.ID.String()),
				zap.Int("reviews_deleted", i),
				zap.Int("reviews_total", len(reviews)),
			)
			return apperror.Store("failed to delete reviews", err)
		}
	}

	if err := s.productRepo.Delete(ctx, product.ID); err != nil {
		s.log.Error("Product row left after its reviews were deleted",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
			zap.Int("reviews_deleted", len(reviews)),
		)
		return apperror.Store("failed to delete product", err)
	}

	s.log.Info("Product deleted",
		zap.String("product_id", product.ID.String()),
		zap.Int("reviews_deleted", len(reviews)),
		actor(ctx),
	)
	return nil
}

// CreateReview does not check that the product exists.
func (s *productService) CreateReview(ctx context.Context, productID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	pid, err := parseID(productID, "product_id")
	if err != nil {
		return nil, err
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, invalidInput(errs)
	}

	userName := req.UserName
	if userName == "" {
		userName = defaultReviewer(ctx)
	}

	review := &entity.Review{
		BaseSimple: entity.NewBaseSimple(s.now()),
		ProductID:  pid,
		UserName:   userName,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, apperror.Store("failed to create review", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("product_id", pid.String()),
		zap.Int("rating", review.Rating),
		actor(ctx),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func defaultReviewer(ctx context.Context) string {
	identity, ok := utils.GetIdentity(ctx)
	if !ok {
		return "Anonymous"
	}
	if identity.Name != "" {
		return identity.Name
	}
	return identity.Email
}

func (s *productService) ListReviews(ctx context.Context, productID string) ([]response.ReviewResponse, error) {
	pid, err := parseID(productID, "product_id")
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByProductID(ctx, pid)
	if err != nil {
		return nil, apperror.Store("failed to get reviews", err)
	}
	return response.ReviewsToResponse(reviews), nil
}

func (s *productService) DeleteReview(ctx context.Context, productID, reviewID string) error {
	pid, err := parseID(productID, "product_id")
	if err != nil {
		return err
	}
	rid, err := parseID(reviewID, "review_id")
	if err != nil {
		return err
	}

	review, err := s.reviewRepo.FindByID(ctx, rid)
	if err != nil {
		return apperror.Store("failed to get review", err)
	}
	if review == nil || review.ProductID != pid {
		return apperror.NotFound("Review not found")
	}

	if err := s.reviewRepo.Delete(ctx, rid); err != nil {
		return apperror.Store("failed to delete review", err)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", rid.String()),
		zap.String("product_id", pid.String()),
		actor(ctx),
	)
	return nil
}

