package service

import (
	"context"
	"time"

	"course-market-api/internal/dto"
	"course-market-api/internal/model"
	"course-market-api/internal/repository"
)

// RegistrationOpen reports whether the product can still be purchased.
// Only online courses close: their deadline is a calendar date and the
// deadline day itself is still open.
func RegistrationOpen(product *model.Product, now time.Time) bool {
	if product.CourseType == model.CourseTypeOnline && product.RegistrationDeadline != nil {
		return !dateAfter(now, *product.RegistrationDeadline)
	}
	return true
}

type CatalogService interface {
	Categories(ctx context.Context) ([]*dto.CategoryView, error)
	Products(ctx context.Context, categoryID *uint) ([]*dto.ProductView, error)
	Product(ctx context.Context, productID uint) (*dto.ProductView, error)
}

type catalogServiceImpl struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) CatalogService {
	return &catalogServiceImpl{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func (s *catalogServiceImpl) Categories(ctx context.Context) ([]*dto.CategoryView, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*dto.CategoryView, len(categories))
	for i, c := range categories {
		views[i] = &dto.CategoryView{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		}
	}

	return views, nil
}

func (s *catalogServiceImpl) Products(ctx context.Context, categoryID *uint) ([]*dto.ProductView, error) {
	products, err := s.productRepo.List(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]*dto.ProductView, len(products))
	for i, p := range products {
		views[i] = productView(p, now)
	}

	return views, nil
}

func (s *catalogServiceImpl) Product(ctx context.Context, productID uint) (*dto.ProductView, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	return productView(product, time.Now()), nil
}

func productView(p *model.Product, now time.Time) *dto.ProductView {
	return &dto.ProductView{
		ID:                   p.ID,
		CategoryID:           p.CategoryID,
		Title:                p.Title,
		Description:          p.Description,
		Price:                p.Price,
		Instructor:           p.Instructor,
		Duration:             p.Duration,
		CourseType:           string(p.CourseType),
		StartDate:            p.StartDate,
		EndDate:              p.EndDate,
		RegistrationDeadline: p.RegistrationDeadline,
		AccessExpiration:     p.AccessExpiration,
		RegistrationOpen:     RegistrationOpen(p, now),
	}
}
