package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course-market-api/internal/dto"
	"course-market-api/internal/model"
	"course-market-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrAlreadyInCart      = errors.New("this course is already in your cart")
	ErrAlreadyPurchased   = errors.New("you have already purchased this course")
	ErrRegistrationClosed = errors.New("registration deadline has passed for this course")
)

type CartService interface {
	View(ctx context.Context, userID uint) (*dto.CartResponse, error)
	Add(ctx context.Context, userID, productID uint) (*model.CartItem, error)
	Remove(ctx context.Context, userID, productID uint) error
}

type cartServiceImpl struct {
	cartRepo       repository.CartRepository
	productRepo    repository.ProductRepository
	enrollmentRepo repository.EnrollmentRepository
}

func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	enrollmentRepo repository.EnrollmentRepository,
) CartService {
	return &cartServiceImpl{
		cartRepo:       cartRepo,
		productRepo:    productRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *cartServiceImpl) View(ctx context.Context, userID uint) (*dto.CartResponse, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	items, err := s.cartRepo.Items(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("load cart items: %w", err)
	}

	total := decimal.Zero
	views := make([]*dto.CartItemView, len(items))
	for i, item := range items {
		total = total.Add(item.Product.Price)
		views[i] = &dto.CartItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			Title:     item.Product.Title,
			Price:     item.Product.Price,
		}
	}

	return &dto.CartResponse{Items: views, Total: total}, nil
}

func (s *cartServiceImpl) Add(ctx context.Context, userID, productID uint) (*model.CartItem, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("check enrollment: %w", err)
	}
	if enrolled {
		return nil, ErrAlreadyPurchased
	}

	if !RegistrationOpen(product, time.Now()) {
		return nil, ErrRegistrationClosed
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	inCart, err := s.cartRepo.HasItem(ctx, cart.ID, productID)
	if err != nil {
		return nil, fmt.Errorf("check cart item: %w", err)
	}
	if inCart {
		return nil, ErrAlreadyInCart
	}

	item := &model.CartItem{CartID: cart.ID, ProductID: productID}
	if err := s.cartRepo.AddItem(ctx, item); err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}

	return item, nil
}

func (s *cartServiceImpl) Remove(ctx context.Context, userID, productID uint) error {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	return s.cartRepo.RemoveItem(ctx, cart.ID, productID)
}
