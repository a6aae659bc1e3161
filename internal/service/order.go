package service

import (
	"context"

	"course-market-api/internal/dto"
	"course-market-api/internal/repository"
)

type OrderService interface {
	History(ctx context.Context, userID uint) ([]*dto.OrderView, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) History(ctx context.Context, userID uint) ([]*dto.OrderView, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*dto.OrderView, len(orders))
	for i, o := range orders {
		lines := make([]*dto.OrderLineView, len(o.Items))
		for j, item := range o.Items {
			lines[j] = &dto.OrderLineView{
				Product: item.Product.Title,
				Price:   item.Price,
			}
		}
		views[i] = &dto.OrderView{
			ID:        o.ID,
			Total:     o.Total,
			CreatedAt: o.CreatedAt,
			Items:     lines,
		}
	}

	return views, nil
}
