package repository

import (
	"context"

	"course-market-api/internal/model"

	"gorm.io/gorm"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) error
	ListByUser(ctx context.Context, userID uint) ([]*model.Ticket, error)
	FindByIDForUser(ctx context.Context, userID, ticketID uint) (*model.Ticket, error)
	FindByID(ctx context.Context, ticketID uint) (*model.Ticket, error)
	AddMessage(ctx context.Context, tx *gorm.DB, message *model.TicketMessage) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, ticketID uint, status model.TicketStatus) error
}

type ticketRepoImpl struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepoImpl{
		db: db,
	}
}

func (r *ticketRepoImpl) Create(ctx context.Context, ticket *model.Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *ticketRepoImpl) ListByUser(ctx context.Context, userID uint) ([]*model.Ticket, error) {
	var tickets []*model.Ticket
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tickets).Error

	if err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *ticketRepoImpl) FindByIDForUser(ctx context.Context, userID, ticketID uint) (*model.Ticket, error) {
	var ticket model.Ticket
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at")
		}).
		Where("id = ?", ticketID).
		Where("user_id = ?", userID).
		First(&ticket).Error

	if err != nil {
		return nil, err
	}

	return &ticket, nil
}

func (r *ticketRepoImpl) FindByID(ctx context.Context, ticketID uint) (*model.Ticket, error) {
	var ticket model.Ticket
	err := r.db.WithContext(ctx).
		Where("id = ?", ticketID).
		First(&ticket).Error

	if err != nil {
		return nil, err
	}

	return &ticket, nil
}

func (r *ticketRepoImpl) AddMessage(ctx context.Context, tx *gorm.DB, message *model.TicketMessage) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(message).Error
}

func (r *ticketRepoImpl) UpdateStatus(ctx context.Context, tx *gorm.DB, ticketID uint, status model.TicketStatus) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Model(&model.Ticket{}).
		Where("id = ?", ticketID).
		Update("status", status).Error
}
