package service

import (
	"context"
	"errors"
	"fmt"

	"course-market-api/internal/dto"
	"course-market-api/internal/model"
	"course-market-api/internal/repository"

	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("ticket not found or you have no access to it")

type TicketService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateTicketRequest) (*dto.TicketView, error)
	List(ctx context.Context, userID uint) ([]*dto.TicketView, error)
	Get(ctx context.Context, userID, ticketID uint) (*dto.TicketView, error)
	AddUserMessage(ctx context.Context, userID, ticketID uint, message string) (*dto.TicketMessageView, error)
	Reply(ctx context.Context, ticketID uint, senderID *uint, message string) error
}

type ticketServiceImpl struct {
	db               *gorm.DB
	ticketRepo       repository.TicketRepository
	notificationRepo repository.NotificationRepository
}

func NewTicketService(
	db *gorm.DB,
	ticketRepo repository.TicketRepository,
	notificationRepo repository.NotificationRepository,
) TicketService {
	return &ticketServiceImpl{
		db:               db,
		ticketRepo:       ticketRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *ticketServiceImpl) Create(ctx context.Context, userID uint, req *dto.CreateTicketRequest) (*dto.TicketView, error) {
	category := model.TicketCategory(req.Category)
	switch category {
	case model.TicketCategoryFinancial, model.TicketCategorySupport,
		model.TicketCategoryEducational, model.TicketCategoryTechnical,
		model.TicketCategoryOther:
	default:
		category = model.TicketCategorySupport
	}

	ticket := &model.Ticket{
		UserID:           userID,
		Title:            req.Title,
		Message:          req.Message,
		Category:         category,
		Status:           model.TicketStatusOpen,
		RelatedProductID: req.RelatedProductID,
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	return ticketView(ticket, false), nil
}

func (s *ticketServiceImpl) List(ctx context.Context, userID uint) ([]*dto.TicketView, error) {
	tickets, err := s.ticketRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*dto.TicketView, len(tickets))
	for i, t := range tickets {
		views[i] = ticketView(t, false)
	}

	return views, nil
}

func (s *ticketServiceImpl) Get(ctx context.Context, userID, ticketID uint) (*dto.TicketView, error) {
	ticket, err := s.ticketRepo.FindByIDForUser(ctx, userID, ticketID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}

	return ticketView(ticket, true), nil
}

// AddUserMessage appends a message from the ticket owner; a fresh ticket
// moves from open to in_progress.
func (s *ticketServiceImpl) AddUserMessage(ctx context.Context, userID, ticketID uint, message string) (*dto.TicketMessageView, error) {
	ticket, err := s.ticketRepo.FindByIDForUser(ctx, userID, ticketID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}

	msg := &model.TicketMessage{
		TicketID:     ticket.ID,
		SenderIsUser: true,
		SenderID:     &userID,
		Message:      message,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ticketRepo.AddMessage(ctx, tx, msg); err != nil {
			return err
		}
		if ticket.Status == model.TicketStatusOpen {
			return s.ticketRepo.UpdateStatus(ctx, tx, ticket.ID, model.TicketStatusInProgress)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("add ticket message: %w", err)
	}

	return &dto.TicketMessageView{
		ID:           msg.ID,
		SenderIsUser: true,
		Message:      msg.Message,
		CreatedAt:    msg.CreatedAt,
	}, nil
}

// Reply appends a support-side message, marks the ticket answered and
// notifies the owner.
func (s *ticketServiceImpl) Reply(ctx context.Context, ticketID uint, senderID *uint, message string) error {
	ticket, err := s.ticketRepo.FindByID(ctx, ticketID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTicketNotFound
	}
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		msg := &model.TicketMessage{
			TicketID:     ticket.ID,
			SenderIsUser: false,
			SenderID:     senderID,
			Message:      message,
		}
		if err := s.ticketRepo.AddMessage(ctx, tx, msg); err != nil {
			return err
		}

		if err := s.ticketRepo.UpdateStatus(ctx, tx, ticket.ID, model.TicketStatusAnswered); err != nil {
			return err
		}

		preview := message
		if len(preview) > 200 {
			preview = preview[:200]
		}
		return s.notificationRepo.Create(ctx, tx, &model.Notification{
			UserID:     ticket.UserID,
			Title:      fmt.Sprintf("Reply to ticket: %s", ticket.Title),
			Message:    preview,
			Type:       model.NotificationTicketResponse,
			RelatedURL: fmt.Sprintf("/support/tickets/%d/", ticket.ID),
		})
	})
}

func ticketView(t *model.Ticket, withMessages bool) *dto.TicketView {
	view := &dto.TicketView{
		ID:        t.ID,
		Title:     t.Title,
		Message:   t.Message,
		Category:  string(t.Category),
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
	if withMessages {
		view.Messages = make([]*dto.TicketMessageView, len(t.Messages))
		for i, m := range t.Messages {
			view.Messages[i] = &dto.TicketMessageView{
				ID:           m.ID,
				SenderIsUser: m.SenderIsUser,
				Message:      m.Message,
				CreatedAt:    m.CreatedAt,
			}
		}
	}
	return view
}
