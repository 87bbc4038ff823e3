package ticket

import (
	"context"
	"errors"
	"fmt"
	"time"

	ticketRepo "kino/database/repository/ticket"
	"kino/models"
	"kino/services"
	"kino/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultCurrency = "uah"

// Purchase sells qt seats of a session that has not ended. Seats, the
// customer's spending and the ticket are written in one transaction.
func (s *DefaultTicketService) Purchase(ctx context.Context, buyer Buyer, req models.TicketRequest) (*models.PurchaseReceipt, error) {
	logger := utils.GetLogger()

	if buyer.IsAdmin {
		return nil, ErrAdminPurchase
	}
	qt := req.Qt
	if qt == 0 {
		qt = 1
	}
	if qt < 0 {
		return nil, ErrInvalidSeatQty
	}

	session, err := s.Sessions.GetByID(ctx, req.MovieSessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: movie session %s", services.ErrNotFound, req.MovieSessionID)
	}
	now := s.now()
	if session.EndDatetime.Before(now) {
		return nil, ErrSessionEnded
	}
	if qt > session.Qyt {
		return nil, &SeatsExceededError{Requested: qt, Available: session.Qyt}
	}

	ticket := &models.Ticket{
		ID:             uuid.New().String(),
		CustomerID:     buyer.CustomerID,
		MovieSessionID: session.ID,
		Qt:             qt,
		Amount:         session.Price * qt,
		CreatedAt:      now,
	}
	if err := s.Tickets.Purchase(ctx, ticket); err != nil {
		if errors.Is(err, ticketRepo.ErrInsufficientSeats) {
			// Someone else bought the seats between the read and the transaction.
			return nil, &SeatsExceededError{Requested: qt}
		}
		return nil, err
	}
	logger.Info("ticket purchased",
		zap.String("ticketId", ticket.ID),
		zap.String("customerId", buyer.CustomerID),
		zap.String("sessionId", session.ID),
		zap.Int("qt", qt),
	)

	receipt := &models.PurchaseReceipt{
		Ticket:  *ticket,
		Message: fmt.Sprintf("You buy %d ticket/s! Spend %d grn! Enjoy your movie", qt, ticket.Amount),
	}

	if s.Payments != nil {
		intent, err := s.Payments.CreateIntent(ctx, ticket.ID, ticket.Amount, s.currency())
		if err != nil {
			logger.Error("payment intent failed", zap.String("ticketId", ticket.ID), zap.Error(err))
		} else {
			receipt.ClientSecret = intent.ClientSecret
			receipt.Ticket.PaymentIntentID = intent.ID
			if err := s.Tickets.SetPaymentIntent(ctx, ticket.ID, intent.ID); err != nil {
				logger.Error("failed to store payment intent", zap.String("ticketId", ticket.ID), zap.Error(err))
			}
		}
	}

	s.scheduleReminder(ctx, ticket, session, now)

	// The sale is committed; a failed lookup only leaves MoneySpent empty.
	customer, err := s.Customers.GetByID(ctx, buyer.CustomerID)
	if err != nil {
		logger.Error("failed to load customer spending", zap.String("customerId", buyer.CustomerID), zap.Error(err))
	} else if customer != nil {
		receipt.MoneySpent = customer.MoneySpent
	}
	return receipt, nil
}

func (s *DefaultTicketService) currency() string {
	if s.Currency == "" {
		return defaultCurrency
	}
	return s.Currency
}

// scheduleReminder is best effort; a sold ticket is never rolled back for it.
func (s *DefaultTicketService) scheduleReminder(ctx context.Context, ticket *models.Ticket, session *models.MovieSession, now time.Time) {
	if s.Reminders == nil {
		return
	}
	fireAt := session.StartDatetime.Add(-s.LeadTime)
	if fireAt.Before(now) {
		fireAt = now
	}
	payload := models.ReminderPayload{
		TicketID:       ticket.ID,
		CustomerID:     ticket.CustomerID,
		MovieSessionID: session.ID,
		Movie:          session.Movie,
		StartsAt:       session.StartDatetime.Format(time.RFC3339),
	}
	if err := s.Reminders.ScheduleReminder(ctx, payload, fireAt); err != nil {
		utils.GetLogger().Error("failed to schedule reminder", zap.String("ticketId", ticket.ID), zap.Error(err))
	}
}

func (s *DefaultTicketService) ListTickets(ctx context.Context, buyer Buyer) ([]models.Ticket, error) {
	if buyer.IsAdmin {
		return s.Tickets.ListAll(ctx)
	}
	return s.Tickets.ListByCustomer(ctx, buyer.CustomerID)
}
