package service

import (
	"context"
	"fmt"
	"log"

	"bistro-boss-api/internal/client"
	"bistro-boss-api/internal/dto"
	"bistro-boss-api/internal/model"
	"bistro-boss-api/internal/repository"
)

const orderMailSubject = "Bistro Boss Order Confirmation"

type CheckoutService interface {
	// Settle records the payment, clears the carts it paid for and fires the
	// confirmation mail. Only the payment insert can fail the operation: the
	// cart delete never rolls the payment back and the mail is detached.
	Settle(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResult, error)
}

type checkoutServiceImpl struct {
	paymentRepo   repository.PaymentRepository
	cartRepo      repository.CartRepository
	mailer        client.MailerClient
	mailRecipient string
}

func NewCheckoutService(
	paymentRepo repository.PaymentRepository,
	cartRepo repository.CartRepository,
	mailer client.MailerClient,
	mailRecipient string,
) CheckoutService {
	return &checkoutServiceImpl{
		paymentRepo:   paymentRepo,
		cartRepo:      cartRepo,
		mailer:        mailer,
		mailRecipient: mailRecipient,
	}
}

func (s *checkoutServiceImpl) Settle(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResult, error) {
	items := make([]model.PaymentItem, len(req.MenuItemIDs))
	for i, menuItemID := range req.MenuItemIDs {
		items[i] = model.PaymentItem{MenuItemID: menuItemID}
	}

	payment := &model.Payment{
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		CartIDs:       req.CartIDs,
		Items:         items,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	// From here on the payment stands. A failed or partial cart delete
	// leaves stale cart rows behind for reconciliation, never a rollback.
	deleted, err := s.cartRepo.DeleteMany(ctx, req.CartIDs)
	if err != nil {
		log.Printf("clear carts for payment %s: %v", payment.ID, err)
	}

	s.sendConfirmation(req.TransactionID)

	return &dto.CheckoutResult{
		PaymentID:    payment.ID,
		DeletedCount: deleted,
	}, nil
}

// sendConfirmation dispatches the order mail without waiting on it. The
// request context is not reused: the mail outlives the request.
func (s *checkoutServiceImpl) sendConfirmation(transactionID string) {
	body := fmt.Sprintf(`<div>
	<h1>Thank you for your order</h1>
	<h4>Your Transaction Id: <strong>%s</strong></h4>
	</div>`, transactionID)

	go func() {
		if err := s.mailer.Send(context.Background(), s.mailRecipient, orderMailSubject, body); err != nil {
			log.Printf("send order confirmation for transaction %s: %v", transactionID, err)
		}
	}()
}
