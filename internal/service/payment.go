package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"bistro-boss-api/internal/client"
	"bistro-boss-api/internal/model"
	"bistro-boss-api/internal/repository"
)

type PaymentService interface {
	// CreateIntent converts a major-unit price to cents and requests a
	// charge intent from the payment processor.
	CreateIntent(ctx context.Context, price float64) (string, error)
	ListByEmail(ctx context.Context, email string) ([]*model.Payment, error)
}

type paymentServiceImpl struct {
	stripeClient client.StripeClient
	paymentRepo  repository.PaymentRepository
	currency     string
}

func NewPaymentService(
	stripeClient client.StripeClient,
	paymentRepo repository.PaymentRepository,
	currency string,
) PaymentService {
	return &paymentServiceImpl{
		stripeClient: stripeClient,
		paymentRepo:  paymentRepo,
		currency:     currency,
	}
}

func (s *paymentServiceImpl) CreateIntent(ctx context.Context, price float64) (string, error) {
	amountCents := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).IntPart()

	clientSecret, err := s.stripeClient.CreatePaymentIntent(ctx, amountCents, s.currency)
	if err != nil {
		return "", fmt.Errorf("stripe create payment intent: %w", err)
	}

	return clientSecret, nil
}

func (s *paymentServiceImpl) ListByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	return s.paymentRepo.ListByEmail(ctx, email)
}
