package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"bistro-boss-api/internal/client"
	"bistro-boss-api/internal/dto"
	"bistro-boss-api/internal/model"
	"bistro-boss-api/internal/repository"
	"bistro-boss-api/internal/service"
)

type fakePaymentRepo struct {
	createErr error
	created   []*model.Payment
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *model.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	if payment.ID == "" {
		payment.ID = "pay-1"
	}
	f.created = append(f.created, payment)
	return nil
}

func (f *fakePaymentRepo) ListByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	return f.created, nil
}

func (f *fakePaymentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.created)), nil
}

func (f *fakePaymentRepo) TotalRevenue(ctx context.Context) (float64, error) { return 0, nil }

func (f *fakePaymentRepo) CategoryStats(ctx context.Context) ([]*dto.CategoryStat, error) {
	return nil, nil
}

type fakeCartRepo struct {
	items     map[string]bool
	deleteErr error
}

func (f *fakeCartRepo) ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error) {
	return nil, nil
}

func (f *fakeCartRepo) Create(ctx context.Context, item *model.CartItem) error {
	f.items[item.ID] = true
	return nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, id string) (int64, error) { return 0, nil }

func (f *fakeCartRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	var deleted int64
	for _, id := range ids {
		if f.items[id] {
			delete(f.items, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeMailer struct {
	sendErr error
	sent    chan string
}

func (f *fakeMailer) Send(ctx context.Context, recipient, subject, htmlBody string) error {
	f.sent <- htmlBody
	return f.sendErr
}

var (
	_ repository.PaymentRepository = (*fakePaymentRepo)(nil)
	_ repository.CartRepository    = (*fakeCartRepo)(nil)
	_ client.MailerClient          = (*fakeMailer)(nil)
)

func newCheckoutFixture() (*fakePaymentRepo, *fakeCartRepo, *fakeMailer, service.CheckoutService) {
	payments := &fakePaymentRepo{}
	carts := &fakeCartRepo{items: map[string]bool{"cart-a": true, "cart-b": true}}
	mailer := &fakeMailer{sent: make(chan string, 1)}
	svc := service.NewCheckoutService(payments, carts, mailer, "orders@example.com")
	return payments, carts, mailer, svc
}

func checkoutRequest() *dto.CheckoutRequest {
	return &dto.CheckoutRequest{
		Email:         "guest@example.com",
		Price:         18.5,
		TransactionID: "tx-123",
		CartIDs:       []string{"cart-a", "cart-b"},
		MenuItemIDs:   []string{"menu-1", "menu-2"},
	}
}

func TestSettleHappyPath(t *testing.T) {
	payments, carts, mailer, svc := newCheckoutFixture()

	result, err := svc.Settle(context.Background(), checkoutRequest())
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}

	if result.PaymentID == "" {
		t.Error("result carries no payment id")
	}
	if result.DeletedCount != 2 {
		t.Errorf("DeletedCount = %d, want 2", result.DeletedCount)
	}
	if carts.items["cart-a"] || carts.items["cart-b"] {
		t.Errorf("cart items not cleared: %v", carts.items)
	}

	if len(payments.created) != 1 {
		t.Fatalf("payments recorded = %d, want 1", len(payments.created))
	}
	p := payments.created[0]
	if p.TransactionID != "tx-123" || len(p.Items) != 2 || p.Items[0].MenuItemID != "menu-1" {
		t.Errorf("unexpected payment record: %+v", p)
	}

	select {
	case body := <-mailer.sent:
		if !strings.Contains(body, "tx-123") {
			t.Errorf("confirmation mail missing transaction id: %q", body)
		}
	case <-time.After(time.Second):
		t.Error("confirmation mail never dispatched")
	}
}

func TestSettlePaymentInsertFailure(t *testing.T) {
	payments, carts, _, svc := newCheckoutFixture()
	payments.createErr = errors.New("store down")

	if _, err := svc.Settle(context.Background(), checkoutRequest()); err == nil {
		t.Fatal("Settle succeeded despite failed payment insert")
	}

	if !carts.items["cart-a"] || !carts.items["cart-b"] {
		t.Errorf("cart items mutated after failed payment insert: %v", carts.items)
	}
}

func TestSettleCartDeleteFailureKeepsPayment(t *testing.T) {
	payments, carts, _, svc := newCheckoutFixture()
	carts.deleteErr = errors.New("store down")

	result, err := svc.Settle(context.Background(), checkoutRequest())
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}

	if result.DeletedCount != 0 {
		t.Errorf("DeletedCount = %d, want 0", result.DeletedCount)
	}
	if len(payments.created) != 1 {
		t.Errorf("payment should stand after failed cart delete, recorded = %d", len(payments.created))
	}
}

func TestSettleMailerFailureIgnored(t *testing.T) {
	_, _, mailer, svc := newCheckoutFixture()
	mailer.sendErr = errors.New("mailgun down")

	result, err := svc.Settle(context.Background(), checkoutRequest())
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if result.DeletedCount != 2 {
		t.Errorf("DeletedCount = %d, want 2", result.DeletedCount)
	}

	select {
	case <-mailer.sent:
	case <-time.After(time.Second):
		t.Error("confirmation mail never attempted")
	}
}
