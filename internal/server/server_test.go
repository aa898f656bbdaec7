package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bistro-boss-api/internal/auth"
	"bistro-boss-api/internal/config"
	"bistro-boss-api/internal/dto"
	"bistro-boss-api/internal/model"
	"bistro-boss-api/internal/repository"
	"bistro-boss-api/internal/service"
)

type noopStripe struct{}

func (noopStripe) CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	return "pi_secret", nil
}

type noopMailer struct{}

func (noopMailer) Send(ctx context.Context, recipient, subject, htmlBody string) error {
	return nil
}

type fixture struct {
	srv      *Server
	db       *gorm.DB
	users    repository.UserRepository
	menu     repository.MenuRepository
	carts    repository.CartRepository
	payments repository.PaymentRepository
	tokens   *auth.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.MenuItem{},
		&model.Review{},
		&model.CartItem{},
		&model.Payment{},
		&model.PaymentItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	tokens := auth.NewManager(&config.JWT{Secret: "test-secret", TTL: time.Hour})

	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	cartRepo := repository.NewCartRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	userService := service.NewUserService(userRepo)
	srv := NewServer(
		tokens,
		userService,
		service.NewCatalogService(menuRepo, reviewRepo),
		service.NewCartService(cartRepo),
		service.NewPaymentService(noopStripe{}, paymentRepo, "usd"),
		service.NewCheckoutService(paymentRepo, cartRepo, noopMailer{}, "orders@example.com"),
		service.NewAnalyticsService(userRepo, menuRepo, paymentRepo),
	)

	return &fixture{
		srv:      srv,
		db:       db,
		users:    userRepo,
		menu:     menuRepo,
		carts:    cartRepo,
		payments: paymentRepo,
		tokens:   tokens,
	}
}

func (f *fixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.srv.echo.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := f.tokens.Sign(email, "")
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func (f *fixture) seedAdmin(t *testing.T, email string) *model.User {
	t.Helper()
	admin := &model.User{Email: email, Role: model.RoleAdmin}
	if err := f.users.Create(context.Background(), admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin
}

func TestUnauthenticatedWriteIsRejectedWithoutMutation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/menu", "", map[string]interface{}{
		"name": "Caesar", "category": "Salad", "price": 5,
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	count, err := f.menu.Count(context.Background())
	if err != nil {
		t.Fatalf("count menu: %v", err)
	}
	if count != 0 {
		t.Errorf("menu count = %d after rejected write, want 0", count)
	}
}

func TestAdminGateForbidsGuests(t *testing.T) {
	f := newFixture(t)

	guest := &model.User{Email: "guest@example.com"}
	if err := f.users.Create(context.Background(), guest); err != nil {
		t.Fatalf("seed guest: %v", err)
	}

	rec := f.do(t, http.MethodGet, "/users", f.tokenFor(t, guest.Email), nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestPromotionFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := f.seedAdmin(t, "boss@example.com")
	guest := &model.User{Email: "guest@example.com"}
	if err := f.users.Create(ctx, guest); err != nil {
		t.Fatalf("seed guest: %v", err)
	}

	rec := f.do(t, http.MethodPatch, "/users/admin/"+guest.ID, f.tokenFor(t, admin.Email), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("promote status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = f.do(t, http.MethodGet, "/users/admin/"+guest.Email, f.tokenFor(t, guest.Email), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("check status = %d, want 200", rec.Code)
	}

	var resp dto.AdminCheckResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Admin {
		t.Error("promoted user still reports admin=false")
	}
}

func TestCheckoutThenOrderStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	salad := &model.MenuItem{Name: "Caesar", Category: "Salad", Price: 5}
	if err := f.menu.Create(ctx, salad); err != nil {
		t.Fatalf("seed menu: %v", err)
	}

	cart := &model.CartItem{Email: "guest@example.com", MenuItemID: salad.ID, Price: 5}
	if err := f.carts.Create(ctx, cart); err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	rec := f.do(t, http.MethodPost, "/payments", "", dto.CheckoutRequest{
		Email:         "guest@example.com",
		Price:         5,
		TransactionID: "tx-1",
		CartIDs:       []string{cart.ID},
		MenuItemIDs:   []string{salad.ID},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("checkout status = %d: %s", rec.Code, rec.Body.String())
	}

	var result dto.CheckoutResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode checkout result: %v", err)
	}
	if result.DeletedCount != 1 {
		t.Errorf("deleted = %d, want 1", result.DeletedCount)
	}

	rec = f.do(t, http.MethodGet, "/order-stats", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("order-stats status = %d", rec.Code)
	}

	var stats []dto.CategoryStat
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if len(stats) != 1 || stats[0].Category != "Salad" || stats[0].Quantity != 1 || stats[0].Revenue != 5 {
		t.Errorf("stats = %+v, want one Salad group", stats)
	}
}
