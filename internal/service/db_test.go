package service_test

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bistro-boss-api/internal/model"
)

// newTestDB opens an in-memory store scoped to the calling test.
func newTestDB(t *testing.T) *gorm.DB {
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

	return db
}
