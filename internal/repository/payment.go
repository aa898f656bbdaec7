package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bistro-boss-api/internal/dto"
	"bistro-boss-api/internal/model"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	ListByEmail(ctx context.Context, email string) ([]*model.Payment, error)
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	CategoryStats(ctx context.Context) ([]*dto.CategoryStat, error)
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{
		db: db,
	}
}

// Create inserts the payment together with its per-menu-item rows in one
// store call. Payments are never updated afterwards.
func (r *paymentRepoImpl) Create(ctx context.Context, payment *model.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepoImpl) ListByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	var payments []*model.Payment
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("email = ?", email).
		Find(&payments).Error

	if err != nil {
		return nil, err
	}

	for _, p := range payments {
		p.MenuItemIDs = make([]string, len(p.Items))
		for i, item := range p.Items {
			p.MenuItemIDs[i] = item.MenuItemID
		}
	}

	return payments, nil
}

func (r *paymentRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Payment{}).Count(&count).Error
	return count, err
}

func (r *paymentRepoImpl) TotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Select("COALESCE(SUM(price), 0)").
		Scan(&revenue).Error

	return revenue, err
}

// CategoryStats joins the payments' menu item rows against the catalog and
// groups by category. Rows referencing a menu item that no longer exists
// drop out of the join. Group order is whatever the store returns.
func (r *paymentRepoImpl) CategoryStats(ctx context.Context) ([]*dto.CategoryStat, error) {
	var stats []*dto.CategoryStat
	err := r.db.WithContext(ctx).Model(&model.PaymentItem{}).
		Select("menu_items.category AS category, COUNT(*) AS quantity, SUM(menu_items.price) AS revenue").
		Joins("JOIN menu_items ON menu_items.id = payment_items.menu_item_id").
		Group("menu_items.category").
		Scan(&stats).Error

	if err != nil {
		return nil, err
	}

	return stats, nil
}
