package model

import "time"

const (
	RoleGuest = "guest"
	RoleAdmin = "admin"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:64;not null" json:"_id"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	Role      string    `gorm:"size:16;not null;default:guest" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type MenuItem struct {
	ID       string  `gorm:"primaryKey;size:64;not null" json:"_id"`
	Name     string  `gorm:"size:255;not null" json:"name"`
	Category string  `gorm:"size:64;index;not null" json:"category"`
	Price    float64 `gorm:"not null" json:"price"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
}

type Review struct {
	ID      string  `gorm:"primaryKey;size:64;not null" json:"_id"`
	Name    string  `gorm:"size:255" json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}

type CartItem struct {
	ID         string  `gorm:"primaryKey;size:64;not null" json:"_id"`
	Email      string  `gorm:"size:255;index;not null" json:"email"`
	MenuItemID string  `gorm:"size:64;index;not null" json:"menuItemId"`
	Name       string  `gorm:"size:255" json:"name"`
	Image      string  `json:"image"`
	Price      float64 `gorm:"not null" json:"price"`
}

// Payment is append-only: settled payments are never updated or deleted.
type Payment struct {
	ID            string   `gorm:"primaryKey;size:64;not null" json:"_id"`
	Email         string   `gorm:"size:255;index;not null" json:"email"`
	Price         float64  `gorm:"not null" json:"price"`
	TransactionID string   `gorm:"size:128;not null" json:"transactionId"`
	CartIDs       []string `gorm:"serializer:json" json:"cartIds"`
	// Items holds one row per menuItemIds entry, in payload order.
	Items []PaymentItem `gorm:"foreignKey:PaymentID" json:"-"`
	// MenuItemIDs mirrors Items for the JSON surface.
	MenuItemIDs []string  `gorm:"-" json:"menuItemIds"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PaymentItem struct {
	ID         uint   `gorm:"primaryKey"`
	PaymentID  string `gorm:"size:64;index;not null"`
	MenuItemID string `gorm:"size:64;index;not null"`
}
