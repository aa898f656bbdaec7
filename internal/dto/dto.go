package dto

type TokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type RegisterResponse struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type CheckoutRequest struct {
	Email         string   `json:"email"`
	Price         float64  `json:"price"`
	TransactionID string   `json:"transactionId"`
	CartIDs       []string `json:"cartIds"`
	MenuItemIDs   []string `json:"menuItemIds"`
}

type CheckoutResult struct {
	PaymentID    string `json:"paymentId"`
	DeletedCount int64  `json:"deletedCount"`
}

type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

type CategoryStat struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type MenuItemUpdate struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
}
