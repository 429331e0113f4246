package entity

import (
	"storefront-service/internal/pkg/datetime"

	"github.com/goccy/go-json"
)

type User struct {
	UserID    int64         `json:"user_id"`
	Username  string        `json:"username"`
	Fullname  string        `json:"fullname"`
	Email     string        `json:"email"`
	Role      string        `json:"role"`
	CreatedAt datetime.Time `json:"created_at"`
}

type Registration struct {
	RegistrationID     int64         `json:"registration_id"`
	EventID            int64         `json:"event_id"`
	UserID             int64         `json:"user_id"`
	Quantity           int           `json:"quantity"`
	RegistrationStatus string        `json:"registration_status"`
	RegistrationDate   datetime.Time `json:"registration_date"`
}

// Payment keeps amount and date as sent; rows that fail to parse are
// skipped by the revenue report instead of failing the whole listing.
type Payment struct {
	PaymentID      int64           `json:"payment_id"`
	RegistrationID int64           `json:"registration_id"`
	Amount         json.RawMessage `json:"amount"`
	PaymentStatus  string          `json:"payment_status"`
	PaymentMethod  string          `json:"payment_method"`
	PaymentDate    string          `json:"payment_date"`
}
