package entity

import (
	"storefront-service/internal/pkg/datetime"
	"storefront-service/internal/pkg/money"
)

const (
	StatusRegistered = "REGISTERED"
	StatusAttended   = "ATTENDED"
)

const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
)

const (
	MethodCreditCard   = "CREDIT_CARD"
	MethodQRIS         = "QRIS"
	MethodBankTransfer = "BANK_TRANSFER"
)

type Payment struct {
	PaymentID      int64         `json:"payment_id"`
	RegistrationID int64         `json:"registration_id"`
	Amount         money.Amount  `json:"amount"`
	PaymentStatus  string        `json:"payment_status"`
	PaymentMethod  string        `json:"payment_method"`
	PaymentDate    datetime.Time `json:"payment_date"`
}

// RegistrationEvent is the slice of the event the backend joins onto a registration.
type RegistrationEvent struct {
	EventTitle string        `json:"event_title"`
	Date       datetime.Time `json:"date"`
	Location   string        `json:"location"`
}

type Registration struct {
	RegistrationID     int64             `json:"registration_id"`
	EventID            int64             `json:"event_id"`
	UserID             int64             `json:"user_id"`
	Quantity           int               `json:"quantity"`
	RegistrationDate   datetime.Time     `json:"registration_date"`
	RegistrationStatus string            `json:"registration_status"`
	Payments           []Payment         `json:"Payments"`
	Event              RegistrationEvent `json:"Event"`
}

type Review struct {
	ReviewID       int64  `json:"review_id"`
	RegistrationID int64  `json:"registration_id"`
	UserID         int64  `json:"user_id"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment"`
}
