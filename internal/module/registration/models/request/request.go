package request

type CreateRegistration struct {
	EventID  int64 `json:"event_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,gte=1"`
}

type BackendRegistration struct {
	EventID  int64 `json:"event_id"`
	UserID   int64 `json:"user_id"`
	Quantity int   `json:"quantity"`
}

type Pay struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=CREDIT_CARD QRIS BANK_TRANSFER"`
}

type BackendPayment struct {
	RegistrationID int64  `json:"registration_id"`
	PaymentMethod  string `json:"payment_method"`
}

type Review struct {
	// Rating is a pointer so an explicit 0 passes the required check.
	Rating  *int   `json:"rating" validate:"required,gte=0,lte=5"`
	Comment string `json:"comment" validate:"max=256"`
}

type BackendReview struct {
	RegistrationID int64  `json:"registration_id"`
	UserID         int64  `json:"user_id"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment"`
}

// Notification is published after a registration action succeeds.
type Notification struct {
	Type           string `json:"type"`
	UserID         int64  `json:"user_id"`
	RegistrationID int64  `json:"registration_id"`
	EventID        int64  `json:"event_id,omitempty"`
}
