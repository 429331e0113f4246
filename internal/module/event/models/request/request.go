package request

type ListEvents struct {
	Search   string `query:"search" json:"search,omitempty"`
	Location string `query:"location" json:"location,omitempty"`
	Category string `query:"category" json:"category,omitempty" validate:"omitempty,oneof=MUSIC SPORTS EDUCATION TECHNOLOGY"`
	Page     int    `query:"page" json:"page,omitempty" validate:"gte=0"`
}

type UpsertEvent struct {
	EventTitle   string  `json:"event_title" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Category     string  `json:"category" validate:"required,oneof=MUSIC SPORTS EDUCATION TECHNOLOGY"`
	Price        float64 `json:"price" validate:"gte=0"`
	IsFree       bool    `json:"is_free"`
	Date         string  `json:"date" validate:"required"`
	Time         string  `json:"time" validate:"required"`
	Location     string  `json:"location" validate:"required"`
	SeatQuantity int     `json:"seat_quantity" validate:"required,gt=0"`
	ImageURL     string  `json:"image_url" validate:"omitempty,url"`
}

// BackendEvent is the body the backend expects on event create and update.
type BackendEvent struct {
	EventTitle      string  `json:"event_title"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discounted_price"`
	IsFree          bool    `json:"is_free"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Location        string  `json:"location"`
	SeatQuantity    int     `json:"seat_quantity"`
	ImageURL        string  `json:"image_url,omitempty"`
}

type CreateDiscount struct {
	EventID            int64   `json:"event_id" validate:"required,gt=0"`
	DiscountPercentage float64 `json:"discount_percentage" validate:"required,gt=0,lte=100"`
	StartDate          string  `json:"start_date" validate:"required"`
	EndDate            string  `json:"end_date" validate:"required"`
}

// EventChanged is published whenever an admin write touches an event.
type EventChanged struct {
	EventID int64  `json:"event_id"`
	Action  string `json:"action" validate:"required"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
