package entity

import (
	"storefront-service/internal/pkg/datetime"
	"storefront-service/internal/pkg/money"
)

const (
	CategoryMusic      = "MUSIC"
	CategorySports     = "SPORTS"
	CategoryEducation  = "EDUCATION"
	CategoryTechnology = "TECHNOLOGY"
)

type Event struct {
	EventID         int64         `json:"event_id"`
	EventTitle      string        `json:"event_title"`
	Description     string        `json:"description"`
	Category        string        `json:"category"`
	Price           money.Amount  `json:"price"`
	DiscountedPrice money.Amount  `json:"discounted_price"`
	IsFree          bool          `json:"is_free"`
	Date            datetime.Time `json:"date"`
	// Time is the time of day as the backend stores it, passed through untouched.
	Time         string `json:"time"`
	Location     string `json:"location"`
	SeatQuantity int    `json:"seat_quantity"`
	ImageURL     string `json:"image_url,omitempty"`
}

type Discount struct {
	DiscountID         int64         `json:"discount_id"`
	EventID            int64         `json:"event_id"`
	DiscountPercentage money.Amount  `json:"discount_percentage"`
	StartDate          datetime.Time `json:"start_date"`
	EndDate            datetime.Time `json:"end_date"`
}

type ReviewUser struct {
	Username string `json:"username"`
}

type Review struct {
	ReviewID       int64      `json:"review_id"`
	RegistrationID int64      `json:"registration_id"`
	UserID         int64      `json:"user_id,omitempty"`
	Rating         int        `json:"rating"`
	Comment        string     `json:"comment"`
	User           ReviewUser `json:"User"`
}
