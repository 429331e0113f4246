package response

import (
	"storefront-service/internal/module/event/models/entity"
	"storefront-service/internal/pkg/helpers"
	"storefront-service/internal/pkg/money"
)

// EventSummary is an event as the storefront shows it on a card.
type EventSummary struct {
	entity.Event
	EffectivePrice money.Amount `json:"effective_price"`
	DisplayPrice   string       `json:"display_price"`
	HasDiscount    bool         `json:"has_discount"`
	IsCompleted    bool         `json:"is_completed"`
}

type EventList struct {
	Events     []EventSummary     `json:"events"`
	Pagination helpers.Pagination `json:"pagination"`
}

type EventDetail struct {
	Event          EventSummary      `json:"event"`
	ActiveDiscount *entity.Discount  `json:"active_discount,omitempty"`
	Discounts      []entity.Discount `json:"discounts"`
	Reviews        []entity.Review   `json:"reviews"`
	AverageRating  float64           `json:"average_rating"`
}
