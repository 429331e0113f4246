// Package pricing decides what a visitor pays for an event at a given
// instant. It is pure: no I/O, no clock, no errors.
package pricing

import (
	"sort"
	"time"

	"storefront-service/internal/module/event/models/entity"
	"storefront-service/internal/pkg/money"
)

type Quote struct {
	Price money.Amount
	// HasDiscount drives the "Discount" badge.
	HasDiscount    bool
	ActiveDiscount *entity.Discount
}

// IsActive reports whether d covers now, both ends inclusive.
func IsActive(d entity.Discount, now time.Time) bool {
	return !now.Before(d.StartDate.Time) && !now.After(d.EndDate.Time)
}

// ActiveDiscounts returns the discounts of eventID active at now, ordered
// soonest end_date first and then by lowest discount_id.
func ActiveDiscounts(eventID int64, discounts []entity.Discount, now time.Time) []entity.Discount {
	var active []entity.Discount
	for _, d := range discounts {
		if d.EventID == eventID && IsActive(d, now) {
			active = append(active, d)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		ei, ej := active[i].EndDate.Time, active[j].EndDate.Time
		if !ei.Equal(ej) {
			return ei.Before(ej)
		}
		return active[i].DiscountID < active[j].DiscountID
	})
	return active
}

// Resolve prices event at now. Free events cost nothing whatever discounts
// exist; an active discount selects the backend's discounted_price, which is
// never recomputed from the percentage.
func Resolve(event entity.Event, discounts []entity.Discount, now time.Time) Quote {
	if event.IsFree {
		return Quote{Price: 0}
	}

	active := ActiveDiscounts(event.EventID, discounts, now)
	if len(active) == 0 {
		return Quote{Price: event.Price}
	}

	chosen := active[0]
	return Quote{
		Price:          event.DiscountedPrice,
		HasDiscount:    true,
		ActiveDiscount: &chosen,
	}
}

func ResolvePrice(event entity.Event, discounts []entity.Discount, now time.Time) money.Amount {
	return Resolve(event, discounts, now).Price
}
