package pricing_test

import (
	"testing"
	"time"

	"storefront-service/internal/module/event/models/entity"
	"storefront-service/internal/module/event/pricing"
	"storefront-service/internal/pkg/datetime"
	"storefront-service/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 12, 0, 0, 0, time.UTC)
}

func discount(id, eventID int64, start, end time.Time) entity.Discount {
	return entity.Discount{
		DiscountID: id,
		EventID:    eventID,
		StartDate:  datetime.New(start),
		EndDate:    datetime.New(end),
	}
}

func TestResolveDiscountWindow(t *testing.T) {
	event := entity.Event{EventID: 1, Price: 100000, DiscountedPrice: 80000}
	discounts := []entity.Discount{discount(1, 1, day(10), day(20))}

	testCases := []struct {
		name string
		now  time.Time
		want money.Amount
	}{
		{"before window", day(9), 100000},
		{"on start", day(10), 80000},
		{"inside window", day(15), 80000},
		{"on end", day(20), 80000},
		{"after window", day(21), 100000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.ResolvePrice(event, discounts, tc.now))
		})
	}
}

func TestResolveFreeEventIgnoresDiscounts(t *testing.T) {
	event := entity.Event{EventID: 1, Price: 100000, DiscountedPrice: 80000, IsFree: true}
	discounts := []entity.Discount{discount(1, 1, day(10), day(20))}

	for _, now := range []time.Time{day(5), day(15), day(25)} {
		q := pricing.Resolve(event, discounts, now)
		assert.Equal(t, money.Amount(0), q.Price)
		assert.False(t, q.HasDiscount)
	}
}

func TestResolveIgnoresOtherEvents(t *testing.T) {
	event := entity.Event{EventID: 1, Price: 50000, DiscountedPrice: 25000}
	discounts := []entity.Discount{discount(1, 2, day(1), day(30))}

	q := pricing.Resolve(event, discounts, day(15))
	assert.Equal(t, money.Amount(50000), q.Price)
	assert.Nil(t, q.ActiveDiscount)
}

func TestResolveNilDiscounts(t *testing.T) {
	event := entity.Event{EventID: 1, Price: 50000}
	assert.Equal(t, money.Amount(50000), pricing.ResolvePrice(event, nil, day(1)))
}

func TestResolveUsesDiscountedPriceVerbatim(t *testing.T) {
	// 10% off would be 90000; the backend's figure wins.
	event := entity.Event{EventID: 1, Price: 100000, DiscountedPrice: 75000}
	d := discount(1, 1, day(1), day(30))
	d.DiscountPercentage = 10

	assert.Equal(t, money.Amount(75000), pricing.ResolvePrice(event, []entity.Discount{d}, day(2)))
}

func TestResolveTieBreak(t *testing.T) {
	event := entity.Event{EventID: 1, Price: 100000, DiscountedPrice: 80000}
	discounts := []entity.Discount{
		discount(5, 1, day(1), day(28)),
		discount(4, 1, day(2), day(20)),
		discount(3, 1, day(3), day(20)),
	}

	q := pricing.Resolve(event, discounts, day(10))

	require.NotNil(t, q.ActiveDiscount)
	assert.Equal(t, int64(3), q.ActiveDiscount.DiscountID)
	assert.True(t, q.HasDiscount)
}
