package usecases

import (
	"bytes"
	"time"

	"storefront-service/internal/module/stats/models/entity"
	"storefront-service/internal/module/stats/models/request"
	"storefront-service/internal/module/stats/models/response"
	"storefront-service/internal/pkg/datetime"
	"storefront-service/internal/pkg/money"

	"github.com/goccy/go-json"
)

const paymentCompleted = "COMPLETED"

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// AggregateRevenue sums COMPLETED payments into UTC calendar months. The
// monthly view folds every year together; the yearly view keeps only year.
// Completed payments with an unreadable date or amount are counted in
// Skipped; completed payments without a date are left out silently.
func AggregateRevenue(payments []entity.Payment, view string, year int) response.Revenue {
	resp := response.Revenue{View: view, Labels: monthLabels}
	if view == request.ViewYearly {
		resp.Year = year
	}

	for _, p := range payments {
		if p.PaymentStatus != paymentCompleted || p.PaymentDate == "" {
			continue
		}
		at, err := datetime.Parse(p.PaymentDate)
		if err != nil || at.IsZero() {
			resp.Skipped++
			continue
		}
		amount, ok := parseAmount(p.Amount)
		if !ok {
			resp.Skipped++
			continue
		}

		utc := at.UTC()
		if view == request.ViewYearly && utc.Year() != year {
			continue
		}
		resp.Monthly[utc.Month()-time.January] += amount
		resp.Total += amount
	}
	return resp
}

func parseAmount(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" || string(raw) == `""` {
		return 0, false
	}
	var a money.Amount
	if err := json.Unmarshal(raw, &a); err != nil {
		return 0, false
	}
	return a.Float64(), true
}
