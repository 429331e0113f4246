// Package gate decides which actions a user may take on a registration,
// given its status, the payments attached to it and the user's reviews.
package gate

import (
	"storefront-service/internal/module/registration/models/entity"
)

type State string

const (
	StatePendingPayment     State = "PENDING_PAYMENT"
	StatePaidRegistered     State = "PAID_REGISTERED"
	StateAttendedUnreviewed State = "ATTENDED_UNREVIEWED"
	StateAttendedReviewed   State = "ATTENDED_REVIEWED"
	StatePaymentFailed      State = "PAYMENT_FAILED"
	StateAwaitingPayment    State = "AWAITING_PAYMENT"
	StateUnknown            State = "UNKNOWN"
)

// PaymentNone is reported when a registration has no payment at all.
const PaymentNone = "NONE"

// FlagReviewWithoutCompletedPayment marks a review permission granted on an
// attended registration whose payment never completed.
const FlagReviewWithoutCompletedPayment = "review_without_completed_payment"

type Actions struct {
	CanPay        bool     `json:"can_pay"`
	CanAttend     bool     `json:"can_attend"`
	CanReview     bool     `json:"can_review"`
	Reviewed      bool     `json:"reviewed"`
	PaymentStatus string   `json:"payment_status"`
	State         State    `json:"state"`
	Flags         []string `json:"flags,omitempty"`
}

// HasFlag reports whether flag was raised.
func (a Actions) HasFlag(flag string) bool {
	for _, f := range a.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// LatestPayment picks the payment with the latest payment_date. On equal
// dates the one listed first wins.
func LatestPayment(payments []entity.Payment) (entity.Payment, bool) {
	if len(payments) == 0 {
		return entity.Payment{}, false
	}
	latest := payments[0]
	for _, p := range payments[1:] {
		if p.PaymentDate.After(latest.PaymentDate.Time) {
			latest = p
		}
	}
	return latest, true
}

// Compute evaluates a registration on its own, without review history.
func Compute(reg entity.Registration) Actions {
	status := PaymentNone
	if p, ok := LatestPayment(reg.Payments); ok {
		status = p.PaymentStatus
	}

	a := Actions{
		PaymentStatus: status,
		CanPay:        status == entity.PaymentPending,
		CanAttend:     reg.RegistrationStatus == entity.StatusRegistered && status == entity.PaymentCompleted,
		CanReview:     reg.RegistrationStatus == entity.StatusAttended && status != entity.PaymentPending,
	}
	if a.CanReview && status != entity.PaymentCompleted {
		a.Flags = append(a.Flags, FlagReviewWithoutCompletedPayment)
	}

	switch reg.RegistrationStatus {
	case entity.StatusAttended:
		a.State = StateAttendedUnreviewed
	case entity.StatusRegistered:
		switch status {
		case entity.PaymentPending:
			a.State = StatePendingPayment
		case entity.PaymentCompleted:
			a.State = StatePaidRegistered
		case entity.PaymentFailed:
			a.State = StatePaymentFailed
		default:
			a.State = StateAwaitingPayment
		}
	default:
		a.State = StateUnknown
	}
	return a
}

// Reviewed reports whether any review references the registration.
func Reviewed(reg entity.Registration, reviews []entity.Review) bool {
	for _, r := range reviews {
		if r.RegistrationID == reg.RegistrationID {
			return true
		}
	}
	return false
}

// Evaluate is Compute plus the user's review history. Reviewed only moves
// the state to ATTENDED_REVIEWED; CanReview keeps its computed value and a
// second review is refused at submit time.
func Evaluate(reg entity.Registration, reviews []entity.Review) Actions {
	a := Compute(reg)
	a.Reviewed = Reviewed(reg, reviews)
	if a.Reviewed && a.State == StateAttendedUnreviewed {
		a.State = StateAttendedReviewed
	}
	return a
}
