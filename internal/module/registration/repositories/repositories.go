package repositories

import (
	"context"
	"fmt"

	eventEntity "storefront-service/internal/module/event/models/entity"
	"storefront-service/internal/module/registration/models/entity"
	"storefront-service/internal/module/registration/models/request"
	"storefront-service/internal/pkg/backend"
	"storefront-service/internal/pkg/errors"
	"storefront-service/internal/pkg/lock"
	"storefront-service/internal/pkg/log"
)

type repositories struct {
	backend *backend.Client
	log     log.Logger
	locker  lock.Locker
}

type Repositories interface {
	// http
	FindRegistrationsByUserID(ctx context.Context, token string, userID int64) ([]entity.Registration, error)
	FindReviewsByUserID(ctx context.Context, token string, userID int64) ([]entity.Review, error)
	FindEventByID(ctx context.Context, eventID int64) (eventEntity.Event, error)
	CreateRegistration(ctx context.Context, token string, payload *request.BackendRegistration) (entity.Registration, error)
	CreatePayment(ctx context.Context, token string, payload *request.BackendPayment) (entity.Payment, error)
	MarkAttended(ctx context.Context, token string, registrationID int64) error
	CreateReview(ctx context.Context, token string, payload *request.BackendReview) (entity.Review, error)
	// redis
	LockRegistration(ctx context.Context, registrationID int64) (func(), error)
}

func New(backend *backend.Client, log log.Logger, locker lock.Locker) Repositories {
	return &repositories{
		backend: backend,
		log:     log,
		locker:  locker,
	}
}

// FindRegistrationsByUserID implements Repositories.
func (r *repositories) FindRegistrationsByUserID(ctx context.Context, token string, userID int64) ([]entity.Registration, error) {
	var registrations []entity.Registration
	if err := r.backend.Get(ctx, fmt.Sprintf("/api/user/registrations/%d", userID), token, nil, &registrations); err != nil {
		return nil, err
	}
	return registrations, nil
}

// FindReviewsByUserID implements Repositories.
func (r *repositories) FindReviewsByUserID(ctx context.Context, token string, userID int64) ([]entity.Review, error) {
	var reviews []entity.Review
	if err := r.backend.Get(ctx, fmt.Sprintf("/api/user/reviews/user/%d", userID), token, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindEventByID implements Repositories.
func (r *repositories) FindEventByID(ctx context.Context, eventID int64) (eventEntity.Event, error) {
	var event eventEntity.Event
	if err := r.backend.Get(ctx, fmt.Sprintf("/api/user/events/%d", eventID), "", nil, &event); err != nil {
		return eventEntity.Event{}, err
	}
	if event.EventID == 0 {
		return eventEntity.Event{}, errors.NotFound("event not found")
	}
	return event, nil
}

// CreateRegistration implements Repositories.
func (r *repositories) CreateRegistration(ctx context.Context, token string, payload *request.BackendRegistration) (entity.Registration, error) {
	var registration entity.Registration
	if err := r.backend.Post(ctx, "/api/user/register", token, payload, &registration); err != nil {
		return entity.Registration{}, err
	}
	return registration, nil
}

// CreatePayment implements Repositories.
func (r *repositories) CreatePayment(ctx context.Context, token string, payload *request.BackendPayment) (entity.Payment, error) {
	var payment entity.Payment
	if err := r.backend.Post(ctx, "/api/user/payments", token, payload, &payment); err != nil {
		return entity.Payment{}, err
	}
	return payment, nil
}

// MarkAttended implements Repositories.
func (r *repositories) MarkAttended(ctx context.Context, token string, registrationID int64) error {
	return r.backend.Patch(ctx, fmt.Sprintf("/api/user/attend/%d", registrationID), token, nil, nil)
}

// CreateReview implements Repositories.
func (r *repositories) CreateReview(ctx context.Context, token string, payload *request.BackendReview) (entity.Review, error) {
	var review entity.Review
	if err := r.backend.Post(ctx, "/api/user/reviews", token, payload, &review); err != nil {
		return entity.Review{}, err
	}
	return review, nil
}

// LockRegistration implements Repositories.
func (r *repositories) LockRegistration(ctx context.Context, registrationID int64) (func(), error) {
	return r.locker.Lock(ctx, fmt.Sprintf("review:registration:%d", registrationID))
}
