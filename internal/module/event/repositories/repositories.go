package repositories

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"storefront-service/internal/module/event/models/entity"
	"storefront-service/internal/module/event/models/request"
	"storefront-service/internal/pkg/backend"
	"storefront-service/internal/pkg/cache"
	"storefront-service/internal/pkg/errors"
	"storefront-service/internal/pkg/log"
	"storefront-service/internal/pkg/scheduler"

	"github.com/hibiken/asynq"
)

type repositories struct {
	backend     *backend.Client
	log         log.Logger
	cache       *cache.Cache
	asynqClient *asynq.Client
}

type Repositories interface {
	// http, public
	FindEvents(ctx context.Context, query *request.ListEvents) ([]entity.Event, error)
	FindDiscounts(ctx context.Context) ([]entity.Discount, error)
	FindEventByID(ctx context.Context, eventID int64) (entity.Event, error)
	FindDiscountsByEventID(ctx context.Context, eventID int64) ([]entity.Discount, error)
	FindReviewsByEventID(ctx context.Context, eventID int64) ([]entity.Review, error)
	// http, admin
	FindAdminEvents(ctx context.Context, token string) ([]entity.Event, error)
	FindAdminEventByID(ctx context.Context, token string, eventID int64) (entity.Event, error)
	CreateEvent(ctx context.Context, token string, payload *request.BackendEvent) (entity.Event, error)
	UpdateEvent(ctx context.Context, token string, eventID int64, payload *request.BackendEvent) (entity.Event, error)
	DeleteEvent(ctx context.Context, token string, eventID int64) error
	CreateDiscount(ctx context.Context, token string, payload *request.CreateDiscount) (entity.Discount, error)
	// redis
	PurgeEventCache(ctx context.Context) (int, error)
	// scheduler
	SchedulePurgeEventCache(ctx context.Context, payload scheduler.PurgeEventCache, at time.Time) (string, error)
}

func New(backend *backend.Client, log log.Logger, cache *cache.Cache, asynqClient *asynq.Client) Repositories {
	return &repositories{
		backend:     backend,
		log:         log,
		cache:       cache,
		asynqClient: asynqClient,
	}
}

// FindEvents implements Repositories.
func (r *repositories) FindEvents(ctx context.Context, query *request.ListEvents) ([]entity.Event, error) {
	params := url.Values{}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.Location != "" {
		params.Set("location", query.Location)
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}

	return cache.Remember(ctx, r.cache, cache.Key("list", params.Encode()), func(ctx context.Context) ([]entity.Event, error) {
		var events []entity.Event
		if err := r.backend.Get(ctx, "/api/user/events", "", params, &events); err != nil {
			return nil, err
		}
		return events, nil
	})
}

// FindDiscounts implements Repositories.
func (r *repositories) FindDiscounts(ctx context.Context) ([]entity.Discount, error) {
	return cache.Remember(ctx, r.cache, cache.Key("discounts"), func(ctx context.Context) ([]entity.Discount, error) {
		var discounts []entity.Discount
		if err := r.backend.Get(ctx, "/api/user/events/discount", "", nil, &discounts); err != nil {
			return nil, err
		}
		return discounts, nil
	})
}

// FindEventByID implements Repositories.
func (r *repositories) FindEventByID(ctx context.Context, eventID int64) (entity.Event, error) {
	return cache.Remember(ctx, r.cache, cache.Key("item", fmt.Sprint(eventID)), func(ctx context.Context) (entity.Event, error) {
		var event entity.Event
		if err := r.backend.Get(ctx, fmt.Sprintf("/api/user/events/%d", eventID), "", nil, &event); err != nil {
			return entity.Event{}, err
		}
		if event.EventID == 0 {
			return entity.Event{}, errors.NotFound("event not found")
		}
		return event, nil
	})
}

// FindDiscountsByEventID implements Repositories.
func (r *repositories) FindDiscountsByEventID(ctx context.Context, eventID int64) ([]entity.Discount, error) {
	var discounts []entity.Discount
	if err := r.backend.Get(ctx, fmt.Sprintf("/api/user/events/discount/%d", eventID), "", nil, &discounts); err != nil {
		return nil, err
	}
	return discounts, nil
}

// FindReviewsByEventID implements Repositories.
func (r *repositories) FindReviewsByEventID(ctx context.Context, eventID int64) ([]entity.Review, error) {
	var reviews []entity.Review
	if err := r.backend.Get(ctx, fmt.Sprintf("/api/user/reviews/event/%d", eventID), "", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindAdminEvents implements Repositories.
func (r *repositories) FindAdminEvents(ctx context.Context, token string) ([]entity.Event, error) {
	var events []entity.Event
	if err := r.backend.Get(ctx, "/api/admin/events", token, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// FindAdminEventByID implements Repositories.
func (r *repositories) FindAdminEventByID(ctx context.Context, token string, eventID int64) (entity.Event, error) {
	var event entity.Event
	if err := r.backend.Get(ctx, fmt.Sprintf("/api/admin/events/%d", eventID), token, nil, &event); err != nil {
		return entity.Event{}, err
	}
	return event, nil
}

// CreateEvent implements Repositories.
func (r *repositories) CreateEvent(ctx context.Context, token string, payload *request.BackendEvent) (entity.Event, error) {
	var event entity.Event
	if err := r.backend.Post(ctx, "/api/admin/events", token, payload, &event); err != nil {
		return entity.Event{}, err
	}
	return event, nil
}

// UpdateEvent implements Repositories.
func (r *repositories) UpdateEvent(ctx context.Context, token string, eventID int64, payload *request.BackendEvent) (entity.Event, error) {
	var event entity.Event
	if err := r.backend.Put(ctx, fmt.Sprintf("/api/admin/events/%d", eventID), token, payload, &event); err != nil {
		return entity.Event{}, err
	}
	return event, nil
}

// DeleteEvent implements Repositories.
func (r *repositories) DeleteEvent(ctx context.Context, token string, eventID int64) error {
	return r.backend.Delete(ctx, fmt.Sprintf("/api/admin/events/%d", eventID), token)
}

// CreateDiscount implements Repositories.
func (r *repositories) CreateDiscount(ctx context.Context, token string, payload *request.CreateDiscount) (entity.Discount, error) {
	var discount entity.Discount
	if err := r.backend.Post(ctx, "/api/admin/discounts", token, payload, &discount); err != nil {
		return entity.Discount{}, err
	}
	return discount, nil
}

// PurgeEventCache implements Repositories.
func (r *repositories) PurgeEventCache(ctx context.Context) (int, error) {
	n, err := r.cache.PurgePrefix(ctx, cache.EventsPrefix)
	if err != nil {
		r.log.Error(ctx, "error purge event cache", err)
		return n, errors.InternalServerError("error purge event cache")
	}
	return n, nil
}

// SchedulePurgeEventCache implements Repositories.
func (r *repositories) SchedulePurgeEventCache(ctx context.Context, payload scheduler.PurgeEventCache, at time.Time) (string, error) {
	task, err := scheduler.NewTask(scheduler.TypePurgeEventCache, payload)
	if err != nil {
		return "", errors.InternalServerError("error create purge task")
	}

	id, err := scheduler.EnqueueAt(ctx, r.asynqClient, task, at)
	if err != nil {
		r.log.Error(ctx, "error enqueue purge task", err)
		return "", errors.InternalServerError("error schedule purge task")
	}
	return id, nil
}
