package usecases

import (
	"context"
	"time"

	"storefront-service/internal/module/event/models/entity"
	"storefront-service/internal/module/event/models/request"
	"storefront-service/internal/module/event/models/response"
	"storefront-service/internal/module/event/pricing"
	"storefront-service/internal/module/event/repositories"
	"storefront-service/internal/pkg/clock"
	"storefront-service/internal/pkg/datetime"
	"storefront-service/internal/pkg/debounce"
	"storefront-service/internal/pkg/errors"
	"storefront-service/internal/pkg/helpers"
	"storefront-service/internal/pkg/log"
	"storefront-service/internal/pkg/messagestream"
	"storefront-service/internal/pkg/scheduler"
	"storefront-service/internal/pkg/session"

	"github.com/ThreeDotsLabs/watermill/message"
	"golang.org/x/sync/errgroup"
)

const (
	ActionCreated    = "created"
	ActionUpdated    = "updated"
	ActionDeleted    = "deleted"
	ActionDiscounted = "discounted"
)

type usecase struct {
	repo      repositories.Repositories
	log       log.Logger
	publish   message.Publisher
	clock     clock.Clock
	debouncer *debounce.Debouncer
	pageSize  int
}

type Usecase interface {
	// storefront
	ListEvents(ctx context.Context, query *request.ListEvents) (response.EventList, error)
	SearchEvents(ctx context.Context, clientKey string, query *request.ListEvents) (response.EventList, error)
	GetEvent(ctx context.Context, eventID int64) (response.EventDetail, error)
	// admin
	AdminListEvents(ctx context.Context, sess session.Session) ([]response.EventSummary, error)
	AdminGetEvent(ctx context.Context, sess session.Session, eventID int64) (entity.Event, error)
	CreateEvent(ctx context.Context, sess session.Session, payload *request.UpsertEvent) (entity.Event, error)
	UpdateEvent(ctx context.Context, sess session.Session, eventID int64, payload *request.UpsertEvent) (entity.Event, error)
	DeleteEvent(ctx context.Context, sess session.Session, eventID int64) error
	CreateDiscount(ctx context.Context, sess session.Session, payload *request.CreateDiscount) (entity.Discount, error)
	// consumers
	ConsumeEventChanged(ctx context.Context, payload *request.EventChanged) error
	PurgeEventCache(ctx context.Context, payload *scheduler.PurgeEventCache) error
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher, clock clock.Clock, debouncer *debounce.Debouncer, pageSize int) Usecase {
	return &usecase{
		repo:      repo,
		log:       log,
		publish:   publish,
		clock:     clock,
		debouncer: debouncer,
		pageSize:  pageSize,
	}
}

func (u *usecase) ListEvents(ctx context.Context, query *request.ListEvents) (response.EventList, error) {
	var (
		events    []entity.Event
		discounts []entity.Discount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = u.repo.FindEvents(gctx, query)
		return err
	})
	g.Go(func() error {
		d, err := u.repo.FindDiscounts(gctx)
		if err != nil {
			// prices fall back to list price
			u.log.Warn(ctx, "error find discounts", err)
			return nil
		}
		discounts = d
		return nil
	})
	if err := g.Wait(); err != nil {
		return response.EventList{}, err
	}

	summaries := u.summarize(events, discounts, u.clock.Now())
	page, pagination := helpers.Paginate(summaries, query.Page, u.pageSize)

	return response.EventList{
		Events:     page,
		Pagination: pagination,
	}, nil
}

func (u *usecase) SearchEvents(ctx context.Context, clientKey string, query *request.ListEvents) (response.EventList, error) {
	var out response.EventList
	err := u.debouncer.Do(ctx, "search:"+clientKey, func(ctx context.Context) error {
		var err error
		out, err = u.ListEvents(ctx, query)
		return err
	})
	if err != nil {
		return response.EventList{}, err
	}
	return out, nil
}

func (u *usecase) GetEvent(ctx context.Context, eventID int64) (response.EventDetail, error) {
	var (
		event     entity.Event
		discounts []entity.Discount
		reviews   []entity.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		event, err = u.repo.FindEventByID(gctx, eventID)
		return err
	})
	g.Go(func() error {
		d, err := u.repo.FindDiscountsByEventID(gctx, eventID)
		if err != nil {
			u.log.Warn(ctx, "error find event discounts", err, eventID)
			return nil
		}
		discounts = d
		return nil
	})
	g.Go(func() error {
		rv, err := u.repo.FindReviewsByEventID(gctx, eventID)
		if err != nil {
			u.log.Warn(ctx, "error find event reviews", err, eventID)
			return nil
		}
		reviews = rv
		return nil
	})
	if err := g.Wait(); err != nil {
		return response.EventDetail{}, err
	}

	now := u.clock.Now()
	quote := pricing.Resolve(event, discounts, now)

	if discounts == nil {
		discounts = []entity.Discount{}
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}

	return response.EventDetail{
		Event:          summary(event, quote, now),
		ActiveDiscount: quote.ActiveDiscount,
		Discounts:      discounts,
		Reviews:        reviews,
		AverageRating:  averageRating(reviews),
	}, nil
}

func (u *usecase) AdminListEvents(ctx context.Context, sess session.Session) ([]response.EventSummary, error) {
	events, err := u.repo.FindAdminEvents(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	discounts, err := u.repo.FindDiscounts(ctx)
	if err != nil {
		u.log.Warn(ctx, "error find discounts", err)
	}

	return u.summarize(events, discounts, u.clock.Now()), nil
}

func (u *usecase) AdminGetEvent(ctx context.Context, sess session.Session, eventID int64) (entity.Event, error) {
	return u.repo.FindAdminEventByID(ctx, sess.Token, eventID)
}

func (u *usecase) CreateEvent(ctx context.Context, sess session.Session, payload *request.UpsertEvent) (entity.Event, error) {
	body, err := backendEvent(payload, 0)
	if err != nil {
		return entity.Event{}, err
	}

	event, err := u.repo.CreateEvent(ctx, sess.Token, body)
	if err != nil {
		return entity.Event{}, err
	}

	u.publishEventChanged(ctx, event.EventID, ActionCreated)
	return event, nil
}

func (u *usecase) UpdateEvent(ctx context.Context, sess session.Session, eventID int64, payload *request.UpsertEvent) (entity.Event, error) {
	current, err := u.repo.FindAdminEventByID(ctx, sess.Token, eventID)
	if err != nil {
		return entity.Event{}, err
	}

	// the discounted price is owned by the discount flow, not the edit form
	body, err := backendEvent(payload, current.DiscountedPrice.Float64())
	if err != nil {
		return entity.Event{}, err
	}

	event, err := u.repo.UpdateEvent(ctx, sess.Token, eventID, body)
	if err != nil {
		return entity.Event{}, err
	}

	u.publishEventChanged(ctx, eventID, ActionUpdated)
	return event, nil
}

func (u *usecase) DeleteEvent(ctx context.Context, sess session.Session, eventID int64) error {
	if err := u.repo.DeleteEvent(ctx, sess.Token, eventID); err != nil {
		return err
	}

	u.publishEventChanged(ctx, eventID, ActionDeleted)
	return nil
}

func (u *usecase) CreateDiscount(ctx context.Context, sess session.Session, payload *request.CreateDiscount) (entity.Discount, error) {
	start, startErr := datetime.Parse(payload.StartDate)
	end, endErr := datetime.Parse(payload.EndDate)

	verr := &errors.ValidationError{}
	if startErr != nil {
		verr.Add("start_date", "must be a valid date")
	}
	if endErr != nil {
		verr.Add("end_date", "must be a valid date")
	}
	if startErr == nil && endErr == nil && start.After(end.Time) {
		verr.Add("end_date", "must not be before start date")
	}
	if len(verr.Fields) > 0 {
		return entity.Discount{}, verr
	}

	event, err := u.repo.FindAdminEventByID(ctx, sess.Token, payload.EventID)
	if err != nil {
		return entity.Discount{}, err
	}
	if event.IsFree || event.Price <= 0 {
		return entity.Discount{}, errors.BadRequest("free events cannot be discounted")
	}
	if event.DiscountedPrice > 0 {
		return entity.Discount{}, errors.BadRequest("event already has a discount")
	}

	discount, err := u.repo.CreateDiscount(ctx, sess.Token, payload)
	if err != nil {
		return entity.Discount{}, err
	}

	u.publishEventChanged(ctx, payload.EventID, ActionDiscounted)

	// flip cached prices exactly at the window edges
	now := u.clock.Now()
	boundaries := []struct {
		name string
		at   time.Time
	}{
		{"start", start.Time},
		{"end", end.Time.Add(time.Second)},
	}
	for _, b := range boundaries {
		if !b.at.After(now) {
			continue
		}
		task := scheduler.PurgeEventCache{EventID: payload.EventID, DiscountID: discount.DiscountID, Boundary: b.name}
		if _, err := u.repo.SchedulePurgeEventCache(ctx, task, b.at); err != nil {
			u.log.Warn(ctx, "error schedule discount boundary purge", err, b.name)
		}
	}

	return discount, nil
}

func (u *usecase) ConsumeEventChanged(ctx context.Context, payload *request.EventChanged) error {
	n, err := u.repo.PurgeEventCache(ctx)
	if err != nil {
		return err
	}
	u.log.Info(ctx, "event cache purged", payload.EventID, payload.Action, n)
	return nil
}

func (u *usecase) PurgeEventCache(ctx context.Context, payload *scheduler.PurgeEventCache) error {
	n, err := u.repo.PurgeEventCache(ctx)
	if err != nil {
		return err
	}
	u.log.Info(ctx, "event cache purged at discount boundary", payload.EventID, payload.Boundary, n)
	return nil
}

func (u *usecase) publishEventChanged(ctx context.Context, eventID int64, action string) {
	err := messagestream.Publish(u.publish, messagestream.TopicEventChanged, request.EventChanged{
		EventID: eventID,
		Action:  action,
	})
	if err != nil {
		// cached listings expire on their own
		u.log.Warn(ctx, "error publish event_changed", err, eventID, action)
	}
}

func (u *usecase) summarize(events []entity.Event, discounts []entity.Discount, now time.Time) []response.EventSummary {
	out := make([]response.EventSummary, 0, len(events))
	for _, e := range events {
		out = append(out, summary(e, pricing.Resolve(e, discounts, now), now))
	}
	return out
}

func summary(e entity.Event, q pricing.Quote, now time.Time) response.EventSummary {
	display := "FREE"
	if !e.IsFree {
		display = q.Price.String()
	}
	return response.EventSummary{
		Event:          e,
		EffectivePrice: q.Price,
		DisplayPrice:   display,
		HasDiscount:    q.HasDiscount,
		IsCompleted:    !e.Date.IsZero() && e.Date.Before(now),
	}
}

func backendEvent(payload *request.UpsertEvent, discountedPrice float64) (*request.BackendEvent, error) {
	if _, err := datetime.Parse(payload.Date); err != nil {
		return nil, errors.Validation("date", "must be a valid date")
	}

	price := payload.Price
	if payload.IsFree {
		price = 0
		discountedPrice = 0
	}

	return &request.BackendEvent{
		EventTitle:      payload.EventTitle,
		Description:     payload.Description,
		Category:        payload.Category,
		Price:           price,
		DiscountedPrice: discountedPrice,
		IsFree:          payload.IsFree,
		Date:            payload.Date,
		Time:            payload.Time,
		Location:        payload.Location,
		SeatQuantity:    payload.SeatQuantity,
		ImageURL:        payload.ImageURL,
	}, nil
}

func averageRating(reviews []entity.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
