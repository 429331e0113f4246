package usecases

import (
	"context"
	"fmt"

	"storefront-service/internal/module/registration/gate"
	"storefront-service/internal/module/registration/models/entity"
	"storefront-service/internal/module/registration/models/request"
	"storefront-service/internal/module/registration/models/response"
	"storefront-service/internal/module/registration/repositories"
	"storefront-service/internal/pkg/clock"
	"storefront-service/internal/pkg/errors"
	"storefront-service/internal/pkg/log"
	"storefront-service/internal/pkg/messagestream"
	"storefront-service/internal/pkg/session"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	NotificationRegistered = "registration.created"
	NotificationPaid       = "registration.paid"
	NotificationAttended   = "registration.attended"
	NotificationReviewed   = "registration.reviewed"
)

type usecase struct {
	repo       repositories.Repositories
	log        log.Logger
	publish    message.Publisher
	clock      clock.Clock
	maxTickets int
}

type Usecase interface {
	ListRegistrations(ctx context.Context, sess session.Session) (response.RegistrationList, error)
	Register(ctx context.Context, sess session.Session, payload *request.CreateRegistration) (entity.Registration, error)
	Pay(ctx context.Context, sess session.Session, registrationID int64, payload *request.Pay) (response.RegistrationList, error)
	Attend(ctx context.Context, sess session.Session, registrationID int64) (response.RegistrationList, error)
	Review(ctx context.Context, sess session.Session, registrationID int64, payload *request.Review) (response.RegistrationList, error)
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher, clock clock.Clock, maxTickets int) Usecase {
	return &usecase{
		repo:       repo,
		log:        log,
		publish:    publish,
		clock:      clock,
		maxTickets: maxTickets,
	}
}

func (u *usecase) ListRegistrations(ctx context.Context, sess session.Session) (response.RegistrationList, error) {
	var (
		registrations []entity.Registration
		reviews       []entity.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		registrations, err = u.repo.FindRegistrationsByUserID(gctx, sess.Token, sess.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = u.repo.FindReviewsByUserID(gctx, sess.Token, sess.UserID)
		if err != nil {
			u.log.Warn(ctx, "error find reviews, treating as empty", err)
			reviews = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		u.log.Error(ctx, "error find registrations", err)
		return response.RegistrationList{}, err
	}

	resp := response.RegistrationList{Registrations: make([]response.Registration, 0, len(registrations))}
	for _, reg := range registrations {
		actions := gate.Evaluate(reg, reviews)
		if actions.HasFlag(gate.FlagReviewWithoutCompletedPayment) {
			u.log.Warn(ctx, "review offered without a completed payment",
				zap.Int64("registration_id", reg.RegistrationID), zap.String("payment_status", actions.PaymentStatus))
		}
		resp.Registrations = append(resp.Registrations, response.Registration{Registration: reg, Actions: actions})
	}
	return resp, nil
}

func (u *usecase) Register(ctx context.Context, sess session.Session, payload *request.CreateRegistration) (entity.Registration, error) {
	if u.maxTickets > 0 && payload.Quantity > u.maxTickets {
		return entity.Registration{}, errors.Validation("quantity", fmt.Sprintf("must be at most %d", u.maxTickets))
	}

	event, err := u.repo.FindEventByID(ctx, payload.EventID)
	if err != nil {
		return entity.Registration{}, err
	}
	if payload.Quantity > event.SeatQuantity {
		return entity.Registration{}, errors.Validation("quantity", fmt.Sprintf("only %d seats available", event.SeatQuantity))
	}
	if !event.Date.IsZero() && event.Date.Before(u.clock.Now()) {
		return entity.Registration{}, errors.BadRequest("event already completed")
	}

	registration, err := u.repo.CreateRegistration(ctx, sess.Token, &request.BackendRegistration{
		EventID:  payload.EventID,
		UserID:   sess.UserID,
		Quantity: payload.Quantity,
	})
	if err != nil {
		u.log.Error(ctx, "error create registration", err)
		return entity.Registration{}, err
	}

	u.notify(ctx, NotificationRegistered, sess.UserID, registration.RegistrationID, payload.EventID)
	return registration, nil
}

func (u *usecase) Pay(ctx context.Context, sess session.Session, registrationID int64, payload *request.Pay) (response.RegistrationList, error) {
	reg, actions, err := u.findRegistration(ctx, sess, registrationID)
	if err != nil {
		return response.RegistrationList{}, err
	}
	if !actions.CanPay {
		return response.RegistrationList{}, errors.BadRequest("registration has no pending payment")
	}

	if _, err := u.repo.CreatePayment(ctx, sess.Token, &request.BackendPayment{
		RegistrationID: registrationID,
		PaymentMethod:  payload.PaymentMethod,
	}); err != nil {
		u.log.Error(ctx, "error create payment", err)
		return response.RegistrationList{}, err
	}

	u.notify(ctx, NotificationPaid, sess.UserID, registrationID, reg.EventID)
	return u.ListRegistrations(ctx, sess)
}

func (u *usecase) Attend(ctx context.Context, sess session.Session, registrationID int64) (response.RegistrationList, error) {
	reg, actions, err := u.findRegistration(ctx, sess, registrationID)
	if err != nil {
		return response.RegistrationList{}, err
	}
	if !actions.CanAttend {
		return response.RegistrationList{}, errors.BadRequest("registration cannot be marked as attended")
	}

	if err := u.repo.MarkAttended(ctx, sess.Token, registrationID); err != nil {
		u.log.Error(ctx, "error mark attended", err)
		return response.RegistrationList{}, err
	}

	u.notify(ctx, NotificationAttended, sess.UserID, registrationID, reg.EventID)
	return u.ListRegistrations(ctx, sess)
}

func (u *usecase) Review(ctx context.Context, sess session.Session, registrationID int64, payload *request.Review) (response.RegistrationList, error) {
	reg, actions, err := u.findRegistration(ctx, sess, registrationID)
	if err != nil {
		return response.RegistrationList{}, err
	}
	if !actions.CanReview {
		return response.RegistrationList{}, errors.BadRequest("registration cannot be reviewed yet")
	}
	if actions.HasFlag(gate.FlagReviewWithoutCompletedPayment) {
		u.log.Warn(ctx, "accepting review without a completed payment",
			zap.Int64("registration_id", registrationID), zap.String("payment_status", actions.PaymentStatus))
	}

	unlock, err := u.repo.LockRegistration(ctx, registrationID)
	if err != nil {
		return response.RegistrationList{}, err
	}
	defer unlock()

	reviews, err := u.repo.FindReviewsByUserID(ctx, sess.Token, sess.UserID)
	if err != nil {
		u.log.Error(ctx, "error find reviews", err)
		return response.RegistrationList{}, err
	}
	if gate.Reviewed(reg, reviews) {
		return response.RegistrationList{}, errors.Conflict("already reviewed")
	}

	if _, err := u.repo.CreateReview(ctx, sess.Token, &request.BackendReview{
		RegistrationID: registrationID,
		UserID:         sess.UserID,
		Rating:         *payload.Rating,
		Comment:        payload.Comment,
	}); err != nil {
		u.log.Error(ctx, "error create review", err)
		return response.RegistrationList{}, err
	}

	u.notify(ctx, NotificationReviewed, sess.UserID, registrationID, reg.EventID)
	return u.ListRegistrations(ctx, sess)
}

// findRegistration loads the caller's own registration; other users'
// registrations are reported as not found.
func (u *usecase) findRegistration(ctx context.Context, sess session.Session, registrationID int64) (entity.Registration, gate.Actions, error) {
	registrations, err := u.repo.FindRegistrationsByUserID(ctx, sess.Token, sess.UserID)
	if err != nil {
		u.log.Error(ctx, "error find registrations", err)
		return entity.Registration{}, gate.Actions{}, err
	}
	for _, reg := range registrations {
		if reg.RegistrationID == registrationID {
			return reg, gate.Compute(reg), nil
		}
	}
	return entity.Registration{}, gate.Actions{}, errors.NotFound("registration not found")
}

// notify is best effort; the backend write already succeeded.
func (u *usecase) notify(ctx context.Context, kind string, userID, registrationID, eventID int64) {
	err := messagestream.Publish(u.publish, messagestream.TopicNotification, request.Notification{
		Type:           kind,
		UserID:         userID,
		RegistrationID: registrationID,
		EventID:        eventID,
	})
	if err != nil {
		u.log.Warn(ctx, "error publish notification", err, zap.String("type", kind))
	}
}
