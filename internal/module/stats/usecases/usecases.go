package usecases

import (
	"context"

	"storefront-service/internal/module/stats/models/entity"
	"storefront-service/internal/module/stats/models/request"
	"storefront-service/internal/module/stats/models/response"
	"storefront-service/internal/module/stats/repositories"
	"storefront-service/internal/pkg/clock"
	"storefront-service/internal/pkg/log"
	"storefront-service/internal/pkg/session"

	"golang.org/x/sync/errgroup"
)

type usecase struct {
	repo  repositories.Repositories
	log   log.Logger
	clock clock.Clock
}

type Usecase interface {
	Users(ctx context.Context, sess session.Session) (response.Users, error)
	Registrations(ctx context.Context, sess session.Session) (response.Registrations, error)
	Payments(ctx context.Context, sess session.Session) (response.Payments, error)
	Revenue(ctx context.Context, sess session.Session, query *request.Revenue) (response.Revenue, error)
	Overview(ctx context.Context, sess session.Session) (response.Overview, error)
}

func New(repo repositories.Repositories, log log.Logger, clock clock.Clock) Usecase {
	return &usecase{
		repo:  repo,
		log:   log,
		clock: clock,
	}
}

func (u *usecase) Users(ctx context.Context, sess session.Session) (response.Users, error) {
	users, err := u.repo.FindUsers(ctx, sess.Token)
	if err != nil {
		u.log.Error(ctx, "error find users", err)
		return response.Users{}, err
	}
	if users == nil {
		users = []entity.User{}
	}
	return response.Users{Total: len(users), Users: users}, nil
}

func (u *usecase) Registrations(ctx context.Context, sess session.Session) (response.Registrations, error) {
	registrations, err := u.repo.FindRegistrations(ctx, sess.Token)
	if err != nil {
		u.log.Error(ctx, "error find registrations", err)
		return response.Registrations{}, err
	}
	if registrations == nil {
		registrations = []entity.Registration{}
	}
	return response.Registrations{Total: len(registrations), Registrations: registrations}, nil
}

func (u *usecase) Payments(ctx context.Context, sess session.Session) (response.Payments, error) {
	payments, err := u.repo.FindPayments(ctx, sess.Token)
	if err != nil {
		u.log.Error(ctx, "error find payments", err)
		return response.Payments{}, err
	}
	if payments == nil {
		payments = []entity.Payment{}
	}
	return response.Payments{Total: len(payments), Payments: payments}, nil
}

func (u *usecase) Revenue(ctx context.Context, sess session.Session, query *request.Revenue) (response.Revenue, error) {
	view := query.View
	if view == "" {
		view = request.ViewMonthly
	}
	year := query.Year
	if year == 0 {
		year = u.clock.Now().UTC().Year()
	}

	payments, err := u.repo.FindPayments(ctx, sess.Token)
	if err != nil {
		u.log.Error(ctx, "error find payments", err)
		return response.Revenue{}, err
	}

	resp := AggregateRevenue(payments, view, year)
	if resp.Skipped > 0 {
		u.log.Warn(ctx, "skipped unreadable payments in revenue report", resp.Skipped)
	}
	return resp, nil
}

// Overview backs the admin dashboard cards.
func (u *usecase) Overview(ctx context.Context, sess session.Session) (response.Overview, error) {
	var (
		users         []entity.User
		registrations []entity.Registration
		payments      []entity.Payment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = u.repo.FindUsers(gctx, sess.Token)
		return err
	})
	g.Go(func() error {
		var err error
		registrations, err = u.repo.FindRegistrations(gctx, sess.Token)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = u.repo.FindPayments(gctx, sess.Token)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Error(ctx, "error load overview", err)
		return response.Overview{}, err
	}

	return response.Overview{
		Users:         len(users),
		Registrations: len(registrations),
		Payments:      len(payments),
		Revenue:       AggregateRevenue(payments, request.ViewMonthly, 0).Total,
	}, nil
}
