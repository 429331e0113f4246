package usecases

import (
	"context"
	"time"

	"storefront-service/internal/module/auth/models/entity"
	"storefront-service/internal/module/auth/models/request"
	"storefront-service/internal/module/auth/models/response"
	"storefront-service/internal/module/auth/repositories"
	"storefront-service/internal/pkg/clock"
	"storefront-service/internal/pkg/errors"
	"storefront-service/internal/pkg/log"
	"storefront-service/internal/pkg/session"
)

// DefaultSessionTTL bounds the denylist entry of a token without exp,
// matching the one-hour cookie the storefront sets.
const DefaultSessionTTL = time.Hour

const (
	RedirectStorefront = "/"
	RedirectAdmin      = "/admin"
)

type usecase struct {
	repo  repositories.Repositories
	log   log.Logger
	clock clock.Clock
}

type Usecase interface {
	Register(ctx context.Context, payload *request.Register) (entity.User, error)
	Login(ctx context.Context, payload *request.Login) (response.Login, error)
	Logout(ctx context.Context, sess session.Session) error
	Me(ctx context.Context, sess session.Session) (entity.User, error)
}

func New(repo repositories.Repositories, log log.Logger, clock clock.Clock) Usecase {
	return &usecase{
		repo:  repo,
		log:   log,
		clock: clock,
	}
}

func (u *usecase) Register(ctx context.Context, payload *request.Register) (entity.User, error) {
	// self sign-up always creates a storefront user
	payload.Role = session.RoleUser

	user, err := u.repo.Register(ctx, payload)
	if err != nil {
		u.log.Warn(ctx, "error register user", err)
		return entity.User{}, err
	}
	return user, nil
}

func (u *usecase) Login(ctx context.Context, payload *request.Login) (response.Login, error) {
	resp, err := u.repo.Login(ctx, payload)
	if err != nil {
		return response.Login{}, err
	}

	sess, err := session.Decode(resp.AccessToken)
	if err != nil {
		u.log.Error(ctx, "backend issued an unreadable token", err)
		return response.Login{}, errors.InternalServerError("error read access token")
	}

	redirect := RedirectStorefront
	if sess.IsAdmin() {
		redirect = RedirectAdmin
	}

	return response.Login{
		AccessToken: resp.AccessToken,
		User:        resp.User,
		Session:     sess,
		Redirect:    redirect,
	}, nil
}

func (u *usecase) Logout(ctx context.Context, sess session.Session) error {
	ttl := DefaultSessionTTL
	if !sess.ExpiresAt.IsZero() {
		ttl = sess.ExpiresAt.Sub(u.clock.Now())
		if ttl <= 0 {
			return nil
		}
	}

	if err := u.repo.RevokeToken(ctx, sess.Token, ttl); err != nil {
		return err
	}
	u.log.Info(ctx, "session revoked", sess.UserID)
	return nil
}

func (u *usecase) Me(ctx context.Context, sess session.Session) (entity.User, error) {
	return u.repo.FindUserByID(ctx, sess.Token, sess.UserID)
}
