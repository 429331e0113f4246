package repositories

import (
	"context"

	"storefront-service/internal/module/stats/models/entity"
	"storefront-service/internal/pkg/backend"
	"storefront-service/internal/pkg/log"
)

type repositories struct {
	backend *backend.Client
	log     log.Logger
}

type Repositories interface {
	// http, admin
	FindUsers(ctx context.Context, token string) ([]entity.User, error)
	FindRegistrations(ctx context.Context, token string) ([]entity.Registration, error)
	FindPayments(ctx context.Context, token string) ([]entity.Payment, error)
}

func New(backend *backend.Client, log log.Logger) Repositories {
	return &repositories{
		backend: backend,
		log:     log,
	}
}

// FindUsers implements Repositories.
func (r *repositories) FindUsers(ctx context.Context, token string) ([]entity.User, error) {
	var users []entity.User
	if err := r.backend.Get(ctx, "/api/admin/stats/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindRegistrations implements Repositories.
func (r *repositories) FindRegistrations(ctx context.Context, token string) ([]entity.Registration, error) {
	var registrations []entity.Registration
	if err := r.backend.Get(ctx, "/api/admin/stats/registrations", token, nil, &registrations); err != nil {
		return nil, err
	}
	return registrations, nil
}

// FindPayments implements Repositories.
func (r *repositories) FindPayments(ctx context.Context, token string) ([]entity.Payment, error) {
	var payments []entity.Payment
	if err := r.backend.Get(ctx, "/api/admin/stats/payments", token, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
