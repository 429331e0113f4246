package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"time"

	"storefront-service/internal/module/auth/models/entity"
	"storefront-service/internal/module/auth/models/request"
	"storefront-service/internal/module/auth/models/response"
	"storefront-service/internal/pkg/backend"
	"storefront-service/internal/pkg/errors"
	"storefront-service/internal/pkg/log"

	"github.com/redis/go-redis/v9"
)

const denylistPrefix = "session:denylist:"

type repositories struct {
	backend     *backend.Client
	log         log.Logger
	redisClient *redis.Client
}

type Repositories interface {
	// http
	Register(ctx context.Context, payload *request.Register) (entity.User, error)
	Login(ctx context.Context, payload *request.Login) (response.BackendLogin, error)
	FindUserByID(ctx context.Context, token string, userID int64) (entity.User, error)
	// redis
	RevokeToken(ctx context.Context, token string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, token string) (bool, error)
}

func New(backend *backend.Client, log log.Logger, redisClient *redis.Client) Repositories {
	return &repositories{
		backend:     backend,
		log:         log,
		redisClient: redisClient,
	}
}

// Register implements Repositories.
func (r *repositories) Register(ctx context.Context, payload *request.Register) (entity.User, error) {
	var user entity.User
	if err := r.backend.Post(ctx, "/api/auth/register", "", payload, &user); err != nil {
		return entity.User{}, err
	}
	return user, nil
}

// Login implements Repositories.
func (r *repositories) Login(ctx context.Context, payload *request.Login) (response.BackendLogin, error) {
	var resp response.BackendLogin
	if err := r.backend.Post(ctx, "/api/auth/login", "", payload, &resp); err != nil {
		return response.BackendLogin{}, err
	}
	return resp, nil
}

// FindUserByID implements Repositories.
func (r *repositories) FindUserByID(ctx context.Context, token string, userID int64) (entity.User, error) {
	var user entity.User
	if err := r.backend.Get(ctx, fmt.Sprintf("/api/user/users/%d", userID), token, nil, &user); err != nil {
		return entity.User{}, err
	}
	return user, nil
}

// RevokeToken implements Repositories.
func (r *repositories) RevokeToken(ctx context.Context, token string, ttl time.Duration) error {
	if err := r.redisClient.Set(ctx, denylistKey(token), 1, ttl).Err(); err != nil {
		r.log.Error(ctx, "error revoke token", err)
		return errors.InternalServerError("error revoke token")
	}
	return nil
}

// IsTokenRevoked implements Repositories.
func (r *repositories) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	err := r.redisClient.Get(ctx, denylistKey(token)).Err()
	if stderrors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		r.log.Error(ctx, "error check token denylist", err)
		return false, errors.InternalServerError("error check token")
	}
	return true, nil
}

func denylistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return denylistPrefix + hex.EncodeToString(sum[:])
}
