package usecases_test

import (
	"context"
	"testing"
	"time"

	"storefront-service/internal/module/auth/mocks"
	"storefront-service/internal/module/auth/models/entity"
	"storefront-service/internal/module/auth/models/request"
	"storefront-service/internal/module/auth/models/response"
	"storefront-service/internal/module/auth/usecases"
	"storefront-service/internal/pkg/clock"
	"storefront-service/internal/pkg/errors"
	"storefront-service/internal/pkg/log"
	log_internal "storefront-service/internal/pkg/log"
	"storefront-service/internal/pkg/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	uc        usecases.Usecase
	repoMock  *mocks.Repositories
	logMock   log.Logger
	fakeClock *clock.FakeClock
	now       = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
)

func setup() {
	repoMock = new(mocks.Repositories)
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	fakeClock = clock.Fake(now)
	uc = usecases.New(repoMock, logMock, fakeClock)
}

func teardown() {
	repoMock = nil
	uc = nil
	fakeClock = nil
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return tok
}

func TestRegister(t *testing.T) {
	setup()
	defer teardown()

	t.Run("forces USER role", func(t *testing.T) {
		ctx := context.Background()
		payload := &request.Register{Username: "budi", Password: "secret1", Email: "budi@mail.com", Fullname: "Budi", Role: "ADMIN"}
		repoMock.On("Register", ctx, mock.MatchedBy(func(p *request.Register) bool {
			return p.Role == session.RoleUser
		})).Return(entity.User{UserID: 1, Username: "budi", Role: session.RoleUser}, nil).Once()

		user, err := uc.Register(ctx, payload)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.UserID)
		repoMock.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("admin is routed to the console", func(t *testing.T) {
		payload := &request.Login{Email: "admin@mail.com", Password: "secret"}
		token := signToken(t, jwt.MapClaims{"id": 2, "role": "ADMIN"})
		repoMock.On("Login", ctx, payload).Return(response.BackendLogin{AccessToken: token, User: entity.User{UserID: 2}}, nil).Once()

		resp, err := uc.Login(ctx, payload)

		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.Session.UserID)
		assert.Equal(t, usecases.RedirectAdmin, resp.Redirect)
	})

	t.Run("user is routed to the storefront", func(t *testing.T) {
		payload := &request.Login{Email: "budi@mail.com", Password: "secret"}
		token := signToken(t, jwt.MapClaims{"id": 5, "role": "USER"})
		repoMock.On("Login", ctx, payload).Return(response.BackendLogin{AccessToken: token}, nil).Once()

		resp, err := uc.Login(ctx, payload)

		require.NoError(t, err)
		assert.Equal(t, usecases.RedirectStorefront, resp.Redirect)
	})

	t.Run("backend rejection is passed through", func(t *testing.T) {
		payload := &request.Login{Email: "x@mail.com", Password: "bad"}
		repoMock.On("Login", ctx, payload).Return(response.BackendLogin{}, errors.UnauthorizedError("invalid credentials")).Once()

		_, err := uc.Login(ctx, payload)

		assert.True(t, errors.IsKind(err, errors.KindUnauthorized))
	})

	t.Run("unreadable token", func(t *testing.T) {
		payload := &request.Login{Email: "y@mail.com", Password: "secret"}
		repoMock.On("Login", ctx, payload).Return(response.BackendLogin{AccessToken: "garbage"}, nil).Once()

		_, err := uc.Login(ctx, payload)

		assert.True(t, errors.IsKind(err, errors.KindInternal))
	})
}

func TestLogout(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("revokes until exp", func(t *testing.T) {
		sess := session.Session{UserID: 1, Token: "tok-1", ExpiresAt: now.Add(40 * time.Minute)}
		repoMock.On("RevokeToken", ctx, "tok-1", 40*time.Minute).Return(nil).Once()

		assert.NoError(t, uc.Logout(ctx, sess))
	})

	t.Run("token without exp gets the default ttl", func(t *testing.T) {
		sess := session.Session{UserID: 1, Token: "tok-2"}
		repoMock.On("RevokeToken", ctx, "tok-2", usecases.DefaultSessionTTL).Return(nil).Once()

		assert.NoError(t, uc.Logout(ctx, sess))
	})

	t.Run("expired token needs no entry", func(t *testing.T) {
		sess := session.Session{UserID: 1, Token: "tok-3", ExpiresAt: now.Add(-time.Minute)}

		assert.NoError(t, uc.Logout(ctx, sess))
		repoMock.AssertNotCalled(t, "RevokeToken", ctx, "tok-3", mock.Anything)
	})
}

func TestMe(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	sess := session.Session{UserID: 9, Token: "tok"}
	repoMock.On("FindUserByID", ctx, "tok", int64(9)).Return(entity.User{UserID: 9, Username: "sari"}, nil)

	user, err := uc.Me(ctx, sess)

	assert.NoError(t, err)
	assert.Equal(t, "sari", user.Username)
}
