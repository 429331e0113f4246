package repositories_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"storefront-service/config"
	"storefront-service/internal/module/event/models/request"
	"storefront-service/internal/module/event/repositories"
	"storefront-service/internal/pkg/backend"
	"storefront-service/internal/pkg/cache"
	"storefront-service/internal/pkg/errors"
	"storefront-service/internal/pkg/httpclient"
	log_internal "storefront-service/internal/pkg/log"
	"storefront-service/internal/pkg/money"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, handler http.HandlerFunc) (repositories.Repositories, *miniredis.Miniredis) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.HttpClientConfig{Timeout: 2 * time.Second, Threshold: 5}
	client := backend.New(srv.URL, httpclient.InitHttpClient(cfg, httpclient.InitCircuitBreaker(cfg, "")), log_internal.GetLogger())
	c := cache.New(rdb, 30*time.Second, log_internal.GetLogger())
	return repositories.New(client, log_internal.GetLogger(), c, nil), mr
}

func TestFindEventsForwardsFiltersAndCaches(t *testing.T) {
	var hits int32
	repo, mr := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "/api/user/events", r.URL.Path)
		assert.Equal(t, "jazz", r.URL.Query().Get("search"))
		assert.Equal(t, "MUSIC", r.URL.Query().Get("category"))
		_, _ = io.WriteString(w, `{"data":[{"event_id":1,"event_title":"Jazz Night","price":"100000.00","discounted_price":"80000.00","date":"2024-07-01T00:00:00.000Z"}]}`)
	})
	ctx := context.Background()
	query := &request.ListEvents{Search: "jazz", Category: "MUSIC"}

	events, err := repo.FindEvents(ctx, query)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, money.Amount(100000), events[0].Price)
	assert.Equal(t, money.Amount(80000), events[0].DiscountedPrice)

	_, err = repo.FindEvents(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	n, err := repo.PurgeEventCache(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, mr.Keys())

	_, err = repo.FindEvents(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestFindEventByIDEmptyIsNotFound(t *testing.T) {
	repo, _ := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/events/42", r.URL.Path)
		_, _ = io.WriteString(w, `{"data":null}`)
	})

	_, err := repo.FindEventByID(context.Background(), 42)

	assert.True(t, errors.IsKind(err, errors.KindNotFound))
}

func TestAdminWritesForwardToken(t *testing.T) {
	repo, _ := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer admin", r.Header.Get("Authorization"))
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/admin/discounts":
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"data":{"discount_id":5,"event_id":1,"discount_percentage":"20.00","start_date":"2024-06-16","end_date":"2024-06-20"}}`)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/admin/events/1":
			_, _ = io.WriteString(w, `{"message":"deleted"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	discount, err := repo.CreateDiscount(ctx, "admin", &request.CreateDiscount{EventID: 1, DiscountPercentage: 20, StartDate: "2024-06-16", EndDate: "2024-06-20"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), discount.DiscountID)
	assert.Equal(t, money.Amount(20), discount.DiscountPercentage)
	assert.Equal(t, 20, discount.EndDate.Day())

	require.NoError(t, repo.DeleteEvent(ctx, "admin", 1))
}
