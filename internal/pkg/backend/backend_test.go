package backend_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"storefront-service/config"
	"storefront-service/internal/pkg/backend"
	"storefront-service/internal/pkg/errors"
	"storefront-service/internal/pkg/httpclient"
	log_internal "storefront-service/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.HttpClientConfig{Timeout: 2 * time.Second, Threshold: 5}
	cb := httpclient.InitCircuitBreaker(cfg, httpclient.BreakerConsecutive)
	return backend.New(srv.URL+"/", httpclient.InitHttpClient(cfg, cb), log_internal.GetLogger())
}

func TestGetDecodesEnvelope(t *testing.T) {
	var gotAuth, gotQuery, gotPath string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, `{"message":"ok","data":[{"id":1},{"id":2}]}`)
	})

	var out []struct {
		ID int `json:"id"`
	}
	err := c.Get(context.Background(), "/api/user/events", "tok", url.Values{"search": {"jazz"}}, &out)

	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "search=jazz", gotQuery)
	assert.Equal(t, "/api/user/events", gotPath)
}

func TestPostSendsBody(t *testing.T) {
	var body string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"data":null}`)
	})

	err := c.Post(context.Background(), "/api/user/payments", "tok", map[string]interface{}{"registration_id": 7}, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"registration_id":7}`, body)
}

func TestErrorStatusMapping(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		body     string
		wantKind errors.Kind
		wantMsg  string
	}{
		{"business rule", http.StatusBadRequest, `{"message":"Not enough seats"}`, errors.KindRejected, "Not enough seats"},
		{"unauthorized", http.StatusUnauthorized, `{"error":"jwt expired"}`, errors.KindUnauthorized, "jwt expired"},
		{"not found without body", http.StatusNotFound, ``, errors.KindNotFound, "Not Found"},
		{"server error", http.StatusInternalServerError, `oops`, errors.KindTransport, "Internal Server Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})

			err := c.Get(context.Background(), "/x", "", nil, nil)
			require.Error(t, err)
			assert.Equal(t, tc.wantKind, errors.KindOf(err))
			assert.Equal(t, tc.wantMsg, errors.Message(err))
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	cfg := &config.HttpClientConfig{Timeout: time.Second, Threshold: 5}
	c := backend.New(srv.URL, httpclient.InitHttpClient(cfg, httpclient.InitCircuitBreaker(cfg, "")), log_internal.GetLogger())

	err := c.Get(context.Background(), "/api/user/events", "", nil, nil)
	assert.True(t, errors.IsKind(err, errors.KindTransport))
}
