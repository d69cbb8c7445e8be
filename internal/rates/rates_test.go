package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tukarid/tukarbot/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, fallback bool) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(&config.Config{
		OracleURL:      srv.URL,
		OracleTimeout:  time.Second,
		OracleFallback: fallback,
	})
}

func TestRate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "tether", r.URL.Query().Get("ids"))
		assert.Equal(t, "idr", r.URL.Query().Get("vs_currencies"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tether":{"idr":16250.5}}`))
	}, false)

	rate, err := c.Rate(context.Background(), "USDT")
	assert.NoError(t, err)
	assert.Equal(t, 16250.5, rate)
}

func TestRatesMultipleTokens(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tether":{"idr":16000},"ethereum":{"idr":52000000}}`))
	}, false)

	out, err := c.Rates(context.Background(), []string{"USDT", "ETH"})
	assert.NoError(t, err)
	assert.Equal(t, map[string]float64{"USDT": 16000, "ETH": 52000000}, out)
}

func TestRateErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "Oracle rejects request",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "Zero price",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"tether":{"idr":0}}`))
			},
		},
		{
			name: "Token missing from response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler, false)

			_, err := c.Rate(context.Background(), "USDT")
			assert.ErrorIs(t, err, ErrRateUnavailable)
		})
	}
}

func TestFallbackRates(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	t.Run("Disabled fallback fails hard", func(t *testing.T) {
		c := newTestClient(t, handler, false)
		_, err := c.Rate(context.Background(), "USDT")
		assert.ErrorIs(t, err, ErrRateUnavailable)
	})

	t.Run("Enabled fallback serves configured tokens only", func(t *testing.T) {
		c := newTestClient(t, handler, true)

		rate, err := c.Rate(context.Background(), "USDT")
		assert.NoError(t, err)
		assert.Equal(t, config.FallbackRatesRp["USDT"], rate)

		_, err = c.Rate(context.Background(), "ETH")
		assert.ErrorIs(t, err, ErrRateUnavailable)
	})
}
