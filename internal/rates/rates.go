// Package rates fetches spot prices in rupiah from the CoinGecko simple
// price API. A failed or zero quote is an error: settlement engines must
// never proceed on a fabricated rate.
package rates

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tukarid/tukarbot/internal/config"
	"go.uber.org/zap"
)

var ErrRateUnavailable = errors.New("rate unavailable")

type Client struct {
	client   *resty.Client
	baseURL  string
	ids      map[string]string
	fallback map[string]float64
}

func New(cfg *config.Config) *Client {
	c := resty.New().SetTimeout(cfg.OracleTimeout)

	var fallback map[string]float64
	if cfg.OracleFallback {
		fallback = config.FallbackRatesRp
	}

	return &Client{
		client:   c,
		baseURL:  cfg.OracleURL,
		ids:      config.CoingeckoIDs,
		fallback: fallback,
	}
}

// Rate returns the rupiah price of one whole token.
func (c *Client) Rate(ctx context.Context, token string) (float64, error) {
	all, err := c.Rates(ctx, []string{token})
	if err != nil {
		return 0, err
	}
	return all[token], nil
}

// Rates returns rupiah prices for the given tokens. Every requested token
// must resolve to a positive price or the whole lookup fails.
func (c *Client) Rates(ctx context.Context, tokens []string) (map[string]float64, error) {
	ids := make([]string, 0, len(tokens))
	for _, t := range tokens {
		id, ok := c.ids[t]
		if !ok {
			id = strings.ToLower(t)
		}
		ids = append(ids, id)
	}

	var body map[string]map[string]float64
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("ids", strings.Join(ids, ",")).
		SetQueryParam("vs_currencies", "idr").
		SetResult(&body).
		Get(c.baseURL + "/simple/price")
	if err != nil {
		zap.L().Error("price lookup failed", zap.Error(err))
		return c.fallbackRates(tokens, err)
	}
	if resp.StatusCode() != 200 {
		zap.L().Error("price lookup rejected", zap.Int("status", resp.StatusCode()))
		return c.fallbackRates(tokens, fmt.Errorf("oracle status %d", resp.StatusCode()))
	}

	out := make(map[string]float64, len(tokens))
	for i, t := range tokens {
		price := body[ids[i]]["idr"]
		if price <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrRateUnavailable, t)
		}
		out[t] = price
	}
	return out, nil
}

func (c *Client) fallbackRates(tokens []string, cause error) (map[string]float64, error) {
	if c.fallback == nil {
		return nil, fmt.Errorf("%w: %s", ErrRateUnavailable, cause)
	}
	out := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		price, ok := c.fallback[t]
		if !ok || price <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrRateUnavailable, t)
		}
		out[t] = price
	}
	zap.L().Warn("using fallback rates", zap.Strings("tokens", tokens))
	return out, nil
}
