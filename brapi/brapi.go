// Package brapi is a thin client for the brapi.dev API, the de-facto public
// quote source for B3 tickers. It implements carteira.QuoteProvider and
// carteira.KnownAssetSource.
package brapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rmonteiro/carteira"
	"github.com/shopspring/decimal"
)

const tokenEnv = "BRAPI_TOKEN"

// DefaultBaseURL is the public brapi.dev endpoint.
const DefaultBaseURL = "https://brapi.dev"

// Token returns the API token from the environment. brapi works without one
// at a lower rate limit, so an empty token is usable.
func Token() string { return os.Getenv(tokenEnv) }

// Client talks to one brapi-compatible endpoint.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates a client for the public endpoint. Pass an empty token to
// use the anonymous tier.
func NewClient(token string) *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientAt creates a client against a specific base URL, used in tests.
func NewClientAt(baseURL, token string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, token: token, client: client}
}

// quoteResponse matches the /api/quote payload.
type quoteResponse struct {
	Results []struct {
		Symbol                     string  `json:"symbol"`
		LongName                   string  `json:"longName"`
		RegularMarketPrice         float64 `json:"regularMarketPrice"`
		RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
	} `json:"results"`
}

// FetchQuotes fetches current quotes for the given symbols in one batched
// request. brapi may answer with fewer results than requested; missing
// symbols are simply absent from the returned slice. HTTP 429 comes back as
// *carteira.RateLimitError so the quote cache degrades instead of failing.
func (c *Client) FetchQuotes(ctx context.Context, symbols []string) ([]carteira.Quote, error) {
	if len(symbols) == 0 {
		return nil, nil
	}
	addr := fmt.Sprintf("%s/api/quote/%s", c.baseURL, url.PathEscape(strings.Join(symbols, ",")))
	if c.token != "" {
		addr += "?token=" + url.QueryEscape(c.token)
	}

	var payload quoteResponse
	if err := c.jwget(ctx, addr, &payload); err != nil {
		return nil, err
	}

	now := time.Now()
	quotes := make([]carteira.Quote, 0, len(payload.Results))
	for _, r := range payload.Results {
		if r.RegularMarketPrice <= 0 {
			continue
		}
		quotes = append(quotes, carteira.Quote{
			Symbol:        strings.ToUpper(r.Symbol),
			Price:         decimal.NewFromFloat(r.RegularMarketPrice),
			ChangePercent: carteira.Percent(r.RegularMarketChangePercent),
			AsOf:          now,
		})
	}
	return quotes, nil
}

// jwget performs a GET and decodes the JSON body, translating throttling
// into the typed error the engine understands.
func (c *Client) jwget(ctx context.Context, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &carteira.RateLimitError{Provider: "brapi"}
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	return decodeJSON(resp, data)
}
