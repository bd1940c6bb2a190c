package brapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rmonteiro/carteira"
)

// listResponse matches the /api/quote/list payload.
type listResponse struct {
	Stocks []struct {
		Stock  string `json:"stock"`
		Name   string `json:"name"`
		Sector string `json:"sector"`
		Type   string `json:"type"`
	} `json:"stocks"`
}

// Search looks up listed assets matching the query. It implements
// carteira.KnownAssetSource; callers treat an error like an empty result
// since classification never depends on the catalog.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]carteira.KnownAsset, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	v := url.Values{}
	v.Set("search", query)
	v.Set("limit", fmt.Sprint(limit))
	if c.token != "" {
		v.Set("token", c.token)
	}
	addr := fmt.Sprintf("%s/api/quote/list?%s", c.baseURL, v.Encode())

	var payload listResponse
	if err := c.jwget(ctx, addr, &payload); err != nil {
		return nil, err
	}

	assets := make([]carteira.KnownAsset, 0, len(payload.Stocks))
	for _, s := range payload.Stocks {
		assets = append(assets, carteira.KnownAsset{
			Symbol:      strings.ToUpper(s.Stock),
			DisplayName: s.Name,
			Category:    categoryOf(s.Type),
			Sector:      s.Sector,
		})
	}
	return assets, nil
}

// categoryOf maps brapi's asset type strings onto the engine's categories.
func categoryOf(apiType string) carteira.Category {
	switch strings.ToLower(apiType) {
	case "stock", "bdr":
		return carteira.Equity
	case "fund", "fii":
		return carteira.REIT
	default:
		return carteira.Other
	}
}

func decodeJSON(resp *http.Response, data any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}
