package brapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rmonteiro/carteira"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchQuotes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quote/PETR4,VALE3", r.URL.Path)
		w.Write([]byte(`{"results":[
			{"symbol":"PETR4","longName":"Petrobras PN","regularMarketPrice":38.12,"regularMarketChangePercent":1.4},
			{"symbol":"VALE3","longName":"Vale ON","regularMarketPrice":61.5,"regularMarketChangePercent":-0.8}
		]}`))
	}))
	defer server.Close()

	client := NewClientAt(server.URL, "", nil)
	quotes, err := client.FetchQuotes(context.Background(), []string{"PETR4", "VALE3"})
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	assert.Equal(t, "PETR4", quotes[0].Symbol)
	assert.True(t, quotes[0].Price.Equal(decimal.NewFromFloat(38.12)), "price = %v", quotes[0].Price)
	assert.InDelta(t, 1.4, float64(quotes[0].ChangePercent), 0.0001)
	assert.False(t, quotes[0].AsOf.IsZero())
}

func TestFetchQuotes_PartialResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// brapi silently drops symbols it does not know.
		w.Write([]byte(`{"results":[{"symbol":"PETR4","regularMarketPrice":38.12}]}`))
	}))
	defer server.Close()

	client := NewClientAt(server.URL, "", nil)
	quotes, err := client.FetchQuotes(context.Background(), []string{"PETR4", "NADA3"})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "PETR4", quotes[0].Symbol)
}

func TestFetchQuotes_SkipsZeroPrices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"symbol":"SUSP3","regularMarketPrice":0}]}`))
	}))
	defer server.Close()

	client := NewClientAt(server.URL, "", nil)
	quotes, err := client.FetchQuotes(context.Background(), []string{"SUSP3"})
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestFetchQuotes_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClientAt(server.URL, "", nil)
	_, err := client.FetchQuotes(context.Background(), []string{"PETR4"})

	var rlerr *carteira.RateLimitError
	require.True(t, errors.As(err, &rlerr), "err = %v, want *RateLimitError", err)
}

func TestFetchQuotes_EmptyInput(t *testing.T) {
	client := NewClientAt("http://unreachable.invalid", "", nil)
	quotes, err := client.FetchQuotes(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quote/list", r.URL.Path)
		assert.Equal(t, "hglg", r.URL.Query().Get("search"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"stocks":[
			{"stock":"HGLG11","name":"CSHG Logística","sector":"Real Estate","type":"fund"},
			{"stock":"PETR4","name":"Petrobras PN","sector":"Energy","type":"stock"},
			{"stock":"AAPL34","name":"Apple BDR","sector":"Technology","type":"bdr"}
		]}`))
	}))
	defer server.Close()

	client := NewClientAt(server.URL, "", nil)
	assets, err := client.Search(context.Background(), "hglg", 5)
	require.NoError(t, err)
	require.Len(t, assets, 3)

	assert.Equal(t, carteira.REIT, assets[0].Category)
	assert.Equal(t, carteira.Equity, assets[1].Category)
	assert.Equal(t, carteira.Equity, assets[2].Category)
	assert.Equal(t, "Real Estate", assets[0].Sector)
}

func TestSearch_EmptyQuery(t *testing.T) {
	client := NewClientAt("http://unreachable.invalid", "", nil)
	assets, err := client.Search(context.Background(), "  ", 5)
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestSearch_SendsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sekret", r.URL.Query().Get("token"))
		w.Write([]byte(`{"stocks":[]}`))
	}))
	defer server.Close()

	client := NewClientAt(server.URL, "sekret", nil)
	_, err := client.Search(context.Background(), "petr", 0)
	require.NoError(t, err)
}
