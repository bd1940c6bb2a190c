package carteira

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a timestamped market price snapshot for a symbol.
type Quote struct {
	Symbol        string
	Price         decimal.Decimal
	ChangePercent Percent
	AsOf          time.Time
}

// QuoteProvider fetches current quotes for a batch of symbols. A provider
// may return fewer quotes than requested (partial success). Throttling is
// reported as *RateLimitError so callers can treat it as recoverable.
type QuoteProvider interface {
	FetchQuotes(ctx context.Context, symbols []string) ([]Quote, error)
}

// KnownAssetSource searches an external catalog of listed assets. It returns
// an empty slice on no match; callers must tolerate failures here, since
// classification always has a heuristic fallback.
type KnownAssetSource interface {
	Search(ctx context.Context, query string, limit int) ([]KnownAsset, error)
}
