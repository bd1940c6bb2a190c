package carteira

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Ledger holds the positions a user owns, in insertion order. It is the sole
// owner of its positions: List and every mutating operation exchange copies,
// never references into the ledger's backing slice.
//
// A ledger may be bound to a Store. Mutations then follow a prepare/persist/
// commit sequence: the new state is staged locally, offered to the store, and
// applied in memory only when the store accepted it, so memory and durable
// state never silently diverge. The ledger itself is single-owner and not
// safe for concurrent use; a server exposing one must serialize mutations
// per account.
type Ledger struct {
	store     Store // nil for a purely in-memory ledger
	positions []Position
	index     map[string]int // id -> offset in positions
}

// NewLedger creates an empty in-memory ledger. A nil store is valid and
// skips persistence entirely.
func NewLedger(store Store) *Ledger {
	return &Ledger{
		store: store,
		index: make(map[string]int),
	}
}

// LoadLedger builds a ledger from the positions currently in the store.
func LoadLedger(ctx context.Context, store Store) (*Ledger, error) {
	positions, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	l := NewLedger(store)
	for _, p := range positions {
		l.index[p.ID] = len(l.positions)
		l.positions = append(l.positions, p)
	}
	return l, nil
}

// Add validates the draft, classifies the asset and appends the resulting
// position. The new position starts at its cost basis: currentValue equals
// amountInvested and performance is zero until a quote refresh. It returns a
// *ValidationError on bad input, with the ledger unchanged.
func (l *Ledger) Add(ctx context.Context, d Draft, known []KnownAsset) (Position, error) {
	p, err := newPosition(d, known)
	if err != nil {
		return Position{}, err
	}
	p.ID = uuid.NewString()

	if l.store != nil {
		if err := l.store.Save(ctx, p); err != nil {
			return Position{}, err
		}
	}
	l.index[p.ID] = len(l.positions)
	l.positions = append(l.positions, p)
	return p, nil
}

// Edit replaces the quantity and invested amount of an existing position and
// treats the edit as a fresh cost-basis checkpoint: currentValue resets to
// the new amountInvested and performance to zero, discarding the previous
// valuation. A quote refresh right after restores market valuation for
// quoted categories. Returns *NotFoundError for an unknown id and
// *ValidationError on bad input; either way the ledger is unchanged.
func (l *Ledger) Edit(ctx context.Context, id string, d Draft) (Position, error) {
	i, ok := l.index[id]
	if !ok {
		return Position{}, &NotFoundError{ID: id}
	}
	current := l.positions[i]

	if strings.TrimSpace(d.AssetName) == "" {
		d.AssetName = current.AssetName
	}
	staged, err := newPosition(d, nil)
	if err != nil {
		return Position{}, err
	}
	// The edit form cannot change identity or reclassify.
	staged.ID = current.ID
	staged.AssetName = current.AssetName
	staged.Category = current.Category

	if l.store != nil {
		if err := l.store.Update(ctx, staged); err != nil {
			return Position{}, err
		}
	}
	l.positions[i] = staged
	return staged, nil
}

// Remove deletes a position. Removing an id that is already gone is a no-op:
// the UI confirms before calling, so a double delete is tolerated silently.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	i, ok := l.index[id]
	if !ok {
		return nil
	}
	if l.store != nil {
		if err := l.store.Delete(ctx, id); err != nil {
			return err
		}
	}
	l.positions = append(l.positions[:i], l.positions[i+1:]...)
	delete(l.index, id)
	for j := i; j < len(l.positions); j++ {
		l.index[l.positions[j].ID] = j
	}
	return nil
}

// Get returns a copy of the position with the given id.
func (l *Ledger) Get(id string) (Position, bool) {
	i, ok := l.index[id]
	if !ok {
		return Position{}, false
	}
	return l.positions[i], true
}

// List returns copies of all positions in insertion order.
func (l *Ledger) List() []Position {
	out := make([]Position, len(l.positions))
	copy(out, l.positions)
	return out
}

// Len returns the number of positions held.
func (l *Ledger) Len() int { return len(l.positions) }

// QuotedSymbols returns the asset names of positions eligible for
// quote-driven revaluation, deduplicated, in ledger order.
func (l *Ledger) QuotedSymbols() []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, p := range l.positions {
		if p.Category.Quoted() && !seen[p.AssetName] {
			seen[p.AssetName] = true
			symbols = append(symbols, p.AssetName)
		}
	}
	return symbols
}

// ApplyQuotes revalues the ledger with fresh quotes and persists every
// touched position. A position is committed in memory only if its update
// persisted; failures are joined and returned, but never block the other
// positions (no partial-failure semantics beyond per-position atomicity).
// It returns the ids that were revalued and committed.
func (l *Ledger) ApplyQuotes(ctx context.Context, quotes map[string]Quote) ([]string, error) {
	rv := Revalue(l.List(), quotes)

	var errs error
	committed := make([]string, 0, len(rv.Touched))
	for _, id := range rv.Touched {
		i := l.index[id]
		updated := rv.Positions[i]
		if l.store != nil {
			if err := l.store.Update(ctx, updated); err != nil {
				errs = errors.Join(errs, err)
				continue
			}
		}
		l.positions[i] = updated
		committed = append(committed, id)
	}
	return committed, errs
}
