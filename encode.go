package carteira

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// positionRecord is the wire form of a Position in the JSONL ledger file.
// Amounts persist as plain numbers; a zero quantity means "not provided".
type positionRecord struct {
	ID             string   `json:"id"`
	Asset          string   `json:"asset"`
	Category       Category `json:"category"`
	Quantity       Quantity `json:"quantity"`
	UnitCost       Money    `json:"unitCost"`
	AmountInvested Money    `json:"amountInvested"`
	CurrentValue   Money    `json:"currentValue"`
	PerformancePct float64  `json:"performancePct"`
	UpdatedAt      string   `json:"updatedAt,omitempty"`
}

func record(p Position) positionRecord {
	return positionRecord{
		ID:             p.ID,
		Asset:          p.AssetName,
		Category:       p.Category,
		Quantity:       p.Quantity,
		UnitCost:       p.UnitCost,
		AmountInvested: p.AmountInvested,
		CurrentValue:   p.CurrentValue,
		PerformancePct: float64(p.PerformancePct),
		UpdatedAt:      time.Now().UTC().Format(time.RFC3339),
	}
}

func (r positionRecord) position() Position {
	return Position{
		ID:             r.ID,
		AssetName:      r.Asset,
		Category:       r.Category,
		Quantity:       r.Quantity,
		UnitCost:       r.UnitCost,
		AmountInvested: r.AmountInvested,
		CurrentValue:   r.CurrentValue,
		PerformancePct: Percent(r.PerformancePct),
	}
}

// EncodePosition appends a single position to w as one JSON line.
func EncodePosition(w io.Writer, p Position) error {
	line, err := json.Marshal(record(p))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", line)
	return err
}

// EncodePositions writes all positions to w in JSONL form, one per line, in
// the order given.
func EncodePositions(w io.Writer, positions []Position) error {
	for _, p := range positions {
		if err := EncodePosition(w, p); err != nil {
			return err
		}
	}
	return nil
}

// DecodePositions reads a JSONL stream of positions, preserving line order.
// Empty lines are skipped.
func DecodePositions(r io.Reader) ([]Position, error) {
	var positions []Position
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec positionRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("could not decode position line %q: %w", string(line), err)
		}
		positions = append(positions, rec.position())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return positions, nil
}
