package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Item is a single grocery entry. Items only exist inside a List.
type Item struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	Quantity  float64   `json:"quantity"`
	Unit      Unit      `json:"unit"`
	Completed bool      `json:"isCompleted"`
	Notes     string    `json:"notes"`
}

// NewItem returns an item with a fresh ID, one piece, in the default category.
func NewItem(name string) Item {
	return Item{
		ID:       uuid.New(),
		Name:     name,
		Category: DefaultCategory(),
		Quantity: 1,
		Unit:     UnitPiece,
	}
}

// Validate checks the fields a caller can get wrong.
func (it Item) Validate() error {
	if strings.TrimSpace(it.Name) == "" {
		return ErrEmptyName
	}
	if it.Quantity <= 0 || math.IsNaN(it.Quantity) || math.IsInf(it.Quantity, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidQuantity, it.Quantity)
	}
	if !it.Unit.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownUnit, it.Unit)
	}
	return nil
}

// DisplayQuantity renders quantity and unit for list rows. A single piece
// renders as the empty string; other piece counts omit the unit.
func (it Item) DisplayQuantity() string {
	if it.Unit == UnitPiece {
		if it.Quantity == 1 {
			return ""
		}
		return FormatQuantity(it.Quantity)
	}
	return FormatQuantity(it.Quantity) + " " + it.Unit.Label()
}

// FormatQuantity prints integral values without a fraction and everything
// else in the shortest exact decimal form.
func FormatQuantity(q float64) string {
	if q == math.Trunc(q) && !math.IsInf(q, 0) {
		return strconv.FormatFloat(q, 'f', 0, 64)
	}
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// UnmarshalJSON fills defaults for fields missing from older payloads.
func (it *Item) UnmarshalJSON(data []byte) error {
	type alias Item
	aux := alias{
		Category: DefaultCategory(),
		Quantity: 1,
		Unit:     UnitPiece,
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*it = Item(aux)
	return nil
}
