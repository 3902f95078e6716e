package app

import (
	"errors"
	"fmt"

	"grogetter/internal/domain"
	"grogetter/internal/services/grocery"
)

var (
	// ErrListNotFound is returned when a list reference matches no id or name.
	ErrListNotFound = errors.New("grogetter: list not found")

	// ErrNoSelection is returned when a command targets the selected list and none is selected.
	ErrNoSelection = errors.New("grogetter: no list selected")

	// ErrItemNotFound is returned for an item position outside the list.
	ErrItemNotFound = errors.New("grogetter: item not found")
)

// App is what commands operate on: the grocery service plus lookups by the
// references users type.
type App struct {
	Grocery *grocery.Service
}

// New returns an App over g.
func New(g *grocery.Service) *App {
	return &App{Grocery: g}
}

// ResolveList finds a list by id or case-insensitive name. An empty ref
// resolves to the selected list.
func (a *App) ResolveList(ref string) (domain.List, error) {
	if ref == "" {
		l, ok := a.Grocery.SelectedList()
		if !ok {
			return domain.List{}, ErrNoSelection
		}
		return l, nil
	}
	l, ok := a.Grocery.FindList(ref)
	if !ok {
		return domain.List{}, fmt.Errorf("%w: %q", ErrListNotFound, ref)
	}
	return l, nil
}

// ItemAt returns the item at 1-based position n of l.
func ItemAt(l domain.List, n int) (domain.Item, error) {
	if n < 1 || n > len(l.Items) {
		return domain.Item{}, fmt.Errorf("%w: position %d of %d in %q", ErrItemNotFound, n, len(l.Items), l.Name)
	}
	return l.Items[n-1], nil
}

// Persisted returns the last save error, if any. Mutations do not fail on
// storage errors, so commands check this before reporting success.
func (a *App) Persisted() error {
	if st := a.Grocery.Status(); !st.OK() {
		return fmt.Errorf("changes kept in memory but not saved: %w", st.Err)
	}
	return nil
}
