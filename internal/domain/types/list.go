package types

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultListName names the list created on first run and by migration.
const DefaultListName = "My Grocery List"

// List is a named, ordered collection of items.
type List struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
	IsDefault bool      `json:"isDefault"`
}

// NewList returns an empty list created at now.
func NewList(name string, now time.Time) List {
	return List{
		ID:        uuid.New(),
		Name:      name,
		Items:     []Item{},
		CreatedAt: now.UTC(),
	}
}

// IndexOf returns the position of the item with id, or -1.
func (l *List) IndexOf(id uuid.UUID) int {
	for i := range l.Items {
		if l.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Item returns the item with id.
func (l *List) Item(id uuid.UUID) (Item, bool) {
	if i := l.IndexOf(id); i >= 0 {
		return l.Items[i], true
	}
	return Item{}, false
}

// AddItem appends item.
func (l *List) AddItem(item Item) {
	l.Items = append(l.Items, item)
}

// DeleteItems removes the items at indices and returns the distinct
// categories they carried. Out-of-range and repeated indices are ignored.
func (l *List) DeleteItems(indices []int) []Category {
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(l.Items) {
			drop[i] = true
		}
	}
	if len(drop) == 0 {
		return nil
	}
	removed := &CategorySet{}
	kept := l.Items[:0]
	for i, it := range l.Items {
		if drop[i] {
			removed.Add(it.Category)
			continue
		}
		kept = append(kept, it)
	}
	l.Items = kept
	return removed.Slice()
}

// UpdateItem replaces the item with the same ID. It reports whether one was found.
func (l *List) UpdateItem(item Item) bool {
	i := l.IndexOf(item.ID)
	if i < 0 {
		return false
	}
	l.Items[i] = item
	return true
}

// ToggleItem flips the completion flag of the item with id.
func (l *List) ToggleItem(id uuid.UUID) bool {
	i := l.IndexOf(id)
	if i < 0 {
		return false
	}
	l.Items[i].Completed = !l.Items[i].Completed
	return true
}

// MoveItems moves the items at from so that they sit, in their original
// relative order, before the item that was at index to. A to equal to
// len(Items) moves them to the end.
func (l *List) MoveItems(from []int, to int) {
	n := len(l.Items)
	if to < 0 {
		to = 0
	}
	if to > n {
		to = n
	}
	moving := make(map[int]bool, len(from))
	for _, i := range from {
		if i >= 0 && i < n {
			moving[i] = true
		}
	}
	if len(moving) == 0 {
		return
	}

	var moved, rest []Item
	before := 0
	for i, it := range l.Items {
		if moving[i] {
			moved = append(moved, it)
			if i < to {
				before++
			}
			continue
		}
		rest = append(rest, it)
	}
	at := to - before

	out := make([]Item, 0, n)
	out = append(out, rest[:at]...)
	out = append(out, moved...)
	out = append(out, rest[at:]...)
	l.Items = out
}

// ClearCompleted removes completed items and returns their distinct categories.
func (l *List) ClearCompleted() []Category {
	var idx []int
	for i, it := range l.Items {
		if it.Completed {
			idx = append(idx, i)
		}
	}
	return l.DeleteItems(idx)
}

// Uses reports whether any item carries a category equal to c.
func (l *List) Uses(c Category) bool {
	for _, it := range l.Items {
		if it.Category.Equal(c) {
			return true
		}
	}
	return false
}

// Sorted returns a copy of the items with incomplete items first, each
// group ordered by name.
func (l *List) Sorted() []Item {
	out := make([]Item, len(l.Items))
	copy(out, l.Items)
	SortItems(out)
	return out
}

// SortItems orders items incomplete-first, then by name.
func SortItems(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Completed != items[j].Completed {
			return !items[i].Completed
		}
		return items[i].Name < items[j].Name
	})
}

// Filter returns the items in category c, in list order.
func (l *List) Filter(c Category) []Item {
	var out []Item
	for _, it := range l.Items {
		if it.Category.Equal(c) {
			out = append(out, it)
		}
	}
	return out
}

// CategoryGroup is a category with the items that carry it.
type CategoryGroup struct {
	Category Category
	Items    []Item
}

// GroupByCategory buckets the items by category. Groups follow order; any
// category missing from order is appended by case-insensitive name. Items
// within a group are sorted with SortItems. Empty groups are omitted.
func (l *List) GroupByCategory(order []Category) []CategoryGroup {
	buckets := make(map[string][]Item)
	seen := NewCategorySet()
	for _, it := range l.Items {
		buckets[it.Category.Key()] = append(buckets[it.Category.Key()], it)
		seen.Add(it.Category)
	}

	var groups []CategoryGroup
	emit := func(c Category) {
		items, ok := buckets[c.Key()]
		if !ok {
			return
		}
		SortItems(items)
		groups = append(groups, CategoryGroup{Category: c, Items: items})
		delete(buckets, c.Key())
	}
	for _, c := range order {
		emit(c)
	}
	extra := seen.Slice()
	sort.SliceStable(extra, func(i, j int) bool {
		return strings.ToLower(extra[i].Name) < strings.ToLower(extra[j].Name)
	})
	for _, c := range extra {
		emit(c)
	}
	return groups
}

// Clone returns a copy of l that shares no item storage with it.
func (l *List) Clone() List {
	out := *l
	out.Items = make([]Item, len(l.Items))
	copy(out.Items, l.Items)
	return out
}
