package types

import (
	"strings"

	"github.com/google/uuid"
)

// Category is a named tag on an item. Identity is the lower-cased name, so
// "Dairy" and "dairy" are the same category regardless of ID.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NewCategory returns a category with a fresh ID.
func NewCategory(name string) Category {
	return Category{ID: uuid.New(), Name: name}
}

// Key returns the case-folded name used for equality and map lookups.
func (c Category) Key() string { return strings.ToLower(c.Name) }

// Equal reports whether c and other name the same category.
func (c Category) Equal(other Category) bool { return c.Key() == other.Key() }

// String returns the display name.
func (c Category) String() string { return c.Name }

// IsCustom reports whether c is outside the standard set.
func (c Category) IsCustom() bool { return !IsStandard(c) }

// Standard category IDs are fixed so that the defaults written to disk are
// stable across runs.
var standardCategories = []Category{
	{ID: uuid.MustParse("6a1c9a3e-0b0e-4f59-9b38-0d3f5e3c0001"), Name: "Produce"},
	{ID: uuid.MustParse("6a1c9a3e-0b0e-4f59-9b38-0d3f5e3c0002"), Name: "Bakery"},
	{ID: uuid.MustParse("6a1c9a3e-0b0e-4f59-9b38-0d3f5e3c0003"), Name: "Deli"},
	{ID: uuid.MustParse("6a1c9a3e-0b0e-4f59-9b38-0d3f5e3c0004"), Name: "Butcher"},
	{ID: uuid.MustParse("6a1c9a3e-0b0e-4f59-9b38-0d3f5e3c0005"), Name: "Dairy"},
	{ID: uuid.MustParse("6a1c9a3e-0b0e-4f59-9b38-0d3f5e3c0006"), Name: "Aisles"},
	{ID: uuid.MustParse("6a1c9a3e-0b0e-4f59-9b38-0d3f5e3c0007"), Name: "Frozen"},
}

// StandardCategories returns a copy of the built-in categories in display order.
func StandardCategories() []Category {
	out := make([]Category, len(standardCategories))
	copy(out, standardCategories)
	return out
}

// DefaultCategory is assigned to items created without one.
func DefaultCategory() Category { return standardCategories[0] }

// IsStandard reports whether c matches a built-in category.
func IsStandard(c Category) bool {
	for _, s := range standardCategories {
		if s.Equal(c) {
			return true
		}
	}
	return false
}

// CategorySet is an insertion-ordered set of categories keyed case-insensitively.
// The zero value is ready to use.
type CategorySet struct {
	order []Category
	index map[string]int
}

// NewCategorySet builds a set from cats, keeping the first of any duplicates.
func NewCategorySet(cats ...Category) *CategorySet {
	s := &CategorySet{}
	for _, c := range cats {
		s.Add(c)
	}
	return s
}

// Add inserts c unless an equal category is present. It reports whether c was added.
func (s *CategorySet) Add(c Category) bool {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[c.Key()]; ok {
		return false
	}
	s.index[c.Key()] = len(s.order)
	s.order = append(s.order, c)
	return true
}

// Remove deletes the category equal to c. It reports whether one was removed.
func (s *CategorySet) Remove(c Category) bool {
	i, ok := s.index[c.Key()]
	if !ok {
		return false
	}
	s.order = append(s.order[:i], s.order[i+1:]...)
	delete(s.index, c.Key())
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j].Key()] = j
	}
	return true
}

// Contains reports whether a category equal to c is in the set.
func (s *CategorySet) Contains(c Category) bool {
	_, ok := s.index[c.Key()]
	return ok
}

// Find returns the stored category equal to c.
func (s *CategorySet) Find(c Category) (Category, bool) {
	i, ok := s.index[c.Key()]
	if !ok {
		return Category{}, false
	}
	return s.order[i], true
}

// Len returns the number of categories.
func (s *CategorySet) Len() int { return len(s.order) }

// Slice returns the categories in insertion order.
func (s *CategorySet) Slice() []Category {
	out := make([]Category, len(s.order))
	copy(out, s.order)
	return out
}
