package grocery

import (
	"strings"

	"github.com/google/uuid"

	"grogetter/internal/domain"
)

// AddItem appends item to the target list. A zero listID targets the
// selected list. Missing IDs and defaults are filled in; an item that still
// fails validation is dropped. It reports whether the item was added.
func (s *Service) AddItem(item domain.Item, listID uuid.UUID) bool {
	l := s.target(listID)
	if l == nil {
		return false
	}
	item = s.normalize(item)
	if err := item.Validate(); err != nil {
		s.log.Debug("item rejected", "error", err)
		return false
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	s.registerCustom(item.Category)
	l.AddItem(item)
	s.commit()
	return true
}

// UpdateItem replaces the item with item.ID in the target list. If its
// category changed, the old category is pruned when no longer used.
func (s *Service) UpdateItem(item domain.Item, listID uuid.UUID) bool {
	l := s.target(listID)
	if l == nil {
		return false
	}
	prev, ok := l.Item(item.ID)
	if !ok {
		return false
	}
	item = s.normalize(item)
	if err := item.Validate(); err != nil {
		s.log.Debug("item rejected", "error", err)
		return false
	}
	s.registerCustom(item.Category)
	l.UpdateItem(item)
	if !prev.Category.Equal(item.Category) {
		s.pruneCategories([]domain.Category{prev.Category})
	}
	s.commit()
	return true
}

// DeleteItems removes the items at indices from the target list, then drops
// every custom category that no item in any list still uses.
func (s *Service) DeleteItems(indices []int, listID uuid.UUID) bool {
	l := s.target(listID)
	if l == nil {
		return false
	}
	removed := l.DeleteItems(indices)
	if removed == nil {
		return false
	}
	s.pruneCategories(removed)
	s.commit()
	return true
}

// ToggleCompletion flips the completion flag of the item with itemID.
func (s *Service) ToggleCompletion(itemID uuid.UUID, listID uuid.UUID) bool {
	l := s.target(listID)
	if l == nil || !l.ToggleItem(itemID) {
		return false
	}
	s.commit()
	return true
}

// MoveItems reorders the target list; see domain.List.MoveItems.
func (s *Service) MoveItems(from []int, to int, listID uuid.UUID) bool {
	l := s.target(listID)
	if l == nil {
		return false
	}
	l.MoveItems(from, to)
	s.commit()
	return true
}

// normalize fills zero-valued fields with defaults and maps the category to
// the known one with the same name.
func (s *Service) normalize(item domain.Item) domain.Item {
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if item.Unit == "" {
		item.Unit = domain.UnitPiece
	}
	if strings.TrimSpace(item.Category.Name) == "" {
		item.Category = domain.DefaultCategory()
	}
	item.Category = s.canonical(item.Category)
	return item
}
