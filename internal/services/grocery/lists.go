package grocery

import (
	"github.com/google/uuid"

	"grogetter/internal/domain"
)

// CreateList appends an empty list and selects it if nothing was selected.
func (s *Service) CreateList(name string) domain.List {
	l := domain.NewList(name, s.now())
	s.lists.append(l)
	if !s.lists.has(s.selected) {
		s.selected = l.ID
	}
	s.log.Debug("list created", "list_id", l.ID, "name", name)
	s.commit()
	return l.Clone()
}

// DeleteList removes the list with id. If it was selected, the first
// remaining list (or none) becomes selected.
func (s *Service) DeleteList(id uuid.UUID) bool {
	removed, ok := s.lists.remove(id)
	if !ok {
		return false
	}
	if s.selected == id {
		s.selected = uuid.Nil
		if first := s.lists.first(); first != nil {
			s.selected = first.ID
		}
	}
	s.pruneCategories(categoriesOf(removed.Items))
	s.commit()
	return true
}

// RenameList sets the name of the list with id.
func (s *Service) RenameList(id uuid.UUID, name string) bool {
	l := s.lists.get(id)
	if l == nil {
		return false
	}
	l.Name = name
	s.commit()
	return true
}

// UpdateList replaces the stored list that has list.ID.
func (s *Service) UpdateList(list domain.List) bool {
	prev := s.lists.get(list.ID)
	if prev == nil {
		return false
	}
	old := categoriesOf(prev.Items)
	list = list.Clone()
	for i := range list.Items {
		list.Items[i] = s.normalize(list.Items[i])
		s.registerCustom(list.Items[i].Category)
	}
	s.lists.replace(list)
	s.pruneCategories(old)
	s.commit()
	return true
}

// SelectList selects the list with id. An unknown id clears the selection.
func (s *Service) SelectList(id uuid.UUID) bool {
	ok := s.lists.has(id)
	if ok {
		s.selected = id
	} else {
		s.selected = uuid.Nil
	}
	s.commit()
	return ok
}

// ClearCompleted removes completed items from the target list.
func (s *Service) ClearCompleted(listID uuid.UUID) bool {
	l := s.target(listID)
	if l == nil {
		return false
	}
	s.pruneCategories(l.ClearCompleted())
	s.commit()
	return true
}

func categoriesOf(items []domain.Item) []domain.Category {
	set := domain.NewCategorySet()
	for _, it := range items {
		set.Add(it.Category)
	}
	return set.Slice()
}
