package grocery

import (
	"strings"

	"github.com/google/uuid"

	"grogetter/internal/domain"
)

// Categories returns the standard categories followed by the custom ones.
func (s *Service) Categories() []domain.Category {
	return append(domain.StandardCategories(), s.custom.Slice()...)
}

// CustomCategories returns the user-defined categories in creation order.
func (s *Service) CustomCategories() []domain.Category {
	return s.custom.Slice()
}

// CategoriesInUse returns, in Categories order, every category that an item
// of the target list carries plus every custom category.
func (s *Service) CategoriesInUse(listID uuid.UUID) []domain.Category {
	l := s.target(listID)
	var out []domain.Category
	for _, c := range s.Categories() {
		if c.IsCustom() || (l != nil && l.Uses(c)) {
			out = append(out, c)
		}
	}
	return out
}

// AddCategory registers a custom category. If a category with the same name
// (ignoring case) exists, it is returned with false and nothing changes.
// Blank names are ignored.
func (s *Service) AddCategory(name string) (domain.Category, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, false
	}
	c := domain.NewCategory(name)
	if existing, ok := s.lookup(c); ok {
		return existing, false
	}
	s.custom.Add(c)
	s.log.Debug("category added", "category", name)
	s.commit()
	return c, true
}

// lookup finds a known category equal to c.
func (s *Service) lookup(c domain.Category) (domain.Category, bool) {
	for _, std := range domain.StandardCategories() {
		if std.Equal(c) {
			return std, true
		}
	}
	return s.custom.Find(c)
}

// canonical returns the known category equal to c, or c with an ID.
func (s *Service) canonical(c domain.Category) domain.Category {
	if known, ok := s.lookup(c); ok {
		return known
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return c
}

func (s *Service) registerCustom(c domain.Category) {
	if c.IsCustom() && s.custom.Add(c) {
		s.log.Debug("category added", "category", c.Name)
	}
}

// pruneCategories drops each custom category in touched that no item in any
// list uses anymore. Standard categories are never dropped.
func (s *Service) pruneCategories(touched []domain.Category) {
	for _, c := range touched {
		if !c.IsCustom() || s.lists.uses(c) {
			continue
		}
		if s.custom.Remove(c) {
			s.log.Debug("category removed", "category", c.Name)
		}
	}
}
