package grocery

import (
	"github.com/google/uuid"

	"grogetter/internal/domain"
)

// repository keeps lists in order with an id index for lookups.
type repository struct {
	lists []domain.List
	index map[uuid.UUID]int
}

// newRepository indexes lists, dropping any whose ID was already seen.
func newRepository(lists []domain.List) *repository {
	r := &repository{index: make(map[uuid.UUID]int, len(lists))}
	for _, l := range lists {
		r.append(l)
	}
	return r
}

func (r *repository) reindex() {
	r.index = make(map[uuid.UUID]int, len(r.lists))
	for i, l := range r.lists {
		r.index[l.ID] = i
	}
}

func (r *repository) len() int { return len(r.lists) }

// get returns a pointer into the repository; it is invalidated by append and remove.
func (r *repository) get(id uuid.UUID) *domain.List {
	i, ok := r.index[id]
	if !ok {
		return nil
	}
	return &r.lists[i]
}

func (r *repository) has(id uuid.UUID) bool {
	_, ok := r.index[id]
	return ok
}

func (r *repository) first() *domain.List {
	if len(r.lists) == 0 {
		return nil
	}
	return &r.lists[0]
}

func (r *repository) append(l domain.List) bool {
	if _, dup := r.index[l.ID]; dup {
		return false
	}
	if l.Items == nil {
		l.Items = []domain.Item{}
	}
	r.index[l.ID] = len(r.lists)
	r.lists = append(r.lists, l)
	return true
}

func (r *repository) remove(id uuid.UUID) (domain.List, bool) {
	i, ok := r.index[id]
	if !ok {
		return domain.List{}, false
	}
	removed := r.lists[i]
	r.lists = append(r.lists[:i], r.lists[i+1:]...)
	r.reindex()
	return removed, true
}

func (r *repository) replace(l domain.List) bool {
	i, ok := r.index[l.ID]
	if !ok {
		return false
	}
	if l.Items == nil {
		l.Items = []domain.Item{}
	}
	r.lists[i] = l
	return true
}

// uses reports whether any item in any list carries category c.
func (r *repository) uses(c domain.Category) bool {
	for i := range r.lists {
		if r.lists[i].Uses(c) {
			return true
		}
	}
	return false
}

// snapshot returns deep copies of every list.
func (r *repository) snapshot() []domain.List {
	out := make([]domain.List, len(r.lists))
	for i := range r.lists {
		out[i] = r.lists[i].Clone()
	}
	return out
}
