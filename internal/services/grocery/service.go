package grocery

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"grogetter/internal/domain"
	"grogetter/internal/platform/logger"
)

// SaveStatus describes the most recent persistence attempt.
type SaveStatus struct {
	// Err is nil when every record was written.
	Err error

	// At is when the attempt finished. Zero if nothing has been saved yet.
	At time.Time

	// Saves counts attempts since the Service was created.
	Saves int
}

// OK reports whether the last attempt succeeded (or none was made).
func (st SaveStatus) OK() bool { return st.Err == nil }

// Service is the grocery aggregate. Construct it with New.
type Service struct {
	kv   domain.KVStore
	log  *logger.Logger
	now  func() time.Time
	seed bool

	lists    *repository
	selected uuid.UUID
	custom   *domain.CategorySet
	status   SaveStatus
	loadErr  error
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides the clock used for list creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSeedDefaultList controls whether an empty store gets a default list on
// load. Enabled by default.
func WithSeedDefaultList(seed bool) Option {
	return func(s *Service) { s.seed = seed }
}

// New returns a Service loaded from kv.
func New(kv domain.KVStore, opts ...Option) *Service {
	s := &Service{
		kv:     kv,
		log:    logger.Nop(),
		now:    time.Now,
		seed:   true,
		lists:  newRepository(nil),
		custom: domain.NewCategorySet(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "grocery")
	s.load()
	return s
}

// Lists returns copies of every list in order.
func (s *Service) Lists() []domain.List {
	return s.lists.snapshot()
}

// List returns a copy of the list with id.
func (s *Service) List(id uuid.UUID) (domain.List, bool) {
	l := s.lists.get(id)
	if l == nil {
		return domain.List{}, false
	}
	return l.Clone(), true
}

// FindList resolves ref as a list ID, or failing that as a case-insensitive
// list name. The first list with a matching name wins.
func (s *Service) FindList(ref string) (domain.List, bool) {
	ref = strings.TrimSpace(ref)
	if id, err := uuid.Parse(ref); err == nil {
		if l, ok := s.List(id); ok {
			return l, true
		}
	}
	for i := range s.lists.lists {
		if strings.EqualFold(s.lists.lists[i].Name, ref) {
			return s.lists.lists[i].Clone(), true
		}
	}
	return domain.List{}, false
}

// SelectedListID returns the selected list ID, or uuid.Nil when none is selected.
func (s *Service) SelectedListID() uuid.UUID {
	if !s.lists.has(s.selected) {
		return uuid.Nil
	}
	return s.selected
}

// SelectedList returns a copy of the selected list.
func (s *Service) SelectedList() (domain.List, bool) {
	return s.List(s.SelectedListID())
}

// Status returns the outcome of the most recent save.
func (s *Service) Status() SaveStatus { return s.status }

// LoadErr returns the read error that disabled saving, if any.
func (s *Service) LoadErr() error { return s.loadErr }

// Save writes the whole aggregate and returns any storage error.
func (s *Service) Save() error {
	return s.persist()
}

// target resolves listID, falling back to the selection when it is uuid.Nil.
func (s *Service) target(listID uuid.UUID) *domain.List {
	if listID == uuid.Nil {
		listID = s.selected
	}
	return s.lists.get(listID)
}

// commit persists after a mutation. Failures are recorded, never returned.
func (s *Service) commit() {
	if err := s.persist(); err != nil {
		s.log.Debug("save failed", "error", err)
	}
}
