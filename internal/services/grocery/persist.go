package grocery

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"grogetter/internal/domain"
)

// Storage keys. They match the records written by earlier releases.
const (
	ListsKey            = "savedGroceryLists"
	SelectedListKey     = "selectedListId"
	CustomCategoriesKey = "customCategories"
	LegacyItemsKey      = "savedGroceryItems"
)

// load restores the aggregate. Records that do not decode count as absent.
// A record that cannot be read at all (I/O error, wrong passphrase) leaves
// the store untouched: nothing is seeded, migrated or written, and every
// later save fails with that error.
func (s *Service) load() {
	var lists []domain.List
	ok, listsErr := s.decode(ListsKey, &lists)
	if ok {
		s.lists = newRepository(lists)
	}

	var custom []domain.Category
	ok, customErr := s.decode(CustomCategoriesKey, &custom)
	if ok {
		for _, c := range custom {
			if c.IsCustom() {
				s.custom.Add(c)
			}
		}
	}

	selected, selErr := s.readSelection()
	if err := errors.Join(listsErr, customErr, selErr); err != nil {
		s.loadErr = err
		s.selected = selected
		s.status = SaveStatus{Err: err, At: s.now()}
		s.log.Debug("load failed, saves disabled", "error", err)
		return
	}

	dirty := false
	s.selected = selected
	if !s.lists.has(s.selected) {
		s.selected = uuid.Nil
		if first := s.lists.first(); first != nil {
			s.selected = first.ID
			dirty = true
		}
	}

	if s.lists.len() == 0 && s.seed {
		l := domain.NewList(domain.DefaultListName, s.now())
		l.IsDefault = true
		s.lists.append(l)
		s.selected = l.ID
		dirty = true
		s.log.Debug("seeded default list", "list_id", l.ID)
	}

	if s.migrate() {
		dirty = true
	}
	if dirty {
		s.commit()
	}
	s.log.Debug("loaded", "lists", s.lists.len(), "custom_categories", s.custom.Len())
}

// migrate folds the legacy single-list payload into one default list. It
// only replaces the lists when they are empty or a single empty list. The
// legacy record is removed once it has been read, migrated or not.
func (s *Service) migrate() bool {
	var items []domain.Item
	if ok, err := s.decode(LegacyItemsKey, &items); !ok || err != nil {
		return false
	}

	migrated := false
	first := s.lists.first()
	if s.lists.len() == 0 || (s.lists.len() == 1 && len(first.Items) == 0) {
		l := domain.NewList(domain.DefaultListName, s.now())
		l.IsDefault = true
		for _, it := range items {
			it = s.normalize(it)
			if it.ID == uuid.Nil {
				it.ID = uuid.New()
			}
			s.registerCustom(it.Category)
			l.Items = append(l.Items, it)
		}
		s.lists = newRepository([]domain.List{l})
		s.selected = l.ID
		migrated = true
		s.log.Debug("migrated legacy items", "items", len(items), "list_id", l.ID)
	}

	if err := s.kv.Delete(LegacyItemsKey); err != nil {
		s.log.Debug("remove legacy items failed", "error", err)
	}
	return migrated
}

// decode reads key into v and reports whether it did. A missing key or a
// payload that does not decode is (false, nil); a failed read is returned.
func (s *Service) decode(key string, v any) (bool, error) {
	data, ok, err := s.kv.Get(key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Debug("decode failed", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (s *Service) readSelection() (uuid.UUID, error) {
	data, ok, err := s.kv.Get(SelectedListKey)
	if err != nil {
		return uuid.Nil, fmt.Errorf("read %s: %w", SelectedListKey, err)
	}
	if !ok {
		return uuid.Nil, nil
	}
	id, err := uuid.ParseBytes(data)
	if err != nil {
		return uuid.Nil, nil
	}
	return id, nil
}

// persist encodes and overwrites every record, then records the outcome.
func (s *Service) persist() error {
	if s.loadErr != nil {
		s.status = SaveStatus{Err: s.loadErr, At: s.now(), Saves: s.status.Saves + 1}
		return s.loadErr
	}

	var errs []error

	lists := s.lists.lists
	if lists == nil {
		lists = []domain.List{}
	}
	if data, err := json.Marshal(lists); err != nil {
		errs = append(errs, fmt.Errorf("encode lists: %w", err))
	} else if err := s.kv.Set(ListsKey, data); err != nil {
		errs = append(errs, fmt.Errorf("write lists: %w", err))
	}

	if id := s.SelectedListID(); id != uuid.Nil {
		if err := s.kv.Set(SelectedListKey, []byte(id.String())); err != nil {
			errs = append(errs, fmt.Errorf("write selection: %w", err))
		}
	} else if err := s.kv.Delete(SelectedListKey); err != nil {
		errs = append(errs, fmt.Errorf("clear selection: %w", err))
	}

	custom := s.custom.Slice()
	if data, err := json.Marshal(custom); err != nil {
		errs = append(errs, fmt.Errorf("encode custom categories: %w", err))
	} else if err := s.kv.Set(CustomCategoriesKey, data); err != nil {
		errs = append(errs, fmt.Errorf("write custom categories: %w", err))
	}

	err := errors.Join(errs...)
	s.status = SaveStatus{Err: err, At: s.now(), Saves: s.status.Saves + 1}
	return err
}
