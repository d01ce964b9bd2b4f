// Package store holds the in-memory collection of one entity type.
//
// Records handed out by a Store are never mutated in place: replacements and
// mutations swap in a fresh copy, so slices returned by List stay consistent.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
)

// ErrNotFound is returned for update/delete of a missing id under MissingReport.
var ErrNotFound = errors.New("record not found")

// MissingPolicy decides what replace/delete do when the id does not exist.
type MissingPolicy int

const (
	// MissingReport surfaces ErrNotFound to the caller.
	MissingReport MissingPolicy = iota
	// MissingSilent treats a miss as a no-op.
	MissingSilent
)

// ParseMissingPolicy maps the config value to a policy. Empty means report.
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "report":
		return MissingReport, nil
	case "silent":
		return MissingSilent, nil
	}
	return MissingReport, fmt.Errorf("unknown missing policy %q", s)
}

func (p MissingPolicy) String() string {
	if p == MissingSilent {
		return "silent"
	}
	return "report"
}

// Option configures a Store.
type Option func(*config)

type config struct {
	policy MissingPolicy
	clock  func() time.Time
}

// WithPolicy sets the missing-id policy.
func WithPolicy(p MissingPolicy) Option {
	return func(c *config) { c.policy = p }
}

// WithClock overrides time.Now for id dates and created_at stamps.
func WithClock(clock func() time.Time) Option {
	return func(c *config) { c.clock = clock }
}

// Store is the authoritative collection for one entity type.
type Store[T entity.Record] struct {
	mu     sync.RWMutex
	name   string
	format IDFormat
	policy MissingPolicy
	clock  func() time.Time
	items  []T
	seq    int
}

// New creates an empty store. name is used in error messages.
func New[T entity.Record](name string, format IDFormat, opts ...Option) *Store[T] {
	cfg := config{policy: MissingReport, clock: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store[T]{
		name:   name,
		format: format,
		policy: cfg.policy,
		clock:  cfg.clock,
	}
}

func (s *Store[T]) Name() string          { return s.name }
func (s *Store[T]) Policy() MissingPolicy { return s.policy }
func (s *Store[T]) Now() time.Time        { return s.clock() }

// Seed appends records read from a seed source. Records keep their ids; the
// sequence counter continues after the highest seeded sequence.
func (s *Store[T]) Seed(records []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range records {
		if rec.GetID() == "" {
			s.stamp(rec)
		} else {
			if n, ok := s.format.Sequence(rec.GetID()); ok && n > s.seq {
				s.seq = n
			}
			if rec.GetCreatedAt() == "" {
				rec.Stamp(rec.GetID(), s.clock().Format(entity.DateLayout))
			}
		}
		s.items = append(s.items, rec)
	}
}

// List returns the collection in insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get looks a record up by id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.index(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Insert assigns a fresh id and creation date, then appends the record.
func (s *Store[T]) Insert(rec T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(rec)
	s.items = append(s.items, rec)
	return rec
}

// ReplaceByID overlays patch onto the stored record; keys present in patch win.
// id and created_at are never changed.
func (s *Store[T]) ReplaceByID(id string, patch map[string]any) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return s.missing(id)
	}
	old := s.items[i]
	merged, err := ToMap(old)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("encode %s %s: %w", s.name, id, err)
	}
	for k, v := range patch {
		merged[k] = v
	}
	next, err := fromMap[T](old, merged)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("merge %s %s: %w", s.name, id, err)
	}
	next.Stamp(old.GetID(), old.GetCreatedAt())
	s.items[i] = next
	return next, nil
}

// Mutate applies fn to a copy of the record and stores the copy.
func (s *Store[T]) Mutate(id string, fn func(T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return s.missing(id)
	}
	old := s.items[i]
	fields, err := ToMap(old)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("encode %s %s: %w", s.name, id, err)
	}
	next, err := fromMap[T](old, fields)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("copy %s %s: %w", s.name, id, err)
	}
	if err := fn(next); err != nil {
		var zero T
		return zero, err
	}
	next.Stamp(old.GetID(), old.GetCreatedAt())
	s.items[i] = next
	return next, nil
}

// DeleteByID removes the record with id and reports whether one was removed.
func (s *Store[T]) DeleteByID(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		_, err := s.missing(id)
		return false, err
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return true, nil
}

func (s *Store[T]) stamp(rec T) {
	s.seq++
	now := s.clock()
	rec.Stamp(s.format.Format(s.seq, now), now.Format(entity.DateLayout))
}

func (s *Store[T]) index(id string) int {
	for i, rec := range s.items {
		if rec.GetID() == id {
			return i
		}
	}
	return -1
}

func (s *Store[T]) missing(id string) (T, error) {
	var zero T
	if s.policy == MissingSilent {
		return zero, nil
	}
	return zero, fmt.Errorf("%s %s: %w", s.name, id, ErrNotFound)
}

// ToMap encodes a record to its json field map.
func ToMap(rec any) (map[string]any, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	return DecodeMap(raw)
}

// fromMap decodes fields into a new value of the record type of like.
func fromMap[T entity.Record](like T, fields map[string]any) (T, error) {
	var zero T
	rt := reflect.TypeOf(like)
	if rt == nil || rt.Kind() != reflect.Pointer {
		return zero, fmt.Errorf("record type %T is not a pointer", like)
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return zero, err
	}
	next := reflect.New(rt.Elem()).Interface().(T)
	if err := json.Unmarshal(raw, next); err != nil {
		return zero, err
	}
	return next, nil
}

// DecodeMap decodes a JSON object keeping numbers as json.Number, so decimal
// amounts survive a round trip without float conversion.
func DecodeMap(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}
