// Package resolver looks up records of a related entity by foreign key, for
// form option lists and for snapshotting denormalized display fields.
package resolver

import (
	"github.com/bitfantasy/nimo-dms/internal/dms/entity"
	"go.uber.org/zap"
)

// Option is one selectable entry of a foreign-key field.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Source is the read-only view of a store the resolver needs.
type Source[T entity.Record] interface {
	List() []T
	Get(id string) (T, bool)
}

// Relation resolves references to one entity type.
type Relation[T entity.Record] struct {
	name   string
	src    Source[T]
	label  func(T) string
	parent func(T) string
	logger *zap.Logger
}

// New builds a relation. parent may be nil when options cannot be narrowed.
func New[T entity.Record](name string, src Source[T], label, parent func(T) string, logger *zap.Logger) *Relation[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Relation[T]{name: name, src: src, label: label, parent: parent, logger: logger}
}

// Options lists selectable records in store order. A non-empty parentID keeps
// only records whose parent key equals it.
func (r *Relation[T]) Options(parentID string) []Option {
	items := r.src.List()
	out := make([]Option, 0, len(items))
	for _, item := range items {
		if parentID != "" && r.parent != nil && r.parent(item) != parentID {
			continue
		}
		out = append(out, Option{ID: item.GetID(), Label: r.label(item)})
	}
	return out
}

// Lookup returns the referenced record. A miss is not an error; it is logged
// and the caller proceeds with empty snapshot values.
func (r *Relation[T]) Lookup(id string) (T, bool) {
	rec, ok := r.src.Get(id)
	if !ok && id != "" {
		r.logger.Warn("Unresolved reference",
			zap.String("entity", r.name),
			zap.String("id", id),
		)
	}
	return rec, ok
}

// Field snapshots one field of the referenced record, or the zero value when
// the reference does not resolve.
func Field[T entity.Record, V any](r *Relation[T], id string, get func(T) V) V {
	var zero V
	if id == "" {
		return zero
	}
	rec, ok := r.Lookup(id)
	if !ok {
		return zero
	}
	return get(rec)
}
