package orm

import (
	"reflect"

	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
)

// ModelBucket is implemented by buckets that operates on Models rather than
// Objects.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db weave.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given primary key exists and
	// ErrNotFound otherwise.
	Has(db weave.ReadOnlyKVStore, key []byte) error

	// Put saves given model in the database.
	Put(db weave.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db weave.KVStore, key []byte) error

	// Iterate calls fn for every entity whose key starts with prefix.
	// The key passed to fn is the primary key without the bucket prefix.
	Iterate(db weave.ReadOnlyKVStore, prefix []byte, fn func(key []byte, m Model) error) error

	// Register registers this bucket for queries under given name.
	Register(name string, r weave.QueryRouter)
}

// NewModelBucket returns a ModelBucket instance storing models of the
// same type as the given one under the bucket name.
func NewModelBucket(name string, m Model) ModelBucket {
	return &modelBucket{
		b:     NewBucket(name, NewSimpleObj(nil, m)),
		model: reflect.TypeOf(m),
	}
}

type modelBucket struct {
	b     Bucket
	model reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) One(db weave.ReadOnlyKVStore, key []byte, dest Model) error {
	obj, err := mb.b.Get(db, key)
	if err != nil {
		return err
	}
	if obj == nil || obj.Value() == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	return load(obj.Value(), dest)
}

func (mb *modelBucket) Has(db weave.ReadOnlyKVStore, key []byte) error {
	ok, err := mb.b.Has(db, key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s not in the store", mb.model)
	}
	return nil
}

func (mb *modelBucket) Put(db weave.KVStore, key []byte, m Model) error {
	if t := reflect.TypeOf(m); t != mb.model {
		return errors.Wrapf(errors.ErrType, "cannot store %s in %s bucket", t, mb.model)
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	obj := NewSimpleObj(key, m)
	if err := mb.b.Save(db, obj); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db weave.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return mb.b.Delete(db, key)
}

func (mb *modelBucket) Iterate(db weave.ReadOnlyKVStore, prefix []byte, fn func(key []byte, m Model) error) error {
	return mb.b.Iterate(db, prefix, func(obj Object) error {
		return fn(obj.Key(), obj.Value().(Model))
	})
}

func (mb *modelBucket) Register(name string, r weave.QueryRouter) {
	mb.b.Register(name, r)
}

func load(src weave.Persistent, dest Model) error {
	if !reflect.TypeOf(src).AssignableTo(reflect.TypeOf(dest)) {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %T", src, dest)
	}
	reflect.ValueOf(dest).Elem().Set(reflect.ValueOf(src).Elem())
	return nil
}
