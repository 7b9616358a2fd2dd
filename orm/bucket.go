/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* Objects are addressed by their primary key, which may be composite.
* Easy queries for one and iteration over a key prefix.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString
)

// Bucket is a prefixed subspace of the DB.
// proto defines the default Model, all elements of this type
//
// This is a generic building block that should generally
// be embedded in a type-safe wrapper to ensure all data
// is the same type.
type Bucket struct {
	name   string
	prefix []byte
	proto  Cloneable
}

var _ weave.QueryHandler = Bucket{}

// NewBucket creates a bucket to store data
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}

	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of the bucket, which is also the key prefix
func (b Bucket) Name() string {
	return b.name
}

// Register registers this Bucket for queries.
// You can define a name here for queries, which is
// different than the bucket name used to prefix the data
func (b Bucket) Register(name string, r weave.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query handles queries from the QueryRouter
func (b Bucket) Query(db weave.ReadOnlyKVStore, mod string, data []byte) ([]weave.Model, error) {
	switch mod {
	case weave.KeyQueryMod:
		key := b.DBKey(data)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		// return nothing on miss
		if value == nil {
			return nil, nil
		}
		return []weave.Model{{Key: key, Value: value}}, nil
	case weave.PrefixQueryMod:
		return queryPrefix(db, b.DBKey(data))
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}

// DBKey is the full key we store in the db, including prefix.
// A new slice is allocated so that the prefix is never shared
// between calls.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// Get one element. Returns nil object if missing.
func (b Bucket) Get(db weave.ReadOnlyKVStore, key []byte) (Object, error) {
	bz, err := db.Get(b.DBKey(key))
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, nil
	}
	return b.Parse(key, bz)
}

// Has returns true if an element is stored under the key
func (b Bucket) Has(db weave.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}

// Parse takes a key and value data (weave.Model) and
// reconstructs the data this Bucket would return.
func (b Bucket) Parse(key, value []byte) (Object, error) {
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(value); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot unmarshal %T: %s", obj.Value(), err)
	}
	obj.SetKey(key)
	return obj, nil
}

// Save will write a model, it must be of the same type as proto
func (b Bucket) Save(db weave.KVStore, model Object) error {
	if err := model.Validate(); err != nil {
		return err
	}
	bz, err := model.Value().Marshal()
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot marshal %T: %s", model.Value(), err)
	}
	return db.Set(b.DBKey(model.Key()), bz)
}

// Delete will remove the value at a key
func (b Bucket) Delete(db weave.KVStore, key []byte) error {
	return db.Delete(b.DBKey(key))
}

// Sequence returns a Sequence by name
func (b Bucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}

// Iterate calls fn for every object stored under the given key prefix,
// in ascending key order. Keys passed to fn are stripped of the bucket
// prefix. Returning an error from fn stops the iteration.
func (b Bucket) Iterate(db weave.ReadOnlyKVStore, prefix []byte, fn func(Object) error) error {
	models, err := queryPrefix(db, b.DBKey(prefix))
	if err != nil {
		return err
	}
	for _, m := range models {
		obj, err := b.Parse(m.Key[len(b.prefix):], m.Value)
		if err != nil {
			return err
		}
		if err := fn(obj); err != nil {
			return err
		}
	}
	return nil
}
