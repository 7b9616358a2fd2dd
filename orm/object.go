package orm

import (
	"reflect"

	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/x"
)

// Model is a validated entity that can be stored in a ModelBucket.
type Model interface {
	x.Validater
	weave.Persistent
	Copy() Model
}

// Object is a stored entity together with its primary key. Bucket reads
// and writes objects; the key is prefixed with the bucket name.
type Object interface {
	Keyed
	Cloneable
	x.Validater
	Value() weave.Persistent
}

// Keyed is implemented by anything identified by a primary key.
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable returns an empty object of its own type, ready to be loaded.
type Cloneable interface {
	Clone() Object
}

var _ Object = (*SimpleObj)(nil)

// SimpleObj pairs a primary key with a model.
type SimpleObj struct {
	key   []byte
	value Model
}

// NewSimpleObj returns an object storing value under key.
func NewSimpleObj(key []byte, value Model) *SimpleObj {
	return &SimpleObj{key: key, value: value}
}

func (o SimpleObj) Value() weave.Persistent {
	return o.value
}

func (o SimpleObj) Key() []byte {
	return o.key
}

func (o *SimpleObj) SetKey(key []byte) {
	o.key = key
}

// Validate requires both the key and the value and validates the value.
func (o SimpleObj) Validate() error {
	switch {
	case len(o.key) == 0:
		return errors.Field("Key", errors.ErrEmpty, "missing key")
	case o.value == nil:
		return errors.Field("Value", errors.ErrEmpty, "missing value")
	}
	return errors.Field("Value", o.value.Validate(), "invalid value")
}

// Clone returns an object holding a zero model of the same type and a copy
// of the key.
func (o *SimpleObj) Clone() Object {
	zero := reflect.New(reflect.TypeOf(o.value).Elem()).Interface().(Model)
	var key []byte
	if len(o.key) > 0 {
		key = append(key, o.key...)
	}
	return NewSimpleObj(key, zero)
}
