package orm

import (
	"encoding/binary"
	"math"

	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
)

// Sequence maintains a counter, and generates a
// series of ids. Each id is greater than the last.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequence is using following pattern
// to construct a key:
//
//	_s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextID returns the current counter value and advances the counter by one.
// The first value handed out is zero. Once the counter reaches the maximum
// uint64 value, no more ids can be allocated and ErrOverflow is returned.
func (s Sequence) NextID(db weave.KVStore) (uint64, error) {
	val, err := s.Peek(db)
	if err != nil {
		return 0, err
	}
	if val == math.MaxUint64 {
		return 0, errors.Wrapf(errors.ErrOverflow, "sequence %s exhausted", s.id)
	}
	if err := db.Set(s.id, EncodeSequence(val+1)); err != nil {
		return 0, err
	}
	return val, nil
}

// NextVal is NextID returning the value as 8 big endian bytes.
func (s Sequence) NextVal(db weave.KVStore) ([]byte, error) {
	val, err := s.NextID(db)
	if err != nil {
		return nil, err
	}
	return EncodeSequence(val), nil
}

// Peek returns the value the next NextID call would return, without
// modifying the sequence state.
func (s Sequence) Peek(db weave.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, err
	}
	return DecodeSequence(raw)
}

// Set moves the counter so that the next NextID call returns val.
func (s Sequence) Set(db weave.KVStore, val uint64) error {
	return db.Set(s.id, EncodeSequence(val))
}

// DecodeSequence reads an 8 byte big endian value. Missing value is zero.
func DecodeSequence(bz []byte) (uint64, error) {
	if bz == nil {
		return 0, nil
	}
	if len(bz) != 8 {
		return 0, errors.Wrapf(errors.ErrInput, "sequence must be 8 bytes, got %d", len(bz))
	}
	return binary.BigEndian.Uint64(bz), nil
}

// EncodeSequence writes val as 8 bytes big endian.
func EncodeSequence(val uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, val)
	return bz
}
