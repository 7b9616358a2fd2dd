package cores

import (
	"encoding/binary"

	"github.com/invarch/weave"
)

const (
	conditionExt  = "cores"
	conditionType = "core"
)

// Condition returns the condition of the core with the given id. The
// condition can only be presented by the multisig engine when the
// holders of the core agreed on a call.
//
// This derivation is stable and anyone can compute the address of a core
// from its id alone.
func Condition(id uint64) weave.Condition {
	return weave.NewCondition(conditionExt, conditionType, EncodeID(id))
}

// Account returns the address of the core with the given id.
func Account(id uint64) weave.Address {
	return Condition(id).Address()
}

// DecodeID reads a core id from its 8 bytes big endian form.
func DecodeID(raw []byte) (uint64, bool) {
	if len(raw) != 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(raw), true
}

// EncodeID returns the 8 bytes big endian form of a core id, as used in
// store keys and transaction results.
func EncodeID(id uint64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, id)
	return raw
}
