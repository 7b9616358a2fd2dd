package weavetest

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/invarch/weave"
)

// RandomAddr returns a new, valid, random address.
func RandomAddr(t testing.TB) weave.Address {
	t.Helper()
	raw := make([]byte, weave.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot read random bytes: %s", err)
	}
	return weave.Address(raw)
}

// SequenceID encodes n the way orm.Sequence encodes generated IDs.
func SequenceID(n uint64) []byte {
	id := make([]byte, 8)
	binary.BigEndian.PutUint64(id, n)
	return id
}
