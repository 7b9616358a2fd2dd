package weavetest

import (
	"crypto/rand"

	"github.com/invarch/weave"
	"github.com/invarch/weave/crypto"
)

// NewKey returns a new random ed25519 private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns a random condition, not backed by any key.
func NewCondition() weave.Condition {
	data := make([]byte, 8)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return weave.NewCondition("weavetest", "rnd", data)
}
