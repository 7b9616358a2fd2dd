package sigs

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/crypto"
	"github.com/invarch/weave/errors"
)

// GenesisUser registers a public key at genesis.
type GenesisUser struct {
	Pubkey   *crypto.PublicKey `json:"pubkey"`
	Sequence int64             `json:"sequence"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis stores all users listed under the "sigs" key.
func (Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	var users []GenesisUser
	if err := opts.ReadOptions("sigs", &users); err != nil {
		return err
	}
	bucket := NewUserBucket()
	for i, u := range users {
		if u.Pubkey == nil {
			return errors.Wrapf(errors.ErrEmpty, "user %d: pubkey", i)
		}
		user := &UserData{Pubkey: u.Pubkey, Sequence: u.Sequence}
		if err := bucket.Put(kv, u.Pubkey.Address(), user); err != nil {
			return errors.Wrapf(err, "user %d", i)
		}
	}
	return nil
}
