package cash

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/coin"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

var _ orm.Model = (*Set)(nil)

// Validate requires that all coins are in alphabetical order and non zero.
func (s *Set) Validate() error {
	return coin.Coins(s.GetCoins()).Validate()
}

// Copy makes a new set with the same coins
func (s *Set) Copy() orm.Model {
	return &Set{
		Coins: coin.Coins(s.GetCoins()).Clone(),
	}
}

// NewWalletBucket returns a bucket storing a Set of coins for each address.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Set{})
}

// loadWallet returns the coins held by the address. A missing wallet is
// an empty set.
func loadWallet(db weave.ReadOnlyKVStore, b orm.ModelBucket, addr weave.Address) (coin.Coins, error) {
	var set Set
	switch err := b.One(db, addr, &set); {
	case err == nil:
		return set.Coins, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// saveWallet stores the coins, removing the wallet if it is empty.
func saveWallet(db weave.KVStore, b orm.ModelBucket, addr weave.Address, coins coin.Coins) error {
	if coins.IsEmpty() {
		if err := b.Delete(db, addr); err != nil && !errors.ErrNotFound.Is(err) {
			return err
		}
		return nil
	}
	return b.Put(db, addr, &Set{Coins: coins})
}
