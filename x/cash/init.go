package cash

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/coin"
	"github.com/invarch/weave/errors"
)

// GenesisAccount is used to parse the json from genesis file
// use weave.Address, so address in hex, not base64
type GenesisAccount struct {
	Address weave.Address `json:"address"`
	Coins   coin.Coins    `json:"coins"`
}

// Initializer fulfils the InitStater interface to load data from
// the genesis file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	var accounts []GenesisAccount
	if err := opts.ReadOptions("cash", &accounts); err != nil {
		return err
	}
	bucket := NewWalletBucket()
	for i, acc := range accounts {
		if err := acc.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		coins, err := coin.CombineCoins(derefCoins(acc.Coins)...)
		if err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if !coins.IsNonNegative() {
			return errors.Wrapf(errors.ErrAmount, "account %d: negative balance", i)
		}
		if err := saveWallet(kv, bucket, acc.Address, coins); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}

func derefCoins(cs coin.Coins) []coin.Coin {
	res := make([]coin.Coin, 0, len(cs))
	for _, c := range cs {
		if c != nil {
			res = append(res, *c)
		}
	}
	return res
}
