package cash

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/coin"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/orm"
)

// Controller is the functionality needed by
// cash.Handler and cash.Decorator. BaseController
// should work plenty fine, but you can add other logic
// if so desired
type Controller interface {
	Balance(weave.ReadOnlyKVStore, weave.Address) (coin.Coins, error)
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
	IssueCoins(weave.KVStore, weave.Address, coin.Coin) error
	Withdraw(weave.KVStore, FeeAsset, weave.Address, coin.Coin) (NegativeImbalance, error)
}

// BaseController is a simple implementation of controller
// wallet must return something that supports AddCoins and Save
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller using the default wallet bucket
func NewController() BaseController {
	return BaseController{bucket: NewWalletBucket()}
}

// Balance returns the coins held by the address
func (c BaseController) Balance(db weave.ReadOnlyKVStore, addr weave.Address) (coin.Coins, error) {
	return loadWallet(db, c.bucket, addr)
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db weave.KVStore, src weave.Address, dest weave.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %s", amount)
	}
	if err := c.subtract(db, src, amount); err != nil {
		return err
	}
	return c.IssueCoins(db, dest, amount)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(db weave.KVStore, dest weave.Address, amount coin.Coin) error {
	coins, err := loadWallet(db, c.bucket, dest)
	if err != nil {
		return err
	}
	if coins, err = coins.Add(amount); err != nil {
		return err
	}
	if !coins.IsNonNegative() {
		return errors.Wrap(errors.ErrInsufficientAmount, "wallet would be negative")
	}
	return saveWallet(db, c.bucket, dest, coins)
}

// Withdraw removes the amount from the wallet and returns it as an
// imbalance that must be resolved by a FeeHandler.
func (c BaseController) Withdraw(db weave.KVStore, asset FeeAsset, src weave.Address, amount coin.Coin) (NegativeImbalance, error) {
	if err := asset.Validate(); err != nil {
		return NegativeImbalance{}, err
	}
	if amount.IsZero() {
		return NegativeImbalance{Asset: asset, From: src, Amount: amount}, nil
	}
	if !amount.IsPositive() {
		return NegativeImbalance{}, errors.Wrapf(errors.ErrAmount, "non-positive amount: %s", amount)
	}
	if err := c.subtract(db, src, amount); err != nil {
		return NegativeImbalance{}, err
	}
	return NegativeImbalance{Asset: asset, From: src, Amount: amount}, nil
}

func (c BaseController) subtract(db weave.KVStore, src weave.Address, amount coin.Coin) error {
	coins, err := loadWallet(db, c.bucket, src)
	if err != nil {
		return err
	}
	if !coins.Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s cannot pay %s", src, amount)
	}
	if coins, err = coins.Subtract(amount); err != nil {
		return err
	}
	return saveWallet(db, c.bucket, src, coins)
}
