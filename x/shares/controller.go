package shares

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/orm"
)

// Registry gives the share ledger access to the cores owning the assets.
type Registry interface {
	// IsFrozen returns the frozen flag of the core. found is false if
	// the core does not exist.
	IsFrozen(db weave.ReadOnlyKVStore, coreID uint64) (frozen bool, found bool, err error)
	// SetFrozen updates the frozen flag of the core.
	SetFrozen(ctx weave.Context, db weave.KVStore, coreID uint64, frozen bool) error
	// CoreAccount returns the derived account of the core.
	CoreAccount(coreID uint64) weave.Address
	// HasAsset returns nil if the asset was registered. The main share
	// exists as long as its core does.
	HasAsset(db weave.ReadOnlyKVStore, asset Asset) error
}

// Controller is the share ledger. All balance math is checked and every
// mutation keeps the total issuance equal to the sum of all balances.
type Controller struct {
	registry Registry
	balances orm.ModelBucket
	issuance orm.ModelBucket
}

// NewController returns a ledger using the default buckets.
func NewController(r Registry) Controller {
	return Controller{
		registry: r,
		balances: NewBalanceBucket(),
		issuance: NewIssuanceBucket(),
	}
}

// RegisterQuery exposes balances as "/shares/balances" and issuances as
// "/shares/issuance". Both are keyed by core id and sub asset id so a
// prefix query returns all balances of an asset.
func RegisterQuery(qr weave.QueryRouter) {
	NewBalanceBucket().Register("shares/balances", qr)
	NewIssuanceBucket().Register("shares/issuance", qr)
}

// Balance returns the shares of the asset held by who.
func (c Controller) Balance(db weave.ReadOnlyKVStore, asset Asset, who weave.Address) (uint64, error) {
	var b Balance
	switch err := c.balances.One(db, balanceKey(asset, who), &b); {
	case err == nil:
		return b.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, err
	}
}

// TotalIssuance returns the total amount of shares of the asset.
func (c Controller) TotalIssuance(db weave.ReadOnlyKVStore, asset Asset) (uint64, error) {
	var i Issuance
	switch err := c.issuance.One(db, asset.Key(), &i); {
	case err == nil:
		return i.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, err
	}
}

// Mint creates amount new shares for who. A zero amount is a no-op.
// Only registered assets can be minted.
func (c Controller) Mint(ctx weave.Context, db weave.KVStore, asset Asset, who weave.Address, amount uint64) error {
	if err := c.registry.HasAsset(db, asset); err != nil {
		return errors.Wrapf(err, "mint %s", asset)
	}
	if amount == 0 {
		return nil
	}
	if err := who.Validate(); err != nil {
		return errors.Wrap(err, "mint destination")
	}
	issuance, err := c.TotalIssuance(db, asset)
	if err != nil {
		return err
	}
	balance, err := c.Balance(db, asset, who)
	if err != nil {
		return err
	}
	newIssuance, ok := addUint64(issuance, amount)
	if !ok {
		return errors.Wrapf(errors.ErrOverflow, "issuance of %s", asset)
	}
	newBalance, ok := addUint64(balance, amount)
	if !ok {
		return errors.Wrapf(errors.ErrOverflow, "balance of %s", who)
	}

	if err := c.setBalance(db, asset, who, newBalance); err != nil {
		return err
	}
	if err := c.setIssuance(db, asset, newIssuance); err != nil {
		return err
	}
	if balance == 0 {
		weave.EmitEvent(ctx, EndowedEvent{Asset: asset, Who: who, Amount: amount})
	}
	weave.EmitEvent(ctx, DepositedEvent{Asset: asset, Who: who, Amount: amount})
	weave.EmitEvent(ctx, TotalIssuanceSetEvent{Asset: asset, Amount: newIssuance})
	return nil
}

// Burn destroys amount shares held by who. A zero amount is a no-op.
func (c Controller) Burn(ctx weave.Context, db weave.KVStore, asset Asset, who weave.Address, amount uint64) error {
	if err := c.registry.HasAsset(db, asset); err != nil {
		return errors.Wrapf(err, "burn %s", asset)
	}
	if amount == 0 {
		return nil
	}
	balance, err := c.Balance(db, asset, who)
	if err != nil {
		return err
	}
	if balance < amount {
		return errors.Wrapf(ErrBalanceTooLow, "%s holds %d, cannot burn %d", who, balance, amount)
	}
	issuance, err := c.TotalIssuance(db, asset)
	if err != nil {
		return err
	}
	if issuance < amount {
		return errors.Wrapf(ErrUnderflow, "issuance of %s is %d, cannot burn %d", asset, issuance, amount)
	}

	if err := c.setBalance(db, asset, who, balance-amount); err != nil {
		return err
	}
	if err := c.setIssuance(db, asset, issuance-amount); err != nil {
		return err
	}
	weave.EmitEvent(ctx, WithdrawnEvent{Asset: asset, Who: who, Amount: amount})
	weave.EmitEvent(ctx, TotalIssuanceSetEvent{Asset: asset, Amount: issuance - amount})
	return nil
}

// Transfer moves amount shares from one holder to another. It fails
// while the core of the asset is frozen. Transferring zero shares or
// transferring to self is a no-op.
func (c Controller) Transfer(ctx weave.Context, db weave.KVStore, asset Asset, from, to weave.Address, amount uint64) error {
	frozen, found, err := c.registry.IsFrozen(db, asset.CoreID)
	if err != nil {
		return errors.Wrap(err, "frozen flag")
	}
	if !found {
		return errors.Wrapf(errors.ErrNotFound, "core %d", asset.CoreID)
	}
	if frozen {
		return errors.Wrapf(ErrAssetFrozen, "%s", asset)
	}
	if err := c.registry.HasAsset(db, asset); err != nil {
		return errors.Wrapf(err, "transfer %s", asset)
	}
	if amount == 0 || from.Equals(to) {
		return nil
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "transfer destination")
	}

	fromBalance, err := c.Balance(db, asset, from)
	if err != nil {
		return err
	}
	if fromBalance < amount {
		return errors.Wrapf(ErrBalanceTooLow, "%s holds %d, cannot transfer %d", from, fromBalance, amount)
	}
	toBalance, err := c.Balance(db, asset, to)
	if err != nil {
		return err
	}
	// Cannot overflow while the issuance invariant holds.
	newTo, ok := addUint64(toBalance, amount)
	if !ok {
		return errors.Wrapf(errors.ErrOverflow, "balance of %s", to)
	}

	if err := c.setBalance(db, asset, from, fromBalance-amount); err != nil {
		return err
	}
	if err := c.setBalance(db, asset, to, newTo); err != nil {
		return err
	}
	if toBalance == 0 {
		weave.EmitEvent(ctx, EndowedEvent{Asset: asset, Who: to, Amount: amount})
	}
	weave.EmitEvent(ctx, TransferEvent{Asset: asset, From: from, To: to, Amount: amount})
	return nil
}

// SetBalance sets the balance of who and adjusts the total issuance by
// the difference.
func (c Controller) SetBalance(ctx weave.Context, db weave.KVStore, asset Asset, who weave.Address, amount uint64) error {
	if err := c.registry.HasAsset(db, asset); err != nil {
		return errors.Wrapf(err, "set balance of %s", asset)
	}
	if err := who.Validate(); err != nil {
		return errors.Wrap(err, "balance owner")
	}
	balance, err := c.Balance(db, asset, who)
	if err != nil {
		return err
	}
	issuance, err := c.TotalIssuance(db, asset)
	if err != nil {
		return err
	}

	newIssuance := issuance
	if amount >= balance {
		var ok bool
		newIssuance, ok = addUint64(issuance, amount-balance)
		if !ok {
			return errors.Wrapf(errors.ErrOverflow, "issuance of %s", asset)
		}
	} else {
		diff := balance - amount
		if issuance < diff {
			return errors.Wrapf(ErrUnderflow, "issuance of %s", asset)
		}
		newIssuance = issuance - diff
	}

	if err := c.setBalance(db, asset, who, amount); err != nil {
		return err
	}
	if err := c.setIssuance(db, asset, newIssuance); err != nil {
		return err
	}
	weave.EmitEvent(ctx, BalanceSetEvent{Asset: asset, Who: who, Amount: amount})
	if newIssuance != issuance {
		weave.EmitEvent(ctx, TotalIssuanceSetEvent{Asset: asset, Amount: newIssuance})
	}
	return nil
}

// Freeze blocks transfers of all assets of the core. Minting and burning
// are still possible.
func (c Controller) Freeze(ctx weave.Context, db weave.KVStore, asset Asset) error {
	return c.registry.SetFrozen(ctx, db, asset.CoreID, true)
}

// Thaw allows transfers of all assets of the core again.
func (c Controller) Thaw(ctx weave.Context, db weave.KVStore, asset Asset) error {
	return c.registry.SetFrozen(ctx, db, asset.CoreID, false)
}

func (c Controller) setBalance(db weave.KVStore, asset Asset, who weave.Address, amount uint64) error {
	key := balanceKey(asset, who)
	if amount == 0 {
		if err := c.balances.Delete(db, key); err != nil && !errors.ErrNotFound.Is(err) {
			return err
		}
		return nil
	}
	return c.balances.Put(db, key, &Balance{Amount: amount})
}

func (c Controller) setIssuance(db weave.KVStore, asset Asset, amount uint64) error {
	return c.issuance.Put(db, asset.Key(), &Issuance{Amount: amount})
}

func addUint64(a, b uint64) (uint64, bool) {
	sum := a + b
	return sum, sum >= a
}
