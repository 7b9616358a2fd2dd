package coin

import (
	"sort"

	"github.com/invarch/weave/errors"
)

// Coins represents a set of coins, at most one per currency, sorted by
// ticker. Zero amounts are never kept.
type Coins []*Coin

// CombineCoins creates a normalized Coins containing all given coins.
func CombineCoins(cs ...Coin) (Coins, error) {
	var (
		coins Coins
		err   error
	)
	for _, c := range cs {
		if coins, err = coins.Add(c); err != nil {
			return nil, err
		}
	}
	return coins, coins.Validate()
}

// Clone returns a copy that can be safely modified
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Add returns a new set with the holdings increased by c.
// The receiver is not modified.
func (cs Coins) Add(c Coin) (Coins, error) {
	res := cs.Clone()
	if c.IsZero() {
		return res, nil
	}

	i := sort.Search(len(res), func(i int) bool { return res[i].Ticker >= c.Ticker })
	if i < len(res) && res[i].Ticker == c.Ticker {
		sum, err := res[i].Add(c)
		if err != nil {
			return nil, err
		}
		if sum.IsZero() {
			return append(res[:i], res[i+1:]...), nil
		}
		res[i] = &sum
		return res, nil
	}

	res = append(res, nil)
	copy(res[i+1:], res[i:])
	res[i] = c.Clone()
	return res, nil
}

// Subtract returns a new set with the holdings decreased by c.
// The resulting Coins may have negative amounts
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// Contains returns true if there is at least that much
// coin in the Coins.
func (cs Coins) Contains(c Coin) bool {
	if c.IsZero() {
		return true
	}
	for _, has := range cs {
		if has.Ticker == c.Ticker {
			return has.IsGTE(c)
		}
	}
	return false
}

// IsEmpty returns if nothing is in the set
func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// IsNonNegative returns true if all coins are positive,
// but also accepts an empty set
func (cs Coins) IsNonNegative() bool {
	for _, c := range cs {
		if !c.IsNonNegative() {
			return false
		}
	}
	return true
}

// Equals returns true if both sets hold exactly the same coins.
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Validate requires that all coins are in alphabetical
// order, all coins are valid and no zero values are present.
func (cs Coins) Validate() error {
	for i, c := range cs {
		if c == nil {
			return errors.Wrap(errors.ErrEmpty, "nil coin")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if c.IsZero() {
			return errors.Wrapf(errors.ErrAmount, "zero %s coin", c.Ticker)
		}
		if i > 0 && cs[i-1].Ticker >= c.Ticker {
			return errors.Wrap(errors.ErrCurrency, "coins not sorted or duplicated")
		}
	}
	return nil
}
