package cores

import (
	"encoding/json"
	"math/bits"
	"strings"

	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
)

// All returns a threshold requiring the whole issuance.
func All() *Threshold {
	return &Threshold{All: true}
}

// Percent returns a threshold of numerator/denominator of the issuance.
func Percent(numerator, denominator uint32) *Threshold {
	return &Threshold{Fraction: &weave.Fraction{Numerator: numerator, Denominator: denominator}}
}

// Validate requires exactly one of All and Fraction, with the fraction
// in the (0, 1] range.
func (t *Threshold) Validate() error {
	if t == nil {
		return errors.Wrap(errors.ErrEmpty, "threshold")
	}
	if t.All {
		if t.Fraction != nil {
			return errors.Wrap(errors.ErrInput, "threshold cannot be both all and a fraction")
		}
		return nil
	}
	f := t.Fraction
	if f == nil {
		return errors.Wrap(errors.ErrEmpty, "threshold fraction")
	}
	if err := f.Validate(); err != nil {
		return err
	}
	if f.Numerator == 0 {
		return errors.Wrap(errors.ErrInput, "threshold must be greater than zero")
	}
	if f.Numerator > f.Denominator {
		return errors.Wrap(errors.ErrInput, "threshold must not be greater than one")
	}
	return nil
}

// Needed returns the smallest weight that satisfies the threshold when
// the total weight is total. Fractions are rounded up.
func (t *Threshold) Needed(total uint64) uint64 {
	if t.All {
		return total
	}
	n := uint64(t.Fraction.Numerator)
	d := uint64(t.Fraction.Denominator)

	// ceil(total * n / d) computed on 128 bits. n <= d guarantees that
	// the quotient fits in 64 bits.
	hi, lo := bits.Mul64(total, n)
	lo, carry := bits.Add64(lo, d-1, 0)
	hi += carry
	q, _ := bits.Div64(hi, lo, d)
	return q
}

// Reached returns true if weight satisfies the threshold of total.
func (t *Threshold) Reached(weight, total uint64) bool {
	return weight >= t.Needed(total)
}

func (t *Threshold) String() string {
	switch {
	case t == nil:
		return "nil"
	case t.All:
		return "all"
	default:
		return t.Fraction.String()
	}
}

// MarshalJSON encodes the threshold as "all" or a fraction string.
func (t Threshold) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts "all", a fraction ("1/2") or a percentage ("50%").
func (t *Threshold) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, "threshold must be a string")
	}
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		*t = Threshold{All: true}
		return nil
	}
	f, err := weave.ParseFractionString(s)
	if err != nil {
		return err
	}
	*t = Threshold{Fraction: f}
	return nil
}
