package weave

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/invarch/weave/errors"
	"github.com/shopspring/decimal"
)

// String returns a human readable fraction representation.
func (f *Fraction) String() string {
	if f == nil {
		return "nil"
	}
	if f.Numerator == 0 {
		return "0"
	}
	if f.Denominator == 1 {
		return fmt.Sprint(f.Numerator)
	}
	return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator)
}

func (f Fraction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Numerator   uint32 `json:"numerator"`
		Denominator uint32 `json:"denominator"`
	}{
		Numerator:   f.Numerator,
		Denominator: f.Denominator,
	})
}

func (f *Fraction) UnmarshalJSON(raw []byte) error {
	// Prioritize human readable format.
	var human string
	if err := json.Unmarshal(raw, &human); err == nil {
		frac, err := ParseFractionString(human)
		if err != nil {
			return errors.Wrap(err, "fraction string")
		}
		*f = *frac
		return nil
	}

	var frac struct {
		Numerator   uint32
		Denominator uint32
	}
	if err := json.Unmarshal(raw, &frac); err != nil {
		return err
	}
	f.Numerator = frac.Numerator
	f.Denominator = frac.Denominator
	return nil
}

// Validate returns an error if this fraction represents an invalid value.
func (f Fraction) Validate() error {
	if f.Denominator == 0 && f.Numerator != 0 {
		return errors.Wrap(errors.ErrState, "zero division")
	}
	return nil
}

// Normalize returns a new fraction instance that has its numerator and
// denominator reduced to the smallest possible representation.
func (f Fraction) Normalize() Fraction {
	if f.Numerator == 0 {
		return Fraction{Numerator: 0, Denominator: 1}
	}
	div := uintGcd(f.Numerator, f.Denominator)
	return Fraction{
		Numerator:   f.Numerator / div,
		Denominator: f.Denominator / div,
	}
}

// Compare returns an integer comparing two fractions. The result will be 0
// if a==b, -1 if a < b, and +1 if a > b. Zero value of a fraction is
// considered equal to zero.
func (a Fraction) Compare(b Fraction) int {
	switch {
	case a.Numerator == 0 && b.Numerator == 0:
		return 0
	case a.Numerator == 0:
		return -1
	case b.Numerator == 0:
		return 1
	}

	l := uint64(a.Numerator) * uint64(b.Denominator)
	r := uint64(b.Numerator) * uint64(a.Denominator)
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func uintGcd(a, b uint32) uint32 {
	for b != 0 {
		t := b
		b = a % b
		a = t
	}
	return a
}

// ParseFractionString returns a fraction value that is represented by given
// string. This function fails if given string does not represent a fraction
// value.
//
// Supported formats are "<n>", "<n>/<d>" and a decimal percentage "<p>%",
// for example "33.5%".
//
// This fuction does not fail if representation format is correct but the value
// is invalid (i.e. value of "2/0").
func ParseFractionString(raw string) (*Fraction, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasSuffix(raw, "%") {
		return parsePercentString(strings.TrimSuffix(raw, "%"))
	}

	chunks := strings.SplitN(raw, "/", 2)
	n, err := strconv.ParseUint(strings.TrimSpace(chunks[0]), 10, 32)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, "numerator")
	}
	if len(chunks) == 1 {
		return &Fraction{Numerator: uint32(n), Denominator: 1}, nil
	}
	d, err := strconv.ParseUint(strings.TrimSpace(chunks[1]), 10, 32)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, "denominator")
	}
	return &Fraction{Numerator: uint32(n), Denominator: uint32(d)}, nil
}

func parsePercentString(raw string) (*Fraction, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "percentage: %s", err)
	}
	if d.IsNegative() {
		return nil, errors.Wrap(errors.ErrInput, "negative percentage")
	}
	if d.IsZero() {
		return &Fraction{Numerator: 0, Denominator: 1}, nil
	}

	num := new(big.Int).Set(d.Coefficient())
	den := big.NewInt(100)
	if exp := int64(d.Exponent()); exp > 0 {
		num.Mul(num, new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil))
	} else {
		den.Mul(den, new(big.Int).Exp(big.NewInt(10), big.NewInt(-exp), nil))
	}
	gcd := new(big.Int).GCD(nil, nil, num, den)
	num.Quo(num, gcd)
	den.Quo(den, gcd)

	const maxUint32 = 1<<32 - 1
	if !num.IsUint64() || num.Uint64() > maxUint32 || !den.IsUint64() || den.Uint64() > maxUint32 {
		return nil, errors.Wrap(errors.ErrOverflow, "percentage precision")
	}
	return &Fraction{Numerator: uint32(num.Uint64()), Denominator: uint32(den.Uint64())}, nil
}
