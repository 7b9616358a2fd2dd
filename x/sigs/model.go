package sigs

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/crypto"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/orm"
)

// BucketName is where we store the accounts
const BucketName = "sigs"

// maxSequenceValue is limited by the client. The greatest supported
// nonce value at client side is
//
//	Number.MAX_SAFE_INTEGER = 9007199254740991 = 2^53 - 1
const maxSequenceValue = (1 << 53) - 1

var _ orm.Model = (*UserData)(nil)

// Validate requires a public key once the sequence was used.
func (u *UserData) Validate() error {
	var errs error
	if seq := u.Sequence; seq < 0 || seq > maxSequenceValue {
		errs = errors.AppendField(errs, "Sequence", ErrInvalidSequence)
	} else if seq > 0 && u.Pubkey == nil {
		errs = errors.Append(errs, errors.Field("Sequence", ErrInvalidSequence, "needs Pubkey"))
	}
	if u.Pubkey != nil {
		errs = errors.AppendField(errs, "Pubkey", u.Pubkey.Validate())
	}
	return errs
}

// Copy makes a new UserData with the same values
func (u *UserData) Copy() orm.Model {
	return &UserData{
		Sequence: u.Sequence,
		Pubkey:   u.Pubkey,
	}
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}
	next := u.Sequence + 1
	if next <= 0 || next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

// NewUserBucket returns a bucket storing UserData under the signer address.
func NewUserBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &UserData{})
}

// getOrCreate loads the user owning the public key. A user seen for the
// first time starts with sequence zero.
func getOrCreate(db weave.ReadOnlyKVStore, b orm.ModelBucket, pubkey *crypto.PublicKey) (*UserData, error) {
	var user UserData
	switch err := b.One(db, pubkey.Address(), &user); {
	case err == nil:
		return &user, nil
	case errors.ErrNotFound.Is(err):
		return &UserData{Pubkey: pubkey}, nil
	default:
		return nil, err
	}
}
