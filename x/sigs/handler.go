package sigs

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/orm"
	"github.com/invarch/weave/x"
)

const (
	pathBumpSequenceMsg = "sigs/bump_sequence"

	maxSequenceIncrement = 1000
	minSequenceIncrement = 1
)

var _ weave.Msg = (*BumpSequenceMsg)(nil)

// Validate checks the increment bounds.
func (msg *BumpSequenceMsg) Validate() error {
	if msg.Increment < minSequenceIncrement {
		return errors.Wrapf(errors.ErrMsg, "increment must be at least %d", minSequenceIncrement)
	}
	if msg.Increment > maxSequenceIncrement {
		return errors.Wrapf(errors.ErrMsg, "increment must not be greater than %d", maxSequenceIncrement)
	}
	return nil
}

func (BumpSequenceMsg) Path() string {
	return pathBumpSequenceMsg
}

// RegisterRoutes registers handlers for messages of this package.
func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r.Handle(&BumpSequenceMsg{}, &bumpSequenceHandler{
		b:    NewUserBucket(),
		auth: auth,
	})
}

type bumpSequenceHandler struct {
	auth x.Authenticator
	b    orm.ModelBucket
}

func (h *bumpSequenceHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *bumpSequenceHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	user, msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Signature verification already bumped the sequence by one.
	incr := int64(msg.Increment) - 1
	if incr == 0 {
		return &weave.DeliverResult{}, nil
	}
	user.Sequence += incr
	if err := h.b.Put(db, user.Pubkey.Address(), user); err != nil {
		return nil, errors.Wrap(err, "save user")
	}
	return &weave.DeliverResult{}, nil
}

func (h *bumpSequenceHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UserData, *BumpSequenceMsg, error) {
	var msg BumpSequenceMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	var user UserData
	if err := h.b.One(db, signer.Address(), &user); err != nil {
		return nil, nil, errors.Wrap(err, "no sequence")
	}
	if user.Sequence+int64(msg.Increment) > maxSequenceValue {
		return nil, nil, errors.Wrap(errors.ErrOverflow, "user sequence")
	}
	return &user, &msg, nil
}
