package cores

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/x"
	"github.com/invarch/weave/x/shares"
)

// Origin checks that a call was issued on behalf of a core. Only the
// multisig engine can authenticate the condition of a core.
type Origin struct {
	auth x.Authenticator
}

var _ shares.OriginChecker = Origin{}

// NewOrigin returns an origin checker using the given authenticator.
func NewOrigin(auth x.Authenticator) Origin {
	return Origin{auth: auth}
}

// CheckOrigin returns ErrBadOrigin unless the context carries the
// condition of the core.
func (o Origin) CheckOrigin(ctx weave.Context, coreID uint64) error {
	if !o.auth.HasAddress(ctx, Account(coreID)) {
		return errors.Wrapf(ErrBadOrigin, "core %d", coreID)
	}
	return nil
}
