package shares

import "github.com/invarch/weave/errors"

var (
	ErrBalanceTooLow = errors.Register(220, "balance too low")
	ErrAssetFrozen   = errors.Register(221, "asset frozen")
	ErrUnderflow     = errors.Register(222, "issuance underflow")
)
