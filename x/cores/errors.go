package cores

import "github.com/invarch/weave/errors"

var (
	ErrMaxMetadataExceeded   = errors.Register(200, "metadata too large")
	ErrIDExhausted           = errors.Register(201, "no core id available")
	ErrCoreNotFound          = errors.Register(202, "core not found")
	ErrSubAssetAlreadyExists = errors.Register(203, "sub asset already exists")
	ErrSubAssetNotFound      = errors.Register(204, "sub asset not found")
	ErrBadOrigin             = errors.Register(205, "call does not originate from the core")
)
