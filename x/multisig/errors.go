package multisig

import "github.com/invarch/weave/errors"

var (
	ErrProposalNotFound = errors.Register(240, "proposal not found")
	ErrAlreadyVoted     = errors.Register(241, "already voted")
	ErrNotVoter         = errors.Register(242, "not a voter")
	ErrNoPermission     = errors.Register(243, "no voting weight")
)
