package multisig

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
)

const (
	pathOperateMsg        = "multisig/operate"
	pathVoteMsg           = "multisig/vote"
	pathWithdrawVoteMsg   = "multisig/withdraw_vote"
	pathCancelProposalMsg = "multisig/cancel_proposal"
)

var _ weave.Msg = (*OperateMsg)(nil)

func (OperateMsg) Path() string {
	return pathOperateMsg
}

func (m *OperateMsg) Validate() error {
	var errs error
	if len(m.Call) == 0 {
		errs = errors.AppendField(errs, "Call", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "FeeAsset", m.FeeAsset.Validate())
	return errs
}

var _ weave.Msg = (*VoteMsg)(nil)

func (VoteMsg) Path() string {
	return pathVoteMsg
}

func (m *VoteMsg) Validate() error {
	return errors.AppendField(nil, "CallHash", validateCallHash(m.CallHash))
}

var _ weave.Msg = (*WithdrawVoteMsg)(nil)

func (WithdrawVoteMsg) Path() string {
	return pathWithdrawVoteMsg
}

func (m *WithdrawVoteMsg) Validate() error {
	return errors.AppendField(nil, "CallHash", validateCallHash(m.CallHash))
}

var _ weave.Msg = (*CancelProposalMsg)(nil)

func (CancelProposalMsg) Path() string {
	return pathCancelProposalMsg
}

func (m *CancelProposalMsg) Validate() error {
	return errors.AppendField(nil, "CallHash", validateCallHash(m.CallHash))
}

func validateCallHash(h []byte) error {
	if len(h) != callHashLength {
		return errors.Wrapf(errors.ErrInput, "call hash must be %d bytes", callHashLength)
	}
	return nil
}
