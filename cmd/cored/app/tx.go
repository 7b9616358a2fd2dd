package app

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/x/cash"
	"github.com/invarch/weave/x/cores"
	"github.com/invarch/weave/x/multisig"
	"github.com/invarch/weave/x/shares"
	"github.com/invarch/weave/x/sigs"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (weave.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ weave.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg returns the single message set on the transaction.
func (tx *Tx) GetMsg() (weave.Msg, error) {
	return weave.ExtractMsgFromSum(tx)
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	signatures := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = signatures
	return bz, err
}

// SetMsg sets the message of the transaction, replacing any previously
// set one.
func (tx *Tx) SetMsg(msg weave.Msg) error {
	*tx = Tx{Signatures: tx.Signatures}
	switch m := msg.(type) {
	case *cash.SendMsg:
		tx.CashSendMsg = m
	case *sigs.BumpSequenceMsg:
		tx.SigsBumpSequenceMsg = m
	case *cores.CreateCoreMsg:
		tx.CoresCreateCoreMsg = m
	case *cores.UpdateConfigurationMsg:
		tx.CoresUpdateConfigurationMsg = m
	default:
		call, err := NewCoreCall(msg)
		if err != nil {
			return err
		}
		tx.CoresSetParametersMsg = call.CoresSetParametersMsg
		tx.CoresRemarkMsg = call.CoresRemarkMsg
		tx.CoresCreateSubAssetsMsg = call.CoresCreateSubAssetsMsg
		tx.SharesTransferMsg = call.SharesTransferMsg
		tx.SharesMintMsg = call.SharesMintMsg
		tx.SharesBurnMsg = call.SharesBurnMsg
		tx.SharesFreezeMsg = call.SharesFreezeMsg
		tx.SharesThawMsg = call.SharesThawMsg
		tx.SharesSetBalanceMsg = call.SharesSetBalanceMsg
		tx.MultisigOperateMsg = call.MultisigOperateMsg
		tx.MultisigVoteMsg = call.MultisigVoteMsg
		tx.MultisigWithdrawVoteMsg = call.MultisigWithdrawVoteMsg
		tx.MultisigCancelProposalMsg = call.MultisigCancelProposalMsg
	}
	return nil
}

var _ weave.Tx = (*CoreCall)(nil)

// NewCoreCall wraps a message that a core can execute.
func NewCoreCall(msg weave.Msg) (*CoreCall, error) {
	var c CoreCall
	switch m := msg.(type) {
	case *cash.SendMsg:
		c.CashSendMsg = m
	case *cores.SetParametersMsg:
		c.CoresSetParametersMsg = m
	case *cores.RemarkMsg:
		c.CoresRemarkMsg = m
	case *cores.CreateSubAssetsMsg:
		c.CoresCreateSubAssetsMsg = m
	case *shares.TransferMsg:
		c.SharesTransferMsg = m
	case *shares.MintMsg:
		c.SharesMintMsg = m
	case *shares.BurnMsg:
		c.SharesBurnMsg = m
	case *shares.FreezeMsg:
		c.SharesFreezeMsg = m
	case *shares.ThawMsg:
		c.SharesThawMsg = m
	case *shares.SetBalanceMsg:
		c.SharesSetBalanceMsg = m
	case *multisig.OperateMsg:
		c.MultisigOperateMsg = m
	case *multisig.VoteMsg:
		c.MultisigVoteMsg = m
	case *multisig.WithdrawVoteMsg:
		c.MultisigWithdrawVoteMsg = m
	case *multisig.CancelProposalMsg:
		c.MultisigCancelProposalMsg = m
	default:
		return nil, errors.Wrapf(errors.ErrType, "%T cannot be called by a core", msg)
	}
	return &c, nil
}

// EncodeCall returns the call bytes of an OperateMsg executing msg.
func EncodeCall(msg weave.Msg) ([]byte, error) {
	call, err := NewCoreCall(msg)
	if err != nil {
		return nil, err
	}
	return call.Marshal()
}

// DecodeCall is the multisig.CallDecoder of the chain.
func DecodeCall(raw []byte) (weave.Tx, error) {
	var c CoreCall
	if err := c.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return &c, nil
}

// GetMsg returns the single message set on the call.
func (c *CoreCall) GetMsg() (weave.Msg, error) {
	return weave.ExtractMsgFromSum(c)
}
