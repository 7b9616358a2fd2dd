package app

import (
	proto "github.com/gogo/protobuf/proto"
	"github.com/invarch/weave/x/cash"
	"github.com/invarch/weave/x/cores"
	"github.com/invarch/weave/x/multisig"
	"github.com/invarch/weave/x/shares"
	"github.com/invarch/weave/x/sigs"
)

// Tx is the transaction of the chain. Exactly one message must be set.
type Tx struct {
	Signatures                  []*sigs.StdSignature          `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	CashSendMsg                 *cash.SendMsg                 `protobuf:"bytes,51,opt,name=cash_send_msg,proto3" json:"cash_send_msg,omitempty"`
	SigsBumpSequenceMsg         *sigs.BumpSequenceMsg         `protobuf:"bytes,52,opt,name=sigs_bump_sequence_msg,proto3" json:"sigs_bump_sequence_msg,omitempty"`
	CoresCreateCoreMsg          *cores.CreateCoreMsg          `protobuf:"bytes,60,opt,name=cores_create_core_msg,proto3" json:"cores_create_core_msg,omitempty"`
	CoresSetParametersMsg       *cores.SetParametersMsg       `protobuf:"bytes,61,opt,name=cores_set_parameters_msg,proto3" json:"cores_set_parameters_msg,omitempty"`
	CoresRemarkMsg              *cores.RemarkMsg              `protobuf:"bytes,62,opt,name=cores_remark_msg,proto3" json:"cores_remark_msg,omitempty"`
	CoresCreateSubAssetsMsg     *cores.CreateSubAssetsMsg     `protobuf:"bytes,63,opt,name=cores_create_sub_assets_msg,proto3" json:"cores_create_sub_assets_msg,omitempty"`
	CoresUpdateConfigurationMsg *cores.UpdateConfigurationMsg `protobuf:"bytes,64,opt,name=cores_update_configuration_msg,proto3" json:"cores_update_configuration_msg,omitempty"`
	SharesTransferMsg           *shares.TransferMsg           `protobuf:"bytes,70,opt,name=shares_transfer_msg,proto3" json:"shares_transfer_msg,omitempty"`
	SharesMintMsg               *shares.MintMsg               `protobuf:"bytes,71,opt,name=shares_mint_msg,proto3" json:"shares_mint_msg,omitempty"`
	SharesBurnMsg               *shares.BurnMsg               `protobuf:"bytes,72,opt,name=shares_burn_msg,proto3" json:"shares_burn_msg,omitempty"`
	SharesFreezeMsg             *shares.FreezeMsg             `protobuf:"bytes,73,opt,name=shares_freeze_msg,proto3" json:"shares_freeze_msg,omitempty"`
	SharesThawMsg               *shares.ThawMsg               `protobuf:"bytes,74,opt,name=shares_thaw_msg,proto3" json:"shares_thaw_msg,omitempty"`
	SharesSetBalanceMsg         *shares.SetBalanceMsg         `protobuf:"bytes,75,opt,name=shares_set_balance_msg,proto3" json:"shares_set_balance_msg,omitempty"`
	MultisigOperateMsg          *multisig.OperateMsg          `protobuf:"bytes,80,opt,name=multisig_operate_msg,proto3" json:"multisig_operate_msg,omitempty"`
	MultisigVoteMsg             *multisig.VoteMsg             `protobuf:"bytes,81,opt,name=multisig_vote_msg,proto3" json:"multisig_vote_msg,omitempty"`
	MultisigWithdrawVoteMsg     *multisig.WithdrawVoteMsg     `protobuf:"bytes,82,opt,name=multisig_withdraw_vote_msg,proto3" json:"multisig_withdraw_vote_msg,omitempty"`
	MultisigCancelProposalMsg   *multisig.CancelProposalMsg   `protobuf:"bytes,83,opt,name=multisig_cancel_proposal_msg,proto3" json:"multisig_cancel_proposal_msg,omitempty"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString((*txWire)(m)) }
func (*Tx) ProtoMessage()    {}

func (m *Tx) Marshal() ([]byte, error) { return proto.Marshal((*txWire)(m)) }
func (m *Tx) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*txWire)(m)) }

func (m *Tx) GetSignatures() []*sigs.StdSignature {
	if m != nil {
		return m.Signatures
	}
	return nil
}

func (m *Tx) GetCashSendMsg() *cash.SendMsg {
	if m != nil {
		return m.CashSendMsg
	}
	return nil
}

func (m *Tx) GetSigsBumpSequenceMsg() *sigs.BumpSequenceMsg {
	if m != nil {
		return m.SigsBumpSequenceMsg
	}
	return nil
}

func (m *Tx) GetCoresCreateCoreMsg() *cores.CreateCoreMsg {
	if m != nil {
		return m.CoresCreateCoreMsg
	}
	return nil
}

func (m *Tx) GetCoresSetParametersMsg() *cores.SetParametersMsg {
	if m != nil {
		return m.CoresSetParametersMsg
	}
	return nil
}

func (m *Tx) GetCoresRemarkMsg() *cores.RemarkMsg {
	if m != nil {
		return m.CoresRemarkMsg
	}
	return nil
}

func (m *Tx) GetCoresCreateSubAssetsMsg() *cores.CreateSubAssetsMsg {
	if m != nil {
		return m.CoresCreateSubAssetsMsg
	}
	return nil
}

func (m *Tx) GetCoresUpdateConfigurationMsg() *cores.UpdateConfigurationMsg {
	if m != nil {
		return m.CoresUpdateConfigurationMsg
	}
	return nil
}

func (m *Tx) GetSharesTransferMsg() *shares.TransferMsg {
	if m != nil {
		return m.SharesTransferMsg
	}
	return nil
}

func (m *Tx) GetSharesMintMsg() *shares.MintMsg {
	if m != nil {
		return m.SharesMintMsg
	}
	return nil
}

func (m *Tx) GetSharesBurnMsg() *shares.BurnMsg {
	if m != nil {
		return m.SharesBurnMsg
	}
	return nil
}

func (m *Tx) GetSharesFreezeMsg() *shares.FreezeMsg {
	if m != nil {
		return m.SharesFreezeMsg
	}
	return nil
}

func (m *Tx) GetSharesThawMsg() *shares.ThawMsg {
	if m != nil {
		return m.SharesThawMsg
	}
	return nil
}

func (m *Tx) GetSharesSetBalanceMsg() *shares.SetBalanceMsg {
	if m != nil {
		return m.SharesSetBalanceMsg
	}
	return nil
}

func (m *Tx) GetMultisigOperateMsg() *multisig.OperateMsg {
	if m != nil {
		return m.MultisigOperateMsg
	}
	return nil
}

func (m *Tx) GetMultisigVoteMsg() *multisig.VoteMsg {
	if m != nil {
		return m.MultisigVoteMsg
	}
	return nil
}

func (m *Tx) GetMultisigWithdrawVoteMsg() *multisig.WithdrawVoteMsg {
	if m != nil {
		return m.MultisigWithdrawVoteMsg
	}
	return nil
}

func (m *Tx) GetMultisigCancelProposalMsg() *multisig.CancelProposalMsg {
	if m != nil {
		return m.MultisigCancelProposalMsg
	}
	return nil
}

type txWire Tx

func (m *txWire) Reset()         { *m = txWire{} }
func (m *txWire) String() string { return proto.CompactTextString(m) }
func (*txWire) ProtoMessage()    {}

// CoreCall is a call executed on behalf of a core once its holders
// agreed on it. Exactly one message must be set.
type CoreCall struct {
	CashSendMsg               *cash.SendMsg               `protobuf:"bytes,51,opt,name=cash_send_msg,proto3" json:"cash_send_msg,omitempty"`
	CoresSetParametersMsg     *cores.SetParametersMsg     `protobuf:"bytes,61,opt,name=cores_set_parameters_msg,proto3" json:"cores_set_parameters_msg,omitempty"`
	CoresRemarkMsg            *cores.RemarkMsg            `protobuf:"bytes,62,opt,name=cores_remark_msg,proto3" json:"cores_remark_msg,omitempty"`
	CoresCreateSubAssetsMsg   *cores.CreateSubAssetsMsg   `protobuf:"bytes,63,opt,name=cores_create_sub_assets_msg,proto3" json:"cores_create_sub_assets_msg,omitempty"`
	SharesTransferMsg         *shares.TransferMsg         `protobuf:"bytes,70,opt,name=shares_transfer_msg,proto3" json:"shares_transfer_msg,omitempty"`
	SharesMintMsg             *shares.MintMsg             `protobuf:"bytes,71,opt,name=shares_mint_msg,proto3" json:"shares_mint_msg,omitempty"`
	SharesBurnMsg             *shares.BurnMsg             `protobuf:"bytes,72,opt,name=shares_burn_msg,proto3" json:"shares_burn_msg,omitempty"`
	SharesFreezeMsg           *shares.FreezeMsg           `protobuf:"bytes,73,opt,name=shares_freeze_msg,proto3" json:"shares_freeze_msg,omitempty"`
	SharesThawMsg             *shares.ThawMsg             `protobuf:"bytes,74,opt,name=shares_thaw_msg,proto3" json:"shares_thaw_msg,omitempty"`
	SharesSetBalanceMsg       *shares.SetBalanceMsg       `protobuf:"bytes,75,opt,name=shares_set_balance_msg,proto3" json:"shares_set_balance_msg,omitempty"`
	MultisigOperateMsg        *multisig.OperateMsg        `protobuf:"bytes,80,opt,name=multisig_operate_msg,proto3" json:"multisig_operate_msg,omitempty"`
	MultisigVoteMsg           *multisig.VoteMsg           `protobuf:"bytes,81,opt,name=multisig_vote_msg,proto3" json:"multisig_vote_msg,omitempty"`
	MultisigWithdrawVoteMsg   *multisig.WithdrawVoteMsg   `protobuf:"bytes,82,opt,name=multisig_withdraw_vote_msg,proto3" json:"multisig_withdraw_vote_msg,omitempty"`
	MultisigCancelProposalMsg *multisig.CancelProposalMsg `protobuf:"bytes,83,opt,name=multisig_cancel_proposal_msg,proto3" json:"multisig_cancel_proposal_msg,omitempty"`
}

func (m *CoreCall) Reset()         { *m = CoreCall{} }
func (m *CoreCall) String() string { return proto.CompactTextString((*coreCallWire)(m)) }
func (*CoreCall) ProtoMessage()    {}

func (m *CoreCall) Marshal() ([]byte, error) { return proto.Marshal((*coreCallWire)(m)) }
func (m *CoreCall) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*coreCallWire)(m)) }

func (m *CoreCall) GetCashSendMsg() *cash.SendMsg {
	if m != nil {
		return m.CashSendMsg
	}
	return nil
}

func (m *CoreCall) GetCoresSetParametersMsg() *cores.SetParametersMsg {
	if m != nil {
		return m.CoresSetParametersMsg
	}
	return nil
}

func (m *CoreCall) GetCoresRemarkMsg() *cores.RemarkMsg {
	if m != nil {
		return m.CoresRemarkMsg
	}
	return nil
}

func (m *CoreCall) GetCoresCreateSubAssetsMsg() *cores.CreateSubAssetsMsg {
	if m != nil {
		return m.CoresCreateSubAssetsMsg
	}
	return nil
}

func (m *CoreCall) GetSharesTransferMsg() *shares.TransferMsg {
	if m != nil {
		return m.SharesTransferMsg
	}
	return nil
}

func (m *CoreCall) GetSharesMintMsg() *shares.MintMsg {
	if m != nil {
		return m.SharesMintMsg
	}
	return nil
}

func (m *CoreCall) GetSharesBurnMsg() *shares.BurnMsg {
	if m != nil {
		return m.SharesBurnMsg
	}
	return nil
}

func (m *CoreCall) GetSharesFreezeMsg() *shares.FreezeMsg {
	if m != nil {
		return m.SharesFreezeMsg
	}
	return nil
}

func (m *CoreCall) GetSharesThawMsg() *shares.ThawMsg {
	if m != nil {
		return m.SharesThawMsg
	}
	return nil
}

func (m *CoreCall) GetSharesSetBalanceMsg() *shares.SetBalanceMsg {
	if m != nil {
		return m.SharesSetBalanceMsg
	}
	return nil
}

func (m *CoreCall) GetMultisigOperateMsg() *multisig.OperateMsg {
	if m != nil {
		return m.MultisigOperateMsg
	}
	return nil
}

func (m *CoreCall) GetMultisigVoteMsg() *multisig.VoteMsg {
	if m != nil {
		return m.MultisigVoteMsg
	}
	return nil
}

func (m *CoreCall) GetMultisigWithdrawVoteMsg() *multisig.WithdrawVoteMsg {
	if m != nil {
		return m.MultisigWithdrawVoteMsg
	}
	return nil
}

func (m *CoreCall) GetMultisigCancelProposalMsg() *multisig.CancelProposalMsg {
	if m != nil {
		return m.MultisigCancelProposalMsg
	}
	return nil
}

type coreCallWire CoreCall

func (m *coreCallWire) Reset()         { *m = coreCallWire{} }
func (m *coreCallWire) String() string { return proto.CompactTextString(m) }
func (*coreCallWire) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Tx)(nil), "cored.Tx")
	proto.RegisterType((*CoreCall)(nil), "cored.CoreCall")
}
