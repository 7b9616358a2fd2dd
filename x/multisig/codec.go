package multisig

import (
	proto "github.com/gogo/protobuf/proto"
	"github.com/invarch/weave"
	"github.com/invarch/weave/x/cash"
)

// Vote is the weight an address voted with. The weight is the share
// balance of the voter when the vote was cast.
type Vote struct {
	Address weave.Address `protobuf:"bytes,1,opt,name=address,proto3,casttype=github.com/invarch/weave.Address" json:"address,omitempty"`
	Weight  uint64        `protobuf:"varint,2,opt,name=weight,proto3" json:"weight,omitempty"`
	Reject  bool          `protobuf:"varint,3,opt,name=reject,proto3" json:"reject,omitempty"`
}

func (m *Vote) Reset()         { *m = Vote{} }
func (m *Vote) String() string { return proto.CompactTextString((*voteWire)(m)) }
func (*Vote) ProtoMessage()    {}

func (m *Vote) Marshal() ([]byte, error) { return proto.Marshal((*voteWire)(m)) }
func (m *Vote) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*voteWire)(m)) }

func (m *Vote) GetAddress() weave.Address {
	if m != nil {
		return m.Address
	}
	return nil
}

func (m *Vote) GetWeight() uint64 {
	if m != nil {
		return m.Weight
	}
	return 0
}

func (m *Vote) GetReject() bool {
	if m != nil {
		return m.Reject
	}
	return false
}

type voteWire Vote

func (m *voteWire) Reset()         { *m = voteWire{} }
func (m *voteWire) String() string { return proto.CompactTextString(m) }
func (*voteWire) ProtoMessage()    {}

// Proposal is a call waiting for enough support of the holders of a
// core. Key is core_id | call_hash.
type Proposal struct {
	CoreID   uint64 `protobuf:"varint,1,opt,name=core_id,proto3" json:"core_id,omitempty"`
	CallHash []byte `protobuf:"bytes,2,opt,name=call_hash,proto3" json:"call_hash,omitempty"`
	// SubAssetID selects the share class whose holders vote.
	SubAssetID uint32        `protobuf:"varint,3,opt,name=sub_asset_id,proto3" json:"sub_asset_id,omitempty"`
	Call       []byte        `protobuf:"bytes,4,opt,name=call,proto3" json:"call,omitempty"`
	FeeAsset   cash.FeeAsset `protobuf:"varint,5,opt,name=fee_asset,proto3,enum=cash.FeeAsset" json:"fee_asset,omitempty"`
	Metadata   []byte        `protobuf:"bytes,6,opt,name=metadata,proto3" json:"metadata,omitempty"`
	YesWeight  uint64        `protobuf:"varint,7,opt,name=yes_weight,proto3" json:"yes_weight,omitempty"`
	NoWeight   uint64        `protobuf:"varint,8,opt,name=no_weight,proto3" json:"no_weight,omitempty"`
	// Voters are sorted by address.
	Voters []*Vote `protobuf:"bytes,9,rep,name=voters,proto3" json:"voters,omitempty"`
}

func (m *Proposal) Reset()         { *m = Proposal{} }
func (m *Proposal) String() string { return proto.CompactTextString((*proposalWire)(m)) }
func (*Proposal) ProtoMessage()    {}

func (m *Proposal) Marshal() ([]byte, error) { return proto.Marshal((*proposalWire)(m)) }
func (m *Proposal) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*proposalWire)(m)) }

func (m *Proposal) GetCoreID() uint64 {
	if m != nil {
		return m.CoreID
	}
	return 0
}

func (m *Proposal) GetCallHash() []byte {
	if m != nil {
		return m.CallHash
	}
	return nil
}

func (m *Proposal) GetSubAssetID() uint32 {
	if m != nil {
		return m.SubAssetID
	}
	return 0
}

func (m *Proposal) GetCall() []byte {
	if m != nil {
		return m.Call
	}
	return nil
}

func (m *Proposal) GetFeeAsset() cash.FeeAsset {
	if m != nil {
		return m.FeeAsset
	}
	return cash.FeeAssetNative
}

func (m *Proposal) GetMetadata() []byte {
	if m != nil {
		return m.Metadata
	}
	return nil
}

func (m *Proposal) GetYesWeight() uint64 {
	if m != nil {
		return m.YesWeight
	}
	return 0
}

func (m *Proposal) GetNoWeight() uint64 {
	if m != nil {
		return m.NoWeight
	}
	return 0
}

func (m *Proposal) GetVoters() []*Vote {
	if m != nil {
		return m.Voters
	}
	return nil
}

type proposalWire Proposal

func (m *proposalWire) Reset()         { *m = proposalWire{} }
func (m *proposalWire) String() string { return proto.CompactTextString(m) }
func (*proposalWire) ProtoMessage()    {}

// OperateMsg proposes a call on behalf of a core, or votes for it if
// the same call is already proposed.
type OperateMsg struct {
	CoreID     uint64        `protobuf:"varint,1,opt,name=core_id,proto3" json:"core_id,omitempty"`
	SubAssetID uint32        `protobuf:"varint,2,opt,name=sub_asset_id,proto3" json:"sub_asset_id,omitempty"`
	FeeAsset   cash.FeeAsset `protobuf:"varint,3,opt,name=fee_asset,proto3,enum=cash.FeeAsset" json:"fee_asset,omitempty"`
	Metadata   []byte        `protobuf:"bytes,4,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Call       []byte        `protobuf:"bytes,5,opt,name=call,proto3" json:"call,omitempty"`
}

func (m *OperateMsg) Reset()         { *m = OperateMsg{} }
func (m *OperateMsg) String() string { return proto.CompactTextString((*operateMsgWire)(m)) }
func (*OperateMsg) ProtoMessage()    {}

func (m *OperateMsg) Marshal() ([]byte, error) { return proto.Marshal((*operateMsgWire)(m)) }
func (m *OperateMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*operateMsgWire)(m)) }

func (m *OperateMsg) GetCoreID() uint64 {
	if m != nil {
		return m.CoreID
	}
	return 0
}

func (m *OperateMsg) GetSubAssetID() uint32 {
	if m != nil {
		return m.SubAssetID
	}
	return 0
}

func (m *OperateMsg) GetFeeAsset() cash.FeeAsset {
	if m != nil {
		return m.FeeAsset
	}
	return cash.FeeAssetNative
}

func (m *OperateMsg) GetMetadata() []byte {
	if m != nil {
		return m.Metadata
	}
	return nil
}

func (m *OperateMsg) GetCall() []byte {
	if m != nil {
		return m.Call
	}
	return nil
}

type operateMsgWire OperateMsg

func (m *operateMsgWire) Reset()         { *m = operateMsgWire{} }
func (m *operateMsgWire) String() string { return proto.CompactTextString(m) }
func (*operateMsgWire) ProtoMessage()    {}

// VoteMsg adds the signer vote to an existing proposal.
type VoteMsg struct {
	CoreID   uint64 `protobuf:"varint,1,opt,name=core_id,proto3" json:"core_id,omitempty"`
	CallHash []byte `protobuf:"bytes,2,opt,name=call_hash,proto3" json:"call_hash,omitempty"`
	Reject   bool   `protobuf:"varint,3,opt,name=reject,proto3" json:"reject,omitempty"`
}

func (m *VoteMsg) Reset()         { *m = VoteMsg{} }
func (m *VoteMsg) String() string { return proto.CompactTextString((*voteMsgWire)(m)) }
func (*VoteMsg) ProtoMessage()    {}

func (m *VoteMsg) Marshal() ([]byte, error) { return proto.Marshal((*voteMsgWire)(m)) }
func (m *VoteMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*voteMsgWire)(m)) }

func (m *VoteMsg) GetCoreID() uint64 {
	if m != nil {
		return m.CoreID
	}
	return 0
}

func (m *VoteMsg) GetCallHash() []byte {
	if m != nil {
		return m.CallHash
	}
	return nil
}

func (m *VoteMsg) GetReject() bool {
	if m != nil {
		return m.Reject
	}
	return false
}

type voteMsgWire VoteMsg

func (m *voteMsgWire) Reset()         { *m = voteMsgWire{} }
func (m *voteMsgWire) String() string { return proto.CompactTextString(m) }
func (*voteMsgWire) ProtoMessage()    {}

// WithdrawVoteMsg removes the signer vote from a proposal.
type WithdrawVoteMsg struct {
	CoreID   uint64 `protobuf:"varint,1,opt,name=core_id,proto3" json:"core_id,omitempty"`
	CallHash []byte `protobuf:"bytes,2,opt,name=call_hash,proto3" json:"call_hash,omitempty"`
}

func (m *WithdrawVoteMsg) Reset()         { *m = WithdrawVoteMsg{} }
func (m *WithdrawVoteMsg) String() string { return proto.CompactTextString((*withdrawVoteMsgWire)(m)) }
func (*WithdrawVoteMsg) ProtoMessage()    {}

func (m *WithdrawVoteMsg) Marshal() ([]byte, error) { return proto.Marshal((*withdrawVoteMsgWire)(m)) }
func (m *WithdrawVoteMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*withdrawVoteMsgWire)(m))
}

func (m *WithdrawVoteMsg) GetCoreID() uint64 {
	if m != nil {
		return m.CoreID
	}
	return 0
}

func (m *WithdrawVoteMsg) GetCallHash() []byte {
	if m != nil {
		return m.CallHash
	}
	return nil
}

type withdrawVoteMsgWire WithdrawVoteMsg

func (m *withdrawVoteMsgWire) Reset()         { *m = withdrawVoteMsgWire{} }
func (m *withdrawVoteMsgWire) String() string { return proto.CompactTextString(m) }
func (*withdrawVoteMsgWire) ProtoMessage()    {}

// CancelProposalMsg removes a proposal. Only the core can issue it.
type CancelProposalMsg struct {
	CoreID   uint64 `protobuf:"varint,1,opt,name=core_id,proto3" json:"core_id,omitempty"`
	CallHash []byte `protobuf:"bytes,2,opt,name=call_hash,proto3" json:"call_hash,omitempty"`
}

func (m *CancelProposalMsg) Reset() { *m = CancelProposalMsg{} }
func (m *CancelProposalMsg) String() string {
	return proto.CompactTextString((*cancelProposalMsgWire)(m))
}
func (*CancelProposalMsg) ProtoMessage() {}

func (m *CancelProposalMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*cancelProposalMsgWire)(m))
}
func (m *CancelProposalMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*cancelProposalMsgWire)(m))
}

func (m *CancelProposalMsg) GetCoreID() uint64 {
	if m != nil {
		return m.CoreID
	}
	return 0
}

func (m *CancelProposalMsg) GetCallHash() []byte {
	if m != nil {
		return m.CallHash
	}
	return nil
}

type cancelProposalMsgWire CancelProposalMsg

func (m *cancelProposalMsgWire) Reset()         { *m = cancelProposalMsgWire{} }
func (m *cancelProposalMsgWire) String() string { return proto.CompactTextString(m) }
func (*cancelProposalMsgWire) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Vote)(nil), "multisig.Vote")
	proto.RegisterType((*Proposal)(nil), "multisig.Proposal")
	proto.RegisterType((*OperateMsg)(nil), "multisig.OperateMsg")
	proto.RegisterType((*VoteMsg)(nil), "multisig.VoteMsg")
	proto.RegisterType((*WithdrawVoteMsg)(nil), "multisig.WithdrawVoteMsg")
	proto.RegisterType((*CancelProposalMsg)(nil), "multisig.CancelProposalMsg")
}
