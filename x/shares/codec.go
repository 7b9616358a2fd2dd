package shares

import (
	proto "github.com/gogo/protobuf/proto"
	"github.com/invarch/weave"
)

// Balance is the amount of shares held by an address.
// Key is core_id | sub_asset_id | address.
type Balance struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Balance) Reset()         { *m = Balance{} }
func (m *Balance) String() string { return proto.CompactTextString((*balanceWire)(m)) }
func (*Balance) ProtoMessage()    {}

func (m *Balance) Marshal() ([]byte, error) { return proto.Marshal((*balanceWire)(m)) }
func (m *Balance) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*balanceWire)(m)) }

func (m *Balance) GetAmount() uint64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type balanceWire Balance

func (m *balanceWire) Reset()         { *m = balanceWire{} }
func (m *balanceWire) String() string { return proto.CompactTextString(m) }
func (*balanceWire) ProtoMessage()    {}

// Issuance is the total amount of shares of an asset.
// Key is core_id | sub_asset_id.
type Issuance struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Issuance) Reset()         { *m = Issuance{} }
func (m *Issuance) String() string { return proto.CompactTextString((*issuanceWire)(m)) }
func (*Issuance) ProtoMessage()    {}

func (m *Issuance) Marshal() ([]byte, error) { return proto.Marshal((*issuanceWire)(m)) }
func (m *Issuance) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*issuanceWire)(m)) }

func (m *Issuance) GetAmount() uint64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type issuanceWire Issuance

func (m *issuanceWire) Reset()         { *m = issuanceWire{} }
func (m *issuanceWire) String() string { return proto.CompactTextString(m) }
func (*issuanceWire) ProtoMessage()    {}

// TransferMsg moves shares between two holders. The source must
// authorize it. Transfers fail while the core is frozen.
type TransferMsg struct {
	CoreID      uint64        `protobuf:"varint,1,opt,name=core_id,proto3" json:"core_id,omitempty"`
	SubAssetID  uint32        `protobuf:"varint,2,opt,name=sub_asset_id,proto3" json:"sub_asset_id,omitempty"`
	Source      weave.Address `protobuf:"bytes,3,opt,name=source,proto3,casttype=github.com/invarch/weave.Address" json:"source,omitempty"`
	Destination weave.Address `protobuf:"bytes,4,opt,name=destination,proto3,casttype=github.com/invarch/weave.Address" json:"destination,omitempty"`
	Amount      uint64        `protobuf:"varint,5,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TransferMsg) Reset()         { *m = TransferMsg{} }
func (m *TransferMsg) String() string { return proto.CompactTextString((*transferMsgWire)(m)) }
func (*TransferMsg) ProtoMessage()    {}

func (m *TransferMsg) Marshal() ([]byte, error) { return proto.Marshal((*transferMsgWire)(m)) }
func (m *TransferMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*transferMsgWire)(m)) }

func (m *TransferMsg) GetCoreID() uint64 {
	if m != nil {
		return m.CoreID
	}
	return 0
}

func (m *TransferMsg) GetSubAssetID() uint32 {
	if m != nil {
		return m.SubAssetID
	}
	return 0
}

func (m *TransferMsg) GetSource() weave.Address {
	if m != nil {
		return m.Source
	}
	return nil
}

func (m *TransferMsg) GetDestination() weave.Address {
	if m != nil {
		return m.Destination
	}
	return nil
}

func (m *TransferMsg) GetAmount() uint64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type transferMsgWire TransferMsg

func (m *transferMsgWire) Reset()         { *m = transferMsgWire{} }
func (m *transferMsgWire) String() string { return proto.CompactTextString(m) }
func (*transferMsgWire) ProtoMessage()    {}

// MintMsg creates new shares. Only the core can issue it.
type MintMsg struct {
	CoreID      uint64        `protobuf:"varint,1,opt,name=core_id,proto3" json:"core_id,omitempty"`
	SubAssetID  uint32        `protobuf:"varint,2,opt,name=sub_asset_id,proto3" json:"sub_asset_id,omitempty"`
	Destination weave.Address `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/invarch/weave.Address" json:"destination,omitempty"`
	Amount      uint64        `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *MintMsg) Reset()         { *m = MintMsg{} }
func (m *MintMsg) String() string { return proto.CompactTextString((*mintMsgWire)(m)) }
func (*MintMsg) ProtoMessage()    {}

func (m *MintMsg) Marshal() ([]byte, error) { return proto.Marshal((*mintMsgWire)(m)) }
func (m *MintMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*mintMsgWire)(m)) }

func (m *MintMsg) GetCoreID() uint64 {
	if m != nil {
		return m.CoreID
	}
	return 0
}

func (m *MintMsg) GetSubAssetID() uint32 {
	if m != nil {
		return m.SubAssetID
	}
	return 0
}

func (m *MintMsg) GetDestination() weave.Address {
	if m != nil {
		return m.Destination
	}
	return nil
}

func (m *MintMsg) GetAmount() uint64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type mintMsgWire MintMsg

func (m *mintMsgWire) Reset()         { *m = mintMsgWire{} }
func (m *mintMsgWire) String() string { return proto.CompactTextString(m) }
func (*mintMsgWire) ProtoMessage()    {}

// BurnMsg destroys shares. Only the core can issue it.
type BurnMsg struct {
	CoreID     uint64        `protobuf:"varint,1,opt,name=core_id,proto3" json:"core_id,omitempty"`
	SubAssetID uint32        `protobuf:"varint,2,opt,name=sub_asset_id,proto3" json:"sub_asset_id,omitempty"`
	Owner      weave.Address `protobuf:"bytes,3,opt,name=owner,proto3,casttype=github.com/invarch/weave.Address" json:"owner,omitempty"`
	Amount     uint64        `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *BurnMsg) Reset()         { *m = BurnMsg{} }
func (m *BurnMsg) String() string { return proto.CompactTextString((*burnMsgWire)(m)) }
func (*BurnMsg) ProtoMessage()    {}

func (m *BurnMsg) Marshal() ([]byte, error) { return proto.Marshal((*burnMsgWire)(m)) }
func (m *BurnMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*burnMsgWire)(m)) }

func (m *BurnMsg) GetCoreID() uint64 {
	if m != nil {
		return m.CoreID
	}
	return 0
}

func (m *BurnMsg) GetSubAssetID() uint32 {
	if m != nil {
		return m.SubAssetID
	}
	return 0
}

func (m *BurnMsg) GetOwner() weave.Address {
	if m != nil {
		return m.Owner
	}
	return nil
}

func (m *BurnMsg) GetAmount() uint64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type burnMsgWire BurnMsg

func (m *burnMsgWire) Reset()         { *m = burnMsgWire{} }
func (m *burnMsgWire) String() string { return proto.CompactTextString(m) }
func (*burnMsgWire) ProtoMessage()    {}

// SetBalanceMsg overwrites the balance of a holder and adjusts the
// total issuance by the difference. Only the core can issue it.
type SetBalanceMsg struct {
	CoreID     uint64        `protobuf:"varint,1,opt,name=core_id,proto3" json:"core_id,omitempty"`
	SubAssetID uint32        `protobuf:"varint,2,opt,name=sub_asset_id,proto3" json:"sub_asset_id,omitempty"`
	Who        weave.Address `protobuf:"bytes,3,opt,name=who,proto3,casttype=github.com/invarch/weave.Address" json:"who,omitempty"`
	Amount     uint64        `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *SetBalanceMsg) Reset()         { *m = SetBalanceMsg{} }
func (m *SetBalanceMsg) String() string { return proto.CompactTextString((*setBalanceMsgWire)(m)) }
func (*SetBalanceMsg) ProtoMessage()    {}

func (m *SetBalanceMsg) Marshal() ([]byte, error) { return proto.Marshal((*setBalanceMsgWire)(m)) }
func (m *SetBalanceMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*setBalanceMsgWire)(m)) }

func (m *SetBalanceMsg) GetCoreID() uint64 {
	if m != nil {
		return m.CoreID
	}
	return 0
}

func (m *SetBalanceMsg) GetSubAssetID() uint32 {
	if m != nil {
		return m.SubAssetID
	}
	return 0
}

func (m *SetBalanceMsg) GetWho() weave.Address {
	if m != nil {
		return m.Who
	}
	return nil
}

func (m *SetBalanceMsg) GetAmount() uint64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type setBalanceMsgWire SetBalanceMsg

func (m *setBalanceMsgWire) Reset()         { *m = setBalanceMsgWire{} }
func (m *setBalanceMsgWire) String() string { return proto.CompactTextString(m) }
func (*setBalanceMsgWire) ProtoMessage()    {}

// FreezeMsg blocks all share transfers of the core.
type FreezeMsg struct {
	CoreID uint64 `protobuf:"varint,1,opt,name=core_id,proto3" json:"core_id,omitempty"`
}

func (m *FreezeMsg) Reset()         { *m = FreezeMsg{} }
func (m *FreezeMsg) String() string { return proto.CompactTextString((*freezeMsgWire)(m)) }
func (*FreezeMsg) ProtoMessage()    {}

func (m *FreezeMsg) Marshal() ([]byte, error) { return proto.Marshal((*freezeMsgWire)(m)) }
func (m *FreezeMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*freezeMsgWire)(m)) }

func (m *FreezeMsg) GetCoreID() uint64 {
	if m != nil {
		return m.CoreID
	}
	return 0
}

type freezeMsgWire FreezeMsg

func (m *freezeMsgWire) Reset()         { *m = freezeMsgWire{} }
func (m *freezeMsgWire) String() string { return proto.CompactTextString(m) }
func (*freezeMsgWire) ProtoMessage()    {}

// ThawMsg allows share transfers of the core again.
type ThawMsg struct {
	CoreID uint64 `protobuf:"varint,1,opt,name=core_id,proto3" json:"core_id,omitempty"`
}

func (m *ThawMsg) Reset()         { *m = ThawMsg{} }
func (m *ThawMsg) String() string { return proto.CompactTextString((*thawMsgWire)(m)) }
func (*ThawMsg) ProtoMessage()    {}

func (m *ThawMsg) Marshal() ([]byte, error) { return proto.Marshal((*thawMsgWire)(m)) }
func (m *ThawMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*thawMsgWire)(m)) }

func (m *ThawMsg) GetCoreID() uint64 {
	if m != nil {
		return m.CoreID
	}
	return 0
}

type thawMsgWire ThawMsg

func (m *thawMsgWire) Reset()         { *m = thawMsgWire{} }
func (m *thawMsgWire) String() string { return proto.CompactTextString(m) }
func (*thawMsgWire) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Balance)(nil), "shares.Balance")
	proto.RegisterType((*Issuance)(nil), "shares.Issuance")
	proto.RegisterType((*TransferMsg)(nil), "shares.TransferMsg")
	proto.RegisterType((*MintMsg)(nil), "shares.MintMsg")
	proto.RegisterType((*BurnMsg)(nil), "shares.BurnMsg")
	proto.RegisterType((*SetBalanceMsg)(nil), "shares.SetBalanceMsg")
	proto.RegisterType((*FreezeMsg)(nil), "shares.FreezeMsg")
	proto.RegisterType((*ThawMsg)(nil), "shares.ThawMsg")
}
