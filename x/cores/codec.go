package cores

import (
	proto "github.com/gogo/protobuf/proto"
	"github.com/invarch/weave"
	"github.com/invarch/weave/coin"
	"github.com/invarch/weave/x/cash"
)

// Threshold is either All (the whole issuance) or a fraction of the
// issuance in (0, 1].
type Threshold struct {
	All      bool            `protobuf:"varint,1,opt,name=all,proto3" json:"all,omitempty"`
	Fraction *weave.Fraction `protobuf:"bytes,2,opt,name=fraction,proto3" json:"fraction,omitempty"`
}

func (m *Threshold) Reset()      { *m = Threshold{} }
func (*Threshold) ProtoMessage() {}

func (m *Threshold) Marshal() ([]byte, error) { return proto.Marshal((*thresholdWire)(m)) }
func (m *Threshold) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*thresholdWire)(m)) }

func (m *Threshold) GetAll() bool {
	if m != nil {
		return m.All
	}
	return false
}

func (m *Threshold) GetFraction() *weave.Fraction {
	if m != nil {
		return m.Fraction
	}
	return nil
}

type thresholdWire Threshold

func (m *thresholdWire) Reset()         { *m = thresholdWire{} }
func (m *thresholdWire) String() string { return proto.CompactTextString(m) }
func (*thresholdWire) ProtoMessage()    {}

// Core is a shared account governed by the holders of its shares.
type Core struct {
	ID uint64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	// Account is derived from the id, no private key exists for it.
	Account          weave.Address `protobuf:"bytes,2,opt,name=account,proto3,casttype=github.com/invarch/weave.Address" json:"account,omitempty"`
	Metadata         []byte        `protobuf:"bytes,3,opt,name=metadata,proto3" json:"metadata,omitempty"`
	MinimumSupport   *Threshold    `protobuf:"bytes,4,opt,name=minimum_support,proto3" json:"minimum_support,omitempty"`
	RequiredApproval *Threshold    `protobuf:"bytes,5,opt,name=required_approval,proto3" json:"required_approval,omitempty"`
	// Frozen blocks share transfers.
	Frozen bool `protobuf:"varint,6,opt,name=frozen,proto3" json:"frozen,omitempty"`
}

func (m *Core) Reset()         { *m = Core{} }
func (m *Core) String() string { return proto.CompactTextString((*coreWire)(m)) }
func (*Core) ProtoMessage()    {}

func (m *Core) Marshal() ([]byte, error) { return proto.Marshal((*coreWire)(m)) }
func (m *Core) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*coreWire)(m)) }

func (m *Core) GetID() uint64 {
	if m != nil {
		return m.ID
	}
	return 0
}

func (m *Core) GetAccount() weave.Address {
	if m != nil {
		return m.Account
	}
	return nil
}

func (m *Core) GetMetadata() []byte {
	if m != nil {
		return m.Metadata
	}
	return nil
}

func (m *Core) GetMinimumSupport() *Threshold {
	if m != nil {
		return m.MinimumSupport
	}
	return nil
}

func (m *Core) GetRequiredApproval() *Threshold {
	if m != nil {
		return m.RequiredApproval
	}
	return nil
}

func (m *Core) GetFrozen() bool {
	if m != nil {
		return m.Frozen
	}
	return false
}

type coreWire Core

func (m *coreWire) Reset()         { *m = coreWire{} }
func (m *coreWire) String() string { return proto.CompactTextString(m) }
func (*coreWire) ProtoMessage()    {}

// CoreRef is the value of the account to core reverse index.
type CoreRef struct {
	CoreID uint64 `protobuf:"varint,1,opt,name=core_id,proto3" json:"core_id,omitempty"`
}

func (m *CoreRef) Reset()         { *m = CoreRef{} }
func (m *CoreRef) String() string { return proto.CompactTextString((*coreRefWire)(m)) }
func (*CoreRef) ProtoMessage()    {}

func (m *CoreRef) Marshal() ([]byte, error) { return proto.Marshal((*coreRefWire)(m)) }
func (m *CoreRef) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*coreRefWire)(m)) }

func (m *CoreRef) GetCoreID() uint64 {
	if m != nil {
		return m.CoreID
	}
	return 0
}

type coreRefWire CoreRef

func (m *coreRefWire) Reset()         { *m = coreRefWire{} }
func (m *coreRefWire) String() string { return proto.CompactTextString(m) }
func (*coreRefWire) ProtoMessage()    {}

// SubAsset is an additional share class of a core.
type SubAsset struct {
	CoreID     uint64 `protobuf:"varint,1,opt,name=core_id,proto3" json:"core_id,omitempty"`
	SubAssetID uint32 `protobuf:"varint,2,opt,name=sub_asset_id,proto3" json:"sub_asset_id,omitempty"`
	Metadata   []byte `protobuf:"bytes,3,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *SubAsset) Reset()         { *m = SubAsset{} }
func (m *SubAsset) String() string { return proto.CompactTextString((*subAssetWire)(m)) }
func (*SubAsset) ProtoMessage()    {}

func (m *SubAsset) Marshal() ([]byte, error) { return proto.Marshal((*subAssetWire)(m)) }
func (m *SubAsset) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*subAssetWire)(m)) }

func (m *SubAsset) GetCoreID() uint64 {
	if m != nil {
		return m.CoreID
	}
	return 0
}

func (m *SubAsset) GetSubAssetID() uint32 {
	if m != nil {
		return m.SubAssetID
	}
	return 0
}

func (m *SubAsset) GetMetadata() []byte {
	if m != nil {
		return m.Metadata
	}
	return nil
}

type subAssetWire SubAsset

func (m *subAssetWire) Reset()         { *m = subAssetWire{} }
func (m *subAssetWire) String() string { return proto.CompactTextString(m) }
func (*subAssetWire) ProtoMessage()    {}

// Configuration is the on-chain configuration of the cores extension.
type Configuration struct {
	Owner            weave.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/invarch/weave.Address" json:"owner,omitempty"`
	MaxMetadata      uint32        `protobuf:"varint,2,opt,name=max_metadata,proto3" json:"max_metadata,omitempty"`
	CoreSeedBalance  uint64        `protobuf:"varint,3,opt,name=core_seed_balance,proto3" json:"core_seed_balance,omitempty"`
	CreationFee      *coin.Coin    `protobuf:"bytes,4,opt,name=creation_fee,proto3" json:"creation_fee,omitempty"`
	RelayCreationFee *coin.Coin    `protobuf:"bytes,5,opt,name=relay_creation_fee,proto3" json:"relay_creation_fee,omitempty"`
	FeeCollector     weave.Address `protobuf:"bytes,6,opt,name=fee_collector,proto3,casttype=github.com/invarch/weave.Address" json:"fee_collector,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString((*configurationWire)(m)) }
func (*Configuration) ProtoMessage()    {}

func (m *Configuration) Marshal() ([]byte, error) { return proto.Marshal((*configurationWire)(m)) }
func (m *Configuration) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*configurationWire)(m)) }

func (m *Configuration) GetOwner() weave.Address {
	if m != nil {
		return m.Owner
	}
	return nil
}

func (m *Configuration) GetMaxMetadata() uint32 {
	if m != nil {
		return m.MaxMetadata
	}
	return 0
}

func (m *Configuration) GetCoreSeedBalance() uint64 {
	if m != nil {
		return m.CoreSeedBalance
	}
	return 0
}

func (m *Configuration) GetCreationFee() *coin.Coin {
	if m != nil {
		return m.CreationFee
	}
	return nil
}

func (m *Configuration) GetRelayCreationFee() *coin.Coin {
	if m != nil {
		return m.RelayCreationFee
	}
	return nil
}

func (m *Configuration) GetFeeCollector() weave.Address {
	if m != nil {
		return m.FeeCollector
	}
	return nil
}

type configurationWire Configuration

func (m *configurationWire) Reset()         { *m = configurationWire{} }
func (m *configurationWire) String() string { return proto.CompactTextString(m) }
func (*configurationWire) ProtoMessage()    {}

// UpdateConfigurationMsg patches the configuration. Only the owner can
// sign it.
type UpdateConfigurationMsg struct {
	Patch *Configuration `protobuf:"bytes,1,opt,name=patch,proto3" json:"patch,omitempty"`
}

func (m *UpdateConfigurationMsg) Reset() { *m = UpdateConfigurationMsg{} }
func (m *UpdateConfigurationMsg) String() string {
	return proto.CompactTextString((*updateConfigurationMsgWire)(m))
}
func (*UpdateConfigurationMsg) ProtoMessage() {}

func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*updateConfigurationMsgWire)(m))
}
func (m *UpdateConfigurationMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*updateConfigurationMsgWire)(m))
}

func (m *UpdateConfigurationMsg) GetPatch() *Configuration {
	if m != nil {
		return m.Patch
	}
	return nil
}

type updateConfigurationMsgWire UpdateConfigurationMsg

func (m *updateConfigurationMsgWire) Reset()         { *m = updateConfigurationMsgWire{} }
func (m *updateConfigurationMsgWire) String() string { return proto.CompactTextString(m) }
func (*updateConfigurationMsgWire) ProtoMessage()    {}

// CreateCoreMsg creates a new core. The main signer pays the creation
// fee and receives the seed shares.
type CreateCoreMsg struct {
	Metadata         []byte        `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	MinimumSupport   *Threshold    `protobuf:"bytes,2,opt,name=minimum_support,proto3" json:"minimum_support,omitempty"`
	RequiredApproval *Threshold    `protobuf:"bytes,3,opt,name=required_approval,proto3" json:"required_approval,omitempty"`
	FeeAsset         cash.FeeAsset `protobuf:"varint,4,opt,name=fee_asset,proto3,enum=cash.FeeAsset" json:"fee_asset,omitempty"`
}

func (m *CreateCoreMsg) Reset()         { *m = CreateCoreMsg{} }
func (m *CreateCoreMsg) String() string { return proto.CompactTextString((*createCoreMsgWire)(m)) }
func (*CreateCoreMsg) ProtoMessage()    {}

func (m *CreateCoreMsg) Marshal() ([]byte, error) { return proto.Marshal((*createCoreMsgWire)(m)) }
func (m *CreateCoreMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*createCoreMsgWire)(m)) }

func (m *CreateCoreMsg) GetMetadata() []byte {
	if m != nil {
		return m.Metadata
	}
	return nil
}

func (m *CreateCoreMsg) GetMinimumSupport() *Threshold {
	if m != nil {
		return m.MinimumSupport
	}
	return nil
}

func (m *CreateCoreMsg) GetRequiredApproval() *Threshold {
	if m != nil {
		return m.RequiredApproval
	}
	return nil
}

func (m *CreateCoreMsg) GetFeeAsset() cash.FeeAsset {
	if m != nil {
		return m.FeeAsset
	}
	return cash.FeeAssetNative
}

type createCoreMsgWire CreateCoreMsg

func (m *createCoreMsgWire) Reset()         { *m = createCoreMsgWire{} }
func (m *createCoreMsgWire) String() string { return proto.CompactTextString(m) }
func (*createCoreMsgWire) ProtoMessage()    {}

// BytesValue wraps an optional bytes value.
type BytesValue struct {
	Value []byte `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *BytesValue) Reset()         { *m = BytesValue{} }
func (m *BytesValue) String() string { return proto.CompactTextString((*bytesValueWire)(m)) }
func (*BytesValue) ProtoMessage()    {}

func (m *BytesValue) Marshal() ([]byte, error) { return proto.Marshal((*bytesValueWire)(m)) }
func (m *BytesValue) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*bytesValueWire)(m)) }

func (m *BytesValue) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

type bytesValueWire BytesValue

func (m *bytesValueWire) Reset()         { *m = bytesValueWire{} }
func (m *bytesValueWire) String() string { return proto.CompactTextString(m) }
func (*bytesValueWire) ProtoMessage()    {}

// BoolValue wraps an optional bool value.
type BoolValue struct {
	Value bool `protobuf:"varint,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *BoolValue) Reset()         { *m = BoolValue{} }
func (m *BoolValue) String() string { return proto.CompactTextString((*boolValueWire)(m)) }
func (*BoolValue) ProtoMessage()    {}

func (m *BoolValue) Marshal() ([]byte, error) { return proto.Marshal((*boolValueWire)(m)) }
func (m *BoolValue) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*boolValueWire)(m)) }

func (m *BoolValue) GetValue() bool {
	if m != nil {
		return m.Value
	}
	return false
}

type boolValueWire BoolValue

func (m *boolValueWire) Reset()         { *m = boolValueWire{} }
func (m *boolValueWire) String() string { return proto.CompactTextString(m) }
func (*boolValueWire) ProtoMessage()    {}

// SetParametersMsg updates a core. Unset fields are left unchanged.
// It can only be executed with the origin of the core.
type SetParametersMsg struct {
	CoreID           uint64      `protobuf:"varint,1,opt,name=core_id,proto3" json:"core_id,omitempty"`
	Metadata         *BytesValue `protobuf:"bytes,2,opt,name=metadata,proto3" json:"metadata,omitempty"`
	MinimumSupport   *Threshold  `protobuf:"bytes,3,opt,name=minimum_support,proto3" json:"minimum_support,omitempty"`
	RequiredApproval *Threshold  `protobuf:"bytes,4,opt,name=required_approval,proto3" json:"required_approval,omitempty"`
	Frozen           *BoolValue  `protobuf:"bytes,5,opt,name=frozen,proto3" json:"frozen,omitempty"`
}

func (m *SetParametersMsg) Reset() { *m = SetParametersMsg{} }
func (m *SetParametersMsg) String() string {
	return proto.CompactTextString((*setParametersMsgWire)(m))
}
func (*SetParametersMsg) ProtoMessage() {}

func (m *SetParametersMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*setParametersMsgWire)(m))
}
func (m *SetParametersMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*setParametersMsgWire)(m))
}

func (m *SetParametersMsg) GetCoreID() uint64 {
	if m != nil {
		return m.CoreID
	}
	return 0
}

func (m *SetParametersMsg) GetMetadata() *BytesValue {
	if m != nil {
		return m.Metadata
	}
	return nil
}

func (m *SetParametersMsg) GetMinimumSupport() *Threshold {
	if m != nil {
		return m.MinimumSupport
	}
	return nil
}

func (m *SetParametersMsg) GetRequiredApproval() *Threshold {
	if m != nil {
		return m.RequiredApproval
	}
	return nil
}

func (m *SetParametersMsg) GetFrozen() *BoolValue {
	if m != nil {
		return m.Frozen
	}
	return nil
}

type setParametersMsgWire SetParametersMsg

func (m *setParametersMsgWire) Reset()         { *m = setParametersMsgWire{} }
func (m *setParametersMsgWire) String() string { return proto.CompactTextString(m) }
func (*setParametersMsgWire) ProtoMessage()    {}

// RemarkMsg does nothing but emitting an event on behalf of the core.
type RemarkMsg struct {
	CoreID uint64 `protobuf:"varint,1,opt,name=core_id,proto3" json:"core_id,omitempty"`
	Remark []byte `protobuf:"bytes,2,opt,name=remark,proto3" json:"remark,omitempty"`
}

func (m *RemarkMsg) Reset()         { *m = RemarkMsg{} }
func (m *RemarkMsg) String() string { return proto.CompactTextString((*remarkMsgWire)(m)) }
func (*RemarkMsg) ProtoMessage()    {}

func (m *RemarkMsg) Marshal() ([]byte, error) { return proto.Marshal((*remarkMsgWire)(m)) }
func (m *RemarkMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*remarkMsgWire)(m)) }

func (m *RemarkMsg) GetCoreID() uint64 {
	if m != nil {
		return m.CoreID
	}
	return 0
}

func (m *RemarkMsg) GetRemark() []byte {
	if m != nil {
		return m.Remark
	}
	return nil
}

type remarkMsgWire RemarkMsg

func (m *remarkMsgWire) Reset()         { *m = remarkMsgWire{} }
func (m *remarkMsgWire) String() string { return proto.CompactTextString(m) }
func (*remarkMsgWire) ProtoMessage()    {}

// SubAssetEndowment declares a new share class and its first holder.
type SubAssetEndowment struct {
	SubAssetID uint32        `protobuf:"varint,1,opt,name=sub_asset_id,proto3" json:"sub_asset_id,omitempty"`
	Metadata   []byte        `protobuf:"bytes,2,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Owner      weave.Address `protobuf:"bytes,3,opt,name=owner,proto3,casttype=github.com/invarch/weave.Address" json:"owner,omitempty"`
	Amount     uint64        `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *SubAssetEndowment) Reset() { *m = SubAssetEndowment{} }
func (m *SubAssetEndowment) String() string {
	return proto.CompactTextString((*subAssetEndowmentWire)(m))
}
func (*SubAssetEndowment) ProtoMessage() {}

func (m *SubAssetEndowment) Marshal() ([]byte, error) {
	return proto.Marshal((*subAssetEndowmentWire)(m))
}
func (m *SubAssetEndowment) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*subAssetEndowmentWire)(m))
}

func (m *SubAssetEndowment) GetSubAssetID() uint32 {
	if m != nil {
		return m.SubAssetID
	}
	return 0
}

func (m *SubAssetEndowment) GetMetadata() []byte {
	if m != nil {
		return m.Metadata
	}
	return nil
}

func (m *SubAssetEndowment) GetOwner() weave.Address {
	if m != nil {
		return m.Owner
	}
	return nil
}

func (m *SubAssetEndowment) GetAmount() uint64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type subAssetEndowmentWire SubAssetEndowment

func (m *subAssetEndowmentWire) Reset()         { *m = subAssetEndowmentWire{} }
func (m *subAssetEndowmentWire) String() string { return proto.CompactTextString(m) }
func (*subAssetEndowmentWire) ProtoMessage()    {}

// CreateSubAssetsMsg registers new share classes of a core and mints
// their initial endowments.
type CreateSubAssetsMsg struct {
	CoreID    uint64               `protobuf:"varint,1,opt,name=core_id,proto3" json:"core_id,omitempty"`
	SubAssets []*SubAssetEndowment `protobuf:"bytes,2,rep,name=sub_assets,proto3" json:"sub_assets,omitempty"`
}

func (m *CreateSubAssetsMsg) Reset() { *m = CreateSubAssetsMsg{} }
func (m *CreateSubAssetsMsg) String() string {
	return proto.CompactTextString((*createSubAssetsMsgWire)(m))
}
func (*CreateSubAssetsMsg) ProtoMessage() {}

func (m *CreateSubAssetsMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*createSubAssetsMsgWire)(m))
}
func (m *CreateSubAssetsMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*createSubAssetsMsgWire)(m))
}

func (m *CreateSubAssetsMsg) GetCoreID() uint64 {
	if m != nil {
		return m.CoreID
	}
	return 0
}

func (m *CreateSubAssetsMsg) GetSubAssets() []*SubAssetEndowment {
	if m != nil {
		return m.SubAssets
	}
	return nil
}

type createSubAssetsMsgWire CreateSubAssetsMsg

func (m *createSubAssetsMsgWire) Reset()         { *m = createSubAssetsMsgWire{} }
func (m *createSubAssetsMsgWire) String() string { return proto.CompactTextString(m) }
func (*createSubAssetsMsgWire) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Threshold)(nil), "cores.Threshold")
	proto.RegisterType((*Core)(nil), "cores.Core")
	proto.RegisterType((*CoreRef)(nil), "cores.CoreRef")
	proto.RegisterType((*SubAsset)(nil), "cores.SubAsset")
	proto.RegisterType((*Configuration)(nil), "cores.Configuration")
	proto.RegisterType((*UpdateConfigurationMsg)(nil), "cores.UpdateConfigurationMsg")
	proto.RegisterType((*CreateCoreMsg)(nil), "cores.CreateCoreMsg")
	proto.RegisterType((*BytesValue)(nil), "cores.BytesValue")
	proto.RegisterType((*BoolValue)(nil), "cores.BoolValue")
	proto.RegisterType((*SetParametersMsg)(nil), "cores.SetParametersMsg")
	proto.RegisterType((*RemarkMsg)(nil), "cores.RemarkMsg")
	proto.RegisterType((*SubAssetEndowment)(nil), "cores.SubAssetEndowment")
	proto.RegisterType((*CreateSubAssetsMsg)(nil), "cores.CreateSubAssetsMsg")
}
