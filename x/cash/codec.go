package cash

import (
	"encoding/json"
	"fmt"
	"strings"

	proto "github.com/gogo/protobuf/proto"
	"github.com/invarch/weave"
	"github.com/invarch/weave/coin"
	"github.com/invarch/weave/errors"
)

// Set may contain Coin of many different currencies.
type Set struct {
	Coins []*coin.Coin `protobuf:"bytes,1,rep,name=coins,proto3" json:"coins,omitempty"`
}

func (m *Set) Reset()         { *m = Set{} }
func (m *Set) String() string { return proto.CompactTextString((*setWire)(m)) }
func (*Set) ProtoMessage()    {}

func (m *Set) Marshal() ([]byte, error) { return proto.Marshal((*setWire)(m)) }
func (m *Set) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*setWire)(m)) }

func (m *Set) GetCoins() []*coin.Coin {
	if m != nil {
		return m.Coins
	}
	return nil
}

type setWire Set

func (m *setWire) Reset()         { *m = setWire{} }
func (m *setWire) String() string { return proto.CompactTextString(m) }
func (*setWire) ProtoMessage()    {}

// SendMsg is a request to move these coins from the given
// source to the given destination address.
type SendMsg struct {
	Source      weave.Address `protobuf:"bytes,1,opt,name=source,proto3,casttype=github.com/invarch/weave.Address" json:"source,omitempty"`
	Destination weave.Address `protobuf:"bytes,2,opt,name=destination,proto3,casttype=github.com/invarch/weave.Address" json:"destination,omitempty"`
	Amount      *coin.Coin    `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	// max length 128 character
	Memo string `protobuf:"bytes,4,opt,name=memo,proto3" json:"memo,omitempty"`
}

func (m *SendMsg) Reset()         { *m = SendMsg{} }
func (m *SendMsg) String() string { return proto.CompactTextString((*sendMsgWire)(m)) }
func (*SendMsg) ProtoMessage()    {}

func (m *SendMsg) Marshal() ([]byte, error) { return proto.Marshal((*sendMsgWire)(m)) }
func (m *SendMsg) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*sendMsgWire)(m)) }

func (m *SendMsg) GetAmount() *coin.Coin {
	if m != nil {
		return m.Amount
	}
	return nil
}

type sendMsgWire SendMsg

func (m *sendMsgWire) Reset()         { *m = sendMsgWire{} }
func (m *sendMsgWire) String() string { return proto.CompactTextString(m) }
func (*sendMsgWire) ProtoMessage()    {}

// FeeAsset selects the currency a core creation fee is paid in.
type FeeAsset int32

const (
	// FeeAssetNative is the native token of the chain.
	FeeAssetNative FeeAsset = 0
	// FeeAssetRelay is the token of the relay chain.
	FeeAssetRelay FeeAsset = 1
)

var FeeAsset_name = map[int32]string{
	0: "NATIVE",
	1: "RELAY",
}

var FeeAsset_value = map[string]int32{
	"NATIVE": 0,
	"RELAY":  1,
}

func (x FeeAsset) String() string {
	return proto.EnumName(FeeAsset_name, int32(x))
}

// Validate returns an error for unknown assets.
func (x FeeAsset) Validate() error {
	if _, ok := FeeAsset_name[int32(x)]; !ok {
		return errors.Wrapf(errors.ErrInput, "unknown fee asset %d", x)
	}
	return nil
}

// MarshalJSON encodes the asset by its name.
func (x FeeAsset) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.String())
}

// UnmarshalJSON accepts both the name and the numeric value.
func (x *FeeAsset) UnmarshalJSON(raw []byte) error {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		v, ok := FeeAsset_value[strings.ToUpper(name)]
		if !ok {
			return errors.Wrapf(errors.ErrInput, "unknown fee asset %q", name)
		}
		*x = FeeAsset(v)
		return nil
	}
	var n int32
	if err := json.Unmarshal(raw, &n); err != nil {
		return errors.Wrap(errors.ErrInput, fmt.Sprintf("fee asset: %s", err))
	}
	*x = FeeAsset(n)
	return x.Validate()
}

func init() {
	proto.RegisterType((*Set)(nil), "cash.Set")
	proto.RegisterType((*SendMsg)(nil), "cash.SendMsg")
	proto.RegisterEnum("cash.FeeAsset", FeeAsset_name, FeeAsset_value)
}
