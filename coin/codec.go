package coin

import (
	proto "github.com/gogo/protobuf/proto"
)

// Coin can hold any amount between -1 billion and +1 billion
// at steps of 10^-9. It is a fixed-point decimal
// representation and uses integers to avoid rounding
// associated with floats.
type Coin struct {
	// Whole coins, -10^15 < integer < 10^15
	Whole int64 `protobuf:"varint,1,opt,name=whole,proto3" json:"whole,omitempty"`
	// Billionth of coins. 0 <= abs(fractional) < 10^9
	// If fractional != 0, must have same sign as integer
	Fractional int64 `protobuf:"varint,2,opt,name=fractional,proto3" json:"fractional,omitempty"`
	// Ticker is 3-4 upper-case letters
	Ticker string `protobuf:"bytes,3,opt,name=ticker,proto3" json:"ticker,omitempty"`
}

func (m *Coin) Reset()      { *m = Coin{} }
func (*Coin) ProtoMessage() {}

func (m *Coin) Marshal() ([]byte, error) { return proto.Marshal((*coinWire)(m)) }
func (m *Coin) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*coinWire)(m)) }

type coinWire Coin

func (m *coinWire) Reset()         { *m = coinWire{} }
func (m *coinWire) String() string { return proto.CompactTextString(m) }
func (*coinWire) ProtoMessage()    {}

func (m *Coin) GetWhole() int64 {
	if m != nil {
		return m.Whole
	}
	return 0
}

func (m *Coin) GetFractional() int64 {
	if m != nil {
		return m.Fractional
	}
	return 0
}

func (m *Coin) GetTicker() string {
	if m != nil {
		return m.Ticker
	}
	return ""
}

func init() {
	proto.RegisterType((*Coin)(nil), "coin.Coin")
}
