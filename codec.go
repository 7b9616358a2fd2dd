package weave

import (
	proto "github.com/gogo/protobuf/proto"
)

// Fraction represents a rational number: numerator / denominator.
type Fraction struct {
	// The top number in a fraction.
	Numerator uint32 `protobuf:"varint,1,opt,name=numerator,proto3" json:"numerator,omitempty"`
	// The bottom number
	Denominator uint32 `protobuf:"varint,2,opt,name=denominator,proto3" json:"denominator,omitempty"`
}

func (m *Fraction) Reset()      { *m = Fraction{} }
func (*Fraction) ProtoMessage() {}

func (m *Fraction) Marshal() ([]byte, error) { return proto.Marshal((*fractionWire)(m)) }
func (m *Fraction) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*fractionWire)(m)) }

// fractionWire has the layout of Fraction without its Marshal method,
// so the reflection based protobuf codec does not call back into it.
type fractionWire Fraction

func (m *fractionWire) Reset()         { *m = fractionWire{} }
func (m *fractionWire) String() string { return proto.CompactTextString(m) }
func (*fractionWire) ProtoMessage()    {}

func (m *Fraction) GetNumerator() uint32 {
	if m != nil {
		return m.Numerator
	}
	return 0
}

func (m *Fraction) GetDenominator() uint32 {
	if m != nil {
		return m.Denominator
	}
	return 0
}

func init() {
	proto.RegisterType((*Fraction)(nil), "weave.Fraction")
}
