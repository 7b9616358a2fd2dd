package sigs

import (
	proto "github.com/gogo/protobuf/proto"
	"github.com/invarch/weave/crypto"
)

// UserData just stores the data and is used for serialization.
// Key is the Address (PubKey.Condition().Address())
type UserData struct {
	Pubkey   *crypto.PublicKey `protobuf:"bytes,1,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Sequence int64             `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

func (m *UserData) Reset()         { *m = UserData{} }
func (m *UserData) String() string { return proto.CompactTextString((*userDataWire)(m)) }
func (*UserData) ProtoMessage()    {}

func (m *UserData) Marshal() ([]byte, error) { return proto.Marshal((*userDataWire)(m)) }
func (m *UserData) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*userDataWire)(m)) }

func (m *UserData) GetPubkey() *crypto.PublicKey {
	if m != nil {
		return m.Pubkey
	}
	return nil
}

func (m *UserData) GetSequence() int64 {
	if m != nil {
		return m.Sequence
	}
	return 0
}

type userDataWire UserData

func (m *userDataWire) Reset()         { *m = userDataWire{} }
func (m *userDataWire) String() string { return proto.CompactTextString(m) }
func (*userDataWire) ProtoMessage()    {}

// StdSignature represents the signature, the identity of the signer
// (the Pubkey), and a sequence number to prevent replay attacks.
//
// A given signer must submit transactions with the sequence number
// increasing by 1 each time (starting at 0)
type StdSignature struct {
	Sequence  int64             `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Pubkey    *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature *crypto.Signature `protobuf:"bytes,4,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *StdSignature) Reset()         { *m = StdSignature{} }
func (m *StdSignature) String() string { return proto.CompactTextString((*stdSignatureWire)(m)) }
func (*StdSignature) ProtoMessage()    {}

func (m *StdSignature) Marshal() ([]byte, error) { return proto.Marshal((*stdSignatureWire)(m)) }
func (m *StdSignature) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*stdSignatureWire)(m))
}

func (m *StdSignature) GetSequence() int64 {
	if m != nil {
		return m.Sequence
	}
	return 0
}

func (m *StdSignature) GetPubkey() *crypto.PublicKey {
	if m != nil {
		return m.Pubkey
	}
	return nil
}

func (m *StdSignature) GetSignature() *crypto.Signature {
	if m != nil {
		return m.Signature
	}
	return nil
}

type stdSignatureWire StdSignature

func (m *stdSignatureWire) Reset()         { *m = stdSignatureWire{} }
func (m *stdSignatureWire) String() string { return proto.CompactTextString(m) }
func (*stdSignatureWire) ProtoMessage()    {}

// BumpSequenceMsg increments the nonce of the main signer by
// Increment plus one.
type BumpSequenceMsg struct {
	Increment uint32 `protobuf:"varint,1,opt,name=increment,proto3" json:"increment,omitempty"`
}

func (m *BumpSequenceMsg) Reset()         { *m = BumpSequenceMsg{} }
func (m *BumpSequenceMsg) String() string { return proto.CompactTextString((*bumpSequenceMsgWire)(m)) }
func (*BumpSequenceMsg) ProtoMessage()    {}

func (m *BumpSequenceMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*bumpSequenceMsgWire)(m))
}
func (m *BumpSequenceMsg) Unmarshal(b []byte) error {
	return proto.Unmarshal(b, (*bumpSequenceMsgWire)(m))
}

type bumpSequenceMsgWire BumpSequenceMsg

func (m *bumpSequenceMsgWire) Reset()         { *m = bumpSequenceMsgWire{} }
func (m *bumpSequenceMsgWire) String() string { return proto.CompactTextString(m) }
func (*bumpSequenceMsgWire) ProtoMessage()    {}

func init() {
	proto.RegisterType((*UserData)(nil), "sigs.UserData")
	proto.RegisterType((*StdSignature)(nil), "sigs.StdSignature")
	proto.RegisterType((*BumpSequenceMsg)(nil), "sigs.BumpSequenceMsg")
}
