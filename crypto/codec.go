package crypto

import (
	proto "github.com/gogo/protobuf/proto"
)

// PublicKey is an ed25519 public key.
type PublicKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

func (m *PublicKey) Reset()         { *m = PublicKey{} }
func (m *PublicKey) String() string { return proto.CompactTextString((*publicKeyWire)(m)) }
func (*PublicKey) ProtoMessage()    {}

func (m *PublicKey) Marshal() ([]byte, error) { return proto.Marshal((*publicKeyWire)(m)) }
func (m *PublicKey) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*publicKeyWire)(m)) }

func (m *PublicKey) GetEd25519() []byte {
	if m != nil {
		return m.Ed25519
	}
	return nil
}

type publicKeyWire PublicKey

func (m *publicKeyWire) Reset()         { *m = publicKeyWire{} }
func (m *publicKeyWire) String() string { return proto.CompactTextString(m) }
func (*publicKeyWire) ProtoMessage()    {}

// PrivateKey is an ed25519 private key.
type PrivateKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

func (m *PrivateKey) Reset()         { *m = PrivateKey{} }
func (m *PrivateKey) String() string { return "crypto.PrivateKey{...}" }
func (*PrivateKey) ProtoMessage()    {}

func (m *PrivateKey) Marshal() ([]byte, error) { return proto.Marshal((*privateKeyWire)(m)) }
func (m *PrivateKey) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*privateKeyWire)(m)) }

func (m *PrivateKey) GetEd25519() []byte {
	if m != nil {
		return m.Ed25519
	}
	return nil
}

type privateKeyWire PrivateKey

func (m *privateKeyWire) Reset()         { *m = privateKeyWire{} }
func (m *privateKeyWire) String() string { return proto.CompactTextString(m) }
func (*privateKeyWire) ProtoMessage()    {}

// Signature is an ed25519 signature.
type Signature struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

func (m *Signature) Reset()         { *m = Signature{} }
func (m *Signature) String() string { return proto.CompactTextString((*signatureWire)(m)) }
func (*Signature) ProtoMessage()    {}

func (m *Signature) Marshal() ([]byte, error) { return proto.Marshal((*signatureWire)(m)) }
func (m *Signature) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*signatureWire)(m)) }

func (m *Signature) GetEd25519() []byte {
	if m != nil {
		return m.Ed25519
	}
	return nil
}

type signatureWire Signature

func (m *signatureWire) Reset()         { *m = signatureWire{} }
func (m *signatureWire) String() string { return proto.CompactTextString(m) }
func (*signatureWire) ProtoMessage()    {}

func init() {
	proto.RegisterType((*PublicKey)(nil), "crypto.PublicKey")
	proto.RegisterType((*PrivateKey)(nil), "crypto.PrivateKey")
	proto.RegisterType((*Signature)(nil), "crypto.Signature")
}
