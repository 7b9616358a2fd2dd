package orm

import (
	proto "github.com/gogo/protobuf/proto"
	"github.com/invarch/weave/errors"
)

// counter is a minimal model used to exercise the buckets.
type counter struct {
	Count int64 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *counter) Reset()         { *m = counter{} }
func (m *counter) String() string { return proto.CompactTextString((*counterWire)(m)) }
func (*counter) ProtoMessage()    {}

func (m *counter) Marshal() ([]byte, error) { return proto.Marshal((*counterWire)(m)) }
func (m *counter) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*counterWire)(m)) }

func (m *counter) Validate() error {
	if m.Count < 0 {
		return errors.Wrap(errors.ErrInput, "negative count")
	}
	return nil
}

func (m *counter) Copy() Model {
	cpy := *m
	return &cpy
}

type counterWire counter

func (m *counterWire) Reset()         { *m = counterWire{} }
func (m *counterWire) String() string { return proto.CompactTextString(m) }
func (*counterWire) ProtoMessage()    {}

// other is a model of a different type than counter.
type other struct {
	counter
}
