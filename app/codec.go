package app

import proto "github.com/gogo/protobuf/proto"

// ResultSet contains a list of keys or values
type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *ResultSet) Reset()         { *m = ResultSet{} }
func (m *ResultSet) String() string { return proto.CompactTextString((*resultSetWire)(m)) }
func (*ResultSet) ProtoMessage()    {}

func (m *ResultSet) Marshal() ([]byte, error) { return proto.Marshal((*resultSetWire)(m)) }
func (m *ResultSet) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*resultSetWire)(m)) }

func (m *ResultSet) GetResults() [][]byte {
	if m != nil {
		return m.Results
	}
	return nil
}

type resultSetWire ResultSet

func (m *resultSetWire) Reset()         { *m = resultSetWire{} }
func (m *resultSetWire) String() string { return proto.CompactTextString(m) }
func (*resultSetWire) ProtoMessage()    {}

func init() {
	proto.RegisterType((*ResultSet)(nil), "app.ResultSet")
}
