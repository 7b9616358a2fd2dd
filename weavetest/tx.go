package weavetest

import "github.com/invarch/weave"

// Tx is a weave.Tx carrying a single message. When Err is set, GetMsg
// fails with it.
type Tx struct {
	Msg weave.Msg
	Err error
}

var _ weave.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (weave.Msg, error) {
	return tx.Msg, tx.Err
}

// Marshal serializes the message only. Tests never decode a Tx.
func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Msg == nil {
		return nil, tx.Err
	}
	return tx.Msg.Marshal()
}

func (tx *Tx) Unmarshal([]byte) error {
	panic("weavetest.Tx cannot be decoded")
}

// Msg is a weave.Msg routed to RoutePath. Its serialized form is the
// Serialized field. When Err is set, validation and serialization fail
// with it.
type Msg struct {
	RoutePath  string
	Serialized []byte
	Err        error
}

var _ weave.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}

func (m *Msg) Unmarshal(raw []byte) error {
	m.Serialized = raw
	return m.Err
}
