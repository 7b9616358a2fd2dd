package sigs

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/weavetest"
)

// stdTx is a signed transaction carrying a weavetest.Msg.
type stdTx struct {
	weavetest.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*stdTx)(nil)

func newStdTx(payload []byte) *stdTx {
	return &stdTx{
		Tx: weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/sigs", Serialized: payload}},
	}
}

func (tx *stdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *stdTx) GetSignBytes() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}

// signersHandler records the signers it was called with.
type signersHandler struct {
	Signers []weave.Condition
}

var _ weave.Handler = (*signersHandler)(nil)

func (s *signersHandler) Check(ctx weave.Context, store weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &weave.CheckResult{}, nil
}

func (s *signersHandler) Deliver(ctx weave.Context, store weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &weave.DeliverResult{}, nil
}
