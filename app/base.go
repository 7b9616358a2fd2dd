package app

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp is a StoreApp that also processes transactions. Every raw
// transaction is decoded and passed to a single handler, usually a
// decorated router.
type BaseApp struct {
	*StoreApp
	decoder weave.TxDecoder
	handler weave.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp returns an application processing transactions decoded with
// decoder using handler. When debug is set, error responses include the
// stack trace.
func NewBaseApp(store *StoreApp, decoder weave.TxDecoder, handler weave.Handler, debug bool) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx decodes and executes a transaction against the deliver store.
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, ctx, err := b.prepare(txBytes, "deliver_tx")
	if err != nil {
		return weave.DeliverTxError(err, b.debug)
	}
	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return weave.DeliverOrError(res, err, b.debug)
}

// CheckTx decodes and validates a transaction against the check store.
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, ctx, err := b.prepare(txBytes, "check_tx")
	if err != nil {
		return weave.CheckTxError(err, b.debug)
	}
	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return weave.CheckOrError(res, err, b.debug)
}

// prepare decodes the transaction and builds the context it is processed
// in. A panicking decoder is reported as an error.
func (b BaseApp) prepare(txBytes []byte, call string) (tx weave.Tx, ctx weave.Context, err error) {
	if len(txBytes) == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmpty, "transaction")
	}
	defer errors.Recover(&err)
	if tx, err = b.decoder(txBytes); err != nil {
		return nil, nil, err
	}
	ctx = weave.WithLogInfo(b.BlockContext(), "call", call, "path", weave.GetPath(tx))
	return tx, ctx, nil
}
