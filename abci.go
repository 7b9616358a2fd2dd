package weave

import (
	"github.com/invarch/weave/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// DeliverResult is the outcome of a successfully delivered transaction.
// Failures are always returned as errors.
type DeliverResult struct {
	// Data is a machine-parseable return value, like the id of a created
	// core or the data returned by an executed call.
	Data []byte
	// Log is human-readable informational string
	Log string
	// Tags are indexed by tendermint to search the transaction history.
	Tags []common.KVPair
	// GasUsed is not charged yet.
	GasUsed int64
}

// ToABCI converts the result into an abci response
func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	return abci.ResponseDeliverTx{
		Data:    d.Data,
		Log:     d.Log,
		Tags:    d.Tags,
		GasUsed: d.GasUsed,
	}
}

// CheckResult is the outcome of a successfully checked transaction.
type CheckResult struct {
	// Data is a machine-parseable return value
	Data []byte
	// Log is human-readable informational string
	Log string
	// GasAllocated is the maximum units of work we allow this tx to perform
	GasAllocated int64
}

// ToABCI converts the result into an abci response
func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{
		Data:      c.Data,
		Log:       c.Log,
		GasWanted: c.GasAllocated,
	}
}

// DeliverOrError returns an abci response for DeliverTx. A successful
// call without a result is answered with an empty response.
func DeliverOrError(result *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	switch {
	case err != nil:
		return DeliverTxError(err, debug)
	case result == nil:
		return abci.ResponseDeliverTx{}
	default:
		return result.ToABCI()
	}
}

// CheckOrError returns an abci response for CheckTx. A successful call
// without a result is answered with an empty response.
func CheckOrError(result *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	switch {
	case err != nil:
		return CheckTxError(err, debug)
	case result == nil:
		return abci.ResponseCheckTx{}
	default:
		return result.ToABCI()
	}
}

// ParseDeliverOrError is the inverse of DeliverOrError. A failed
// transaction is returned as the registered error of its code.
func ParseDeliverOrError(res abci.ResponseDeliverTx) (*DeliverResult, error) {
	if res.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(res.Code, res.Log)
	}
	return &DeliverResult{
		Data:    res.Data,
		Log:     res.Log,
		Tags:    res.Tags,
		GasUsed: res.GasUsed,
	}, nil
}

// DeliverTxError converts any error into a abci.ResponseDeliverTx.
// Only in debug mode the full error information is returned.
func DeliverTxError(err error, debug bool) abci.ResponseDeliverTx {
	code, log := errorInfo("cannot deliver tx", err, debug)
	return abci.ResponseDeliverTx{Code: code, Log: log}
}

// CheckTxError converts any error into a abci.ResponseCheckTx.
// Only in debug mode the full error information is returned.
func CheckTxError(err error, debug bool) abci.ResponseCheckTx {
	code, log := errorInfo("cannot check tx", err, debug)
	return abci.ResponseCheckTx{Code: code, Log: log}
}

func errorInfo(stage string, err error, debug bool) (uint32, string) {
	code, log := errors.ABCIInfo(err, debug)
	if code != errors.SuccessABCICode {
		log = stage + ": " + log
	}
	return code, log
}
