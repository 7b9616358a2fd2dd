package cash

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/coin"
	"github.com/invarch/weave/errors"
)

const (
	pathSendMsg = "cash/send"

	maxMemoSize int = 128
)

var _ weave.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return pathSendMsg
}

// Validate makes sure that this is sensible
func (s *SendMsg) Validate() error {
	var errs error
	if s.Amount == nil {
		errs = errors.AppendField(errs, "Amount", errors.ErrEmpty)
	} else if !s.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount", errors.Wrapf(errors.ErrAmount, "non-positive: %s", s.Amount))
	} else {
		errs = errors.AppendField(errs, "Amount", s.Amount.Validate())
	}
	errs = errors.AppendField(errs, "Source", s.Source.Validate())
	errs = errors.AppendField(errs, "Destination", s.Destination.Validate())
	if len(s.Memo) > maxMemoSize {
		errs = errors.AppendField(errs, "Memo", errors.Wrapf(errors.ErrInput, "memo longer than %d", maxMemoSize))
	}
	return errs
}

// NewSendMsg is a helper to quickly build a send message
func NewSendMsg(src, dest weave.Address, amount coin.Coin, memo string) *SendMsg {
	return &SendMsg{
		Source:      src,
		Destination: dest,
		Amount:      &amount,
		Memo:        memo,
	}
}
