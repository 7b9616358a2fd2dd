package weavetest

import "github.com/invarch/weave"

// calls counts Check and Deliver invocations of a mock. A call is counted
// before any result is decided, so failing calls are counted as well.
type calls struct {
	check   int
	deliver int
}

// CheckCallCount returns how many times Check was called.
func (c *calls) CheckCallCount() int { return c.check }

// DeliverCallCount returns how many times Deliver was called.
func (c *calls) DeliverCallCount() int { return c.deliver }

// CallCount returns the total number of Check and Deliver calls.
func (c *calls) CallCount() int { return c.check + c.deliver }

// Handler is a mock weave.Handler returning preconfigured results.
//
// When CheckErr or DeliverErr is set, the corresponding method returns it
// together with a nil result.
type Handler struct {
	calls

	CheckResult weave.CheckResult
	CheckErr    error

	DeliverResult weave.DeliverResult
	DeliverErr    error
}

var _ weave.Handler = (*Handler)(nil)

func (h *Handler) Check(weave.Context, weave.KVStore, weave.Tx) (*weave.CheckResult, error) {
	h.check++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(weave.Context, weave.KVStore, weave.Tx) (*weave.DeliverResult, error) {
	h.deliver++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}
