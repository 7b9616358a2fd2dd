package app

import (
	"fmt"
	"regexp"

	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
)

// isPath is the pattern every message path must match: an extension
// name and a message name separated by a slash.
var isPath = regexp.MustCompile(`^[a-z0-9_]+/[a-z0-9_]+$`).MatchString

// Router dispatches a transaction to the handler registered for the path
// of its message.
type Router struct {
	routes map[string]weave.Handler
}

var _ weave.Registry = (*Router)(nil)
var _ weave.Handler = (*Router)(nil)

// NewRouter returns a router without any routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]weave.Handler, 16),
	}
}

// Handle registers a handler for all messages of the given type. It
// panics if the path is invalid or already registered.
func (r *Router) Handle(m weave.Msg, h weave.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid message path %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the handler registered for the path or a handler
// that always fails with ErrNotFound.
func (r *Router) Handler(path string) weave.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches the transaction to the handler of its message.
func (r *Router) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg.Path()).Check(ctx, db, tx)
}

// Deliver dispatches the transaction to the handler of its message.
func (r *Router) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg.Path()).Deliver(ctx, db, tx)
}

type notFoundHandler string

func (path notFoundHandler) Check(weave.Context, weave.KVStore, weave.Tx) (*weave.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(weave.Context, weave.KVStore, weave.Tx) (*weave.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
