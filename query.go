package weave

import (
	"fmt"
	"sort"
	"strings"
)

// Query modifiers understood by all query handlers. A modifier follows
// the path after a question mark, for example "/cores?prefix".
const (
	KeyQueryMod    = ""
	PrefixQueryMod = "prefix"
)

// Model is a single key-value pair returned by a query.
type Model struct {
	Key   []byte
	Value []byte
}

// Pair returns a model of the given key and value.
func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler answers queries for a single path.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRegister adds the query handlers of an extension to a router.
type QueryRegister func(QueryRouter)

// QueryRouter dispatches queries to the handler registered for their
// path. Paths always start with a slash; one is added on registration if
// missing.
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter returns a router without any routes.
func NewQueryRouter() QueryRouter {
	return QueryRouter{routes: make(map[string]QueryHandler)}
}

// RegisterAll calls every register function with this router.
func (r QueryRouter) RegisterAll(qr ...QueryRegister) {
	for _, register := range qr {
		register(r)
	}
}

// Register adds h under path. It panics if the path is already taken.
func (r QueryRouter) Register(path string, h QueryHandler) {
	path = queryPath(path)
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("query path %q already registered", path))
	}
	r.routes[path] = h
}

// Handler returns the handler registered for path or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[queryPath(path)]
}

// Paths returns all registered paths in lexical order.
func (r QueryRouter) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func queryPath(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
