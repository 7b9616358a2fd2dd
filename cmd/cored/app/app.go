/*
Package app links together all the various components
to construct the cored app.
*/
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/invarch/weave"
	"github.com/invarch/weave/app"
	"github.com/invarch/weave/gconf"
	"github.com/invarch/weave/store/iavl"
	"github.com/invarch/weave/x"
	"github.com/invarch/weave/x/cash"
	"github.com/invarch/weave/x/cores"
	"github.com/invarch/weave/x/multisig"
	"github.com/invarch/weave/x/shares"
	"github.com/invarch/weave/x/sigs"
	"github.com/invarch/weave/x/utils"
)

// Authenticator returns the authentication used by the chain: public key
// signatures, or the condition of a core while one of its proposals
// executes.
func Authenticator() x.Authenticator {
	return multisig.NewAuthenticator(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewEventTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns the router dispatching all messages of the chain. Calls
// approved by the holders of a core are dispatched by the same router.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	wallets := cash.NewController()
	reg := cores.NewRegistry()
	ledger := shares.NewController(reg)

	cash.RegisterRoutes(r, authFn, wallets)
	sigs.RegisterRoutes(r, authFn)
	shares.RegisterRoutes(r, authFn, cores.NewOrigin(authFn), ledger)
	cores.RegisterRoutes(r, authFn, reg, ledger, wallets,
		cash.NewCollectorFeeHandler(wallets, cores.FeeCollector))
	multisig.RegisterRoutes(r, authFn, DecodeCall, r, reg, ledger)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/wallets", "/auth", "/cores", "/shares/balances",
// "/shares/issuance" and "/proposals"
func QueryRouter() weave.QueryRouter {
	r := weave.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		cores.RegisterQuery,
		shares.RegisterQuery,
		multisig.RegisterQuery,
	)
	return r
}

// Initializers returns the genesis initializers of all extensions.
func Initializers() weave.Initializer {
	conf := gconf.NewInitializer().
		Register("cores", func() gconf.Configuration { return &cores.Configuration{} })
	return app.ChainInitializers(
		cash.Initializer{},
		sigs.Initializer{},
		conf,
		cores.Initializer{},
	)
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() weave.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h weave.Handler,
	tx weave.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (weave.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("invalid database name: %s", path)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	kv, err := iavl.NewCommitStore(dir, name)
	if err != nil {
		return nil, err
	}
	return kv, nil
}
