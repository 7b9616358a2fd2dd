package server

import (
	"github.com/invarch/weave/errors"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

// DefaultBind is the address tendermint connects to by default.
const DefaultBind = "tcp://localhost:26658"

// AppGenerator lets us lazily initialize app, using home dir
// and logger potentially initialized with other flags
type AppGenerator func(home string, logger log.Logger, debug bool) (abci.Application, error)

// StartCmd initializes the application and serves it over the ABCI
// socket protocol until the process is interrupted.
func StartCmd(gen AppGenerator, logger log.Logger, home, addr string, debug bool) error {
	app, err := gen(home, logger, debug)
	if err != nil {
		return err
	}

	logger.Info("Starting ABCI app", "bind", addr)

	svr, err := server.NewServer(addr, "socket", app)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "create listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	return serve(svr, logger)
}

// serve runs svr until it is stopped, either by a process signal or by a
// direct Stop call.
func serve(svr cmn.Service, logger log.Logger) error {
	if err := svr.Start(); err != nil {
		return errors.Wrap(errors.ErrState, err.Error())
	}

	cmn.TrapSignal(logger, func() {
		if err := svr.Stop(); err != nil {
			logger.Error("Cannot stop ABCI app", "err", err)
		}
	})
	// Wait until the server is stopped.
	<-svr.Quit()
	return nil
}
