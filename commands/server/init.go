package server

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"

	"github.com/invarch/weave/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const appStateKey = "app_state"

// GenOptions can parse command-line and flag to
// generate default app_options for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisFile returns the path of the tendermint genesis file below home.
func GenesisFile(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// InitCmd adds the app_state produced by gen to the genesis file
// created by `tendermint init`. An already set app_state is only
// replaced when force is set.
func InitCmd(gen GenOptions, logger log.Logger, home string, force bool, args []string) error {
	genFile := GenesisFile(home)
	doc, err := readGenesis(genFile)
	if err != nil {
		return err
	}
	if state, ok := doc[appStateKey]; ok && len(state) != 0 && string(state) != "null" && !force {
		return errors.Wrapf(errors.ErrState, "%s already has an app_state, use force to overwrite", genFile)
	}

	options, err := gen(args)
	if err != nil {
		return err
	}
	doc[appStateKey] = options

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := ioutil.WriteFile(genFile, out, 0600); err != nil {
		return errors.Wrap(err, "write genesis")
	}
	logger.Info("App state initialized", "path", genFile)
	return nil
}

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

func readGenesis(filename string) (GenesisDoc, error) {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "read genesis: %s", err)
	}
	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "parse genesis: %s", err)
	}
	return doc, nil
}
