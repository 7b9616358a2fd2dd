package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
)

// Genesis file format, designed to be overlayed with tendermint genesis
type Genesis struct {
	ChainID  string        `json:"chain_id"`
	AppState weave.Options `json:"app_state"`
}

// loadGenesis tries to load a given file into a Genesis struct
func loadGenesis(filePath string) (Genesis, error) {
	var gen Genesis

	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "read genesis file: %s", err)
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "unmarshal genesis file: %s", err)
	}
	return gen, nil
}

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...weave.Initializer) weave.Initializer {
	return chainInitializers{inits}
}

type chainInitializers struct {
	inits []weave.Initializer
}

// FromGenesis passes the options to all initializers in the list,
// aborting at the first error.
func (c chainInitializers) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, params, kv); err != nil {
			return err
		}
	}
	return nil
}
