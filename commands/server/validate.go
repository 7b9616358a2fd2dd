package server

import (
	"encoding/json"
	"io/ioutil"

	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/store"
)

// ValidateGenesis loads the app_state of every genesis file into an in
// memory store and returns the first initialization error.
func ValidateGenesis(ini weave.Initializer, genesisPaths []string) error {
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini weave.Initializer, genesisPath string) error {
	b, err := ioutil.ReadFile(genesisPath)
	if err != nil {
		return errors.Wrap(errors.ErrNotFound, "cannot read genesis file")
	}

	var genesis struct {
		ChainID string        `json:"chain_id"`
		State   weave.Options `json:"app_state"`
	}
	if err := json.Unmarshal(b, &genesis); err != nil {
		return errors.Wrap(errors.ErrInput, "cannot JSON deserialize genesis")
	}

	// Use in memory store because we want to discard the result.
	db := store.MemStore()

	params := weave.GenesisParams{ChainID: genesis.ChainID}
	if err := ini.FromGenesis(genesis.State, params, db); err != nil {
		return errors.Wrap(err, "cannot initialize from genesis")
	}
	return nil
}
