package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/invarch/weave/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

const tmGenesis = `{
  "genesis_time": "2019-05-01T10:00:00.000000Z",
  "chain_id": "test-chain-LgVOZ0",
  "validators": [{"power": "10", "name": ""}]
}`

// setupHome creates a home directory with a genesis file as written by
// `tendermint init`.
func setupHome(t *testing.T) (string, func()) {
	t.Helper()
	home, err := ioutil.TempDir("", "server-cmd")
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(home, "config"), 0755))
	require.NoError(t, ioutil.WriteFile(GenesisFile(home), []byte(tmGenesis), 0600))
	return home, func() { os.RemoveAll(home) }
}

func genState(args []string) (json.RawMessage, error) {
	if len(args) > 0 {
		return json.RawMessage(`{"cash": [], "ticker": "` + args[0] + `"}`), nil
	}
	return json.RawMessage(`{"cash": []}`), nil
}

func TestInit(t *testing.T) {
	home, cleanup := setupHome(t)
	defer cleanup()

	logger := log.NewNopLogger()
	require.NoError(t, InitCmd(genState, logger, home, false, nil))

	doc, err := readGenesis(GenesisFile(home))
	require.NoError(t, err)
	// keep old values, and add our values
	assert.EqualValues(t, []byte(`"test-chain-LgVOZ0"`), doc["chain_id"])
	assert.NotEmpty(t, doc["validators"])
	assert.JSONEq(t, `{"cash": []}`, string(doc[appStateKey]))

	// app state is set, only forced init replaces it
	err = InitCmd(genState, logger, home, false, []string{"ABC"})
	assert.True(t, errors.ErrState.Is(err))

	require.NoError(t, InitCmd(genState, logger, home, true, []string{"ABC"}))
	doc, err = readGenesis(GenesisFile(home))
	require.NoError(t, err)
	assert.JSONEq(t, `{"cash": [], "ticker": "ABC"}`, string(doc[appStateKey]))
}

func TestInitWithoutGenesis(t *testing.T) {
	home, err := ioutil.TempDir("", "server-cmd")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	err = InitCmd(genState, log.NewNopLogger(), home, false, nil)
	assert.True(t, errors.ErrNotFound.Is(err))
}
