package app

import (
	"context"
	"testing"

	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/store/iavl"
	"github.com/invarch/weave/weavetest/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
)

const dummyKey = "dummy"

type dummyInit struct{}

func (dummyInit) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	var value string
	if err := opts.ReadOptions(dummyKey, &value); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return kv.Set([]byte(dummyKey), []byte(value))
}

type countInit struct {
	called int
}

func (c *countInit) FromGenesis(weave.Options, weave.GenesisParams, weave.KVStore) error {
	c.called++
	return nil
}

func TestLoadGenesis(t *testing.T) {
	cases := map[string]struct {
		file       string
		wantErr    *errors.Error
		wantChain  string
		wantCalled int
		wantValue  []byte
	}{
		"missing file": {
			file:    "testdata/missing.json",
			wantErr: errors.ErrInput,
		},
		"valid genesis": {
			file:       "testdata/genesis.json",
			wantChain:  "test-chain-67",
			wantCalled: 1,
			wantValue:  []byte("secret"),
		},
		"initializer fails": {
			file:      "testdata/bad_genesis.json",
			wantErr:   errors.ErrInput,
			wantChain: "super-chain-22",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			c := &countInit{}
			init := ChainInitializers(dummyInit{}, c)
			s := NewStoreApp("foo", iavl.MockCommitStore(), weave.NewQueryRouter(), context.Background())
			assert.Equal(t, "", s.GetChainID())

			err := s.LoadGenesis(tc.file, init)
			assert.IsErr(t, tc.wantErr, err)
			assert.Equal(t, tc.wantChain, s.GetChainID())
			assert.Equal(t, tc.wantCalled, c.called)

			val, err := s.DeliverStore().Get([]byte(dummyKey))
			assert.Nil(t, err)
			assert.Equal(t, tc.wantValue, val)
		})
	}
}

func TestInitChainTwice(t *testing.T) {
	s := NewStoreApp("foo", iavl.MockCommitStore(), weave.NewQueryRouter(), context.Background())
	s.WithInit(dummyInit{})

	s.InitChain(abci.RequestInitChain{
		ChainId:       "test-chain-1",
		AppStateBytes: []byte(`{"dummy": "x"}`),
	})
	assert.Equal(t, "test-chain-1", s.GetChainID())
	assert.Panics(t, func() {
		s.InitChain(abci.RequestInitChain{
			ChainId:       "test-chain-2",
			AppStateBytes: []byte(`{"dummy": "y"}`),
		})
	})
}

type rawQuery struct{}

func (rawQuery) Query(db weave.ReadOnlyKVStore, mod string, data []byte) ([]weave.Model, error) {
	if mod != weave.KeyQueryMod {
		return nil, errors.Wrap(errors.ErrInput, "unknown mod")
	}
	val, err := db.Get(data)
	if err != nil || val == nil {
		return nil, err
	}
	return []weave.Model{weave.Pair(data, val)}, nil
}

func TestQueryCommittedState(t *testing.T) {
	qr := weave.NewQueryRouter()
	qr.Register("/raw", rawQuery{})
	s := NewStoreApp("foo", iavl.MockCommitStore(), qr, context.Background())

	require.NoError(t, s.DeliverStore().Set([]byte("k"), []byte("v")))

	// Not committed yet.
	res := s.Query(abci.RequestQuery{Path: "/raw", Data: []byte("k")})
	require.Equal(t, uint32(0), res.Code, res.Log)
	var values ResultSet
	require.NoError(t, values.Unmarshal(res.Value))
	require.Len(t, values.Results, 0)

	commit := s.Commit()
	require.NotEmpty(t, commit.Data)

	res = s.Query(abci.RequestQuery{Path: "/raw", Data: []byte("k")})
	require.Equal(t, uint32(0), res.Code, res.Log)
	require.Equal(t, int64(1), res.Height)

	var keys ResultSet
	require.NoError(t, keys.Unmarshal(res.Key))
	require.NoError(t, values.Unmarshal(res.Value))
	models, err := JoinResults(&keys, &values)
	require.NoError(t, err)
	require.Equal(t, []weave.Model{weave.Pair([]byte("k"), []byte("v"))}, models)

	res = s.Query(abci.RequestQuery{Path: "/raw?prefix", Data: []byte("k")})
	require.Equal(t, errors.ErrInput.ABCICode(), res.Code)

	res = s.Query(abci.RequestQuery{Path: "/unknown"})
	require.Equal(t, errors.ErrNotFound.ABCICode(), res.Code)

	info := s.Info(abci.RequestInfo{})
	require.Equal(t, int64(1), info.LastBlockHeight)
	require.Equal(t, commit.Data, info.LastBlockAppHash)
}
