package app

import (
	"testing"

	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/weavetest"
	"github.com/invarch/weave/weavetest/assert"
)

func TestCommitStore(t *testing.T) {
	db, cleanup := weavetest.CommitKVStore(t)
	defer cleanup()

	cs, err := NewCommitStore(db)
	assert.Nil(t, err)

	assert.Nil(t, cs.DeliverStore().Set([]byte("delivered"), []byte("1")))
	assert.Nil(t, cs.CheckStore().Set([]byte("checked"), []byte("1")))

	id, err := cs.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)

	info, err := cs.CommitInfo()
	assert.Nil(t, err)
	assert.Equal(t, id, info)

	val, err := cs.CheckStore().Get([]byte("delivered"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("1"), val)

	// Check writes never reach the committed state.
	has, err := cs.DeliverStore().Has([]byte("checked"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)
}

func TestChainIDIsWrittenOnce(t *testing.T) {
	db, cleanup := weavetest.CommitKVStore(t)
	defer cleanup()
	cs, err := NewCommitStore(db)
	assert.Nil(t, err)
	kv := cs.DeliverStore()

	chainID, err := loadChainID(kv)
	assert.Nil(t, err)
	assert.Equal(t, "", chainID)

	assert.IsErr(t, errors.ErrInput, saveChainID(kv, "no"))
	assert.Nil(t, saveChainID(kv, "cores-chain"))
	assert.IsErr(t, errors.ErrUnauthorized, saveChainID(kv, "other-chain"))

	chainID, err = loadChainID(kv)
	assert.Nil(t, err)
	assert.Equal(t, "cores-chain", chainID)
}
