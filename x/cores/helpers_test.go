package cores

import (
	"testing"

	"github.com/invarch/weave"
	"github.com/invarch/weave/coin"
	"github.com/invarch/weave/gconf"
	"github.com/invarch/weave/store"
	"github.com/invarch/weave/weavetest/assert"
)

func testConfiguration() *Configuration {
	return &Configuration{
		MaxMetadata:      16,
		CoreSeedBalance:  1000000,
		CreationFee:      coin.NewCoinp(5, 0, "TNKR"),
		RelayCreationFee: coin.NewCoinp(1, 0, "KSM"),
	}
}

// newTestStore returns a store with the test configuration saved.
func newTestStore(t testing.TB) weave.CacheableKVStore {
	t.Helper()
	db := store.MemStore()
	assert.Nil(t, gconf.Save(db, packageName, testConfiguration()))
	return db
}

func half() *Threshold {
	return Percent(1, 2)
}
