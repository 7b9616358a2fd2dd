package weavetest

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/invarch/weave"
	"github.com/invarch/weave/store/iavl"
)

// CommitKVStore returns a store instance that is using a filesystem backend
// engine to store the data.
// This implementation should be used instead of MemStore when you want the
// exact same storage implementation as the production instance is using.
func CommitKVStore(t testing.TB) (db weave.CommitKVStore, cleanup func()) {
	t.Helper()
	dbpath, err := ioutil.TempDir("", "weavetest-")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}

	cs, err := iavl.NewCommitStore(dbpath, "db")
	if err != nil {
		os.RemoveAll(dbpath)
		t.Fatalf("cannot create commit store: %s", err)
	}
	if err := cs.LoadLatestVersion(); err != nil {
		os.RemoveAll(dbpath)
		t.Fatalf("cannot load commit store: %s", err)
	}
	return cs, func() { os.RemoveAll(dbpath) }
}
