package gconf

import (
	"sort"

	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
)

// Initializer loads the configuration of every registered package from the
// "conf" section of the genesis file.
type Initializer struct {
	confs map[string]func() Configuration
}

var _ weave.Initializer = (*Initializer)(nil)

// NewInitializer returns an initializer without any registered package.
func NewInitializer() *Initializer {
	return &Initializer{confs: make(map[string]func() Configuration)}
}

// Register declares that the genesis must contain a configuration for
// given package, loaded into the object returned by newConf.
func (i *Initializer) Register(pkg string, newConf func() Configuration) *Initializer {
	if _, ok := i.confs[pkg]; ok {
		panic("configuration registered twice: " + pkg)
	}
	i.confs[pkg] = newConf
	return i
}

// FromGenesis stores the configuration of all registered packages.
func (i *Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	pkgs := make([]string, 0, len(i.confs))
	for pkg := range i.confs {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)

	for _, pkg := range pkgs {
		if err := InitConfig(db, opts, pkg, i.confs[pkg]()); err != nil {
			return errors.Wrapf(err, "init %s configuration", pkg)
		}
	}
	return nil
}
