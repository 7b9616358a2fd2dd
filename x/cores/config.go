package cores

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/coin"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/gconf"
	"github.com/invarch/weave/x"
	"github.com/invarch/weave/x/cash"
)

const packageName = "cores"

var _ gconf.OwnedConfig = (*Configuration)(nil)

// Validate checks the configuration stored in genesis or patched by the
// owner.
func (c *Configuration) Validate() error {
	var errs error
	if len(c.Owner) != 0 {
		errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	}
	if c.MaxMetadata == 0 {
		errs = errors.AppendField(errs, "MaxMetadata", errors.ErrEmpty)
	}
	if c.CoreSeedBalance == 0 {
		errs = errors.AppendField(errs, "CoreSeedBalance", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "CreationFee", validFee(c.CreationFee))
	errs = errors.AppendField(errs, "RelayCreationFee", validFee(c.RelayCreationFee))
	if len(c.FeeCollector) != 0 {
		errs = errors.AppendField(errs, "FeeCollector", c.FeeCollector.Validate())
	}
	return errs
}

func validFee(c *coin.Coin) error {
	if c == nil {
		return nil
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative fee")
	}
	return nil
}

// Fee returns the creation fee charged in the given asset.
func (c *Configuration) Fee(asset cash.FeeAsset) (coin.Coin, error) {
	var fee *coin.Coin
	switch asset {
	case cash.FeeAssetNative:
		fee = c.CreationFee
	case cash.FeeAssetRelay:
		fee = c.RelayCreationFee
	default:
		return coin.Coin{}, errors.Wrapf(errors.ErrInput, "unknown fee asset %d", asset)
	}
	if fee == nil {
		return coin.Coin{}, nil
	}
	return *fee, nil
}

// CheckMetadata returns ErrMaxMetadataExceeded if the metadata is longer
// than allowed.
func (c *Configuration) CheckMetadata(metadata []byte) error {
	if n := len(metadata); n > int(c.MaxMetadata) {
		return errors.Wrapf(ErrMaxMetadataExceeded, "%d bytes, at most %d allowed", n, c.MaxMetadata)
	}
	return nil
}

// LoadConfiguration returns the current configuration of the extension.
func LoadConfiguration(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, packageName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// FeeCollector returns the configured fee collector address. It can be
// used with cash.NewCollectorFeeHandler.
func FeeCollector(db weave.ReadOnlyKVStore) (weave.Address, error) {
	conf, err := LoadConfiguration(db)
	if err != nil {
		return nil, err
	}
	if len(conf.FeeCollector) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "no fee collector configured")
	}
	return conf.FeeCollector, nil
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (*UpdateConfigurationMsg) Path() string {
	return "cores/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	if m.Patch == nil {
		return errors.Field("Patch", errors.ErrEmpty, "required")
	}
	return nil
}

// NewConfigHandler returns a handler for UpdateConfigurationMsg.
func NewConfigHandler(auth x.Authenticator) weave.Handler {
	return gconf.NewUpdateConfigurationHandler(packageName, func() gconf.OwnedConfig {
		return &Configuration{}
	}, auth)
}
