package gconf

import (
	"reflect"

	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
	"github.com/invarch/weave/x"
)

// OwnedConfig must have an Owner field in protobuf. A configuration update
// message must be signed by an owner in order to be authorized to apply the
// change.
type OwnedConfig interface {
	Configuration
	GetOwner() weave.Address
}

// UpdateConfigurationHandler applies a configuration patch message. The
// message must have a "Patch" field of the configuration type.
type UpdateConfigurationHandler struct {
	pkg    string
	config func() OwnedConfig
	auth   x.Authenticator
}

var _ weave.Handler = UpdateConfigurationHandler{}

// NewUpdateConfigurationHandler returns a message handler that process
// configuration patch message.
//
// To pass authentication step, each message must be signed by the current
// configuration owner. A configuration that was not created in genesis
// cannot be updated.
func NewUpdateConfigurationHandler(pkg string, config func() OwnedConfig, auth x.Authenticator) UpdateConfigurationHandler {
	return UpdateConfigurationHandler{
		pkg:    pkg,
		config: config,
		auth:   auth,
	}
}

func (h UpdateConfigurationHandler) Check(ctx weave.Context, store weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.patched(ctx, store, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h UpdateConfigurationHandler) Deliver(ctx weave.Context, store weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	conf, err := h.patched(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	if err := Save(store, h.pkg, conf); err != nil {
		return nil, errors.Wrap(err, "cannot save updated config")
	}
	return &weave.DeliverResult{}, nil
}

// patched returns the current configuration with the message patch applied.
func (h UpdateConfigurationHandler) patched(ctx weave.Context, store weave.KVStore, tx weave.Tx) (OwnedConfig, error) {
	conf := h.config()
	if err := Load(store, h.pkg, conf); err != nil {
		return nil, errors.Wrap(err, "load current configuration")
	}
	owner := conf.GetOwner()
	if owner == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "configuration has no owner")
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner did not sign transaction")
	}

	payload, err := patchPayload(tx)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get message payload")
	}
	if err := patch(conf, payload); err != nil {
		return nil, errors.Wrap(err, "cannot patch config with message payload")
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "patched configuration")
	}
	return conf, nil
}

func patch(config OwnedConfig, payload OwnedConfig) error {
	pType := reflect.TypeOf(payload)
	cType := reflect.TypeOf(config)
	if pType != cType {
		return errors.Wrapf(errors.ErrMsg, "patch %s does not match configuration %s", pType, cType)
	}

	cval := reflect.ValueOf(config).Elem()
	pval := reflect.ValueOf(payload).Elem()
	for i := 0; i < cval.NumField(); i++ {
		got := pval.Field(i)
		// Zero values do not update the original configuration.
		if isZero(got) {
			continue
		}
		cval.Field(i).Set(got)
	}
	return nil
}

// isZero returns true if given value represents a zero value of a given type.
func isZero(val reflect.Value) bool {
	zero := reflect.Zero(val.Type()).Interface()
	return reflect.DeepEqual(val.Interface(), zero)
}

// patchPayload expects the transaction to have a message with "Patch" field of
// the same type as the configuration. Content of this field is extracted and
// returned.
func patchPayload(tx weave.Tx) (OwnedConfig, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	pval := reflect.ValueOf(msg)
	if pval.Kind() != reflect.Ptr || pval.Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "invalid message container value: %T", msg)
	}
	field := pval.Elem().FieldByName("Patch")
	if !field.IsValid() || field.Kind() != reflect.Ptr {
		return nil, errors.Wrapf(errors.ErrInput, "%T has no Patch field", msg)
	}
	if field.IsNil() {
		return nil, errors.Wrap(errors.ErrState, `"Patch" field is required`)
	}
	payload, ok := field.Interface().(OwnedConfig)
	if !ok {
		return nil, errors.Wrap(errors.ErrInput, `"Patch" field is of a wrong type`)
	}
	return payload, nil
}
