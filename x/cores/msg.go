package cores

import (
	"github.com/invarch/weave"
	"github.com/invarch/weave/errors"
)

const (
	pathCreateCoreMsg      = "cores/create"
	pathSetParametersMsg   = "cores/set_parameters"
	pathRemarkMsg          = "cores/remark"
	pathCreateSubAssetsMsg = "cores/create_sub_assets"
)

var _ weave.Msg = (*CreateCoreMsg)(nil)

func (CreateCoreMsg) Path() string {
	return pathCreateCoreMsg
}

// Validate checks the thresholds. The metadata bound is part of the
// configuration and is checked by the handler.
func (m *CreateCoreMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "MinimumSupport", m.MinimumSupport.Validate())
	errs = errors.AppendField(errs, "RequiredApproval", m.RequiredApproval.Validate())
	errs = errors.AppendField(errs, "FeeAsset", m.FeeAsset.Validate())
	return errs
}

var _ weave.Msg = (*SetParametersMsg)(nil)

func (SetParametersMsg) Path() string {
	return pathSetParametersMsg
}

func (m *SetParametersMsg) Validate() error {
	var errs error
	if m.MinimumSupport != nil {
		errs = errors.AppendField(errs, "MinimumSupport", m.MinimumSupport.Validate())
	}
	if m.RequiredApproval != nil {
		errs = errors.AppendField(errs, "RequiredApproval", m.RequiredApproval.Validate())
	}
	return errs
}

var _ weave.Msg = (*RemarkMsg)(nil)

func (RemarkMsg) Path() string {
	return pathRemarkMsg
}

func (m *RemarkMsg) Validate() error {
	return nil
}

var _ weave.Msg = (*CreateSubAssetsMsg)(nil)

func (CreateSubAssetsMsg) Path() string {
	return pathCreateSubAssetsMsg
}

func (m *CreateSubAssetsMsg) Validate() error {
	if len(m.SubAssets) == 0 {
		return errors.Field("SubAssets", errors.ErrEmpty, "at least one sub asset required")
	}
	var errs error
	seen := make(map[uint32]struct{}, len(m.SubAssets))
	for i, s := range m.SubAssets {
		if s == nil {
			errs = errors.AppendField(errs, errors.FieldPath("SubAssets", i), errors.ErrEmpty)
			continue
		}
		idField := errors.FieldPath("SubAssets", i, "SubAssetID")
		if s.SubAssetID == 0 {
			errs = errors.Append(errs, errors.Field(idField, errors.ErrInput, "zero is reserved"))
		} else if _, ok := seen[s.SubAssetID]; ok {
			errs = errors.Append(errs, errors.Field(idField, ErrSubAssetAlreadyExists, "listed twice"))
		}
		seen[s.SubAssetID] = struct{}{}
		errs = errors.AppendField(errs, errors.FieldPath("SubAssets", i, "Owner"), s.Owner.Validate())
	}
	return errs
}
