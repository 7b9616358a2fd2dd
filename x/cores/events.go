package cores

import "github.com/invarch/weave"

// CoreCreatedEvent is emitted when a new core is created.
type CoreCreatedEvent struct {
	CoreAccount      weave.Address `json:"core_account"`
	Metadata         []byte        `json:"metadata"`
	CoreID           uint64        `json:"core_id"`
	MinimumSupport   *Threshold    `json:"minimum_support"`
	RequiredApproval *Threshold    `json:"required_approval"`
}

func (CoreCreatedEvent) EventName() string { return "cores/core_created" }

// ParametersSetEvent lists the parameters changed on a core. Unchanged
// parameters are nil.
type ParametersSetEvent struct {
	CoreID           uint64     `json:"core_id"`
	Metadata         []byte     `json:"metadata,omitempty"`
	MinimumSupport   *Threshold `json:"minimum_support,omitempty"`
	RequiredApproval *Threshold `json:"required_approval,omitempty"`
	FrozenTokens     *bool      `json:"frozen_tokens,omitempty"`
}

func (ParametersSetEvent) EventName() string { return "cores/parameters_set" }

// SubAssetCreatedEvent is emitted for every created sub asset.
type SubAssetCreatedEvent struct {
	CoreID     uint64 `json:"core_id"`
	SubAssetID uint32 `json:"sub_asset_id"`
	Metadata   []byte `json:"metadata"`
}

func (SubAssetCreatedEvent) EventName() string { return "cores/sub_asset_created" }

// RemarkedEvent carries the remark of a core.
type RemarkedEvent struct {
	CoreID uint64 `json:"core_id"`
	Remark []byte `json:"remark"`
}

func (RemarkedEvent) EventName() string { return "cores/remarked" }
