package multisig

import "github.com/invarch/weave"

// VoteStartedEvent is emitted when a call is proposed.
type VoteStartedEvent struct {
	CoreID      uint64        `json:"core_id"`
	SubAssetID  uint32        `json:"sub_asset_id"`
	Executor    weave.Address `json:"executor"`
	CallHash    []byte        `json:"call_hash"`
	Call        string        `json:"call"`
	VotesAdded  uint64        `json:"votes_added"`
	TotalIssued uint64        `json:"total_issued"`
	VotesNeeded uint64        `json:"votes_needed"`
}

func (VoteStartedEvent) EventName() string { return "multisig/vote_started" }

// VoteAddedEvent is emitted for every vote on an existing proposal.
type VoteAddedEvent struct {
	CoreID    uint64        `json:"core_id"`
	Voter     weave.Address `json:"voter"`
	CallHash  []byte        `json:"call_hash"`
	Weight    uint64        `json:"weight"`
	Reject    bool          `json:"reject,omitempty"`
	YesWeight uint64        `json:"yes_weight"`
	NoWeight  uint64        `json:"no_weight"`
}

func (VoteAddedEvent) EventName() string { return "multisig/vote_added" }

// VoteWithdrawnEvent is emitted when a voter takes back a vote.
type VoteWithdrawnEvent struct {
	CoreID   uint64        `json:"core_id"`
	Voter    weave.Address `json:"voter"`
	CallHash []byte        `json:"call_hash"`
	Weight   uint64        `json:"weight"`
}

func (VoteWithdrawnEvent) EventName() string { return "multisig/vote_withdrawn" }

// ProposalCanceledEvent is emitted when the core removes a proposal.
type ProposalCanceledEvent struct {
	CoreID   uint64 `json:"core_id"`
	CallHash []byte `json:"call_hash"`
}

func (ProposalCanceledEvent) EventName() string { return "multisig/proposal_canceled" }

// ExecutedEvent carries the outcome of an executed call. A failed call
// still consumes its proposal.
type ExecutedEvent struct {
	CoreID   uint64 `json:"core_id"`
	CallHash []byte `json:"call_hash"`
	Call     string `json:"call"`
	Code     uint32 `json:"code"`
	Log      string `json:"log,omitempty"`
}

func (ExecutedEvent) EventName() string { return "multisig/executed" }

// Failed returns true if the executed call returned an error.
func (e ExecutedEvent) Failed() bool {
	return e.Code != 0
}
