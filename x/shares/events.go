package shares

import "github.com/invarch/weave"

// EndowedEvent is emitted when an address receives its first shares of
// an asset.
type EndowedEvent struct {
	Asset  Asset         `json:"asset"`
	Who    weave.Address `json:"who"`
	Amount uint64        `json:"amount"`
}

func (EndowedEvent) EventName() string { return "shares/endowed" }

// DepositedEvent is emitted for every mint.
type DepositedEvent struct {
	Asset  Asset         `json:"asset"`
	Who    weave.Address `json:"who"`
	Amount uint64        `json:"amount"`
}

func (DepositedEvent) EventName() string { return "shares/deposited" }

// WithdrawnEvent is emitted for every burn.
type WithdrawnEvent struct {
	Asset  Asset         `json:"asset"`
	Who    weave.Address `json:"who"`
	Amount uint64        `json:"amount"`
}

func (WithdrawnEvent) EventName() string { return "shares/withdrawn" }

// TransferEvent is emitted when shares move between holders.
type TransferEvent struct {
	Asset  Asset         `json:"asset"`
	From   weave.Address `json:"from"`
	To     weave.Address `json:"to"`
	Amount uint64        `json:"amount"`
}

func (TransferEvent) EventName() string { return "shares/transfer" }

// BalanceSetEvent is emitted when a balance is set directly.
type BalanceSetEvent struct {
	Asset  Asset         `json:"asset"`
	Who    weave.Address `json:"who"`
	Amount uint64        `json:"amount"`
}

func (BalanceSetEvent) EventName() string { return "shares/balance_set" }

// TotalIssuanceSetEvent carries the new total issuance of an asset.
type TotalIssuanceSetEvent struct {
	Asset  Asset  `json:"asset"`
	Amount uint64 `json:"amount"`
}

func (TotalIssuanceSetEvent) EventName() string { return "shares/total_issuance_set" }
