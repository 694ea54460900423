package types

import (
	"github.com/mars-protocol/manifesto-contract/vm"
)

// ContractInfo names the token collection.
type ContractInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// MedalMetaData is the template a downstream mint is populated from.
// Minted token names are "{name_prefix} #{token_id}".
type MedalMetaData struct {
	NamePrefix  string `json:"name_prefix"`
	Description string `json:"description"`
	Image       string `json:"image"`
	TokenUri    string `json:"token_uri"`
}

// Approval lets a spender transfer or send a specific token until it
// expires.
type Approval struct {
	Spender string     `json:"spender"`
	Expires Expiration `json:"expires"`
}

// IsExpired reports whether the approval has lapsed at the given block.
func (a Approval) IsExpired(block vm.BlockInfo) bool {
	return a.Expires.IsExpired(block)
}

// TokenInfo is the full record of one live token.
type TokenInfo struct {
	// Owner is a host-validated address.
	Owner string `json:"owner"`
	// Approvals are cleared on every transfer, so the list stays short.
	Approvals []Approval `json:"approvals"`

	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       *string `json:"image,omitempty"`

	Extension Metadata `json:"extension"`
}
