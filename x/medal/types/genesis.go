package types

// GenesisToken pairs a token id with its record for import/export.
type GenesisToken struct {
	TokenId string    `json:"token_id"`
	Info    TokenInfo `json:"info"`
}

// GenesisOperator is one (granter, operator) grant for import/export.
type GenesisOperator struct {
	Granter  string     `json:"granter"`
	Operator string     `json:"operator"`
	Expires  Expiration `json:"expires"`
}

// GenesisState is the full exportable state of one registry. Tokens and
// operators are ordered by storage key, so exports are deterministic.
type GenesisState struct {
	ContractInfo    ContractInfo      `json:"contract_info"`
	Minter          string            `json:"minter"`
	TokenCount      uint64            `json:"token_count"`
	RedeemCount     uint64            `json:"redeem_count"`
	MedalRedeemAddr string            `json:"medal_redeem_addr,omitempty"`
	MedalRedeemInfo *MedalMetaData    `json:"medal_redeem_info,omitempty"`
	Tokens          []GenesisToken    `json:"tokens"`
	Operators       []GenesisOperator `json:"operators"`
}
