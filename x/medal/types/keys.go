package types

import (
	"cosmossdk.io/collections"
)

const (
	ModuleName = "medal"

	StoreKey = ModuleName
)

// Collection prefixes. The identifiers are the storage key names the
// original deployment persisted under, so exported state stays readable.
// Prefixes must be prefix-free for collections to iterate correctly, so
// names that would swallow a sibling ("tokens" under "tokens__owner",
// "medal_redeem" under "medal_redeem_info") carry a trailing separator.
var (
	// ContractInfoKey saves the collection name/symbol.
	ContractInfoKey = collections.NewPrefix("nft_info")

	// ContractInfoName is the name of the contract info collection.
	ContractInfoName = "nft_info"

	// MinterKey saves the only address allowed to mint.
	MinterKey = collections.NewPrefix("minter")

	// MinterName is the name of the minter collection.
	MinterName = "minter"

	// MedalRedeemKey saves the address of the redeemed-tier registry.
	MedalRedeemKey = collections.NewPrefix("medal_redeem/")

	// MedalRedeemName is the name of the redeem address collection.
	MedalRedeemName = "medal_redeem"

	// MedalRedeemInfoKey saves the metadata template for redeemed tokens.
	MedalRedeemInfoKey = collections.NewPrefix("medal_redeem_info")

	// MedalRedeemInfoName is the name of the redeem metadata collection.
	MedalRedeemInfoName = "medal_redeem_info"

	// TokenCountKey saves the number of live tokens.
	TokenCountKey = collections.NewPrefix("num_tokens")

	// TokenCountName is the name of the token count collection.
	TokenCountName = "num_tokens"

	// RedeemCountKey saves the cumulative number of redeemed tokens.
	RedeemCountKey = collections.NewPrefix("num_redeemed_tokens")

	// RedeemCountName is the name of the redeem count collection.
	RedeemCountName = "num_redeemed_tokens"

	// OperatorsKey saves (granter, operator) blanket approvals.
	OperatorsKey = collections.NewPrefix("operators")

	// OperatorsName is the name of the operators collection.
	OperatorsName = "operators"

	// TokensKey saves token_id -> TokenInfo.
	TokensKey = collections.NewPrefix("tokens/")

	// TokensName is the name of the tokens collection.
	TokensName = "tokens"

	// TokensByOwnerKey saves the (owner, token_id) enumeration index.
	TokensByOwnerKey = collections.NewPrefix("tokens__owner/")

	// TokensByOwnerName is the name of the owner index collection.
	TokensByOwnerName = "tokens__owner"
)

// Pagination bounds for enumeration queries.
const (
	DefaultQueryLimit = 10
	MaxQueryLimit     = 30
)
