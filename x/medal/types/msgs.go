package types

import (
	"encoding/json"
)

// InstantiateMsg creates a fresh, empty registry.
type InstantiateMsg struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	// Minter is the only address allowed to mint. For the medal
	// deployment this is the manifesto contract's address.
	Minter string `json:"minter"`
}

// ExecuteMsg is the JSON envelope for state-changing calls, discriminated
// by exactly one set variant.
type ExecuteMsg struct {
	Mint                    *MintMsg                    `json:"mint,omitempty"`
	UpdateMedalRedeemConfig *MsgUpdateMedalRedeemConfig `json:"update_medal_redeem_config,omitempty"`
	TransferNft             *MsgTransferNft             `json:"transfer_nft,omitempty"`
	SendNft                 *MsgSendNft                 `json:"send_nft,omitempty"`
	Approve                 *MsgApprove                 `json:"approve,omitempty"`
	Revoke                  *MsgRevoke                  `json:"revoke,omitempty"`
	ApproveAll              *MsgApproveAll              `json:"approve_all,omitempty"`
	RevokeAll               *MsgRevokeAll               `json:"revoke_all,omitempty"`
	RedeemMedal             *MsgRedeemMedal             `json:"redeem_medal,omitempty"`
}

// MintMsg creates a new token. Only the minter may submit it.
type MintMsg struct {
	// TokenId must be unique for the life of the registry; redeemed ids
	// are never reused for new medals.
	TokenId     string   `json:"token_id"`
	Owner       string   `json:"owner"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Extension   Metadata `json:"extension"`
}

type MsgUpdateMedalRedeemConfig struct {
	MedalRedeemAddr string        `json:"medal_redeem_addr"`
	Metadata        MedalMetaData `json:"metadata"`
}

type MsgTransferNft struct {
	Recipient string `json:"recipient"`
	TokenId   string `json:"token_id"`
}

type MsgSendNft struct {
	Contract string          `json:"contract"`
	TokenId  string          `json:"token_id"`
	Msg      json.RawMessage `json:"msg"`
}

type MsgApprove struct {
	Spender string      `json:"spender"`
	TokenId string      `json:"token_id"`
	Expires *Expiration `json:"expires,omitempty"`
}

type MsgRevoke struct {
	Spender string `json:"spender"`
	TokenId string `json:"token_id"`
}

type MsgApproveAll struct {
	Operator string      `json:"operator"`
	Expires  *Expiration `json:"expires,omitempty"`
}

type MsgRevokeAll struct {
	Operator string `json:"operator"`
}

type MsgRedeemMedal struct {
	TokenId string `json:"token_id"`
}

// ReceiveMsg is the envelope SendNft delivers to the receiving contract.
type ReceiveMsg struct {
	ReceiveNft *Cw721ReceiveMsg `json:"receive_nft"`
}

type Cw721ReceiveMsg struct {
	Sender  string          `json:"sender"`
	TokenId string          `json:"token_id"`
	Msg     json.RawMessage `json:"msg"`
}

// QueryMsg is the JSON envelope for reads.
type QueryMsg struct {
	ContractInfo      *QueryContractInfo      `json:"contract_info,omitempty"`
	Minter            *QueryMinter            `json:"minter,omitempty"`
	NumTokens         *QueryNumTokens         `json:"num_tokens,omitempty"`
	NumRedeemedTokens *QueryNumRedeemedTokens `json:"num_redeemed_tokens,omitempty"`
	OwnerOf           *QueryOwnerOf           `json:"owner_of,omitempty"`
	NftInfo           *QueryNftInfo           `json:"nft_info,omitempty"`
	AllNftInfo        *QueryAllNftInfo        `json:"all_nft_info,omitempty"`
	Tokens            *QueryTokens            `json:"tokens,omitempty"`
	AllTokens         *QueryAllTokens         `json:"all_tokens,omitempty"`
	MedalRedeemConfig *QueryMedalRedeemConfig `json:"medal_redeem_config,omitempty"`
}

type (
	QueryContractInfo      struct{}
	QueryMinter            struct{}
	QueryNumTokens         struct{}
	QueryNumRedeemedTokens struct{}
	QueryMedalRedeemConfig struct{}
)

type QueryOwnerOf struct {
	TokenId string `json:"token_id"`
}

type QueryNftInfo struct {
	TokenId string `json:"token_id"`
}

type QueryAllNftInfo struct {
	TokenId string `json:"token_id"`
}

type QueryTokens struct {
	Owner      string  `json:"owner"`
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type QueryAllTokens struct {
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

// Query responses.

type ContractInfoResponse struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type MinterResponse struct {
	Minter string `json:"minter"`
}

type NumTokensResponse struct {
	Count uint64 `json:"count"`
}

type NumRedeemedTokensResponse struct {
	Count uint64 `json:"count"`
}

type OwnerOfResponse struct {
	Owner     string     `json:"owner"`
	Approvals []Approval `json:"approvals"`
}

type NftInfoResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       *string  `json:"image,omitempty"`
	Extension   Metadata `json:"extension"`
}

type AllNftInfoResponse struct {
	Access OwnerOfResponse `json:"access"`
	Info   NftInfoResponse `json:"info"`
}

type TokensResponse struct {
	Tokens []string `json:"tokens"`
}

type MedalRedeemConfigResponse struct {
	MedalRedeemAddr string        `json:"medal_redeem_addr"`
	Metadata        MedalMetaData `json:"metadata"`
}
