package types

import (
	medaltypes "github.com/mars-protocol/manifesto-contract/x/medal/types"
)

// InstantiateMsg configures a fresh manifesto. The token addresses may be
// omitted and pushed down later through the admin operations; the
// deployment order is medal-redeem, medal, manifesto, then admin calls.
type InstantiateMsg struct {
	MedalAddr       *string `json:"medal_addr,omitempty"`
	MedalRedeemAddr *string `json:"medal_redeem_addr,omitempty"`
	MaxSigneesLimit uint64  `json:"max_signees_limit"`
	Admin           string  `json:"admin"`
}

// ExecuteMsg is the JSON envelope for state-changing calls, discriminated
// by exactly one set variant.
type ExecuteMsg struct {
	UpdateAdmin             *MsgUpdateAdmin             `json:"update_admin,omitempty"`
	UpdateMedalConfig       *MsgUpdateMedalConfig       `json:"update_medal_config,omitempty"`
	UpdateMedalRedeemConfig *MsgUpdateMedalRedeemConfig `json:"update_medal_redeem_config,omitempty"`
	SignManifesto           *MsgSignManifesto           `json:"sign_manifesto,omitempty"`
}

type MsgUpdateAdmin struct {
	NewAdmin string `json:"new_admin"`
}

type MsgUpdateMedalConfig struct {
	MedalAddr string              `json:"medal_addr"`
	Metadata  medaltypes.Metadata `json:"metadata"`
}

type MsgUpdateMedalRedeemConfig struct {
	MedalRedeemAddr string                   `json:"medal_redeem_addr"`
	Metadata        medaltypes.MedalMetaData `json:"metadata"`
}

type MsgSignManifesto struct {
	MartianDate string `json:"martian_date"`
	MartianTime string `json:"martian_time"`
}

// QueryMsg is the JSON envelope for reads.
type QueryMsg struct {
	Config       *QueryConfig       `json:"config,omitempty"`
	State        *QueryState        `json:"state,omitempty"`
	GetSignature *QueryGetSignature `json:"get_signature,omitempty"`
}

type (
	QueryConfig struct{}
	QueryState  struct{}
)

type QueryGetSignature struct {
	Signee string `json:"signee"`
}

// Query responses.

type ConfigResponse struct {
	MedalAddr         string `json:"medal_addr"`
	MaxSigneesAllowed uint64 `json:"max_signees_allowed"`
	Admin             string `json:"admin"`
}

type StateResponse struct {
	SigneeCount uint64 `json:"signee_count"`
}

type SignatureResponse struct {
	Signee      string `json:"signee"`
	MartianDate string `json:"martian_date"`
	MartianTime string `json:"martian_time"`
}
