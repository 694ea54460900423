package types

// Action attribute values emitted by the medal module.
const (
	ActionMint                    = "mint"
	ActionUpdateMedalRedeemConfig = "update_medal_redeem_config"
	ActionTransferNft             = "transfer_nft"
	ActionSendNft                 = "send_nft"
	ActionApprove                 = "approve"
	ActionRevoke                  = "revoke"
	ActionApproveAll              = "approve_all"
	ActionRevokeAll               = "revoke_all"
	ActionRedeem                  = "redeem"
)

// Attribute keys shared across actions.
const (
	AttrKeyAction          = "action"
	AttrKeyMinter          = "minter"
	AttrKeyTokenID         = "token_id"
	AttrKeySender          = "sender"
	AttrKeyRecipient       = "recipient"
	AttrKeySpender         = "spender"
	AttrKeyOperator        = "operator"
	AttrKeyRedeemer        = "redeemer"
	AttrKeyMedalID         = "medal_id"
	AttrKeyMedalRedeemedID = "medal_redeemed_id"
	AttrKeyMedalRedeemAddr = "medal_redeem_addr"
)
