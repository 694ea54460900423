package types

// Action attribute values emitted by the manifesto module.
const (
	ActionUpdateAdmin             = "update_admin"
	ActionUpdateMedalConfig       = "update_medal_config"
	ActionUpdateMedalRedeemConfig = "update_medal_redeem_config"
	ActionSignManifesto           = "sign_manifesto"
)

// Attribute keys.
const (
	AttrKeyAction          = "action"
	AttrKeyNewAdmin        = "new_admin"
	AttrKeyMedalAddr       = "medal_addr"
	AttrKeyMedalRedeemAddr = "medal_redeem_addr"
	AttrKeySignee          = "signee"
	AttrKeySigneeCount     = "signee_count"
)
