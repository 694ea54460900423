package types

// Config is set at instantiation; the admin and the two token addresses
// are mutable by the admin only. Unset addresses are the empty sentinel.
type Config struct {
	MedalAddr         string `json:"medal_addr"`
	MedalRedeemAddr   string `json:"medal_redeem_addr"`
	MaxSigneesAllowed uint64 `json:"max_signees_allowed"`
	Admin             string `json:"admin"`
}

// State tracks the signee population. The count never decreases and never
// exceeds Config.MaxSigneesAllowed at the close of a committed transaction.
type State struct {
	SigneesCount uint64 `json:"signees_count"`
}

// Signature records that an address signed the manifesto. Written once,
// never mutated, never removed.
type Signature struct {
	Signee      string `json:"signee"`
	MartianDate string `json:"martian_date"`
	MartianTime string `json:"martian_time"`
}
