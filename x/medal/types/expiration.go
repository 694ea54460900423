package types

import (
	"github.com/mars-protocol/manifesto-contract/vm"
)

// Expiration bounds how long an approval or operator grant stays valid.
// Exactly one variant is set; the zero value behaves like Never.
type Expiration struct {
	// AtHeight expires once the block height is reached.
	AtHeight *uint64 `json:"at_height,omitempty"`
	// AtTime expires once the block time, in unix nanoseconds, is reached.
	AtTime *uint64 `json:"at_time,omitempty"`
	// Never does what it says.
	Never *struct{} `json:"never,omitempty"`
}

func NeverExpires() Expiration {
	return Expiration{Never: &struct{}{}}
}

func ExpiresAtHeight(height uint64) Expiration {
	return Expiration{AtHeight: &height}
}

func ExpiresAtTime(nanos uint64) Expiration {
	return Expiration{AtTime: &nanos}
}

// IsExpired reports whether the expiration has elapsed at the given block.
func (e Expiration) IsExpired(block vm.BlockInfo) bool {
	switch {
	case e.AtHeight != nil:
		return block.Height >= *e.AtHeight
	case e.AtTime != nil:
		return block.TimeNanos() >= *e.AtTime
	default:
		return false
	}
}
