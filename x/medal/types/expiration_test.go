package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mars-protocol/manifesto-contract/vm"
	"github.com/mars-protocol/manifesto-contract/x/medal/types"
)

func TestExpirationIsExpired(t *testing.T) {
	now := time.Unix(1571797419, 0).UTC()
	block := vm.BlockInfo{Height: 100, Time: now}

	testCases := []struct {
		name    string
		expires types.Expiration
		expired bool
	}{
		{name: "never", expires: types.NeverExpires(), expired: false},
		{name: "zero value behaves like never", expires: types.Expiration{}, expired: false},
		{name: "height in the future", expires: types.ExpiresAtHeight(101), expired: false},
		{name: "height reached", expires: types.ExpiresAtHeight(100), expired: true},
		{name: "height passed", expires: types.ExpiresAtHeight(99), expired: true},
		{name: "time in the future", expires: types.ExpiresAtTime(uint64(now.UnixNano()) + 1), expired: false},
		{name: "time reached", expires: types.ExpiresAtTime(uint64(now.UnixNano())), expired: true},
		{name: "time passed", expires: types.ExpiresAtTime(1), expired: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expired, tc.expires.IsExpired(block))
		})
	}
}

func TestApprovalIsExpired(t *testing.T) {
	block := vm.BlockInfo{Height: 50, Time: time.Unix(1571797419, 0).UTC()}

	approval := types.Approval{Spender: "spender", Expires: types.ExpiresAtHeight(50)}
	require.True(t, approval.IsExpired(block))

	approval.Expires = types.NeverExpires()
	require.False(t, approval.IsExpired(block))
}
