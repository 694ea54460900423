package testutils

import (
	"bytes"
	"testing"

	sdkaddress "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/stretchr/testify/require"

	"github.com/mars-protocol/manifesto-contract/vm"
)

// CreateIncrementalAccounts returns n distinct valid bech32 account
// addresses under the host prefix. The derivation is deterministic, so
// fixtures stay stable across runs.
func CreateIncrementalAccounts(t *testing.T, n int) []string {
	t.Helper()
	codec := sdkaddress.NewBech32Codec(vm.Bech32Prefix)

	addrs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		addr, err := codec.BytesToString(bytes.Repeat([]byte{byte(i + 1)}, 20))
		require.NoError(t, err)
		addrs = append(addrs, addr)
	}
	return addrs
}
