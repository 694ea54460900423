package keeper_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/log"

	"github.com/mars-protocol/manifesto-contract/testutils"
	"github.com/mars-protocol/manifesto-contract/vm"
	"github.com/mars-protocol/manifesto-contract/x/manifesto"
	"github.com/mars-protocol/manifesto-contract/x/manifesto/keeper"
	"github.com/mars-protocol/manifesto-contract/x/manifesto/types"
	"github.com/mars-protocol/manifesto-contract/x/medal"
	medalkeeper "github.com/mars-protocol/manifesto-contract/x/medal/keeper"
	medaltypes "github.com/mars-protocol/manifesto-contract/x/medal/types"
	"github.com/mars-protocol/manifesto-contract/x/medalredeem"
)

const (
	martianDate = "20 Virgo, 11 BML"
	martianTime = "14:17:14 AMT"
)

type testFixture struct {
	t    *testing.T
	host *vm.Host

	addrs           []string
	admin           string
	manifestoAddr   string
	medalAddr       string
	medalRedeemAddr string

	k keeper.Keeper
}

// SetupTest deploys the full three-contract stack in its canonical order
// (medal-redeem, medal, manifesto) and runs the admin wiring calls.
func SetupTest(t *testing.T, maxSignees uint64) *testFixture {
	t.Helper()
	logger := log.NewTestLogger(t)

	f := &testFixture{
		t:     t,
		host:  vm.NewHost(logger),
		addrs: testutils.CreateIncrementalAccounts(t, 15),
	}
	f.admin = f.addrs[0]
	f.manifestoAddr = f.addrs[12]
	f.medalAddr = f.addrs[13]
	f.medalRedeemAddr = f.addrs[14]

	rk := medalkeeper.NewKeeper(f.host.StoreService(f.medalRedeemAddr), logger, f.host.AddressCodec())
	_, err := f.host.Instantiate(f.medalRedeemAddr, f.admin, medalredeem.NewContract(rk), medaltypes.InstantiateMsg{
		Name:   "Mars Manifesto Redeemed Medals",
		Symbol: "MEDALR",
		Minter: f.medalAddr,
	})
	require.NoError(t, err)

	mk := medalkeeper.NewKeeper(f.host.StoreService(f.medalAddr), logger, f.host.AddressCodec())
	_, err = f.host.Instantiate(f.medalAddr, f.admin, medal.NewContract(mk), medaltypes.InstantiateMsg{
		Name:   "Mars Manifesto Medals",
		Symbol: "MEDAL",
		Minter: f.manifestoAddr,
	})
	require.NoError(t, err)

	f.k = keeper.NewKeeper(f.host.StoreService(f.manifestoAddr), logger, f.host.AddressCodec())
	_, err = f.host.Instantiate(f.manifestoAddr, f.admin, manifesto.NewContract(f.k), types.InstantiateMsg{
		MaxSigneesLimit: maxSignees,
		Admin:           f.admin,
	})
	require.NoError(t, err)

	_, err = f.execute(f.admin, types.ExecuteMsg{UpdateMedalConfig: &types.MsgUpdateMedalConfig{
		MedalAddr: f.medalAddr,
		Metadata: medaltypes.Metadata{
			Name:        medaltypes.StringPtr("Mars Manifesto Medal"),
			Description: medaltypes.StringPtr("Awarded for signing the Mars Manifesto"),
			Image:       medaltypes.StringPtr("ipfs://medal.png"),
			ExternalUrl: medaltypes.StringPtr("ipfs://medal.json"),
		},
	}})
	require.NoError(t, err)

	_, err = f.execute(f.admin, types.ExecuteMsg{UpdateMedalRedeemConfig: &types.MsgUpdateMedalRedeemConfig{
		MedalRedeemAddr: f.medalRedeemAddr,
		Metadata: medaltypes.MedalMetaData{
			NamePrefix:  "Redeemed Mars Medal",
			Description: "Proof of a redeemed manifesto medal",
			Image:       "ipfs://redeemed.png",
			TokenUri:    "ipfs://redeemed.json",
		},
	}})
	require.NoError(t, err)

	return f
}

func (f *testFixture) execute(sender string, msg types.ExecuteMsg) ([]vm.Event, error) {
	return f.host.Execute(f.manifestoAddr, sender, msg)
}

func (f *testFixture) sign(sender, date, time string) ([]vm.Event, error) {
	return f.execute(sender, types.ExecuteMsg{SignManifesto: &types.MsgSignManifesto{
		MartianDate: date,
		MartianTime: time,
	}})
}

func (f *testFixture) config() types.ConfigResponse {
	f.t.Helper()
	var res types.ConfigResponse
	err := f.host.Query(f.manifestoAddr, types.QueryMsg{Config: &types.QueryConfig{}}, &res)
	require.NoError(f.t, err)
	return res
}

func (f *testFixture) signeeCount() uint64 {
	f.t.Helper()
	var res types.StateResponse
	err := f.host.Query(f.manifestoAddr, types.QueryMsg{State: &types.QueryState{}}, &res)
	require.NoError(f.t, err)
	return res.SigneeCount
}

func (f *testFixture) signature(signee string) (types.SignatureResponse, error) {
	var res types.SignatureResponse
	err := f.host.Query(f.manifestoAddr, types.QueryMsg{GetSignature: &types.QueryGetSignature{Signee: signee}}, &res)
	return res, err
}

func TestInstantiate(t *testing.T) {
	logger := log.NewTestLogger(t)
	host := vm.NewHost(logger)
	addrs := testutils.CreateIncrementalAccounts(t, 3)
	k := keeper.NewKeeper(host.StoreService(addrs[2]), logger, host.AddressCodec())

	t.Run("fail: invalid admin", func(t *testing.T) {
		_, err := host.Instantiate(addrs[2], addrs[0], manifesto.NewContract(k), types.InstantiateMsg{
			MaxSigneesLimit: 5,
			Admin:           "mars1garbage",
		})
		require.ErrorIs(t, err, vm.ErrInvalidAddress)
	})

	t.Run("success", func(t *testing.T) {
		_, err := host.Instantiate(addrs[2], addrs[0], manifesto.NewContract(k), types.InstantiateMsg{
			MaxSigneesLimit: 5,
			Admin:           addrs[0],
		})
		require.NoError(t, err)

		var config types.ConfigResponse
		require.NoError(t, host.Query(addrs[2], types.QueryMsg{Config: &types.QueryConfig{}}, &config))
		require.Equal(t, addrs[0], config.Admin)
		require.EqualValues(t, 5, config.MaxSigneesAllowed)
		require.Empty(t, config.MedalAddr)

		var state types.StateResponse
		require.NoError(t, host.Query(addrs[2], types.QueryMsg{State: &types.QueryState{}}, &state))
		require.EqualValues(t, 0, state.SigneeCount)
	})
}

func TestSignManifesto(t *testing.T) {
	f := SetupTest(t, 100)
	signee := f.addrs[1]

	events, err := f.sign(signee, martianDate, martianTime)
	require.NoError(t, err)

	// entry event plus the dispatched medal mint
	require.Len(t, events, 2)
	require.Equal(t, f.manifestoAddr, events[0].Contract)
	require.Contains(t, events[0].Attributes, vm.Attribute{Key: "action", Value: "sign_manifesto"})
	require.Contains(t, events[0].Attributes, vm.Attribute{Key: "signee", Value: signee})
	require.Contains(t, events[0].Attributes, vm.Attribute{Key: "signee_count", Value: "1"})
	require.Equal(t, f.medalAddr, events[1].Contract)
	require.Contains(t, events[1].Attributes, vm.Attribute{Key: "action", Value: "mint"})
	require.Contains(t, events[1].Attributes, vm.Attribute{Key: "token_id", Value: "1"})

	require.EqualValues(t, 1, f.signeeCount())

	sig, err := f.signature(signee)
	require.NoError(t, err)
	require.Equal(t, signee, sig.Signee)
	require.Equal(t, martianDate, sig.MartianDate)
	require.Equal(t, martianTime, sig.MartianTime)

	var minted medaltypes.AllNftInfoResponse
	require.NoError(t, f.host.Query(f.medalAddr, medaltypes.QueryMsg{AllNftInfo: &medaltypes.QueryAllNftInfo{TokenId: "1"}}, &minted))
	require.Equal(t, signee, minted.Access.Owner)
	require.Equal(t, "Mars Manifesto Medal #1", minted.Info.Name)
	require.Contains(t, minted.Info.Extension.Attributes, medaltypes.Trait{TraitType: "martian_date", Value: martianDate})
	require.Contains(t, minted.Info.Extension.Attributes, medaltypes.Trait{TraitType: "martian_time", Value: martianTime})
}

func TestSignManifestoDuplicate(t *testing.T) {
	f := SetupTest(t, 100)
	signee := f.addrs[1]

	_, err := f.sign(signee, martianDate, martianTime)
	require.NoError(t, err)

	_, err = f.sign(signee, martianDate, martianTime)
	require.ErrorContains(t, err, "User has already signed the Manifesto")
	require.EqualValues(t, 1, f.signeeCount())
}

func TestSignManifestoCap(t *testing.T) {
	f := SetupTest(t, 2)

	_, err := f.sign(f.addrs[1], martianDate, martianTime)
	require.NoError(t, err)
	_, err = f.sign(f.addrs[2], martianDate, martianTime)
	require.NoError(t, err)

	_, err = f.sign(f.addrs[3], martianDate, martianTime)
	require.ErrorContains(t, err, "Max signee limit reached")
	require.EqualValues(t, 2, f.signeeCount())
}

func TestSignManifestoValidation(t *testing.T) {
	f := SetupTest(t, 100)

	testCases := []struct {
		name   string
		date   string
		time   string
		errMsg string
	}{
		{name: "time one byte short", date: martianDate, time: strings.Repeat("t", 11), errMsg: "Invalid Martian Time"},
		{name: "time one byte long", date: martianDate, time: strings.Repeat("t", 13), errMsg: "Invalid Martian Time"},
		{name: "date one byte short", date: strings.Repeat("d", 11), time: martianTime, errMsg: "Invalid Martian Date"},
		{name: "date one byte long", date: strings.Repeat("d", 25), time: martianTime, errMsg: "Invalid Martian Date"},
		{name: "time checked before date", date: strings.Repeat("d", 11), time: strings.Repeat("t", 11), errMsg: "Invalid Martian Time"},
		{name: "date at lower bound", date: strings.Repeat("d", 12), time: martianTime},
		{name: "date at upper bound", date: strings.Repeat("d", 24), time: martianTime},
	}

	for i, tc := range testCases {
		tc := tc
		signee := f.addrs[i+1]
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.sign(signee, tc.date, tc.time)
			if tc.errMsg != "" {
				require.ErrorContains(t, err, tc.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSignManifestoAtomicity(t *testing.T) {
	// no medal registry wired: the deferred mint cannot dispatch and the
	// whole transaction, signature included, must roll back
	logger := log.NewTestLogger(t)
	host := vm.NewHost(logger)
	addrs := testutils.CreateIncrementalAccounts(t, 3)
	contractAddr, admin, signee := addrs[2], addrs[0], addrs[1]

	k := keeper.NewKeeper(host.StoreService(contractAddr), logger, host.AddressCodec())
	_, err := host.Instantiate(contractAddr, admin, manifesto.NewContract(k), types.InstantiateMsg{
		MaxSigneesLimit: 5,
		Admin:           admin,
	})
	require.NoError(t, err)

	_, err = host.Execute(contractAddr, signee, types.ExecuteMsg{SignManifesto: &types.MsgSignManifesto{
		MartianDate: martianDate,
		MartianTime: martianTime,
	}})
	require.ErrorIs(t, err, vm.ErrUnknownContract)

	var state types.StateResponse
	require.NoError(t, host.Query(contractAddr, types.QueryMsg{State: &types.QueryState{}}, &state))
	require.EqualValues(t, 0, state.SigneeCount)

	var sig types.SignatureResponse
	err = host.Query(contractAddr, types.QueryMsg{GetSignature: &types.QueryGetSignature{Signee: signee}}, &sig)
	require.ErrorContains(t, err, "not found")
}

func TestUpdateAdmin(t *testing.T) {
	f := SetupTest(t, 100)
	newAdmin := f.addrs[1]

	t.Run("fail: not the admin", func(t *testing.T) {
		_, err := f.execute(newAdmin, types.ExecuteMsg{UpdateAdmin: &types.MsgUpdateAdmin{NewAdmin: newAdmin}})
		require.ErrorContains(t, err, "Unauthorized")
	})

	t.Run("fail: invalid new admin", func(t *testing.T) {
		_, err := f.execute(f.admin, types.ExecuteMsg{UpdateAdmin: &types.MsgUpdateAdmin{NewAdmin: "mars1garbage"}})
		require.ErrorIs(t, err, vm.ErrInvalidAddress)
	})

	t.Run("success: role moves to the new admin", func(t *testing.T) {
		_, err := f.execute(f.admin, types.ExecuteMsg{UpdateAdmin: &types.MsgUpdateAdmin{NewAdmin: newAdmin}})
		require.NoError(t, err)
		require.Equal(t, newAdmin, f.config().Admin)

		// the old admin is locked out, the new one is in charge
		_, err = f.execute(f.admin, types.ExecuteMsg{UpdateAdmin: &types.MsgUpdateAdmin{NewAdmin: f.admin}})
		require.ErrorContains(t, err, "Unauthorized")

		_, err = f.execute(newAdmin, types.ExecuteMsg{UpdateAdmin: &types.MsgUpdateAdmin{NewAdmin: f.admin}})
		require.NoError(t, err)
		require.Equal(t, f.admin, f.config().Admin)
	})
}

func TestUpdateMedalConfig(t *testing.T) {
	f := SetupTest(t, 100)

	t.Run("fail: not the admin", func(t *testing.T) {
		_, err := f.execute(f.addrs[1], types.ExecuteMsg{UpdateMedalConfig: &types.MsgUpdateMedalConfig{
			MedalAddr: f.medalAddr,
		}})
		require.ErrorContains(t, err, "Unauthorized")
	})

	t.Run("template feeds subsequent mints", func(t *testing.T) {
		_, err := f.execute(f.admin, types.ExecuteMsg{UpdateMedalConfig: &types.MsgUpdateMedalConfig{
			MedalAddr: f.medalAddr,
			Metadata:  medaltypes.Metadata{Name: medaltypes.StringPtr("Pioneer Medal")},
		}})
		require.NoError(t, err)
		require.Equal(t, f.medalAddr, f.config().MedalAddr)

		_, err = f.sign(f.addrs[1], martianDate, martianTime)
		require.NoError(t, err)

		var info medaltypes.NftInfoResponse
		require.NoError(t, f.host.Query(f.medalAddr, medaltypes.QueryMsg{NftInfo: &medaltypes.QueryNftInfo{TokenId: "1"}}, &info))
		require.Equal(t, "Pioneer Medal #1", info.Name)
	})
}

func TestUpdateMedalRedeemConfigForwards(t *testing.T) {
	f := SetupTest(t, 100)

	t.Run("fail: not the admin", func(t *testing.T) {
		_, err := f.execute(f.addrs[1], types.ExecuteMsg{UpdateMedalRedeemConfig: &types.MsgUpdateMedalRedeemConfig{
			MedalRedeemAddr: f.medalRedeemAddr,
		}})
		require.ErrorContains(t, err, "Unauthorized")
	})

	t.Run("the medal registry learns the link in the same transaction", func(t *testing.T) {
		metadata := medaltypes.MedalMetaData{
			NamePrefix:  "Veteran Medal",
			Description: "updated",
			Image:       "ipfs://veteran.png",
			TokenUri:    "ipfs://veteran.json",
		}
		events, err := f.execute(f.admin, types.ExecuteMsg{UpdateMedalRedeemConfig: &types.MsgUpdateMedalRedeemConfig{
			MedalRedeemAddr: f.medalRedeemAddr,
			Metadata:        metadata,
		}})
		require.NoError(t, err)
		require.Len(t, events, 2)

		var res medaltypes.MedalRedeemConfigResponse
		require.NoError(t, f.host.Query(f.medalAddr, medaltypes.QueryMsg{MedalRedeemConfig: &medaltypes.QueryMedalRedeemConfig{}}, &res))
		require.Equal(t, f.medalRedeemAddr, res.MedalRedeemAddr)
		require.Equal(t, metadata, res.Metadata)
	})
}

// TestFullMedalLifecycle walks a medal from signing to redemption across
// all three contracts.
func TestFullMedalLifecycle(t *testing.T) {
	f := SetupTest(t, 100)
	signee := f.addrs[1]

	_, err := f.sign(signee, martianDate, martianTime)
	require.NoError(t, err)

	_, err = f.host.Execute(f.medalAddr, signee, medaltypes.ExecuteMsg{RedeemMedal: &medaltypes.MsgRedeemMedal{TokenId: "1"}})
	require.NoError(t, err)

	var live medaltypes.NumTokensResponse
	require.NoError(t, f.host.Query(f.medalAddr, medaltypes.QueryMsg{NumTokens: &medaltypes.QueryNumTokens{}}, &live))
	require.EqualValues(t, 0, live.Count)

	var redeemed medaltypes.AllNftInfoResponse
	require.NoError(t, f.host.Query(f.medalRedeemAddr, medaltypes.QueryMsg{AllNftInfo: &medaltypes.QueryAllNftInfo{TokenId: "1"}}, &redeemed))
	require.Equal(t, signee, redeemed.Access.Owner)
	require.Equal(t, "Redeemed Mars Medal #1", redeemed.Info.Name)
	require.Contains(t, redeemed.Info.Extension.Attributes, medaltypes.Trait{TraitType: "MEDAL", Value: "1"})

	// the signature itself is permanent
	sig, err := f.signature(signee)
	require.NoError(t, err)
	require.Equal(t, signee, sig.Signee)
	require.EqualValues(t, 1, f.signeeCount())
}

func TestGenesisImportExport(t *testing.T) {
	f := SetupTest(t, 100)
	_, err := f.sign(f.addrs[1], martianDate, martianTime)
	require.NoError(t, err)
	_, err = f.sign(f.addrs[2], strings.Repeat("d", 12), martianTime)
	require.NoError(t, err)

	var exported *types.GenesisState
	require.NoError(t, f.host.RunTx(func(ctx context.Context) error {
		exported, err = f.k.ExportGenesis(ctx)
		return err
	}))
	require.EqualValues(t, 2, exported.State.SigneesCount)
	require.Len(t, exported.Signatures, 2)
	require.Len(t, exported.Metadata, 1)

	logger := log.NewTestLogger(t)
	fresh := vm.NewHost(logger)
	freshKeeper := keeper.NewKeeper(fresh.StoreService(f.manifestoAddr), logger, fresh.AddressCodec())
	require.NoError(t, fresh.RunTx(func(ctx context.Context) error {
		return freshKeeper.InitGenesis(ctx, exported)
	}))

	var reexported *types.GenesisState
	require.NoError(t, fresh.RunTx(func(ctx context.Context) error {
		reexported, err = freshKeeper.ExportGenesis(ctx)
		return err
	}))
	require.Equal(t, exported, reexported)
}
