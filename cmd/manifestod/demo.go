package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/mars-protocol/manifesto-contract/vm"
	"github.com/mars-protocol/manifesto-contract/x/manifesto"
	manifestokeeper "github.com/mars-protocol/manifesto-contract/x/manifesto/keeper"
	manifestotypes "github.com/mars-protocol/manifesto-contract/x/manifesto/types"
	"github.com/mars-protocol/manifesto-contract/x/medal"
	medalkeeper "github.com/mars-protocol/manifesto-contract/x/medal/keeper"
	medaltypes "github.com/mars-protocol/manifesto-contract/x/medal/types"
	"github.com/mars-protocol/manifesto-contract/x/medalredeem"
)

// NewDemoCmd runs the full lifecycle against an in-memory host: deploy the
// three contracts, wire them, let a few accounts sign, redeem one medal and
// dump the resulting state.
func NewDemoCmd() *cobra.Command {
	var (
		maxSignees uint64
		signees    int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Deploy the manifesto stack in memory and run a signing round",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, maxSignees, signees)
		},
	}

	cmd.Flags().Uint64Var(&maxSignees, "max-signees", 100, "signee cap configured at deployment")
	cmd.Flags().IntVar(&signees, "signees", 3, "number of accounts that sign")

	return cmd
}

func runDemo(cmd *cobra.Command, maxSignees uint64, signees int) error {
	logger := log.NewLogger(os.Stderr)
	host := vm.NewHost(logger)

	// deterministic demo accounts; the last three slots become the
	// contract addresses
	accounts := make([]string, signees+4)
	for i := range accounts {
		addr, err := host.AddressCodec().BytesToString(bytes.Repeat([]byte{byte(i + 1)}, 20))
		if err != nil {
			return err
		}
		accounts[i] = addr
	}
	admin := accounts[0]
	manifestoAddr := accounts[signees+1]
	medalAddr := accounts[signees+2]
	medalRedeemAddr := accounts[signees+3]

	rk := medalkeeper.NewKeeper(host.StoreService(medalRedeemAddr), logger, host.AddressCodec())
	if _, err := host.Instantiate(medalRedeemAddr, admin, medalredeem.NewContract(rk), medaltypes.InstantiateMsg{
		Name:   "Mars Manifesto Redeemed Medals",
		Symbol: "MEDALR",
		Minter: medalAddr,
	}); err != nil {
		return err
	}

	mk := medalkeeper.NewKeeper(host.StoreService(medalAddr), logger, host.AddressCodec())
	if _, err := host.Instantiate(medalAddr, admin, medal.NewContract(mk), medaltypes.InstantiateMsg{
		Name:   "Mars Manifesto Medals",
		Symbol: "MEDAL",
		Minter: manifestoAddr,
	}); err != nil {
		return err
	}

	manifestoK := manifestokeeper.NewKeeper(host.StoreService(manifestoAddr), logger, host.AddressCodec())
	if _, err := host.Instantiate(manifestoAddr, admin, manifesto.NewContract(manifestoK), manifestotypes.InstantiateMsg{
		MaxSigneesLimit: maxSignees,
		Admin:           admin,
	}); err != nil {
		return err
	}

	if _, err := host.Execute(manifestoAddr, admin, manifestotypes.ExecuteMsg{UpdateMedalConfig: &manifestotypes.MsgUpdateMedalConfig{
		MedalAddr: medalAddr,
		Metadata: medaltypes.Metadata{
			Name:        medaltypes.StringPtr("Mars Manifesto Medal"),
			Description: medaltypes.StringPtr("Awarded for signing the Mars Manifesto"),
			Image:       medaltypes.StringPtr("ipfs://medal.png"),
			ExternalUrl: medaltypes.StringPtr("ipfs://medal.json"),
		},
	}}); err != nil {
		return err
	}
	if _, err := host.Execute(manifestoAddr, admin, manifestotypes.ExecuteMsg{UpdateMedalRedeemConfig: &manifestotypes.MsgUpdateMedalRedeemConfig{
		MedalRedeemAddr: medalRedeemAddr,
		Metadata: medaltypes.MedalMetaData{
			NamePrefix:  "Redeemed Mars Medal",
			Description: "Proof of a redeemed manifesto medal",
			Image:       "ipfs://redeemed.png",
			TokenUri:    "ipfs://redeemed.json",
		},
	}}); err != nil {
		return err
	}

	for i := 1; i <= signees; i++ {
		events, err := host.Execute(manifestoAddr, accounts[i], manifestotypes.ExecuteMsg{SignManifesto: &manifestotypes.MsgSignManifesto{
			MartianDate: "20 Virgo, 11 BML",
			MartianTime: "14:17:14 AMT",
		}})
		if err != nil {
			return err
		}
		printEvents(cmd, events)
	}

	// the first signee trades medal #1 in for its redeemed counterpart
	events, err := host.Execute(medalAddr, accounts[1], medaltypes.ExecuteMsg{RedeemMedal: &medaltypes.MsgRedeemMedal{TokenId: "1"}})
	if err != nil {
		return err
	}
	printEvents(cmd, events)

	var state manifestotypes.StateResponse
	if err := host.Query(manifestoAddr, manifestotypes.QueryMsg{State: &manifestotypes.QueryState{}}, &state); err != nil {
		return err
	}
	var live medaltypes.NumTokensResponse
	if err := host.Query(medalAddr, medaltypes.QueryMsg{NumTokens: &medaltypes.QueryNumTokens{}}, &live); err != nil {
		return err
	}
	var redeemed medaltypes.NumTokensResponse
	if err := host.Query(medalRedeemAddr, medaltypes.QueryMsg{NumTokens: &medaltypes.QueryNumTokens{}}, &redeemed); err != nil {
		return err
	}

	cmd.Printf("signees: %d, live medals: %d, redeemed medals: %d\n", state.SigneeCount, live.Count, redeemed.Count)
	return nil
}

func printEvents(cmd *cobra.Command, events []vm.Event) {
	for _, event := range events {
		bz, err := json.Marshal(event)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStderr(), err)
			continue
		}
		cmd.Println(string(bz))
	}
}
