package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/mars-protocol/manifesto-contract/vm"
	"github.com/mars-protocol/manifesto-contract/x/medal/types"
)

type Keeper struct {
	logger       log.Logger
	addressCodec address.Codec

	Schema collections.Schema

	// state management
	ContractInfo    collections.Item[types.ContractInfo]
	Minter          collections.Item[string]
	MedalRedeemAddr collections.Item[string]
	MedalRedeemInfo collections.Item[types.MedalMetaData]
	TokenCount      collections.Item[uint64]
	RedeemCount     collections.Item[uint64]
	// Stored as (granter, operator) giving operator full control over
	// granter's tokens until the grant expires.
	Operators collections.Map[collections.Pair[string, string], types.Expiration]
	Tokens    collections.Map[string, types.TokenInfo]
	// (owner, token_id) enumeration index, maintained on every owner change.
	TokensByOwner collections.KeySet[collections.Pair[string, string]]
}

// NewKeeper creates a new Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	logger log.Logger,
	addressCodec address.Codec,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		logger:       logger,
		addressCodec: addressCodec,

		ContractInfo:    collections.NewItem(sb, types.ContractInfoKey, types.ContractInfoName, vm.JSONValue[types.ContractInfo]("contract_info")),
		Minter:          collections.NewItem(sb, types.MinterKey, types.MinterName, collections.StringValue),
		MedalRedeemAddr: collections.NewItem(sb, types.MedalRedeemKey, types.MedalRedeemName, collections.StringValue),
		MedalRedeemInfo: collections.NewItem(sb, types.MedalRedeemInfoKey, types.MedalRedeemInfoName, vm.JSONValue[types.MedalMetaData]("medal_meta_data")),
		TokenCount:      collections.NewItem(sb, types.TokenCountKey, types.TokenCountName, collections.Uint64Value),
		RedeemCount:     collections.NewItem(sb, types.RedeemCountKey, types.RedeemCountName, collections.Uint64Value),
		Operators:       collections.NewMap(sb, types.OperatorsKey, types.OperatorsName, collections.PairKeyCodec(collections.StringKey, collections.StringKey), vm.JSONValue[types.Expiration]("expiration")),
		Tokens:          collections.NewMap(sb, types.TokensKey, types.TokensName, collections.StringKey, vm.JSONValue[types.TokenInfo]("token_info")),
		TokensByOwner:   collections.NewKeySet(sb, types.TokensByOwnerKey, types.TokensByOwnerName, collections.PairKeyCodec(collections.StringKey, collections.StringKey)),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}

	k.Schema = schema

	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

// GetTokenCount returns the number of live tokens, zero before any mint.
func (k Keeper) GetTokenCount(ctx context.Context) (uint64, error) {
	count, err := k.TokenCount.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return 0, nil
	}
	return count, err
}

// GetRedeemCount returns how many tokens have ever been redeemed.
func (k Keeper) GetRedeemCount(ctx context.Context) (uint64, error) {
	count, err := k.RedeemCount.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return 0, nil
	}
	return count, err
}

func (k Keeper) incrementTokens(ctx context.Context) (uint64, error) {
	count, err := k.GetTokenCount(ctx)
	if err != nil {
		return 0, err
	}
	count++
	return count, k.TokenCount.Set(ctx, count)
}

func (k Keeper) decrementTokens(ctx context.Context) (uint64, error) {
	count, err := k.GetTokenCount(ctx)
	if err != nil {
		return 0, err
	}
	count--
	return count, k.TokenCount.Set(ctx, count)
}

func (k Keeper) incrementRedeemed(ctx context.Context) (uint64, error) {
	count, err := k.GetRedeemCount(ctx)
	if err != nil {
		return 0, err
	}
	count++
	return count, k.RedeemCount.Set(ctx, count)
}
