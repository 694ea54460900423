package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/mars-protocol/manifesto-contract/x/medal/types"
)

// InitGenesis seeds a fresh registry from an exported state.
func (k *Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := k.ContractInfo.Set(ctx, data.ContractInfo); err != nil {
		return err
	}
	if err := k.Minter.Set(ctx, data.Minter); err != nil {
		return err
	}
	if err := k.TokenCount.Set(ctx, data.TokenCount); err != nil {
		return err
	}
	if err := k.RedeemCount.Set(ctx, data.RedeemCount); err != nil {
		return err
	}
	if data.MedalRedeemAddr != "" {
		if err := k.MedalRedeemAddr.Set(ctx, data.MedalRedeemAddr); err != nil {
			return err
		}
	}
	if data.MedalRedeemInfo != nil {
		if err := k.MedalRedeemInfo.Set(ctx, *data.MedalRedeemInfo); err != nil {
			return err
		}
	}
	for _, token := range data.Tokens {
		if err := k.Tokens.Set(ctx, token.TokenId, token.Info); err != nil {
			return err
		}
		if err := k.TokensByOwner.Set(ctx, collections.Join(token.Info.Owner, token.TokenId)); err != nil {
			return err
		}
	}
	for _, grant := range data.Operators {
		if err := k.Operators.Set(ctx, collections.Join(grant.Granter, grant.Operator), grant.Expires); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis dumps the registry's state.
func (k *Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	info, err := k.ContractInfo.Get(ctx)
	if err != nil {
		return nil, err
	}
	minter, err := k.Minter.Get(ctx)
	if err != nil {
		return nil, err
	}
	tokenCount, err := k.GetTokenCount(ctx)
	if err != nil {
		return nil, err
	}
	redeemCount, err := k.GetRedeemCount(ctx)
	if err != nil {
		return nil, err
	}

	data := &types.GenesisState{
		ContractInfo: info,
		Minter:       minter,
		TokenCount:   tokenCount,
		RedeemCount:  redeemCount,
		Tokens:       []types.GenesisToken{},
		Operators:    []types.GenesisOperator{},
	}

	addr, err := k.MedalRedeemAddr.Get(ctx)
	switch {
	case err == nil:
		data.MedalRedeemAddr = addr
	case !errors.Is(err, collections.ErrNotFound):
		return nil, err
	}
	redeemInfo, err := k.MedalRedeemInfo.Get(ctx)
	switch {
	case err == nil:
		data.MedalRedeemInfo = &redeemInfo
	case !errors.Is(err, collections.ErrNotFound):
		return nil, err
	}

	err = k.Tokens.Walk(ctx, nil, func(tokenID string, token types.TokenInfo) (bool, error) {
		data.Tokens = append(data.Tokens, types.GenesisToken{TokenId: tokenID, Info: token})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.Operators.Walk(ctx, nil, func(key collections.Pair[string, string], expires types.Expiration) (bool, error) {
		data.Operators = append(data.Operators, types.GenesisOperator{
			Granter:  key.K1(),
			Operator: key.K2(),
			Expires:  expires,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}
