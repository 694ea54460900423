package keeper

import (
	"context"

	"cosmossdk.io/collections"

	"github.com/mars-protocol/manifesto-contract/x/medal/types"
)

var _ types.QueryServer = Querier{}

type Querier struct {
	Keeper
}

func NewQuerier(keeper Keeper) Querier {
	return Querier{Keeper: keeper}
}

func (q Querier) ContractInfo(ctx context.Context, req *types.QueryContractInfo) (*types.ContractInfoResponse, error) {
	info, err := q.Keeper.ContractInfo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.ContractInfoResponse{Name: info.Name, Symbol: info.Symbol}, nil
}

func (q Querier) Minter(ctx context.Context, req *types.QueryMinter) (*types.MinterResponse, error) {
	minter, err := q.Keeper.Minter.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.MinterResponse{Minter: minter}, nil
}

func (q Querier) NumTokens(ctx context.Context, req *types.QueryNumTokens) (*types.NumTokensResponse, error) {
	count, err := q.GetTokenCount(ctx)
	if err != nil {
		return nil, err
	}
	return &types.NumTokensResponse{Count: count}, nil
}

func (q Querier) NumRedeemedTokens(ctx context.Context, req *types.QueryNumRedeemedTokens) (*types.NumRedeemedTokensResponse, error) {
	count, err := q.GetRedeemCount(ctx)
	if err != nil {
		return nil, err
	}
	return &types.NumRedeemedTokensResponse{Count: count}, nil
}

func (q Querier) OwnerOf(ctx context.Context, req *types.QueryOwnerOf) (*types.OwnerOfResponse, error) {
	token, err := q.Keeper.Tokens.Get(ctx, req.TokenId)
	if err != nil {
		return nil, err
	}
	return &types.OwnerOfResponse{Owner: token.Owner, Approvals: token.Approvals}, nil
}

func (q Querier) NftInfo(ctx context.Context, req *types.QueryNftInfo) (*types.NftInfoResponse, error) {
	token, err := q.Keeper.Tokens.Get(ctx, req.TokenId)
	if err != nil {
		return nil, err
	}
	return nftInfo(token), nil
}

func (q Querier) AllNftInfo(ctx context.Context, req *types.QueryAllNftInfo) (*types.AllNftInfoResponse, error) {
	token, err := q.Keeper.Tokens.Get(ctx, req.TokenId)
	if err != nil {
		return nil, err
	}
	return &types.AllNftInfoResponse{
		Access: types.OwnerOfResponse{Owner: token.Owner, Approvals: token.Approvals},
		Info:   *nftInfo(token),
	}, nil
}

// Tokens lists token ids owned by one address, lexicographic, paginated.
func (q Querier) Tokens(ctx context.Context, req *types.QueryTokens) (*types.TokensResponse, error) {
	limit := queryLimit(req.Limit)
	rng := collections.NewPrefixedPairRange[string, string](req.Owner)
	if req.StartAfter != nil {
		rng = rng.StartExclusive(*req.StartAfter)
	}

	tokens := []string{}
	err := q.TokensByOwner.Walk(ctx, rng, func(key collections.Pair[string, string]) (bool, error) {
		if len(tokens) >= limit {
			return true, nil
		}
		tokens = append(tokens, key.K2())
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return &types.TokensResponse{Tokens: tokens}, nil
}

// AllTokens lists every live token id, lexicographic, paginated.
func (q Querier) AllTokens(ctx context.Context, req *types.QueryAllTokens) (*types.TokensResponse, error) {
	limit := queryLimit(req.Limit)
	// a typed-nil *Range would slip past Walk's nil check and panic
	var rng collections.Ranger[string]
	if req.StartAfter != nil {
		rng = new(collections.Range[string]).StartExclusive(*req.StartAfter)
	}

	tokens := []string{}
	err := q.Keeper.Tokens.Walk(ctx, rng, func(tokenID string, _ types.TokenInfo) (bool, error) {
		if len(tokens) >= limit {
			return true, nil
		}
		tokens = append(tokens, tokenID)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return &types.TokensResponse{Tokens: tokens}, nil
}

func (q Querier) MedalRedeemConfig(ctx context.Context, req *types.QueryMedalRedeemConfig) (*types.MedalRedeemConfigResponse, error) {
	addr, err := q.MedalRedeemAddr.Get(ctx)
	if err != nil {
		return nil, err
	}
	metadata, err := q.MedalRedeemInfo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.MedalRedeemConfigResponse{MedalRedeemAddr: addr, Metadata: metadata}, nil
}

func nftInfo(token types.TokenInfo) *types.NftInfoResponse {
	return &types.NftInfoResponse{
		Name:        token.Name,
		Description: token.Description,
		Image:       token.Image,
		Extension:   token.Extension,
	}
}

func queryLimit(limit *uint32) int {
	if limit == nil {
		return types.DefaultQueryLimit
	}
	if *limit > types.MaxQueryLimit {
		return types.MaxQueryLimit
	}
	return int(*limit)
}
