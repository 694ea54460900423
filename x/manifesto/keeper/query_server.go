package keeper

import (
	"context"

	"github.com/mars-protocol/manifesto-contract/x/manifesto/types"
)

var _ types.QueryServer = Querier{}

type Querier struct {
	Keeper
}

func NewQuerier(keeper Keeper) Querier {
	return Querier{Keeper: keeper}
}

func (q Querier) Config(ctx context.Context, req *types.QueryConfig) (*types.ConfigResponse, error) {
	config, err := q.Keeper.Config.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.ConfigResponse{
		MedalAddr:         config.MedalAddr,
		MaxSigneesAllowed: config.MaxSigneesAllowed,
		Admin:             config.Admin,
	}, nil
}

func (q Querier) State(ctx context.Context, req *types.QueryState) (*types.StateResponse, error) {
	state, err := q.Keeper.State.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &types.StateResponse{SigneeCount: state.SigneesCount}, nil
}

// GetSignature fails with not found for an address that never signed.
func (q Querier) GetSignature(ctx context.Context, req *types.QueryGetSignature) (*types.SignatureResponse, error) {
	signature, err := q.Signatures.Get(ctx, req.Signee)
	if err != nil {
		return nil, err
	}
	return &types.SignatureResponse{
		Signee:      signature.Signee,
		MartianDate: signature.MartianDate,
		MartianTime: signature.MartianTime,
	}, nil
}
