package keeper

import (
	"context"

	medaltypes "github.com/mars-protocol/manifesto-contract/x/medal/types"
	"github.com/mars-protocol/manifesto-contract/x/manifesto/types"
)

// InitGenesis seeds a fresh manifesto from an exported state.
func (k *Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := k.Config.Set(ctx, data.Config); err != nil {
		return err
	}
	if err := k.State.Set(ctx, data.State); err != nil {
		return err
	}
	for _, md := range data.Metadata {
		if err := k.Metadata.Set(ctx, md.MedalAddr, md.Metadata); err != nil {
			return err
		}
	}
	for _, signature := range data.Signatures {
		if err := k.Signatures.Set(ctx, signature.Signee, signature); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis dumps the manifesto's state.
func (k *Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	config, err := k.Config.Get(ctx)
	if err != nil {
		return nil, err
	}
	state, err := k.State.Get(ctx)
	if err != nil {
		return nil, err
	}

	data := &types.GenesisState{
		Config:     config,
		State:      state,
		Metadata:   []types.GenesisMetadata{},
		Signatures: []types.Signature{},
	}

	err = k.Metadata.Walk(ctx, nil, func(medalAddr string, md medaltypes.MedalMetaData) (bool, error) {
		data.Metadata = append(data.Metadata, types.GenesisMetadata{MedalAddr: medalAddr, Metadata: md})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.Signatures.Walk(ctx, nil, func(_ string, signature types.Signature) (bool, error) {
		data.Signatures = append(data.Signatures, signature)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}
