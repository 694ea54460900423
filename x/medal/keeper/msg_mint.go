package keeper

import (
	"context"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/mars-protocol/manifesto-contract/vm"
	"github.com/mars-protocol/manifesto-contract/x/medal/types"
)

// Mint creates a new token. Minter restricted; a token_id can only ever be
// claimed once.
func (ms msgServer) Mint(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *types.MintMsg) (*vm.Response, error) {
	minter, err := ms.k.Minter.Get(ctx)
	if err != nil {
		return nil, err
	}
	if info.Sender != minter {
		return nil, types.ErrUnauthorized
	}

	if _, err := ms.k.addressCodec.StringToBytes(msg.Owner); err != nil {
		return nil, errorsmod.Wrapf(vm.ErrInvalidAddress, "owner: %s", err)
	}

	if has, err := ms.k.Tokens.Has(ctx, msg.TokenId); err != nil {
		return nil, err
	} else if has {
		return nil, types.ErrClaimed
	}

	description := ""
	if msg.Description != nil {
		description = *msg.Description
	}
	token := types.TokenInfo{
		Owner:       msg.Owner,
		Approvals:   []types.Approval{},
		Name:        msg.Name,
		Description: description,
		Image:       msg.Image,
		Extension:   msg.Extension,
	}

	if err := ms.k.Tokens.Set(ctx, msg.TokenId, token); err != nil {
		return nil, err
	}
	if err := ms.k.TokensByOwner.Set(ctx, collections.Join(token.Owner, msg.TokenId)); err != nil {
		return nil, err
	}
	if _, err := ms.k.incrementTokens(ctx); err != nil {
		return nil, err
	}

	return vm.NewResponse().
		AddAttribute(types.AttrKeyAction, types.ActionMint).
		AddAttribute(types.AttrKeyMinter, info.Sender).
		AddAttribute(types.AttrKeyTokenID, msg.TokenId), nil
}
