package keeper

import (
	"context"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/mars-protocol/manifesto-contract/vm"
	"github.com/mars-protocol/manifesto-contract/x/medal/types"
)

// TransferNft moves a token to a new owner and clears its approvals.
func (ms msgServer) TransferNft(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *types.MsgTransferNft) (*vm.Response, error) {
	if _, err := ms.k.transferNft(ctx, env, info.Sender, msg.Recipient, msg.TokenId); err != nil {
		return nil, err
	}

	return vm.NewResponse().
		AddAttribute(types.AttrKeyAction, types.ActionTransferNft).
		AddAttribute(types.AttrKeySender, info.Sender).
		AddAttribute(types.AttrKeyRecipient, msg.Recipient).
		AddAttribute(types.AttrKeyTokenID, msg.TokenId), nil
}

// SendNft transfers the token to a contract and notifies it with a
// receive message dispatched in the same atomic scope.
func (ms msgServer) SendNft(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *types.MsgSendNft) (*vm.Response, error) {
	if _, err := ms.k.transferNft(ctx, env, info.Sender, msg.Contract, msg.TokenId); err != nil {
		return nil, err
	}

	resp := vm.NewResponse().
		AddAttribute(types.AttrKeyAction, types.ActionSendNft).
		AddAttribute(types.AttrKeySender, info.Sender).
		AddAttribute(types.AttrKeyRecipient, msg.Contract).
		AddAttribute(types.AttrKeyTokenID, msg.TokenId)

	receive := types.ReceiveMsg{ReceiveNft: &types.Cw721ReceiveMsg{
		Sender:  info.Sender,
		TokenId: msg.TokenId,
		Msg:     msg.Msg,
	}}
	if err := resp.AddMessage(msg.Contract, receive); err != nil {
		return nil, err
	}
	return resp, nil
}

// transferNft is the shared ownership move: permission check, owner swap,
// approval wipe, owner index maintenance.
func (k Keeper) transferNft(ctx context.Context, env vm.Env, sender, recipient, tokenID string) (types.TokenInfo, error) {
	token, err := k.Tokens.Get(ctx, tokenID)
	if err != nil {
		return types.TokenInfo{}, err
	}
	if err := k.checkCanSend(ctx, env, sender, token); err != nil {
		return types.TokenInfo{}, err
	}

	if _, err := k.addressCodec.StringToBytes(recipient); err != nil {
		return types.TokenInfo{}, errorsmod.Wrapf(vm.ErrInvalidAddress, "recipient: %s", err)
	}

	if err := k.TokensByOwner.Remove(ctx, collections.Join(token.Owner, tokenID)); err != nil {
		return types.TokenInfo{}, err
	}
	token.Owner = recipient
	token.Approvals = []types.Approval{}
	if err := k.Tokens.Set(ctx, tokenID, token); err != nil {
		return types.TokenInfo{}, err
	}
	if err := k.TokensByOwner.Set(ctx, collections.Join(token.Owner, tokenID)); err != nil {
		return types.TokenInfo{}, err
	}
	return token, nil
}
