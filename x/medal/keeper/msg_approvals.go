package keeper

import (
	"context"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/mars-protocol/manifesto-contract/vm"
	"github.com/mars-protocol/manifesto-contract/x/medal/types"
)

// Approve grants a spender transfer rights over one token. An already
// elapsed expiration is rejected up front.
func (ms msgServer) Approve(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *types.MsgApprove) (*vm.Response, error) {
	if _, err := ms.k.updateApprovals(ctx, env, info.Sender, msg.Spender, msg.TokenId, true, msg.Expires); err != nil {
		return nil, err
	}

	return vm.NewResponse().
		AddAttribute(types.AttrKeyAction, types.ActionApprove).
		AddAttribute(types.AttrKeySender, info.Sender).
		AddAttribute(types.AttrKeySpender, msg.Spender).
		AddAttribute(types.AttrKeyTokenID, msg.TokenId), nil
}

// Revoke removes a spender's per-token approval.
func (ms msgServer) Revoke(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *types.MsgRevoke) (*vm.Response, error) {
	if _, err := ms.k.updateApprovals(ctx, env, info.Sender, msg.Spender, msg.TokenId, false, nil); err != nil {
		return nil, err
	}

	return vm.NewResponse().
		AddAttribute(types.AttrKeyAction, types.ActionRevoke).
		AddAttribute(types.AttrKeySender, info.Sender).
		AddAttribute(types.AttrKeySpender, msg.Spender).
		AddAttribute(types.AttrKeyTokenID, msg.TokenId), nil
}

// ApproveAll grants an operator blanket control over the sender's tokens.
func (ms msgServer) ApproveAll(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *types.MsgApproveAll) (*vm.Response, error) {
	expires := types.NeverExpires()
	if msg.Expires != nil {
		expires = *msg.Expires
	}
	if expires.IsExpired(env.Block) {
		return nil, types.ErrExpired
	}

	if _, err := ms.k.addressCodec.StringToBytes(msg.Operator); err != nil {
		return nil, errorsmod.Wrapf(vm.ErrInvalidAddress, "operator: %s", err)
	}
	if err := ms.k.Operators.Set(ctx, collections.Join(info.Sender, msg.Operator), expires); err != nil {
		return nil, err
	}

	return vm.NewResponse().
		AddAttribute(types.AttrKeyAction, types.ActionApproveAll).
		AddAttribute(types.AttrKeySender, info.Sender).
		AddAttribute(types.AttrKeyOperator, msg.Operator), nil
}

// RevokeAll removes an operator grant. Removing an absent grant is a no-op,
// matching the original registry.
func (ms msgServer) RevokeAll(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *types.MsgRevokeAll) (*vm.Response, error) {
	if _, err := ms.k.addressCodec.StringToBytes(msg.Operator); err != nil {
		return nil, errorsmod.Wrapf(vm.ErrInvalidAddress, "operator: %s", err)
	}
	if err := ms.k.Operators.Remove(ctx, collections.Join(info.Sender, msg.Operator)); err != nil {
		return nil, err
	}

	return vm.NewResponse().
		AddAttribute(types.AttrKeyAction, types.ActionRevokeAll).
		AddAttribute(types.AttrKeySender, info.Sender).
		AddAttribute(types.AttrKeyOperator, msg.Operator), nil
}

// updateApprovals removes any existing approval for the spender and, when
// adding, appends the new one with its (unexpired) expiration.
func (k Keeper) updateApprovals(ctx context.Context, env vm.Env, sender, spender, tokenID string, add bool, expires *types.Expiration) (types.TokenInfo, error) {
	token, err := k.Tokens.Get(ctx, tokenID)
	if err != nil {
		return types.TokenInfo{}, err
	}
	if err := k.checkCanApprove(ctx, env, sender, token); err != nil {
		return types.TokenInfo{}, err
	}

	if _, err := k.addressCodec.StringToBytes(spender); err != nil {
		return types.TokenInfo{}, errorsmod.Wrapf(vm.ErrInvalidAddress, "spender: %s", err)
	}

	kept := token.Approvals[:0]
	for _, approval := range token.Approvals {
		if approval.Spender != spender {
			kept = append(kept, approval)
		}
	}
	token.Approvals = kept

	if add {
		expiration := types.NeverExpires()
		if expires != nil {
			expiration = *expires
		}
		if expiration.IsExpired(env.Block) {
			return types.TokenInfo{}, types.ErrExpired
		}
		token.Approvals = append(token.Approvals, types.Approval{Spender: spender, Expires: expiration})
	}

	if err := k.Tokens.Set(ctx, tokenID, token); err != nil {
		return types.TokenInfo{}, err
	}
	return token, nil
}
