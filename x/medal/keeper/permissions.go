package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/mars-protocol/manifesto-contract/vm"
	"github.com/mars-protocol/manifesto-contract/x/medal/types"
)

// checkCanApprove permits the token owner or an unexpired operator of the
// owner to manage per-token approvals.
func (k Keeper) checkCanApprove(ctx context.Context, env vm.Env, sender string, token types.TokenInfo) error {
	if token.Owner == sender {
		return nil
	}
	return k.checkOperator(ctx, env, token.Owner, sender)
}

// checkCanSend permits the token owner, an unexpired per-token approval
// holder, or an unexpired operator of the owner to move the token.
func (k Keeper) checkCanSend(ctx context.Context, env vm.Env, sender string, token types.TokenInfo) error {
	if token.Owner == sender {
		return nil
	}
	for _, approval := range token.Approvals {
		if approval.Spender == sender && !approval.IsExpired(env.Block) {
			return nil
		}
	}
	return k.checkOperator(ctx, env, token.Owner, sender)
}

func (k Keeper) checkOperator(ctx context.Context, env vm.Env, granter, operator string) error {
	grant, err := k.Operators.Get(ctx, collections.Join(granter, operator))
	if errors.Is(err, collections.ErrNotFound) {
		return types.ErrUnauthorized
	}
	if err != nil {
		return err
	}
	if grant.IsExpired(env.Block) {
		return types.ErrUnauthorized
	}
	return nil
}
