package keeper

import (
	"context"
	"fmt"
	"strconv"

	"cosmossdk.io/collections"

	"github.com/mars-protocol/manifesto-contract/vm"
	"github.com/mars-protocol/manifesto-contract/x/medal/types"
)

// RedeemMedal burns a live token and mints its redeemed-tier replacement in
// the linked registry. The burn, both counter moves and the outbound mint
// commit together or not at all.
func (ms msgServer) RedeemMedal(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *types.MsgRedeemMedal) (*vm.Response, error) {
	token, err := ms.k.Tokens.Get(ctx, msg.TokenId)
	if err != nil {
		return nil, err
	}
	if err := ms.k.checkCanSend(ctx, env, info.Sender, token); err != nil {
		return nil, err
	}

	medalRedeemAddr, err := ms.k.MedalRedeemAddr.Get(ctx)
	if err != nil {
		return nil, err
	}
	template, err := ms.k.MedalRedeemInfo.Get(ctx)
	if err != nil {
		return nil, err
	}

	redeemCount, err := ms.k.GetRedeemCount(ctx)
	if err != nil {
		return nil, err
	}
	redeemMedalID := strconv.FormatUint(redeemCount+1, 10)

	name := fmt.Sprintf("%s #%s", template.NamePrefix, redeemMedalID)
	extension := types.Metadata{
		Image:       types.StringPtr(template.Image),
		Description: types.StringPtr(template.Description),
		Name:        types.StringPtr(name),
		Attributes: []types.Trait{
			{TraitType: "MEDAL", Value: msg.TokenId},
			{TraitType: "timestamp", Value: strconv.FormatUint(env.Block.TimeSeconds(), 10)},
		},
	}
	mintMsg := types.MintMsg{
		TokenId:     redeemMedalID,
		Owner:       info.Sender,
		Name:        name,
		Description: types.StringPtr(template.Description),
		Image:       types.StringPtr(template.TokenUri),
		Extension:   extension,
	}

	if err := ms.k.Tokens.Remove(ctx, msg.TokenId); err != nil {
		return nil, err
	}
	if err := ms.k.TokensByOwner.Remove(ctx, collections.Join(token.Owner, msg.TokenId)); err != nil {
		return nil, err
	}
	if _, err := ms.k.decrementTokens(ctx); err != nil {
		return nil, err
	}
	if _, err := ms.k.incrementRedeemed(ctx); err != nil {
		return nil, err
	}

	resp := vm.NewResponse().
		AddAttribute(types.AttrKeyAction, types.ActionRedeem).
		AddAttribute(types.AttrKeyRedeemer, info.Sender).
		AddAttribute(types.AttrKeyMedalID, msg.TokenId).
		AddAttribute(types.AttrKeyMedalRedeemedID, redeemMedalID)
	if err := resp.AddMessage(medalRedeemAddr, types.ExecuteMsg{Mint: &mintMsg}); err != nil {
		return nil, err
	}
	return resp, nil
}
