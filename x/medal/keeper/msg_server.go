package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/mars-protocol/manifesto-contract/vm"
	"github.com/mars-protocol/manifesto-contract/x/medal/types"
)

type msgServer struct {
	k Keeper
}

var _ types.MsgServer = msgServer{}

// NewMsgServerImpl returns an implementation of the module MsgServer interface.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{k: keeper}
}

// Instantiate stores the collection info and the minter. Counters start
// unset and read as zero; the redeem link stays unset until configured.
func (ms msgServer) Instantiate(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *types.InstantiateMsg) (*vm.Response, error) {
	if err := ms.k.ContractInfo.Set(ctx, types.ContractInfo{Name: msg.Name, Symbol: msg.Symbol}); err != nil {
		return nil, err
	}

	if _, err := ms.k.addressCodec.StringToBytes(msg.Minter); err != nil {
		return nil, errorsmod.Wrapf(vm.ErrInvalidAddress, "minter: %s", err)
	}
	if err := ms.k.Minter.Set(ctx, msg.Minter); err != nil {
		return nil, err
	}

	return vm.NewResponse(), nil
}

// UpdateMedalRedeemConfig links this registry to its redeemed-tier
// counterpart and stores the template redeemed tokens are minted from.
// Minter restricted, so only the manifesto contract's admin flow can move
// the link.
func (ms msgServer) UpdateMedalRedeemConfig(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *types.MsgUpdateMedalRedeemConfig) (*vm.Response, error) {
	minter, err := ms.k.Minter.Get(ctx)
	if err != nil {
		return nil, err
	}
	if info.Sender != minter {
		return nil, types.ErrUnauthorized
	}

	if _, err := ms.k.addressCodec.StringToBytes(msg.MedalRedeemAddr); err != nil {
		return nil, errorsmod.Wrapf(vm.ErrInvalidAddress, "medal_redeem_addr: %s", err)
	}
	if err := ms.k.MedalRedeemAddr.Set(ctx, msg.MedalRedeemAddr); err != nil {
		return nil, err
	}
	if err := ms.k.MedalRedeemInfo.Set(ctx, msg.Metadata); err != nil {
		return nil, err
	}

	return vm.NewResponse().
		AddAttribute(types.AttrKeyAction, types.ActionUpdateMedalRedeemConfig).
		AddAttribute(types.AttrKeyMedalRedeemAddr, msg.MedalRedeemAddr), nil
}
