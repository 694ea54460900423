package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/mars-protocol/manifesto-contract/vm"
	medaltypes "github.com/mars-protocol/manifesto-contract/x/medal/types"
	"github.com/mars-protocol/manifesto-contract/x/manifesto/types"
)

type msgServer struct {
	k Keeper
}

var _ types.MsgServer = msgServer{}

// NewMsgServerImpl returns an implementation of the module MsgServer interface.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{k: keeper}
}

// Instantiate validates the admin, stores Config with the optional token
// addresses (empty sentinel when absent) and zeroes the signee count.
func (ms msgServer) Instantiate(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *types.InstantiateMsg) (*vm.Response, error) {
	if _, err := ms.k.addressCodec.StringToBytes(msg.Admin); err != nil {
		return nil, errorsmod.Wrapf(vm.ErrInvalidAddress, "admin: %s", err)
	}

	config := types.Config{
		MaxSigneesAllowed: msg.MaxSigneesLimit,
		Admin:             msg.Admin,
	}
	var err error
	if config.MedalAddr, err = ms.optionalAddr(msg.MedalAddr); err != nil {
		return nil, err
	}
	if config.MedalRedeemAddr, err = ms.optionalAddr(msg.MedalRedeemAddr); err != nil {
		return nil, err
	}

	if err := ms.k.Config.Set(ctx, config); err != nil {
		return nil, err
	}
	if err := ms.k.State.Set(ctx, types.State{SigneesCount: 0}); err != nil {
		return nil, err
	}

	return vm.NewResponse(), nil
}

// UpdateAdmin hands the admin role to a validated new admin.
func (ms msgServer) UpdateAdmin(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *types.MsgUpdateAdmin) (*vm.Response, error) {
	config, err := ms.k.Config.Get(ctx)
	if err != nil {
		return nil, err
	}
	if info.Sender != config.Admin {
		return nil, types.ErrUnauthorized
	}

	if _, err := ms.k.addressCodec.StringToBytes(msg.NewAdmin); err != nil {
		return nil, errorsmod.Wrapf(vm.ErrInvalidAddress, "new_admin: %s", err)
	}
	config.Admin = msg.NewAdmin
	if err := ms.k.Config.Set(ctx, config); err != nil {
		return nil, err
	}

	return vm.NewResponse().
		AddAttribute(types.AttrKeyAction, types.ActionUpdateAdmin).
		AddAttribute(types.AttrKeyNewAdmin, msg.NewAdmin), nil
}

// UpdateMedalConfig points the manifesto at a medal registry and stores the
// mint template for it, keyed by the registry address. Missing metadata
// fields default to empty strings.
func (ms msgServer) UpdateMedalConfig(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *types.MsgUpdateMedalConfig) (*vm.Response, error) {
	config, err := ms.k.Config.Get(ctx)
	if err != nil {
		return nil, err
	}
	if info.Sender != config.Admin {
		return nil, types.ErrUnauthorized
	}

	if _, err := ms.k.addressCodec.StringToBytes(msg.MedalAddr); err != nil {
		return nil, errorsmod.Wrapf(vm.ErrInvalidAddress, "medal_addr: %s", err)
	}
	config.MedalAddr = msg.MedalAddr
	if err := ms.k.Config.Set(ctx, config); err != nil {
		return nil, err
	}

	template := medaltypes.MedalMetaData{
		NamePrefix:  stringOrEmpty(msg.Metadata.Name),
		Description: stringOrEmpty(msg.Metadata.Description),
		Image:       stringOrEmpty(msg.Metadata.Image),
		TokenUri:    stringOrEmpty(msg.Metadata.ExternalUrl),
	}
	if err := ms.k.Metadata.Set(ctx, msg.MedalAddr, template); err != nil {
		return nil, err
	}

	return vm.NewResponse().
		AddAttribute(types.AttrKeyAction, types.ActionUpdateMedalConfig).
		AddAttribute(types.AttrKeyMedalAddr, msg.MedalAddr), nil
}

// UpdateMedalRedeemConfig records the redeemed-tier registry address and
// forwards it to the medal registry in the same transaction, keeping the
// downstream link consistent with the manifesto's record.
func (ms msgServer) UpdateMedalRedeemConfig(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *types.MsgUpdateMedalRedeemConfig) (*vm.Response, error) {
	config, err := ms.k.Config.Get(ctx)
	if err != nil {
		return nil, err
	}
	if info.Sender != config.Admin {
		return nil, types.ErrUnauthorized
	}

	if _, err := ms.k.addressCodec.StringToBytes(msg.MedalRedeemAddr); err != nil {
		return nil, errorsmod.Wrapf(vm.ErrInvalidAddress, "medal_redeem_addr: %s", err)
	}
	config.MedalRedeemAddr = msg.MedalRedeemAddr
	if err := ms.k.Config.Set(ctx, config); err != nil {
		return nil, err
	}

	resp := vm.NewResponse().
		AddAttribute(types.AttrKeyAction, types.ActionUpdateMedalRedeemConfig).
		AddAttribute(types.AttrKeyMedalRedeemAddr, msg.MedalRedeemAddr)
	forward := medaltypes.ExecuteMsg{UpdateMedalRedeemConfig: &medaltypes.MsgUpdateMedalRedeemConfig{
		MedalRedeemAddr: msg.MedalRedeemAddr,
		Metadata:        msg.Metadata,
	}}
	if err := resp.AddMessage(config.MedalAddr, forward); err != nil {
		return nil, err
	}
	return resp, nil
}

func (ms msgServer) optionalAddr(addr *string) (string, error) {
	if addr == nil || *addr == "" {
		return "", nil
	}
	if _, err := ms.k.addressCodec.StringToBytes(*addr); err != nil {
		return "", errorsmod.Wrapf(vm.ErrInvalidAddress, "%s: %s", *addr, err)
	}
	return *addr, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
