// Package manifesto adapts the manifesto keeper to the host's contract
// entry surface.
package manifesto

import (
	"context"
	"encoding/json"

	"github.com/mars-protocol/manifesto-contract/vm"
	"github.com/mars-protocol/manifesto-contract/x/manifesto/keeper"
	"github.com/mars-protocol/manifesto-contract/x/manifesto/types"
)

type Contract struct {
	msgServer   types.MsgServer
	queryServer types.QueryServer
}

var _ vm.Contract = Contract{}

func NewContract(k keeper.Keeper) Contract {
	return Contract{
		msgServer:   keeper.NewMsgServerImpl(k),
		queryServer: keeper.NewQuerier(k),
	}
}

func (c Contract) Instantiate(ctx context.Context, env vm.Env, info vm.MessageInfo, raw json.RawMessage) (*vm.Response, error) {
	var msg types.InstantiateMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, err
	}
	return c.msgServer.Instantiate(ctx, env, info, &msg)
}

func (c Contract) Execute(ctx context.Context, env vm.Env, info vm.MessageInfo, raw json.RawMessage) (*vm.Response, error) {
	var msg types.ExecuteMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, err
	}

	switch {
	case msg.UpdateAdmin != nil:
		return c.msgServer.UpdateAdmin(ctx, env, info, msg.UpdateAdmin)
	case msg.UpdateMedalConfig != nil:
		return c.msgServer.UpdateMedalConfig(ctx, env, info, msg.UpdateMedalConfig)
	case msg.UpdateMedalRedeemConfig != nil:
		return c.msgServer.UpdateMedalRedeemConfig(ctx, env, info, msg.UpdateMedalRedeemConfig)
	case msg.SignManifesto != nil:
		return c.msgServer.SignManifesto(ctx, env, info, msg.SignManifesto)
	default:
		return nil, types.ErrUnknownVariant
	}
}

func (c Contract) Query(ctx context.Context, env vm.Env, raw json.RawMessage) ([]byte, error) {
	var msg types.QueryMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, err
	}

	var (
		res any
		err error
	)
	switch {
	case msg.Config != nil:
		res, err = c.queryServer.Config(ctx, msg.Config)
	case msg.State != nil:
		res, err = c.queryServer.State(ctx, msg.State)
	case msg.GetSignature != nil:
		res, err = c.queryServer.GetSignature(ctx, msg.GetSignature)
	default:
		return nil, types.ErrUnknownVariant
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(res)
}
