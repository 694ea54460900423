// Package medal adapts the registry keeper to the host's contract entry
// surface: JSON envelopes in, responses with deferred messages out.
package medal

import (
	"context"
	"encoding/json"

	"github.com/mars-protocol/manifesto-contract/vm"
	"github.com/mars-protocol/manifesto-contract/x/medal/keeper"
	"github.com/mars-protocol/manifesto-contract/x/medal/types"
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
	case msg.Mint != nil:
		return c.msgServer.Mint(ctx, env, info, msg.Mint)
	case msg.UpdateMedalRedeemConfig != nil:
		return c.msgServer.UpdateMedalRedeemConfig(ctx, env, info, msg.UpdateMedalRedeemConfig)
	case msg.TransferNft != nil:
		return c.msgServer.TransferNft(ctx, env, info, msg.TransferNft)
	case msg.SendNft != nil:
		return c.msgServer.SendNft(ctx, env, info, msg.SendNft)
	case msg.Approve != nil:
		return c.msgServer.Approve(ctx, env, info, msg.Approve)
	case msg.Revoke != nil:
		return c.msgServer.Revoke(ctx, env, info, msg.Revoke)
	case msg.ApproveAll != nil:
		return c.msgServer.ApproveAll(ctx, env, info, msg.ApproveAll)
	case msg.RevokeAll != nil:
		return c.msgServer.RevokeAll(ctx, env, info, msg.RevokeAll)
	case msg.RedeemMedal != nil:
		return c.msgServer.RedeemMedal(ctx, env, info, msg.RedeemMedal)
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
	case msg.ContractInfo != nil:
		res, err = c.queryServer.ContractInfo(ctx, msg.ContractInfo)
	case msg.Minter != nil:
		res, err = c.queryServer.Minter(ctx, msg.Minter)
	case msg.NumTokens != nil:
		res, err = c.queryServer.NumTokens(ctx, msg.NumTokens)
	case msg.NumRedeemedTokens != nil:
		res, err = c.queryServer.NumRedeemedTokens(ctx, msg.NumRedeemedTokens)
	case msg.OwnerOf != nil:
		res, err = c.queryServer.OwnerOf(ctx, msg.OwnerOf)
	case msg.NftInfo != nil:
		res, err = c.queryServer.NftInfo(ctx, msg.NftInfo)
	case msg.AllNftInfo != nil:
		res, err = c.queryServer.AllNftInfo(ctx, msg.AllNftInfo)
	case msg.Tokens != nil:
		res, err = c.queryServer.Tokens(ctx, msg.Tokens)
	case msg.AllTokens != nil:
		res, err = c.queryServer.AllTokens(ctx, msg.AllTokens)
	case msg.MedalRedeemConfig != nil:
		res, err = c.queryServer.MedalRedeemConfig(ctx, msg.MedalRedeemConfig)
	default:
		return nil, types.ErrUnknownVariant
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(res)
}
