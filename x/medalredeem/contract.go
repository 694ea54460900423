// Package medalredeem is the terminal registry holding redeemed-tier
// tokens. It is the same registry implementation as the medal contract,
// deployed a second time with the redeem surface removed: tokens minted
// here are never burned or exchanged again.
package medalredeem

import (
	"context"
	"encoding/json"

	"github.com/mars-protocol/manifesto-contract/vm"
	medalkeeper "github.com/mars-protocol/manifesto-contract/x/medal/keeper"
	medaltypes "github.com/mars-protocol/manifesto-contract/x/medal/types"
)

const ModuleName = "medalredeem"

type Contract struct {
	msgServer   medaltypes.MsgServer
	queryServer medaltypes.QueryServer
}

var _ vm.Contract = Contract{}

func NewContract(k medalkeeper.Keeper) Contract {
	return Contract{
		msgServer:   medalkeeper.NewMsgServerImpl(k),
		queryServer: medalkeeper.NewQuerier(k),
	}
}

func (c Contract) Instantiate(ctx context.Context, env vm.Env, info vm.MessageInfo, raw json.RawMessage) (*vm.Response, error) {
	var msg medaltypes.InstantiateMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, err
	}
	return c.msgServer.Instantiate(ctx, env, info, &msg)
}

// Execute routes the plain-NFT subset. Redeem and redeem-config variants
// do not exist here.
func (c Contract) Execute(ctx context.Context, env vm.Env, info vm.MessageInfo, raw json.RawMessage) (*vm.Response, error) {
	var msg medaltypes.ExecuteMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, err
	}

	switch {
	case msg.Mint != nil:
		return c.msgServer.Mint(ctx, env, info, msg.Mint)
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
	default:
		return nil, medaltypes.ErrUnknownVariant
	}
}

func (c Contract) Query(ctx context.Context, env vm.Env, raw json.RawMessage) ([]byte, error) {
	var msg medaltypes.QueryMsg
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
	default:
		return nil, medaltypes.ErrUnknownVariant
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(res)
}
