package types

import (
	"context"

	"github.com/mars-protocol/manifesto-contract/vm"
)

// MsgServer is the state-transition surface of the registry. Every method
// must either return a response whose messages and attributes are fully
// computed, or an error that makes the host roll the transaction back.
type MsgServer interface {
	Instantiate(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *InstantiateMsg) (*vm.Response, error)
	Mint(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *MintMsg) (*vm.Response, error)
	UpdateMedalRedeemConfig(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *MsgUpdateMedalRedeemConfig) (*vm.Response, error)
	TransferNft(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *MsgTransferNft) (*vm.Response, error)
	SendNft(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *MsgSendNft) (*vm.Response, error)
	Approve(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *MsgApprove) (*vm.Response, error)
	Revoke(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *MsgRevoke) (*vm.Response, error)
	ApproveAll(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *MsgApproveAll) (*vm.Response, error)
	RevokeAll(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *MsgRevokeAll) (*vm.Response, error)
	RedeemMedal(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *MsgRedeemMedal) (*vm.Response, error)
}

// QueryServer is the read-only surface.
type QueryServer interface {
	ContractInfo(ctx context.Context, req *QueryContractInfo) (*ContractInfoResponse, error)
	Minter(ctx context.Context, req *QueryMinter) (*MinterResponse, error)
	NumTokens(ctx context.Context, req *QueryNumTokens) (*NumTokensResponse, error)
	NumRedeemedTokens(ctx context.Context, req *QueryNumRedeemedTokens) (*NumRedeemedTokensResponse, error)
	OwnerOf(ctx context.Context, req *QueryOwnerOf) (*OwnerOfResponse, error)
	NftInfo(ctx context.Context, req *QueryNftInfo) (*NftInfoResponse, error)
	AllNftInfo(ctx context.Context, req *QueryAllNftInfo) (*AllNftInfoResponse, error)
	Tokens(ctx context.Context, req *QueryTokens) (*TokensResponse, error)
	AllTokens(ctx context.Context, req *QueryAllTokens) (*TokensResponse, error)
	MedalRedeemConfig(ctx context.Context, req *QueryMedalRedeemConfig) (*MedalRedeemConfigResponse, error)
}
