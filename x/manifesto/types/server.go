package types

import (
	"context"

	"github.com/mars-protocol/manifesto-contract/vm"
)

// MsgServer is the state-transition surface of the manifesto.
type MsgServer interface {
	Instantiate(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *InstantiateMsg) (*vm.Response, error)
	UpdateAdmin(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *MsgUpdateAdmin) (*vm.Response, error)
	UpdateMedalConfig(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *MsgUpdateMedalConfig) (*vm.Response, error)
	UpdateMedalRedeemConfig(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *MsgUpdateMedalRedeemConfig) (*vm.Response, error)
	SignManifesto(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *MsgSignManifesto) (*vm.Response, error)
}

// QueryServer is the read-only surface.
type QueryServer interface {
	Config(ctx context.Context, req *QueryConfig) (*ConfigResponse, error)
	State(ctx context.Context, req *QueryState) (*StateResponse, error)
	GetSignature(ctx context.Context, req *QueryGetSignature) (*SignatureResponse, error)
}
