package keeper

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"cosmossdk.io/collections"

	"github.com/mars-protocol/manifesto-contract/vm"
	medaltypes "github.com/mars-protocol/manifesto-contract/x/medal/types"
	"github.com/mars-protocol/manifesto-contract/x/manifesto/types"
)

// SignManifesto records the sender's signature with its Martian date and
// time and schedules exactly one medal mint for them. Preconditions run in
// order, first failure wins; on success the signature, the count bump and
// the outbound mint commit atomically.
func (ms msgServer) SignManifesto(ctx context.Context, env vm.Env, info vm.MessageInfo, msg *types.MsgSignManifesto) (*vm.Response, error) {
	config, err := ms.k.Config.Get(ctx)
	if err != nil {
		return nil, err
	}
	state, err := ms.k.State.Get(ctx)
	if err != nil {
		return nil, err
	}
	signee := info.Sender

	if !isValidTime(msg.MartianTime) {
		return nil, types.ErrInvalidTime
	}
	if !isValidDate(msg.MartianDate) {
		return nil, types.ErrInvalidDate
	}
	if state.SigneesCount >= config.MaxSigneesAllowed {
		return nil, types.ErrMaxSigneesReached
	}

	// may-load: a first-time signer simply has no record yet
	existing, err := ms.k.Signatures.Get(ctx, signee)
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return nil, err
	}
	if existing.Signee == signee {
		return nil, types.ErrAlreadySigned
	}

	tokenID := strconv.FormatUint(state.SigneesCount+1, 10)
	mintMsg, err := ms.buildMedalMint(ctx, config.MedalAddr, tokenID, signee, msg)
	if err != nil {
		return nil, err
	}

	if err := ms.k.Signatures.Set(ctx, signee, types.Signature{
		Signee:      signee,
		MartianDate: msg.MartianDate,
		MartianTime: msg.MartianTime,
	}); err != nil {
		return nil, err
	}
	state.SigneesCount++
	if err := ms.k.State.Set(ctx, state); err != nil {
		return nil, err
	}

	resp := vm.NewResponse().
		AddAttribute(types.AttrKeyAction, types.ActionSignManifesto).
		AddAttribute(types.AttrKeySignee, signee).
		AddAttribute(types.AttrKeySigneeCount, strconv.FormatUint(state.SigneesCount, 10))
	if err := resp.AddMessage(config.MedalAddr, medaltypes.ExecuteMsg{Mint: mintMsg}); err != nil {
		return nil, err
	}
	return resp, nil
}

// buildMedalMint populates a mint from the stored template for the medal
// registry, attaching the signer's Martian date and time as traits.
func (ms msgServer) buildMedalMint(ctx context.Context, medalAddr, tokenID, owner string, msg *types.MsgSignManifesto) (*medaltypes.MintMsg, error) {
	template, err := ms.k.Metadata.Get(ctx, medalAddr)
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return nil, err
	}

	name := fmt.Sprintf("%s #%s", template.NamePrefix, tokenID)
	extension := medaltypes.Metadata{
		Image:       medaltypes.StringPtr(template.Image),
		Description: medaltypes.StringPtr(template.Description),
		Name:        medaltypes.StringPtr(name),
		Attributes: []medaltypes.Trait{
			{TraitType: "martian_date", Value: msg.MartianDate},
			{TraitType: "martian_time", Value: msg.MartianTime},
		},
	}
	return &medaltypes.MintMsg{
		TokenId:     tokenID,
		Owner:       owner,
		Name:        name,
		Description: medaltypes.StringPtr(template.Description),
		Image:       medaltypes.StringPtr(template.TokenUri),
		Extension:   extension,
	}, nil
}

func isValidTime(time string) bool {
	return len(time) == types.MartianTimeLength
}

func isValidDate(date string) bool {
	return len(date) >= types.MartianDateMinLen && len(date) <= types.MartianDateMaxLen
}
