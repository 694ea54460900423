package keeper

import (
	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/mars-protocol/manifesto-contract/vm"
	medaltypes "github.com/mars-protocol/manifesto-contract/x/medal/types"
	"github.com/mars-protocol/manifesto-contract/x/manifesto/types"
)

type Keeper struct {
	logger       log.Logger
	addressCodec address.Codec

	Schema collections.Schema

	// state management
	Config     collections.Item[types.Config]
	State      collections.Item[types.State]
	Metadata   collections.Map[string, medaltypes.MedalMetaData]
	Signatures collections.Map[string, types.Signature]
}

// NewKeeper creates a new Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	logger log.Logger,
	addressCodec address.Codec,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		logger:       logger,
		addressCodec: addressCodec,

		Config:     collections.NewItem(sb, types.ConfigKey, types.ConfigName, vm.JSONValue[types.Config]("config")),
		State:      collections.NewItem(sb, types.StateKey, types.StateName, vm.JSONValue[types.State]("state")),
		Metadata:   collections.NewMap(sb, types.MetadataKey, types.MetadataName, collections.StringKey, vm.JSONValue[medaltypes.MedalMetaData]("medal_meta_data")),
		Signatures: collections.NewMap(sb, types.SignaturesKey, types.SignaturesName, collections.StringKey, vm.JSONValue[types.Signature]("signature")),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}

	k.Schema = schema

	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}
