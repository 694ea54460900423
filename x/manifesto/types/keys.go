package types

import (
	"cosmossdk.io/collections"
)

const (
	ModuleName = "manifesto"

	StoreKey = ModuleName
)

var (
	// ConfigKey saves the singleton Config.
	ConfigKey = collections.NewPrefix("config")

	// ConfigName is the name of the config collection.
	ConfigName = "config"

	// StateKey saves the singleton State.
	StateKey = collections.NewPrefix("state")

	// StateName is the name of the state collection.
	StateName = "state"

	// MetadataKey saves the mint template per medal contract address.
	MetadataKey = collections.NewPrefix("metadata")

	// MetadataName is the name of the metadata collection.
	MetadataName = "metadata"

	// SignaturesKey saves one Signature per signee address.
	SignaturesKey = collections.NewPrefix("signatures")

	// SignaturesName is the name of the signatures collection.
	SignaturesName = "signatures"
)

// Martian date/time validity is byte-length only: calendar correctness is
// the submitting UI's job, the chain just rejects trivial garbage at
// constant gas. Off-chain systems and historical state rely on these exact
// bounds.
const (
	MartianTimeLength = 12
	MartianDateMinLen = 12
	MartianDateMaxLen = 24
)
