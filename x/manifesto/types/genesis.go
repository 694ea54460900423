package types

import (
	medaltypes "github.com/mars-protocol/manifesto-contract/x/medal/types"
)

// GenesisMetadata is one stored mint template keyed by registry address.
type GenesisMetadata struct {
	MedalAddr string                   `json:"medal_addr"`
	Metadata  medaltypes.MedalMetaData `json:"metadata"`
}

// GenesisState is the full exportable state of the manifesto. Signatures
// are ordered by signee address, so exports are deterministic.
type GenesisState struct {
	Config     Config            `json:"config"`
	State      State             `json:"state"`
	Metadata   []GenesisMetadata `json:"metadata"`
	Signatures []Signature       `json:"signatures"`
}
