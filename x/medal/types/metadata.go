package types

// Trait is a single display attribute on a token's extension metadata.
type Trait struct {
	DisplayType *string `json:"display_type,omitempty"`
	TraitType   string  `json:"trait_type"`
	Value       string  `json:"value"`
}

// Metadata is the on-chain extension payload minted into every token. The
// registry is parametric in this type in principle; this deployment fixes
// it to the OpenSea-compatible shape.
type Metadata struct {
	Image           *string `json:"image,omitempty"`
	ImageData       *string `json:"image_data,omitempty"`
	ExternalUrl     *string `json:"external_url,omitempty"`
	Description     *string `json:"description,omitempty"`
	Name            *string `json:"name,omitempty"`
	Attributes      []Trait `json:"attributes,omitempty"`
	BackgroundColor *string `json:"background_color,omitempty"`
	AnimationUrl    *string `json:"animation_url,omitempty"`
	YoutubeUrl      *string `json:"youtube_url,omitempty"`
}

// StringPtr is a convenience for building optional metadata fields.
func StringPtr(s string) *string {
	return &s
}
