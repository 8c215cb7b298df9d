package types

// TokenAttributes carries the resolved linguistic attributes of one raw
// token after alignment against the analyzer document.
type TokenAttributes struct {
	Word      string   `json:"word"`
	POS       string   `json:"pos"`
	Dep       string   `json:"dep"`
	Syncon    int32    `json:"syncon"`
	Ancestor  int32    `json:"ancestor"`
	Label     string   `json:"label"`
	Typeclass []string `json:"typeclass"`
}

// VoidAttributes stands in for a raw token that could not be aligned
// with any analyzer token. It is never dropped, so per-sentence record
// counts always equal raw token counts.
func VoidAttributes() TokenAttributes {
	return TokenAttributes{
		Syncon:   NoSyncon,
		Ancestor: NoSyncon,
	}
}

func (attrs TokenAttributes) IsVoid() bool {
	return attrs.Word == "" && attrs.POS == "" && attrs.Syncon == NoSyncon
}

// Features is one token's flat feature map for the downstream CRF
// model. Keys come from the fixed vocabulary in the features package.
type Features = map[string]interface{}
