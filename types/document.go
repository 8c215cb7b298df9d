package types

// NoSyncon marks the absence of an ontology concept on a token or
// attribute record. The analyzer uses the same sentinel on its side.
const NoSyncon int32 = -1

type Dependency struct {
	Id    int32  `json:"id"`
	Head  int32  `json:"head"`
	Label string `json:"label"`
}

// Token is a single token of the analyzer's own segmentation, with its
// character span into Document.Content.
type Token struct {
	Span
	POS        string     `json:"pos"`
	Dependency Dependency `json:"dependency"`
	Type       string     `json:"type"`
	Syncon     int32      `json:"syncon"`
}

type KnowledgeEntry struct {
	Syncon int32  `json:"syncon"`
	Label  string `json:"label"`
}

// Document is the analysis result for one reconstructed sentence.
// Content is the exact string that was submitted; token spans index
// into it. Knowledge may be empty when the knowledge feature was not
// requested or nothing was recognized.
type Document struct {
	Content   string           `json:"content"`
	Tokens    []Token          `json:"tokens"`
	Knowledge []KnowledgeEntry `json:"knowledge"`
}
