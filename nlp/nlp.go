package nlp

import (
	"expertai.com/nlpy/types"
)

type AnalysisOptions struct {
	Features []string `json:"features"`
}

// Analyzer submits one sentence string for dependency and knowledge
// graph analysis. Calls are blocking; a failed call reports an error
// for that sentence only.
type Analyzer interface {
	Analyze(text string, options AnalysisOptions) (*types.Document, error)
}

// supernomen/subnomen is the hypernym relation of the analyzer's
// knowledge graph; direction "from" walks towards the broader concept.
const (
	LinkSupernomen = "supernomen/subnomen"
	DirectionFrom  = "from"
)

type LinkParams struct {
	Syncon    int32  `json:"syncon"`
	LinkName  string `json:"link_name"`
	Direction string `json:"direction"`
	Level     int    `json:"level"`
}

type LinkedSyncons struct {
	MaxRecords int     `json:"max_records"`
	SynconList []int32 `json:"syncon_list"`
}

// KnowledgeGraph answers linked-syncon queries against the analyzer's
// concept graph.
type KnowledgeGraph interface {
	LinkedSyncons(params LinkParams, offset int, limit int) (*LinkedSyncons, error)
}
