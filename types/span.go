package types

type Span struct {
	Begin int32 `json:"start"`
	End   int32 `json:"end"`
}

// Overlaps reports whether the analyzer span can stand for the raw token
// span [begin, end]. A candidate matches if it fully contains the raw
// span, or either of its boundaries falls inside it. Boundaries are
// inclusive, which deliberately tolerates sub- and over-tokenization
// mismatches between the analyzer and the upstream tokenizer.
func (span Span) Overlaps(begin int32, end int32) bool {
	if span.Begin <= begin && span.End >= end {
		return true
	}
	if span.Begin >= begin && span.Begin <= end {
		return true
	}
	if span.End >= begin && span.End <= end {
		return true
	}
	return false
}
