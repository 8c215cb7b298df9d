package pipeline

import (
	"errors"
	"expertai.com/nlpy/nlp"
	"expertai.com/nlpy/types"
	"strings"
)

type analyzerMock struct {
	failOn map[string]bool
	calls  []string
}

func (m *analyzerMock) Analyze(text string, options nlp.AnalysisOptions) (*types.Document, error) {
	m.calls = append(m.calls, text)
	if m.failOn[text] {
		return nil, errors.New("analysis failed")
	}
	return docForText(text), nil
}

// docForText fakes an analyzer response: whitespace tokens, each tagged
// NOU/nsubj with syncon 100+index.
func docForText(text string) *types.Document {
	doc := &types.Document{Content: text}
	begin := 0
	for idx, word := range strings.Fields(text) {
		start := strings.Index(text[begin:], word) + begin
		doc.Tokens = append(doc.Tokens, types.Token{
			Span:       types.Span{Begin: int32(start), End: int32(start + len(word))},
			POS:        "NOU",
			Dependency: types.Dependency{Id: int32(idx), Label: "nsubj"},
			Type:       "NOU",
			Syncon:     int32(100 + idx),
		})
		begin = start + len(word)
	}
	return doc
}

type kgraphMock struct {
	ancestors  map[int32]int32
	fail       bool
	calls      int
	lastParams nlp.LinkParams
}

func (m *kgraphMock) LinkedSyncons(params nlp.LinkParams, offset int, limit int) (*nlp.LinkedSyncons, error) {
	m.calls++
	m.lastParams = params
	if m.fail {
		return nil, errors.New("kgraph unavailable")
	}
	ancestor, ok := m.ancestors[params.Syncon]
	if !ok {
		return &nlp.LinkedSyncons{MaxRecords: 0}, nil
	}
	return &nlp.LinkedSyncons{MaxRecords: 1, SynconList: []int32{ancestor}}, nil
}

type cacheMock struct {
	store map[string]*types.Document
	hits  int
	puts  int
}

func newCacheMock() *cacheMock {
	return &cacheMock{store: make(map[string]*types.Document)}
}

func (m *cacheMock) Get(text string) (*types.Document, bool) {
	doc, ok := m.store[text]
	if ok {
		m.hits++
	}
	return doc, ok
}

func (m *cacheMock) Put(text string, doc *types.Document) {
	m.puts++
	m.store[text] = doc
}

func newTestExtractor(analyzer nlp.Analyzer, kgraph nlp.KnowledgeGraph) *Extractor {
	return NewExtractor(analyzer, kgraph, ExtractorParams{})
}
