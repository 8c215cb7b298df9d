package pipeline

import (
	"expertai.com/nlpy/features"
	"expertai.com/nlpy/logger"
	"expertai.com/nlpy/nlp"
	"expertai.com/nlpy/types"
	"github.com/rs/zerolog"
)

// DocCache stores analysis results keyed by the reconstructed sentence
// text, so repeated sentences across corpora do not hit the analyzer
// twice. A nil cache disables caching.
type DocCache interface {
	Get(text string) (*types.Document, bool)
	Put(text string, doc *types.Document)
}

type ExtractorParams struct {
	AnalysisFeatures []string `json:"analysis_features"`
	ShowProgress     bool     `json:"show_progress"`
	Cache            DocCache `json:"-"`
}

// Extractor runs the feature extraction pipeline: analyze sentences,
// align raw tokens against analyzer tokens, resolve per-token
// attributes and assemble feature maps. Sentences are processed one at
// a time; no state crosses sentence boundaries.
type Extractor struct {
	analyzer   nlp.Analyzer
	kgraph     nlp.KnowledgeGraph
	params     ExtractorParams
	nlpyLogger zerolog.Logger
}

func NewExtractor(analyzer nlp.Analyzer, kgraph nlp.KnowledgeGraph, params ExtractorParams) *Extractor {
	if len(params.AnalysisFeatures) == 0 {
		params.AnalysisFeatures = []string{types.FeatureDependency, types.FeatureKnowledge}
	}
	return &Extractor{
		analyzer:   analyzer,
		kgraph:     kgraph,
		params:     params,
		nlpyLogger: logger.NewLogger("Extractor"),
	}
}

// Extract analyzes every sentence and returns one feature map per raw
// token per sentence. The first analyzer failure aborts the whole
// batch.
func (ex *Extractor) Extract(sentences [][]string) ([][]types.Features, error) {
	docs, err := ex.AnalyzeAll(sentences)
	if err != nil {
		return nil, err
	}
	return ex.assemble(sentences, docs), nil
}

// ExtractSafe analyzes every sentence, skipping the ones whose analysis
// fails, and returns the feature maps of the surviving sentences in
// original relative order together with the indexes of the failed ones.
func (ex *Extractor) ExtractSafe(sentences [][]string) ([][]types.Features, []int) {
	docs, failed := ex.AnalyzeAllSafe(sentences)

	failedSet := make(map[int]bool, len(failed))
	for _, idx := range failed {
		failedSet[idx] = true
	}

	survived := make([][]string, 0, len(docs))
	for idx, sent := range sentences {
		if !failedSet[idx] {
			survived = append(survived, sent)
		}
	}
	return ex.assemble(survived, docs), failed
}

func (ex *Extractor) assemble(sentences [][]string, docs []*types.Document) [][]types.Features {
	sentFeatures := make([][]types.Features, len(sentences))
	for idx := range sentences {
		attrs := ex.SentenceAttributes(sentences[idx], docs[idx])
		sentFeatures[idx] = features.SentenceFeatures(attrs)
	}
	return sentFeatures
}
