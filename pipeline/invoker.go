package pipeline

import (
	"expertai.com/nlpy/nlp"
	"expertai.com/nlpy/types"
	"github.com/gosuri/uiprogress"
	"strings"
)

// AnalyzeAll reconstructs each sentence (tokens joined by single
// spaces) and submits it for analysis. Fails fast: the first analyzer
// error aborts the batch and is returned to the caller.
func (ex *Extractor) AnalyzeAll(sentences [][]string) ([]*types.Document, error) {
	bar := ex.startProgress(len(sentences))
	defer stopProgress(bar)

	docs := make([]*types.Document, 0, len(sentences))
	for _, sent := range sentences {
		doc, err := ex.analyzeSentence(strings.Join(sent, " "))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
		if bar != nil {
			bar.Incr()
		}
	}
	return docs, nil
}

// AnalyzeAllSafe is AnalyzeAll with per-sentence failure isolation:
// failed sentences are skipped, their original indexes collected, and
// the surviving documents keep their original relative order.
func (ex *Extractor) AnalyzeAllSafe(sentences [][]string) ([]*types.Document, []int) {
	bar := ex.startProgress(len(sentences))
	defer stopProgress(bar)

	var failed []int
	docs := make([]*types.Document, 0, len(sentences))
	for idx, sent := range sentences {
		doc, err := ex.analyzeSentence(strings.Join(sent, " "))
		if err != nil {
			ex.nlpyLogger.Err(err).
				Int("sentence_index", idx).
				Msg("Analysis failed for sentence")
			failed = append(failed, idx)
		} else {
			docs = append(docs, doc)
		}
		if bar != nil {
			bar.Incr()
		}
	}
	if len(failed) > 0 {
		ex.nlpyLogger.Warn().
			Int("error_count", len(failed)).
			Ints("failed_indexes", failed).
			Msg("Some sentences failed analysis")
	}
	return docs, failed
}

func (ex *Extractor) analyzeSentence(text string) (*types.Document, error) {
	if ex.params.Cache != nil {
		if doc, ok := ex.params.Cache.Get(text); ok {
			return doc, nil
		}
	}
	doc, err := ex.analyzer.Analyze(text, nlp.AnalysisOptions{Features: ex.params.AnalysisFeatures})
	if err != nil {
		return nil, err
	}
	if ex.params.Cache != nil {
		ex.params.Cache.Put(text, doc)
	}
	return doc, nil
}

func (ex *Extractor) startProgress(total int) *uiprogress.Bar {
	if !ex.params.ShowProgress || total == 0 {
		return nil
	}
	uiprogress.Start()
	bar := uiprogress.AddBar(total)
	bar.AppendCompleted()
	bar.PrependElapsed()
	return bar
}

func stopProgress(bar *uiprogress.Bar) {
	if bar != nil {
		uiprogress.Stop()
	}
}
