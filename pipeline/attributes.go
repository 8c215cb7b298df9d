package pipeline

import (
	"expertai.com/nlpy/nlp"
	"expertai.com/nlpy/types"
	"strings"
)

// SentenceAttributes aligns each raw token of the sentence against the
// analyzer document and resolves its attributes. Exactly one record per
// raw token is returned; tokens that cannot be aligned yield the void
// sentinel and do not interrupt the rest of the sentence.
func (ex *Extractor) SentenceAttributes(sentence []string, doc *types.Document) []types.TokenAttributes {
	attrs := make([]types.TokenAttributes, 0, len(sentence))

	// Index into doc.Content up to which tokens have been consumed.
	seek := 0
	for _, word := range sentence {
		offset := strings.Index(doc.Content[seek:], word)
		if offset < 0 {
			ex.nlpyLogger.Error().
				Str("token", word).
				Msg("Raw token not found in analyzer content")
			attrs = append(attrs, types.VoidAttributes())
			continue
		}
		begin := seek + offset
		end := begin + len(word)

		token, ok := matchToken(doc.Tokens, int32(begin), int32(end))
		if !ok {
			ex.nlpyLogger.Error().
				Str("token", word).
				Msg("Analyzer tokenization not found for token")
			attrs = append(attrs, types.VoidAttributes())
		} else {
			attrs = append(attrs, types.TokenAttributes{
				Word:      word,
				POS:       token.POS,
				Dep:       token.Dependency.Label,
				Syncon:    token.Syncon,
				Ancestor:  ex.resolveAncestor(token.Syncon),
				Label:     resolveLabel(doc, token.Syncon),
				Typeclass: splitTypeclass(token.Type),
			})
		}

		// Advance past the matched span and the following space run,
		// never reading past the end of the content.
		seek = end
		for seek < len(doc.Content) && doc.Content[seek] == ' ' {
			seek++
		}
	}
	return attrs
}

// matchToken picks the analyzer token standing for the raw span
// [begin, end]. Among several overlapping candidates the one with the
// largest syncon wins; on equal syncons the earliest token in document
// order is kept.
func matchToken(tokens []types.Token, begin int32, end int32) (types.Token, bool) {
	var best types.Token
	found := false
	for _, t := range tokens {
		if !t.Overlaps(begin, end) {
			continue
		}
		if !found || t.Syncon > best.Syncon {
			best = t
			found = true
		}
	}
	return best, found
}

// resolveAncestor queries the knowledge graph for the broader concept
// one hypernym link away. The absence sentinel short-circuits without a
// lookup; an empty result set is a normal "no ancestor" outcome.
func (ex *Extractor) resolveAncestor(syncon int32) int32 {
	if syncon == types.NoSyncon {
		return types.NoSyncon
	}

	params := nlp.LinkParams{
		Syncon:    syncon,
		LinkName:  nlp.LinkSupernomen,
		Direction: nlp.DirectionFrom,
		Level:     1,
	}
	linked, err := ex.kgraph.LinkedSyncons(params, 0, 1)
	if err != nil {
		ex.nlpyLogger.Warn().Err(err).
			Int32("syncon", syncon).
			Msg("Linked syncons lookup failed, treating ancestor as absent")
		return types.NoSyncon
	}
	if linked.MaxRecords == 0 || len(linked.SynconList) == 0 {
		return types.NoSyncon
	}
	return linked.SynconList[0]
}

// resolveLabel scans the document's knowledge annotations for the
// syncon and collapses a namespaced label to its leaf name.
func resolveLabel(doc *types.Document, syncon int32) string {
	label := ""
	for _, ent := range doc.Knowledge {
		if ent.Syncon == syncon {
			label = ent.Label
			break
		}
	}
	if idx := strings.LastIndex(label, "."); idx >= 0 {
		label = label[idx+1:]
	}
	return label
}

func splitTypeclass(typeclass string) []string {
	if typeclass == "" {
		return nil
	}
	return strings.Split(typeclass, ".")
}
