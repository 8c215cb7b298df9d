package features

import (
	"expertai.com/nlpy/types"
	"strings"
	"unicode"
)

// Feature key vocabulary. The strings match the training-side feature
// templates so feature files stay compatible with already-trained CRF
// models.
const (
	KeyBias          = "bias"
	KeyWordLower     = "word.lower()"
	KeyWordSuffix3   = "word[-3:]"
	KeyWordSuffix2   = "word[-2:]"
	KeyWordIsUpper   = "word.isupper()"
	KeyWordIsTitle   = "word.istitle()"
	KeyWordIsDigit   = "word.isdigit()"
	KeyPOSTag        = "nlpy.postag"
	KeyPOSTagPrefix2 = "nlpy.postag[:2]"
	KeyDepTag        = "nlpy.deptag"
	KeyDepTagSuffix2 = "nlpy.deptag[-2:]"
	KeySyncon        = "nlpy.syncon"
	KeyAncestor      = "nlpy.ancestor"
	KeyLabels        = "nlpy.labels"
	KeyTypeclass     = "nlpy.typeclass"

	PrefixPrev = "-1:"
	PrefixNext = "+1:"

	KeyBOS = "BOS"
	KeyEOS = "EOS"
)

// synconScale divides raw syncon ids down so the large integers do not
// dominate downstream model weights. The absence sentinel stays -1.
const synconScale = 10000.0

func normalizeSyncon(syncon int32) float64 {
	if syncon == types.NoSyncon {
		return -1
	}
	return float64(syncon) / synconScale
}

// WordFeatures builds the flat feature map for the token at idx. The
// -1: block describes the previous token, the +1: block the next one;
// at the sentence boundaries BOS/EOS markers replace them. Total over
// any well-formed attribute records, sentinels included.
func WordFeatures(sentence []types.TokenAttributes, idx int) types.Features {
	token := sentence[idx]

	feats := types.Features{
		KeyBias:          1.0,
		KeyWordLower:     strings.ToLower(token.Word),
		KeyWordSuffix3:   suffix(token.Word, 3),
		KeyWordSuffix2:   suffix(token.Word, 2),
		KeyWordIsUpper:   isUpper(token.Word),
		KeyWordIsTitle:   isTitle(token.Word),
		KeyWordIsDigit:   isDigit(token.Word),
		KeyPOSTag:        token.POS,
		KeyPOSTagPrefix2: prefix(token.POS, 2),
		KeyDepTag:        token.Dep,
		KeyDepTagSuffix2: suffix(token.Dep, 2),
		KeySyncon:        normalizeSyncon(token.Syncon),
		KeyAncestor:      normalizeSyncon(token.Ancestor),
		KeyLabels:        token.Label,
		KeyTypeclass:     token.Typeclass,
	}

	if idx > 0 {
		prev := sentence[idx-1]
		feats[PrefixPrev+KeyWordLower] = strings.ToLower(prev.Word)
		feats[PrefixPrev+KeyWordIsTitle] = isTitle(prev.Word)
		feats[PrefixPrev+KeyWordIsUpper] = isUpper(prev.Word)
		feats[PrefixPrev+KeyPOSTag] = prev.POS
		feats[PrefixPrev+KeyDepTag] = prev.Dep
		feats[PrefixPrev+KeyLabels] = prev.Label
		feats[PrefixPrev+KeyTypeclass] = prev.Typeclass
	} else {
		feats[KeyBOS] = true
	}

	if idx < len(sentence)-1 {
		next := sentence[idx+1]
		feats[PrefixNext+KeyWordLower] = strings.ToLower(next.Word)
		feats[PrefixNext+KeyWordIsTitle] = isTitle(next.Word)
		feats[PrefixNext+KeyWordIsUpper] = isUpper(next.Word)
		feats[PrefixNext+KeyPOSTag] = next.POS
		feats[PrefixNext+KeyDepTag] = next.Dep
		feats[PrefixNext+KeyLabels] = next.Label
		feats[PrefixNext+KeyTypeclass] = next.Typeclass
	} else {
		feats[KeyEOS] = true
	}

	return feats
}

// SentenceFeatures assembles one feature map per attribute record,
// preserving token order.
func SentenceFeatures(sentence []types.TokenAttributes) []types.Features {
	feats := make([]types.Features, len(sentence))
	for idx := range sentence {
		feats[idx] = WordFeatures(sentence, idx)
	}
	return feats
}

func suffix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}

func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// isUpper reports whether the string has at least one cased rune and
// none of them is lowercase.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// isTitle reports whether every cased run starts uppercase and
// continues lowercase.
func isTitle(s string) bool {
	cased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			cased = true
			prevCased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			cased = true
		default:
			prevCased = false
		}
	}
	return cased
}

func isDigit(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
