package features

import (
	"expertai.com/nlpy/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func testSentence() []types.TokenAttributes {
	return []types.TokenAttributes{
		{Word: "Cats", POS: "NOU", Dep: "nsubj", Syncon: 12345, Ancestor: 40000, Label: "animal", Typeclass: []string{"NOU", "ANI"}},
		{Word: "are", POS: "VER", Dep: "root", Syncon: types.NoSyncon, Ancestor: types.NoSyncon},
		{Word: "great", POS: "ADJ", Dep: "acomp", Syncon: 777, Ancestor: types.NoSyncon},
	}
}

func TestWordFeaturesOwnToken(t *testing.T) {
	sentence := testSentence()
	feats := WordFeatures(sentence, 0)

	expected := types.Features{
		KeyBias:          1.0,
		KeyWordLower:     "cats",
		KeyWordSuffix3:   "ats",
		KeyWordSuffix2:   "ts",
		KeyWordIsUpper:   false,
		KeyWordIsTitle:   true,
		KeyWordIsDigit:   false,
		KeyPOSTag:        "NOU",
		KeyPOSTagPrefix2: "NO",
		KeyDepTag:        "nsubj",
		KeyDepTagSuffix2: "bj",
		KeySyncon:        1.2345,
		KeyAncestor:      4.0,
		KeyLabels:        "animal",
		KeyTypeclass:     []string{"NOU", "ANI"},
	}
	for key, value := range expected {
		require.Contains(t, feats, key)
		if diff := cmp.Diff(value, feats[key]); diff != "" {
			t.Errorf("feature %q mismatch (-want +got):\n%s", key, diff)
		}
	}
}

func TestSynconNormalization(t *testing.T) {
	sentence := testSentence()

	feats := WordFeatures(sentence, 0)
	require.Equal(t, 1.2345, feats[KeySyncon])

	feats = WordFeatures(sentence, 1)
	require.Equal(t, float64(-1), feats[KeySyncon])
	require.Equal(t, float64(-1), feats[KeyAncestor])
}

func TestBoundaryMarkers(t *testing.T) {
	sentence := testSentence()

	first := WordFeatures(sentence, 0)
	require.Equal(t, true, first[KeyBOS])
	require.NotContains(t, first, KeyEOS)
	for key := range first {
		require.False(t, strings.HasPrefix(key, PrefixPrev), "first token must not have %q", key)
	}

	last := WordFeatures(sentence, len(sentence)-1)
	require.Equal(t, true, last[KeyEOS])
	require.NotContains(t, last, KeyBOS)
	for key := range last {
		require.False(t, strings.HasPrefix(key, PrefixNext), "last token must not have %q", key)
	}

	interior := WordFeatures(sentence, 1)
	require.NotContains(t, interior, KeyBOS)
	require.NotContains(t, interior, KeyEOS)
	require.Contains(t, interior, PrefixPrev+KeyPOSTag)
	require.Contains(t, interior, PrefixNext+KeyPOSTag)
}

func TestNeighborFeaturesUseTrueNeighbors(t *testing.T) {
	sentence := testSentence()
	interior := WordFeatures(sentence, 1)

	require.Equal(t, "cats", interior[PrefixPrev+KeyWordLower])
	require.Equal(t, "NOU", interior[PrefixPrev+KeyPOSTag])

	// The +1: block must describe the token to the right, not re-read
	// the previous one.
	require.Equal(t, "great", interior[PrefixNext+KeyWordLower])
	require.Equal(t, "ADJ", interior[PrefixNext+KeyPOSTag])
	require.Equal(t, "acomp", interior[PrefixNext+KeyDepTag])
}

func TestSentenceFeaturesCount(t *testing.T) {
	sentence := testSentence()
	feats := SentenceFeatures(sentence)
	require.Len(t, feats, len(sentence))
}

func TestSentenceFeaturesVoidRecord(t *testing.T) {
	sentence := []types.TokenAttributes{
		{Word: "only", POS: "ADV", Dep: "advmod", Syncon: 10, Ancestor: types.NoSyncon},
		types.VoidAttributes(),
	}
	feats := SentenceFeatures(sentence)
	require.Len(t, feats, 2)

	void := feats[1]
	require.Equal(t, "", void[KeyWordLower])
	require.Equal(t, float64(-1), void[KeySyncon])
	require.Equal(t, float64(-1), void[KeyAncestor])
	require.Equal(t, true, void[KeyEOS])
}

func TestStringPredicates(t *testing.T) {
	require.True(t, isUpper("USA"))
	require.False(t, isUpper("Usa"))
	require.False(t, isUpper("123"))

	require.True(t, isTitle("Cats"))
	require.False(t, isTitle("CATS"))
	require.False(t, isTitle("cats"))
	require.False(t, isTitle("CaTs"))

	require.True(t, isDigit("2023"))
	require.False(t, isDigit("20x3"))
	require.False(t, isDigit(""))
}

func TestSuffixShorterThanWindow(t *testing.T) {
	sentence := []types.TokenAttributes{{Word: "a", POS: "X", Dep: "x"}}
	feats := WordFeatures(sentence, 0)
	require.Equal(t, "a", feats[KeyWordSuffix3])
	require.Equal(t, "a", feats[KeyWordSuffix2])
	require.Equal(t, "X", feats[KeyPOSTagPrefix2])
}
