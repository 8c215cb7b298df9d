package types

import (
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"path"
	"sort"
	"testing"
)

func writeConfig(t *testing.T, dir string, name string, content string) {
	require.NoError(t, ioutil.WriteFile(path.Join(dir, name), []byte(content), 0644))
}

func TestLoadConfigurations(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "default.yaml", `
params:
  analysis_features:
    - dependency
    - knowledge
  show_progress: true
`)
	writeConfig(t, dir, "deps_only.yaml", `
params:
  analysis_features:
    - dependency
`)
	writeConfig(t, dir, "notes.txt", "not a configuration")

	cfgs, err := LoadConfigurations(dir)
	require.NoError(t, err)
	require.Len(t, cfgs, 2)

	sort.Slice(cfgs, func(i, j int) bool { return cfgs[i].Name < cfgs[j].Name })

	require.Equal(t, "default", cfgs[0].Name)
	require.True(t, cfgs[0].Params.ShowProgress)
	require.True(t, cfgs[0].CheckFeature(FeatureKnowledge))

	require.Equal(t, "deps_only", cfgs[1].Name)
	require.False(t, cfgs[1].CheckFeature(FeatureKnowledge))
	require.True(t, cfgs[1].CheckFeature(FeatureDependency))
}

func TestLoadConfigurationsRejectsUnknownFeature(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "bad.yaml", `
params:
  analysis_features:
    - sentiment
`)

	cfgs, err := LoadConfigurations(dir)
	require.NoError(t, err)
	require.Empty(t, cfgs)
}

func TestAnalysisFeaturesDefault(t *testing.T) {
	cfg := Configuration{}
	require.Equal(t, []string{FeatureDependency, FeatureKnowledge}, cfg.AnalysisFeatures())
}

func TestSpanOverlap(t *testing.T) {
	span := Span{Begin: 5, End: 10}

	require.True(t, span.Overlaps(6, 9), "containing span")
	require.True(t, span.Overlaps(7, 20), "start inside raw span")
	require.True(t, span.Overlaps(0, 7), "end inside raw span")
	require.False(t, span.Overlaps(11, 15))
	require.False(t, span.Overlaps(0, 4))
}

func TestVoidAttributes(t *testing.T) {
	void := VoidAttributes()
	require.True(t, void.IsVoid())
	require.Equal(t, NoSyncon, void.Syncon)
	require.Equal(t, NoSyncon, void.Ancestor)
	require.Empty(t, void.Word)
	require.Empty(t, void.Typeclass)
}
