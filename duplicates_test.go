package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(readers ...FileReader) *Analyzer {
	cfg := &Config{}
	cfg.defaults()

	return NewAnalyzer(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg, readers...)
}

func Test_jaccard(t *testing.T) {
	var cases = []struct {
		text1 string
		text2 string
		sim   float64
	}{
		{text1: "a b c", text2: "c b a a", sim: 1.0},
		{text1: "a b c", text2: "a b d", sim: 0.5},
		{text1: "a b", text2: "c d", sim: 0.0},
		{text1: "", text2: "  \n", sim: 0.0},
	}

	for i, c := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			assert.Equal(t, c.sim, jaccard(tokenSet(c.text1), tokenSet(c.text2)))
		})
	}
}

func Test_findDuplicates_ExactPair(t *testing.T) {
	a := newTestAnalyzer()
	docs := []*Document{
		a.analyzeDocument("docs/one.md", "# Same\n\nidentical body"),
		a.analyzeDocument("docs/two.md", "# Other\n\ncompletely different words here"),
		a.analyzeDocument("docs/sub/three.md", "# Same\n\nidentical body"),
	}

	dups := findDuplicates(docs, 0.85)

	assert.Equal(t, Duplicates{
		{Key: docs[0].Hash, Paths: []string{"docs/one.md", "docs/sub/three.md"}},
	}, dups)
}

func Test_findDuplicates_Near(t *testing.T) {
	a := newTestAnalyzer()
	base := "alpha beta gamma delta epsilon zeta eta theta iota kappa lambda mu nu xi omicron pi rho sigma tau upsilon"
	docs := []*Document{
		a.analyzeDocument("docs/greek.md", base),
		a.analyzeDocument("docs/greek_copy.md", base+" phi"),
		a.analyzeDocument("docs/other.md", "nothing in common"),
	}

	dups := findDuplicates(docs, 0.85)

	assert.Equal(t, Duplicates{
		{Key: "similar_greek.md_greek_copy.md", Paths: []string{"docs/greek.md", "docs/greek_copy.md"}},
	}, dups)
}

func Test_findDuplicates_ThresholdIsExclusive(t *testing.T) {
	a := newTestAnalyzer()
	docs := []*Document{
		a.analyzeDocument("a.md", "a b c"),
		a.analyzeDocument("b.md", "a b d"),
	}

	assert.Empty(t, findDuplicates(docs, 0.5))
	assert.Len(t, findDuplicates(docs, 0.49), 1)
}

func Test_findDuplicates_GroupsAreSets(t *testing.T) {
	a := newTestAnalyzer()
	docs := []*Document{
		a.analyzeDocument("a.md", "same"),
		a.analyzeDocument("b.md", "same"),
		a.analyzeDocument("c.md", "same"),
	}

	dups := findDuplicates(docs, 0.85)

	assert.Equal(t, Duplicates{{Key: docs[0].Hash, Paths: []string{"a.md", "b.md", "c.md"}}}, dups)
}

func Test_findDuplicates_DiscoveryOrder(t *testing.T) {
	a := newTestAnalyzer()
	docs := []*Document{
		a.analyzeDocument("z.md", "zeta zeta"),
		a.analyzeDocument("y.md", "zeta zeta"),
		a.analyzeDocument("b.md", "beta"),
		a.analyzeDocument("a.md", "beta"),
	}

	dups := findDuplicates(docs, 0.85)

	require.Len(t, dups, 2)
	assert.Equal(t, docs[0].Hash, dups[0].Key)
	assert.Equal(t, docs[2].Hash, dups[1].Key)
}

func Test_Duplicates_MarshalJSON(t *testing.T) {
	d := Duplicates{
		{Key: "similar_z.md_y.md", Paths: []string{"y.md", "z.md"}},
		{Key: "abc", Paths: []string{"a.md", "b.md"}},
	}

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `{"similar_z.md_y.md":["y.md","z.md"],"abc":["a.md","b.md"]}`, string(raw))

	raw, err = json.Marshal(Duplicates(nil))
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(raw))
}

func Test_Duplicates_Group(t *testing.T) {
	d := Duplicates{{Key: "abc", Paths: []string{"a.md"}}}

	paths, ok := d.Group("abc")
	assert.True(t, ok)
	assert.Equal(t, []string{"a.md"}, paths)

	_, ok = d.Group("missing")
	assert.False(t, ok)
}
