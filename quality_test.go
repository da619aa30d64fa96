package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func longBody() string {
	return "# Guide\n\n" + strings.Repeat("This paragraph describes the system in detail. ", 20)
}

func Test_assessQuality(t *testing.T) {
	var cases = []struct {
		content  string
		filename string
		score    int
	}{
		{content: longBody(), filename: "guide.md", score: 100},
		{content: longBody() + "TODO: finish", filename: "guide.md", score: 90},
		{content: longBody() + "FIXME", filename: "guide.md", score: 90},
		{content: longBody() + "Damn it", filename: "guide.md", score: 80},
		{content: "# Short\n", filename: "guide.md", score: 85},
		{content: strings.TrimPrefix(longBody(), "# Guide\n\n"), filename: "guide.md", score: 90},
		{content: "## Sub only\n" + longBody()[10:], filename: "guide.md", score: 90},
		{content: longBody(), filename: "my_guide.md", score: 95},
		{content: longBody(), filename: "GUIDE.MD", score: 95},
		{content: longBody(), filename: "GUIDE.md", score: 100},
		{content: "TODO shit", filename: "BAD_NAME.md", score: 40},
	}

	for i, c := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			assert.Equal(t, c.score, assessQuality(c.content, c.filename))
		})
	}
}

func Test_assessQuality_Bounds(t *testing.T) {
	contents := []string{"", "fuck TODO FIXME", longBody(), "damn\n# x", strings.Repeat("é", 499)}
	names := []string{"", "A_B_C_D_E.md", "README.MD", "ok.md"}

	for _, c := range contents {
		for _, n := range names {
			score := assessQuality(c, n)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func Test_assessQuality_ShortPenalty(t *testing.T) {
	long := longBody()
	short := long[:100]

	assert.GreaterOrEqual(t, assessQuality(long, "guide.md")-assessQuality(short, "guide.md"), 15)
}

func Test_isShort_CountsCharacters(t *testing.T) {
	// 499 two-byte runes are 998 bytes but still too short
	assert.True(t, isShort(strings.Repeat("é", 499)))
	assert.False(t, isShort(strings.Repeat("é", 500)))
}

func Test_isUpper(t *testing.T) {
	assert.True(t, isUpper("README.MD"))
	assert.True(t, isUpper("API_2.MD"))
	assert.False(t, isUpper("README.md"))
	assert.False(t, isUpper("1234"))
	assert.False(t, isUpper(""))
}

func Test_hasPoorNaming(t *testing.T) {
	assert.True(t, hasPoorNaming("GUIDE.MD"))
	assert.True(t, hasPoorNaming("a_b_c_d_e.md"))
	assert.False(t, hasPoorNaming("a_b_c_d.md"))
	assert.False(t, hasPoorNaming("guide.md"))
}
