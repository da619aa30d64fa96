package main

import (
	"bytes"
	"regexp"
	"slices"
	"strings"

	"github.com/adrg/frontmatter"
)

var (
	headerRe       = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	inlineLinkRe   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	refLinkRe      = regexp.MustCompile(`(?m)\[([^\]]+)\]:\s*(.+)$`)
	codeBlockRe    = regexp.MustCompile("(?s)```(\\w*)\\n(.*?)\\n```")
	anyFenceRe     = regexp.MustCompile("(?s)```.*?```")
	bulletItemRe   = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	numberedItemRe = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
)

const maxKeywords = 10

func extractHeaders(content string) []Header {
	var headers []Header
	for _, m := range headerRe.FindAllStringSubmatch(content, -1) {
		headers = append(headers, Header{
			Level: len(m[1]),
			Title: strings.TrimSpace(m[2]),
		})
	}

	return headers
}

// extractLinks returns inline links followed by reference-style definitions.
func extractLinks(content string) []Link {
	var links []Link
	for _, re := range []*regexp.Regexp{inlineLinkRe, refLinkRe} {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			links = append(links, Link{Text: m[1], Target: m[2]})
		}
	}

	return links
}

func countCodeBlocks(content string) CodeBlocks {
	blocks := codeBlockRe.FindAllStringSubmatch(content, -1)
	res := CodeBlocks{
		Total:     len(blocks),
		Languages: make(map[string]int),
	}

	for _, b := range blocks {
		if b[1] != "" {
			res.Languages[b[1]]++
		}
	}

	return res
}

func countLists(content string) ListCounts {
	return ListCounts{
		Bullet:   len(bulletItemRe.FindAllStringIndex(content, -1)),
		Numbered: len(numberedItemRe.FindAllStringIndex(content, -1)),
	}
}

type keywordCount struct {
	keyword string
	count   int
}

// extractKeywords counts each known keyword in the prose of the document and
// returns the most frequent ones. Ties keep the order of the keyword list.
func extractKeywords(content string, known []string) []string {
	clean := anyFenceRe.ReplaceAllString(content, "")
	clean = inlineLinkRe.ReplaceAllString(clean, "$1")
	clean = strings.ToLower(clean)

	var found []keywordCount
	for _, k := range known {
		if k == "" {
			continue
		}
		if n := strings.Count(clean, k); n > 0 {
			found = append(found, keywordCount{keyword: k, count: n})
		}
	}

	slices.SortStableFunc(found, func(a, b keywordCount) int {
		return b.count - a.count
	})

	res := make([]string, 0, min(len(found), maxKeywords))
	for _, f := range found[:min(len(found), maxKeywords)] {
		res = append(res, f.keyword)
	}

	return res
}

// frontMatterTitle returns the title declared in a leading front matter block.
// Documents without front matter, or with a block that does not parse, have
// no title.
func frontMatterTitle(content string) string {
	var meta struct {
		Title string `yaml:"title" toml:"title" json:"title"`
	}

	if _, err := frontmatter.Parse(bytes.NewReader([]byte(content)), &meta); err != nil {
		return ""
	}

	return strings.TrimSpace(meta.Title)
}
