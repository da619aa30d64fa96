package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxCommonKeywords  = 20
	maxSummaryKeywords = 5
	maxReportExamples  = 5
)

type Issues struct {
	UnprofessionalLanguage []string `json:"unprofessional_language"`
	TooShort               []string `json:"too_short"`
	PoorNaming             []string `json:"poor_naming"`
	NoHeaders              []string `json:"no_headers"`
}

type issueList struct {
	kind  string
	files []string
}

// ordered lists the issue categories in report order.
func (i Issues) ordered() []issueList {
	return []issueList{
		{kind: "unprofessional_language", files: i.UnprofessionalLanguage},
		{kind: "too_short", files: i.TooShort},
		{kind: "poor_naming", files: i.PoorNaming},
		{kind: "no_headers", files: i.NoHeaders},
	}
}

type KeywordFrequency struct {
	Keyword string
	Count   int
}

// MarshalJSON encodes the frequency as a [keyword, count] pair.
func (k KeywordFrequency) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{k.Keyword, k.Count})
}

type Patterns struct {
	Categories     map[string]int     `json:"categories"`
	AverageQuality float64            `json:"average_quality"`
	QualityScores  map[string]int     `json:"quality_scores"`
	CommonKeywords []KeywordFrequency `json:"common_keywords"`
	Issues         Issues             `json:"issues"`
}

type DocumentSummary struct {
	Name         string   `json:"name"`
	Path         string   `json:"path"`
	Category     string   `json:"category"`
	QualityScore int      `json:"quality_score"`
	Size         int      `json:"size"`
	Keywords     []string `json:"keywords"`
}

type Report struct {
	Project         string            `json:"project"`
	ScanDate        time.Time         `json:"scan_date"`
	TotalDocuments  int               `json:"total_documents"`
	Patterns        Patterns          `json:"patterns"`
	Duplicates      Duplicates        `json:"duplicates"`
	Recommendations []string          `json:"recommendations"`
	DocumentList    []DocumentSummary `json:"document_list"`
}

func analyzePatterns(docs []*Document) Patterns {
	p := Patterns{
		Categories:     make(map[string]int),
		QualityScores:  make(map[string]int, len(docs)),
		CommonKeywords: []KeywordFrequency{},
		Issues: Issues{
			UnprofessionalLanguage: []string{},
			TooShort:               []string{},
			PoorNaming:             []string{},
			NoHeaders:              []string{},
		},
	}

	// keyword counts in order of first appearance
	var keywords []KeywordFrequency
	index := make(map[string]int)

	for _, d := range docs {
		p.Categories[d.Category]++
		p.QualityScores[d.Name] = d.QualityScore

		for _, k := range d.Keywords {
			i, ok := index[k]
			if !ok {
				i = len(keywords)
				index[k] = i
				keywords = append(keywords, KeywordFrequency{Keyword: k})
			}
			keywords[i].Count++
		}

		if d.QualityScore >= issueScoreThreshold {
			continue
		}
		if hasProfanity(d.Content) {
			p.Issues.UnprofessionalLanguage = append(p.Issues.UnprofessionalLanguage, d.Name)
		}
		if isShort(d.Content) {
			p.Issues.TooShort = append(p.Issues.TooShort, d.Name)
		}
		if hasPoorNaming(d.Name) {
			p.Issues.PoorNaming = append(p.Issues.PoorNaming, d.Name)
		}
		if len(d.Headers) == 0 {
			p.Issues.NoHeaders = append(p.Issues.NoHeaders, d.Name)
		}
	}

	// The average is taken over the quality map, so documents sharing a
	// file name count once with the last score seen.
	if len(p.QualityScores) > 0 {
		total := 0
		for _, s := range p.QualityScores {
			total += s
		}
		p.AverageQuality = float64(total) / float64(len(p.QualityScores))
	}

	slices.SortStableFunc(keywords, func(a, b KeywordFrequency) int {
		return b.Count - a.Count
	})
	p.CommonKeywords = append(p.CommonKeywords, keywords[:min(len(keywords), maxCommonKeywords)]...)

	return p
}

func recommend(p Patterns, dups Duplicates) []string {
	recs := []string{}

	if p.AverageQuality < 85 {
		recs = append(recs, "Improve overall documentation quality")
	}
	if len(p.Issues.UnprofessionalLanguage) > 0 {
		recs = append(recs, "Clean up unprofessional language in documents")
	}
	if len(p.Issues.PoorNaming) > 0 {
		recs = append(recs, "Rename files to use lowercase with hyphens")
	}
	if len(dups) > 0 {
		recs = append(recs, "Consolidate duplicate documentation")
	}
	if p.Categories[CategoryAPIReference] < 2 {
		recs = append(recs, "Expand API reference documentation")
	}
	if p.Categories[CategoryVSMSystems] < 5 {
		recs = append(recs, "Document each VSM system (1-5) separately")
	}

	return recs
}

// summarize lists the documents from the lowest quality score up.
func summarize(docs []*Document) []DocumentSummary {
	list := make([]DocumentSummary, 0, len(docs))
	for _, d := range docs {
		list = append(list, DocumentSummary{
			Name:         d.Name,
			Path:         d.Path,
			Category:     d.Category,
			QualityScore: d.QualityScore,
			Size:         d.Size,
			Keywords:     append([]string{}, d.Keywords[:min(len(d.Keywords), maxSummaryKeywords)]...),
		})
	}

	slices.SortStableFunc(list, func(a, b DocumentSummary) int {
		return a.QualityScore - b.QualityScore
	})

	return list
}

// Find returns the summary of the first document with the given file name.
func (r *Report) Find(name string) (DocumentSummary, bool) {
	for _, d := range r.DocumentList {
		if d.Name == name {
			return d, true
		}
	}

	return DocumentSummary{}, false
}

const proposedStructure = "```" + `
docs/
├── 01_overview/
│   ├── readme.md              # Project overview
│   └── quick-start.md         # Getting started guide
├── 02_architecture/
│   ├── vsm_systems/          # VSM Systems 1-5 docs
│   ├── mcp_integration/      # MCP integration docs
│   └── hive_mind/            # Hive mind architecture
├── 03_api_reference/
│   ├── endpoints/            # API endpoint docs
│   └── schemas/              # Data schemas
├── 04_development/
│   ├── setup/                # Development setup
│   ├── testing/              # Testing guides
│   └── deployment/           # Deployment docs
├── 05_user_guides/
│   ├── getting_started/      # User tutorials
│   └── tutorials/            # Advanced guides
└── 08_archive/               # Old/superseded docs
` + "```\n"

// Markdown renders the human readable summary of the report.
func (r *Report) Markdown() string {
	var sb strings.Builder
	title := cases.Title(language.English)

	fmt.Fprintf(&sb, "# %s Documentation Analysis\n\n", r.Project)
	fmt.Fprintf(&sb, "Generated: %s\n\n", r.ScanDate.Format(time.RFC3339))
	sb.WriteString("## Overview\n")
	fmt.Fprintf(&sb, "- **Total Documents**: %d\n", r.TotalDocuments)
	fmt.Fprintf(&sb, "- **Average Quality Score**: %.1f/100\n\n", r.Patterns.AverageQuality)

	sb.WriteString("## Document Categories\n")
	categories := make([]string, 0, len(r.Patterns.Categories))
	for c := range r.Patterns.Categories {
		categories = append(categories, c)
	}
	slices.Sort(categories)
	for _, c := range categories {
		fmt.Fprintf(&sb, "- **%s**: %d documents\n", c, r.Patterns.Categories[c])
	}

	sb.WriteString("\n## Quality Issues Found\n")
	for _, issue := range r.Patterns.Issues.ordered() {
		if len(issue.files) == 0 {
			continue
		}

		fmt.Fprintf(&sb, "\n### %s\n", title.String(strings.ReplaceAll(issue.kind, "_", " ")))
		for _, f := range issue.files[:min(len(issue.files), maxReportExamples)] {
			fmt.Fprintf(&sb, "- %s\n", f)
		}
		if len(issue.files) > maxReportExamples {
			fmt.Fprintf(&sb, "- ... and %d more\n", len(issue.files)-maxReportExamples)
		}
	}

	sb.WriteString("\n## Duplicate Content\n")
	if len(r.Duplicates) == 0 {
		sb.WriteString("No duplicates found.\n")
	}
	for _, g := range r.Duplicates[:min(len(r.Duplicates), maxReportExamples)] {
		fmt.Fprintf(&sb, "- %s\n", strings.Join(g.Paths, ", "))
	}

	sb.WriteString("\n## Recommendations\n")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&sb, "- %s\n", rec)
	}

	sb.WriteString("\n## Proposed New Structure\n\n")
	sb.WriteString(proposedStructure)

	return sb.String()
}
