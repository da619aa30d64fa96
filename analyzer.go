package main

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"
)

var errUnsupportedFile = errors.New("unsupported file")

type FileReader interface {
	CanRead(path string) bool
	ReadText(path string) (string, error)
}

// Analyzer scans a documentation tree and builds the analysis report.
type Analyzer struct {
	log       *slog.Logger
	root      string
	project   string
	keywords  []string
	threshold float64
	readers   []FileReader
	now       func() time.Time
}

func NewAnalyzer(log *slog.Logger, cfg *Config, readers ...FileReader) *Analyzer {
	return &Analyzer{
		log:       log,
		root:      cfg.InputDir,
		project:   cfg.Project,
		keywords:  cfg.Keywords,
		threshold: cfg.SimilarityThreshold,
		readers:   readers,
		now:       time.Now,
	}
}

// Scan walks the root directory and analyzes every readable document.
// README files below the top level are skipped.
func (a *Analyzer) Scan() ([]*Document, error) {
	a.log.Info("scanning documentation", "root", a.root)

	root := filepath.Clean(a.root)
	var docs []*Document

	err := filepath.WalkDir(a.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Dir(path) != root && d.Name() == "README.md" {
			return nil
		}

		reader, e := a.findReader(path)
		if e != nil {
			a.log.Debug("skipping file", "path", path, "reason", e)
			return nil
		}

		text, e := reader.ReadText(path)
		if e != nil {
			return e
		}

		docs = append(docs, a.analyzeDocument(path, text))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", a.root, err)
	}

	a.log.Info("scan finished", "documents", len(docs))
	return docs, nil
}

func (a *Analyzer) analyzeDocument(path, content string) *Document {
	name := filepath.Base(path)
	sum := md5.Sum([]byte(content))

	return &Document{
		Path:         path,
		Name:         name,
		Size:         len(content),
		Content:      content,
		Title:        frontMatterTitle(content),
		Headers:      extractHeaders(content),
		Links:        extractLinks(content),
		CodeBlocks:   countCodeBlocks(content),
		Lists:        countLists(content),
		Keywords:     extractKeywords(content, a.keywords),
		Hash:         hex.EncodeToString(sum[:]),
		Category:     categorize(content, path),
		QualityScore: assessQuality(content, name),
	}
}

// Analyze aggregates the scanned documents into a report.
func (a *Analyzer) Analyze(docs []*Document) *Report {
	a.log.Info("analyzing documentation patterns", "documents", len(docs))

	patterns := analyzePatterns(docs)
	dups := findDuplicates(docs, a.threshold)
	a.log.Info("duplicate detection finished", "groups", len(dups))

	return &Report{
		Project:         a.project,
		ScanDate:        a.now(),
		TotalDocuments:  len(docs),
		Patterns:        patterns,
		Duplicates:      dups,
		Recommendations: recommend(patterns, dups),
		DocumentList:    summarize(docs),
	}
}

func (a *Analyzer) findReader(path string) (FileReader, error) {
	for _, r := range a.readers {
		if r.CanRead(path) {
			return r, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", errUnsupportedFile, path)
}
