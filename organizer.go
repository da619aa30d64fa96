package main

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gamma-omg/doc-organizer/docstore"
)

type ArtifactStore interface {
	Path(name string) string
	WriteJSON(name string, v any) error
	WriteText(name string, text string) error
}

// Organizer runs the whole pipeline: scan, analyze, report and copy into the
// new layout. The last report is kept for the MCP server.
type Organizer struct {
	log         *slog.Logger
	analyzer    *Analyzer
	reorganizer *Reorganizer
	store       ArtifactStore
	metrics     *Metrics

	mu     sync.RWMutex
	latest *Report
}

func (o *Organizer) Run() (*Report, error) {
	if err := o.reorganizer.Setup(); err != nil {
		return nil, err
	}

	docs, err := o.analyzer.Scan()
	if err != nil {
		return nil, err
	}

	report := o.analyzer.Analyze(docs)
	if err = o.publish(report); err != nil {
		return nil, err
	}

	moves, err := o.reorganizer.Reorganize(docs)
	if err != nil {
		return nil, err
	}

	if err = o.store.WriteJSON(docstore.ContentMap, moves.Locations); err != nil {
		return nil, err
	}
	if err = o.store.WriteJSON(docstore.RenameMap, moves.Renames); err != nil {
		return nil, err
	}

	o.mu.Lock()
	o.latest = report
	o.mu.Unlock()

	o.log.Info("analysis complete",
		"documents", report.TotalDocuments,
		"average_quality", report.Patterns.AverageQuality,
		"duplicates", len(report.Duplicates),
		"renamed", len(moves.Renames))

	return report, nil
}

func (o *Organizer) publish(report *Report) error {
	o.log.Info("generating analysis report")

	if err := o.store.WriteJSON(docstore.ReportJSON, report); err != nil {
		return err
	}

	md := report.Markdown()
	if err := o.store.WriteText(docstore.ReportMarkdown, md); err != nil {
		return err
	}

	page, err := renderHTML(report.Project, md)
	if err != nil {
		return fmt.Errorf("failed to render html report: %w", err)
	}
	if err = o.store.WriteText(docstore.ReportHTML, page); err != nil {
		return err
	}

	if o.metrics == nil {
		return nil
	}

	o.metrics.Observe(report)
	return o.metrics.WriteTextfile(o.store.Path(docstore.Metrics))
}

// Latest returns the report of the last successful run.
func (o *Organizer) Latest() (*Report, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.latest, o.latest != nil
}
