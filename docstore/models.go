package docstore

// Artifact file names inside the analysis directory.
const (
	ReportJSON     = "docs_analysis.json"
	ReportMarkdown = "docs_analysis.md"
	ReportHTML     = "docs_analysis.html"
	ContentMap     = "content_map.json"
	RenameMap      = "rename_map.json"
	Metrics        = "metrics.prom"
)
