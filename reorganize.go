package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	maxCleanNameLen = 50
	fallbackDir     = "08_archive/legacy"
)

var targetDirs = []string{
	"01_overview",
	"02_architecture/vsm_systems",
	"02_architecture/mcp_integration",
	"02_architecture/hive_mind",
	"03_api_reference/endpoints",
	"03_api_reference/schemas",
	"04_development/setup",
	"04_development/testing",
	"04_development/deployment",
	"05_user_guides/getting_started",
	"05_user_guides/tutorials",
	"06_references/external_docs",
	"06_references/specifications",
	"07_project_docs/planning",
	"07_project_docs/decisions",
	"08_archive/legacy",
	"08_archive/superseded",
}

var categoryDirs = map[string]string{
	CategoryAPIReference:     "03_api_reference/endpoints",
	CategoryTesting:          "04_development/testing",
	CategoryArchitecture:     "02_architecture/vsm_systems",
	CategoryHiveArchitecture: "02_architecture/hive_mind",
	CategoryMCPIntegration:   "02_architecture/mcp_integration",
	CategoryPlanning:         "07_project_docs/planning",
	CategoryArchive:          "08_archive/legacy",
	CategoryVSMSystems:       "02_architecture/vsm_systems",
	CategoryGeneral:          "01_overview",
}

var hyphenRunRe = regexp.MustCompile(`-{2,}`)

// Reorganization records where every document was copied to.
type Reorganization struct {
	// old file name -> new file name, for renamed files only
	Renames map[string]string
	// old path -> new path
	Locations map[string]string
}

type Reorganizer struct {
	log  *slog.Logger
	root string
	// directories that must never be cleared along with root
	keep []string
}

func NewReorganizer(log *slog.Logger, root string, keep ...string) *Reorganizer {
	return &Reorganizer{log: log, root: root, keep: keep}
}

// Setup recreates an empty target directory tree, so copies from earlier
// runs do not outlive their sources.
func (r *Reorganizer) Setup() error {
	for _, k := range r.keep {
		if k != "" && isWithin(k, r.root) {
			return fmt.Errorf("output directory %s contains %s", r.root, k)
		}
	}

	if err := os.RemoveAll(r.root); err != nil {
		return fmt.Errorf("failed to clear %s: %w", r.root, err)
	}

	for _, d := range targetDirs {
		if err := os.MkdirAll(filepath.Join(r.root, d), 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", d, err)
		}
	}

	return nil
}

// Reorganize copies every document into the directory of its category under
// a clean file name. Source files are left untouched.
func (r *Reorganizer) Reorganize(docs []*Document) (*Reorganization, error) {
	r.log.Info("reorganizing documents", "target", r.root, "documents", len(docs))

	res := &Reorganization{
		Renames:   make(map[string]string),
		Locations: make(map[string]string, len(docs)),
	}
	sources := make(map[string]string, len(docs))

	for _, d := range docs {
		target := filepath.Join(r.root, targetDir(d.Category), cleanFilename(d.Name))
		if prev, ok := sources[target]; ok {
			r.log.Warn("target collision, later copy wins", "target", target, "previous", prev, "source", d.Path)
		}
		sources[target] = d.Path

		if err := copyFile(d.Path, target); err != nil {
			return nil, err
		}

		if name := filepath.Base(target); name != d.Name {
			res.Renames[d.Name] = name
		}
		res.Locations[d.Path] = target
	}

	return res, nil
}

func targetDir(category string) string {
	dir, ok := categoryDirs[category]
	if !ok {
		return fallbackDir
	}

	return dir
}

// cleanFilename converts a file name to lowercase words joined by single
// hyphens, at most 50 characters before the .md extension. README files all
// become readme.md.
func cleanFilename(name string) string {
	if strings.Contains(name, "README") {
		return "readme.md"
	}

	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, ".md", "")
	name = strings.ReplaceAll(name, "_", "-")
	name = hyphenRunRe.ReplaceAllString(name, "-")
	name = strings.TrimPrefix(name, "-")
	name = strings.TrimSuffix(name, "-")

	if runes := []rune(name); len(runes) > maxCleanNameLen {
		name = string(runes[:maxCleanNameLen])
		if i := strings.LastIndex(name, "-"); i >= 0 {
			name = name[:i]
		}
	}

	return name + ".md"
}

// isWithin reports whether path is dir or lies below it.
func isWithin(path, dir string) bool {
	p, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	d, err := filepath.Abs(dir)
	if err != nil {
		return false
	}

	return p == d || strings.HasPrefix(p, d+string(filepath.Separator))
}

// copyFile copies src to dst keeping the permission bits and modification
// time of src.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dst, err)
	}

	if err = os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", dst, err)
	}

	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
