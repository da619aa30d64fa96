package main

import (
	"path/filepath"
	"strings"
)

const (
	CategoryAPIReference     = "api_reference"
	CategoryMCPIntegration   = "mcp_integration"
	CategoryTesting          = "testing"
	CategoryArchive          = "archive"
	CategoryHiveArchitecture = "hive_architecture"
	CategoryArchitecture     = "architecture"
	CategoryPlanning         = "planning"
	CategoryVSMSystems       = "vsm_systems"
	CategoryGeneral          = "general"
)

// categorize picks the category of a document. Rules are checked in order
// (directory, then file name, then content) and the first match wins.
func categorize(content, path string) string {
	name := strings.ToLower(filepath.Base(path))
	body := strings.ToLower(content)
	p := strings.ToLower(filepath.ToSlash(path))

	switch {
	case strings.Contains(p, "/api") || strings.Contains(name, "api_documentation"):
		return CategoryAPIReference
	case strings.Contains(p, "/mcp") || strings.Contains(name, "mcp"):
		return CategoryMCPIntegration
	case strings.Contains(p, "/testing") || strings.Contains(name, "test"):
		return CategoryTesting
	case strings.Contains(p, "/archive"):
		return CategoryArchive
	}

	switch {
	case strings.Contains(name, "hive") && strings.Contains(name, "architecture"):
		return CategoryHiveArchitecture
	case containsAny(name, "architecture", "design"):
		return CategoryArchitecture
	case containsAny(name, "cleanup", "plan"):
		return CategoryPlanning
	case containsAny(name, "test", "result"):
		return CategoryTesting
	case containsAny(name, "proof", "validation"):
		// temporary validation write-ups
		return CategoryArchive
	case containsAny(name, "final", "complete"):
		// usually superseded
		return CategoryArchive
	}

	switch {
	case containsAny(body, "endpoint", "http"):
		return CategoryAPIReference
	case strings.Contains(body, "test") && containsAny(body, "pass", "fail"):
		return CategoryTesting
	case containsAny(body, "system 1", "system1"):
		return CategoryVSMSystems
	}

	return CategoryGeneral
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
