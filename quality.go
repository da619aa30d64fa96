package main

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxQualityScore = 100
	minContentChars = 500
	// Issues are only reported for documents scoring below this.
	issueScoreThreshold = 80

	todoPenalty        = 10
	profanityPenalty   = 20
	shortPenalty       = 15
	noTitlePenalty     = 10
	poorNamingPenalty  = 5
	maxNameUnderscores = 3
)

var (
	profanityRe = regexp.MustCompile(`shit|fuck|damn`)
	titleRe     = regexp.MustCompile(`(?m)^#\s+`)
)

func assessQuality(content, filename string) int {
	score := maxQualityScore

	if strings.Contains(content, "TODO") || strings.Contains(content, "FIXME") {
		score -= todoPenalty
	}
	if hasProfanity(content) {
		score -= profanityPenalty
	}
	if isShort(content) {
		score -= shortPenalty
	}
	if !titleRe.MatchString(content) {
		score -= noTitlePenalty
	}
	if isUpper(filename) || strings.Contains(filename, "_") {
		score -= poorNamingPenalty
	}

	return max(0, score)
}

func hasProfanity(content string) bool {
	return profanityRe.MatchString(strings.ToLower(content))
}

func isShort(content string) bool {
	return utf8.RuneCountInString(content) < minContentChars
}

// isUpper reports whether s has at least one upper-case letter and no lower
// or title case ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}

	return cased
}

func hasPoorNaming(filename string) bool {
	return isUpper(filename) || strings.Count(filename, "_") > maxNameUnderscores
}
