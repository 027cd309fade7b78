// Package sections locates named sections such as "Skills" or "Experience"
// inside free-form résumé and job-description text.
//
// Detection is line oriented: a header is recognized from a single line, never
// from context spanning several lines.
package sections

import (
	"strings"
	"unicode/utf8"
)

const (
	// maxCandidateHeaderLen bounds lines that merely contain a requested keyword.
	maxCandidateHeaderLen = 40
	// maxHeaderLen bounds lines classified as generic section headers.
	maxHeaderLen = 50
)

//nolint:gochecknoglobals // Static vocabulary
var headerWords = []string{
	"summary", "profile", "experience", "employment", "education",
	"academic", "qualification", "skills", "technical", "certifications",
	"certificates", "projects", "achievements", "awards", "degrees",
	"history", "background",
}

// Lines splits text into trimmed lines, dropping blank ones.
func Lines(text string) (lines []string) {
	lines = []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// IsSectionHeader reports whether line looks like any common section header.
func IsSectionHeader(line string) (ok bool) {
	lower := strings.ToLower(strings.TrimSpace(line))
	if utf8.RuneCountInString(lower) >= maxHeaderLen {
		return ok
	}

	for _, word := range headerWords {
		if strings.Contains(lower, word) {
			ok = true
			return ok
		}
	}

	return ok
}

// isCandidateHeader reports whether line opens one of the requested sections.
func isCandidateHeader(lower string, keywords []string) (ok bool) {
	for _, kw := range keywords {
		if lower == kw || lower == kw+":" {
			ok = true
			return ok
		}
		if strings.Contains(lower, kw) && utf8.RuneCountInString(lower) < maxCandidateHeaderLen {
			ok = true
			return ok
		}
	}
	return ok
}

func containsAny(lower string, keywords []string) (ok bool) {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			ok = true
			return ok
		}
	}
	return ok
}

// Extract returns the lines of the first section opened by one of keywords,
// joined by newlines. The section ends at the next line that looks like a
// header of a different section. An empty string means the section was not found.
func Extract(text string, keywords []string) (section string) {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		lowered = append(lowered, strings.ToLower(kw))
	}

	var collected []string
	inSection := false

	for _, line := range Lines(text) {
		lower := strings.ToLower(line)

		if !inSection {
			if isCandidateHeader(lower, lowered) {
				inSection = true
			}
			continue
		}

		if IsSectionHeader(line) && !containsAny(lower, lowered) {
			break
		}

		collected = append(collected, line)
	}

	section = strings.Join(collected, "\n")
	return section
}
