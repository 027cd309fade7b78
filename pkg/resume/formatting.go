package resume

import (
	"fmt"
	"sort"
	"strings"
)

// Formatting issue messages. Downstream fixes are keyed on these exact strings.
const (
	IssueTables       = "Contains tables or tabs - may not parse correctly in ATS"
	IssueSpecialChars = "Contains special characters that may not parse"
	IssueGraphics     = "Contains graphics/icons - remove for ATS compatibility"
)

const maxReportedChars = 5

const allowedPunctuation = " \t\n.,;:()[]{}@#$%&*+-=/<>?!\"'"

//nolint:gochecknoglobals // Static vocabulary
var graphicPlaceholders = []string{"[image]", "[graphic]", "[icon]"}

// DetectFormattingIssues lists constructs that commonly break ATS parsing:
// tables or tabs, characters outside plain ASCII text and graphic placeholders.
func DetectFormattingIssues(text string) (issues []string) {
	issues = []string{}

	if strings.ContainsAny(text, "|\t") {
		issues = append(issues, IssueTables)
	}

	if offending := specialChars(text); len(offending) > 0 {
		if len(offending) > maxReportedChars {
			offending = offending[:maxReportedChars]
		}
		issues = append(issues, fmt.Sprintf("%s: %s", IssueSpecialChars, strings.Join(offending, ", ")))
	}

	lower := strings.ToLower(text)
	for _, placeholder := range graphicPlaceholders {
		if strings.Contains(lower, placeholder) {
			issues = append(issues, IssueGraphics)
			break
		}
	}

	return issues
}

// specialChars returns the distinct disallowed characters of text, sorted.
func specialChars(text string) (chars []string) {
	seen := make(map[rune]struct{})
	for _, r := range text {
		if isAllowed(r) {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		chars = append(chars, string(r))
	}
	sort.Strings(chars)
	return chars
}

func isAllowed(r rune) (ok bool) {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		ok = true
	default:
		ok = strings.ContainsRune(allowedPunctuation, r)
	}
	return ok
}
