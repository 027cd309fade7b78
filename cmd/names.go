package cmd

import (
	"path/filepath"
	"strings"
)

// sanitizeFilename turns a résumé file name such as "Jane Doe - CV (2024).pdf"
// into a slug such as "jane-doe-cv-2024" for naming output files.
func sanitizeFilename(name string) (sanitized string) {
	sanitized = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	// Drop common résumé suffixes
	for _, suffix := range []string{" resume", "_resume", "-resume", " cv", "_cv", "-cv"} {
		lower := strings.ToLower(sanitized)
		if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix) {
			sanitized = sanitized[:len(sanitized)-len(suffix)]
		}
	}

	sanitized = strings.ToLower(sanitized)

	// Replace spaces and special chars with hyphens
	sanitized = strings.Map(func(r rune) (result rune) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			result = r
			return result
		}
		result = '-'
		return result
	}, sanitized)

	// Remove consecutive hyphens
	for strings.Contains(sanitized, "--") {
		sanitized = strings.ReplaceAll(sanitized, "--", "-")
	}

	sanitized = strings.Trim(sanitized, "-")
	if sanitized == "" {
		sanitized = "resume"
	}

	return sanitized
}

// defaultOutputNames derives report and optimized résumé file names from the
// résumé path.
func defaultOutputNames(resumePath string) (reportName, optimizedName string) {
	slug := sanitizeFilename(resumePath)
	reportName = slug + "-ats-report.txt"
	optimizedName = slug + "-optimized-resume.txt"
	return reportName, optimizedName
}
