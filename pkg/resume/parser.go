// Package resume turns free-form résumé text into a structured Record.
package resume

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nikogura/ats-scorer/pkg/lexicon"
	"github.com/nikogura/ats-scorer/pkg/sections"
	"github.com/nikogura/ats-scorer/pkg/skills"
)

// NameNotFound is used when the résumé has no non-blank line at all.
const NameNotFound = "Name Not Found"

const (
	locationBefore  = 20
	locationAfter   = 30
	minEducationLen = 5
	maxEducationLen = 150
	maxEducation    = 5
)

//nolint:gochecknoglobals // Compiled once
var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`[+(]?[1-9][0-9 .\-()]{8,}[0-9]`)
	yearPattern  = regexp.MustCompile(`\d{4}`)
)

//nolint:gochecknoglobals // Static vocabulary
var (
	summaryKeywords       = []string{"summary", "profile", "objective", "about"}
	experienceKeywords    = []string{"experience", "work experience", "employment"}
	educationKeywords     = []string{"education", "academic background", "academic history", "academic qualification", "educational qualification", "tertiary education", "professional qualifications", "university", "academic record", "academics", "degrees", "educational profile"}
	educationFallback     = []string{"education", "academic"}
	certificationKeywords = []string{"certification", "certificates", "licenses"}
	projectKeywords       = []string{"projects", "personal projects", "key projects"}
)

// Parse extracts a Record from résumé text. Parse never fails: anything that
// cannot be located comes back empty. CRLF and bare CR line endings are read
// as LF.
func Parse(lex *lexicon.Lexicon, text string) (record Record) {
	text = normalizeNewlines(text)
	found := skills.Extract(lex, text)

	record = Record{
		Contact:          extractContact(lex, text),
		Summary:          extractSummary(text),
		Skills:           found,
		Experience:       extractExperience(text),
		Education:        extractEducation(text),
		Certifications:   sections.Lines(sections.Extract(text, certificationKeywords)),
		Projects:         extractProjects(text),
		Keywords:         skills.Keywords(lex, text, found),
		FormattingIssues: DetectFormattingIssues(text),
	}

	return record
}

func extractContact(lex *lexicon.Lexicon, text string) (contact ContactInfo) {
	contact.Name = NameNotFound
	if lines := sections.Lines(text); len(lines) > 0 {
		contact.Name = lines[0]
	}

	contact.Email = emailPattern.FindString(text)
	contact.Phone = phonePattern.FindString(text)
	contact.Location = extractLocation(lex, text)

	return contact
}

// extractLocation returns the text around the first gazetteer place name found.
func extractLocation(lex *lexicon.Lexicon, text string) (location string) {
	runes := []rune(text)
	lower := strings.Map(unicode.ToLower, text)

	for _, place := range lex.Locations() {
		idx := strings.Index(lower, place)
		if idx < 0 {
			continue
		}

		at := utf8.RuneCountInString(lower[:idx])
		start := max(0, at-locationBefore)
		end := min(len(runes), at+locationAfter)
		location = strings.TrimSpace(string(runes[start:end]))
		return location
	}

	return location
}

func extractSummary(text string) (summary string) {
	var collected []string
	inSummary := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		if containsAny(lower, summaryKeywords) {
			inSummary = true
			continue
		}

		if !inSummary {
			continue
		}

		if trimmed != "" && !sections.IsSectionHeader(trimmed) {
			collected = append(collected, trimmed)
			continue
		}

		if len(collected) > 0 {
			break
		}
	}

	summary = strings.Join(collected, " ")
	return summary
}

func extractExperience(text string) (entries []ExperienceEntry) {
	entries = []ExperienceEntry{}

	section := sections.Extract(text, experienceKeywords)
	if section == "" {
		return entries
	}

	var current *ExperienceEntry
	for _, line := range sections.Lines(section) {
		if yearPattern.MatchString(line) {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &ExperienceEntry{Header: line, Bullets: []string{}}
			continue
		}

		if current != nil {
			current.Bullets = append(current.Bullets, skills.StripBullet(line))
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}

	return entries
}

func extractEducation(text string) (education []string) {
	education = []string{}

	section := sections.Extract(text, educationKeywords)
	if section == "" {
		section = sections.Extract(text, educationFallback)
	}

	for _, line := range sections.Lines(section) {
		n := utf8.RuneCountInString(line)
		if n < minEducationLen || n > maxEducationLen {
			continue
		}
		education = append(education, line)
		if len(education) == maxEducation {
			break
		}
	}

	return education
}

func extractProjects(text string) (projects []ProjectEntry) {
	projects = []ProjectEntry{}

	var current *ProjectEntry
	for _, line := range sections.Lines(sections.Extract(text, projectKeywords)) {
		if !skills.IsBulleted(line) {
			if current != nil {
				projects = append(projects, *current)
			}
			current = &ProjectEntry{Title: line, Description: []string{}}
			continue
		}

		if current != nil {
			current.Description = append(current.Description, skills.StripBullet(line))
		}
	}

	if current != nil {
		projects = append(projects, *current)
	}

	return projects
}

func normalizeNewlines(text string) (normalized string) {
	normalized = strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return normalized
}

func containsAny(s string, terms []string) (ok bool) {
	for _, t := range terms {
		if strings.Contains(s, t) {
			ok = true
			return ok
		}
	}
	return ok
}
