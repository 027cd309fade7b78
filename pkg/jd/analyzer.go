// Package jd analyzes job descriptions into structured requirements and
// resolves job-description input from files, URLs or literal text.
package jd

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nikogura/ats-scorer/pkg/lexicon"
	"github.com/nikogura/ats-scorer/pkg/sections"
	"github.com/nikogura/ats-scorer/pkg/skills"
)

// Education requirement values.
const (
	EducationPhD          = "PhD"
	EducationMaster       = "Master"
	EducationBachelor     = "Bachelor"
	EducationNotSpecified = "Not specified"
)

// ExperienceNotSpecified is reported when no years-of-experience phrase is found.
const ExperienceNotSpecified = "Not specified"

// Keyword weights.
const (
	WeightEarly   = 1.5
	WeightDefault = 1.0
)

const (
	mandatoryLookahead  = 25
	preferredLookahead  = 10
	earlyLines          = 10
	maxLooseResponsible = 10
)

//nolint:gochecknoglobals // Static vocabulary
var (
	mandatoryTriggers      = []string{"required", "must have", "essential", "mandatory", "requirements"}
	preferredTriggers      = []string{"preferred", "nice to have", "bonus", "plus", "desired"}
	responsibilityKeywords = []string{"responsibilities", "duties", "you will"}
)

//nolint:gochecknoglobals // Compiled once
var experiencePattern = regexp.MustCompile(`(\d+(?:\s?(?:-|to)\s?\d+)?)\+?\s*(?:years?|yrs?)\s*(?:of)?\s*(?:experience)?`)

// Record is the structured form of a job description.
type Record struct {
	MandatorySkills        []string           `json:"mandatory_skills"`
	PreferredSkills        []string           `json:"preferred_skills"`
	ToolsTechnologies      []string           `json:"tools_technologies"`
	ExperienceRequired     string             `json:"experience_required"`
	Responsibilities       []string           `json:"responsibilities"`
	DomainKeywords         []string           `json:"domain_keywords"` // Ordered by first appearance
	RequiredCertifications []string           `json:"required_certifications"`
	EducationRequired      string             `json:"education_required"`
	ActionVerbs            []string           `json:"action_verbs"`
	WeightedKeywords       map[string]float64 `json:"weighted_keywords"`
}

// Analyze extracts a Record from job-description text. Analyze never fails:
// a requirement that cannot be found comes back empty or "Not specified".
func Analyze(lex *lexicon.Lexicon, text string) (record Record) {
	tools := skills.Extract(lex, text)
	keywords := skills.Keywords(lex, text, tools)

	record = Record{
		MandatorySkills:        triggeredSkills(lex, text, mandatoryTriggers, mandatoryLookahead, true),
		PreferredSkills:        triggeredSkills(lex, text, preferredTriggers, preferredLookahead, false),
		ToolsTechnologies:      tools,
		ExperienceRequired:     experienceRequired(text),
		Responsibilities:       responsibilities(text),
		DomainKeywords:         keywords,
		RequiredCertifications: lex.DetectCertifications(text),
		EducationRequired:      educationRequired(lex, text),
		ActionVerbs:            lex.ActionVerbsIn(text),
		WeightedKeywords:       weightKeywords(text, keywords),
	}

	return record
}

// triggeredSkills collects skills on every line holding a trigger phrase and
// on the lines that follow it, up to lookahead lines or the next unrelated
// section header. When headerMayRepeat is set, a header that itself carries a
// trigger does not end the scan.
func triggeredSkills(lex *lexicon.Lexicon, text string, triggers []string, lookahead int, headerMayRepeat bool) (found []string) {
	set := make(map[string]struct{})
	lines := strings.Split(text, "\n")

	add := func(line string) {
		for _, s := range skills.Extract(lex, line) {
			set[s] = struct{}{}
		}
	}

	for i, line := range lines {
		if !containsAny(strings.ToLower(line), triggers) {
			continue
		}

		add(line)

		for offset := 1; offset <= lookahead && i+offset < len(lines); offset++ {
			next := strings.TrimSpace(lines[i+offset])
			if next == "" {
				continue
			}

			if sections.IsSectionHeader(next) {
				if !headerMayRepeat || !containsAny(strings.ToLower(next), triggers) {
					break
				}
			}

			add(next)
		}
	}

	found = make([]string, 0, len(set))
	for s := range set {
		found = append(found, s)
	}
	sort.Strings(found)

	return found
}

func experienceRequired(text string) (required string) {
	required = ExperienceNotSpecified
	if match := experiencePattern.FindString(strings.ToLower(text)); match != "" {
		required = strings.TrimSpace(match)
	}
	return required
}

func responsibilities(text string) (items []string) {
	items = []string{}
	for _, line := range sections.Lines(sections.Extract(text, responsibilityKeywords)) {
		if skills.IsBulleted(line) || len(items) < maxLooseResponsible {
			items = append(items, skills.StripBullet(line))
		}
	}
	return items
}

func educationRequired(lex *lexicon.Lexicon, text string) (level string) {
	switch {
	case lex.HasEducationLevel(text, lexicon.LevelPhD):
		level = EducationPhD
	case lex.HasEducationLevel(text, lexicon.LevelMaster):
		level = EducationMaster
	case lex.HasEducationLevel(text, lexicon.LevelBachelor):
		level = EducationBachelor
	default:
		level = EducationNotSpecified
	}
	return level
}

// weightKeywords favors keywords that appear in the opening lines, where the
// title and summary of a posting usually sit.
func weightKeywords(text string, keywords []string) (weights map[string]float64) {
	lines := strings.Split(text, "\n")
	if len(lines) > earlyLines {
		lines = lines[:earlyLines]
	}
	early := strings.ToLower(strings.Join(lines, " "))

	weights = make(map[string]float64, len(keywords))
	for _, kw := range keywords {
		weights[kw] = WeightDefault
		if strings.Contains(early, kw) {
			weights[kw] = WeightEarly
		}
	}

	return weights
}

// LevelFor maps an education requirement to its lexicon tier.
func LevelFor(required string) (level lexicon.EducationLevel, ok bool) {
	switch required {
	case EducationPhD:
		level, ok = lexicon.LevelPhD, true
	case EducationMaster:
		level, ok = lexicon.LevelMaster, true
	case EducationBachelor:
		level, ok = lexicon.LevelBachelor, true
	}
	return level, ok
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
