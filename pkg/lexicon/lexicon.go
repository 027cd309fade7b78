// Package lexicon holds the read-only vocabulary the analyzers match against:
// skill categories and synonyms, action verbs, stop words, certifications,
// education levels and locations. A Lexicon is immutable once built and safe
// to share between goroutines. Extra skills can be merged from a YAML or JSON
// file, but built-in entries are never removed.
package lexicon

import (
	"regexp"
	"sort"
	"strings"
)

// EducationLevel is a canonical degree tier.
type EducationLevel string

const (
	LevelBachelor EducationLevel = "bachelor"
	LevelMaster   EducationLevel = "master"
	LevelPhD      EducationLevel = "phd"
)

// EducationHierarchy orders degree tiers from lowest to highest.
//
//nolint:gochecknoglobals // Static vocabulary
var EducationHierarchy = []EducationLevel{LevelBachelor, LevelMaster, LevelPhD}

// Lexicon holds the vocabulary used by every extraction and scoring step.
// A Lexicon is built once and only read afterwards, so a single value can be
// shared by concurrent analyses without locking.
type Lexicon struct {
	stopWords       map[string]struct{}
	actionVerbs     []string
	categories      map[string][]string
	categoryNames   []string
	skillPatterns   []pattern
	synonyms        map[string]string
	certPatterns    []pattern
	educationLevels map[EducationLevel][]pattern
	locations       []string
}

// pattern pairs a vocabulary term with its compiled matcher.
type pattern struct {
	term string
	re   *regexp.Regexp
}

// Default returns a Lexicon built from the built-in tables only.
func Default() (lex *Lexicon) {
	lex = New(nil)
	return lex
}

// New builds a Lexicon from the built-in tables merged with extra skills data.
// Merging is additive: new categories are added, new skill names are appended
// to existing categories, built-in entries are never removed.
func New(extra SkillsData) (lex *Lexicon) {
	lex = &Lexicon{
		stopWords:       make(map[string]struct{}, len(builtinStopWords)),
		categories:      make(map[string][]string, len(builtinSkillCategories)+len(extra)),
		synonyms:        make(map[string]string, len(builtinSynonyms)),
		educationLevels: make(map[EducationLevel][]pattern, len(builtinEducationLevels)),
	}

	for _, w := range builtinStopWords {
		lex.stopWords[w] = struct{}{}
	}

	lex.actionVerbs = append([]string{}, builtinActionVerbs...)
	sort.Strings(lex.actionVerbs)

	for category, skills := range builtinSkillCategories {
		lex.categories[category] = append([]string{}, skills...)
	}
	lex.merge(extra)

	for name := range lex.categories {
		lex.categoryNames = append(lex.categoryNames, name)
	}
	sort.Strings(lex.categoryNames)
	lex.skillPatterns = compileSkillPatterns(lex.categories, lex.categoryNames)

	for k, v := range builtinSynonyms {
		lex.synonyms[k] = v
	}

	for _, cert := range builtinCertifications {
		lex.certPatterns = append(lex.certPatterns, pattern{term: cert, re: wordBoundary(cert)})
	}

	for level, synonyms := range builtinEducationLevels {
		for _, s := range synonyms {
			lex.educationLevels[level] = append(lex.educationLevels[level], pattern{term: s, re: wordBoundary(s)})
		}
	}

	lex.locations = append([]string{}, builtinLocations...)

	return lex
}

func (l *Lexicon) merge(extra SkillsData) {
	for category, skills := range extra {
		if strings.HasPrefix(category, "_") {
			continue
		}

		existing := make(map[string]struct{}, len(l.categories[category]))
		for _, s := range l.categories[category] {
			existing[s] = struct{}{}
		}

		for _, s := range skills {
			s = strings.ToLower(strings.TrimSpace(s))
			if s == "" {
				continue
			}
			if _, ok := existing[s]; ok {
				continue
			}
			existing[s] = struct{}{}
			l.categories[category] = append(l.categories[category], s)
		}
	}
}

// compileSkillPatterns builds one matcher per distinct skill. Skills carrying
// '+', '#' or '.' cannot rely on \b, so they are delimited by start/end of
// text, whitespace or punctuation instead.
func compileSkillPatterns(categories map[string][]string, names []string) (patterns []pattern) {
	seen := make(map[string]struct{})
	for _, name := range names {
		for _, skill := range categories[name] {
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}

			var re *regexp.Regexp
			if strings.ContainsAny(skill, "+#.") {
				re = regexp.MustCompile(`(?:^|[\s,;(\[])` + regexp.QuoteMeta(skill) + `(?:$|[\s,;)\].])`)
			} else {
				re = wordBoundary(skill)
			}
			patterns = append(patterns, pattern{term: skill, re: re})
		}
	}

	sort.Slice(patterns, func(i, j int) (less bool) {
		less = patterns[i].term < patterns[j].term
		return less
	})

	return patterns
}

func wordBoundary(term string) (re *regexp.Regexp) {
	re = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	return re
}

// IsStopWord reports whether w is ignored by keyword extraction.
func (l *Lexicon) IsStopWord(w string) (ok bool) {
	_, ok = l.stopWords[w]
	return ok
}

// ActionVerbs returns the action verbs in alphabetical order.
func (l *Lexicon) ActionVerbs() (verbs []string) {
	verbs = append([]string{}, l.actionVerbs...)
	return verbs
}

// StartsWithActionVerb reports whether text opens with an action verb (case-insensitive).
func (l *Lexicon) StartsWithActionVerb(text string) (ok bool) {
	lower := strings.ToLower(text)
	for _, verb := range l.actionVerbs {
		if strings.HasPrefix(lower, verb) {
			ok = true
			return ok
		}
	}
	return ok
}

// ActionVerbsIn returns the action verbs occurring anywhere in text, alphabetically.
func (l *Lexicon) ActionVerbsIn(text string) (verbs []string) {
	lower := strings.ToLower(text)
	verbs = []string{}
	for _, verb := range l.actionVerbs {
		if strings.Contains(lower, verb) {
			verbs = append(verbs, verb)
		}
	}
	return verbs
}

// Categories returns the skill category names in alphabetical order.
func (l *Lexicon) Categories() (names []string) {
	names = append([]string{}, l.categoryNames...)
	return names
}

// Skills returns the skills registered under category.
func (l *Lexicon) Skills(category string) (skills []string) {
	skills = append([]string{}, l.categories[category]...)
	return skills
}

// SkillCount returns the number of distinct skills across all categories.
func (l *Lexicon) SkillCount() (count int) {
	count = len(l.skillPatterns)
	return count
}

// DetectSkills returns every vocabulary skill present in text, alphabetically.
func (l *Lexicon) DetectSkills(text string) (skills []string) {
	lower := strings.ToLower(text)
	skills = []string{}
	for _, p := range l.skillPatterns {
		if p.re.MatchString(lower) {
			skills = append(skills, p.term)
		}
	}
	return skills
}

// Normalize maps a skill or keyword to its canonical form.
func (l *Lexicon) Normalize(term string) (canonical string) {
	canonical = strings.ToLower(strings.TrimSpace(term))
	if mapped, ok := l.synonyms[canonical]; ok {
		canonical = mapped
	}
	return canonical
}

// NormalizeAll returns the set of canonical forms of terms.
func (l *Lexicon) NormalizeAll(terms []string) (set map[string]struct{}) {
	set = make(map[string]struct{}, len(terms))
	for _, t := range terms {
		set[l.Normalize(t)] = struct{}{}
	}
	return set
}

// DetectCertifications returns the upper-cased certification names found in text
// as whole words, alphabetically and without duplicates.
func (l *Lexicon) DetectCertifications(text string) (certs []string) {
	lower := strings.ToLower(text)
	seen := make(map[string]struct{})
	certs = []string{}
	for _, p := range l.certPatterns {
		if !p.re.MatchString(lower) {
			continue
		}
		name := strings.ToUpper(p.term)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		certs = append(certs, name)
	}
	sort.Strings(certs)
	return certs
}

// HasEducationLevel reports whether any synonym of level appears in text as a whole word.
func (l *Lexicon) HasEducationLevel(text string, level EducationLevel) (ok bool) {
	lower := strings.ToLower(text)
	for _, p := range l.educationLevels[level] {
		if p.re.MatchString(lower) {
			ok = true
			return ok
		}
	}
	return ok
}

// EducationSynonyms returns the terms that signal level.
func (l *Lexicon) EducationSynonyms(level EducationLevel) (terms []string) {
	terms = []string{}
	for _, p := range l.educationLevels[level] {
		terms = append(terms, p.term)
	}
	return terms
}

// Locations returns the place names used to spot a candidate's location.
func (l *Lexicon) Locations() (places []string) {
	places = append([]string{}, l.locations...)
	return places
}
