// Package skills holds the skill and keyword extraction shared by the résumé
// parser and the job-description analyzer.
package skills

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/nikogura/ats-scorer/pkg/lexicon"
	"github.com/nikogura/ats-scorer/pkg/sections"
)

const (
	minTokenLen   = 3
	maxTokenLen   = 29
	maxTokenWords = 4
	bulletGlyphs  = "•-*· "
)

//nolint:gochecknoglobals // Static vocabulary
var sectionKeywords = []string{"skills", "technical skills", "core competencies", "technologies"}

//nolint:gochecknoglobals // Compiled once
var (
	tokenSplitter = regexp.MustCompile(`[,;|\n•·\t*]| {2,}`)
	tokenPunct    = regexp.MustCompile(`[.:()]`)
	keywordToken  = regexp.MustCompile(`\b[a-z]{2,}(?:[-/][a-z]{2,})*\b`)
)

// Extract returns every skill found in text: vocabulary skills detected
// anywhere, plus short tokens listed in a skills section. The result is
// lowercased, deduplicated and sorted.
func Extract(lex *lexicon.Lexicon, text string) (found []string) {
	set := make(map[string]struct{})

	for _, s := range lex.DetectSkills(text) {
		set[s] = struct{}{}
	}

	for _, s := range SectionTokens(text) {
		set[s] = struct{}{}
	}

	found = make([]string, 0, len(set))
	for s := range set {
		found = append(found, s)
	}
	sort.Strings(found)

	return found
}

// SectionTokens splits the skills section of text into candidate skill names.
// Tokens that read like sentences are dropped.
func SectionTokens(text string) (tokens []string) {
	tokens = []string{}

	section := sections.Extract(text, sectionKeywords)
	if section == "" {
		return tokens
	}

	for _, raw := range tokenSplitter.Split(section, -1) {
		token := strings.ToLower(strings.TrimSpace(tokenPunct.ReplaceAllString(raw, "")))
		n := utf8.RuneCountInString(token)
		if n < minTokenLen || n > maxTokenLen {
			continue
		}
		if len(strings.Fields(token)) > maxTokenWords {
			continue
		}
		tokens = append(tokens, token)
	}

	return tokens
}

// Keywords tokenizes text into lowercase words, keeping hyphen and slash
// compounds such as "ci/cd" whole, and drops stop words. Keywords are ordered
// by first appearance; extra terms not already present are appended in
// sorted order.
func Keywords(lex *lexicon.Lexicon, text string, extra []string) (keywords []string) {
	seen := make(map[string]struct{})
	keywords = []string{}

	for _, token := range keywordToken.FindAllString(strings.ToLower(text), -1) {
		if lex.IsStopWord(token) {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
	}

	sortedExtra := append([]string{}, extra...)
	sort.Strings(sortedExtra)
	for _, term := range sortedExtra {
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		keywords = append(keywords, term)
	}

	return keywords
}

// StripBullet removes leading bullet glyphs and spaces from line.
func StripBullet(line string) (stripped string) {
	stripped = strings.TrimSpace(strings.TrimLeft(line, bulletGlyphs))
	return stripped
}

// IsBulleted reports whether line opens with a bullet glyph.
func IsBulleted(line string) (ok bool) {
	trimmed := strings.TrimSpace(line)
	for _, glyph := range []string{"•", "-", "*", "·"} {
		if strings.HasPrefix(trimmed, glyph) {
			ok = true
			return ok
		}
	}
	return ok
}
