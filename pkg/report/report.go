// Package report renders the plain-text analysis report and rates how easily
// a recruiter can read the optimized résumé.
package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nikogura/ats-scorer/pkg/gaps"
	"github.com/nikogura/ats-scorer/pkg/improve"
	"github.com/nikogura/ats-scorer/pkg/jd"
	"github.com/nikogura/ats-scorer/pkg/lexicon"
	"github.com/nikogura/ats-scorer/pkg/resume"
	"github.com/nikogura/ats-scorer/pkg/scorer"
	"github.com/nikogura/ats-scorer/pkg/skills"
)

// Title heads every report.
const Title = "ATS RESUME SCORING & OPTIMIZATION REPORT"

// TimeFormat is the layout of the generated timestamp.
const TimeFormat = "2006-01-02 15:04:05"

const (
	width            = 80
	itemsPerGap      = 5
	shownInsertions  = 5
	shownRewrites    = 3
	shownFixes       = 5
	comparedKeywords = 20

	readabilityBase = 7
	readabilityMax  = 10
)

//nolint:gochecknoglobals // Compiled once
var quantified = regexp.MustCompile(`\d+%|\d+\+`)

//nolint:gochecknoglobals // Static vocabulary
var structureHeadings = []string{"SUMMARY", "EXPERIENCE", "SKILLS"}

// Input is everything one report covers. Suitability is optional.
type Input struct {
	ID           string
	Generated    time.Time
	Resume       resume.Record
	JD           jd.Record
	Score        scorer.Result
	Gaps         gaps.Gaps
	Improvements improve.Improvements
	Optimized    string
	Suitability  *scorer.Suitability
}

type labeled struct {
	label string
	items []string
}

// Generate renders the report for in.
func Generate(lex *lexicon.Lexicon, in Input) (text string) {
	r := []string{}
	banner := strings.Repeat("=", width)
	section := func(title string) {
		r = append(r, "\n"+banner, title, banner)
	}

	r = append(r, banner, Title, banner)
	r = append(r, "Generated: "+in.Generated.Format(TimeFormat))
	r = append(r, fmt.Sprintf("Analysis ID: %s\n", in.ID))

	r = append(r, fmt.Sprintf("ATS COMPATIBILITY SCORE: %s/100", formatScore(in.Score.TotalScore)))
	r = append(r, strings.Repeat("-", width))

	r = append(r, "\nSCORE BREAKDOWN:")
	for _, c := range in.Score.Breakdown {
		r = append(r, fmt.Sprintf("  %s: %s/100 (Weight: %s)", c.Name, formatScore(c.Score), c.WeightLabel))
	}

	section("GAP ANALYSIS")
	r = append(r, "\nCRITICAL GAPS:")
	r = appendGaps(r, []labeled{
		{"Missing Mandatory Skills", in.Gaps.Critical.MissingMandatorySkills},
		{"Missing Key Tools", in.Gaps.Critical.MissingKeyTools},
	})
	r = append(r, "\nIMPORTANT GAPS:")
	r = appendGaps(r, []labeled{
		{"Missing Preferred Skills", in.Gaps.Important.MissingPreferredSkills},
		{"Missing Domain Keywords", in.Gaps.Important.MissingDomainKeywords},
		{"Weak Action Verbs", in.Gaps.Important.WeakActionVerbs},
	})

	if s := in.Suitability; s != nil {
		section("HR SUITABILITY ASSESSMENT")
		r = append(r,
			"VERDICT: "+s.Verdict,
			"RISK LEVEL: "+s.RiskLevel,
			"RECOMMENDATION: "+s.Recommendation,
			"\nRECRUITER INSIGHTS:",
		)
		for _, insight := range s.RecruiterInsights {
			r = append(r, "  • "+insight)
		}
	}

	section("IMPROVEMENT RECOMMENDATIONS")
	r = append(r, "\nKEYWORD INSERTIONS:")
	for _, s := range in.Improvements.KeywordInsertions[:min(len(in.Improvements.KeywordInsertions), shownInsertions)] {
		r = append(r,
			fmt.Sprintf("  [%s] %s", s.Priority, s.Keyword),
			"    Location: "+s.Location,
			"    Suggestion: "+s.Suggestion+"\n",
		)
	}

	r = append(r, "\nBULLET POINT REWRITES:")
	for _, rw := range in.Improvements.BulletRewrites[:min(len(in.Improvements.BulletRewrites), shownRewrites)] {
		r = append(r,
			"  Original: "+rw.Original,
			"  Improved: "+rw.Improved,
			"  Reason: "+rw.Reason+"\n",
		)
	}

	r = append(r, "\nFORMATTING FIXES:")
	for _, fix := range in.Improvements.FormattingFixes[:min(len(in.Improvements.FormattingFixes), shownFixes)] {
		r = append(r, "  • "+fix)
	}

	section("OPTIMIZED RESUME")
	r = append(r, in.Optimized)

	section("BEFORE vs AFTER KEYWORD COMPARISON")
	before := MatchedKeywords(in.Resume.Keywords, in.JD.DomainKeywords)
	after := MatchedKeywords(skills.Keywords(lex, in.Optimized, nil), in.JD.DomainKeywords)
	r = append(r,
		fmt.Sprintf("\nMatched Keywords Before: %d/%d", before, comparedKeywords),
		fmt.Sprintf("Matched Keywords After: %d/%d", after, comparedKeywords),
	)

	section("RECRUITER READABILITY RATING")
	r = append(r,
		fmt.Sprintf("\nReadability Score: %d/%d", Readability(lex, in.Optimized), readabilityMax),
		"Factors: Clear structure, action verbs, quantified achievements, ATS-friendly format",
	)

	text = strings.Join(r, "\n")

	return text
}

func appendGaps(r []string, buckets []labeled) (out []string) {
	out = r
	for _, b := range buckets {
		if len(b.items) == 0 {
			continue
		}
		out = append(out, "  "+b.label+":")
		for _, item := range b.items[:min(len(b.items), itemsPerGap)] {
			out = append(out, "    - "+item)
		}
	}
	return out
}

// MatchedKeywords counts the keywords shared by the first twenty of each list.
func MatchedKeywords(resumeKeywords, jdKeywords []string) (count int) {
	have := make(map[string]struct{}, comparedKeywords)
	for _, kw := range resumeKeywords[:min(len(resumeKeywords), comparedKeywords)] {
		have[kw] = struct{}{}
	}

	seen := make(map[string]struct{}, comparedKeywords)
	for _, kw := range jdKeywords[:min(len(jdKeywords), comparedKeywords)] {
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		if _, ok := have[kw]; ok {
			count++
		}
	}

	return count
}

// Readability rates text from 7 to 10: one point each for action verbs,
// quantified results and a standard summary/experience/skills layout.
func Readability(lex *lexicon.Lexicon, text string) (score int) {
	score = readabilityBase

	if len(lex.ActionVerbsIn(text)) > 0 {
		score++
	}

	if quantified.MatchString(text) {
		score++
	}

	upper := strings.ToUpper(text)
	structured := true
	for _, h := range structureHeadings {
		if !strings.Contains(upper, h) {
			structured = false
			break
		}
	}
	if structured {
		score++
	}

	score = min(score, readabilityMax)

	return score
}

func formatScore(f float64) (s string) {
	s = strconv.FormatFloat(f, 'f', -1, 64)
	return s
}
