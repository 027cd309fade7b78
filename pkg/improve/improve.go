// Package improve turns a gap analysis into concrete, templated edits a
// candidate can make to their résumé. It never invents skills: restructured
// skill lists only ever contain skills the résumé already has.
package improve

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nikogura/ats-scorer/pkg/gaps"
	"github.com/nikogura/ats-scorer/pkg/jd"
	"github.com/nikogura/ats-scorer/pkg/lexicon"
	"github.com/nikogura/ats-scorer/pkg/resume"
	"github.com/nikogura/ats-scorer/pkg/skills"
)

// Suggestion priorities.
const (
	PriorityCritical  = "CRITICAL"
	PriorityImportant = "IMPORTANT"
)

// Skill category names in the restructured skills section.
const (
	CategoryCore       = "Core Technical Skills"
	CategoryAdditional = "Additional Technical Skills"
	CategoryOther      = "Other Competencies"
)

const (
	maxInsertions      = 5
	maxRewrites        = 5
	rewriteEntries     = 2
	rewriteBullets     = 3
	maxOtherSkills     = 10
	topSummarySkills   = 3
	keepSummaryAt      = 2
	appendSummaryMax   = 2
	minSummaryLen      = 20
	defaultActionVerb  = "Developed"
	rewriteReason      = "Start with strong action verb and quantify impact"
	rewriteSuffix      = ", resulting in [quantifiable impact]"
	restructureMessage = "Prioritize skills by JD relevance"
	restructureNote    = "Skills are reorganized to highlight JD-relevant competencies. " +
		"Missing skills are noted separately for your review."
	genericSummary = "Experienced professional seeking to contribute technical expertise and drive results."
)

//nolint:gochecknoglobals // Static vocabulary
var (
	roleKeywords = []string{"engineer", "developer", "analyst", "manager", "architect", "lead", "senior"}

	bestPractices = []string{
		"Use standard section headings (Summary, Experience, Education, Skills)",
		"Use simple bullet points (• or -)",
		"Avoid headers/footers",
		"Use standard fonts (Arial, Calibri, Times New Roman)",
		"Save as .docx or PDF (text-based, not image)",
	}
)

//nolint:gochecknoglobals // Compiled once
var yearsPhrase = regexp.MustCompile(`^.*?(?:years?|yrs?)`)

// KeywordInsertion proposes where a missing keyword belongs.
type KeywordInsertion struct {
	Keyword    string `json:"keyword"`
	Location   string `json:"location"`
	Priority   string `json:"priority"`
	Suggestion string `json:"suggestion"`
}

// BulletRewrite proposes a stronger phrasing for one experience bullet.
type BulletRewrite struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
	Reason   string `json:"reason"`
}

// SkillCategory is one group of the restructured skills section.
type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// SkillsSection is the restructured skills section. Missing skills are kept
// apart for the candidate's reference and never rendered into the résumé.
type SkillsSection struct {
	Structure        string          `json:"structure"`
	Categories       []SkillCategory `json:"categories"`
	MissingMandatory []string        `json:"missing_mandatory"`
	MissingPreferred []string        `json:"missing_preferred"`
	Note             string          `json:"note"`
}

// Improvements holds every suggestion produced for one résumé.
type Improvements struct {
	KeywordInsertions []KeywordInsertion `json:"keyword_insertions"`
	BulletRewrites    []BulletRewrite    `json:"bullet_point_rewrites"`
	Skills            SkillsSection      `json:"skills_section"`
	Summary           string             `json:"summary_optimization"`
	TitleAlignment    []string           `json:"title_alignment"`
	FormattingFixes   []string           `json:"formatting_fixes"`
}

// Rewrite returns the improved text for a bullet, if one was proposed.
func (i Improvements) Rewrite(bullet string) (improved string, ok bool) {
	for _, r := range i.BulletRewrites {
		if r.Original == bullet {
			improved, ok = r.Improved, true
			return improved, ok
		}
	}
	return improved, ok
}

// Generate builds all suggestions for record against req, given its gaps.
func Generate(lex *lexicon.Lexicon, record resume.Record, req jd.Record, g gaps.Gaps) (improvements Improvements) {
	improvements = Improvements{
		KeywordInsertions: KeywordInsertions(g),
		BulletRewrites:    BulletRewrites(lex, record, req),
		Skills:            RestructureSkills(lex, record, req, g),
		Summary:           OptimizeSummary(record, req),
		TitleAlignment:    TitleAlignment(req),
		FormattingFixes:   FormattingFixes(record.FormattingIssues),
	}

	return improvements
}

// KeywordInsertions suggests adding missing mandatory skills to the skills
// section and weaving missing JD keywords into the experience text.
func KeywordInsertions(g gaps.Gaps) (suggestions []KeywordInsertion) {
	suggestions = []KeywordInsertion{}

	for _, skill := range g.Critical.MissingMandatorySkills[:min(len(g.Critical.MissingMandatorySkills), maxInsertions)] {
		suggestions = append(suggestions, KeywordInsertion{
			Keyword:    skill,
			Location:   "Skills section",
			Priority:   PriorityCritical,
			Suggestion: fmt.Sprintf("Add '%s' to your skills section if you have experience with it", skill),
		})
	}

	for _, keyword := range g.Important.MissingDomainKeywords[:min(len(g.Important.MissingDomainKeywords), maxInsertions)] {
		suggestions = append(suggestions, KeywordInsertion{
			Keyword:    keyword,
			Location:   "Experience bullets or Summary",
			Priority:   PriorityImportant,
			Suggestion: fmt.Sprintf("Incorporate '%s' in relevant experience descriptions", keyword),
		})
	}

	return suggestions
}

// BulletRewrites proposes action-verb rewrites for the leading bullets of the
// two most recent roles.
func BulletRewrites(lex *lexicon.Lexicon, record resume.Record, req jd.Record) (rewrites []BulletRewrite) {
	rewrites = []BulletRewrite{}
	verb := rewriteVerb(lex, req)

	for _, exp := range record.Experience[:min(len(record.Experience), rewriteEntries)] {
		for _, bullet := range exp.Bullets[:min(len(exp.Bullets), rewriteBullets)] {
			if lex.StartsWithActionVerb(bullet) {
				continue
			}
			rewrites = append(rewrites, BulletRewrite{
				Original: bullet,
				Improved: verb + " " + skills.StripBullet(bullet) + rewriteSuffix,
				Reason:   rewriteReason,
			})
			if len(rewrites) == maxRewrites {
				return rewrites
			}
		}
	}

	return rewrites
}

// rewriteVerb picks the alphabetically first lexicon verb the JD itself uses.
func rewriteVerb(lex *lexicon.Lexicon, req jd.Record) (verb string) {
	verb = defaultActionVerb

	used := make(map[string]struct{}, len(req.ActionVerbs))
	for _, v := range req.ActionVerbs {
		used[v] = struct{}{}
	}

	for _, v := range lex.ActionVerbs() {
		if _, ok := used[v]; ok {
			verb = capitalize(v)
			return verb
		}
	}

	return verb
}

// RestructureSkills groups the résumé's own skills by JD relevance. A skill
// counts as matched when its canonical form is a mandatory or preferred JD
// skill; it keeps the candidate's spelling.
func RestructureSkills(lex *lexicon.Lexicon, record resume.Record, req jd.Record, g gaps.Gaps) (section SkillsSection) {
	mandatory := lex.NormalizeAll(req.MandatorySkills)
	preferred := lex.NormalizeAll(req.PreferredSkills)

	core := []string{}
	additional := []string{}
	other := []string{}

	for _, skill := range record.Skills {
		canonical := lex.Normalize(skill)
		if _, ok := mandatory[canonical]; ok {
			core = append(core, skill)
			continue
		}
		if _, ok := preferred[canonical]; ok {
			additional = append(additional, skill)
			continue
		}
		other = append(other, skill)
	}

	section = SkillsSection{
		Structure: restructureMessage,
		Categories: []SkillCategory{
			{Name: CategoryCore, Skills: core},
			{Name: CategoryAdditional, Skills: additional},
			{Name: CategoryOther, Skills: other[:min(len(other), maxOtherSkills)]},
		},
		MissingMandatory: append([]string{}, g.Critical.MissingMandatorySkills...),
		MissingPreferred: append([]string{}, g.Important.MissingPreferredSkills...),
		Note:             restructureNote,
	}

	return section
}

// OptimizeSummary keeps a summary that already names at least two of the
// JD's top three mandatory skills, extends one that does not, and writes a
// new one when the résumé has none.
func OptimizeSummary(record resume.Record, req jd.Record) (summary string) {
	original := strings.TrimSpace(record.Summary)
	top := req.MandatorySkills[:min(len(req.MandatorySkills), topSummarySkills)]

	if utf8.RuneCountInString(original) > minSummaryLen {
		lower := strings.ToLower(original)
		mentioned := 0
		missing := []string{}
		for _, skill := range top {
			if strings.Contains(lower, strings.ToLower(skill)) {
				mentioned++
				continue
			}
			missing = append(missing, skill)
		}

		if mentioned >= keepSummaryAt || len(missing) == 0 {
			summary = original
			return summary
		}

		summary = fmt.Sprintf("%s. Proficient in %s.", strings.TrimRight(original, "."), titleList(missing[:min(len(missing), appendSummaryMax)]))
		return summary
	}

	if len(top) == 0 {
		summary = original
		if summary == "" {
			summary = genericSummary
		}
		return summary
	}

	summary = fmt.Sprintf("Results-driven professional with %s in %s. Proven ability to deliver high-quality solutions "+
		"and collaborate effectively with cross-functional teams.", experiencePhrase(req.ExperienceRequired), titleList(top))

	return summary
}

// experiencePhrase turns a requirement such as "5+ years experience" into
// "5+ years of experience". Without a stated duration it reads "proven experience".
func experiencePhrase(required string) (phrase string) {
	years := yearsPhrase.FindString(required)
	if required == jd.ExperienceNotSpecified || years == "" {
		phrase = "proven experience"
		return phrase
	}
	phrase = years + " of experience"
	return phrase
}

// TitleAlignment suggests role words from the JD responsibilities that the
// candidate's title could carry.
func TitleAlignment(req jd.Record) (suggestions []string) {
	suggestions = []string{}

	text := strings.ToLower(strings.Join(req.Responsibilities, " "))
	found := []string{}
	for _, role := range roleKeywords {
		if strings.Contains(text, role) {
			found = append(found, role)
		}
	}

	if len(found) > 0 {
		suggestions = append(suggestions, "Consider aligning your title to include: "+strings.Join(found, ", "))
	}

	return suggestions
}

// FormattingFixes maps each formatting issue to a remedy and appends general
// ATS advice that always applies.
func FormattingFixes(issues []string) (fixes []string) {
	fixes = []string{}

	for _, issue := range issues {
		switch {
		case strings.HasPrefix(issue, resume.IssueTables):
			fixes = append(fixes, "Remove tables - use simple bullet points instead")
		case strings.HasPrefix(issue, resume.IssueSpecialChars):
			fixes = append(fixes, "Remove special characters and icons")
		case strings.HasPrefix(issue, resume.IssueGraphics):
			fixes = append(fixes, "Remove all graphics and images")
		}
	}

	fixes = append(fixes, bestPractices...)

	return fixes
}

func titleList(terms []string) (joined string) {
	caser := cases.Title(language.English)
	titled := make([]string, 0, len(terms))
	for _, t := range terms {
		titled = append(titled, caser.String(t))
	}
	joined = strings.Join(titled, ", ")
	return joined
}

func capitalize(word string) (capitalized string) {
	if word == "" {
		return capitalized
	}
	r, size := utf8.DecodeRuneInString(word)
	capitalized = strings.ToUpper(string(r)) + strings.ToLower(word[size:])
	return capitalized
}
