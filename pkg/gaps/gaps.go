// Package gaps compares a résumé with a job description and classifies what
// is missing by severity.
package gaps

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nikogura/ats-scorer/pkg/jd"
	"github.com/nikogura/ats-scorer/pkg/lexicon"
	"github.com/nikogura/ats-scorer/pkg/resume"
)

const (
	maxDomainKeywords = 10
	maxWeakPhrases    = 5
	weakPreviewLen    = 50
)

//nolint:gochecknoglobals // Static vocabulary
var weakPhrases = []string{"responsible for", "worked on", "helped with", "assisted in"}

// Critical gaps block a perfect match.
type Critical struct {
	MissingMandatorySkills []string `json:"missing_mandatory_skills"`
	MissingKeyTools        []string `json:"missing_key_tools"`
}

// Important gaps lower the score without blocking a match.
type Important struct {
	MissingPreferredSkills []string `json:"missing_preferred_skills"`
	MissingDomainKeywords  []string `json:"missing_domain_keywords"`
	WeakActionVerbs        []string `json:"weak_action_verbs"`
}

// Optional gaps are worth a look but rarely matter.
type Optional struct {
	MissingNiceToHave []string `json:"missing_nice_to_have"`
}

// Gaps is the full gap analysis of one résumé against one job description.
type Gaps struct {
	Critical         Critical  `json:"critical"`
	Important        Important `json:"important"`
	Optional         Optional  `json:"optional"`
	FormattingIssues []string  `json:"formatting_issues"`
}

// Find computes the gaps between record and req. Skill comparisons use
// canonical names so an abbreviation and its full form count as the same skill.
func Find(lex *lexicon.Lexicon, record resume.Record, req jd.Record) (gaps Gaps) {
	have := lex.NormalizeAll(record.Skills)
	mandatory := lex.NormalizeAll(req.MandatorySkills)

	missingMandatory := difference(mandatory, have)
	missingTools := difference(lex.NormalizeAll(req.ToolsTechnologies), have)

	keyTools := []string{}
	for _, tool := range missingTools {
		if _, ok := mandatory[tool]; ok {
			keyTools = append(keyTools, tool)
		}
	}

	gaps = Gaps{
		Critical: Critical{
			MissingMandatorySkills: missingMandatory,
			MissingKeyTools:        keyTools,
		},
		Important: Important{
			MissingPreferredSkills: difference(lex.NormalizeAll(req.PreferredSkills), have),
			MissingDomainKeywords:  missingKeywords(lex, record, req),
			WeakActionVerbs:        WeakActionVerbs(record),
		},
		Optional: Optional{
			MissingNiceToHave: synonymOnlyTools(lex, record, req),
		},
		FormattingIssues: append([]string{}, record.FormattingIssues...),
	}

	return gaps
}

// missingKeywords returns, in JD order, up to ten JD keywords the résumé never uses.
func missingKeywords(lex *lexicon.Lexicon, record resume.Record, req jd.Record) (missing []string) {
	have := lex.NormalizeAll(record.Keywords)
	missing = []string{}

	for _, kw := range req.DomainKeywords {
		if _, ok := have[lex.Normalize(kw)]; ok {
			continue
		}
		missing = append(missing, kw)
		if len(missing) == maxDomainKeywords {
			break
		}
	}

	return missing
}

// synonymOnlyTools lists JD tools the résumé covers only under another name,
// such as "k8s" on the résumé for "kubernetes" in the JD. Using the JD's
// spelling helps exact-match ATS filters.
func synonymOnlyTools(lex *lexicon.Lexicon, record resume.Record, req jd.Record) (tools []string) {
	raw := make(map[string]struct{}, len(record.Skills))
	for _, s := range record.Skills {
		raw[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	have := lex.NormalizeAll(record.Skills)

	tools = []string{}
	for _, tool := range req.ToolsTechnologies {
		if _, ok := raw[tool]; ok {
			continue
		}
		if _, ok := have[lex.Normalize(tool)]; ok {
			tools = append(tools, tool)
		}
	}
	sort.Strings(tools)

	return tools
}

// WeakActionVerbs finds experience bullets phrased passively, such as
// "responsible for", and quotes up to five of them.
func WeakActionVerbs(record resume.Record) (found []string) {
	found = []string{}

	for _, exp := range record.Experience {
		for _, bullet := range exp.Bullets {
			lower := strings.ToLower(bullet)
			for _, phrase := range weakPhrases {
				if !strings.Contains(lower, phrase) {
					continue
				}
				found = append(found, fmt.Sprintf("'%s' in: %s...", phrase, preview(bullet)))
				if len(found) == maxWeakPhrases {
					return found
				}
			}
		}
	}

	return found
}

func preview(s string) (cut string) {
	runes := []rune(s)
	if len(runes) > weakPreviewLen {
		runes = runes[:weakPreviewLen]
	}
	cut = string(runes)
	return cut
}

// difference returns the sorted members of want absent from have.
func difference(want, have map[string]struct{}) (missing []string) {
	missing = []string{}
	for term := range want {
		if _, ok := have[term]; !ok {
			missing = append(missing, term)
		}
	}
	sort.Strings(missing)
	return missing
}
