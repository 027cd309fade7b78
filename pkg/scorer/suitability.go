package scorer

import (
	"fmt"
	"strings"

	"github.com/nikogura/ats-scorer/pkg/jd"
	"github.com/nikogura/ats-scorer/pkg/resume"
)

// Verdicts.
const (
	VerdictPerfect   = "Perfect Match"
	VerdictPotential = "Potential Match"
	VerdictHidden    = "Not Visible to Recruiter"
)

// Color tags paired with each verdict.
const (
	ColorPerfect   = "teal"
	ColorPotential = "amber"
	ColorHidden    = "gray"
)

// Risk levels.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

const (
	lowRiskAbove    = 75
	mediumRiskAbove = 50
	maxSnippets     = 3
	snippetKeywords = 10
	snippetLen      = 100
)

//nolint:gochecknoglobals // Static vocabulary
var softSkills = []string{"leadership", "collaboration", "communication", "problem-solving", "teamwork", "agile"}

// Suitability is the recruiter-facing summary of a scored candidate.
type Suitability struct {
	Verdict               string                   `json:"verdict"`
	Color                 string                   `json:"color"`
	Recommendation        string                   `json:"recommendation"`
	RecruiterInsights     []string                 `json:"recruiter_insights"`
	RiskLevel             string                   `json:"risk_level"`
	SuitabilityScore      int                      `json:"suitability_score"`
	MatchedSkills         []string                 `json:"matched_skills"`
	MissingSkills         []string                 `json:"missing_skills"`
	ExperienceSummary     []string                 `json:"experience_summary"`
	WorkHistory           []resume.ExperienceEntry `json:"work_history"`
	MatchedCertifications []string                 `json:"matched_certifications"`
	MissingCertifications []string                 `json:"missing_certifications"`
	EducationMatch        bool                     `json:"education_match"`
	EducationRequired     string                   `json:"education_required"`
	ResumeEducation       []string                 `json:"resume_education"`
}

// CalculateSuitability turns a score into a verdict, a recommendation and
// recruiter insights. The verdict follows the visibility gate, not the raw score.
func (s *Scorer) CalculateSuitability(result Result, record resume.Record, req jd.Record) (suit Suitability) {
	suit.Verdict, suit.Color, suit.Recommendation = verdict(result, s.policy.Gates)

	matched, missing := partition(s.lex.NormalizeAll(req.MandatorySkills), s.lex.NormalizeAll(record.Skills))
	matchedCerts, missingCerts := MatchCertifications(record.Certifications, req.RequiredCertifications)

	educationMatch := false
	if level, ok := jd.LevelFor(req.EducationRequired); ok {
		educationMatch = s.MeetsEducation(record.Education, level)
	}

	insights := []string{fmt.Sprintf("Experience Match: %s mentioned in JD.", req.ExperienceRequired)}

	if len(req.MandatorySkills) > 0 {
		insights = append(insights, fmt.Sprintf("Technical Core: %d/%d mandatory technologies found.", len(matched), len(matched)+len(missing)))
	}

	if found := foundSoftSkills(record); len(found) > 0 {
		insights = append(insights, fmt.Sprintf("Soft Skills Found: %s.", strings.Join(found, ", ")))
	} else {
		insights = append(insights, "Soft Skills: Limited explicit soft skill keywords detected.")
	}

	if len(req.RequiredCertifications) > 0 {
		insights = append(insights, fmt.Sprintf("Certifications: %d/%d required certificates found.", len(matchedCerts), len(req.RequiredCertifications)))
	}

	if _, ok := jd.LevelFor(req.EducationRequired); ok {
		status := "Does not explicitly match"
		if educationMatch {
			status = "Matches"
		}
		insights = append(insights, fmt.Sprintf("Education: %s (%s required).", status, req.EducationRequired))
	} else {
		insights = append(insights, "Education: No specific degree requirement detected in JD.")
	}

	suit.RecruiterInsights = insights
	suit.RiskLevel = riskLevel(result.TotalScore)
	suit.SuitabilityScore = int(result.TotalScore)
	suit.MatchedSkills = matched
	suit.MissingSkills = missing
	suit.ExperienceSummary = experienceSnippets(record, req)
	suit.WorkHistory = record.Experience
	suit.MatchedCertifications = matchedCerts
	suit.MissingCertifications = missingCerts
	suit.EducationMatch = educationMatch
	suit.EducationRequired = req.EducationRequired
	suit.ResumeEducation = record.Education

	return suit
}

func verdict(result Result, gates Gates) (v, color, recommendation string) {
	vis := result.Visibility

	switch {
	case vis.ContactDetailsUnlocked:
		v, color = VerdictPerfect, ColorPerfect
		recommendation = "Shortlist immediately! Meets all critical criteria."
	case vis.IsLimitedVisibility:
		v, color = VerdictPotential, ColorPotential
		recommendation = "Solid foundation. Needs specific keywords to cross the threshold."
		if result.TotalScore >= gates.PerfectMatch {
			recommendation = "High score but missing mandatory skills. Check gaps carefully."
		}
	default:
		v, color = VerdictHidden, ColorHidden
		recommendation = "This candidate does not meet the minimum ATS threshold and will not appear in the recruiter's dashboard."
	}

	return v, color, recommendation
}

func riskLevel(score float64) (risk string) {
	switch {
	case score > lowRiskAbove:
		risk = RiskLow
	case score > mediumRiskAbove:
		risk = RiskMedium
	default:
		risk = RiskHigh
	}
	return risk
}

func foundSoftSkills(record resume.Record) (found []string) {
	text := strings.ToLower(strings.Join(append(append([]string{}, record.Skills...), record.Summary), " "))
	for _, skill := range softSkills {
		if strings.Contains(text, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// experienceSnippets quotes bullets that mention one of the leading JD keywords.
func experienceSnippets(record resume.Record, req jd.Record) (snippets []string) {
	snippets = []string{}

	keywords := req.DomainKeywords
	if len(keywords) > snippetKeywords {
		keywords = keywords[:snippetKeywords]
	}

	for _, exp := range record.Experience {
		for _, bullet := range exp.Bullets {
			lower := strings.ToLower(bullet)
			for _, kw := range keywords {
				if strings.Contains(lower, kw) {
					snippets = append(snippets, fmt.Sprintf("%s: %s...", exp.Header, truncate(bullet, snippetLen)))
					break
				}
			}
			if len(snippets) >= maxSnippets {
				return snippets
			}
		}
	}

	return snippets
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) (cut string) {
	runes := []rune(s)
	if len(runes) <= n {
		cut = s
		return cut
	}
	cut = string(runes[:n])
	return cut
}
