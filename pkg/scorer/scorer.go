// Package scorer computes the weighted ATS compatibility score of a résumé
// against a job description, the recruiter-visibility gate and the
// suitability summary shown to recruiters.
package scorer

import (
	"math"
	"sort"
	"strings"

	"github.com/nikogura/ats-scorer/pkg/jd"
	"github.com/nikogura/ats-scorer/pkg/lexicon"
	"github.com/nikogura/ats-scorer/pkg/resume"
)

const (
	fullCredit          = 100.0
	experienceKeywords  = 25
	verbsForFullCredit  = 10
	strongContextRatio  = 0.6
	partialContextRatio = 0.3
	partialContextScore = 85.0
	baseContextScore    = 50.0
	contextShare        = 0.7
	verbShare           = 0.3
)

//nolint:gochecknoglobals // Breakdown layout
var componentOrder = []string{KeyDomain, KeySkills, KeyKeywords, KeyExperience, KeyEducation, KeyCertifications, KeyFormatting}

//nolint:gochecknoglobals // Breakdown layout
var componentNames = map[string]string{
	KeyDomain:         "Domain Similarity",
	KeySkills:         "Skills Match",
	KeyKeywords:       "Keyword Match",
	KeyExperience:     "Experience Alignment",
	KeyEducation:      "Education",
	KeyCertifications: "Certifications",
	KeyFormatting:     "Formatting",
}

// Component is one weighted sub-score.
type Component struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Score       float64  `json:"score"`
	Weight      float64  `json:"weight"`
	WeightLabel string   `json:"weight_label"`
	Matched     []string `json:"matched,omitempty"`
	Missing     []string `json:"missing,omitempty"`
}

// Visibility is the outcome of the recruiter-visibility gate.
type Visibility struct {
	IsRecruiterVisible     bool     `json:"is_recruiter_visible"`
	IsLimitedVisibility    bool     `json:"is_limited_visibility"`
	IsHidden               bool     `json:"is_hidden"`
	ContactDetailsUnlocked bool     `json:"contact_details_unlocked"`
	MissingMandatory       []string `json:"missing_mandatory"`
}

// Result is a complete score with its breakdown.
type Result struct {
	TotalScore float64     `json:"total_score"`
	Breakdown  []Component `json:"breakdown"`
	Visibility Visibility  `json:"visibility_status"`
}

// Component returns the breakdown entry named key.
func (r Result) Component(key string) (component Component, ok bool) {
	for _, c := range r.Breakdown {
		if c.Key == key {
			component, ok = c, true
			return component, ok
		}
	}
	return component, ok
}

// SubScore returns the score of the component named key, or 0 when absent.
func (r Result) SubScore(key string) (score float64) {
	c, _ := r.Component(key)
	score = c.Score
	return score
}

// Scorer calculates scores under a fixed Policy and Lexicon.
type Scorer struct {
	lex    *lexicon.Lexicon
	policy Policy
}

// NewScorer creates a new scorer instance.
func NewScorer(lex *lexicon.Lexicon, policy Policy) (scorer *Scorer) {
	scorer = &Scorer{lex: lex, policy: policy}
	return scorer
}

// Policy returns the policy the scorer applies.
func (s *Scorer) Policy() (policy Policy) {
	policy = s.policy
	return policy
}

// Calculate scores record against req. Sub-scores and the total are rounded
// to two decimals; the gate uses the unrounded values.
func (s *Scorer) Calculate(record resume.Record, req jd.Record) (result Result) {
	resumeSkills := s.lex.NormalizeAll(record.Skills)
	mandatory := s.lex.NormalizeAll(req.MandatorySkills)
	matched, missing := partition(mandatory, resumeSkills)

	scores := map[string]float64{
		KeyDomain:         s.domainSimilarity(record, req),
		KeySkills:         ratioScore(len(matched), len(mandatory)),
		KeyKeywords:       s.keywordMatch(record, req),
		KeyExperience:     s.experienceAlignment(record, req),
		KeyEducation:      s.educationMatch(record, req),
		KeyCertifications: certificationMatch(record, req),
		KeyFormatting:     math.Max(fullCredit-float64(len(record.FormattingIssues))*s.policy.FormattingPenalty, 0),
	}

	total := 0.0
	for _, key := range componentOrder {
		weight := s.policy.Weights.ByKey(key)
		total += scores[key] * weight

		component := Component{
			Key:         key,
			Name:        componentNames[key],
			Score:       round2(scores[key]),
			Weight:      weight,
			WeightLabel: weightLabel(weight),
		}
		if key == KeySkills {
			component.Matched = matched
			component.Missing = missing
		}
		result.Breakdown = append(result.Breakdown, component)
	}

	result.TotalScore = round2(total)
	result.Visibility = s.gate(total, scores[KeyExperience], missing)

	return result
}

// gate decides recruiter visibility. A high total alone never unlocks contact
// details: every mandatory skill must be present and experience must clear
// its own threshold.
func (s *Scorer) gate(total, experience float64, missing []string) (vis Visibility) {
	g := s.policy.Gates

	perfect := total >= g.PerfectMatch && len(missing) == 0 && experience >= g.MinExperience
	potential := (total >= g.PotentialMatch && total < g.PerfectMatch) || (total >= g.PerfectMatch && !perfect)

	vis = Visibility{
		IsRecruiterVisible:     perfect || potential,
		IsLimitedVisibility:    potential,
		IsHidden:               total < g.PotentialMatch,
		ContactDetailsUnlocked: perfect,
		MissingMandatory:       missing,
	}
	return vis
}

// domainSimilarity is the share of JD keywords mentioned in the summary or role headers.
func (s *Scorer) domainSimilarity(record resume.Record, req jd.Record) (score float64) {
	if len(req.DomainKeywords) == 0 {
		score = fullCredit
		return score
	}

	var sb strings.Builder
	sb.WriteString(record.Summary)
	for _, exp := range record.Experience {
		sb.WriteString(" ")
		sb.WriteString(exp.Header)
	}
	text := strings.ToLower(sb.String())

	found := 0
	for _, kw := range req.DomainKeywords {
		if strings.Contains(text, kw) || strings.Contains(text, s.lex.Normalize(kw)) {
			found++
		}
	}

	score = math.Min(ratioScore(found, len(req.DomainKeywords)), fullCredit)
	return score
}

// keywordMatch is the weighted share of JD keywords present among the résumé keywords.
func (s *Scorer) keywordMatch(record resume.Record, req jd.Record) (score float64) {
	if len(req.WeightedKeywords) == 0 {
		score = fullCredit
		return score
	}

	have := s.lex.NormalizeAll(record.Keywords)

	weights := make(map[string]float64, len(req.WeightedKeywords))
	for kw, w := range req.WeightedKeywords {
		norm := s.lex.Normalize(kw)
		weights[norm] = math.Max(weights[norm], w)
	}

	keys := make([]string, 0, len(weights))
	for kw := range weights {
		keys = append(keys, kw)
	}
	sort.Strings(keys)

	maxScore, current := 0.0, 0.0
	for _, kw := range keys {
		maxScore += weights[kw]
		if _, ok := have[kw]; ok {
			current += weights[kw]
		}
	}

	if maxScore == 0 {
		score = fullCredit
		return score
	}

	score = math.Min(current/maxScore*100, fullCredit)
	return score
}

// experienceAlignment blends how much JD vocabulary the roles mention with
// how many action verbs they use.
func (s *Scorer) experienceAlignment(record resume.Record, req jd.Record) (score float64) {
	if len(record.Experience) == 0 {
		score = s.policy.NoExperienceCredit
		return score
	}

	text := strings.ToLower(record.ExperienceText())

	top := req.DomainKeywords
	if len(top) > experienceKeywords {
		top = top[:experienceKeywords]
	}
	keywords := s.lex.NormalizeAll(top)

	ctxScore := fullCredit
	if len(keywords) > 0 {
		found := 0
		for kw := range keywords {
			if strings.Contains(text, kw) {
				found++
			}
		}

		ratio := float64(found) / float64(len(keywords))
		switch {
		case ratio > strongContextRatio:
			ctxScore = fullCredit
		case ratio > partialContextRatio:
			ctxScore = partialContextScore
		default:
			ctxScore = baseContextScore + ratio*100
		}
	}

	verbs := len(s.lex.ActionVerbsIn(text))
	verbScore := math.Min(float64(verbs)/verbsForFullCredit*100, fullCredit)

	score = math.Min(ctxScore*contextShare+verbScore*verbShare, fullCredit)
	return score
}

// educationMatch gives full credit when the résumé shows the required degree
// level or any level above it.
func (s *Scorer) educationMatch(record resume.Record, req jd.Record) (score float64) {
	required, ok := jd.LevelFor(req.EducationRequired)
	if !ok {
		score = fullCredit
		return score
	}

	if s.MeetsEducation(record.Education, required) {
		score = fullCredit
	}
	return score
}

// MeetsEducation reports whether education lines show required or a higher level.
func (s *Scorer) MeetsEducation(education []string, required lexicon.EducationLevel) (ok bool) {
	text := strings.Join(education, " ")

	reached := false
	for _, level := range lexicon.EducationHierarchy {
		if level == required {
			reached = true
		}
		if reached && s.lex.HasEducationLevel(text, level) {
			ok = true
			return ok
		}
	}

	return ok
}

// certificationMatch is the share of required certifications named in any résumé certification line.
func certificationMatch(record resume.Record, req jd.Record) (score float64) {
	if len(req.RequiredCertifications) == 0 {
		score = fullCredit
		return score
	}

	matched, _ := MatchCertifications(record.Certifications, req.RequiredCertifications)
	score = ratioScore(len(matched), len(req.RequiredCertifications))
	return score
}

// MatchCertifications splits required into those found as substrings of a
// résumé certification line and those missing.
func MatchCertifications(have, required []string) (matched, missing []string) {
	matched, missing = []string{}, []string{}
	for _, rc := range required {
		needle := strings.ToLower(rc)
		found := false
		for _, c := range have {
			if strings.Contains(strings.ToLower(c), needle) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, rc)
		} else {
			missing = append(missing, rc)
		}
	}
	return matched, missing
}

// ratioScore maps found/total to 0-100; an empty denominator is full credit.
func ratioScore(found, total int) (score float64) {
	if total == 0 {
		score = fullCredit
		return score
	}
	score = float64(found) / float64(total) * 100
	return score
}

func round2(v float64) (rounded float64) {
	rounded = math.Round(v*100) / 100
	return rounded
}
