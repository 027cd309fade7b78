package scorer

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidPolicy is returned by Policy.Validate.
var ErrInvalidPolicy = errors.New("invalid scoring policy")

// Component keys, in breakdown order.
const (
	KeyDomain         = "domain_similarity"
	KeySkills         = "skills_match"
	KeyKeywords       = "keyword_match"
	KeyExperience     = "experience_alignment"
	KeyEducation      = "education"
	KeyCertifications = "certifications"
	KeyFormatting     = "formatting"
)

const weightTolerance = 0.001

// Weights are the share of the total score each component carries. They sum to 1.
type Weights struct {
	Domain         float64 `json:"domain"`
	Skills         float64 `json:"skills"`
	Keywords       float64 `json:"keywords"`
	Experience     float64 `json:"experience"`
	Education      float64 `json:"education"`
	Certifications float64 `json:"certifications"`
	Formatting     float64 `json:"formatting"`
}

// Gates are the thresholds of the recruiter-visibility decision.
type Gates struct {
	PerfectMatch   float64 `json:"perfect_match"`   // Minimum total to unlock contact details
	PotentialMatch float64 `json:"potential_match"` // Minimum total to be visible at all
	MinExperience  float64 `json:"min_experience"`  // Minimum experience score for a perfect match
}

// Policy holds every tunable constant of the scoring model.
type Policy struct {
	Weights            Weights `json:"weights"`
	Gates              Gates   `json:"gates"`
	FormattingPenalty  float64 `json:"formatting_penalty"`   // Points lost per formatting issue
	NoExperienceCredit float64 `json:"no_experience_credit"` // Experience score when no roles were found
}

// DefaultPolicy returns the canonical weighting: domain 30, skills 25,
// keywords 20, experience 10, education 5, certifications 5, formatting 5.
func DefaultPolicy() (policy Policy) {
	policy = Policy{
		Weights: Weights{
			Domain:         0.30,
			Skills:         0.25,
			Keywords:       0.20,
			Experience:     0.10,
			Education:      0.05,
			Certifications: 0.05,
			Formatting:     0.05,
		},
		Gates: Gates{
			PerfectMatch:   85,
			PotentialMatch: 70,
			MinExperience:  60,
		},
		FormattingPenalty:  15,
		NoExperienceCredit: 20,
	}
	return policy
}

// Sum returns the total of all weights.
func (w Weights) Sum() (sum float64) {
	sum = w.Domain + w.Skills + w.Keywords + w.Experience + w.Education + w.Certifications + w.Formatting
	return sum
}

// ByKey returns the weight of the component named key.
func (w Weights) ByKey(key string) (weight float64) {
	switch key {
	case KeyDomain:
		weight = w.Domain
	case KeySkills:
		weight = w.Skills
	case KeyKeywords:
		weight = w.Keywords
	case KeyExperience:
		weight = w.Experience
	case KeyEducation:
		weight = w.Education
	case KeyCertifications:
		weight = w.Certifications
	case KeyFormatting:
		weight = w.Formatting
	}
	return weight
}

// Validate checks that the policy describes a usable scoring model.
func (p Policy) Validate() (err error) {
	for _, key := range componentOrder {
		w := p.Weights.ByKey(key)
		if w < 0 || w > 1 {
			err = errors.Wrapf(ErrInvalidPolicy, "weight %s must be between 0 and 1, got %.3f", key, w)
			return err
		}
	}

	if sum := p.Weights.Sum(); math.Abs(sum-1) > weightTolerance {
		err = errors.Wrapf(ErrInvalidPolicy, "weights must sum to 1.00, got %.3f", sum)
		return err
	}

	for name, gate := range map[string]float64{
		"perfect_match":   p.Gates.PerfectMatch,
		"potential_match": p.Gates.PotentialMatch,
		"min_experience":  p.Gates.MinExperience,
	} {
		if gate < 0 || gate > 100 {
			err = errors.Wrapf(ErrInvalidPolicy, "gate %s must be between 0 and 100, got %.2f", name, gate)
			return err
		}
	}

	if p.Gates.PotentialMatch > p.Gates.PerfectMatch {
		err = errors.Wrapf(ErrInvalidPolicy, "potential match gate (%.2f) exceeds perfect match gate (%.2f)",
			p.Gates.PotentialMatch, p.Gates.PerfectMatch)
		return err
	}

	if p.FormattingPenalty < 0 || p.NoExperienceCredit < 0 || p.NoExperienceCredit > 100 {
		err = errors.Wrap(ErrInvalidPolicy, "formatting penalty must be non-negative and no-experience credit within 0-100")
		return err
	}

	return err
}

// weightLabel renders a weight as a percentage such as "30%".
func weightLabel(weight float64) (label string) {
	label = fmt.Sprintf("%.0f%%", weight*100)
	return label
}
