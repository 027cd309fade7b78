// Package analysis runs the full résumé analysis pipeline: parse, analyze the
// job description, score, find gaps, suggest improvements and render the
// optimized résumé.
package analysis

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/nikogura/ats-scorer/pkg/gaps"
	"github.com/nikogura/ats-scorer/pkg/improve"
	"github.com/nikogura/ats-scorer/pkg/jd"
	"github.com/nikogura/ats-scorer/pkg/lexicon"
	"github.com/nikogura/ats-scorer/pkg/optimizer"
	"github.com/nikogura/ats-scorer/pkg/report"
	"github.com/nikogura/ats-scorer/pkg/resume"
	"github.com/nikogura/ats-scorer/pkg/scorer"
)

// ErrEmptyInput is returned when the résumé or job-description text is blank.
var ErrEmptyInput = errors.New("empty input")

// Analysis is the complete result for one résumé against one job description.
type Analysis struct {
	ID              string               `json:"id"`
	Generated       time.Time            `json:"generated"`
	Resume          resume.Record        `json:"resume"`
	JD              jd.Record            `json:"job_description"`
	Score           scorer.Result        `json:"score"`
	Suitability     scorer.Suitability   `json:"suitability"`
	Gaps            gaps.Gaps            `json:"gaps"`
	Improvements    improve.Improvements `json:"improvements"`
	OptimizedResume string               `json:"optimized_resume"`
}

// Engine holds the read-only lexicon and scorer shared by every analysis.
// It is safe for concurrent use.
type Engine struct {
	lex    *lexicon.Lexicon
	scorer *scorer.Scorer
	logger zerolog.Logger
	now    func() time.Time
}

// NewEngine validates policy and builds an engine around lex.
func NewEngine(lex *lexicon.Lexicon, policy scorer.Policy, logger zerolog.Logger) (engine *Engine, err error) {
	err = policy.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid scoring policy")
		return engine, err
	}

	engine = &Engine{
		lex:    lex,
		scorer: scorer.NewScorer(lex, policy),
		logger: logger,
		now:    time.Now,
	}

	return engine, err
}

// Lexicon returns the engine's vocabulary.
func (e *Engine) Lexicon() (lex *lexicon.Lexicon) {
	lex = e.lex
	return lex
}

// Analyze runs the whole pipeline on one résumé and one job description.
func (e *Engine) Analyze(resumeText, jdText string) (result Analysis, err error) {
	if strings.TrimSpace(resumeText) == "" {
		err = errors.Wrap(ErrEmptyInput, "resume text is blank")
		return result, err
	}

	req, err := e.AnalyzeJD(jdText)
	if err != nil {
		return result, err
	}

	result = e.analyze(resumeText, req)

	return result, err
}

// AnalyzeJD extracts requirements from a job description.
func (e *Engine) AnalyzeJD(jdText string) (req jd.Record, err error) {
	if strings.TrimSpace(jdText) == "" {
		err = errors.Wrap(ErrEmptyInput, "job description text is blank")
		return req, err
	}

	req = jd.Analyze(e.lex, jdText)
	e.logger.Debug().
		Int("mandatory", len(req.MandatorySkills)).
		Int("preferred", len(req.PreferredSkills)).
		Int("tools", len(req.ToolsTechnologies)).
		Int("keywords", len(req.DomainKeywords)).
		Str("experience", req.ExperienceRequired).
		Str("education", req.EducationRequired).
		Msg("job description analyzed")

	return req, err
}

func (e *Engine) analyze(resumeText string, req jd.Record) (result Analysis) {
	result.ID = uuid.NewString()
	result.Generated = e.now()
	result.JD = req

	result.Resume = resume.Parse(e.lex, resumeText)
	e.logger.Debug().
		Str("analysis", result.ID).
		Int("skills", len(result.Resume.Skills)).
		Int("experience", len(result.Resume.Experience)).
		Int("formatting_issues", len(result.Resume.FormattingIssues)).
		Msg("resume parsed")

	result.Score = e.scorer.Calculate(result.Resume, req)
	result.Suitability = e.scorer.CalculateSuitability(result.Score, result.Resume, req)
	e.logger.Debug().
		Str("analysis", result.ID).
		Float64("total", result.Score.TotalScore).
		Str("verdict", result.Suitability.Verdict).
		Msg("resume scored")

	result.Gaps = gaps.Find(e.lex, result.Resume, req)
	result.Improvements = improve.Generate(e.lex, result.Resume, req, result.Gaps)
	result.OptimizedResume = optimizer.Optimize(result.Resume, result.Improvements)
	e.logger.Debug().
		Str("analysis", result.ID).
		Int("missing_mandatory", len(result.Gaps.Critical.MissingMandatorySkills)).
		Int("rewrites", len(result.Improvements.BulletRewrites)).
		Msg("improvements generated")

	return result
}

// Report renders the plain-text report for an analysis.
func (e *Engine) Report(a Analysis) (text string) {
	text = report.Generate(e.lex, report.Input{
		ID:           a.ID,
		Generated:    a.Generated,
		Resume:       a.Resume,
		JD:           a.JD,
		Score:        a.Score,
		Gaps:         a.Gaps,
		Improvements: a.Improvements,
		Optimized:    a.OptimizedResume,
		Suitability:  &a.Suitability,
	})
	return text
}
