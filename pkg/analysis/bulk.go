package analysis

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/nikogura/ats-scorer/pkg/document"
	"github.com/nikogura/ats-scorer/pkg/jd"
	"github.com/nikogura/ats-scorer/pkg/resume"
)

// Submission is one résumé in a bulk run.
type Submission struct {
	Name string `json:"name"`
	Text string `json:"-"`
}

// Candidate is a ranked bulk result.
type Candidate struct {
	Rank           int                `json:"rank"`
	Name           string             `json:"name"`
	Contact        resume.ContactInfo `json:"contact"`
	TotalScore     float64            `json:"total_score"`
	Verdict        string             `json:"verdict"`
	Color          string             `json:"color"`
	RiskLevel      string             `json:"risk_level"`
	Unlocked       bool               `json:"contact_details_unlocked"`
	MatchedSkills  []string           `json:"matched_skills"`
	MissingSkills  []string           `json:"missing_skills"`
	Recommendation string             `json:"recommendation"`
	Analysis       Analysis           `json:"-"`
}

// Failure records a submission that could not be analyzed.
type Failure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// BulkResult ranks every analyzable submission against one job description.
type BulkResult struct {
	ID         string      `json:"id"`
	Generated  time.Time   `json:"generated"`
	JD         jd.Record   `json:"job_description"`
	Candidates []Candidate `json:"candidates"`
	Failures   []Failure   `json:"failures"`
}

type loader func(i int) (name, text string, err error)

// Bulk analyzes every submission against jdText with at most workers running
// at once. The job description is analyzed once. Candidates are ranked by
// total score, highest first, with ties kept in submission order. A bad
// submission lands in Failures and never stops the run.
func (e *Engine) Bulk(ctx context.Context, jdText string, submissions []Submission, workers int) (result BulkResult, err error) {
	load := func(i int) (name, text string, err error) {
		name, text = submissions[i].Name, submissions[i].Text
		return name, text, err
	}

	result, err = e.bulk(ctx, jdText, len(submissions), workers, load)

	return result, err
}

// BulkFiles is Bulk over résumé files, extracting their text in parallel.
func (e *Engine) BulkFiles(ctx context.Context, jdText string, paths []string, workers int) (result BulkResult, err error) {
	load := func(i int) (name, text string, err error) {
		name = paths[i]
		text, err = document.ParseFile(paths[i])
		return name, text, err
	}

	result, err = e.bulk(ctx, jdText, len(paths), workers, load)

	return result, err
}

func (e *Engine) bulk(ctx context.Context, jdText string, n, workers int, load loader) (result BulkResult, err error) {
	if workers < 1 {
		workers = 1
	}

	req, err := e.AnalyzeJD(jdText)
	if err != nil {
		return result, err
	}

	result = BulkResult{
		ID:         uuid.NewString(),
		Generated:  e.now(),
		JD:         req,
		Candidates: []Candidate{},
		Failures:   []Failure{},
	}

	names := make([]string, n)
	analyses := make([]*Analysis, n)
	failures := make([]*Failure, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		g.Go(func() (err error) {
			err = gctx.Err()
			if err != nil {
				return err
			}

			name, text, loadErr := load(i)
			names[i] = name

			switch {
			case loadErr != nil:
				failures[i] = &Failure{Name: name, Error: loadErr.Error()}
				e.logger.Warn().Err(loadErr).Str("submission", name).Msg("resume skipped")
			case strings.TrimSpace(text) == "":
				failures[i] = &Failure{Name: name, Error: errors.Wrap(ErrEmptyInput, "resume text is blank").Error()}
				e.logger.Warn().Str("submission", name).Msg("resume skipped")
			default:
				a := e.analyze(text, req)
				analyses[i] = &a
			}

			return err
		})
	}

	err = g.Wait()
	if err != nil {
		err = errors.Wrap(err, "bulk analysis interrupted")
		return result, err
	}

	for i := 0; i < n; i++ {
		if failures[i] != nil {
			result.Failures = append(result.Failures, *failures[i])
			continue
		}
		if analyses[i] != nil {
			result.Candidates = append(result.Candidates, candidate(names[i], *analyses[i]))
		}
	}

	Rank(result.Candidates)

	e.logger.Debug().
		Str("bulk", result.ID).
		Int("ranked", len(result.Candidates)).
		Int("failed", len(result.Failures)).
		Msg("bulk analysis complete")

	return result, err
}

// Rank orders candidates by total score, highest first, keeping the input
// order for ties, and numbers them from 1.
func Rank(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) (less bool) {
		less = candidates[i].TotalScore > candidates[j].TotalScore
		return less
	})
	for i := range candidates {
		candidates[i].Rank = i + 1
	}
}

func candidate(name string, a Analysis) (c Candidate) {
	c = Candidate{
		Name:           name,
		Contact:        a.Resume.Contact,
		TotalScore:     a.Score.TotalScore,
		Verdict:        a.Suitability.Verdict,
		Color:          a.Suitability.Color,
		RiskLevel:      a.Suitability.RiskLevel,
		Unlocked:       a.Score.Visibility.ContactDetailsUnlocked,
		MatchedSkills:  a.Suitability.MatchedSkills,
		MissingSkills:  a.Suitability.MissingSkills,
		Recommendation: a.Suitability.Recommendation,
		Analysis:       a,
	}
	return c
}
