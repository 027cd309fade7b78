package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikogura/ats-scorer/pkg/gaps"
	"github.com/nikogura/ats-scorer/pkg/improve"
	"github.com/nikogura/ats-scorer/pkg/jd"
	"github.com/nikogura/ats-scorer/pkg/lexicon"
	"github.com/nikogura/ats-scorer/pkg/optimizer"
	"github.com/nikogura/ats-scorer/pkg/resume"
	"github.com/nikogura/ats-scorer/pkg/scorer"
)

func TestReadability(t *testing.T) {
	lex := lexicon.Default()

	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "plain", text: "nothing notable here", want: 7},
		{name: "action verb", text: "we built it", want: 8},
		{name: "quantified", text: "grew revenue 40%", want: 8},
		{name: "plus count", text: "served 10+ clients", want: 8},
		{name: "structured", text: "Summary\nExperience\nSkills", want: 8},
		{name: "everything", text: "SUMMARY\nEXPERIENCE\nSKILLS\nLed 5+ launches, cut cost 30%", want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Readability(lex, tt.text))
		})
	}
}

func TestMatchedKeywords(t *testing.T) {
	assert.Equal(t, 2, MatchedKeywords([]string{"go", "kafka", "rust"}, []string{"kafka", "go", "java"}))
	assert.Equal(t, 0, MatchedKeywords(nil, []string{"go"}))

	long := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		long = append(long, strings.Repeat("k", i+2))
	}
	assert.Equal(t, 20, MatchedKeywords(long, long))
	assert.Equal(t, 0, MatchedKeywords(long[20:], long))
}

func TestGenerate(t *testing.T) {
	lex := lexicon.Default()
	s := scorer.NewScorer(lex, scorer.DefaultPolicy())

	record := resume.Parse(lex, "JOHN DOE\njohn@x.com\nSKILLS\nPython, AWS\nEXPERIENCE\nEngineer at Acme 2020-2023\n- Worked on services")
	req := jd.Analyze(lex, "Required: Python, AWS, Docker. 3+ years experience.")
	result := s.Calculate(record, req)
	g := gaps.Find(lex, record, req)
	improvements := improve.Generate(lex, record, req, g)
	suit := s.CalculateSuitability(result, record, req)
	optimized := optimizer.Optimize(record, improvements)

	text := Generate(lex, Input{
		ID:           "c0ffee",
		Generated:    time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
		Resume:       record,
		JD:           req,
		Score:        result,
		Gaps:         g,
		Improvements: improvements,
		Optimized:    optimized,
		Suitability:  &suit,
	})

	lines := strings.Split(text, "\n")
	require.Greater(t, len(lines), 4)
	assert.Equal(t, strings.Repeat("=", 80), lines[0])
	assert.Equal(t, Title, lines[1])
	assert.Equal(t, "Generated: 2026-03-04 05:06:07", lines[3])
	assert.Equal(t, "Analysis ID: c0ffee", lines[4])

	assert.Contains(t, text, "  Skills Match: 66.67/100 (Weight: 25%)")
	assert.Contains(t, text, "  Missing Mandatory Skills:\n    - docker")
	assert.Contains(t, text, "VERDICT: "+scorer.VerdictHidden)
	assert.Contains(t, text, "  [CRITICAL] docker")
	assert.Contains(t, text, "  Original: Worked on services")
	assert.Contains(t, text, "OPTIMIZED RESUME\n"+strings.Repeat("=", 80)+"\n"+optimized)
	assert.Contains(t, text, "Matched Keywords Before: ")
	assert.Contains(t, text, "Readability Score: ")
	assert.NotContains(t, text, "Missing Key Tools:\n    - python")
}

func TestGenerateWithoutSuitability(t *testing.T) {
	text := Generate(lexicon.Default(), Input{ID: "x"})
	assert.NotContains(t, text, "HR SUITABILITY ASSESSMENT")
	assert.Contains(t, text, "ATS COMPATIBILITY SCORE: 0/100")
}
