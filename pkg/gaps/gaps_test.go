package gaps

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nikogura/ats-scorer/pkg/jd"
	"github.com/nikogura/ats-scorer/pkg/lexicon"
	"github.com/nikogura/ats-scorer/pkg/resume"
)

func TestFind(t *testing.T) {
	lex := lexicon.Default()

	record := resume.Parse(lex, `Jane Roe
Skills
Python, k8s, ReactJS
Experience
Engineer, Acme 2019-2024
- Responsible for the deployment pipeline and on-call rotation for payments
- Worked on billing`)

	req := jd.Analyze(lex, `Platform Engineer
Preferred: Rust
Required: Python, Kubernetes, Terraform, React
We ship reliable infrastructure.`)

	gaps := Find(lex, record, req)

	assert.Equal(t, []string{"terraform"}, gaps.Critical.MissingMandatorySkills)
	assert.Equal(t, []string{"terraform"}, gaps.Critical.MissingKeyTools)
	assert.Equal(t, []string{"rust", "terraform"}, gaps.Important.MissingPreferredSkills)
	assert.Contains(t, gaps.Important.MissingDomainKeywords, "infrastructure")
	assert.NotContains(t, gaps.Important.MissingDomainKeywords, "python")
	assert.Equal(t, []string{"kubernetes", "react"}, gaps.Optional.MissingNiceToHave)
	assert.Equal(t, []string{
		"'responsible for' in: Responsible for the deployment pipeline and on-cal...",
		"'worked on' in: Worked on billing...",
	}, gaps.Important.WeakActionVerbs)
}

func TestFindNoGaps(t *testing.T) {
	lex := lexicon.Default()

	record := resume.Parse(lex, "Jane\nSkills\nGo, Docker\nExperience\nAcme 2020\n- Built Go services in Docker")
	req := jd.Analyze(lex, "Must have: Go, Docker")

	gaps := Find(lex, record, req)

	assert.Empty(t, gaps.Critical.MissingMandatorySkills)
	assert.Empty(t, gaps.Critical.MissingKeyTools)
	assert.Empty(t, gaps.Important.MissingPreferredSkills)
	assert.Empty(t, gaps.Important.WeakActionVerbs)
	assert.Empty(t, gaps.Optional.MissingNiceToHave)
}

func TestMissingDomainKeywordsCapped(t *testing.T) {
	lex := lexicon.Default()

	req := jd.Analyze(lex, "alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima")
	gaps := Find(lex, resume.Record{}, req)

	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel", "india", "juliet"},
		gaps.Important.MissingDomainKeywords)
}

func TestWeakActionVerbsCapped(t *testing.T) {
	record := resume.Record{Experience: []resume.ExperienceEntry{{
		Header:  "Acme 2020",
		Bullets: []string{"worked on a", "worked on b", "helped with c", "assisted in d", "responsible for e", "worked on f"},
	}}}

	assert.Len(t, WeakActionVerbs(record), 5)
}

func TestFormattingIssuesPassThrough(t *testing.T) {
	lex := lexicon.Default()
	record := resume.Parse(lex, "Jane\tDoe")

	gaps := Find(lex, record, jd.Record{})
	assert.Equal(t, record.FormattingIssues, gaps.FormattingIssues)
}
