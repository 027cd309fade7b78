package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nikogura/ats-scorer/pkg/lexicon"
)

func TestExtract(t *testing.T) {
	lex := lexicon.Default()

	text := "JOHN DOE\nSKILLS\nPython, AWS | Docker;  Stakeholder Wrangling\n• Apache Beam\nEXPERIENCE\nBuilt things in Go"
	got := Extract(lex, text)

	assert.Equal(t, []string{"apache beam", "aws", "docker", "go", "python", "stakeholder wrangling"}, got)
}

func TestSectionTokensFiltersSentences(t *testing.T) {
	text := "Skills\nI am passionate about building reliable software systems, Go, C\nProjects\nignored"
	assert.Empty(t, SectionTokens(text))
	assert.Empty(t, SectionTokens("no section here"))
	assert.Equal(t, []string{"terraform iac", "ci/cd"}, SectionTokens("Skills:\nTerraform (IaC:)\nci/cd"))
}

func TestKeywords(t *testing.T) {
	lex := lexicon.Default()

	got := Keywords(lex, "Built CI/CD pipelines with scikit-learn and the Go toolchain. Built more.", []string{"zeta", "go"})

	assert.Equal(t, []string{"built", "ci/cd", "pipelines", "scikit-learn", "go", "toolchain", "zeta"}, got)
}

func TestSkillsAreKeywords(t *testing.T) {
	lex := lexicon.Default()

	texts := []string{
		"SKILLS\nC++, C#, .NET\nEXPERIENCE\nAcme 2020\n- Shipped",
		"Technical Skills: Node.js; React Native; ML",
		"",
	}

	for _, text := range texts {
		found := Extract(lex, text)
		keywords := Keywords(lex, text, found)
		for _, s := range found {
			assert.Contains(t, keywords, s)
		}
	}
}

func TestStripBullet(t *testing.T) {
	assert.Equal(t, "Led team", StripBullet("• Led team"))
	assert.Equal(t, "Led team", StripBullet("  - * Led team "))
	assert.Equal(t, "Led team", StripBullet("Led team"))
	assert.True(t, IsBulleted("· item"))
	assert.False(t, IsBulleted("item"))
}
