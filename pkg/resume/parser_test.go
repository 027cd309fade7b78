package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikogura/ats-scorer/pkg/lexicon"
)

const scenarioResume = "JOHN DOE\njohn@x.com\n555-123-4567\nSKILLS\nPython, AWS, Docker\nEXPERIENCE\nEngineer at Acme 2020-2023\n- Built services"

const fullResume = `Priya Sharma
priya.sharma@example.com | +91 98765 43210
Based in Bangalore, India

PROFESSIONAL SUMMARY
Backend engineer building payment platforms.
Focused on reliability.

TECHNICAL SKILLS
Go, PostgreSQL, Kafka
Distributed Tracing

WORK EXPERIENCE
Senior Engineer, PayCo 2021 - Present
• Led migration of ledger service to Go
• Responsible for on-call rotation
Engineer, ShopCo 2018 - 2021
- Built checkout APIs

EDUCATION
B.Tech Computer Science, IIT Delhi 2018
CS

CERTIFICATIONS
AWS Certified Solutions Architect
CKAD

PROJECTS
Ledger Simulator
- Property-based tests for double-entry accounting
OSS Contributions
- Maintainer of a Go tracing library`

func TestParseScenario(t *testing.T) {
	record := Parse(lexicon.Default(), scenarioResume)

	assert.Equal(t, ContactInfo{Name: "JOHN DOE", Email: "john@x.com", Phone: "555-123-4567"}, record.Contact)
	assert.Equal(t, []string{"aws", "docker", "python"}, record.Skills)
	require.Len(t, record.Experience, 1)
	assert.Equal(t, "Engineer at Acme 2020-2023", record.Experience[0].Header)
	assert.Equal(t, []string{"Built services"}, record.Experience[0].Bullets)
	assert.Empty(t, record.Summary)
	assert.Empty(t, record.Education)
	assert.Empty(t, record.FormattingIssues)
}

func TestParseFullResume(t *testing.T) {
	record := Parse(lexicon.Default(), fullResume)

	assert.Equal(t, "Priya Sharma", record.Contact.Name)
	assert.Equal(t, "priya.sharma@example.com", record.Contact.Email)
	assert.Equal(t, "+91 98765 43210", record.Contact.Phone)
	assert.Contains(t, record.Contact.Location, "Bangalore, India")

	assert.Equal(t, "Backend engineer building payment platforms. Focused on reliability.", record.Summary)

	assert.Contains(t, record.Skills, "go")
	assert.Contains(t, record.Skills, "kafka")
	assert.Contains(t, record.Skills, "distributed tracing")

	require.Len(t, record.Experience, 2)
	assert.Equal(t, "Senior Engineer, PayCo 2021 - Present", record.Experience[0].Header)
	assert.Equal(t, []string{"Led migration of ledger service to Go", "Responsible for on-call rotation"}, record.Experience[0].Bullets)
	assert.Equal(t, []string{"Built checkout APIs"}, record.Experience[1].Bullets)

	assert.Equal(t, []string{"B.Tech Computer Science, IIT Delhi 2018"}, record.Education)
	assert.Equal(t, []string{"AWS Certified Solutions Architect", "CKAD"}, record.Certifications)

	require.Len(t, record.Projects, 2)
	assert.Equal(t, ProjectEntry{Title: "Ledger Simulator", Description: []string{"Property-based tests for double-entry accounting"}}, record.Projects[0])
	assert.Equal(t, "OSS Contributions", record.Projects[1].Title)
}

func TestParseSkillsAreKeywords(t *testing.T) {
	lex := lexicon.Default()

	for _, text := range []string{scenarioResume, fullResume, "", "C++ and C# developer\nSkills: .NET, F#"} {
		record := Parse(lex, text)
		for _, s := range record.Skills {
			assert.Contains(t, record.Keywords, s)
		}
	}
}

func TestParseIsIdempotent(t *testing.T) {
	lex := lexicon.Default()
	assert.Equal(t, Parse(lex, fullResume), Parse(lex, fullResume))
}

func TestParseWindowsLineEndings(t *testing.T) {
	lex := lexicon.Default()
	want := Parse(lex, fullResume)

	got := Parse(lex, strings.ReplaceAll(fullResume, "\n", "\r\n"))
	assert.Equal(t, want, got)

	got = Parse(lex, strings.ReplaceAll(fullResume, "\n", "\r"))
	assert.Equal(t, want, got)
	assert.NotContains(t, strings.Join(got.FormattingIssues, " "), "\r")
}

func TestParseEmptyText(t *testing.T) {
	record := Parse(lexicon.Default(), "   \n")

	assert.Equal(t, NameNotFound, record.Contact.Name)
	assert.Empty(t, record.Skills)
	assert.Empty(t, record.Experience)
	assert.Empty(t, record.Keywords)
	assert.Empty(t, record.FormattingIssues)
}

func TestLocationWindow(t *testing.T) {
	location := extractLocation(lexicon.Default(), "Jane Roe\nBased in Bangalore, India. Open to relocation.")
	assert.Equal(t, "Based in Bangalore, India. Open to relocation.", location)

	assert.Empty(t, extractLocation(lexicon.Default(), "Remote, Portugal"))
}

func TestDetectFormattingIssues(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "tab",
			text: "Name\tTitle",
			want: []string{IssueTables},
		},
		{
			name: "pipe table",
			text: "Skill | Years",
			want: []string{IssueTables, IssueSpecialChars + ": |"},
		},
		{
			name: "special characters sorted and deduplicated",
			text: "Jane • Doe ★ café •",
			want: []string{IssueSpecialChars + ": é, •, ★"},
		},
		{
			name: "graphic placeholder",
			text: "Logo [IMAGE] here",
			want: []string{IssueGraphics},
		},
		{
			name: "clean text",
			text: "Jane Doe\njane@example.com (555) 123-4567",
			want: []string{},
		},
		{
			name: "raw carriage return",
			text: "Jane Doe\r\njane@example.com",
			want: []string{IssueSpecialChars + ": \r"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormattingIssues(tt.text))
		})
	}
}

func TestSpecialCharsCapped(t *testing.T) {
	issues := DetectFormattingIssues("àáâãäåæ")
	require.Len(t, issues, 1)
	assert.Len(t, strings.Split(strings.TrimPrefix(issues[0], IssueSpecialChars+": "), ", "), maxReportedChars)
}
