package optimizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nikogura/ats-scorer/pkg/improve"
	"github.com/nikogura/ats-scorer/pkg/resume"
)

func sampleRecord() (record resume.Record) {
	record = resume.Record{
		Contact: resume.ContactInfo{Name: "Jane Roe", Email: "jane@example.com", Phone: "555-123-4567", Location: "Austin, TX"},
		Summary: "Backend engineer.",
		Skills:  []string{"docker", "go", "rust"},
		Experience: []resume.ExperienceEntry{
			{Header: "Engineer, Acme 2020-2024", Bullets: []string{"Worked on billing", "Built search"}},
		},
		Education: []string{"BS Computer Science"},
	}
	return record
}

func TestOptimize(t *testing.T) {
	improvements := improve.Improvements{
		Summary: "Backend engineer. Proficient in Go.",
		BulletRewrites: []improve.BulletRewrite{
			{Original: "Worked on billing", Improved: "Developed Worked on billing, resulting in [quantifiable impact]"},
		},
		Skills: improve.SkillsSection{Categories: []improve.SkillCategory{
			{Name: improve.CategoryCore, Skills: []string{"go"}},
			{Name: improve.CategoryAdditional, Skills: []string{}},
			{Name: improve.CategoryOther, Skills: []string{"docker", "rust"}},
		}},
	}

	want := `JANE ROE
jane@example.com | 555-123-4567 | Austin, TX

PROFESSIONAL SUMMARY
Backend engineer. Proficient in Go.

TECHNICAL SKILLS

Core Technical Skills:
go

Other Competencies:
docker, rust


PROFESSIONAL EXPERIENCE

Engineer, Acme 2020-2024
• Developed Worked on billing, resulting in [quantifiable impact]
• Built search


EDUCATION
BS Computer Science
`

	assert.Equal(t, want, Optimize(sampleRecord(), improvements))
}

func TestOptimizeFallbacks(t *testing.T) {
	record := sampleRecord()
	record.Contact.Phone = ""

	got := Optimize(record, improve.Improvements{})

	assert.True(t, strings.HasPrefix(got, "JANE ROE\njane@example.com | Austin, TX\n\n"))
	assert.Contains(t, got, "PROFESSIONAL SUMMARY\nBackend engineer.")
	assert.Contains(t, got, "TECHNICAL SKILLS\ndocker, go, rust")
	assert.Contains(t, got, "• Worked on billing\n")
	assert.NotContains(t, got, HeadingCertifications)
	assert.NotContains(t, got, HeadingProjects)
}

func TestOptimizeOptionalSections(t *testing.T) {
	record := sampleRecord()
	record.Certifications = []string{"CKA"}
	record.Projects = []resume.ProjectEntry{{Title: "Ledger", Description: []string{"Double-entry store"}}}

	got := Optimize(record, improve.Improvements{})

	assert.True(t, strings.HasSuffix(got, "CERTIFICATIONS\n• CKA\n\n\nKEY PROJECTS\n\nLedger\n• Double-entry store\n"))
}

func TestOptimizeNeverAddsMissingSkills(t *testing.T) {
	improvements := improve.Improvements{Skills: improve.SkillsSection{
		Categories:       []improve.SkillCategory{{Name: improve.CategoryCore, Skills: []string{"go"}}},
		MissingMandatory: []string{"kafka"},
	}}

	assert.NotContains(t, Optimize(sampleRecord(), improvements), "kafka")
}
