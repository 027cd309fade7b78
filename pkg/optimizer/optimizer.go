// Package optimizer renders an ATS-friendly résumé from a parsed résumé and
// the suggestions made for it. It only formats; nothing here scores or judges.
package optimizer

import (
	"strings"

	"github.com/nikogura/ats-scorer/pkg/improve"
	"github.com/nikogura/ats-scorer/pkg/resume"
)

// Section headings of the rendered résumé.
const (
	HeadingSummary        = "PROFESSIONAL SUMMARY"
	HeadingSkills         = "TECHNICAL SKILLS"
	HeadingExperience     = "PROFESSIONAL EXPERIENCE"
	HeadingEducation      = "EDUCATION"
	HeadingCertifications = "CERTIFICATIONS"
	HeadingProjects       = "KEY PROJECTS"
)

const bullet = "• "

// Optimize renders record as plain text. The suggested summary replaces the
// original when there is one, skills are grouped by JD relevance, and every
// bullet with a proposed rewrite is replaced by it. Certifications and
// projects are only rendered when present.
func Optimize(record resume.Record, improvements improve.Improvements) (text string) {
	blocks := []string{
		header(record.Contact),
		summary(record.Summary, improvements.Summary),
		skillsBlock(record.Skills, improvements.Skills),
		experience(record.Experience, improvements),
		education(record.Education),
	}

	if len(record.Certifications) > 0 {
		blocks = append(blocks, certifications(record.Certifications))
	}

	if len(record.Projects) > 0 {
		blocks = append(blocks, projects(record.Projects))
	}

	text = strings.Join(blocks, "\n\n")

	return text
}

func header(contact resume.ContactInfo) (block string) {
	details := []string{}
	for _, d := range []string{contact.Email, contact.Phone, contact.Location} {
		if d != "" {
			details = append(details, d)
		}
	}

	block = strings.ToUpper(contact.Name) + "\n" + strings.Join(details, " | ")
	return block
}

func summary(original, suggested string) (block string) {
	text := suggested
	if text == "" {
		text = original
	}
	block = HeadingSummary + "\n" + text
	return block
}

func skillsBlock(all []string, section improve.SkillsSection) (block string) {
	var b strings.Builder
	b.WriteString(HeadingSkills + "\n")

	if len(section.Categories) == 0 {
		b.WriteString(strings.Join(all, ", "))
		block = b.String()
		return block
	}

	for _, category := range section.Categories {
		if len(category.Skills) == 0 {
			continue
		}
		b.WriteString("\n" + category.Name + ":\n")
		b.WriteString(strings.Join(category.Skills, ", ") + "\n")
	}

	block = b.String()
	return block
}

func experience(entries []resume.ExperienceEntry, improvements improve.Improvements) (block string) {
	var b strings.Builder
	b.WriteString(HeadingExperience + "\n")

	for _, exp := range entries {
		b.WriteString("\n" + exp.Header + "\n")
		for _, line := range exp.Bullets {
			if improved, ok := improvements.Rewrite(line); ok {
				line = improved
			}
			b.WriteString(bullet + line + "\n")
		}
	}

	block = b.String()
	return block
}

func education(entries []string) (block string) {
	var b strings.Builder
	b.WriteString(HeadingEducation + "\n")
	for _, e := range entries {
		b.WriteString(e + "\n")
	}
	block = b.String()
	return block
}

func certifications(certs []string) (block string) {
	var b strings.Builder
	b.WriteString(HeadingCertifications + "\n")
	for _, c := range certs {
		b.WriteString(bullet + c + "\n")
	}
	block = b.String()
	return block
}

func projects(entries []resume.ProjectEntry) (block string) {
	var b strings.Builder
	b.WriteString(HeadingProjects + "\n")
	for _, p := range entries {
		b.WriteString("\n" + p.Title + "\n")
		for _, d := range p.Description {
			b.WriteString(bullet + d + "\n")
		}
	}
	block = b.String()
	return block
}
