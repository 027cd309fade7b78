package resume

// ContactInfo holds the candidate's identifying details.
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// ExperienceEntry is one role: a header line carrying a year, followed by its bullets.
type ExperienceEntry struct {
	Header  string   `json:"header"`
	Bullets []string `json:"bullets"`
}

// ProjectEntry is a project title with its bulleted description.
type ProjectEntry struct {
	Title       string   `json:"title"`
	Description []string `json:"description"`
}

// Record is the structured form of a résumé.
type Record struct {
	Contact          ContactInfo       `json:"contact_info"`
	Summary          string            `json:"summary"`
	Skills           []string          `json:"skills"` // Sorted
	Experience       []ExperienceEntry `json:"experience"`
	Education        []string          `json:"education"`
	Certifications   []string          `json:"certifications"`
	Projects         []ProjectEntry    `json:"projects"`
	Keywords         []string          `json:"keywords"` // Ordered by first appearance
	FormattingIssues []string          `json:"formatting_issues"`
}

// ExperienceText joins every experience header and bullet into one block.
func (r Record) ExperienceText() (text string) {
	for _, exp := range r.Experience {
		text += exp.Header + " "
		for _, b := range exp.Bullets {
			text += b + " "
		}
	}
	return text
}
