package cmd

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Jane Doe - CV (2024).pdf", want: "jane-doe-cv-2024"},
		{input: "/tmp/uploads/John_Smith_Resume.docx", want: "john-smith"},
		{input: "resume.txt", want: "resume"},
		{input: "???.pdf", want: "resume"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultOutputNames(t *testing.T) {
	report, optimized := defaultOutputNames("cv/jane.pdf")
	if report != "jane-ats-report.txt" {
		t.Errorf("Expected jane-ats-report.txt, got %s", report)
	}
	if optimized != "jane-optimized-resume.txt" {
		t.Errorf("Expected jane-optimized-resume.txt, got %s", optimized)
	}
}

func TestPassStatus(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{score: 80, want: "✓ EXCELLENT - High chance of passing ATS"},
		{score: 79.99, want: "⚠ GOOD - Moderate chance, improvements recommended"},
		{score: 60, want: "⚠ GOOD - Moderate chance, improvements recommended"},
		{score: 12, want: "✗ NEEDS IMPROVEMENT - Low chance, optimization required"},
	}

	for _, tt := range tests {
		if got := passStatus(tt.score); got != tt.want {
			t.Errorf("passStatus(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
