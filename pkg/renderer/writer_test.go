package renderer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nikogura/ats-scorer/pkg/analysis"
	"github.com/nikogura/ats-scorer/pkg/resume"
)

func TestWriteText(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "report.txt")
	testContent := "ATS REPORT\n\nScore: 80"

	err := WriteText(testContent, testFile)
	if err != nil {
		t.Fatalf("Failed to write text: %v", err)
	}

	// Verify content.
	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}

	if string(data) != testContent {
		t.Errorf("Expected content '%s', got '%s'", testContent, string(data))
	}
}

func TestWriteTextCreatesDir(t *testing.T) {
	tmpDir := t.TempDir()
	nestedPath := filepath.Join(tmpDir, "nested", "dir", "report.txt")

	err := WriteText("test", nestedPath)
	if err != nil {
		t.Fatalf("Failed to write text: %v", err)
	}

	// Verify file exists.
	_, err = os.Stat(nestedPath)
	if os.IsNotExist(err) {
		t.Error("File was not created in nested directory")
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bulk.json")

	err := WriteJSON(analysis.Failure{Name: "a.rtf", Error: "unsupported"}, path)
	if err != nil {
		t.Fatalf("Failed to write JSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}

	var got analysis.Failure
	err = json.Unmarshal(data, &got)
	if err != nil {
		t.Fatalf("Written file is not JSON: %v", err)
	}

	if got.Name != "a.rtf" {
		t.Errorf("Expected name a.rtf, got %s", got.Name)
	}
}

func TestWriteJSONUnmarshalable(t *testing.T) {
	err := WriteJSON(make(chan int), filepath.Join(t.TempDir(), "x.json"))
	if err == nil {
		t.Error("Expected error marshaling a channel, got nil")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		file string
		want string
	}{
		{name: "bare name", dir: "out", file: "report.txt", want: filepath.Join("out", "report.txt")},
		{name: "relative with dir", dir: "out", file: "reports/report.txt", want: "reports/report.txt"},
		{name: "absolute", dir: "out", file: "/tmp/report.txt", want: "/tmp/report.txt"},
		{name: "no dir", dir: "", file: "report.txt", want: "report.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.dir, tt.file); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestWriteRanking(t *testing.T) {
	result := analysis.BulkResult{
		Candidates: []analysis.Candidate{
			{Rank: 1, Name: "/cv/jane.txt", TotalScore: 88.5, Verdict: "Perfect Match", Contact: resume.ContactInfo{Name: "Jane Roe"}},
			{Rank: 2, Name: "/cv/john.pdf", TotalScore: 41, Verdict: "Not Visible to Recruiter", Contact: resume.ContactInfo{Name: "John Doe"}, MissingSkills: []string{"go", "kafka"}},
		},
		Failures: []analysis.Failure{{Name: "/cv/x.rtf", Error: "unsupported file format"}},
	}

	var buf bytes.Buffer
	err := WriteRanking(&buf, result)
	if err != nil {
		t.Fatalf("Failed to write ranking: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if !strings.HasPrefix(lines[0], "RANK") {
		t.Errorf("Expected header row, got %q", lines[0])
	}

	if !strings.Contains(lines[1], "88.50") || !strings.Contains(lines[1], "jane.txt") || !strings.HasSuffix(lines[1], "-") {
		t.Errorf("Unexpected first row %q", lines[1])
	}

	if !strings.HasSuffix(lines[2], "go, kafka") {
		t.Errorf("Unexpected second row %q", lines[2])
	}

	if !strings.Contains(buf.String(), "Skipped 1 file(s):\n  /cv/x.rtf: unsupported file format\n") {
		t.Errorf("Failures not listed: %s", buf.String())
	}
}
