package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	testConfig := Default()
	testConfig.OutputDir = "./test-output"
	testConfig.Workers = 8
	testConfig.Scoring.Gates.PerfectMatch = 90

	data, err := json.MarshalIndent(testConfig, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal test config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	// Test loading the config.
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Workers != 8 {
		t.Errorf("Expected 8 workers, got %d", cfg.Workers)
	}

	if cfg.Scoring.Gates.PerfectMatch != 90 {
		t.Errorf("Expected perfect match gate 90, got %v", cfg.Scoring.Gates.PerfectMatch)
	}

	if cfg.OutputDir != "./test-output" {
		t.Errorf("Expected output dir ./test-output, got %s", cfg.OutputDir)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	err := os.WriteFile(configPath, []byte(`{"workers": 2}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Workers != 2 {
		t.Errorf("Expected 2 workers, got %d", cfg.Workers)
	}

	if cfg.Scoring != Default().Scoring {
		t.Errorf("Expected default scoring policy, got %+v", cfg.Scoring)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	skillsPath := filepath.Join(tmpDir, "skills.yaml")

	err := os.WriteFile(configPath, []byte(`{}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	err = os.WriteFile(skillsPath, []byte("fintech:\n  - ledger design\n"), 0600)
	if err != nil {
		t.Fatalf("Failed to write skills data: %v", err)
	}

	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvOutputDir, "/tmp/reports")
	t.Setenv(EnvSkillsData, skillsPath)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.Logging.Level)
	}

	if cfg.OutputDir != "/tmp/reports" {
		t.Errorf("Expected output dir /tmp/reports, got %s", cfg.OutputDir)
	}

	lex, err := cfg.Lexicon()
	if err != nil {
		t.Fatalf("Failed to build lexicon: %v", err)
	}

	if len(lex.Skills("fintech")) != 1 {
		t.Errorf("Expected merged fintech category, got %v", lex.Skills("fintech"))
	}
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/path/config.json")
	if err == nil {
		t.Error("Expected error loading nonexistent config, got nil")
	}
}

func TestLoadMalformed(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	err := os.WriteFile(configPath, []byte(`{"workers": `), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err = Load(configPath)
	if err == nil {
		t.Error("Expected error loading malformed config, got nil")
	}
}

func TestValidate(t *testing.T) {
	badWeights := Default()
	badWeights.Scoring.Weights.Domain = 0.5

	badGates := Default()
	badGates.Scoring.Gates.PotentialMatch = 95

	noWorkers := Default()
	noWorkers.Workers = 0

	badFormat := Default()
	badFormat.Logging.Format = "xml"

	missingSkills := Default()
	missingSkills.SkillsDataPath = "/nonexistent/skills.yaml"

	tests := []struct {
		name      string
		config    Config
		wantError bool
	}{
		{name: "valid config", config: Default(), wantError: false},
		{name: "weights do not sum to one", config: badWeights, wantError: true},
		{name: "gates out of order", config: badGates, wantError: true},
		{name: "no workers", config: noWorkers, wantError: true},
		{name: "unknown log format", config: badFormat, wantError: true},
		{name: "nonexistent skills file", config: missingSkills, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if tt.wantError && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestValidateDefaultsOutputDir(t *testing.T) {
	cfg := Default()
	cfg.OutputDir = ""

	err := cfg.Validate()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.OutputDir == "" {
		t.Error("Default output dir was not set")
	}
}

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	// The written file must load and validate as is.
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load initialized config: %v", err)
	}

	if cfg.Workers != defaultWorkers {
		t.Errorf("Expected %d workers, got %d", defaultWorkers, cfg.Workers)
	}

	if cfg.Scoring != Default().Scoring {
		t.Error("Initialized config does not carry the default scoring policy")
	}
}

func TestInitConfigAlreadyExists(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	// Create file first.
	err := os.WriteFile(configPath, []byte("{}"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	// Try to init - should fail.
	err = InitConfig(configPath)
	if err == nil {
		t.Error("Expected error when config already exists, got nil")
	}
}
