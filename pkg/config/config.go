package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/nikogura/ats-scorer/pkg/lexicon"
	"github.com/nikogura/ats-scorer/pkg/logger"
	"github.com/nikogura/ats-scorer/pkg/scorer"
)

// Environment overrides.
const (
	EnvSkillsData = "ATS_SKILLS_DATA"
	EnvLogLevel   = "ATS_LOG_LEVEL"
	EnvOutputDir  = "ATS_OUTPUT_DIR"
)

const (
	configDirName    = ".ats-scorer"
	configFileName   = "config.json"
	defaultOutputDir = "./ats-reports"
	defaultWorkers   = 4
)

// ErrInvalidConfig marks a configuration that loaded but cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration.
type Config struct {
	SkillsDataPath string        `json:"skills_data_path,omitempty"`
	OutputDir      string        `json:"output_dir"`
	Workers        int           `json:"workers"`
	Logging        logger.Config `json:"logging"`
	Scoring        scorer.Policy `json:"scoring"`
}

// Default returns the built-in configuration.
func Default() (cfg Config) {
	cfg = Config{
		OutputDir: defaultOutputDir,
		Workers:   defaultWorkers,
		Logging: logger.Config{
			Level:  "info",
			Format: logger.FormatPretty,
		},
		Scoring: scorer.DefaultPolicy(),
	}
	return cfg
}

// DefaultPath returns $HOME/.ats-scorer/config.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, configDirName, configFileName)
	return path, err
}

// Load reads configuration from file with environment variable overrides.
// With no path, the default location is tried and built-in defaults are used
// when nothing is there. A named file that does not exist is an error.
// Fields missing from the file keep their defaults.
func Load(configPath string) (cfg Config, err error) {
	cfg = Default()

	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && configPath == "":
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'ats-scorer init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	cfg.applyEnv()

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvSkillsData); v != "" {
		c.SkillsDataPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() (err error) {
	if c.Workers < 1 {
		err = errors.Wrapf(ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
		return err
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", logger.FormatJSON, logger.FormatPretty:
	default:
		err = errors.Wrapf(ErrInvalidConfig, "logging.format must be %q or %q, got %q", logger.FormatJSON, logger.FormatPretty, c.Logging.Format)
		return err
	}

	if c.SkillsDataPath != "" {
		_, err = os.Stat(c.SkillsDataPath)
		if os.IsNotExist(err) {
			err = errors.Wrapf(ErrInvalidConfig, "skills data file not found: %s", c.SkillsDataPath)
			return err
		}
		err = nil
	}

	if policyErr := c.Scoring.Validate(); policyErr != nil {
		err = errors.Wrapf(ErrInvalidConfig, "scoring: %s", policyErr)
		return err
	}

	if c.OutputDir == "" {
		c.OutputDir = defaultOutputDir
	}

	return err
}

// Lexicon builds the vocabulary, merging the configured skills data file if any.
func (c *Config) Lexicon() (lex *lexicon.Lexicon, err error) {
	if c.SkillsDataPath == "" {
		lex = lexicon.Default()
		return lex, err
	}

	lex, err = lexicon.Load(c.SkillsDataPath)
	if err != nil {
		err = errors.Wrapf(err, "failed to load skills data: %s", c.SkillsDataPath)
		return lex, err
	}

	return lex, err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	var data []byte
	data, err = json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
