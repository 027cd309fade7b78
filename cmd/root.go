package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nikogura/ats-scorer/pkg/analysis"
	"github.com/nikogura/ats-scorer/pkg/config"
	"github.com/nikogura/ats-scorer/pkg/logger"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "ats-scorer",
	Short: "Score resumes against job descriptions the way an ATS would",
	Long: `ats-scorer parses a resume and a job description, computes a weighted
ATS compatibility score, lists the gaps between them and writes an optimized
resume together with a plain-text report.

All matching is deterministic keyword and pattern matching.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.ats-scorer/config.json)")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

// setup loads configuration, initializes logging and builds the engine.
// A .env file in the working directory may supply the ATS_* overrides.
func setup() (cfg config.Config, engine *analysis.Engine, err error) {
	_ = godotenv.Load()

	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, engine, err
	}

	logCfg := cfg.Logging
	if getVerbose() {
		logCfg.Level = "debug"
	}
	logger.Init(logCfg)

	lex, err := cfg.Lexicon()
	if err != nil {
		return cfg, engine, err
	}

	logger.Debug().
		Int("skills", lex.SkillCount()).
		Int("categories", len(lex.Categories())).
		Str("skills_data", cfg.SkillsDataPath).
		Msg("lexicon ready")

	engine, err = analysis.NewEngine(lex, cfg.Scoring, logger.Logger)
	if err != nil {
		err = errors.Wrap(err, "failed to build engine")
		return cfg, engine, err
	}

	return cfg, engine, err
}
