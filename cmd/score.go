package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nikogura/ats-scorer/pkg/analysis"
	"github.com/nikogura/ats-scorer/pkg/document"
	"github.com/nikogura/ats-scorer/pkg/jd"
	"github.com/nikogura/ats-scorer/pkg/logger"
	"github.com/nikogura/ats-scorer/pkg/renderer"
)

const (
	excellentScore = 80
	goodScore      = 60
	fetchTimeout   = 30 * time.Second
)

//nolint:gochecknoglobals // Cobra boilerplate
var resumePath string

//nolint:gochecknoglobals // Cobra boilerplate
var jdInput string

//nolint:gochecknoglobals // Cobra boilerplate
var reportPath string

//nolint:gochecknoglobals // Cobra boilerplate
var optimizedPath string

//nolint:gochecknoglobals // Cobra boilerplate
var analysisJSONPath string

//nolint:gochecknoglobals // Cobra boilerplate
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one resume against a job description",
	Long: `Score a resume against a job description and write a report plus an
ATS-optimized version of the resume.

The job description can be provided as:
- A file path (txt, pdf or docx)
- A URL (e.g., https://example.com/jobs/123)
- The job description text itself

Example:
  ats-scorer score --resume resume.pdf --jd jd.txt
  ats-scorer score --resume resume.docx --jd https://example.com/jobs/123 --output report.txt
  ats-scorer score --resume resume.txt --jd "Required: Go, Kubernetes. 5+ years experience."`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVar(&resumePath, "resume", "", "Resume file (pdf, docx or txt)")
	scoreCmd.Flags().StringVar(&jdInput, "jd", "", "Job description file, URL or text")
	scoreCmd.Flags().StringVar(&reportPath, "output", "", "Report file (default <resume>-ats-report.txt in the output dir)")
	scoreCmd.Flags().StringVar(&optimizedPath, "optimized-resume", "", "Optimized resume file (default <resume>-optimized-resume.txt in the output dir)")
	scoreCmd.Flags().StringVar(&analysisJSONPath, "json", "", "Also write the full analysis as JSON to this file")
	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("jd")
}

func runScore(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
	defer cancel()

	cfg, engine, err := setup()
	if err != nil {
		return err
	}
	ctx = logger.WithContext(ctx)

	var resumeText string
	resumeText, err = document.ParseFile(resumePath)
	if err != nil {
		err = errors.Wrap(err, "failed to parse resume")
		return err
	}

	if getVerbose() {
		fmt.Printf("✓ Resume parsed (%d characters)\n", len(resumeText))
	}

	var jdText string
	jdText, err = resolveJD(ctx, cmd.OutOrStdout(), jdInput)
	if err != nil {
		return err
	}

	var result analysis.Analysis
	result, err = engine.Analyze(resumeText, jdText)
	if err != nil {
		err = errors.Wrap(err, "analysis failed")
		return err
	}

	reportName, optimizedName := defaultOutputNames(resumePath)
	if reportPath != "" {
		reportName = reportPath
	}
	if optimizedPath != "" {
		optimizedName = optimizedPath
	}
	reportFile := renderer.OutputPath(cfg.OutputDir, reportName)
	optimizedFile := renderer.OutputPath(cfg.OutputDir, optimizedName)

	err = renderer.WriteText(engine.Report(result), reportFile)
	if err != nil {
		logger.Error().Err(err).Str("analysis", result.ID).Str("path", reportFile).Msg("report not written")
		return err
	}

	err = renderer.WriteText(result.OptimizedResume, optimizedFile)
	if err != nil {
		logger.Error().Err(err).Str("analysis", result.ID).Str("path", optimizedFile).Msg("optimized resume not written")
		return err
	}

	if analysisJSONPath != "" {
		err = renderer.WriteJSON(result, analysisJSONPath)
		if err != nil {
			logger.Error().Err(err).Str("analysis", result.ID).Str("path", analysisJSONPath).Msg("analysis JSON not written")
			return err
		}
	}

	printScoreSummary(result)
	fmt.Printf("\n✓ Report saved to: %s\n", reportFile)
	fmt.Printf("✓ Optimized resume saved to: %s\n", optimizedFile)
	if analysisJSONPath != "" {
		fmt.Printf("✓ Analysis JSON saved to: %s\n", analysisJSONPath)
	}

	return err
}

// resolveJD turns the --jd argument into job-description text, showing
// progress on w.
func resolveJD(ctx context.Context, w io.Writer, input string) (text string, err error) {
	stop := startSpinner(w, "Resolving job description...")
	text, err = jd.ResolveWithContext(ctx, input)
	stop()

	if err != nil {
		err = errors.Wrap(err, "failed to resolve job description")
		return text, err
	}

	if getVerbose() {
		fmt.Printf("✓ Job description resolved (%d characters)\n", len(text))
	}

	return text, err
}

func printScoreSummary(result analysis.Analysis) {
	banner := strings.Repeat("=", 80)

	fmt.Println(banner)
	fmt.Printf("ATS COMPATIBILITY SCORE: %.2f/100\n", result.Score.TotalScore)
	fmt.Println(banner)

	if getVerbose() {
		for _, c := range result.Score.Breakdown {
			fmt.Printf("  %s: %.2f/100 (Weight: %s)\n", c.Name, c.Score, c.WeightLabel)
		}
	}

	fmt.Printf("Status: %s\n", passStatus(result.Score.TotalScore))
	fmt.Printf("Verdict: %s (%s risk)\n", result.Suitability.Verdict, result.Suitability.RiskLevel)
	fmt.Printf("Recommendation: %s\n", result.Suitability.Recommendation)

	if missing := result.Gaps.Critical.MissingMandatorySkills; len(missing) > 0 {
		fmt.Printf("Missing mandatory skills: %s\n", strings.Join(missing, ", "))
	}
}

// passStatus describes how likely a score is to pass an ATS screen.
func passStatus(total float64) (status string) {
	switch {
	case total >= excellentScore:
		status = "✓ EXCELLENT - High chance of passing ATS"
	case total >= goodScore:
		status = "⚠ GOOD - Moderate chance, improvements recommended"
	default:
		status = "✗ NEEDS IMPROVEMENT - Low chance, optimization required"
	}
	return status
}
