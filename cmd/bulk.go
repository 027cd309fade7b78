package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nikogura/ats-scorer/pkg/analysis"
	"github.com/nikogura/ats-scorer/pkg/logger"
	"github.com/nikogura/ats-scorer/pkg/renderer"
)

//nolint:gochecknoglobals // Cobra boilerplate
var bulkJD string

//nolint:gochecknoglobals // Cobra boilerplate
var bulkJSONPath string

//nolint:gochecknoglobals // Cobra boilerplate
var bulkWorkers int

//nolint:gochecknoglobals // Cobra boilerplate
var bulkCmd = &cobra.Command{
	Use:   "bulk <resume-file>...",
	Short: "Rank many resumes against one job description",
	Long: `Analyze every resume against the same job description and print them
ranked by ATS score, highest first. Files that cannot be read are listed
separately and do not stop the run.

Example:
  ats-scorer bulk --jd jd.txt resumes/*.pdf
  ats-scorer bulk --jd https://example.com/jobs/123 --json ranking.json a.docx b.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBulk,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(bulkCmd)
	bulkCmd.Flags().StringVar(&bulkJD, "jd", "", "Job description file, URL or text")
	bulkCmd.Flags().StringVar(&bulkJSONPath, "json", "", "Write the ranking as JSON to this file")
	bulkCmd.Flags().IntVar(&bulkWorkers, "workers", 0, "Parallel analyses (default from config)")
	_ = bulkCmd.MarkFlagRequired("jd")
}

func runBulk(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
	defer cancel()

	cfg, engine, err := setup()
	if err != nil {
		return err
	}
	ctx = logger.WithContext(ctx)

	var jdText string
	jdText, err = resolveJD(ctx, cmd.OutOrStdout(), bulkJD)
	if err != nil {
		return err
	}

	workers := cfg.Workers
	if bulkWorkers > 0 {
		workers = bulkWorkers
	}

	stop := startSpinner(cmd.OutOrStdout(), fmt.Sprintf("Analyzing %d resumes...", len(args)))
	var result analysis.BulkResult
	result, err = engine.BulkFiles(cmd.Context(), jdText, args, workers)
	stop()

	if err != nil {
		err = errors.Wrap(err, "bulk analysis failed")
		return err
	}

	err = renderer.WriteRanking(cmd.OutOrStdout(), result)
	if err != nil {
		return err
	}

	if bulkJSONPath != "" {
		path := renderer.OutputPath(cfg.OutputDir, bulkJSONPath)
		err = renderer.WriteJSON(result, path)
		if err != nil {
			logger.Error().Err(err).Str("bulk", result.ID).Str("path", path).Msg("ranking JSON not written")
			return err
		}
		fmt.Printf("\n✓ Ranking saved to: %s\n", path)
	}

	if len(result.Candidates) == 0 {
		err = errors.New("no resume could be analyzed")
		return err
	}

	return err
}
