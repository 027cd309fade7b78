package renderer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/nikogura/ats-scorer/pkg/analysis"
)

// OutputPath places a bare file name under dir. Names that already carry a
// directory are returned unchanged.
func OutputPath(dir, name string) (path string) {
	if dir == "" || filepath.IsAbs(name) || filepath.Dir(name) != "." {
		path = name
		return path
	}
	path = filepath.Join(dir, name)
	return path
}

// WriteText writes content to outputPath, creating parent directories.
func WriteText(content, outputPath string) (err error) {
	// Ensure output directory exists
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write file: %s", outputPath)
		return err
	}

	return err
}

// WriteJSON writes v as indented JSON to outputPath.
func WriteJSON(v any, outputPath string) (err error) {
	var data []byte
	data, err = json.MarshalIndent(v, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal JSON")
		return err
	}

	err = WriteText(string(data)+"\n", outputPath)
	return err
}

// WriteRanking prints the bulk ranking as an aligned table followed by any
// files that could not be analyzed.
func WriteRanking(w io.Writer, result analysis.BulkResult) (err error) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, err = fmt.Fprintln(tw, "RANK\tSCORE\tVERDICT\tCANDIDATE\tFILE\tMISSING")
	if err != nil {
		err = errors.Wrap(err, "failed to write ranking header")
		return err
	}

	for _, c := range result.Candidates {
		missing := strings.Join(c.MissingSkills, ", ")
		if missing == "" {
			missing = "-"
		}
		_, err = fmt.Fprintf(tw, "%d\t%.2f\t%s\t%s\t%s\t%s\n", c.Rank, c.TotalScore, c.Verdict, c.Contact.Name, filepath.Base(c.Name), missing)
		if err != nil {
			err = errors.Wrap(err, "failed to write ranking row")
			return err
		}
	}

	err = tw.Flush()
	if err != nil {
		err = errors.Wrap(err, "failed to flush ranking")
		return err
	}

	if len(result.Failures) == 0 {
		return err
	}

	_, err = fmt.Fprintf(w, "\nSkipped %d file(s):\n", len(result.Failures))
	if err != nil {
		err = errors.Wrap(err, "failed to write failures")
		return err
	}

	for _, f := range result.Failures {
		_, err = fmt.Fprintf(w, "  %s: %s\n", f.Name, f.Error)
		if err != nil {
			err = errors.Wrap(err, "failed to write failures")
			return err
		}
	}

	return err
}
