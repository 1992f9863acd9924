package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ghettovoice/gouri/internal/syncutil"
	"github.com/ghettovoice/gouri/uri"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file|-]",
	Short: "Inspect URI references read one per line",
	Long: `Batch reads URI references one per line from a file or stdin,
inspects them in parallel and prints the reports in input order.
Blank lines and lines starting with "#" are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntP("jobs", "j", 0, "number of parallel workers, GOMAXPROCS when 0")
	batchCmd.Flags().String("base", "", "resolve every reference against this base URI first")
}

func runBatch(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	baseText, err := cmd.Flags().GetString("base")
	if err != nil {
		return err
	}
	var base *uri.URI
	if baseText != "" {
		if base, err = uri.Parse(baseText); err != nil {
			return fmt.Errorf("base: %w", err)
		}
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	lines, err := readLines(in)
	if err != nil {
		return err
	}
	reports, err := inspectAll(cmd.Context(), lines, base, jobs)
	if err != nil {
		return err
	}

	out, err := newOutput(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	for _, rep := range reports {
		if err := out.write(rep); err != nil {
			return err
		}
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return lines, nil
}

// inspectAll builds a report per line with at most jobs workers.
// Reports keep the order of lines, repeated lines share one report.
func inspectAll(ctx context.Context, lines []string, base *uri.URI, jobs int) ([]*report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	reports := make([]*report, len(lines))
	if len(lines) == 0 {
		return reports, nil
	}

	seen := syncutil.NewShardMap[*report](0)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(lines)))

	for i, line := range lines {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return errtrace.Wrap(gctx.Err())
			default:
			}

			rep, cached := seen.GetOrCompute(line, func() *report { return inspectLine(line, base) })
			if cached {
				logger.Debug("duplicate reference", slog.String("reference", line))
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return reports, nil
}

// inspectLine reports on line, resolved against base when base is not nil.
// A reference that fails to resolve gets a report with the error.
func inspectLine(line string, base *uri.URI) *report {
	if base == nil {
		return newReport(uri.NewView(line), logger)
	}
	target, err := base.ResolveString(line)
	if err != nil {
		logger.Warn("failed to resolve reference", slog.String("reference", line), slog.Any("error", err))
		return &report{Input: line, Error: err.Error()}
	}
	return newReport(target, logger)
}
