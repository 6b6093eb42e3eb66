package check

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/schanno/pkg/commands/internal"
	"github.com/arthur-debert/schanno/pkg/filesystem"
	"github.com/arthur-debert/schanno/pkg/logging"
	"github.com/arthur-debert/schanno/pkg/report"
)

// Options defines the options for the Check command
type Options struct {
	FS    filesystem.FS
	Paths []string
	// Jobs caps parallel parsing, 0 means one per CPU
	Jobs int
}

// Check analyzes each file independently. A file that cannot be read or
// parsed is reported in its entry and does not stop the others; only
// cancellation of ctx fails the whole run.
func Check(ctx context.Context, opts Options) (*report.CheckReport, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Check").Strs("paths", opts.Paths).Int("jobs", opts.Jobs).Msg("Executing command")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]report.FileProblems, len(opts.Paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(opts.Paths))))

	for i, path := range opts.Paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(opts.FS, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &report.CheckReport{Files: results}
	log.Info().
		Str("command", "Check").
		Int("files", len(results)).
		Int("problems", rep.ProblemCount()).
		Int("failed", rep.FailedCount()).
		Msg("Command finished")
	return rep, nil
}

func checkFile(fsys filesystem.FS, path string) report.FileProblems {
	doc, err := internal.Load(internal.Source{FS: fsys, Path: path})
	if err != nil {
		log := logging.GetLogger("commands")
		log.Warn().Err(err).Str("path", path).Msg("Could not check file")
		return report.FileProblems{File: path, Error: err.Error()}
	}

	fp, err := report.NewFileProblems(path, doc)
	if err != nil {
		return report.FileProblems{File: path, Error: err.Error()}
	}
	return fp
}
