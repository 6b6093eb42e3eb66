package fix

import (
	"github.com/arthur-debert/schanno/pkg/commands/internal"
	"github.com/arthur-debert/schanno/pkg/errors"
	"github.com/arthur-debert/schanno/pkg/logging"
	"github.com/arthur-debert/schanno/pkg/report"
	"github.com/arthur-debert/schanno/pkg/schematic"
)

// Options defines the options for the Fix command
type Options struct {
	internal.Source
	Strategy schematic.FixStrategy
	// Problem selects one problem by its 1-based number, 0 fixes all
	Problem     int
	Destination internal.Destination
}

// Fix resolves duplicate designators and writes the regenerated
// schematic to the destination
func Fix(opts Options) (*report.ChangeReport, error) {
	log := logging.GetLogger("commands")
	log.Debug().
		Str("command", "Fix").
		Str("path", opts.Path).
		Str("strategy", string(opts.Strategy)).
		Int("problem", opts.Problem).
		Msg("Executing command")

	doc, err := internal.Load(opts.Source)
	if err != nil {
		return nil, err
	}

	if opts.Problem == 0 {
		if err := doc.ResolveAll(opts.Strategy); err != nil {
			return nil, err
		}
	} else {
		problems, err := doc.Problems()
		if err != nil {
			return nil, err
		}
		if opts.Problem < 0 || opts.Problem > len(problems) {
			return nil, errors.Newf(errors.ErrProblemNotFound, "problem %d does not exist", opts.Problem).
				WithDetail("problems", len(problems))
		}
		if err := doc.Resolve(problems[opts.Problem-1], opts.Strategy); err != nil {
			return nil, err
		}
		doc.Analyze()
	}

	result, err := finish(doc, opts.Source, opts.Destination)
	if err != nil {
		return nil, err
	}
	result.Action = "fix"
	result.Strategy = string(opts.Strategy)

	log.Info().Str("command", "Fix").Int("changes", len(result.Changes)).Msg("Command finished")
	return result, nil
}

func finish(doc *schematic.Document, src internal.Source, dst internal.Destination) (*report.ChangeReport, error) {
	problems, err := doc.Problems()
	if err != nil {
		return nil, err
	}

	written, err := internal.Save(src.Filesystem(), doc, dst)
	if err != nil {
		return nil, err
	}

	return &report.ChangeReport{
		File:      doc.SuggestedFilename(),
		Output:    written.Path,
		Backup:    written.Backup,
		DryRun:    dst.DryRun,
		Changes:   doc.Changes(),
		Remaining: len(problems),
	}, nil
}
