package annotate

import (
	"github.com/arthur-debert/schanno/pkg/commands/internal"
	"github.com/arthur-debert/schanno/pkg/logging"
	"github.com/arthur-debert/schanno/pkg/report"
	"github.com/arthur-debert/schanno/pkg/schematic"
)

// Options defines the options for the Annotate command
type Options struct {
	internal.Source
	Strategy    schematic.AnnotateStrategy
	Destination internal.Destination
}

// Annotate renumbers every component and writes the result
func Annotate(opts Options) (*report.ChangeReport, error) {
	log := logging.GetLogger("commands")
	log.Debug().
		Str("command", "Annotate").
		Str("path", opts.Path).
		Str("strategy", string(opts.Strategy)).
		Msg("Executing command")

	doc, err := internal.Load(opts.Source)
	if err != nil {
		return nil, err
	}

	if err := doc.Annotate(opts.Strategy); err != nil {
		return nil, err
	}

	problems, err := doc.Problems()
	if err != nil {
		return nil, err
	}

	written, err := internal.Save(opts.Filesystem(), doc, opts.Destination)
	if err != nil {
		return nil, err
	}

	result := &report.ChangeReport{
		File:      doc.SuggestedFilename(),
		Action:    "annotate",
		Strategy:  string(opts.Strategy),
		Output:    written.Path,
		Backup:    written.Backup,
		DryRun:    opts.Destination.DryRun,
		Changes:   doc.Changes(),
		Remaining: len(problems),
	}

	log.Info().Str("command", "Annotate").Int("changes", len(result.Changes)).Msg("Command finished")
	return result, nil
}
