package list

import (
	"github.com/arthur-debert/schanno/pkg/commands/internal"
	"github.com/arthur-debert/schanno/pkg/logging"
	"github.com/arthur-debert/schanno/pkg/report"
)

// Options defines the options for the List command
type Options struct {
	internal.Source
	// Distinct keeps one row per reference
	Distinct bool
	// Sorted orders rows by symbol, designator and value
	Sorted bool
}

// List returns the component table of a schematic
func List(opts Options) (*report.Listing, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "List").Str("path", opts.Path).Msg("Executing command")

	doc, err := internal.Load(opts.Source)
	if err != nil {
		return nil, err
	}

	listing := report.NewListing(doc, opts.Distinct, opts.Sorted)

	log.Info().Str("command", "List").Int("components", len(listing.Components)).Msg("Command finished")
	return listing, nil
}
