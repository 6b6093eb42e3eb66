package export

import (
	"github.com/arthur-debert/schanno/pkg/commands/internal"
	"github.com/arthur-debert/schanno/pkg/logging"
	"github.com/arthur-debert/schanno/pkg/report"
)

// Options defines the options for the Export command
type Options struct {
	internal.Source
	// Components exports the component table instead of the BOM
	Components bool
	// Distinct applies to the component table
	Distinct bool
}

// Export builds the view to serialize: a bill of materials by default, or
// the sorted component table
func Export(opts Options) (interface{}, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Export").Str("path", opts.Path).Bool("components", opts.Components).Msg("Executing command")

	doc, err := internal.Load(opts.Source)
	if err != nil {
		return nil, err
	}

	if opts.Components {
		listing := report.NewListing(doc, opts.Distinct, true)
		log.Info().Str("command", "Export").Int("components", len(listing.Components)).Msg("Command finished")
		return listing, nil
	}

	bom := report.NewBOM(doc)
	log.Info().Str("command", "Export").Int("lines", len(bom.Lines)).Msg("Command finished")
	return bom, nil
}
