// Package commands provides high-level command implementations for schanno.
//
// This package is the orchestration layer between the CLI and the
// schematic engine. Each command lives in its own subdirectory:
//   - list/     - List command
//   - check/    - Check command
//   - fix/      - Fix command
//   - annotate/ - Annotate command
//   - export/   - Export command
//   - internal/ - Shared load and save logic
//
// This file re-exports the command functions so callers need one import.
package commands

import (
	"context"

	"github.com/arthur-debert/schanno/pkg/commands/annotate"
	"github.com/arthur-debert/schanno/pkg/commands/check"
	"github.com/arthur-debert/schanno/pkg/commands/export"
	"github.com/arthur-debert/schanno/pkg/commands/fix"
	"github.com/arthur-debert/schanno/pkg/commands/internal"
	"github.com/arthur-debert/schanno/pkg/commands/list"
	"github.com/arthur-debert/schanno/pkg/report"
)

// StdinPath selects standard input as source or standard output as destination
const StdinPath = internal.StdinPath

// Source says where a schematic comes from
type Source = internal.Source

// Destination says where a regenerated schematic goes
type Destination = internal.Destination

// List returns the component table of a schematic.
type ListOptions = list.Options

func List(opts ListOptions) (*report.Listing, error) {
	return list.List(opts)
}

// Check reports duplicate designators in several files.
type CheckOptions = check.Options

func Check(ctx context.Context, opts CheckOptions) (*report.CheckReport, error) {
	return check.Check(ctx, opts)
}

// Fix resolves duplicate designators.
type FixOptions = fix.Options

func Fix(opts FixOptions) (*report.ChangeReport, error) {
	return fix.Fix(opts)
}

// Annotate renumbers every component.
type AnnotateOptions = annotate.Options

func Annotate(opts AnnotateOptions) (*report.ChangeReport, error) {
	return annotate.Annotate(opts)
}

// Export builds a bill of materials or component table for serialization.
type ExportOptions = export.Options

func Export(opts ExportOptions) (interface{}, error) {
	return export.Export(opts)
}
