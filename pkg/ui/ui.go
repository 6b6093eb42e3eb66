// Package ui provides a unified interface for rendering report views in
// different formats: terminal (rich), text (plain), and the structured
// JSON, YAML, TOML and XML encodings.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/schanno/pkg/errors"
	"github.com/arthur-debert/schanno/pkg/ui/json"
	"github.com/arthur-debert/schanno/pkg/ui/terminal"
	"github.com/arthur-debert/schanno/pkg/ui/text"
	"github.com/arthur-debert/schanno/pkg/ui/toml"
	"github.com/arthur-debert/schanno/pkg/ui/xml"
	"github.com/arthur-debert/schanno/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a report view (listing, check report, change
	// report, BOM or message)
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format. Auto
// picks terminal output for color terminals and plain text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	case FormatTOML:
		return toml.New(output)
	case FormatXML:
		return xml.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
