// Package toml renders report views as TOML documents
package toml

import (
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/schanno/pkg/errors"
	"github.com/arthur-debert/schanno/pkg/report"
)

// Renderer writes report views as TOML. TOML documents are tables, so
// every result must be a struct or a pointer to one.
type Renderer struct {
	output io.Writer
}

// New creates a new TOML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

func (r *Renderer) encode(v interface{}) error {
	encoder := toml.NewEncoder(r.output)
	encoder.SetIndentTables(true)
	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to encode toml")
	}
	return nil
}

// RenderResult renders any result type as TOML
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

// RenderError renders an error as TOML
func (r *Renderer) RenderError(err error) error {
	return r.encode(struct {
		Error string `toml:"error"`
		Code  string `toml:"code"`
	}{Error: err.Error(), Code: string(errors.GetErrorCode(err))})
}

// RenderMessage renders a simple message as TOML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(report.Message{Text: msg})
}
