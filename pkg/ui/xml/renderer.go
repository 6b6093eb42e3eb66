// Package xml renders report views as XML documents. The bill of
// materials layout is meant for spreadsheet and PLM imports.
package xml

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/arthur-debert/schanno/pkg/errors"
	"github.com/arthur-debert/schanno/pkg/report"
)

// Renderer writes one indented XML document per call
type Renderer struct {
	output io.Writer
}

// New creates a new XML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc
}

func (r *Renderer) write(doc *etree.Document) error {
	doc.Indent(2)
	if _, err := doc.WriteTo(r.output); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write xml")
	}
	return nil
}

// RenderResult renders a report view as XML
func (r *Renderer) RenderResult(result interface{}) error {
	doc := newDocument()
	switch v := result.(type) {
	case *report.BOM:
		bomElement(doc, v)
	case *report.Listing:
		listingElement(doc, v)
	case *report.CheckReport:
		checkElement(doc, v)
	case *report.ChangeReport:
		changeElement(doc, v)
	case report.Message:
		doc.CreateElement("message").SetText(v.Text)
	default:
		return errors.Newf(errors.ErrRender, "xml output does not support %T", result)
	}
	return r.write(doc)
}

// RenderError renders an error as XML
func (r *Renderer) RenderError(err error) error {
	doc := newDocument()
	el := doc.CreateElement("error")
	el.CreateAttr("code", string(errors.GetErrorCode(err)))
	el.SetText(err.Error())
	return r.write(doc)
}

// RenderMessage renders a simple message as XML
func (r *Renderer) RenderMessage(msg string) error {
	return r.RenderResult(report.Message{Text: msg})
}

func bomElement(doc *etree.Document, b *report.BOM) {
	root := doc.CreateElement("bom")
	root.CreateAttr("source", b.File)
	root.CreateAttr("parts", strconv.Itoa(b.Parts))
	for _, line := range b.Lines {
		el := root.CreateElement("line")
		el.CreateAttr("quantity", strconv.Itoa(line.Quantity))
		el.CreateElement("value").SetText(line.Value)
		el.CreateElement("symbol").SetText(line.Symbol)
		el.CreateElement("footprint").SetText(line.Footprint)
		refs := el.CreateElement("references")
		for _, ref := range line.References {
			refs.CreateElement("ref").SetText(ref)
		}
	}
}

func listingElement(doc *etree.Document, l *report.Listing) {
	root := doc.CreateElement("components")
	root.CreateAttr("source", l.File)
	root.CreateAttr("distinct", strconv.FormatBool(l.Distinct))
	for _, c := range l.Components {
		el := root.CreateElement("component")
		el.CreateAttr("index", strconv.Itoa(c.Index))
		el.CreateAttr("ref", c.Reference)
		el.CreateAttr("unit", c.Unit)
		if c.Conflict {
			el.CreateAttr("conflict", "true")
		}
		el.CreateElement("value").SetText(c.Value)
		el.CreateElement("symbol").SetText(c.Symbol)
		if c.Footprint != "" {
			el.CreateElement("footprint").SetText(c.Footprint)
		}
	}
}

func checkElement(doc *etree.Document, c *report.CheckReport) {
	root := doc.CreateElement("check")
	root.CreateAttr("problems", strconv.Itoa(c.ProblemCount()))
	for _, f := range c.Files {
		el := root.CreateElement("file")
		el.CreateAttr("name", f.File)
		el.CreateAttr("components", strconv.Itoa(f.Components))
		if f.Error != "" {
			el.CreateElement("error").SetText(f.Error)
		}
		for _, p := range f.Problems {
			pe := el.CreateElement("problem")
			pe.CreateAttr("number", strconv.Itoa(p.Number))
			pe.CreateAttr("kind", p.Kind)
			pe.CreateElement("description").SetText(p.Description)
			for _, m := range p.Members {
				me := pe.CreateElement("member")
				me.CreateAttr("index", strconv.Itoa(m.Index))
				me.CreateAttr("ref", m.Reference)
				me.CreateAttr("unit", m.Unit)
				me.CreateAttr("value", m.Value)
			}
		}
	}
}

func changeElement(doc *etree.Document, c *report.ChangeReport) {
	root := doc.CreateElement("changes")
	root.CreateAttr("source", c.File)
	root.CreateAttr("action", c.Action)
	root.CreateAttr("strategy", c.Strategy)
	root.CreateAttr("dry-run", strconv.FormatBool(c.DryRun))
	if c.Output != "" {
		root.CreateAttr("output", c.Output)
	}
	for _, ch := range c.Changes {
		el := root.CreateElement("change")
		el.CreateAttr("index", strconv.Itoa(ch.Index))
		el.CreateAttr("unit", ch.Unit)
		el.CreateAttr("before", ch.Before)
		el.CreateAttr("after", ch.After)
	}
	if c.Remaining > 0 {
		root.CreateElement("remaining").SetText(fmt.Sprint(c.Remaining))
	}
}
