// Package report turns schematic documents into the view models rendered
// by pkg/ui: component listings, problem reports, change sets and bills of
// materials. Every view carries struct tags for the JSON, YAML and TOML
// renderers.
package report
