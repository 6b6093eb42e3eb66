package ui_test

import (
	"testing"

	"github.com/arthur-debert/schanno/pkg/ui"
	"github.com/stretchr/testify/assert"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.FormatYAML, "yaml"},
		{ui.FormatTOML, "toml"},
		{ui.FormatXML, "xml"},
		{ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"parse_auto", "auto", ui.FormatAuto, false},
		{"parse_empty_string_as_auto", "", ui.FormatAuto, false},
		{"parse_term", "term", ui.FormatTerminal, false},
		{"parse_terminal", "terminal", ui.FormatTerminal, false},
		{"parse_plain", "plain", ui.FormatText, false},
		{"parse_mixed_case_json", "Json", ui.FormatJSON, false},
		{"parse_yml", "yml", ui.FormatYAML, false},
		{"parse_toml", "TOML", ui.FormatTOML, false},
		{"parse_xml", "xml", ui.FormatXML, false},
		{"parse_invalid_format", "html", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "unknown format")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, format)
			}
		})
	}
}

func TestStructured(t *testing.T) {
	assert.True(t, ui.FormatJSON.Structured())
	assert.True(t, ui.FormatXML.Structured())
	assert.False(t, ui.FormatText.Structured())
	assert.False(t, ui.FormatAuto.Structured())
}
