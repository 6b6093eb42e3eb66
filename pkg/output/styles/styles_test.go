package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	require.NoError(t, LoadStylesFromData(defaultStyles))

	for _, name := range []string{
		"Header", "SubHeader", "FilePath", "Success", "Warning", "Error",
		"Muted", "Bold", "Reference", "Conflict", "Changed", "Value",
		"TableHeader", "TableCell", "Indent", "DryRunBanner", "NoContent",
	} {
		t.Run(name, func(t *testing.T) {
			_, exists := StyleRegistry[name]
			assert.True(t, exists, "style %s should exist", name)
		})
	}
}

func TestBuildStyle(t *testing.T) {
	require.NoError(t, LoadStylesFromData(defaultStyles))

	style := GetStyle("Error")
	assert.True(t, style.GetBold())
	assert.Equal(t, colors["error"], style.GetForeground())

	assert.Equal(t, 2, GetStyle("TableCell").GetPaddingRight())
	assert.Equal(t, 2, GetStyle("Indent").GetMarginLeft())
	assert.True(t, GetStyle("NoContent").GetItalic())
}

func TestGetStyleMissing(t *testing.T) {
	style := GetStyle("NoSuchStyle")
	assert.False(t, style.GetBold())
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestMergeStyles(t *testing.T) {
	require.NoError(t, LoadStylesFromData(defaultStyles))

	merged := MergeStyles("Bold", "Muted")
	assert.True(t, merged.GetBold())
	assert.Equal(t, colors["muted"], merged.GetForeground())
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(func() { _ = LoadStylesFromData(defaultStyles) })

	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  red: {light: "#FF0000", dark: "#FF0000"}
styles:
  Error: {foreground: red, underline: true}
`), 0644))

	require.NoError(t, LoadStyles(path))
	assert.True(t, GetStyle("Error").GetUnderline())
	_, exists := StyleRegistry["Header"]
	assert.False(t, exists)

	assert.Error(t, LoadStyles(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, LoadStylesFromData([]byte("styles: [")))
}
