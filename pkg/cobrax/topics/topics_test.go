package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"strategies.md":      {Data: []byte("# Strategies\n\nHow numbering works")},
		"format.txt":         {Data: []byte("Legacy schematic format")},
		"option-dry-run.txt": {Data: []byte("Nothing is written")},
		"nested/units.md":    {Data: []byte("# Units")},
		"notes.txxt":         {Data: []byte("Custom extension")},
		"ignore.json":        {Data: []byte("{}")},
	}
}

func TestScanTopics(t *testing.T) {
	t.Run("default_extensions", func(t *testing.T) {
		tm := New(topicFS())
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"format", "option-dry-run", "strategies", "units"}, tm.ListTopics())
		topic, ok := tm.GetTopic("strategies")
		require.True(t, ok)
		assert.Equal(t, "# Strategies\n\nHow numbering works", topic.Content)
		assert.Equal(t, "strategies.md", topic.FilePath)
	})

	t.Run("custom_extensions", func(t *testing.T) {
		tm := NewWithOptions(topicFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("nil_source", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestGetTopicFlagStyle(t *testing.T) {
	tm := New(topicFS())
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"--dry-run", "-dry-run", "dry-run", "option-dry-run"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "Nothing is written", topic.Content)
	}

	_, ok := tm.GetTopic("missing")
	assert.False(t, ok)
}

func TestWriteList(t *testing.T) {
	tm := New(topicFS())
	require.NoError(t, tm.scanTopics())

	buf := &bytes.Buffer{}
	tm.WriteList(buf, "schanno")

	out := buf.String()
	assert.Contains(t, out, "General topics:\n  format\n  strategies\n  units\n")
	assert.Contains(t, out, "Option topics:\n  --dry-run\n")
	assert.Contains(t, out, "Use 'schanno help <topic>'")

	empty := &bytes.Buffer{}
	New(fstest.MapFS{}).WriteList(empty, "schanno")
	assert.Equal(t, "No help topics available.\n", empty.String())
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string { return strings.ToUpper(content) }

func TestInitialize(t *testing.T) {
	newRoot := func() *cobra.Command {
		root := &cobra.Command{Use: "schanno", Run: func(cmd *cobra.Command, args []string) {}}
		root.AddCommand(&cobra.Command{Use: "list", Short: "List components", Run: func(cmd *cobra.Command, args []string) {}})
		return root
	}

	run := func(t *testing.T, args ...string) string {
		root := newRoot()
		_, err := InitializeWithOptions(root, topicFS(), Options{Renderer: upperRenderer{}})
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		root.SetOut(buf)
		root.SetErr(buf)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return buf.String()
	}

	t.Run("topic", func(t *testing.T) {
		assert.Equal(t, "LEGACY SCHEMATIC FORMAT", run(t, "help", "format"))
	})

	t.Run("topic_index", func(t *testing.T) {
		assert.Contains(t, run(t, "help", "topics"), "Available help topics:")
	})

	t.Run("falls_back_to_command_help", func(t *testing.T) {
		assert.Contains(t, run(t, "help", "list"), "List components")
	})
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "# Title", (&PlainRenderer{}).Render("# Title", ".md"))
	assert.Equal(t, "plain", NewGlamourRenderer(80).Render("plain", ".txt"))
}
