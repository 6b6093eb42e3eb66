package schanno

import (
	"embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Check, fix and annotate designators in legacy KiCad schematics"
	MsgListShort       = "List the components of a schematic"
	MsgCheckShort      = "Report duplicate designators"
	MsgFixShort        = "Renumber duplicate designators"
	MsgAnnotateShort   = "Renumber every component"
	MsgExportShort     = "Export a bill of materials"
	MsgConfigShort     = "Print the effective configuration"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into a directory"
	MsgVersionShort    = "Print version information"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrExportFormat  = "export needs --format json, yaml, toml or xml, got %q"
	MsgErrManDirectory  = "failed to create man page directory: %w"
	MsgErrSetupTopics   = "Failed to set up help topics"
	MsgErrLoadingConfig = "failed to load configuration: %w"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Compute and report changes without writing anything"
	MsgFlagFormat     = "Report format: auto, term, text, json, yaml, toml or xml"
	MsgFlagConfig     = "User configuration file (default $XDG_CONFIG_HOME/schanno/config.toml)"
	MsgFlagDistinct   = "Show each designator once"
	MsgFlagSorted     = "Sort by symbol, designator and value"
	MsgFlagJobs       = "Files parsed in parallel, 0 for one per CPU (default from check.jobs)"
	MsgFlagFixStrat   = "Fix strategy: increment_all or next_available (default from fix.strategy)"
	MsgFlagAnnStrat   = "Annotation strategy (default from annotate.strategy)"
	MsgFlagProblem    = "Fix only problem N as numbered by check"
	MsgFlagOutput     = "Write the schematic to FILE, - for standard output"
	MsgFlagInPlace    = "Overwrite the input file"
	MsgFlagNoBackup   = "Do not keep a backup of overwritten files"
	MsgFlagComponents = "Export the component table instead of the BOM"
	MsgFlagExpDist    = "With --components, show each designator once"
	MsgFlagDefaults   = "Print the built-in defaults instead"

	// Version output
	MsgVersionFormat = "%s version %s\n  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs
	msgFiles embed.FS

	MsgRootLong        = msg("root-long.txt")
	MsgUsageTemplate   = msg("usage-template.txt")
	MsgListLong        = msg("list-long.txt")
	MsgListExample     = msg("list-example.txt")
	MsgCheckLong       = msg("check-long.txt")
	MsgCheckExample    = msg("check-example.txt")
	MsgFixLong         = msg("fix-long.txt")
	MsgFixExample      = msg("fix-example.txt")
	MsgAnnotateLong    = msg("annotate-long.txt")
	MsgAnnotateExample = msg("annotate-example.txt")
	MsgExportLong      = msg("export-long.txt")
	MsgExportExample   = msg("export-example.txt")
	MsgConfigLong      = msg("config-long.txt")
	MsgCompletionLong  = msg("completion-long.txt")
)

// Help topics shown by "schanno help <topic>"
//
//go:embed topics
var topicFiles embed.FS

func msg(name string) string {
	data, err := msgFiles.ReadFile("msgs/" + name)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(string(data))
}
