package schanno

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/schanno/internal/version"
	"github.com/arthur-debert/schanno/pkg/cobrax/topics"
	"github.com/arthur-debert/schanno/pkg/commands"
	"github.com/arthur-debert/schanno/pkg/config"
	"github.com/arthur-debert/schanno/pkg/errors"
	"github.com/arthur-debert/schanno/pkg/filesystem"
	"github.com/arthur-debert/schanno/pkg/logging"
	"github.com/arthur-debert/schanno/pkg/schematic"
	"github.com/arthur-debert/schanno/pkg/ui"
)

// app carries the state shared by every subcommand of one invocation
type app struct {
	fs         filesystem.FS
	projectDir string

	verbosity  int
	dryRun     bool
	format     string
	configFile string
	noBackup   bool

	cfg    *config.Config
	topics *topics.TopicManager
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(filesystem.NewOS(), "")
}

// newRootCmd builds the command tree over fsys. projectDir is searched for
// .schanno.toml, "" meaning the working directory and "-" disabling it.
func newRootCmd(fsys filesystem.FS, projectDir string) *cobra.Command {
	initTemplateFormatting()

	a := &app{fs: fsys, projectDir: projectDir}

	rootCmd := &cobra.Command{
		Use:     "schanno",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLoggerWithOutput(a.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&a.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	cobra.CheckErr(rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "yaml", "toml", "xml"}, cobra.ShellCompDirectiveNoFileComp
	}))

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newCheckCmd())
	rootCmd.AddCommand(a.newFixCmd())
	rootCmd.AddCommand(a.newAnnotateCmd())
	rootCmd.AddCommand(a.newExportCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(a.newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newVersionCmd())

	topicFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		a.topics, err = topics.InitializeWithOptions(rootCmd, topicFS, topics.Options{
			Extensions: []string{".txt", ".md"},
			Renderer:   topics.NewGlamourRenderer(0),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg(MsgErrSetupTopics)
	}

	return rootCmd
}

// loadConfig merges the configuration layers with the flags the user set
func (a *app) loadConfig(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("format") {
		overrides["output.format"] = a.format
	}
	if a.noBackup {
		overrides["output.backup"] = false
	}

	cfg, err := config.Load(config.Options{
		UserFile:   a.configFile,
		ProjectDir: a.projectDir,
		Overrides:  overrides,
	})
	if err != nil {
		return fmt.Errorf(MsgErrLoadingConfig, err)
	}
	a.cfg = cfg
	return nil
}

func (a *app) renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, w)
}

func (a *app) render(w io.Writer, result interface{}) error {
	r, err := a.renderer(w)
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}

func (a *app) source(cmd *cobra.Command, path string) commands.Source {
	return commands.Source{FS: a.fs, Path: path, Stdin: cmd.InOrStdin()}
}

func (a *app) destination(cmd *cobra.Command, output string, inPlace bool) commands.Destination {
	return commands.Destination{
		Output:          output,
		InPlace:         inPlace,
		DryRun:          a.dryRun,
		Backup:          a.cfg.Output.Backup,
		BackupSuffix:    a.cfg.Output.BackupSuffix,
		DefaultFilename: a.cfg.Output.DefaultFilename,
		Stdout:          cmd.OutOrStdout(),
	}
}

// reportWriter keeps standard output free for the schematic text when
// that is where the schematic goes
func reportWriter(cmd *cobra.Command, dst commands.Destination) io.Writer {
	if !dst.DryRun && !dst.InPlace && (dst.Output == "" || dst.Output == commands.StdinPath) {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

// schematicFiles completes arguments with .sch files
func schematicFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"sch"}, cobra.ShellCompDirectiveFilterFileExt
}

func fixStrategyCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, s := range schematic.FixStrategies {
		out = append(out, string(s)+"\t"+s.Description())
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func annotateStrategyCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, s := range schematic.AnnotateStrategies {
		out = append(out, string(s)+"\t"+s.Description())
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func (a *app) newListCmd() *cobra.Command {
	var distinct, sorted bool

	cmd := &cobra.Command{
		Use:               "list FILE",
		Short:             MsgListShort,
		Long:              MsgListLong,
		Example:           MsgListExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: schematicFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.List(commands.ListOptions{
				Source:   a.source(cmd, args[0]),
				Distinct: distinct,
				Sorted:   sorted,
			})
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVar(&distinct, "distinct", false, MsgFlagDistinct)
	cmd.Flags().BoolVar(&sorted, "sorted", false, MsgFlagSorted)
	return cmd
}

func (a *app) newCheckCmd() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:               "check FILE...",
		Short:             MsgCheckShort,
		Long:              MsgCheckLong,
		Example:           MsgCheckExample,
		GroupID:           "core",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: schematicFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("jobs") {
				jobs = a.cfg.Check.Jobs
			}

			result, err := commands.Check(cmd.Context(), commands.CheckOptions{
				FS:    a.fs,
				Paths: args,
				Jobs:  jobs,
			})
			if err != nil {
				return err
			}
			if err := a.render(cmd.OutOrStdout(), result); err != nil {
				return err
			}

			if a.cfg.Check.FailOnProblems && (result.ProblemCount() > 0 || result.FailedCount() > 0) {
				return &ExitError{Code: 2}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, MsgFlagJobs)
	return cmd
}

func (a *app) newFixCmd() *cobra.Command {
	var (
		strategy string
		problem  int
		output   string
		inPlace  bool
	)

	cmd := &cobra.Command{
		Use:               "fix FILE",
		Short:             MsgFixShort,
		Long:              MsgFixLong,
		Example:           MsgFixExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: schematicFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.cfg.FixStrategy(strategy)
			if err != nil {
				return err
			}
			if problem < 0 {
				return errors.Newf(errors.ErrInvalidInput, "--problem must be positive, got %d", problem)
			}

			dst := a.destination(cmd, output, inPlace)
			result, err := commands.Fix(commands.FixOptions{
				Source:      a.source(cmd, args[0]),
				Strategy:    s,
				Problem:     problem,
				Destination: dst,
			})
			if err != nil {
				return err
			}
			return a.render(reportWriter(cmd, dst), result)
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", MsgFlagFixStrat)
	cmd.Flags().IntVarP(&problem, "problem", "p", 0, MsgFlagProblem)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, MsgFlagInPlace)
	cmd.Flags().BoolVar(&a.noBackup, "no-backup", false, MsgFlagNoBackup)
	cmd.MarkFlagsMutuallyExclusive("output", "in-place")
	cobra.CheckErr(cmd.RegisterFlagCompletionFunc("strategy", fixStrategyCompletion))
	return cmd
}

func (a *app) newAnnotateCmd() *cobra.Command {
	var (
		strategy string
		output   string
		inPlace  bool
	)

	cmd := &cobra.Command{
		Use:               "annotate FILE",
		Short:             MsgAnnotateShort,
		Long:              MsgAnnotateLong,
		Example:           MsgAnnotateExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: schematicFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.cfg.AnnotateStrategy(strategy)
			if err != nil {
				return err
			}

			dst := a.destination(cmd, output, inPlace)
			result, err := commands.Annotate(commands.AnnotateOptions{
				Source:      a.source(cmd, args[0]),
				Strategy:    s,
				Destination: dst,
			})
			if err != nil {
				return err
			}
			return a.render(reportWriter(cmd, dst), result)
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", MsgFlagAnnStrat)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, MsgFlagInPlace)
	cmd.Flags().BoolVar(&a.noBackup, "no-backup", false, MsgFlagNoBackup)
	cmd.MarkFlagsMutuallyExclusive("output", "in-place")
	cobra.CheckErr(cmd.RegisterFlagCompletionFunc("strategy", annotateStrategyCompletion))
	return cmd
}

func (a *app) newExportCmd() *cobra.Command {
	var components, distinct bool

	cmd := &cobra.Command{
		Use:               "export FILE",
		Short:             MsgExportShort,
		Long:              MsgExportLong,
		Example:           MsgExportExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: schematicFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(a.cfg.Output.Format)
			if err != nil {
				return err
			}
			if !format.Structured() {
				return errors.Newf(errors.ErrInvalidInput, MsgErrExportFormat, a.cfg.Output.Format)
			}

			result, err := commands.Export(commands.ExportOptions{
				Source:     a.source(cmd, args[0]),
				Components: components,
				Distinct:   distinct,
			})
			if err != nil {
				return err
			}

			r, err := ui.NewRenderer(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderResult(result)
		},
	}

	cmd.Flags().BoolVar(&components, "components", false, MsgFlagComponents)
	cmd.Flags().BoolVar(&distinct, "distinct", false, MsgFlagExpDist)
	return cmd
}

func (a *app) newConfigCmd() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), config.DefaultsTOML())
				return err
			}

			text, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func (a *app) newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if a.topics == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No help topics available.")
				return
			}
			a.topics.WriteList(cmd.OutOrStdout(), cmd.Root().Name())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// ManHeader is the header shared by the man command and the manpage tool
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "SCHANNO",
		Section: "1",
		Source:  "schanno " + version.Version,
		Manual:  "schanno manual",
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man DIR",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(args[0], 0755); err != nil {
				return fmt.Errorf(MsgErrManDirectory, err)
			}
			return doc.GenManTree(cmd.Root(), ManHeader(), args[0])
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, commit, date := version.Resolved()
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, cmd.Root().Name(), v, commit, date)
		},
	}
}
