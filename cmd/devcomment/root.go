package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/devcomment/internal/log"
	"github.com/raphi011/devcomment/internal/output"
	"github.com/raphi011/devcomment/internal/ui/prompt"
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// app holds global flags and the process dependencies commands use.
// Tests replace the dependencies.
type app struct {
	// Global flags
	verbose    bool
	quiet      bool
	configPath string
	workDir    string

	stdout io.Writer
	stderr io.Writer

	now       func() time.Time
	copy      func(text string) error
	pick      func(title string, options []prompt.Option) (prompt.SelectResult, error)
	ask       func(title, placeholder, value string) (prompt.TextInputResult, error)
	confirm   func(q prompt.Question) (prompt.ConfirmResult, error)
	canPrompt func() bool
}

func newApp() *app {
	return &app{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		now:     time.Now,
		copy:    clipboard.WriteAll,
		pick:    prompt.Select,
		ask:     prompt.TextInput,
		confirm: prompt.Confirm,
		canPrompt: func() bool {
			return output.IsTerminal(os.Stdin) && output.IsTerminal(os.Stderr)
		},
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "devcomment",
		Short: "Insert dated developer comments into source files",
		Long: `devcomment inserts a short developer comment such as
"// 20240115 alice: PROJ-42" into a file at a given position.

The comment text comes from a template with {date}, {user}, {branch} and
{partialBranch} placeholders and is wrapped in the comment syntax of the
file's language.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate mutually exclusive flags
			if a.verbose && a.quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}

			// Logger (stderr for diagnostics) and printer (stdout for primary data)
			ctx := log.WithLogger(cmd.Context(), log.New(a.stderr, a.verbose, a.quiet))
			ctx = output.WithPrinter(ctx, a.stdout)
			cmd.SetContext(ctx)
			return nil
		},
		// Run is not set - shows help when no subcommand provided
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Show debug output and external commands")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "Suppress all log output")
	flags.StringVar(&a.configPath, "config", "", "Config file (default $DEVCOMMENT_CONFIG or ~/.config/devcomment/config.toml)")
	flags.StringVarP(&a.workDir, "workdir", "C", "", "Directory used for branch lookup and local config (default: the file's directory)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	_ = rootCmd.MarkPersistentFlagDirname("workdir")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newInsertCmd(a))
	rootCmd.AddCommand(newResolveCmd(a))
	rootCmd.AddCommand(newLanguagesCmd(a))

	// Config commands
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(newApp()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'devcomment -h' for help")
		cancel()
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print version information",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.FromContext(cmd.Context()).Println(versionString())
			return nil
		},
	}
}
