package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/raphi011/devcomment/internal/comment"
	"github.com/raphi011/devcomment/internal/config"
	"github.com/raphi011/devcomment/internal/git"
	"github.com/raphi011/devcomment/internal/log"
	"github.com/raphi011/devcomment/internal/output"
	"github.com/raphi011/devcomment/internal/storage"
	"github.com/raphi011/devcomment/internal/ui/prompt"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage devcomment configuration.

Global config: ~/.config/devcomment/config.toml ($DEVCOMMENT_CONFIG)
Local config:  .devcomment.toml (nearest parent directory, up to the repo root)`,
		Example: `  devcomment config init          # Create default global config
  devcomment config init --local  # Create local repo config
  devcomment config show          # Show effective config
  devcomment config import ~/.config/Code/User/settings.json`,
	}

	cmd.AddCommand(newConfigInitCmd(a))
	cmd.AddCommand(newConfigShowCmd(a))
	cmd.AddCommand(newConfigImportCmd(a))

	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var (
		force       bool
		stdout      bool
		local       bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates the global config.
With --local, creates .devcomment.toml in the current repo root.
With -i, asks for the user name (prefilled from git) and before overwriting.`,
		Example: `  devcomment config init           # Create global config
  devcomment config init --local   # Create local repo config
  devcomment config init -f        # Overwrite existing config
  devcomment config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if local {
				return a.initLocalConfig(ctx, force, stdout)
			}
			return a.initGlobalConfig(ctx, force, stdout, interactive)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create per-repo .devcomment.toml instead of global config")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for the user name")
	cmd.MarkFlagsMutuallyExclusive("local", "interactive")

	return cmd
}

func (a *app) initGlobalConfig(ctx context.Context, force, stdout, interactive bool) error {
	out := output.FromContext(ctx)

	user := ""
	if interactive {
		if !a.canPrompt() {
			return fmt.Errorf("--interactive requires a terminal")
		}
		root, _ := git.FindRoot(a.workDir)
		result, err := a.ask("Your name for {user}:", "alice", git.UserName(root))
		if err != nil {
			return err
		}
		if result.Cancelled {
			return errCancelled
		}
		user = result.Value
	}

	if stdout {
		out.Print(config.DefaultConfigFor(user))
		return nil
	}

	path := a.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if interactive && !force {
		if _, err := os.Stat(path); err == nil {
			result, err := a.confirm(replaceQuestion(path))
			if err != nil {
				return err
			}
			if !result.Confirmed {
				return errCancelled
			}
			force = true
		}
	}

	created, err := config.InitUser(path, user, force)
	if err != nil {
		return fmt.Errorf("%w (use -f to overwrite)", err)
	}
	out.Printf("Created config file: %s\n", created)
	return nil
}

// replaceQuestion asks before config init replaces an existing file. A file
// that still holds nothing but defaults is replaced unless the user says no.
func replaceQuestion(path string) prompt.Question {
	q := prompt.Question{Title: fmt.Sprintf("Replace %s?", filepath.Base(path)), Detail: path}
	existing, err := config.Load(path)
	switch {
	case err != nil:
		q.Detail += " (has errors)"
	case existing.User != "":
		q.Detail += fmt.Sprintf(" signs comments as %q", existing.User)
	default:
		q.DefaultYes = reflect.DeepEqual(existing, config.Default())
	}
	return q
}

func (a *app) initLocalConfig(ctx context.Context, force, stdout bool) error {
	out := output.FromContext(ctx)

	if stdout {
		out.Print(config.DefaultLocalConfig())
		return nil
	}

	dir, err := a.resolveWorkDir("")
	if err != nil {
		return err
	}
	root, ok := git.FindRoot(dir)
	if !ok {
		return fmt.Errorf("not in a git repository: %s", dir)
	}

	created, err := config.InitLocal(root, force)
	if err != nil {
		return fmt.Errorf("%w (use -f to overwrite)", err)
	}
	out.Printf("Created local config: %s\n", created)
	return nil
}

func newConfigShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show the effective configuration as TOML.

The header names the files that contributed and where the user came from.`,
		Example: `  devcomment config show
  devcomment config show -C ~/src/project  # As seen from another directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			workDir, err := a.resolveWorkDir("")
			if err != nil {
				return err
			}
			s, src := a.loadSettings(ctx, workDir)

			if unknown := comment.Unknown(s.CommentFormat); len(unknown) > 0 {
				l.Warn("comment_format has unknown placeholders %v, they are inserted as-is", unknown)
			}

			data, err := config.EncodeTOML(s)
			if err != nil {
				return err
			}

			out.Printf("# global: %s\n", orNone(src.Global))
			out.Printf("# local:  %s\n", orNone(src.Local))
			out.Printf("# user:   %s\n\n", orNone(src.User))
			out.Print(data)
			return nil
		},
	}

	return cmd
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func newConfigImportCmd(a *app) *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "import SETTINGS_JSON",
		Short: "Convert VS Code settings to a config file",
		Args:  cobra.ExactArgs(1),
		Long: `Convert the devComment.* keys of a VS Code settings.json to TOML.

Comments in settings.json are allowed. Keys that have no equivalent are
reported and skipped.`,
		Example: `  devcomment config import ~/.config/Code/User/settings.json
  devcomment config import .vscode/settings.json -s  # Print instead of writing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read settings: %w", err)
			}
			s, ignored, err := config.DecodeVSCode(data)
			if err != nil {
				return err
			}
			for _, key := range ignored {
				l.Warn("%s has no equivalent and was skipped", key)
			}

			encoded, err := config.EncodeTOML(s)
			if err != nil {
				return err
			}
			if stdout {
				out.Print(encoded)
				return nil
			}

			path := a.configPath
			if path == "" {
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
				}
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}
			if err := storage.WriteFileAtomic(path, []byte(encoded), 0644); err != nil {
				return err
			}

			out.Printf("Imported %s into %s\n", args[0], path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}
