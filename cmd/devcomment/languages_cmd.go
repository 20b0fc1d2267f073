package main

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/raphi011/devcomment/internal/comment"
	"github.com/raphi011/devcomment/internal/config"
	"github.com/raphi011/devcomment/internal/lang"
	"github.com/raphi011/devcomment/internal/log"
	"github.com/raphi011/devcomment/internal/output"
	"github.com/raphi011/devcomment/internal/ui/static"
)

// Style sources shown by the languages command.
const (
	sourceConfig     = "config"
	sourceBuiltin    = "built-in"
	sourceOverridden = "built-in (overridden)"
)

type languageRow struct {
	id     string
	style  comment.Style
	source string
}

// languageRows lists every language with a comment style in lookup order.
// Built-in entries shadowed by a configured entry are kept and marked.
func languageRows(s config.Settings) []languageRow {
	var rows []languageRow
	var configured []string
	for _, f := range s.AdditionalFormats {
		if slices.Contains(configured, f.LanguageID) {
			continue // first match wins
		}
		configured = append(configured, f.LanguageID)
		rows = append(rows, languageRow{f.LanguageID, comment.OverrideStyle(f.CommentSymbol), sourceConfig})
	}
	for _, b := range comment.BuiltinStyles() {
		for _, id := range b.LanguageIDs {
			source := sourceBuiltin
			if slices.Contains(configured, id) {
				source = sourceOverridden
			}
			rows = append(rows, languageRow{id, b.Style, source})
		}
	}
	return rows
}

func newLanguagesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "languages [FILTER]",
		Short:   "List comment styles per language",
		Aliases: []string{"langs"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `List the languages that get wrapped in comment syntax.

Configured additional_formats come first and win over built-in styles.
FILTER fuzzy-matches language ids. Languages not listed are inserted
without comment syntax.`,
		Example: `  devcomment languages          # All styles
  devcomment languages script   # javascript, typescript, ...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			workDir, err := a.resolveWorkDir("")
			if err != nil {
				return err
			}
			s, _ := a.loadSettings(ctx, workDir)

			all := languageRows(s)
			var filter string
			if len(args) == 1 {
				filter = args[0]
			}

			var ids []string
			for _, r := range all {
				if !slices.Contains(ids, r.id) {
					ids = append(ids, r.id)
				}
			}

			// An overridden id keeps its built-in row next to the configured one.
			var rows [][]string
			for _, id := range lang.Filter(filter, ids) {
				for _, r := range all {
					if r.id == id {
						rows = append(rows, []string{r.id, r.style.Wrap("text"), r.source})
					}
				}
			}

			if len(rows) == 0 {
				log.FromContext(ctx).Printf("No languages match %q\n", filter)
				return nil
			}
			// Built-in rows are muted.
			out.Print(static.RenderTable([]string{"LANGUAGE", "STYLE", "SOURCE"}, rows, func(row []string) bool {
				return row[2] != "config"
			}))
			return nil
		},
	}

	return cmd
}

// completeLanguages completes --lang with styled and detectable ids.
func completeLanguages(a *app) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		s, _, _ := config.Snapshot(a.configPath, a.workDir)
		ids := styledLanguages(s)
		for _, id := range lang.Known() {
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
		return lang.Filter(toComplete, ids), cobra.ShellCompDirectiveNoFileComp
	}
}
