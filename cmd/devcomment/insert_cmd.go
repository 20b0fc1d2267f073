package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/devcomment/internal/editor"
	"github.com/raphi011/devcomment/internal/log"
	"github.com/raphi011/devcomment/internal/output"
)

func newInsertCmd(a *app) *cobra.Command {
	var (
		line        int
		col         int
		languageID  string
		dryRun      bool
		copyText    bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "insert FILE",
		Short:   "Insert a developer comment into a file",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Insert a developer comment into FILE at --line/--col.

The language is detected from the file name unless --lang is given.
With move_to_end enabled, the comment goes to the end of a non-empty line.
The final caret position is printed as LINE:COL (1-based); for html and
xml it sits inside the closing "-->".`,
		Example: `  devcomment insert main.ts --line 12           # Insert at the start of line 12
  devcomment insert index.html --line 3 --col 5  # Wrapped in <!-- -->
  devcomment insert notes.txt --lang typescript  # Override language detection
  devcomment insert app.tsx -l 4 -n              # Preview without writing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if line < 1 || col < 1 {
				return fmt.Errorf("--line and --col are 1-based and must be at least 1")
			}

			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			workDir, err := a.resolveWorkDir(path)
			if err != nil {
				return err
			}

			s, _ := a.loadSettings(ctx, workDir)
			id, err := a.languageFor(ctx, languageID, path, interactive, s)
			if err != nil {
				return err
			}

			text := a.newResolver(s, workDir).Resolve(ctx, id)
			l.Debug("resolved comment", "lang", id, "text", text)

			caret := editor.Position{Line: line - 1, Character: col - 1}
			file, err := editor.OpenFile(path, id, caret)
			if err != nil {
				return err
			}

			var doc editor.Document = file
			var preview *editor.MemoryDocument
			if dryRun {
				preview = editor.NewMemoryDocument(id, file.Text(), file.Caret())
				doc = preview
			}

			placement := &editor.Placement{Editor: editor.Active(doc), MoveToEnd: s.MoveToEnd}
			inserted, err := placement.Insert(ctx, text)
			if err != nil {
				return fmt.Errorf("failed to insert comment: %w", err)
			}
			end := doc.Caret()
			placement.Reposition(ctx, inserted)

			if copyText {
				a.copyToClipboard(ctx, text)
			}

			final := doc.Caret()
			if dryRun {
				printPreview(out, preview, end, inserted, final)
			} else {
				l.Debug("inserted comment", "file", path, "chars", inserted)
			}
			out.Printf("%d:%d\n", final.Line+1, final.Character+1)
			return nil
		},
	}

	cmd.Flags().IntVarP(&line, "line", "l", 1, "Line to insert at (1-based)")
	cmd.Flags().IntVarP(&col, "col", "c", 1, "Column to insert at (1-based, in characters)")
	cmd.Flags().StringVar(&languageID, "lang", "", "Language id (default: detected from FILE)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Preview the edited line without writing")
	cmd.Flags().BoolVar(&copyText, "copy", false, "Also copy the comment to the clipboard")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Choose the language when it cannot be detected")
	_ = cmd.RegisterFlagCompletionFunc("lang", completeLanguages(a))

	return cmd
}
