package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/devcomment/internal/output"
)

func newResolveCmd(a *app) *cobra.Command {
	var (
		languageID  string
		file        string
		copyText    bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "resolve",
		Short:   "Print the comment without inserting it",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Print the resolved comment for a language.

Meant for editor integrations that insert text themselves. --file is only
used to detect the language and to find the branch and local config.`,
		Example: `  devcomment resolve --lang typescript     # "// 20240115 alice: PROJ-42"
  devcomment resolve --file src/index.html  # Detect language from file name
  devcomment resolve --lang csharp --copy   # Also copy to clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			workDir, err := a.resolveWorkDir(file)
			if err != nil {
				return err
			}
			s, _ := a.loadSettings(ctx, workDir)
			id, err := a.languageFor(ctx, languageID, file, interactive, s)
			if err != nil {
				return err
			}

			text := a.newResolver(s, workDir).Resolve(ctx, id)
			if copyText {
				a.copyToClipboard(ctx, text)
			}
			output.FromContext(ctx).Println(text)
			return nil
		},
	}

	cmd.Flags().StringVar(&languageID, "lang", "", "Language id")
	cmd.Flags().StringVarP(&file, "file", "f", "", "File to detect the language from")
	cmd.Flags().BoolVar(&copyText, "copy", false, "Also copy the comment to the clipboard")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Choose the language when it cannot be detected")
	_ = cmd.RegisterFlagCompletionFunc("lang", completeLanguages(a))

	return cmd
}
