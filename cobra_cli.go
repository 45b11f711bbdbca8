package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
xrefstrip is a pre-generation step for docfx builds. It rewrites <see cref="..."/>
tags that point into external namespaces docfx cannot resolve, replacing each tag
with its bare qualified identifier so the generated pages keep the text instead of
a broken link.

The rewrite is destructive on purpose: run it against a clean, committed tree,
generate the docs, then use git to restore the sources. By default it refuses to
touch anything until you confirm interactively; pass --yes for CI use, or
--dry-run to list the files a real run would change.
`

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	app := &cliApp{}
	cmd := &cobra.Command{
		Use:           "xrefstrip [flags] [root]",
		Short:         "Strip unresolvable cref tags before docs generation",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVar(&app.opts.extension, "ext", defaultExtension, "only rewrite files whose name ends with this suffix")
	flags.StringArrayVar(&app.opts.prefixes, "prefix", defaultPrefixes, "namespace prefix whose crefs are stripped (repeatable)")
	flags.StringArrayVar(&app.opts.include, "include", nil, "doublestar glob relative to root; when set, files must also match one (repeatable)")
	flags.BoolVarP(&app.opts.dryRun, "dry-run", "n", false, "list files that would be rewritten, change nothing")
	flags.BoolVarP(&app.opts.assumeYes, "yes", "y", false, "skip the confirmation prompt")
	flags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "report each rewritten file on stderr")
	flags.StringVar(&app.opts.configPath, "config", "", "config file (default: .xrefstrip.yaml under root, if present)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.execute(cmd, args)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const longDesc = `Generate shell completion scripts for xrefstrip.

The output should be evaluated by your shell. For example:

  # bash
  xrefstrip completion bash > /usr/local/etc/bash_completion.d/xrefstrip

  # zsh
  xrefstrip completion zsh > "${fpath[1]}/_xrefstrip"

  # fish
  xrefstrip completion fish | source

  # PowerShell
  xrefstrip completion powershell | Out-String | Invoke-Expression
`
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  xrefstrip gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
