package main

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

type options struct {
	extension  string
	prefixes   []string
	include    []string
	dryRun     bool
	assumeYes  bool
	verbose    bool
	configPath string
}

type cliApp struct {
	opts options
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func (app *cliApp) execute(cmd *cobra.Command, positionals []string) error {
	root := defaultRoot
	if len(positionals) == 1 {
		root = positionals[0]
	}
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", root)
	}

	cfg, err := loadConfig(root, app.opts.configPath)
	if err != nil {
		return err
	}
	sel, err := app.resolveSelection(cmd, cfg)
	if err != nil {
		return err
	}
	rules := rulesForPrefixes(sel.prefixes)

	if app.opts.dryRun {
		return app.preview(cmd, root, sel, rules)
	}
	if !app.opts.assumeYes && !promptYes(cmd, confirmMessage(root)) {
		return nil
	}
	return app.stripTree(cmd, root, sel, rules)
}

// selection is the effective file filter and prefix list after merging flags
// over config over defaults.
type selection struct {
	extension string
	prefixes  []string
	include   []string
}

func (app *cliApp) resolveSelection(cmd *cobra.Command, cfg stripConfig) (selection, error) {
	sel := selection{
		extension: cfg.Extension,
		prefixes:  cfg.Prefixes,
		include:   cfg.Include,
	}
	flags := cmd.Flags()
	if flags.Changed("ext") {
		sel.extension = app.opts.extension
	}
	if flags.Changed("prefix") {
		sel.prefixes = app.opts.prefixes
	}
	if flags.Changed("include") {
		sel.include = app.opts.include
	}
	if sel.extension == "" {
		return selection{}, fmt.Errorf("file extension must not be empty")
	}
	if len(sel.prefixes) == 0 {
		return selection{}, fmt.Errorf("at least one namespace prefix is required")
	}
	for _, pattern := range sel.include {
		if !doublestar.ValidatePattern(pattern) {
			return selection{}, fmt.Errorf("invalid include pattern %q", pattern)
		}
	}
	return sel, nil
}

func confirmMessage(root string) string {
	return fmt.Sprintf("WARNING: this rewrites files under %s in place and relies on you "+
		"using git to restore them after docs generation is complete. "+
		"Ensure ALL changes are committed and pushed first! Continue? (Y/N): ", root)
}

func promptYes(cmd *cobra.Command, message string) bool {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, message) //nolint:errcheck // CLI output errors are typically ignored
	reader := bufio.NewReader(cmd.InOrStdin())
	line, _ := reader.ReadString('\n')
	fmt.Fprintln(out)
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y"
}

// stripTree walks root and rewrites every selected file whose content
// changes. The first failure of any kind aborts the whole walk; the tool is
// meant to run once against a clean tree, so there is no per-file recovery.
func (app *cliApp) stripTree(cmd *cobra.Command, root string, sel selection, rules []rule) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ok, err := sel.selects(root, path)
		if err != nil || !ok {
			return err
		}
		changed, err := processFile(path, rules)
		if err != nil {
			return err
		}
		if changed && app.opts.verbose {
			fmt.Fprintln(cmd.ErrOrStderr(), "rewrote", path)
		}
		return nil
	})
}

// preview reports which files a real run would rewrite, without touching any
// of them. Paths are printed relative to root, one per line.
func (app *cliApp) preview(cmd *cobra.Command, root string, sel selection, rules []rule) error {
	out := cmd.OutOrStdout()
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ok, err := sel.selects(root, path)
		if err != nil || !ok {
			return err
		}
		text, err := readFileUTF8(path)
		if err != nil {
			return err
		}
		if rewrite(text, rules) != text {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				rel = path
			}
			fmt.Fprintln(out, filepath.ToSlash(rel))
		}
		return nil
	})
}

func (sel selection) selects(root, path string) (bool, error) {
	if !strings.HasSuffix(filepath.Base(path), sel.extension) {
		return false, nil
	}
	if len(sel.include) == 0 {
		return true, nil
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false, err
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range sel.include {
		if ok, err := doublestar.Match(pattern, rel); err != nil {
			return false, err
		} else if ok {
			return true, nil
		}
	}
	return false, nil
}

// processFile rewrites one file in place. Files whose content does not change
// are never reopened for writing, so untouched files keep their modification
// time. Reports whether the file was rewritten.
func processFile(path string, rules []rule) (bool, error) {
	text, err := readFileUTF8(path)
	if err != nil {
		return false, err
	}
	out := rewrite(text, rules)
	if out == text {
		return false, nil
	}
	return true, writeFilePreservePerms(path, []byte(out))
}

func readFileUTF8(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: file is not valid UTF-8", path)
	}
	return string(data), nil
}

// writeFilePreservePerms overwrites path keeping its existing mode bits,
// falling back to 0644 when the file is new or its mode reads as zero.
func writeFilePreservePerms(path string, data []byte) error {
	var mode os.FileMode = 0o644
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode() & 0o777
		if mode == 0 {
			mode = 0o644
		}
	}
	return os.WriteFile(path, data, mode)
}
