// # xrefstrip
//
// `xrefstrip` works around a docfx limitation: `<see cref="..."/>` tags that
// point into external dependency namespaces fail to resolve, and docfx turns
// each one into a broken link instead of keeping the text. This tool runs
// before docs generation and rewrites every such tag into its bare qualified
// identifier, in place, so the prose survives generation intact.
//
// Only tags whose qualifier is on a small allow-list of external namespace
// prefixes are rewritten (by default `SadRogue` and `Troschuetz`). Tags that
// docfx can resolve — `System.*`, the library's own namespaces — are left
// byte-for-byte alone.
//
// The rewrite is intentionally destructive. The expected workflow is:
//
//  1. Commit and push everything.
//  2. Run `xrefstrip` against the source tree (it asks for confirmation).
//  3. Generate the docs.
//  4. `git checkout -- .` to restore the sources.
//
// ## Usage
//
//	xrefstrip [flags] [root]
//
// `root` defaults to `../GoRogue`, the layout this tool grew up in; pass any
// directory to rewrite a different tree.
//
// Examples:
//
//   - Preview which files a run would change:
//
//     xrefstrip --dry-run ./src
//
//   - Rewrite without the interactive prompt (CI):
//
//     xrefstrip --yes ./src
//
//   - Strip a different namespace from F# sources under one subtree only:
//
//     xrefstrip --ext .fs --prefix MyDep --include 'Core/**' ./src
//
// ## Flags
//
//   - `--ext`: file suffix to rewrite (default `.cs`).
//   - `--prefix`: namespace prefix to strip; repeatable, replaces the default
//     allow-list when given.
//   - `--include`: doublestar glob relative to root; when given, a file must
//     match one in addition to the suffix filter. Repeatable.
//   - `-n, --dry-run`: list the relative paths of files that would change and
//     exit without touching anything (no prompt).
//   - `-y, --yes`: skip the confirmation prompt.
//   - `-v, --verbose`: report each rewritten file on stderr.
//   - `--config`: explicit config file; without it, `.xrefstrip.yaml` under
//     root is loaded when present.
//
// ## Configuration
//
// A `.xrefstrip.yaml` next to the tree can pin the rewrite settings so every
// invocation (and CI) agrees:
//
//	extension: .cs
//	prefixes:
//	  - SadRogue
//	  - Troschuetz
//	include:
//	  - "GoRogue/**"
//
// Flags override the file, which overrides the built-in defaults.
//
// ## Failure model
//
// Any read, write, or decode failure aborts the whole run immediately. There
// is no per-file error isolation and no rollback: the tool assumes a clean
// version-controlled tree and a single supervised run, so the recovery story
// is `git checkout`, not retry logic. Files that contain no matching tags are
// never reopened for writing.
//
// ## Shell completion and CLI docs
//
// Completion scripts come from Cobra's generators:
//
//	xrefstrip completion bash
//	xrefstrip completion zsh
//	xrefstrip completion fish | source
//	xrefstrip completion powershell | Out-String | Invoke-Expression
//
// `xrefstrip gen-docs ./docs/cli` writes one Markdown reference file per
// command.
package main
