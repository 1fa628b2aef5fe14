// Package lintfmt renders lint violations for humans and machines.
//
// The canonical pipeline is Sort → Group → Render:
//
//   - lint.Sort orders violations by path, line and column (stable).
//   - Group walks the sorted slice once and builds an ordered path → FileGroup
//     mapping together with warning/error/fixable counts.
//   - Grouped renders the per-file details block and the summary block.
//
// Format wires the three steps together and is the entry point used by the
// CLI. Short, JSON and Markdown are alternate formatters sharing the same
// data model; Lookup resolves a formatter by name.
//
// Formatters never read or write files. The absolute and relative path
// modes resolve against Options.BaseDir and consult the working directory
// only when it is empty. Every call builds its own state, so formatters are
// safe for concurrent use.
package lintfmt
