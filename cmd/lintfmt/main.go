package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lintfmt/internal/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lintfmt",
		Short: "Render lint reports as grouped, colored terminal output",
		Long: `lintfmt reads violation reports produced by a linter (JSON, YAML or msgpack)
and prints them grouped by file with a warning/error summary.`,
		Version: version.Current().Version,
	}

	root.AddCommand(newFormatCmd())
	root.AddCommand(newVersionCmd())

	// глобальные флаги
	flags := root.PersistentFlags()
	flags.String("color", "", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "report errors only")
	flags.Bool("timings", false, "show timing information")
	flags.String("config", "", "config file (default: nearest .lintfmt.toml)")
	flags.String("ui", "auto", "progress UI while loading reports (auto|on|off)")
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	flags.String("trace-format", "auto", "trace event format (auto|text|ndjson)")
	flags.Int("trace-ring-size", 0, "events kept in ring mode (0=default)")
	flags.String("cpu-profile", "", "write a CPU profile to file")
	flags.String("mem-profile", "", "write a heap profile to file on exit")
	flags.String("runtime-trace", "", "write a Go runtime trace to file")

	return root
}

// main runs the root command and exits with status 1 on any error,
// including a report that contains errors.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
