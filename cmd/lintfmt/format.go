package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lintfmt/internal/config"
	"lintfmt/internal/lint"
	"lintfmt/internal/lintfmt"
	"lintfmt/internal/observ"
	"lintfmt/internal/report"
	"lintfmt/internal/style"
	"lintfmt/internal/trace"
)

// errLintFailed is returned after the report has been printed, so cobra
// only sets the exit status.
var errLintFailed = errors.New("lint failed")

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [flags] [report...]",
		Short: "Format one or more lint reports",
		Long: `Read lint reports and print them grouped by file with a summary.
Without arguments the report is read from stdin; "-" also selects stdin.
The command exits with status 1 when any error is reported.`,
		RunE: runFormat,
	}

	flags := cmd.Flags()
	flags.String("format", "", "output format ("+strings.Join(lintfmt.Names(), "|")+")")
	flags.String("symbols", "", "status symbols (unicode|ascii)")
	flags.String("theme", "", "color theme (ansi|lipgloss)")
	flags.String("path-mode", "", "how file headers show paths (as-is|absolute|relative|basename|auto)")
	flags.String("tag", "", "line prefix for the short format")
	flags.String("input-format", "", "report encoding (auto|json|yaml|msgpack)")
	flags.Int("jobs", 0, "max parallel report readers (0=auto)")
	flags.Bool("dedup", false, "drop identical violations reported more than once")
	flags.Int("max-warnings", -1, "fail when more warnings are reported (-1 disables)")
	flags.StringP("output", "o", "", "write the result to a file instead of stdout")
	return cmd
}

// formatSettings is the merged view of config file and flags.
type formatSettings struct {
	format      string
	color       style.ColorMode
	symbols     style.Symbols
	theme       style.Theme
	pathMode    lintfmt.PathMode
	tag         string
	codec       report.Codec
	jobs        int
	dedup       bool
	maxWarnings int
	output      string
	quiet       bool
	timings     bool
	ui          uiMode
}

func runFormat(cmd *cobra.Command, args []string) error {
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	tracer := trace.FromContext(ctx)
	root := trace.Begin(tracer, trace.ScopeDriver, "format", 0)
	defer root.End("")
	ctx = trace.WithSpan(ctx, root)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	settings, err := resolveSettings(cmd, cfg)
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		trace.Point(tracer, trace.ScopeStage, "config", cfg.Path)
	}

	files := args
	if len(files) == 0 {
		files = []string{report.StdinName}
	}

	timer := observ.NewTimer()
	loadOpts := report.LoadOptions{
		Codec: settings.codec,
		Jobs:  settings.jobs,
		Dedup: settings.dedup,
		Stdin: cmd.InOrStdin(),
	}

	phase := timer.Begin("load")
	var bag *lint.Bag
	if shouldUseTUI(settings.ui, len(files)) {
		bag, err = loadWithUI(ctx, files, loadOpts)
	} else {
		bag, err = report.LoadFiles(ctx, files, loadOpts)
	}
	if err != nil {
		dumpRing(tracer, cmd.ErrOrStderr())
		return err
	}
	timer.End(phase, fmt.Sprintf("%d files, %d violations", len(files), bag.Len()))

	violations := bag.Items()
	warnings, errs := countSeverities(violations)
	if settings.quiet {
		violations = errorsOnly(violations)
	}

	// Color auto-detection targets stdout; a file written with -o is never a
	// terminal.
	useColor := settings.color == style.ColorOn
	if settings.output == "" {
		useColor = shouldColor(settings.color, cmd.OutOrStdout())
	}
	var baseDir string
	if wd, err := os.Getwd(); err == nil {
		baseDir = wd
	}

	phase = timer.Begin("format")
	span := trace.Begin(tracer, trace.ScopeStage, "render", root.ID())
	formatter, err := lintfmt.Lookup(settings.format, lintfmt.Options{
		Styler:   style.New(settings.theme, useColor),
		Symbols:  settings.symbols,
		PathMode: settings.pathMode,
		BaseDir:  baseDir,
		Tag:      settings.tag,
	})
	if err != nil {
		span.End("error")
		return err
	}
	text, err := formatter.Format(violations)
	span.WithExtra("format", settings.format).WithExtra("bytes", strconv.Itoa(len(text))).End("")
	if err != nil {
		trace.Error(tracer, "render", err)
		dumpRing(tracer, cmd.ErrOrStderr())
		return err
	}
	timer.End(phase, settings.format)

	phase = timer.Begin("write")
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if err := writeOutput(cmd.OutOrStdout(), settings.output, text); err != nil {
		return err
	}
	timer.End(phase, "")

	if settings.timings {
		if err := timer.WriteSummary(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	if reason := failureReason(warnings, errs, settings.maxWarnings); reason != "" {
		root.WithExtra("exit", reason)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		if settings.maxWarnings >= 0 && errs == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), reason)
		}
		return errLintFailed
	}
	return nil
}

// writeOutput writes text to stdout, or replaces the file at path. The file
// is only touched once the report has rendered.
func writeOutput(stdout io.Writer, path, text string) error {
	if path == "" {
		if _, err := io.WriteString(stdout, text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0o666); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

// resolveSettings overlays explicitly set flags on top of cfg.
func resolveSettings(cmd *cobra.Command, cfg config.Config) (formatSettings, error) {
	flags := cmd.Flags()
	pick := func(name, fromConfig string) (string, error) {
		if !flags.Changed(name) {
			return fromConfig, nil
		}
		v, err := flags.GetString(name)
		if err != nil {
			return "", fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		return v, nil
	}

	var (
		s   formatSettings
		err error
	)
	if s.format, err = pick("format", cfg.Output.Format); err != nil {
		return s, err
	}
	if s.tag, err = pick("tag", cfg.Output.Tag); err != nil {
		return s, err
	}

	colorStr, err := pick("color", cfg.Output.Color)
	if err != nil {
		return s, err
	}
	if s.color, err = readColorMode(colorStr); err != nil {
		return s, err
	}

	symbolsStr, err := pick("symbols", cfg.Output.Symbols)
	if err != nil {
		return s, err
	}
	if s.symbols, err = style.ParseSymbols(symbolsStr); err != nil {
		return s, err
	}

	themeStr, err := pick("theme", cfg.Output.Theme)
	if err != nil {
		return s, err
	}
	if s.theme, err = style.ParseTheme(themeStr); err != nil {
		return s, err
	}

	pathModeStr, err := pick("path-mode", cfg.Output.PathMode)
	if err != nil {
		return s, err
	}
	if s.pathMode, err = lintfmt.ParsePathMode(pathModeStr); err != nil {
		return s, err
	}

	codecStr, err := pick("input-format", cfg.Input.Format)
	if err != nil {
		return s, err
	}
	if s.codec, err = report.ParseCodec(codecStr); err != nil {
		return s, err
	}

	uiStr, err := flags.GetString("ui")
	if err != nil {
		return s, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if s.ui, err = readUIMode(uiStr); err != nil {
		return s, err
	}

	s.jobs = cfg.Input.Jobs
	if flags.Changed("jobs") {
		if s.jobs, err = flags.GetInt("jobs"); err != nil {
			return s, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if s.jobs < 0 {
		return s, fmt.Errorf("--jobs must not be negative")
	}
	s.maxWarnings = cfg.Output.MaxWarnings
	if flags.Changed("max-warnings") {
		if s.maxWarnings, err = flags.GetInt("max-warnings"); err != nil {
			return s, fmt.Errorf("failed to get max-warnings flag: %w", err)
		}
	}
	s.dedup = cfg.Input.Dedup
	if flags.Changed("dedup") {
		if s.dedup, err = flags.GetBool("dedup"); err != nil {
			return s, fmt.Errorf("failed to get dedup flag: %w", err)
		}
	}
	if s.output, err = flags.GetString("output"); err != nil {
		return s, fmt.Errorf("failed to get output flag: %w", err)
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return s, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}

	if _, err := lintfmt.Lookup(s.format, lintfmt.Options{}); err != nil {
		return s, err
	}
	return s, nil
}

func countSeverities(vs []lint.Violation) (warnings, errs int) {
	for i := range vs {
		switch vs[i].Severity {
		case lint.SevWarning:
			warnings++
		case lint.SevError:
			errs++
		}
	}
	return warnings, errs
}

func errorsOnly(vs []lint.Violation) []lint.Violation {
	out := make([]lint.Violation, 0, len(vs))
	for _, v := range vs {
		if v.Severity == lint.SevError {
			out = append(out, v)
		}
	}
	return out
}

// failureReason returns why the run should exit non-zero, or "".
func failureReason(warnings, errs, maxWarnings int) string {
	if errs > 0 {
		return fmt.Sprintf("errors reported: %d", errs)
	}
	if maxWarnings >= 0 && warnings > maxWarnings {
		return fmt.Sprintf("too many warnings (%d); maximum allowed is %d", warnings, maxWarnings)
	}
	return ""
}
