package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"flint/internal/diag"
	"flint/internal/diagfmt"
	"flint/internal/driver"
	"flint/internal/observ"
)

var lexCmd = &cobra.Command{
	Use:   "lex [flags] file.fl...",
	Short: "Tokenize flint source files",
	Long:  `Lex breaks flint source files into tokens and reports lexical diagnostics`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLex,
}

func init() {
	lexCmd.Flags().String("format", "text", "token dump format (text|json)")
	lexCmd.Flags().Bool("trivia", false, "preserve whitespace and comment trivia")
	lexCmd.Flags().String("output", "", "write the token dump to a file instead of stdout")
	lexCmd.Flags().Bool("json-diagnostics", false, "emit diagnostics as JSON on stderr")
	lexCmd.Flags().Bool("werror", false, "treat warnings as errors")
	lexCmd.Flags().Int("max-errors", 0, "stop emitting after N errors (0 = unlimited)")
	lexCmd.Flags().Bool("no-dedup", false, "keep repeated diagnostics instead of dropping them")
	lexCmd.Flags().String("ui", "auto", "live progress for multi-file runs (auto|on|off)")
	lexCmd.Flags().Bool("cache", false, "reuse cached token streams for clean files")
	lexCmd.Flags().Int("jobs", 0, "number of concurrent lexers (0 = GOMAXPROCS)")
}

type lexFlags struct {
	format    string
	trivia    bool
	output    string
	jsonDiags bool
	werror    bool
	maxErrors int
	noDedup   bool
	ui        uiMode
	cache     bool
	jobs      int

	colorMode string
	quiet     bool
	timings   bool
	maxDiags  int
}

func readLexFlags(cmd *cobra.Command) (lexFlags, error) {
	var f lexFlags
	var err error

	flags := cmd.Flags()
	if f.format, err = flags.GetString("format"); err != nil {
		return f, err
	}
	switch f.format {
	case "text", "json":
		// supported
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	if f.trivia, err = flags.GetBool("trivia"); err != nil {
		return f, err
	}
	if f.output, err = flags.GetString("output"); err != nil {
		return f, err
	}
	if f.jsonDiags, err = flags.GetBool("json-diagnostics"); err != nil {
		return f, err
	}
	if f.werror, err = flags.GetBool("werror"); err != nil {
		return f, err
	}
	if f.maxErrors, err = flags.GetInt("max-errors"); err != nil {
		return f, err
	}
	if f.noDedup, err = flags.GetBool("no-dedup"); err != nil {
		return f, err
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return f, err
	}
	if f.ui, err = readUIMode(uiValue); err != nil {
		return f, err
	}
	if f.cache, err = flags.GetBool("cache"); err != nil {
		return f, err
	}
	if f.jobs, err = flags.GetInt("jobs"); err != nil {
		return f, err
	}

	persistent := cmd.Root().PersistentFlags()
	if f.colorMode, err = persistent.GetString("color"); err != nil {
		return f, err
	}
	if f.quiet, err = persistent.GetBool("quiet"); err != nil {
		return f, err
	}
	if f.timings, err = persistent.GetBool("timings"); err != nil {
		return f, err
	}
	if f.maxDiags, err = persistent.GetInt("max-diagnostics"); err != nil {
		return f, err
	}
	return f, nil
}

func runLex(cmd *cobra.Command, args []string) error {
	flags, err := readLexFlags(cmd)
	if err != nil {
		return err
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	tr, err := newTranslator(cmd)
	if err != nil {
		return err
	}

	colorDiags := useColor(flags.colorMode, os.Stderr)
	var emitter diag.Emitter
	if flags.jsonDiags {
		emitter = diagfmt.NewJSONEmitter(os.Stderr, false)
	} else {
		emitter = diagfmt.NewTextEmitter(os.Stderr, diagfmt.StyleFor(colorDiags))
	}

	cfg := diag.Config{
		Deduplicate:           !flags.noDedup,
		MaxErrors:             flags.maxErrors,
		TreatWarningsAsErrors: flags.werror,
		ColorOutput:           colorDiags,
	}
	// --max-errors имеет приоритет над глобальным --max-diagnostics
	if cfg.MaxErrors == 0 && flags.maxDiags > 0 {
		cfg.MaxErrors = flags.maxDiags
	}
	dcx := diag.NewContext(emitter, cfg)

	opts := driver.FilesOptions{Jobs: flags.jobs}
	opts.PreserveTrivia = flags.trivia
	if flags.cache {
		cache, cacheErr := driver.OpenTokenCache("flint")
		if cacheErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "flint: token cache disabled: %v\n", cacheErr)
		} else {
			opts.Cache = cache
		}
	}

	timer := observ.NewTimer()

	lexPhase := timer.Begin("lex")
	var results []driver.FileResult
	if len(args) > 1 && !flags.jsonDiags && shouldUseTUI(flags.ui) {
		results, err = runLexWithUI(cmd.Context(), "lexing", args, opts)
	} else {
		results, err = driver.RunOnFiles(cmd.Context(), args, opts)
	}
	timer.End(lexPhase, fmt.Sprintf("%d file(s)", len(args)))
	if err != nil {
		return fmt.Errorf("lexing failed: %w", err)
	}

	reportPhase := timer.Begin("report")
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "flint: %s: %v\n", res.Path, res.Err)
			continue
		}
		res.Result.Report(dcx, tr)
	}
	timer.End(reportPhase, "")

	emitPhase := timer.Begin("emit")
	if !flags.quiet {
		if dumpErr := dumpTokens(results, flags); dumpErr != nil {
			return dumpErr
		}
	}
	timer.End(emitPhase, "")

	dcx.EmitSummary()
	if flushErr := dcx.Flush(); flushErr != nil {
		return fmt.Errorf("failed to flush diagnostics: %w", flushErr)
	}

	if flags.timings && !flags.quiet {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}

	if failed > 0 || dcx.HasErrors() {
		// сводка уже напечатана, cobra не должна дублировать ошибку
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return errors.New("lexing reported errors")
	}
	return nil
}

// dumpTokens writes the token streams of every successfully lexed file
// to stdout or the --output target, in input order.
func dumpTokens(results []driver.FileResult, flags lexFlags) error {
	var out io.Writer = os.Stdout
	if flags.output != "" {
		f, err := os.Create(flags.output)
		if err != nil {
			return fmt.Errorf("failed to open output file: %w", err)
		}
		defer f.Close() //nolint:errcheck // явный Close ниже решает
		out = f
	}

	for _, res := range results {
		if res.Err != nil {
			continue
		}
		switch flags.format {
		case "json":
			pretty := flags.output == "" && isTerminal(os.Stdout)
			if err := diagfmt.FormatTokensJSON(out, res.Result.Tokens, res.Result.Manager, pretty); err != nil {
				return err
			}
		default:
			if err := diagfmt.FormatTokensText(out, res.Result.Tokens, res.Result.Manager); err != nil {
				return err
			}
		}
	}

	if f, ok := out.(*os.File); ok && f != os.Stdout {
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to finish output file: %w", err)
		}
	}
	return nil
}
