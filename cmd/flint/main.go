package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"flint/internal/diag/i18n"
	"flint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "flint",
	Short: "Flint language front end",
	Long:  `Flint tokenizes .fl sources and explains the diagnostics it reports`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("locale", "", "override the message locale (en, zh-CN)")
	rootCmd.PersistentFlags().String("locale-file", "", "layer a TOML catalog over the embedded messages")
	rootCmd.PersistentFlags().String("trace", "", "trace output path (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace detail (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring|both)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 4096, "ring buffer capacity in events")
	rootCmd.PersistentFlags().Duration("trace-heartbeat", 0, "heartbeat interval (0 disables)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// newTranslator builds the message translator from the global --locale
// and --locale-file flags.
func newTranslator(cmd *cobra.Command) (*i18n.Translator, error) {
	persistent := cmd.Root().PersistentFlags()
	locale, err := persistent.GetString("locale")
	if err != nil {
		return nil, fmt.Errorf("failed to get locale flag: %w", err)
	}
	localeFile, err := persistent.GetString("locale-file")
	if err != nil {
		return nil, fmt.Errorf("failed to get locale-file flag: %w", err)
	}

	tr := i18n.NewTranslator()
	if locale != "" {
		tr.SetLocale(i18n.ParseLocale(locale))
	}
	if localeFile != "" {
		if err := tr.LoadFile(localeFile); err != nil {
			return nil, fmt.Errorf("failed to load locale file: %w", err)
		}
	}
	return tr, nil
}

// useColor resolves the tri-state --color flag against the stream the
// output actually goes to.
func useColor(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
