package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"

	"flint/internal/diag"
	"flint/internal/diagfmt"
)

var explainCmd = &cobra.Command{
	Use:   "explain CODE",
	Short: "Explain an error code",
	Long:  `Explain prints the description and long-form explanation of a diagnostic code like L1012`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

func runExplain(cmd *cobra.Command, args []string) error {
	raw := args[0]

	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}

	code, err := parseErrorCode(raw)
	if err != nil {
		return err
	}

	entry, ok := diag.LookupError(code)
	if !ok {
		cmd.SilenceUsage = true
		if hint := nearestCode(raw); hint != "" {
			return fmt.Errorf("unknown error code %q, did you mean %q?", raw, hint)
		}
		return fmt.Errorf("unknown error code %q", raw)
	}

	tr, err := newTranslator(cmd)
	if err != nil {
		return err
	}

	renderer := diagfmt.NewRenderer(diagfmt.StyleFor(useColor(colorMode, os.Stdout)))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", code, entry.Brief)
	if explanation := tr.ErrorExplanation(code); explanation != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderer.RenderMessage(explanation))
	}
	return nil
}

// parseErrorCode maps "L1012" or "D0001" to the typed code. The letter
// picks the category, the rest must be a number below 10000.
func parseErrorCode(s string) (diag.ErrorCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return diag.ErrorCode{}, fmt.Errorf("malformed error code %q (expected a letter and digits, like L1012)", s)
	}

	var cat diag.Category
	switch s[0] {
	case 'L':
		cat = diag.CatLexer
	case 'P':
		cat = diag.CatParser
	case 'S':
		cat = diag.CatSema
	case 'C':
		cat = diag.CatCodegen
	case 'D':
		cat = diag.CatDriver
	default:
		return diag.ErrorCode{}, fmt.Errorf("unknown error category %q (expected L, P, S, C or D)", s[:1])
	}

	n, err := strconv.ParseUint(s[1:], 10, 16)
	if err != nil || n == 0 || n > 9999 {
		return diag.ErrorCode{}, fmt.Errorf("malformed error code %q (expected a letter and digits, like L1012)", s)
	}
	return diag.NewErrorCode(cat, uint16(n)), nil
}

// nearestCode suggests the registered code closest to the input, or ""
// when nothing is close enough to be a plausible typo.
func nearestCode(input string) string {
	input = strings.ToUpper(strings.TrimSpace(input))
	best := ""
	bestDist := 3 // дальше трёх правок — не опечатка
	for _, code := range diag.GlobalRegistry().AllCodes() {
		s := code.String()
		if d := levenshtein.ComputeDistance(input, s); d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best
}
