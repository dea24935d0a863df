package i18n_test

import (
	"testing"

	"flint/internal/diag"
	"flint/internal/diag/i18n"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input string
		want  i18n.Locale
	}{
		{"en", i18n.LocaleEn},
		{"en-US", i18n.LocaleEn},
		{"en_US", i18n.LocaleEn},
		{"en_US.UTF-8", i18n.LocaleEn},
		{"zh-CN", i18n.LocaleZhCN},
		{"zh_CN", i18n.LocaleZhCN},
		{"zh_CN.UTF-8", i18n.LocaleZhCN},
		{"zh-Hans", i18n.LocaleZhCN},
		{"zh", i18n.LocaleZhCN},
		{"zh-TW", i18n.LocaleZhTW},
		{"zh-Hant", i18n.LocaleZhTW},
		{"ja", i18n.LocaleJa},
		{"ja_JP", i18n.LocaleJa},
		{"", i18n.LocaleEn},
		{"C", i18n.LocaleEn},
		{"POSIX", i18n.LocaleEn},
		{"klingon", i18n.LocaleEn},
	}
	for _, tt := range tests {
		if got := i18n.ParseLocale(tt.input); got != tt.want {
			t.Errorf("ParseLocale(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLocaleString(t *testing.T) {
	pairs := map[i18n.Locale]string{
		i18n.LocaleEn:   "en",
		i18n.LocaleZhCN: "zh-CN",
		i18n.LocaleZhTW: "zh-TW",
		i18n.LocaleJa:   "ja",
	}
	for locale, want := range pairs {
		if got := locale.String(); got != want {
			t.Errorf("Locale(%d).String() = %q, want %q", locale, got, want)
		}
	}
}

func TestTranslatorEmbeddedLookup(t *testing.T) {
	tr := i18n.NewTranslator()

	enLabel := tr.Get("lexer.unterminated_string.label")
	if enLabel == "" {
		t.Fatal("English catalog is missing lexer.unterminated_string.label")
	}

	tr.SetLocale(i18n.LocaleZhCN)
	zhLabel := tr.Get("lexer.unterminated_string.label")
	if zhLabel == "" {
		t.Fatal("Chinese catalog is missing lexer.unterminated_string.label")
	}
	if zhLabel == enLabel {
		t.Errorf("zh-CN label %q did not change from English", zhLabel)
	}
}

func TestTranslatorFallbackToEnglish(t *testing.T) {
	tr := i18n.NewTranslator()
	enHelp := tr.Get("lexer.invalid_character.help")

	// У японской локали нет собственного каталога.
	tr.SetLocale(i18n.LocaleJa)
	if got := tr.Get("lexer.invalid_character.help"); got != enHelp {
		t.Errorf("LocaleJa lookup = %q, want English fallback %q", got, enHelp)
	}
}

func TestTranslatorUnknownKey(t *testing.T) {
	tr := i18n.NewTranslator()
	if got := tr.Get("no.such.key"); got != "" {
		t.Errorf("Get(unknown) = %q, want empty", got)
	}
	if got := tr.GetOr("no.such.key", "fallback text"); got != "fallback text" {
		t.Errorf("GetOr(unknown) = %q, want fallback", got)
	}
}

func TestTranslatorFormatPlaceholders(t *testing.T) {
	tr := i18n.NewTranslator()
	if err := tr.LoadString(`greeting = "token {0} at offset {1}, again {0}"`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	got := tr.Format("greeting", "IDENT", 42)
	want := "token IDENT at offset 42, again IDENT"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	// Неизвестный ключ возвращается как есть.
	if got := tr.Format("missing.key", 1); got != "missing.key" {
		t.Errorf("Format(missing) = %q, want the key back", got)
	}
}

func TestTranslatorLoadStringOverrides(t *testing.T) {
	tr := i18n.NewTranslator()
	if err := tr.LoadString("[lexer.invalid_character]\nlabel = \"custom label\""); err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	if got := tr.Get("lexer.invalid_character.label"); got != "custom label" {
		t.Errorf("override lost: Get() = %q", got)
	}

	// Локаль меняется, переопределение остаётся.
	tr.SetLocale(i18n.LocaleZhCN)
	if got := tr.Get("lexer.invalid_character.label"); got != "custom label" {
		t.Errorf("override lost after SetLocale: Get() = %q", got)
	}
}

func TestTranslatorLoadStringRejectsBadTOML(t *testing.T) {
	tr := i18n.NewTranslator()
	if err := tr.LoadString("not = valid = toml"); err == nil {
		t.Error("LoadString accepted malformed TOML")
	}
}

func TestScopedLocaleRestores(t *testing.T) {
	tr := i18n.NewTranslator()

	restore := tr.ScopedLocale(i18n.LocaleZhCN)
	if got := tr.CurrentLocale(); got != i18n.LocaleZhCN {
		t.Errorf("inside scope: locale = %v, want LocaleZhCN", got)
	}

	inner := tr.ScopedLocale(i18n.LocaleEn)
	if got := tr.CurrentLocale(); got != i18n.LocaleEn {
		t.Errorf("inside nested scope: locale = %v, want LocaleEn", got)
	}
	inner()
	if got := tr.CurrentLocale(); got != i18n.LocaleZhCN {
		t.Errorf("after nested restore: locale = %v, want LocaleZhCN", got)
	}

	restore()
	if got := tr.CurrentLocale(); got != i18n.LocaleEn {
		t.Errorf("after restore: locale = %v, want LocaleEn", got)
	}
}

func TestTranslatorErrorBriefAndExplanation(t *testing.T) {
	code := diag.NewErrorCode(diag.CatLexer, 1012)
	diag.RegisterError(code, "unterminated string literal", "lexer.unterminated_string.explanation")

	tr := i18n.NewTranslator()
	if got := tr.ErrorBrief(code); got != "unterminated string literal" {
		t.Errorf("ErrorBrief() = %q", got)
	}
	if got := tr.ErrorExplanation(code); got == "" {
		t.Error("ErrorExplanation() empty for a registered code with a catalog entry")
	}

	unknown := diag.NewErrorCode(diag.CatLexer, 999)
	if got := tr.ErrorBrief(unknown); got != "" {
		t.Errorf("ErrorBrief(unknown) = %q, want empty", got)
	}
	if got := tr.ErrorExplanation(unknown); got != "" {
		t.Errorf("ErrorExplanation(unknown) = %q, want empty", got)
	}
}
