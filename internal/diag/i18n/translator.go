// Package i18n resolves flat dotted keys ("lexer.unterminated_string.help")
// to localized text. Catalogs are TOML files embedded at build time, one
// per locale, with English as the universal fallback; external files can be
// layered on top for overrides. Error briefs stay English by design, only
// labels, help lines and long explanations are translated.
package i18n

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"flint/internal/diag"
)

// Translator is a thread-safe view over the catalogs: per-key lookup order
// is explicit overrides, then the current locale's catalog, then English.
type Translator struct {
	mu        sync.Mutex
	locale    Locale
	base      map[string]string // embedded catalog of the current locale, read-only
	fallback  map[string]string // embedded English catalog, read-only
	overrides map[string]string // layered via LoadFile/LoadString
}

// NewTranslator returns a translator set to English.
func NewTranslator() *Translator {
	en := embeddedCatalog(LocaleEn)
	return &Translator{locale: LocaleEn, base: en, fallback: en}
}

// SetLocale switches the active catalog. Overrides loaded earlier survive
// the switch.
func (t *Translator) SetLocale(locale Locale) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.locale = locale
	t.base = embeddedCatalog(locale)
}

// CurrentLocale returns the active locale.
func (t *Translator) CurrentLocale() Locale {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.locale
}

// ScopedLocale switches to a temporary locale and returns the function that
// restores the previous one. Meant for defer:
//
//	defer tr.ScopedLocale(i18n.LocaleZhCN)()
func (t *Translator) ScopedLocale(locale Locale) func() {
	prev := t.CurrentLocale()
	t.SetLocale(locale)
	return func() { t.SetLocale(prev) }
}

// LoadFile layers an external TOML catalog over the embedded ones.
func (t *Translator) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", path, err)
	}
	if err := t.LoadString(string(data)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadString layers translations parsed from a TOML document.
func (t *Translator) LoadString(data string) error {
	parsed := make(map[string]string)
	var raw map[string]any
	if _, err := toml.Decode(data, &raw); err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}
	flattenInto(parsed, "", raw)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.overrides == nil {
		t.overrides = make(map[string]string, len(parsed))
	}
	for k, v := range parsed {
		t.overrides[k] = v
	}
	return nil
}

// Get returns the translation for a key, or the empty string when no
// catalog knows it.
func (t *Translator) Get(key string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.overrides[key]; ok {
		return v
	}
	if v, ok := t.base[key]; ok {
		return v
	}
	return t.fallback[key]
}

// GetOr returns the translation for a key, or fallback when missing.
func (t *Translator) GetOr(key, fallback string) string {
	if v := t.Get(key); v != "" {
		return v
	}
	return fallback
}

// Format resolves a key and substitutes {0}, {1}, ... placeholders with the
// stringified arguments. An unknown key returns the key itself so broken
// catalogs stay diagnosable.
func (t *Translator) Format(key string, args ...any) string {
	tmpl := t.Get(key)
	if tmpl == "" {
		return key
	}
	return formatPlaceholders(tmpl, args...)
}

// ErrorBrief returns the registered one-line English description of a code.
func (t *Translator) ErrorBrief(code diag.ErrorCode) string {
	entry, ok := diag.LookupError(code)
	if !ok {
		return ""
	}
	return entry.Brief
}

// ErrorExplanation returns the localized long-form explanation of a code,
// or the empty string when the code is unknown or has no explanation.
func (t *Translator) ErrorExplanation(code diag.ErrorCode) string {
	entry, ok := diag.LookupError(code)
	if !ok || entry.ExplanationKey == "" {
		return ""
	}
	return t.Get(entry.ExplanationKey)
}

func formatPlaceholders(tmpl string, args ...any) string {
	result := tmpl
	for i, arg := range args {
		placeholder := "{" + strconv.Itoa(i) + "}"
		result = strings.ReplaceAll(result, placeholder, fmt.Sprint(arg))
	}
	return result
}
