package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies one of the catalog languages.
type Locale uint8

const (
	// LocaleEn is English, the fallback for every other locale.
	LocaleEn Locale = iota
	// LocaleZhCN is Simplified Chinese.
	LocaleZhCN
	// LocaleZhTW is Traditional Chinese.
	LocaleZhTW
	// LocaleJa is Japanese.
	LocaleJa
)

// String returns the BCP 47 tag of the locale.
func (l Locale) String() string {
	switch l {
	case LocaleZhCN:
		return "zh-CN"
	case LocaleZhTW:
		return "zh-TW"
	case LocaleJa:
		return "ja"
	}
	return "en"
}

// supportedTags mirrors the Locale constants: index equals the Locale value.
var supportedTags = []language.Tag{
	language.English,
	language.SimplifiedChinese,
	language.TraditionalChinese,
	language.Japanese,
}

var localeMatcher = language.NewMatcher(supportedTags)

// ParseLocale maps a BCP 47 or POSIX locale string ("zh-CN", "zh_CN.UTF-8",
// "en_US") to the closest supported Locale. Anything unrecognized falls
// back to English.
func ParseLocale(s string) Locale {
	s = strings.TrimSpace(s)
	// POSIX-формат: отрезаем кодировку и модификатор
	if cut := strings.IndexAny(s, ".@"); cut >= 0 {
		s = s[:cut]
	}
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" || s == "C" || s == "POSIX" {
		return LocaleEn
	}
	tag, err := language.Parse(s)
	if err != nil {
		return LocaleEn
	}
	_, index, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return LocaleEn
	}
	return Locale(index)
}
