package i18n

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed catalog/*.toml
var catalogFS embed.FS

var (
	catalogOnce   sync.Once
	catalogTables map[Locale]map[string]string
)

// catalogFile names the embedded resource for a locale; empty when the
// locale ships without a catalog of its own.
func catalogFile(locale Locale) string {
	switch locale {
	case LocaleEn:
		return "catalog/en.toml"
	case LocaleZhCN:
		return "catalog/zh-cn.toml"
	}
	return ""
}

// embeddedCatalog returns the parsed catalog for a locale. Locales without
// a catalog resolve to the English table. The returned maps are shared and
// must be treated as read-only.
func embeddedCatalog(locale Locale) map[string]string {
	catalogOnce.Do(func() {
		catalogTables = make(map[Locale]map[string]string)
		for _, loc := range []Locale{LocaleEn, LocaleZhCN} {
			table := make(map[string]string)
			if data, err := catalogFS.ReadFile(catalogFile(loc)); err == nil {
				// встроенные каталоги проверены тестами, ошибку глотаем
				_ = parseCatalog(string(data), table)
			}
			catalogTables[loc] = table
		}
	})
	if table, ok := catalogTables[locale]; ok {
		return table
	}
	return catalogTables[LocaleEn]
}

// parseCatalog flattens nested TOML tables into dotted keys, keeping only
// string leaves.
func parseCatalog(data string, dst map[string]string) error {
	var raw map[string]any
	if _, err := toml.Decode(data, &raw); err != nil {
		return err
	}
	flattenInto(dst, "", raw)
	return nil
}

func flattenInto(dst map[string]string, prefix string, table map[string]any) {
	for key, value := range table {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			dst[full] = v
		case map[string]any:
			flattenInto(dst, full, v)
		}
	}
}
