// Package i18n holds the gettext catalogs for the player-facing strings of the
// breach screen. Catalogs are embedded; keys are uppercase identifiers and a
// missing translation falls back to the key itself.
package i18n

import (
	"embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var locales embed.FS

// DefaultLocale is used when no locale is set or the requested one is unknown.
const DefaultLocale = "en"

var (
	mu      sync.RWMutex
	current *gotext.Po
	catalog = map[string]*gotext.Po{}
)

func init() {
	if err := SetLocale(DefaultLocale); err != nil {
		panic(err)
	}
}

// Locales returns the names of the embedded catalogs.
func Locales() []string {
	entries, _ := locales.ReadDir("locales")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		names = append(names, name[:len(name)-len(".po")])
	}
	return names
}

// SetLocale switches the active catalog.
func SetLocale(locale string) error {
	mu.Lock()
	defer mu.Unlock()

	if po, ok := catalog[locale]; ok {
		current = po
		return nil
	}

	data, err := locales.ReadFile("locales/" + locale + ".po")
	if err != nil {
		return fmt.Errorf("i18n: unknown locale %q: %w", locale, err)
	}
	po := gotext.NewPo()
	po.Parse(data)
	catalog[locale] = po
	current = po
	return nil
}

// Get returns the translation of key. Entries with verbs such as %d are
// formatted by the caller: fmt.Sprintf(i18n.Get("SCORE"), n).
func Get(key string) string {
	mu.RLock()
	po := current
	mu.RUnlock()
	return po.Get(key)
}
