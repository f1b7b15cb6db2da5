package render

import (
	"fmt"
	"strings"
)

// MapTranslator serves messages from an in-memory catalog keyed by locale and
// then by message key. Region specific locales fall back to their base
// language, so "es-MX" resolves against "es" when it has no entry of its own.
type MapTranslator map[string]map[string]string

// Translate implements Translator. Args are applied with fmt.Sprintf when the
// message contains verbs.
func (m MapTranslator) Translate(locale, key string, args ...any) (string, error) {
	for _, candidate := range localeChain(locale) {
		messages, ok := m[candidate]
		if !ok {
			continue
		}
		if msg, ok := messages[key]; ok {
			if len(args) > 0 && strings.Contains(msg, "%") {
				return fmt.Sprintf(msg, args...), nil
			}
			return msg, nil
		}
	}
	return "", fmt.Errorf("render: missing translation %q for locale %q", key, locale)
}

func localeChain(locale string) []string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return nil
	}
	chain := []string{locale}
	normalized := strings.ReplaceAll(locale, "_", "-")
	if idx := strings.Index(normalized, "-"); idx > 0 {
		chain = append(chain, normalized[:idx])
	}
	return chain
}
