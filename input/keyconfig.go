package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// keySections binds each config section to the KeyTable map it fills
var keySections = map[string]func(kt *KeyTable, section string, data map[string]string) error{
	"menu":      runeBinder(func(kt *KeyTable) *map[rune]KeyEntry { return &kt.MenuRunes }),
	"game":      runeBinder(func(kt *KeyTable) *map[rune]KeyEntry { return &kt.GameRunes }),
	"menu_keys": keyBinder(func(kt *KeyTable) *map[tcell.Key]KeyEntry { return &kt.MenuKeys }),
	"game_keys": keyBinder(func(kt *KeyTable) *map[tcell.Key]KeyEntry { return &kt.GameKeys }),
	"text_keys": keyBinder(func(kt *KeyTable) *map[tcell.Key]KeyEntry { return &kt.TextKeys }),
}

func runeBinder(field func(*KeyTable) *map[rune]KeyEntry) func(*KeyTable, string, map[string]string) error {
	return func(kt *KeyTable, section string, data map[string]string) error {
		m, err := parseSection(section, data, resolveRune)
		*field(kt) = m
		return err
	}
}

func keyBinder(field func(*KeyTable) *map[tcell.Key]KeyEntry) func(*KeyTable, string, map[string]string) error {
	return func(kt *KeyTable, section string, data map[string]string) error {
		m, err := parseSection(section, data, resolveKeyName)
		*field(kt) = m
		return err
	}
}

// keyByName resolves tcell key names ("Enter", "F5", "Ctrl-U"), case-insensitive
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig builds a sparse override KeyTable from config sections
// Only sections present are populated; unknown sections, keys or actions are errors
func LoadKeyConfig(sections map[string]map[string]string) (*KeyTable, error) {
	kt := &KeyTable{}
	for name, data := range sections {
		bind, ok := keySections[name]
		if !ok {
			return nil, fmt.Errorf("keymap: unknown section %q", name)
		}
		if err := bind(kt, name, data); err != nil {
			return nil, err
		}
	}
	return kt, nil
}

// parseSection maps each key string through resolve and each value to an action
func parseSection[K comparable](section string, data map[string]string, resolve func(string) (K, error)) (map[K]KeyEntry, error) {
	out := make(map[K]KeyEntry, len(data))
	for keyStr, actionName := range data {
		k, err := resolve(keyStr)
		if err != nil {
			return nil, fmt.Errorf("keymap [%s]: %w", section, err)
		}
		entry, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("keymap [%s] key %q: %w", section, keyStr, err)
		}
		out[k] = entry
	}
	return out, nil
}

func resolveKeyName(s string) (tcell.Key, error) {
	k, ok := keyByName[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown key name %q", s)
	}
	return k, nil
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns base with override maps applied
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()

	result.MenuRunes = mergeMap(result.MenuRunes, override.MenuRunes)
	result.GameRunes = mergeMap(result.GameRunes, override.GameRunes)

	result.MenuKeys = mergeMap(result.MenuKeys, override.MenuKeys)
	result.GameKeys = mergeMap(result.GameKeys, override.GameKeys)
	result.TextKeys = mergeMap(result.TextKeys, override.TextKeys)

	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) map[K]KeyEntry {
	if override == nil {
		return base
	}
	if base == nil {
		base = make(map[K]KeyEntry, len(override))
	}
	for k, v := range override {
		if v.Intent == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
	return base
}
