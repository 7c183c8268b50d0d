package config

import (
	"log"
	"sort"
)

// TextTable maps dialogue keys to display strings
type TextTable struct {
	entries map[string]string
	missing map[string]bool
}

// NewTextTable creates a table from key/text pairs
func NewTextTable(entries map[string]string) *TextTable {
	if entries == nil {
		entries = make(map[string]string)
	}
	return &TextTable{
		entries: entries,
		missing: make(map[string]bool),
	}
}

// Get returns the text for key. Unknown keys come back as "<key>" so a
// typo shows up on screen instead of an empty box.
func (t *TextTable) Get(key string) string {
	if s, ok := t.entries[key]; ok {
		return s
	}
	if !t.missing[key] {
		t.missing[key] = true
		log.Printf("text: missing key %q", key)
	}
	return "<" + key + ">"
}

// Has reports whether key is defined
func (t *TextTable) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Keys returns the defined keys in sorted order
func (t *TextTable) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
