// Package prompts serves LLM prompt templates from JSON files embedded at
// build time. Each file maps prompt keys to template strings with {{.Key}}
// placeholders.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var promptFS embed.FS

var (
	mu     sync.RWMutex
	parsed = map[string]map[string]string{}
)

// Get returns the template stored under key in the named file. The filename
// is bare, e.g. "generation.json".
func Get(filename, key string) (string, error) {
	table, err := load(filename)
	if err != nil {
		return "", err
	}
	tmpl, ok := table[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return tmpl, nil
}

// MustGet is Get for prompts the program cannot run without; it panics on
// any lookup failure.
func MustGet(filename, key string) string {
	tmpl, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return tmpl
}

// Format substitutes {{.Key}} placeholders with values from data.
// Placeholders without a matching key are left in place.
func Format(template string, data map[string]string) string {
	if len(data) == 0 {
		return template
	}
	pairs := make([]string, 0, len(data)*2)
	for key, value := range data {
		pairs = append(pairs, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// List returns the prompt keys in the named file, sorted.
func List(filename string) ([]string, error) {
	table, err := load(filename)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// ClearCache drops all parsed prompt tables. Useful for testing.
func ClearCache() {
	mu.Lock()
	parsed = map[string]map[string]string{}
	mu.Unlock()
}

func load(filename string) (map[string]string, error) {
	mu.RLock()
	table, ok := parsed[filename]
	mu.RUnlock()
	if ok {
		return table, nil
	}

	raw, err := promptFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	mu.Lock()
	parsed[filename] = table
	mu.Unlock()
	return table, nil
}
