// Package template parses question templates with {name} placeholders and extracts slot values
// from user input aligned against them.
package template

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderRegex = regexp.MustCompile(`\{([^{}\t\r\n]+)\}`)

// Template is a parsed question template.
type Template struct {
	raw     string
	slots   []string
	pattern *regexp.Regexp
}

// Parse compiles a template. Each placeholder becomes a greedy capture group; the
// surrounding text must match literally. The match is not anchored.
func Parse(raw string) (Template, error) {
	locs := placeholderRegex.FindAllStringSubmatchIndex(raw, -1)
	if len(locs) == 0 {
		return Template{raw: raw}, nil
	}

	var b strings.Builder
	slots := make([]string, 0, len(locs))
	prev := 0
	for _, loc := range locs {
		b.WriteString(regexp.QuoteMeta(raw[prev:loc[0]]))
		b.WriteString("(.+)")
		slots = append(slots, raw[loc[2]:loc[3]])
		prev = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(raw[prev:]))

	re, err := regexp.Compile(b.String())
	if err != nil {
		return Template{}, fmt.Errorf("compile template %q: %w", raw, err)
	}
	return Template{raw: raw, slots: slots, pattern: re}, nil
}

// Raw returns the template text.
func (t Template) Raw() string { return t.raw }

// Slots returns placeholder names in template order.
func (t Template) Slots() []string { return t.slots }

// HasSlots reports whether the template contains placeholders.
func (t Template) HasSlots() bool { return len(t.slots) > 0 }

// Extract aligns input against the template and returns the slot values.
// A template without placeholders only matches an identical input and yields an empty map.
func (t Template) Extract(input string) (map[string]string, bool) {
	if t.pattern == nil {
		if input == t.raw {
			return map[string]string{}, true
		}
		return nil, false
	}

	m := t.pattern.FindStringSubmatch(input)
	if m == nil {
		return nil, false
	}
	values := make(map[string]string, len(t.slots))
	for i, name := range t.slots {
		values[name] = m[i+1]
	}
	return values, true
}
