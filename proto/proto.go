// Package proto implements the line-oriented text form for UI
// actions, used by the demo shells and tests to drive an app.
//
// Action format (one per line):
//
//	<kind> <k>=<v> <k>=<v> ...
//
// String escaping: values containing spaces, tabs, newlines, quotes,
// backslashes, or '=' are quoted with double quotes. Inside quotes,
// \n, \t, \\, and \" are recognized escapes.
package proto

import (
	"fmt"
	"sort"
	"strings"
)

// Action is a semantic UI action.
type Action struct {
	Kind string
	KVs  map[string]string
}

// New creates an action of the given kind with no parameters.
func New(kind string) *Action {
	return &Action{Kind: kind, KVs: make(map[string]string)}
}

// With sets a parameter and returns the action for chaining.
func (a *Action) With(k, v string) *Action {
	a.KVs[k] = v
	return a
}

// Get returns the parameter value for k, or "" if absent.
func (a *Action) Get(k string) string {
	return a.KVs[k]
}

// needsQuote reports whether the string needs quoting.
func needsQuote(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, c := range s {
		if c == ' ' || c == '\t' || c == '\n' || c == '\\' || c == '"' || c == '=' {
			return true
		}
	}
	return false
}

// Escape encodes a string for the action format, quoting if necessary.
func Escape(s string) string {
	if !needsQuote(s) {
		return s
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, c := range s {
		switch c {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Unescape decodes a possibly-quoted action string.
func Unescape(s string) string {
	if len(s) < 2 || s[0] != '"' {
		return s
	}
	s = s[1 : len(s)-1]
	var b strings.Builder
	esc := false
	for _, c := range s {
		if esc {
			switch c {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteRune(c)
			}
			esc = false
			continue
		}
		if c == '\\' {
			esc = true
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// tokenize splits a line into fields, honoring quoted values.
func tokenize(line string) []string {
	var toks []string
	i := 0
	for i < len(line) {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) {
			break
		}
		start := i
		inQuote := false
		for i < len(line) {
			c := line[i]
			if c == '"' {
				inQuote = !inQuote
			} else if c == '\\' && inQuote && i+1 < len(line) {
				i++
			} else if (c == ' ' || c == '\t') && !inQuote {
				break
			}
			i++
		}
		toks = append(toks, line[start:i])
	}
	return toks
}

// ParseAction parses a single action line.
func ParseAction(line string) (*Action, error) {
	line = strings.TrimRight(line, "\n")
	toks := tokenize(line)
	if len(toks) == 0 {
		return nil, fmt.Errorf("proto: empty action line")
	}
	a := New(toks[0])
	for _, t := range toks[1:] {
		eq := strings.IndexByte(t, '=')
		if eq < 0 {
			return nil, fmt.Errorf("proto: malformed action field %q", t)
		}
		a.KVs[t[:eq]] = Unescape(t[eq+1:])
	}
	return a, nil
}

// SerializeAction renders an action as a single line (no newline).
// Keys are emitted in sorted order so output is deterministic.
func SerializeAction(a *Action) string {
	var b strings.Builder
	b.WriteString(a.Kind)
	for _, k := range sortedKeys(a.KVs) {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(Escape(a.KVs[k]))
	}
	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
