// Package glyph maps math command names to the text that renders them.
//
// A Table is built from "<command>#<text>" entries, for example
// "alpha#α" or "sin#sin". Tables are immutable once built and safe to share
// between goroutines. Default returns the built-in table, parsed once on
// first use.
package glyph

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// Separator splits a command name from its text in an entry.
const Separator = '#'

// ErrMalformedEntry is returned when an entry has no separator or an empty
// command name.
var ErrMalformedEntry = errors.New("glyph: malformed entry")

// EntryError reports the entry that failed to parse.
type EntryError struct {
	Line  int // 1-based position of the entry
	Entry string
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("glyph: malformed entry %d: %q", e.Line, e.Entry)
}

// Unwrap returns ErrMalformedEntry.
func (e *EntryError) Unwrap() error { return ErrMalformedEntry }

// Table is an immutable command -> text mapping.
type Table struct {
	m map[string]string
}

// Parse builds a table from entries of the form "<command>#<text>".
// The text is NFC-normalized. Later entries override earlier ones.
func Parse(entries []string) (*Table, error) {
	t := &Table{m: make(map[string]string, len(entries))}
	for i, entry := range entries {
		name, text, ok := strings.Cut(entry, string(Separator))
		if !ok || name == "" {
			return nil, &EntryError{Line: i + 1, Entry: entry}
		}
		t.m[name] = norm.NFC.String(text)
	}
	return t, nil
}

// Read builds a table from one entry per line. Blank lines and lines
// starting with the separator are skipped.
func Read(r io.Reader) (*Table, error) {
	var entries []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || line[0] == Separator {
			continue
		}
		entries = append(entries, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("glyph: read table: %w", err)
	}
	return Parse(entries)
}

// Lookup returns the text mapped to a command name.
func (t *Table) Lookup(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	s, ok := t.m[name]
	return s, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.m)
}

//go:embed unicode.txt
var defaultData string

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in table.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Read(strings.NewReader(defaultData))
		if err != nil {
			panic(err) // embedded data is fixed at build time
		}
		defaultTable = t
	})
	return defaultTable
}
