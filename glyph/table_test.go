package glyph

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestParse(t *testing.T) {
	tab, err := Parse([]string{"alpha#α", "sin#sin", "hash#a#b", "alpha#A"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"alpha", "A", true}, // later entry wins
		{"sin", "sin", true},
		{"hash", "a#b", true},
		{"beta", "", false},
	}
	for _, tt := range tests {
		got, ok := tab.Lookup(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Lookup(%q) = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
	if tab.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tab.Len())
	}
}

func TestParseMalformed(t *testing.T) {
	for _, entry := range []string{"noseparator", "#empty"} {
		_, err := Parse([]string{"ok#x", entry})
		if !errors.Is(err, ErrMalformedEntry) {
			t.Errorf("Parse(%q) error = %v, want ErrMalformedEntry", entry, err)
		}
		var ee *EntryError
		if !errors.As(err, &ee) || ee.Line != 2 {
			t.Errorf("Parse(%q) error = %v, want EntryError at line 2", entry, err)
		}
	}
}

func TestParseNormalizes(t *testing.T) {
	// "e" followed by a combining acute accent composes to U+00E9.
	tab, err := Parse([]string{"eacute#e\u0301"})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := tab.Lookup("eacute"); got != "\u00e9" {
		t.Errorf("Lookup(eacute) = %q, want %q", got, "\u00e9")
	}
}

func TestRead(t *testing.T) {
	src := "# comment\r\n\r\ninfty#∞\r\ntimes#×\n"
	tab, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got, _ := tab.Lookup("infty"); got != "∞" {
		t.Errorf("Lookup(infty) = %q, want ∞", got)
	}
	if tab.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tab.Len())
	}
}

func TestNilTable(t *testing.T) {
	var tab *Table
	if _, ok := tab.Lookup("alpha"); ok {
		t.Error("nil table should not resolve entries")
	}
	if tab.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tab.Len())
	}
}

func TestDefault(t *testing.T) {
	var wg sync.WaitGroup
	tables := make([]*Table, 8)
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i] = Default()
		}(i)
	}
	wg.Wait()
	for i, tab := range tables {
		if tab != tables[0] {
			t.Fatalf("Default() call %d returned a different table", i)
		}
	}

	for name, want := range map[string]string{
		"int":        "∫",
		"sum":        "∑",
		"Rightarrow": "⇒",
		"times":      "×",
		"sin":        "sin",
		"lim":        "lim",
	} {
		if got, ok := Default().Lookup(name); !ok || got != want {
			t.Errorf("Default().Lookup(%q) = %q, %v, want %q", name, got, ok, want)
		}
	}
}
