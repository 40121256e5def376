package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/gogpu/mathtex/internal/lex"
	"github.com/gogpu/mathtex/layout"
)

// bigOperators maps enlarged operators to their scale factor. The name
// doubles as the correction key.
var bigOperators = map[string]float64{
	"int":    1.6,
	"iint":   1.6,
	"iiint":  1.6,
	"oint":   1.6,
	"oiint":  1.6,
	"oiiint": 1.6,
	"sum":    1.4,
	"prod":   1.4,
}

var arrows = map[string]bool{
	"leftarrow":      true,
	"rightarrow":     true,
	"uparrow":        true,
	"downarrow":      true,
	"leftrightarrow": true,
	"Leftarrow":      true,
	"Rightarrow":     true,
	"Leftrightarrow": true,
	"mapsto":         true,
	"to":             true,
	"gets":           true,
}

var decorations = map[string]layout.Decoration{
	"overline":       layout.Overline,
	"underline":      layout.Underline,
	"overleftarrow":  layout.OverLeftArrow,
	"overrightarrow": layout.OverRightArrow,
}

// command parses the command following a backslash. It returns nil for
// commands that only change the status (\end) or on error.
func (p *Parser) command(size float64) layout.Node {
	name := lex.Command(p.src, p.pos)
	p.pos += len(name)

	switch name {
	case "begin":
		return p.block(size)

	case "end":
		p.status = EndOfBlock
		return nil

	case "frac", "dfrac":
		if name == "frac" {
			size *= reduceFactor
		}
		f := &layout.Fraction{FontSize: size}
		f.Children = appendNode(f.Children, p.singleton(size))
		if p.status != Error {
			f.Children = appendNode(f.Children, p.singleton(size))
		}
		return f

	case "sqrt":
		r := &layout.Radical{FontSize: size}
		if p.pos < len(p.src) && p.src[p.pos] == '[' {
			p.pos++
			r.Children = append(r.Children, p.group(size*reduceFactor*reduceFactor, lex.Bracket))
			if !p.consume(']') {
				p.status = Error
			}
		}
		if p.status != Error {
			r.Children = appendNode(r.Children, p.singleton(size))
		}
		return r

	case "mathrm":
		saved := p.upright
		p.upright = true
		n := p.singleton(size)
		p.upright = saved
		return n
	}

	if k, ok := decorations[name]; ok {
		d := &layout.Decorated{FontSize: size, Kind: k}
		d.Children = appendNode(d.Children, p.singleton(size))
		return d
	}

	p.status = Exit
	if d, ok := delimiter(name, size); ok {
		return d
	}
	return p.symbol(name, size)
}

// delimiter recognises \left(, \right] and the bare \( \{ \| forms.
func delimiter(name string, size float64) (*layout.Delimiter, bool) {
	dir := layout.DirNone
	g := name
	switch {
	case strings.HasPrefix(name, "left"):
		dir, g = layout.DirLeft, name[len("left"):]
	case strings.HasPrefix(name, "right"):
		dir, g = layout.DirRight, name[len("right"):]
	}
	if len(g) != 1 || strings.IndexByte("()[]{}<>|", g[0]) < 0 {
		return nil, false
	}
	return &layout.Delimiter{FontSize: size, Dir: dir, Glyph: g[0]}, true
}

// symbol resolves a glyph command: arrows, big operators, then the glyph
// table. Unknown names are echoed back in the error colour.
func (p *Parser) symbol(name string, size float64) layout.Node {
	if arrows[name] {
		if s, ok := p.table.Lookup(name); ok {
			c := &layout.Corrected{Key: "arrow", Child: &layout.Text{Text: s, FontSize: size}}
			c.Hint.Class = layout.ClassFunction
			return c
		}
	}

	lower, collective := uncapitalize(name)
	if scale, ok := bigOperators[lower]; ok {
		if s, ok := p.table.Lookup(lower); ok {
			c := &layout.Corrected{Key: lower, Child: &layout.Text{Text: s, FontSize: size * scale}}
			if collective {
				c.Hint.Class = layout.ClassCollective
			}
			return c
		}
	}
	if collective && lower == "lim" {
		if s, ok := p.table.Lookup(lower); ok {
			t := &layout.Text{Text: s, FontSize: size}
			t.Hint.Class = layout.ClassCollective
			return t
		}
	}

	s, ok := p.table.Lookup(name)
	if !ok {
		return &layout.Text{Text: `\` + name, FontSize: size, Color: p.errColor}
	}
	t := &layout.Text{Text: s, FontSize: size}
	switch {
	case name == "times" || name == "div":
		t.Hint.Class = layout.ClassOperator
	case utf8.RuneCountInString(s) > 1:
		t.Hint.Class = layout.ClassFunction
	}
	return t
}

// uncapitalize lowers the first letter of name and reports whether it was
// upper case.
func uncapitalize(name string) (string, bool) {
	if name == "" || name[0] < 'A' || name[0] > 'Z' {
		return name, false
	}
	return string(name[0]+'a'-'A') + name[1:], true
}

func appendNode(nodes []layout.Node, n layout.Node) []layout.Node {
	if n == nil {
		return nodes
	}
	return append(nodes, n)
}
