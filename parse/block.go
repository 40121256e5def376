package parse

import (
	"strings"

	"github.com/gogpu/mathtex/internal/lex"
	"github.com/gogpu/mathtex/layout"
)

const arrayTag = "{array}"

// block parses the body of \begin. Only the array environment exists:
// \begin{array}{spec} cells \end{array}.
func (p *Parser) block(size float64) layout.Node {
	if !strings.HasPrefix(p.src[p.pos:], arrayTag) {
		p.status = Error
		return nil
	}
	p.pos += len(arrayTag)

	arr := &layout.Array{FontSize: size}
	if p.pos < len(p.src) && p.src[p.pos] == '{' {
		if end := strings.IndexByte(p.src[p.pos+1:], '}'); end >= 0 {
			arr.Columns = p.src[p.pos+1 : p.pos+1+end]
			p.pos += end + 2
		}
	}

	p.status = EndOfRow
	for p.status != EndOfBlock && p.status != Error && p.pos < len(p.src) {
		newRow := p.status == EndOfRow
		cell := p.group(size, lex.Array)
		cell.Hint.NewRow = newRow
		arr.Cells = append(arr.Cells, cell)
		if p.status == Exit && p.pos < len(p.src) {
			// A stray closing brace inside a cell.
			p.status = Error
		}
	}

	if p.status != Error {
		if strings.HasPrefix(p.src[p.pos:], arrayTag) {
			p.pos += len(arrayTag)
			p.status = Exit
		} else {
			p.status = Error
		}
	}
	return arr
}
