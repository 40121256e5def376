package mathtex

import (
	"errors"
	"fmt"

	"github.com/gogpu/mathtex/parse"
)

// ErrSyntax is the sentinel wrapped by every SyntaxError.
var ErrSyntax = errors.New("mathtex: syntax error")

// SyntaxError reports malformed markup: the parser finished in a status
// other than EXIT.
type SyntaxError struct {
	Status parse.Status
	Pos    int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("mathtex: syntax error at byte %d (status %v)", e.Pos, e.Status)
}

// Unwrap returns ErrSyntax.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }
