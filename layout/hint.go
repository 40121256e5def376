package layout

// Role is the alignment role of a sibling inside a List.
type Role uint8

const (
	RoleNone Role = iota
	RoleSuperscript
	RoleSubscript
	// Stacked variants share their x position with the complementary
	// script right before them (x_a^b).
	RoleStackedSuperscript
	RoleStackedSubscript
)

// IsScript reports whether the role is any super- or subscript.
func (r Role) IsScript() bool { return r != RoleNone }

// IsSuperscript reports whether the role is a (stacked) superscript.
func (r Role) IsSuperscript() bool {
	return r == RoleSuperscript || r == RoleStackedSuperscript
}

// IsStacked reports whether the role is one of the stacked variants.
func (r Role) IsStacked() bool {
	return r == RoleStackedSuperscript || r == RoleStackedSubscript
}

// Stacked returns the stacked variant of a script role.
func (r Role) Stacked() Role {
	switch r {
	case RoleSuperscript:
		return RoleStackedSuperscript
	case RoleSubscript:
		return RoleStackedSubscript
	}
	return r
}

// complements reports whether r and s are one super- and one subscript.
func (r Role) complements(s Role) bool {
	return r.IsScript() && s.IsScript() && r.IsSuperscript() != s.IsSuperscript()
}

func (r Role) String() string {
	switch r {
	case RoleSuperscript:
		return "superscript"
	case RoleSubscript:
		return "subscript"
	case RoleStackedSuperscript:
		return "stacked-superscript"
	case RoleStackedSubscript:
		return "stacked-subscript"
	}
	return "none"
}

// Class is the spacing class used to size the gap between siblings.
type Class uint8

const (
	ClassNone Class = iota
	ClassUnary
	ClassOperator
	ClassComparator
	ClassFunction
	// ClassCollective marks big operators (sum, integral, lim) whose
	// scripts stack above and below them.
	ClassCollective
)

func (c Class) String() string {
	switch c {
	case ClassUnary:
		return "unary"
	case ClassOperator:
		return "operator"
	case ClassComparator:
		return "comparator"
	case ClassFunction:
		return "function"
	case ClassCollective:
		return "collective"
	}
	return "none"
}

// Decoration is the kind of line a Decorated node draws.
type Decoration uint8

const (
	Overline Decoration = iota
	Underline
	OverLeftArrow
	OverRightArrow
)

// Direction is the opening direction of a delimiter.
type Direction uint8

const (
	// DirNone is a bare delimiter (\{); its shape follows the glyph.
	DirNone Direction = iota
	// DirLeft opens towards the right: \left(.
	DirLeft
	// DirRight opens towards the left: \right).
	DirRight
)

// Hint is the metadata a parent layout reads from each child.
// The fields are independent of each other.
type Hint struct {
	Role   Role
	Class  Class
	NewRow bool // array cell starts a new row
}
