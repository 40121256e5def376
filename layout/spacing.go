package layout

// padding returns the gap a class asks for on each side.
func (c Class) padding(fontSize float64) int {
	switch c {
	case ClassOperator:
		return px(fontSize / 8)
	case ClassComparator:
		return px(fontSize / 6)
	case ClassFunction:
		return px(fontSize / 10)
	}
	return 0
}

// gap is the horizontal space between two adjacent non-script siblings.
func gap(left, right Class, fontSize float64) int {
	return max(left.padding(fontSize), right.padding(fontSize))
}

// prevRef returns the nearest non-script sibling before i, or -1.
func prevRef(children []*Box, i int) int {
	j := i - 1
	for j >= 0 && children[j].Hint.Role.IsScript() {
		j--
	}
	return j
}

// nextRef returns the nearest non-script sibling after i, or -1.
func nextRef(children []*Box, i int) int {
	j := i + 1
	for j < len(children) && children[j].Hint.Role.IsScript() {
		j++
	}
	if j < len(children) {
		return j
	}
	return -1
}

// reference is the anchor of a script: the nearest non-script sibling
// before it, else the nearest one after it, else -1.
func reference(children []*Box, i int) int {
	if r := prevRef(children, i); r >= 0 {
		return r
	}
	return nextRef(children, i)
}

// ResolveClasses returns the effective spacing class of each sibling.
// Script siblings are reported as ClassNone since they never take part in
// spacing. An operator becomes unary when it touches a boundary of the
// list, follows a unary operator or a comparator, or directly follows an
// opening delimiter; chains of operators resolve left to right.
func ResolveClasses(children []*Box) []Class {
	classes := make([]Class, len(children))
	prev := -1
	for i, c := range children {
		if c.Hint.Role.IsScript() {
			continue
		}
		k := c.Hint.Class
		if k == ClassOperator {
			switch {
			case prev < 0 || nextRef(children, i) < 0:
				k = ClassUnary
			case classes[prev] == ClassUnary || classes[prev] == ClassComparator:
				k = ClassUnary
			case children[prev].Delim.opens():
				k = ClassUnary
			}
		}
		classes[i] = k
		prev = i
	}
	return classes
}
