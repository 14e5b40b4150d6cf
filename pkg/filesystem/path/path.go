package path

import (
	"strings"
)

// Path is a pathname that has been split up into components.
//
// Paths are created by parsing a pathname string using NewPath(),
// which honors quoting and escaping. They are immutable. Converting a
// Path to a string, optionally while applying a Trimming, does not
// alter the components of the Path.
type Path struct {
	components []Component
}

var _ Stringer = Path{}

// NewPath parses a pathname string. Slashes that are placed inside
// single or double quotes, or are preceded by a backslash, do not
// separate components.
func NewPath(s string) Path {
	segments := tokenize(s)
	components := make([]Component, 0, len(segments))
	for _, segment := range segments {
		components = append(components, NewComponent(segment))
	}
	return Path{components: components}
}

// NewPathFromRaw creates a path from a string that was obtained by
// calling GetUNIXString(). Unlike NewPath(), every slash separates
// components. This means that for paths whose items contain no
// slashes, NewPathFromRaw(p.GetUNIXString()) is equal to p.
func NewPathFromRaw(s string) Path {
	if s == "" {
		return Path{}
	}
	segments := strings.Split(s, "/")
	components := make([]Component, 0, len(segments))
	for _, segment := range segments {
		components = append(components, NewComponent(segment))
	}
	return Path{components: components}
}

// NewPathFromComponents creates a path from a list of components.
func NewPathFromComponents(components ...Component) Path {
	return Path{components: append([]Component(nil), components...)}
}

// Components returns a copy of the components of the path.
func (p Path) Components() []Component {
	return append([]Component(nil), p.components...)
}

// Len returns the number of components in the path.
func (p Path) Len() int {
	return len(p.components)
}

// Equal returns true if both paths consist of the same components.
func (p Path) Equal(other Path) bool {
	if len(p.components) != len(other.components) {
		return false
	}
	for i, c := range p.components {
		if c != other.components[i] {
			return false
		}
	}
	return true
}

// Walk calls into the ComponentVisitor for every component of the
// path, from left to right.
func (p Path) Walk(v ComponentVisitor) {
	for _, c := range p.components {
		c.Visit(v)
	}
}

func joinComponents(components []Component) string {
	var sb strings.Builder
	for i, c := range components {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// GetUNIXString joins the raw forms of all components of the path,
// using slashes as separators.
func (p Path) GetUNIXString() string {
	return joinComponents(p.components)
}

// GetTrimmedUNIXString converts the path to a string, only retaining
// components that are kept by the trimming.
//
// If the trimming contains TrimParent, a ".." component removes the
// most recently emitted item with an empty name instead of being
// emitted itself. Such items are never produced by NewPath(), as empty
// segments are classified as EmptyComponent. They can only be created
// by calling NewItemComponent("").
func (p Path) GetTrimmedUNIXString(t Trimming) string {
	out := make([]Component, 0, len(p.components))
	for _, c := range p.components {
		if !t.Keeps(c) {
			continue
		}
		if c.kind == ComponentKindParent && t.collapsesParents() {
			if i := lastEmptyItem(out); i >= 0 {
				out = append(out[:i], out[i+1:]...)
				continue
			}
		}
		out = append(out, c)
	}
	return joinComponents(out)
}

func lastEmptyItem(components []Component) int {
	for i := len(components) - 1; i >= 0; i-- {
		if components[i].isEmptyItem() {
			return i
		}
	}
	return -1
}

func (p Path) String() string {
	return p.GetUNIXString()
}
