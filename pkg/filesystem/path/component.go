package path

// ComponentKind indicates which of the four variants a Component is.
type ComponentKind int

const (
	// ComponentKindCurrent corresponds to pathname component ".".
	ComponentKindCurrent ComponentKind = iota
	// ComponentKindParent corresponds to pathname component "..".
	ComponentKindParent
	// ComponentKindEmpty corresponds to an empty pathname component,
	// as found between two consecutive slashes.
	ComponentKindEmpty
	// ComponentKindItem corresponds to any other pathname component.
	ComponentKindItem
)

func (k ComponentKind) String() string {
	switch k {
	case ComponentKindCurrent:
		return "current"
	case ComponentKindParent:
		return "parent"
	case ComponentKindEmpty:
		return "empty"
	case ComponentKindItem:
		return "item"
	default:
		panic("Unknown component kind")
	}
}

// Component of a pathname. Components are values. They are created by
// classifying a raw segment of a pathname string and are never
// modified afterwards.
type Component struct {
	kind ComponentKind
	name string
}

var (
	// CurrentComponent is the pathname component ".".
	CurrentComponent = Component{kind: ComponentKindCurrent}
	// ParentComponent is the pathname component "..".
	ParentComponent = Component{kind: ComponentKindParent}
	// EmptyComponent is the empty pathname component.
	EmptyComponent = Component{kind: ComponentKindEmpty}
)

// NewComponent classifies a raw pathname segment. Classification only
// considers exact matches against ".", ".." and the empty string. Any
// other segment becomes an item, retaining quotes and backslashes
// verbatim.
func NewComponent(raw string) Component {
	switch raw {
	case ".":
		return CurrentComponent
	case "..":
		return ParentComponent
	case "":
		return EmptyComponent
	default:
		return Component{kind: ComponentKindItem, name: raw}
	}
}

// NewItemComponent creates an item component without classifying its
// name. Unlike NewComponent("") this permits the creation of an item
// with an empty name.
func NewItemComponent(name string) Component {
	return Component{kind: ComponentKindItem, name: name}
}

// Kind returns the variant of the pathname component.
func (c Component) Kind() ComponentKind {
	return c.kind
}

// ItemName returns the name of the component if it is an item.
func (c Component) ItemName() (string, bool) {
	if c.kind != ComponentKindItem {
		return "", false
	}
	return c.name, true
}

// String returns the raw form of the component, which is identical to
// the segment from which it was classified.
func (c Component) String() string {
	switch c.kind {
	case ComponentKindCurrent:
		return "."
	case ComponentKindParent:
		return ".."
	case ComponentKindEmpty:
		return ""
	default:
		return c.name
	}
}

func (c Component) isEmptyItem() bool {
	return c.kind == ComponentKindItem && c.name == ""
}
