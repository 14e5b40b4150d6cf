package path

// ComponentVisitor is called into by Component.Visit() and Path.Walk().
// It has one method for each kind of pathname component, meaning that
// implementations are forced to handle all of them.
type ComponentVisitor interface {
	// OnCurrent is called for every "." pathname component.
	OnCurrent()

	// OnParent is called for every ".." pathname component.
	OnParent()

	// OnEmpty is called for every empty pathname component.
	OnEmpty()

	// OnItem is called for every other pathname component. The name
	// is provided as it appeared in the original pathname string,
	// including any quotes and backslashes.
	OnItem(name string)
}

// Visit calls into the method of the ComponentVisitor corresponding to
// the kind of the component.
func (c Component) Visit(v ComponentVisitor) {
	switch c.kind {
	case ComponentKindCurrent:
		v.OnCurrent()
	case ComponentKindParent:
		v.OnParent()
	case ComponentKindEmpty:
		v.OnEmpty()
	case ComponentKindItem:
		v.OnItem(c.name)
	default:
		panic("Unknown component kind")
	}
}

// VoidComponentVisitor is an implementation of ComponentVisitor that
// ignores all components.
type VoidComponentVisitor struct{}

var _ ComponentVisitor = VoidComponentVisitor{}

// OnCurrent does nothing.
func (VoidComponentVisitor) OnCurrent() {}

// OnParent does nothing.
func (VoidComponentVisitor) OnParent() {}

// OnEmpty does nothing.
func (VoidComponentVisitor) OnEmpty() {}

// OnItem does nothing.
func (VoidComponentVisitor) OnItem(name string) {}
