// Package dom abstracts the host-owned output node a widget renders into.
//
// The host rendering pipeline (a notebook frontend, an exported page, a
// test harness) owns the real markup; this package only models the minimal
// surface the bootstrap core needs: identity, attachment, attributes, and
// the user-visible loading/error regions.
package dom

// Node is a single host-owned element carrying declarative attributes.
type Node interface {
	// ID returns a stable identifier for the node, unique within its document.
	ID() string
	// Connected reports whether the node is attached to a live document.
	// Host pipelines may hand out nodes before mounting them.
	Connected() bool
	// Attr returns the value of a data attribute and whether it is set.
	Attr(name string) (string, bool)
	// SetAttr sets a data attribute on the node.
	SetAttr(name, value string)
}

// Container is an output cell that hosts a viewer or diagram, with a
// loading placeholder and an error region the core can drive.
type Container interface {
	Node
	ShowLoading()
	HideLoading()
	// ShowError replaces the loading placeholder with a short message.
	ShowError(message string)
}
