package content

import (
	"errors"
	"fmt"
)

// Errors returned while traversing.
var (
	// ErrUnsupportedStructure is matched by an *UnsupportedStructureError,
	// returned when a multipart/alternative node has more than two children.
	ErrUnsupportedStructure = errors.New("unsupported structure")

	// ErrMalformedNode is matched by a *MalformedNodeError, returned when a
	// node is not strictly a container or strictly a leaf.
	ErrMalformedNode = errors.New("malformed node")
)

// UnsupportedStructureError reports a multipart/alternative node with more
// children than can be reconciled.
type UnsupportedStructureError struct {
	Children int
}

// Error returns the error message.
func (err *UnsupportedStructureError) Error() string {
	return fmt.Sprintf("%v: multipart/alternative has %d parts, no more than 2 are supported",
		ErrUnsupportedStructure, err.Children)
}

// Unwrap returns ErrUnsupportedStructure.
func (err *UnsupportedStructureError) Unwrap() error {
	return ErrUnsupportedStructure
}

// MalformedNodeError reports a container without children, a container with
// a payload, a leaf without a payload, or a leaf with children.
type MalformedNodeError struct {
	Kind       Kind
	Children   int
	HasPayload bool
}

// Error returns the error message.
func (err *MalformedNodeError) Error() string {
	payload := "no payload"
	if err.HasPayload {
		payload = "a payload"
	}
	return fmt.Sprintf("%v: %s node has %d children and %s",
		ErrMalformedNode, err.Kind, err.Children, payload)
}

// Unwrap returns ErrMalformedNode.
func (err *MalformedNodeError) Unwrap() error {
	return ErrMalformedNode
}

// checkNode returns a *MalformedNodeError if n is neither a proper container
// nor a proper leaf for its kind. KindOther may be either.
func checkNode(n Node) error {
	k := n.Kind()
	children := len(n.Children())
	hasPayload := n.HasPayload()

	isContainer := !hasPayload && children > 0
	isLeaf := hasPayload && children == 0

	var ok bool
	switch {
	case k.IsMultipart():
		ok = isContainer
	case k == KindOther:
		ok = isContainer || isLeaf
	default:
		ok = isLeaf
	}

	if !ok {
		return &MalformedNodeError{Kind: k, Children: children, HasPayload: hasPayload}
	}
	return nil
}
