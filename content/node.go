package content

// Node is one node of a parsed MIME tree. A well-formed node is either a
// container, with children and no payload, or a leaf, with a payload and no
// children.
type Node interface {
	// Kind returns the node's classified media type.
	Kind() Kind

	// Children returns the sub-nodes of a container, in order.
	Children() []Node

	// HasPayload reports whether the node is a leaf with a body, even an
	// empty one.
	HasPayload() bool

	// Payload returns the body of a leaf with any transfer encoding removed.
	// It is only called on text/plain and text/html leaves.
	Payload() []byte

	// Charset returns the label of the charset the payload is encoded in, or
	// an empty string if none was given.
	Charset() string
}

// Leaf is a Node holding a payload.
type Leaf struct {
	kind    Kind
	charset string
	payload []byte
}

// NewLeaf returns a leaf with the given media type, charset label, and
// payload. A nil payload is treated as empty.
func NewLeaf(mediaType, charset string, payload []byte) *Leaf {
	if payload == nil {
		payload = []byte{}
	}
	return &Leaf{KindOf(mediaType), charset, payload}
}

// Kind returns the kind of the leaf.
func (l *Leaf) Kind() Kind { return l.kind }

// Children always returns nil.
func (l *Leaf) Children() []Node { return nil }

// HasPayload always returns true.
func (l *Leaf) HasPayload() bool { return true }

// Payload returns the payload.
func (l *Leaf) Payload() []byte { return l.payload }

// Charset returns the charset label.
func (l *Leaf) Charset() string { return l.charset }

// Container is a Node holding children.
type Container struct {
	kind     Kind
	children []Node
}

// NewContainer returns a container with the given media type and children.
func NewContainer(mediaType string, children ...Node) *Container {
	return &Container{KindOf(mediaType), children}
}

// Kind returns the kind of the container.
func (c *Container) Kind() Kind { return c.kind }

// Children returns the children.
func (c *Container) Children() []Node { return c.children }

// HasPayload always returns false.
func (c *Container) HasPayload() bool { return false }

// Payload always returns nil.
func (c *Container) Payload() []byte { return nil }

// Charset always returns an empty string.
func (c *Container) Charset() string { return "" }
