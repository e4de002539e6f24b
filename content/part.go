package content

import (
	"io"
	"sync"

	"github.com/zostay/go-contenttree/message"
	"github.com/zostay/go-contenttree/message/transfer"
)

// DefaultMediaType is assumed for a part with a missing or unreadable
// Content-type.
const DefaultMediaType = "text/plain"

// partNode adapts a message.Part.
type partNode struct {
	part     message.Part
	kind     Kind
	charset  string
	children []Node

	once    sync.Once
	payload []byte
}

// FromPart adapts a part parsed by the message package, along with all of its
// sub-parts.
//
// A part with sub-parts is a container. Any other part is a leaf with a
// payload, empty if the part has no body. The payload is read on first use
// with any transfer encoding removed and kept for later calls. If reading
// fails partway, whatever was read is the payload.
func FromPart(p message.Part) Node {
	h := p.GetHeader()

	mt, err := h.GetMediaType()
	if err != nil {
		mt = DefaultMediaType
	}

	cs, _ := h.GetCharset()

	n := &partNode{
		part:    p,
		kind:    KindOf(mt),
		charset: cs,
	}

	if p.IsMultipart() {
		parts := p.GetParts()
		n.children = make([]Node, len(parts))
		for i, sub := range parts {
			n.children[i] = FromPart(sub)
		}
	}

	return n
}

// Kind returns the kind of the part's media type.
func (n *partNode) Kind() Kind { return n.kind }

// Children returns the adapted sub-parts.
func (n *partNode) Children() []Node { return n.children }

// HasPayload returns true for every part without sub-parts.
func (n *partNode) HasPayload() bool { return !n.part.IsMultipart() }

// Charset returns the charset parameter of the Content-type.
func (n *partNode) Charset() string { return n.charset }

// Payload reads the body the first time it is called.
func (n *partNode) Payload() []byte {
	n.once.Do(func() {
		n.payload = []byte{}
		if !n.HasPayload() {
			return
		}

		r := n.part.GetReader()
		if r == nil {
			return
		}

		if n.part.IsEncoded() {
			r = transfer.ApplyTransferDecoding(n.part.GetHeader(), r)
		}

		b, _ := io.ReadAll(r)
		if b != nil {
			n.payload = b
		}
	})

	return n.payload
}
