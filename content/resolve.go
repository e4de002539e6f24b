package content

import (
	"iter"

	"github.com/zostay/go-contenttree/charset"
)

// DecodeFunc turns a leaf payload into text. It must not fail: bytes that
// cannot be decoded are replaced.
type DecodeFunc func(charset string, payload []byte) string

// Option configures a Resolver.
type Option func(*Resolver)

// WithDecoder replaces the payload decoder, which is charset.Decode by
// default.
func WithDecoder(decode DecodeFunc) Option {
	return func(r *Resolver) { r.decode = decode }
}

// Resolver turns a Node tree into a sequence of Content. It holds no state
// between traversals and is safe for concurrent use.
type Resolver struct {
	decode DecodeFunc
}

// New returns a Resolver with the given options applied.
func New(opts ...Option) *Resolver {
	r := &Resolver{decode: charset.Decode}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = New()

// Traverse resolves n with the default Resolver.
func Traverse(n Node) iter.Seq2[Content, error] {
	return defaultResolver.Traverse(n)
}

// Traverse returns the content of n as a lazy sequence:
//
//   - multipart/mixed and multipart/related produce the content of each child
//     in order.
//   - multipart/alternative produces one item reconciled from its one or two
//     children. See below.
//   - text/plain produces a PlainText and text/html produces an HTML.
//   - Anything else produces nothing.
//
// For a multipart/alternative with two children, the first PlainText or HTML
// found in the first child decides the pairing. If it is HTML, the first
// PlainText in the second child becomes its alternative. If it is PlainText,
// the first HTML in the second child becomes the HTML and the PlainText
// becomes its alternative. When no counterpart is found, the first item is
// produced alone. When the first child has no PlainText or HTML at all, the
// node produces nothing and the second child is not examined.
//
// If an error is found, it is produced as (nil, err) and the sequence ends.
// Only as much of the tree is examined as is needed to produce the items the
// caller asks for.
func (r *Resolver) Traverse(n Node) iter.Seq2[Content, error] {
	return func(yield func(Content, error) bool) {
		r.walk(n, yield)
	}
}

// walk produces the content of n. It returns false once the sequence must
// end, either because yield asked to stop or because an error was produced.
func (r *Resolver) walk(n Node, yield func(Content, error) bool) bool {
	if err := checkNode(n); err != nil {
		yield(nil, err)
		return false
	}

	switch n.Kind() {
	case KindMixed, KindRelated:
		for _, child := range n.Children() {
			if !r.walk(child, yield) {
				return false
			}
		}
		return true

	case KindAlternative:
		return r.reconcile(n.Children(), yield)

	case KindPlainText:
		return yield(PlainText{Text: r.decode(n.Charset(), n.Payload())}, nil)

	case KindHTML:
		return yield(HTML{Text: r.decode(n.Charset(), n.Payload())}, nil)

	default:
		return true
	}
}

// reconcile produces the single item of a multipart/alternative node.
func (r *Resolver) reconcile(children []Node, yield func(Content, error) bool) bool {
	switch len(children) {
	case 1:
		return r.walk(children[0], yield)
	case 2:
	default:
		yield(nil, &UnsupportedStructureError{Children: len(children)})
		return false
	}

	first, found, err := FindFirst(r.Traverse(children[0]), isTextLeaf)
	if err != nil {
		yield(nil, err)
		return false
	}
	if !found {
		return true
	}

	switch c := first.(type) {
	case HTML:
		alt, found, err := firstOf[PlainText](r.Traverse(children[1]))
		if err != nil {
			yield(nil, err)
			return false
		}
		if found {
			return yield(HTMLWithAlternative{HTML: c, Alt: alt}, nil)
		}
		return yield(c, nil)

	case PlainText:
		html, found, err := firstOf[HTML](r.Traverse(children[1]))
		if err != nil {
			yield(nil, err)
			return false
		}
		if found {
			return yield(HTMLWithAlternative{HTML: html, Alt: c}, nil)
		}
		return yield(c, nil)
	}

	return true
}

// isTextLeaf matches the content produced directly by a text/plain or
// text/html leaf.
func isTextLeaf(c Content) bool {
	switch c.(type) {
	case PlainText, HTML:
		return true
	default:
		return false
	}
}

// firstOf finds the first item of type T in seq.
func firstOf[T Content](seq iter.Seq2[Content, error]) (T, bool, error) {
	c, found, err := FindFirst(seq, func(c Content) bool {
		_, ok := c.(T)
		return ok
	})
	if err != nil || !found {
		var zero T
		return zero, false, err
	}
	return c.(T), true, nil
}

// FindFirst returns the first item of seq that pred accepts. It stops pulling
// from seq as soon as a match or an error is found. If seq ends without a
// match, it returns false.
func FindFirst[T any](seq iter.Seq2[T, error], pred func(T) bool) (T, bool, error) {
	for v, err := range seq {
		if err != nil {
			var zero T
			return zero, false, err
		}
		if pred(v) {
			return v, true, nil
		}
	}

	var zero T
	return zero, false, nil
}

// Collect drains seq into a slice. It stops at the first error, returning the
// items gathered before it.
func Collect(seq iter.Seq2[Content, error]) ([]Content, error) {
	var cs []Content
	for c, err := range seq {
		if err != nil {
			return cs, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}
