// Package field holds the low-level representation of a single header field.
// A parsed field keeps the exact bytes it was read from (Raw) next to its
// unfolded, decoded name and body (Base) so that an unmodified header can be
// written back out byte-for-byte.
package field

import (
	"bytes"
	"fmt"
)

// Base is the logical name and body of a header field. The body is held
// unfolded and with any RFC 2047 encoded words decoded.
type Base struct {
	name string
	body string
}

// Name returns the field name.
func (f *Base) Name() string {
	return f.name
}

// SetName changes the field name.
func (f *Base) SetName(name string) {
	f.name = name
}

// Body returns the field body.
func (f *Base) Body() string {
	return f.body
}

// SetBody changes the field body.
func (f *Base) SetBody(body string) {
	f.body = body
}

// String renders the field, encoding the body if it needs it.
func (f *Base) String() string {
	return fmt.Sprintf("%s: %s", f.name, Encode(f.body))
}

// Bytes is String() as a slice of bytes.
func (f *Base) Bytes() []byte {
	return []byte(f.String())
}

// Field is a header field. Name() and Body() always come from Base. String()
// and Bytes() come from Raw when it is set and from Base otherwise. Calling
// SetName() or SetBody() discards Raw.
type Field struct {
	Base
	*Raw
}

// New constructs a field with no raw form.
func New(name, body string) *Field {
	return &Field{Base{name, body}, nil}
}

// String returns the raw field if present or the rendered Base otherwise.
func (f *Field) String() string {
	if f.Raw != nil {
		return f.Raw.String()
	}
	return f.Base.String()
}

// Bytes returns the raw field if present or the rendered Base otherwise.
func (f *Field) Bytes() []byte {
	if f.Raw != nil {
		return f.Raw.Bytes()
	}
	return f.Base.Bytes()
}

// Name returns Base.Name().
func (f *Field) Name() string {
	return f.Base.Name()
}

// Body returns Base.Body().
func (f *Field) Body() string {
	return f.Base.Body()
}

// SetName sets the name and clears Raw.
func (f *Field) SetName(n string) {
	f.Raw = nil
	f.Base.SetName(n)
}

// SetBody sets the body and clears Raw.
func (f *Field) SetBody(b string) {
	f.Raw = nil
	f.Base.SetBody(b)
}

// SetRaw replaces the raw form without touching Base.
func (f *Field) SetRaw(o []byte) {
	ix := bytes.IndexRune(o, ':')
	if ix < 0 {
		ix = len(o)
	}
	f.Raw = &Raw{o, ix}
}
