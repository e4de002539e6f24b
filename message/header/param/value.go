package param

import (
	"errors"
	"fmt"
	"mime"
	"sort"
	"strings"
)

// Names of the parameters this package provides accessors for.
const (
	Charset  = "charset"  // Content-type text charset
	Boundary = "boundary" // Content-type multipart boundary
	Filename = "filename" // Content-disposition attachment name
)

// Value is a parsed parameterized header field body, such as is found in the
// Content-type and Content-disposition fields. A Value is immutable. Use
// Modify() to derive a changed copy.
type Value struct {
	v  string
	ps map[string]string
}

// Parse reads a parameterized field body. The primary value is lowercased.
//
// Malformed parameters are dropped rather than failing the parse: if the
// primary value is usable, a Value is returned with whatever parameters could
// be recovered. An error is returned only when the primary value itself is
// invalid.
func Parse(v string) (*Value, error) {
	mt, ps, err := mime.ParseMediaType(v)
	if err != nil && !errors.Is(err, mime.ErrInvalidMediaParameter) {
		return nil, err
	}

	if ps == nil {
		ps = map[string]string{}
	}

	return &Value{mt, ps}, nil
}

// New creates a Value from a primary value and, optionally, a map of
// parameters. The map is used as-is, not copied.
func New(v string, ps ...map[string]string) *Value {
	if len(ps) > 0 && ps[0] != nil {
		return &Value{v, ps[0]}
	}
	return &Value{v, map[string]string{}}
}

// Modifier is a change applied to a Value by Modify().
type Modifier func(*Value)

// Change replaces the primary value.
func Change(value string) Modifier {
	return func(pv *Value) {
		pv.v = value
	}
}

// Set adds or replaces the named parameter.
func Set(name, value string) Modifier {
	return func(pv *Value) {
		pv.ps[name] = value
	}
}

// Delete removes the named parameter.
func Delete(name string) Modifier {
	return func(pv *Value) {
		delete(pv.ps, name)
	}
}

// Modify clones pv, applies the changes to the clone in order, and returns it.
//
//	v, _ := param.Parse("multipart/mixed; boundary=abc123")
//	nv := param.Modify(v, param.Change("multipart/alternative"))
func Modify(pv *Value, changes ...Modifier) *Value {
	c := pv.Clone()
	for _, change := range changes {
		change(c)
	}
	return c
}

// Value returns the primary value, the part before the first semicolon.
func (pv *Value) Value() string {
	return pv.v
}

// MediaType is a synonym for Value() for use with Content-type.
func (pv *Value) MediaType() string {
	return pv.v
}

// Presentation is a synonym for Value() for use with Content-disposition,
// returning "inline" or "attachment".
func (pv *Value) Presentation() string {
	return pv.v
}

// Type returns the part of the media type before the slash, e.g., "image" for
// "image/jpeg". It returns an empty string if there is no slash.
func (pv *Value) Type() string {
	if ix := strings.IndexRune(pv.v, '/'); ix >= 0 {
		return pv.v[:ix]
	}
	return ""
}

// Subtype returns the part of the media type after the slash, e.g., "html"
// for "text/html". It returns an empty string if there is no slash.
func (pv *Value) Subtype() string {
	if ix := strings.IndexRune(pv.v, '/'); ix >= 0 {
		return pv.v[ix+1:]
	}
	return ""
}

// Parameters returns the parameter map. Do not modify it.
func (pv *Value) Parameters() map[string]string {
	return pv.ps
}

// Parameter returns the named parameter or an empty string.
func (pv *Value) Parameter(k string) string {
	return pv.ps[k]
}

// Filename returns the filename parameter.
func (pv *Value) Filename() string {
	return pv.ps[Filename]
}

// Charset returns the charset parameter.
func (pv *Value) Charset() string {
	return pv.ps[Charset]
}

// Boundary returns the boundary parameter.
func (pv *Value) Boundary() string {
	return pv.ps[Boundary]
}

// String serializes the Value with its parameters sorted by name.
func (pv *Value) String() string {
	pks := make([]string, 0, len(pv.ps))
	for k := range pv.ps {
		pks = append(pks, k)
	}
	sort.Strings(pks)

	parts := make([]string, len(pv.ps)+1)
	parts[0] = pv.v
	for n, k := range pks {
		parts[n+1] = fmt.Sprintf("%s=%s", k, quote(pv.ps[k]))
	}

	return strings.Join(parts, "; ")
}

// quote wraps v in double quotes when it is empty or holds anything that
// cannot appear in a bare parameter token.
func quote(v string) string {
	if v != "" && !strings.ContainsAny(v, " \t()<>@,;:\\\"/[]?=") {
		return v
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, c := range v {
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	b.WriteByte('"')
	return b.String()
}

// Bytes is String() as a slice of bytes.
func (pv *Value) Bytes() []byte {
	return []byte(pv.String())
}

// Clone returns a deep copy.
func (pv *Value) Clone() *Value {
	c := Value{v: pv.v, ps: make(map[string]string, len(pv.ps))}
	for k, v := range pv.ps {
		c.ps[k] = v
	}
	return &c
}
