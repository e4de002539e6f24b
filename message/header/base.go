package header

import (
	"errors"
	"io"
	"strings"

	"github.com/zostay/go-contenttree/message/header/field"
)

// ErrIndexOutOfRange is returned when a field index is too small or too
// large.
var ErrIndexOutOfRange = errors.New("header field index is out of range")

// Base is the low-level, ordered storage of header fields.
type Base struct {
	lbr      Break
	vf       *field.FoldEncoding
	fields   []*field.Field
	badStart []byte
}

// Break returns the line break used between fields. It defaults to LF.
func (h *Base) Break() Break {
	if h.lbr == Meh {
		return LF
	}
	return h.lbr
}

// SetBreak changes the line break.
func (h *Base) SetBreak(lbr Break) {
	h.lbr = lbr
}

// FoldEncoding returns the folding used when writing fields that have no raw
// form.
func (h *Base) FoldEncoding() *field.FoldEncoding {
	if h.vf == nil {
		return field.DefaultFoldEncoding
	}
	return h.vf
}

// SetFoldEncoding changes the folding used on output.
func (h *Base) SetFoldEncoding(vf *field.FoldEncoding) {
	h.vf = vf
}

// Len returns the number of fields.
func (h *Base) Len() int {
	return len(h.fields)
}

// GetField returns the nth field or nil if there is no such field.
func (h *Base) GetField(n int) *field.Field {
	if n < 0 || n >= len(h.fields) {
		return nil
	}
	return h.fields[n]
}

// ListFields returns a copy of the field list.
func (h *Base) ListFields() []*field.Field {
	fs := make([]*field.Field, len(h.fields))
	copy(fs, h.fields)
	return fs
}

// GetIndexesNamed returns the indexes of all fields with the given name,
// compared case-insensitively.
func (h *Base) GetIndexesNamed(name string) []int {
	is := make([]int, 0, 2)
	for i, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			is = append(is, i)
		}
	}
	return is
}

// GetAllFieldsNamed returns all fields with the given name.
func (h *Base) GetAllFieldsNamed(name string) []*field.Field {
	fs := make([]*field.Field, 0, 2)
	for _, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			fs = append(fs, f)
		}
	}
	return fs
}

// InsertBeforeField inserts a new field at index n, clamped to the valid
// range.
func (h *Base) InsertBeforeField(n int, name, body string) {
	if n < 0 {
		n = 0
	}
	if n > len(h.fields) {
		n = len(h.fields)
	}

	h.fields = append(h.fields, nil)
	copy(h.fields[n+1:], h.fields[n:])
	h.fields[n] = field.New(name, body)
}

// DeleteField removes the nth field.
func (h *Base) DeleteField(n int) error {
	if n < 0 || n >= len(h.fields) {
		return ErrIndexOutOfRange
	}

	copy(h.fields[n:], h.fields[n+1:])
	h.fields = h.fields[:len(h.fields)-1]

	return nil
}

// Clone returns a deep copy of the fields. Raw forms are shared because they
// are immutable.
func (h *Base) Clone() *Base {
	fs := make([]*field.Field, len(h.fields))
	for i, f := range h.fields {
		c := *f
		fs[i] = &c
	}

	return &Base{
		lbr:      h.lbr,
		vf:       h.vf,
		fields:   fs,
		badStart: h.badStart,
	}
}

// WriteTo writes the header, including the blank line that ends it. Fields
// that still have their raw form are written as they were read.
func (h *Base) WriteTo(w io.Writer) (int64, error) {
	lbr := h.Break().Bytes()

	total := int64(0)
	if len(h.badStart) > 0 {
		n, err := w.Write(h.badStart)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	for _, f := range h.fields {
		if f.Raw != nil {
			n, err := w.Write(f.Raw.Bytes())
			total += int64(n)
			if err != nil {
				return total, err
			}

			n, err = w.Write(lbr)
			total += int64(n)
			if err != nil {
				return total, err
			}
			continue
		}

		n, err := h.FoldEncoding().Fold(w, f.Bytes(), lbr)
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err := w.Write(lbr)
	total += int64(n)

	return total, err
}
