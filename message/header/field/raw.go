package field

// Raw is the field exactly as it was read, possibly folded. It is immutable.
type Raw struct {
	field []byte // complete raw field
	colon int    // the index of the colon
}

// String returns the raw field.
func (f *Raw) String() string {
	return string(f.field)
}

// Bytes returns the raw field.
func (f *Raw) Bytes() []byte {
	return f.field
}

// Name returns the raw name, which may be folded.
func (f *Raw) Name() string {
	return string(f.field[:f.colon])
}

// Body returns the raw body, which may be folded and encoded.
func (f *Raw) Body() string {
	off := 1
	if f.colon == len(f.field) {
		off = 0
	}
	return string(f.field[f.colon+off:])
}
