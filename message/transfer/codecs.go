package transfer

import (
	"io"
	"mime/quotedprintable"
)

// NewAsIsEncoder writes to w unchanged. Closing it does not close w.
func NewAsIsEncoder(w io.Writer) io.WriteCloser {
	return &writer{w, nil}
}

// NewAsIsDecoder returns r.
func NewAsIsDecoder(r io.Reader) io.Reader {
	return r
}

// NewQuotedPrintableEncoder quoted-printable encodes onto w. Close flushes the
// last line.
func NewQuotedPrintableEncoder(w io.Writer) io.WriteCloser {
	qw := quotedprintable.NewWriter(w)
	return &writer{qw, qw}
}

// NewQuotedPrintableDecoder decodes quoted-printable text read from r. Soft
// line breaks are removed.
func NewQuotedPrintableDecoder(r io.Reader) io.Reader {
	return quotedprintable.NewReader(r)
}
