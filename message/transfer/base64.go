package transfer

import (
	"encoding/base64"
	"io"
)

const defaultBase64LineLength = 76

var defaultBase64LineBreak = []byte{'\n'}

// newlineWriter inserts a line break after every so many bytes.
type newlineWriter struct {
	every int
	acc   int
	lbr   []byte
	w     io.Writer
}

func (nw *newlineWriter) Write(b []byte) (int, error) {
	n := 0
	for len(b)+nw.acc > nw.every {
		chunk := nw.every - nw.acc
		ln, err := nw.w.Write(b[:chunk])
		n += ln
		if err != nil {
			return n, err
		}

		if _, err := nw.w.Write(nw.lbr); err != nil {
			return n, err
		}

		b = b[chunk:]
		nw.acc = 0
	}

	ln, err := nw.w.Write(b)
	n += ln
	nw.acc += ln
	return n, err
}

// Close ends the final line. The underlying writer is not closed.
func (nw *newlineWriter) Close() error {
	if nw.acc == 0 {
		return nil
	}
	_, err := nw.w.Write(nw.lbr)
	return err
}

// base64Closer flushes the encoder before ending the final line.
type base64Closer struct {
	enc io.WriteCloser
	nw  *newlineWriter
}

func (c *base64Closer) Close() error {
	if err := c.enc.Close(); err != nil {
		return err
	}
	return c.nw.Close()
}

// NewBase64Encoder returns an io.WriteCloser that writes base64 to w in lines
// of 76 characters.
func NewBase64Encoder(w io.Writer) io.WriteCloser {
	nw := &newlineWriter{
		every: defaultBase64LineLength,
		lbr:   defaultBase64LineBreak,
		w:     w,
	}
	enc := base64.NewEncoder(base64.StdEncoding, nw)
	return &writer{enc, &base64Closer{enc, nw}}
}

// base64Filter drops the bytes that cannot be part of base64 text, such as
// spaces and tabs used to indent lines, so the decoder does not fail on them.
type base64Filter struct {
	r io.Reader
}

func isBase64Byte(c byte) bool {
	return c >= 'A' && c <= 'Z' ||
		c >= 'a' && c <= 'z' ||
		c >= '0' && c <= '9' ||
		c == '+' || c == '/' || c == '='
}

func (f *base64Filter) Read(p []byte) (int, error) {
	for {
		n, err := f.r.Read(p)
		keep := p[:0]
		for _, c := range p[:n] {
			if isBase64Byte(c) {
				keep = append(keep, c)
			}
		}

		if len(keep) > 0 || err != nil {
			return len(keep), err
		}
	}
}

// NewBase64Decoder returns an io.Reader that decodes the base64 read from r.
// Whitespace and other stray bytes are ignored.
func NewBase64Decoder(r io.Reader) io.Reader {
	return base64.NewDecoder(base64.StdEncoding, &base64Filter{r})
}
