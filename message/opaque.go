package message

import (
	"io"
	"strings"

	"github.com/zostay/go-contenttree/message/header"
	"github.com/zostay/go-contenttree/message/header/param"
	"github.com/zostay/go-contenttree/message/transfer"
)

// Opaque is a leaf part: a header and a body.
type Opaque struct {
	// Header is the part header.
	header.Header

	// Reader holds the body. It is nil when the part has no body at all.
	io.Reader

	// encoded is true when Reader returns the body with the
	// Content-transfer-encoding still applied. Parsed parts are encoded unless
	// the DecodeTransferEncoding option was used. Constructed parts are not.
	encoded bool
}

// countWriter counts the bytes written through it.
type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// WriteTo writes the header and body to w. If the body is held decoded, the
// transfer encoding named in the header is applied as it is written. The
// count returned is the number of bytes written to w.
//
// The body reader is consumed, so this can only be called once.
func (m *Opaque) WriteTo(w io.Writer) (int64, error) {
	total, err := m.Header.WriteTo(w)
	if err != nil || m.Reader == nil {
		return total, err
	}

	if m.encoded {
		n, err := io.Copy(w, m.Reader)
		return total + n, err
	}

	cw := &countWriter{w: w}
	tw := transfer.ApplyTransferEncoding(&m.Header, cw)
	if _, err := io.Copy(tw, m.Reader); err != nil {
		_ = tw.Close()
		return total + cw.n, err
	}

	err = tw.Close()
	return total + cw.n, err
}

// IsMultipart always returns false.
func (m *Opaque) IsMultipart() bool {
	return false
}

// IsEncoded returns true if the bytes read from Reader still have the
// Content-transfer-encoding applied.
//
// A false value does not mean the bytes were changed. Transfer encodings like
// 8bit leave the bytes alone, and a multipart Content-type is never transfer
// decoded.
func (m *Opaque) IsEncoded() bool {
	return m.encoded
}

// GetHeader returns the part header.
func (m *Opaque) GetHeader() *header.Header {
	return &m.Header
}

// GetReader returns the body.
func (m *Opaque) GetReader() io.Reader {
	return m.Reader
}

// GetParts always returns nil.
func (m *Opaque) GetParts() []Part {
	return nil
}

// OpaqueText returns a leaf holding text with the given media type and a
// charset of utf-8. Set a transfer encoding on the header to have WriteTo
// encode the text.
func OpaqueText(mt, text string) *Opaque {
	m := &Opaque{Reader: strings.NewReader(text)}
	m.SetParamValue(header.ContentType, param.New(mt, map[string]string{
		param.Charset: "utf-8",
	}))
	return m
}

// Attachment returns a leaf with the given media type that is presented as an
// attachment with the given filename. The body is read from r.
func Attachment(mt, filename string, r io.Reader) *Opaque {
	m := &Opaque{Reader: r}
	m.SetMediaType(mt)
	m.SetParamValue(header.ContentDisposition, param.New("attachment", map[string]string{
		param.Filename: filename,
	}))
	return m
}
