package transfer

import (
	"io"

	"github.com/zostay/go-contenttree/message/header"
)

// Transfer encoding names, as found in Content-transfer-encoding.
const (
	None            = ""                 // as-is
	Bit7            = "7bit"             // as-is
	Bit8            = "8bit"             // as-is
	Binary          = "binary"           // as-is
	QuotedPrintable = "quoted-printable" // quoted-printable to and from binary
	Base64          = "base64"           // base64 to and from binary
)

// writer closes the wrapped Closer, if any, on Close.
type writer struct {
	io.Writer
	io.Closer
}

// Close closes the nested Closer when there is one.
func (w *writer) Close() error {
	if w.Closer != nil {
		return w.Closer.Close()
	}
	return nil
}

// Transcoding is a pair of functions that add and remove one transfer
// encoding.
type Transcoding struct {
	// Encoder returns an io.WriteCloser that encodes whatever is written to
	// it onto the given io.Writer. It must be closed to flush.
	Encoder func(io.Writer) io.WriteCloser

	// Decoder returns an io.Reader that decodes what it reads from the given
	// io.Reader.
	Decoder func(io.Reader) io.Reader
}

// AsIsTranscoder leaves bytes alone in both directions.
var AsIsTranscoder = Transcoding{NewAsIsEncoder, NewAsIsDecoder}

// Transcodings maps each supported Content-transfer-encoding to its
// Transcoding. Names missing from the map are treated as-is.
var Transcodings = map[string]Transcoding{
	None:            AsIsTranscoder,
	Bit7:            AsIsTranscoder,
	Bit8:            AsIsTranscoder,
	Binary:          AsIsTranscoder,
	QuotedPrintable: {NewQuotedPrintableEncoder, NewQuotedPrintableDecoder},
	Base64:          {NewBase64Encoder, NewBase64Decoder},
}

// IsEncoding reports whether cte names a transfer encoding that changes the
// bytes.
func IsEncoding(cte string) bool {
	return cte == QuotedPrintable || cte == Base64
}

// ApplyTransferEncoding returns an io.WriteCloser that writes to w with the
// transfer encoding named in h applied. Close must be called when done.
func ApplyTransferEncoding(h *header.Header, w io.Writer) io.WriteCloser {
	cte, err := h.GetTransferEncoding()
	if err != nil {
		return NewAsIsEncoder(w)
	}

	if tc, hasCode := Transcodings[cte]; hasCode {
		return tc.Encoder(w)
	}

	return NewAsIsEncoder(w)
}

// ApplyTransferDecoding returns an io.Reader that removes the transfer
// encoding named in h from the bytes read from r. A multipart Content-type is
// never transfer decoded.
func ApplyTransferDecoding(h *header.Header, r io.Reader) io.Reader {
	ct, err := h.GetContentType()
	if err == nil && ct.Type() == "multipart" {
		return r
	}

	cte, err := h.GetTransferEncoding()
	if err != nil {
		return r
	}

	if tc, hasCode := Transcodings[cte]; hasCode {
		return tc.Decoder(r)
	}

	return r
}
