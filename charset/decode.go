// Package charset turns the bytes of a text body part into a Go string.
// Nothing in this package fails on bad input: an unknown charset label is
// read as UTF-8 and bytes that cannot be decoded are replaced with
// unicode.ReplacementChar.
package charset

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Replacement is written in place of each byte sequence that cannot be
// decoded.
const Replacement = "\uFFFD"

// Lookup finds the encoding for the given charset label. It returns a nil
// encoding when the bytes should be read as UTF-8: the label is empty, names
// UTF-8 or US-ASCII, or names a registered charset that has no decoder. It
// returns false if the label is not recognized at all.
func Lookup(label string) (encoding.Encoding, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	switch label {
	case "", "utf-8", "utf8", "us-ascii", "ascii":
		return nil, true
	case "latin1", "latin-1":
		return charmap.ISO8859_1, true
	}

	enc, err := ianaindex.MIME.Encoding(label)
	if err != nil || enc == nil {
		enc, err = ianaindex.IANA.Encoding(label)
	}
	if err != nil {
		return nil, false
	}

	if enc == nil || enc == unicode.UTF8 {
		return nil, true
	}

	return enc, true
}

// Decode converts b from the named charset into a UTF-8 string. It never
// fails. An unrecognized charset is treated as UTF-8, and any byte sequence
// that is invalid for the charset is replaced by Replacement.
func Decode(label string, b []byte) string {
	enc, _ := Lookup(label)
	if enc == nil {
		return toValidUTF8(b)
	}

	out, _, err := transform.Bytes(enc.NewDecoder(), b)
	if err != nil {
		return toValidUTF8(b)
	}

	return toValidUTF8(out)
}

// DecodeReader reads all of r and returns it decoded as Decode would. Only a
// read error from r is returned.
func DecodeReader(label string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return Decode(label, b), nil
}

// CharsetReader has the signature expected by mime.WordDecoder.CharsetReader,
// so that encoded words in header fields are decoded with the same forgiving
// policy as bodies.
func CharsetReader(label string, input io.Reader) (io.Reader, error) {
	s, err := DecodeReader(label, input)
	if err != nil {
		return nil, err
	}
	return strings.NewReader(s), nil
}

// toValidUTF8 replaces each invalid UTF-8 sequence in b with Replacement.
func toValidUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	var buf bytes.Buffer
	buf.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			buf.WriteString(Replacement)
		} else {
			buf.Write(b[:size])
		}
		b = b[size:]
	}

	return buf.String()
}
