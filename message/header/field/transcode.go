package field

import (
	"mime"
	"strings"

	"github.com/zostay/go-contenttree/charset"
)

var wordDecoder = &mime.WordDecoder{CharsetReader: charset.CharsetReader}

// Encode returns body with RFC 2047 B-encoding applied if it contains
// characters that cannot appear in a header as-is. Plain ASCII is returned
// unchanged.
func Encode(body string) string {
	return mime.BEncoding.Encode("utf-8", body)
}

// Decode replaces any RFC 2047 encoded words in body with the text they
// encode. Unknown charsets and bad bytes are handled as charset.Decode does.
func Decode(body string) (string, error) {
	if !strings.Contains(body, "=?") {
		return body, nil
	}
	return wordDecoder.DecodeHeader(body)
}
