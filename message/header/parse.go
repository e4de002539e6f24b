package header

import (
	"bytes"
	"errors"

	"github.com/zostay/go-contenttree/message/header/field"
)

// Parse parses m, which must hold the whole header including the blank line
// that ends it, using lb to split fields.
//
// Text at the start of the header that does not look like a field is kept so
// the header can be written back out, and a *field.BadStartError is returned
// alongside the usable header. A header that is nothing but a line break (a
// message part with no fields) is not an error.
func Parse(m []byte, lb Break) (*Header, error) {
	lines, err := field.ParseLines(m, lb.Bytes())

	var badStart []byte
	var finalErr error
	var bse *field.BadStartError
	switch {
	case errors.As(err, &bse):
		badStart = bse.BadStart
		if len(bytes.Trim(badStart, "\r\n")) > 0 {
			finalErr = bse
		} else {
			badStart = nil
		}
	case err != nil:
		return nil, err
	}

	fields := make([]*field.Field, len(lines))
	for i, line := range lines {
		fields[i] = field.Parse(line, lb.Bytes())
	}

	return &Header{
		Base: Base{
			lbr:      lb,
			vf:       field.DoNotFoldEncoding,
			fields:   fields,
			badStart: badStart,
		},
	}, finalErr
}
