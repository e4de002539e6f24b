package field

import (
	"bytes"
)

// BadStartError is returned when the header begins with text that does not
// look like a header field. The skipped text is kept in BadStart.
type BadStartError struct {
	BadStart []byte
}

// Error returns the error message.
func (err *BadStartError) Error() string {
	return "header starts with text that does not appear to be a header"
}

// Line is the unparsed content of one complete field, continuation lines
// included.
type Line []byte

// Lines is zero or more Line.
type Lines []Line

// ParseLines splits a header into field lines. A line that starts with a
// space or tab, or that has no colon, continues the previous field. Such
// lines at the very start have no field to continue; they are skipped and
// reported with a BadStartError, but the remaining lines are still returned.
func ParseLines(m, lb []byte) (Lines, error) {
	h := make(Lines, 0, len(m)/80)
	var err *BadStartError
	for _, line := range bytes.SplitAfter(m, lb) {
		if len(line) == 0 {
			break
		}

		if line[0] == '\t' || line[0] == ' ' || !bytes.Contains(line, []byte(":")) {
			if len(h) == 0 {
				if err != nil {
					err.BadStart = append(err.BadStart, line...)
				} else {
					err = &BadStartError{line}
				}
				continue
			}

			h[len(h)-1] = append(h[len(h)-1], line...)
			continue
		}

		h = append(h, line)
	}

	if err != nil {
		return h, err
	}
	return h, nil
}

// Parse builds a Field from a single Line. The name and body are unfolded and
// the body has encoded words decoded. The original bytes, minus the trailing
// line break, are kept as Raw.
func Parse(f Line, lb []byte) *Field {
	rawField := bytes.TrimRight(f, string(lb))

	off := 1
	ix := bytes.IndexByte(rawField, ':')
	if ix < 0 {
		ix = len(rawField)
		off = 0
	}

	name := string(Unfold(rawField[:ix]))
	body := string(bytes.TrimSpace(Unfold(rawField[ix+off:])))
	if decBody, err := Decode(body); err == nil {
		body = decBody
	}

	return &Field{
		Base: Base{name, body},
		Raw:  &Raw{rawField, ix},
	}
}
