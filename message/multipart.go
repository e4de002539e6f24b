package message

import (
	"fmt"
	"io"

	"github.com/zostay/go-contenttree/message/header"
	"github.com/zostay/go-contenttree/message/header/param"
)

// Multipart is a branch part. Its Content-type should be a multipart/* type
// with a boundary parameter.
type Multipart struct {
	// Header is the part header.
	header.Header

	// prefix and suffix hold the bytes before the first boundary and after
	// the final boundary so the part can be written back byte-for-byte.
	//
	// A nil prefix means there was no opening boundary, so none is written. A
	// non-empty prefix must end with a line break.
	//
	// A nil suffix means there was no final boundary, so none is written. A
	// non-empty suffix must start with a line break.
	prefix, suffix []byte

	parts []Part
}

// WriteTo writes the header and every sub-part to w. It fails if the
// Content-type has no boundary parameter.
//
// The sub-part bodies are consumed, so this can only be called once.
func (mm *Multipart) WriteTo(w io.Writer) (int64, error) {
	boundary, err := mm.GetBoundary()
	if err != nil {
		return 0, err
	}

	br := mm.Break()

	n, err := mm.Header.WriteTo(w)
	if err != nil {
		return n, err
	}

	pn, err := w.Write(mm.prefix)
	n += int64(pn)
	if err != nil {
		return n, err
	}

	if len(mm.parts) > 0 {
		hadContent := false
		for i, part := range mm.parts {
			if hadContent {
				bn, err := fmt.Fprint(w, br)
				n += int64(bn)
				if err != nil {
					return n, err
				}
			}

			if i > 0 || mm.prefix != nil {
				bn, err := fmt.Fprintf(w, "--%s%s", boundary, br)
				n += int64(bn)
				if err != nil {
					return n, err
				}
			}

			// the break before the next boundary is only needed after content
			hadContent = part.IsMultipart() || part.GetReader() != nil

			pn, err := part.WriteTo(w)
			n += pn
			if err != nil {
				return n, err
			}
		}

		if mm.suffix != nil {
			bn, err := fmt.Fprintf(w, "%s--%s--", br, boundary)
			n += int64(bn)
			if err != nil {
				return n, err
			}
		}
	}

	sn, err := w.Write(mm.suffix)
	n += int64(sn)
	return n, err
}

// IsMultipart always returns true.
func (mm *Multipart) IsMultipart() bool {
	return true
}

// IsEncoded always returns false.
func (mm *Multipart) IsEncoded() bool {
	return false
}

// GetHeader returns the part header.
func (mm *Multipart) GetHeader() *header.Header {
	return &mm.Header
}

// GetReader always returns nil.
func (mm *Multipart) GetReader() io.Reader {
	return nil
}

// GetParts returns the sub-parts.
func (mm *Multipart) GetParts() []Part {
	return mm.parts
}

// newMultipart builds a Multipart of the given media type with a fresh
// boundary.
func newMultipart(mt string, parts []Part) *Multipart {
	m := &Multipart{
		prefix: []byte{},
		suffix: header.LF.Bytes(),
		parts:  parts,
	}
	m.SetParamValue(header.ContentType, param.New(mt, map[string]string{
		param.Boundary: GenerateBoundary(),
	}))
	return m
}

// MultipartMixed returns a multipart/mixed branch holding parts.
func MultipartMixed(parts ...Part) *Multipart {
	return newMultipart("multipart/mixed", parts)
}

// MultipartAlternative returns a multipart/alternative branch holding parts.
func MultipartAlternative(parts ...Part) *Multipart {
	return newMultipart("multipart/alternative", parts)
}

// MultipartRelated returns a multipart/related branch holding parts.
func MultipartRelated(parts ...Part) *Multipart {
	return newMultipart("multipart/related", parts)
}
