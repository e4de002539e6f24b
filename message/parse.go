package message

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/zostay/go-contenttree/internal/scanner"
	"github.com/zostay/go-contenttree/message/header"
	"github.com/zostay/go-contenttree/message/header/field"
	"github.com/zostay/go-contenttree/message/transfer"
)

// Constants related to Parse options.
const (
	// DefaultMaxMultipartDepth is how deep the parser recurses into nested
	// multipart parts by default.
	DefaultMaxMultipartDepth = 10

	// DefaultChunkSize is how many bytes are read at a time while looking for
	// the end of the header.
	DefaultChunkSize = 16_384

	// DefaultMaxHeaderLength is how many bytes are scanned for the end of the
	// header before giving up.
	DefaultMaxHeaderLength = bufio.MaxScanTokenSize

	// DefaultMaxPartLength is the largest part, at any level, the parser will
	// split out of a multipart body.
	DefaultMaxPartLength = 16 * 1024 * 1024
)

// Errors that occur during parsing.
var (
	// ErrNoBoundary is returned with the unsplit part when a multipart
	// Content-type has no boundary parameter.
	ErrNoBoundary = errors.New("the boundary parameter is missing from Content-type")

	// ErrLargeHeader is returned when the header is longer than the maximum
	// header length.
	ErrLargeHeader = errors.New("the header exceeds the maximum parse length")

	// ErrLargePart is returned when a part is longer than the maximum part
	// length.
	ErrLargePart = errors.New("a message part exceeds the maximum parse length")
)

var splits = [][]byte{
	[]byte("\x0d\x0a\x0d\x0a"), // \r\n\r\n
	[]byte("\x0a\x0d\x0a\x0d"), // \n\r\n\r, extremely unlikely, possibly never
	[]byte("\x0a\x0a"),         // \n\n
	[]byte("\x0d\x0d"),         // \r\r
}

type parser struct {
	maxHeaderLen int
	maxPartLen   int
	maxDepth     int
	chunkSize    int
	decode       bool
}

func (pr *parser) clone() *parser {
	p := *pr
	return &p
}

var defaultParser = &parser{
	maxHeaderLen: DefaultMaxHeaderLength,
	maxPartLen:   DefaultMaxPartLength,
	maxDepth:     DefaultMaxMultipartDepth,
	chunkSize:    DefaultChunkSize,
	decode:       false,
}

// ParseOption changes how Parse works.
type ParseOption func(pr *parser)

// WithMaxHeaderLength sets how many bytes are read looking for the end of the
// header before Parse fails with ErrLargeHeader. A value of 0 or less removes
// the limit.
func WithMaxHeaderLength(n int) ParseOption {
	return func(pr *parser) { pr.maxHeaderLen = n }
}

// WithMaxPartLength sets the largest part that may be split out of a
// multipart body before Parse fails with ErrLargePart.
func WithMaxPartLength(n int) ParseOption {
	return func(pr *parser) { pr.maxPartLen = n }
}

// DecodeTransferEncoding makes leaf bodies read with their
// Content-transfer-encoding removed. Without it, bodies are left encoded,
// which keeps round-tripping exact.
func DecodeTransferEncoding() ParseOption {
	return func(pr *parser) { pr.decode = true }
}

// WithChunkSize sets how many bytes are read at a time while looking for the
// end of the header.
func WithChunkSize(chunkSize int) ParseOption {
	return func(pr *parser) { pr.chunkSize = chunkSize }
}

// WithMaxDepth sets how many levels of nested multipart parts are split out.
// Deeper parts are left as *Opaque.
func WithMaxDepth(maxDepth int) ParseOption {
	return func(pr *parser) { pr.maxDepth = maxDepth }
}

// WithoutMultipart stops Parse from splitting multipart bodies at all, so the
// returned part is always *Opaque and only the header is read up front.
func WithoutMultipart() ParseOption {
	return func(pr *parser) { pr.maxDepth = 0 }
}

// WithUnlimitedRecursion splits nested multipart parts at any depth.
func WithUnlimitedRecursion() ParseOption {
	return func(pr *parser) { pr.maxDepth = -1 }
}

// searchForSplit finds the end of the header. It returns -1 if there is none.
// Otherwise it returns the index just past the blank line and the line break
// the header uses.
func searchForSplit(buf []byte, subpart bool) (int, []byte) {
	if subpart {
		// a part may have no header at all, starting with a bare line break
		for _, s := range splits {
			lb := s[:len(s)/2]
			if bytes.HasPrefix(buf, lb) {
				return len(lb), lb
			}
		}
	}

	for _, s := range splits {
		if ix := bytes.Index(buf, s); ix > -1 {
			return ix + len(s), s[:len(s)/2]
		}
	}

	return -1, nil
}

// splitHeadFromBody reads r until it finds the end of the header. It returns
// the header bytes, the line break in use, and a reader for the body.
func (pr *parser) splitHeadFromBody(r io.Reader, subpart bool) ([]byte, []byte, io.Reader, error) {
	p := make([]byte, pr.chunkSize)
	buf := &bytes.Buffer{}
	searched := 0
	for {
		n, err := r.Read(p)

		if pr.maxHeaderLen > 0 && n+buf.Len() > pr.maxHeaderLen {
			return nil, nil, nil, ErrLargeHeader
		}

		isEOF := false
		if errors.Is(err, io.EOF) {
			isEOF = true
		} else if err != nil {
			return nil, nil, nil, err
		}

		buf.Write(p[:n])

		pos, crlf := searchForSplit(buf.Bytes()[searched:], subpart && searched == 0)
		if pos >= 0 {
			pos += searched
			hdr := make([]byte, pos)
			copy(hdr, buf.Next(pos))

			var body io.Reader
			if br, isBytesReader := r.(*bytes.Reader); isBytesReader {
				// parts of a multipart body are already in memory
				if _, err := buf.ReadFrom(br); err != nil {
					return nil, nil, nil, err
				}
				body = bytes.NewReader(buf.Bytes())
			} else {
				// leave the rest of the original input unread
				body = &remainder{buf.Bytes(), r}
			}

			return hdr, crlf, body, nil
		}

		if isEOF {
			break
		}

		// the split may straddle the chunk boundary
		searched = max(buf.Len()-3, 0)
	}

	// no blank line: the whole input is header
	for _, s := range splits {
		crlf := s[:len(s)/2]
		if bytes.Contains(buf.Bytes(), crlf) {
			return buf.Bytes(), crlf, nil, nil
		}
	}

	return buf.Bytes(), header.LF.Bytes(), nil, nil
}

// parseToOpaque reads a header and wraps the body in an *Opaque. Junk at the
// start of the header does not stop the parse.
func (pr *parser) parseToOpaque(r io.Reader, subpart bool) (*Opaque, error) {
	hdr, crlf, body, err := pr.splitHeadFromBody(r, subpart)
	if err != nil {
		return nil, err
	}

	head, err := header.Parse(hdr, header.Break(crlf))
	var bse *field.BadStartError
	if err != nil && !errors.As(err, &bse) {
		return nil, err
	}

	if pr.decode && body != nil {
		body = transfer.ApplyTransferDecoding(head, body)
	}

	return &Opaque{*head, body, !pr.decode}, nil
}

// Parse reads a message from r and returns its part tree.
//
// The input is read a chunk at a time until a blank line ends the header. The
// line break found there is the line break used for the rest of the message.
// If the header grows past the maximum header length first, Parse fails with
// ErrLargeHeader.
//
// If the Content-type is multipart/* and the depth limit has not been reached,
// the body is split on the boundary and each part is parsed the same way.
// Otherwise the part is returned as an *Opaque whose body is the unread
// remainder of r.
//
// Parse tolerates most damage: a header that starts with junk, a missing
// opening or closing boundary, or a part with no header are all recovered.
// When a multipart Content-type has no boundary, the unsplit part is returned
// along with ErrNoBoundary. A nested part with that problem is kept unsplit
// without an error.
func Parse(r io.Reader, opts ...ParseOption) (Part, error) {
	pr := defaultParser.clone()
	for _, opt := range opts {
		opt(pr)
	}

	msg, err := pr.parseToOpaque(r, false)
	if err != nil {
		return nil, err
	}

	return pr.parse(msg, 0)
}

// parse splits msg into parts if it is multipart.
func (pr *parser) parse(msg *Opaque, depth int) (Part, error) {
	if pr.maxDepth >= 0 && depth >= pr.maxDepth {
		return msg, nil
	}

	pv, err := msg.GetContentType()
	if err != nil || pv.Type() != "multipart" {
		return msg, nil
	}

	if pv.Boundary() == "" {
		return msg, ErrNoBoundary
	}

	if msg.Reader == nil {
		return msg, nil
	}

	// The opening boundary is --boundary and the closing one is
	// --boundary--, each on its own line. The line break before the opening
	// boundary belongs to the prefix and the one after the closing boundary
	// belongs to the suffix. The breaks around middle boundaries belong to the
	// boundary.
	sb := []byte(fmt.Sprintf("--%s%s", pv.Boundary(), msg.Break()))
	mb := []byte(fmt.Sprintf("%s--%s%s", msg.Break(), pv.Boundary(), msg.Break()))
	eb := []byte(fmt.Sprintf("%s--%s--%s", msg.Break(), pv.Boundary(), msg.Break()))
	fb := []byte(fmt.Sprintf("%s--%s--", msg.Break(), pv.Boundary()))

	const (
		modeStart = iota
		modeMiddle
		modeEnd
	)

	sc := bufio.NewScanner(msg.Reader)
	sc.Buffer(make([]byte, pr.chunkSize), pr.maxPartLen)
	var prefix, suffix []byte
	mode := modeStart
	awaitingPrefix := true
	sc.Split(
		scanner.MakeSplitFuncExitByAdvance(
			func(data []byte, atEOF bool) (advance int, token []byte, err error) {
				switch mode {
				case modeStart:
					// is the prefix empty?
					if atEOF || len(data) >= len(sb) {
						if bytes.HasPrefix(data, sb) {
							prefix = []byte{}
							awaitingPrefix = false
							advance = len(sb)
						}

						mode = modeMiddle
						err = scanner.ErrContinue
					}

				case modeMiddle:
					if ix := bytes.Index(data, mb); ix >= 0 {
						advance = ix + len(mb)
						if awaitingPrefix {
							// everything before the first boundary
							prefix = bytes.Clone(data[:ix+len(msg.Break())])
							awaitingPrefix = false
						} else {
							token = data[:ix]
						}
					} else if atEOF {
						mode = modeEnd
						err = scanner.ErrContinue
					}

				case modeEnd:
					// no opening boundary at all: the whole body is one part
					if awaitingPrefix {
						prefix = nil
					}

					if ix := bytes.Index(data, eb); ix >= 0 {
						token = data[:ix]
						suffix = bytes.Clone(data[ix+len(fb):])
					} else if ix := bytes.LastIndex(data, fb); ix >= 0 && ix == len(data)-len(fb) {
						token = data[:ix]
						suffix = []byte{}
					} else {
						// no closing boundary
						token = data
						suffix = nil
					}
					err = bufio.ErrFinalToken

				default:
					panic("unexpected parser state")
				}
				return
			},
		),
	)

	// originalMessage rebuilds the unsplit part after a sub-part fails.
	parts := make([][]byte, 0, 10)
	originalMessage := func() *Opaque {
		for sc.Scan() {
			parts = append(parts, bytes.Clone(sc.Bytes()))
		}

		r := &bytes.Buffer{}
		if prefix != nil {
			r.Write(prefix)
			r.Write(sb)
		}
		r.Write(bytes.Join(parts, mb))
		if suffix != nil {
			r.Write(fb)
			r.Write(suffix)
		}

		return &Opaque{
			Header:  msg.Header,
			Reader:  r,
			encoded: msg.encoded,
		}
	}

	msgParts := make([]Part, 0, 10)
	for sc.Scan() {
		part := bytes.Clone(sc.Bytes())
		parts = append(parts, part)

		opMsg, err := pr.parseToOpaque(bytes.NewReader(part), true)
		if err != nil {
			return originalMessage(), err
		}

		sub, err := pr.parse(opMsg, depth+1)
		if err != nil && !errors.Is(err, ErrNoBoundary) {
			return originalMessage(), err
		}

		msgParts = append(msgParts, sub)
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, ErrLargePart
		}
		return originalMessage(), err
	}

	return &Multipart{
		Header: msg.Header,
		prefix: prefix,
		suffix: suffix,
		parts:  msgParts,
	}, nil
}
