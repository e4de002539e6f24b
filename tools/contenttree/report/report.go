// Package report prints what the content resolver finds in a message.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/zostay/go-contenttree/content"
	"github.com/zostay/go-contenttree/message"
	"github.com/zostay/go-contenttree/message/walker"
)

// Parsers that may be named in Reporter.Parser.
const (
	Native    = "native"
	GoMessage = "go-message"
)

// Output formats that may be named in Reporter.Format.
const (
	Text = "text"
	JSON = "json"
)

// ErrUnknownParser is returned when Reporter.Parser names no known parser.
var ErrUnknownParser = errors.New("unknown parser")

// Summary is what is reported about one message.
type Summary struct {
	Name      string            `json:"name"`
	From      string            `json:"from,omitempty"`
	Date      *time.Time        `json:"date,omitempty"`
	Subject   string            `json:"subject,omitempty"`
	Structure []string          `json:"structure,omitempty"`
	Content   []content.Content `json:"content"`
	Error     string            `json:"error,omitempty"`
}

// Reporter summarizes messages and writes the summaries to Out.
type Reporter struct {
	Out io.Writer

	// Parser is Native or GoMessage. The header and structure always come
	// from the native parser.
	Parser string

	// Preview is how many runes of each content item to print in Text
	// format. 0 prints only the kind.
	Preview int

	// Format is Text or JSON.
	Format string

	// Structure adds the media type of every part, indented by depth.
	Structure bool
}

// Report summarizes the message in raw and writes the summary. A summary is
// written even when the content cannot be fully resolved, and the error is
// returned afterward.
func (rp *Reporter) Report(name string, raw []byte) error {
	s, err := rp.Summarize(name, raw)
	if s == nil {
		return err
	}

	if werr := rp.Write(s); werr != nil {
		return werr
	}

	return err
}

// Summarize parses raw and resolves its content. If the content cannot be
// resolved, the items found before the error are kept in the summary.
func (rp *Reporter) Summarize(name string, raw []byte) (*Summary, error) {
	msg, err := message.Parse(bytes.NewReader(raw), message.WithUnlimitedRecursion())
	if err != nil && !errors.Is(err, message.ErrNoBoundary) {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	s := &Summary{Name: name}
	h := msg.GetHeader()

	if al, err := h.GetFrom(); err == nil {
		s.From = al.String()
	}

	if d, err := h.GetDate(); err == nil {
		s.Date = &d
	}

	s.Subject, _ = h.GetSubject()

	if rp.Structure {
		s.Structure = structure(msg)
	}

	var n content.Node
	switch rp.Parser {
	case Native, "":
		n = content.FromPart(msg)
	case GoMessage:
		n, err = content.ReadEntity(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownParser, rp.Parser)
	}

	s.Content, err = content.Collect(content.Traverse(n))
	if err != nil {
		s.Error = err.Error()
		return s, fmt.Errorf("resolving %s: %w", name, err)
	}

	return s, nil
}

// structure lists the media type of each part, indented two spaces per
// level.
func structure(msg message.Part) []string {
	var lines []string
	_ = walker.Parts(func(depth, _ int, part message.Part) error {
		mt, err := part.GetHeader().GetMediaType()
		if err != nil {
			mt = content.DefaultMediaType
		}
		lines = append(lines, strings.Repeat("  ", depth)+mt)
		return nil
	}).Walk(msg)
	return lines
}

// Write prints s in the configured format.
func (rp *Reporter) Write(s *Summary) error {
	if rp.Format == JSON {
		return json.NewEncoder(rp.Out).Encode(s)
	}

	b := &strings.Builder{}
	_, _ = fmt.Fprintln(b, s.Name)

	for _, line := range s.Structure {
		_, _ = fmt.Fprintf(b, "  | %s\n", line)
	}

	if s.From != "" {
		_, _ = fmt.Fprintf(b, "  From: %s\n", s.From)
	}
	if s.Date != nil {
		_, _ = fmt.Fprintf(b, "  Date: %s\n", s.Date.Format(time.RFC3339))
	}
	if s.Subject != "" {
		_, _ = fmt.Fprintf(b, "  Subject: %s\n", s.Subject)
	}

	for _, c := range s.Content {
		if rp.Preview > 0 {
			_, _ = fmt.Fprintf(b, "  - %s: %s\n", c.Kind(), content.Preview(c, rp.Preview))
		} else {
			_, _ = fmt.Fprintf(b, "  - %s\n", c.Kind())
		}
	}

	if s.Error != "" {
		_, _ = fmt.Fprintf(b, "  ! %s\n", s.Error)
	}

	_, err := io.WriteString(rp.Out, b.String())
	return err
}
