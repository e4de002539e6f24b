package content

import (
	"errors"
	"fmt"
	"io"
	"strings"

	gomessage "github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset" // registers charsets with go-message
)

// ReadEntity parses a message from r with go-message and adapts it with
// FromEntity.
func ReadEntity(r io.Reader) (Node, error) {
	e, err := gomessage.Read(r)
	if err != nil && !isRecoverable(err) {
		return nil, fmt.Errorf("reading message: %w", err)
	}
	return FromEntity(e)
}

// FromEntity adapts a message parsed by github.com/emersion/go-message. The
// entity bodies are streams, so the whole tree is read up front.
//
// go-message removes the transfer encoding and converts text bodies in a
// charset it knows to UTF-8. Those leaves report a charset of utf-8. Text in
// an unknown charset keeps its label and is left to the resolver's decoder.
func FromEntity(e *gomessage.Entity) (Node, error) {
	mt, params, err := e.Header.ContentType()
	if err != nil || mt == "" {
		mt, params = DefaultMediaType, nil
	}

	if mr := e.MultipartReader(); mr != nil {
		defer func() { _ = mr.Close() }()

		var children []Node
		for {
			p, err := mr.NextPart()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil && !isRecoverable(err) {
				return nil, fmt.Errorf("reading part %d of %s: %w", len(children), mt, err)
			}

			child, err := FromEntity(p)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}

		return NewContainer(mt, children...), nil
	}

	b, err := io.ReadAll(e.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s body: %w", mt, err)
	}

	cs := params["charset"]
	if strings.HasPrefix(mt, "text/") && convertedCharset(cs) {
		cs = "utf-8"
	}

	return NewLeaf(mt, cs, b), nil
}

// isRecoverable matches the go-message errors that still come with a usable
// entity.
func isRecoverable(err error) bool {
	return gomessage.IsUnknownCharset(err) || gomessage.IsUnknownEncoding(err)
}

// convertedCharset reports whether go-message converts text in the given
// charset to UTF-8.
func convertedCharset(label string) bool {
	label = strings.ToLower(label)
	if label == "" || label == "utf-8" || label == "us-ascii" {
		return true
	}

	if gomessage.CharsetReader == nil {
		return false
	}

	_, err := gomessage.CharsetReader(label, strings.NewReader(""))
	return err == nil
}
