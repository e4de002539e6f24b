package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zostay/go-contenttree/message"
)

// contextLines is how many unchanged lines are kept on each side of a change.
const contextLines = 3

// RoundTrip parses raw and serializes the result again. A parse that keeps a
// part unsplit is not an error.
func RoundTrip(raw []byte) ([]byte, error) {
	msg, err := message.Parse(bytes.NewReader(raw), message.WithUnlimitedRecursion())
	if err != nil && !errors.Is(err, message.ErrNoBoundary) {
		return nil, err
	}

	out := &bytes.Buffer{}
	if _, err := msg.WriteTo(out); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// Diff writes a line diff from a to b, with runs of unchanged lines trimmed
// to a little context. It returns false and writes nothing if they are the
// same.
func Diff(w io.Writer, a, b string) (bool, error) {
	if a == b {
		return false, nil
	}

	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	buf := &strings.Builder{}
	for i, d := range diffs {
		ls := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writeLines(buf, "-", ls)
		case diffmatchpatch.DiffInsert:
			writeLines(buf, "+", ls)
		default:
			head, tail := contextLines, contextLines
			if i == 0 {
				head = 0
			}
			if i == len(diffs)-1 {
				tail = 0
			}

			if len(ls) <= head+tail {
				writeLines(buf, " ", ls)
				continue
			}

			writeLines(buf, " ", ls[:head])
			_, _ = fmt.Fprintf(buf, "@@ %d unchanged lines @@\n", len(ls)-head-tail)
			writeLines(buf, " ", ls[len(ls)-tail:])
		}
	}

	_, err := io.WriteString(w, buf.String())
	return true, err
}

func splitLines(s string) []string {
	ls := strings.SplitAfter(s, "\n")
	if len(ls) > 0 && ls[len(ls)-1] == "" {
		ls = ls[:len(ls)-1]
	}
	return ls
}

func writeLines(buf *strings.Builder, prefix string, ls []string) {
	for _, l := range ls {
		buf.WriteString(prefix)
		buf.WriteString(l)
		if !strings.HasSuffix(l, "\n") {
			buf.WriteString("\n\\ No newline at end of file\n")
		}
	}
}
