package field

import (
	"bytes"
	"io"
)

const (
	DefaultFoldIndent          = " "  // indent placed before folded lines
	DefaultPreferredFoldLength = 80   // we prefer header lines shorter than this
	DefaultForcedFoldLength    = 1000 // lines longer than this are always broken

	DoNotFold = -1 // never fold
)

var (
	// DefaultFoldEncoding folds with the default settings.
	DefaultFoldEncoding = &FoldEncoding{
		DefaultFoldIndent,
		DefaultPreferredFoldLength,
		DefaultForcedFoldLength,
	}

	// DoNotFoldEncoding writes every field on a single line.
	DoNotFoldEncoding = &FoldEncoding{
		DefaultFoldIndent,
		DoNotFold,
		DoNotFold,
	}
)

// FoldEncoding describes how to fold header fields on output.
type FoldEncoding struct {
	foldIndent          string
	preferredFoldLength int
	forcedFoldLength    int
}

// Unfold removes the line breaks from a folded field, leaving the folding
// whitespace in place.
func Unfold(f []byte) []byte {
	uf := make([]byte, 0, len(f))
	for _, b := range f {
		if !isCRLF(b) {
			uf = append(uf, b)
		}
	}
	return uf
}

func isCRLF(c byte) bool     { return c == '\r' || c == '\n' }
func isSpace(c rune) bool    { return c == ' ' || c == '\t' }
func isNonSpace(c rune) bool { return c != ' ' && c != '\t' }

// Fold writes f to out followed by lb, breaking it into several lines when it
// is longer than the preferred length. Breaks are placed at whitespace when
// possible. A line with no whitespace is only broken when it exceeds the
// forced length.
func (vf *FoldEncoding) Fold(out io.Writer, f []byte, lb []byte) (int64, error) {
	total := int64(0)
	continuing := false
	writeFold := func(f []byte, end int) ([]byte, error) {
		if continuing && len(f) > 0 && !isSpace(rune(f[0])) {
			n, err := io.WriteString(out, vf.foldIndent)
			total += int64(n)
			if err != nil {
				return nil, err
			}
		}

		n, err := out.Write(f[:end])
		total += int64(n)
		if err != nil {
			return nil, err
		}

		n, err = out.Write(lb)
		total += int64(n)
		if err != nil {
			return nil, err
		}

		continuing = true
		return bytes.TrimLeft(f[end:], " \t"), nil
	}

	if vf.preferredFoldLength == DoNotFold || len(f) < vf.preferredFoldLength {
		_, err := writeFold(f, len(f))
		return total, err
	}

	// the first break may not come before the colon
	start := bytes.IndexByte(f, ':') + 1
	line := f
	for len(line) > 0 {
		var err error
		if len(line) <= vf.preferredFoldLength-2 {
			line, err = writeFold(line, len(line))
			if err != nil {
				return total, err
			}
			continue
		}

		first := bytes.IndexFunc(line[start:], isNonSpace)
		if first < 0 {
			first = 0
		}
		first += start
		start = 0

		if first < vf.preferredFoldLength-2 {
			if ix := bytes.LastIndexFunc(line[first:vf.preferredFoldLength-2], isSpace); ix > 0 {
				line, err = writeFold(line, ix+first)
				if err != nil {
					return total, err
				}
				continue
			}
		}

		if ix := bytes.IndexFunc(line[first:], isSpace); ix > 0 && ix+first < vf.forcedFoldLength-2 {
			line, err = writeFold(line, ix+first)
			if err != nil {
				return total, err
			}
			continue
		}

		end := len(line)
		if end > vf.forcedFoldLength-2 {
			end = vf.forcedFoldLength - 2
		}
		line, err = writeFold(line, end)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}
