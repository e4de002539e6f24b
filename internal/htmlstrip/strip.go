// Package htmlstrip reduces HTML markup to the words a reader would see, with
// all runs of whitespace collapsed to a single space.
package htmlstrip

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// hidden elements have no visible text.
var hidden = map[string]bool{
	"head":     true,
	"noscript": true,
	"script":   true,
	"style":    true,
	"template": true,
	"title":    true,
}

// breaking elements separate the words on either side of them.
var breaking = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "figure": true, "footer": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}

// stripper accumulates visible text.
type stripper struct {
	out    strings.Builder
	runes  int
	limit  int
	hidden int
	space  bool
}

func (s *stripper) full() bool {
	return s.limit > 0 && s.runes >= s.limit
}

func (s *stripper) writeSpace() {
	if s.out.Len() > 0 {
		s.space = true
	}
}

func (s *stripper) writeText(text string) {
	for _, c := range text {
		if s.full() {
			return
		}

		if unicode.IsSpace(c) {
			s.writeSpace()
			continue
		}

		if s.space {
			s.out.WriteByte(' ')
			s.runes++
			s.space = false
			if s.full() {
				return
			}
		}

		s.out.WriteRune(c)
		s.runes++
	}
}

// Text reads HTML from r and returns its visible text. Images contribute
// their alt text. If limit is greater than zero, reading stops once that many
// runes have been collected.
//
// Malformed markup is read as well as it can be. Only an error from r itself
// is returned, along with the text gathered before it.
func Text(r io.Reader, limit int) (string, error) {
	s := &stripper{limit: limit}
	z := html.NewTokenizer(r)
	for !s.full() {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return s.out.String(), err
			}
			return s.out.String(), nil

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)

			if hidden[tag] && tt == html.StartTagToken {
				s.hidden++
				continue
			}

			if breaking[tag] {
				s.writeSpace()
			}

			if tag == "img" && hasAttr && s.hidden == 0 {
				for {
					key, val, more := z.TagAttr()
					if string(key) == "alt" {
						s.writeSpace()
						s.writeText(string(val))
						s.writeSpace()
					}
					if !more {
						break
					}
				}
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)

			if hidden[tag] && s.hidden > 0 {
				s.hidden--
				continue
			}

			if breaking[tag] {
				s.writeSpace()
			}

		case html.TextToken:
			if s.hidden == 0 {
				s.writeText(string(z.Text()))
			}
		}
	}

	return s.out.String(), nil
}

// String returns the visible text of the HTML in h.
func String(h string) string {
	t, _ := Text(strings.NewReader(h), 0)
	return t
}

// Truncate shortens s to at most n runes, replacing the last rune with an
// ellipsis when anything was cut. It leaves s alone when n is 0 or less.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}

	runes := []rune(s)
	return strings.TrimRightFunc(string(runes[:n-1]), unicode.IsSpace) + "…"
}
