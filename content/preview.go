package content

import (
	"strings"

	"github.com/zostay/go-contenttree/internal/htmlstrip"
)

// Text returns the readable text of c with whitespace collapsed. Markup is
// stripped from HTML. For HTMLWithAlternative the plain text alternative is
// used unless it is blank.
func Text(c Content) string {
	switch c := c.(type) {
	case PlainText:
		return strings.Join(strings.Fields(c.Text), " ")
	case HTML:
		return htmlstrip.String(c.Text)
	case HTMLWithAlternative:
		if alt := Text(c.Alt); alt != "" {
			return alt
		}
		return Text(c.HTML)
	default:
		return ""
	}
}

// Preview returns at most n runes of Text(c), ending with an ellipsis if the
// text was cut. It returns an empty string when n is 0 or less.
func Preview(c Content, n int) string {
	if n <= 0 {
		return ""
	}

	if h, isHTML := c.(HTML); isHTML {
		t, _ := htmlstrip.Text(strings.NewReader(h.Text), n+1)
		return htmlstrip.Truncate(t, n)
	}

	return htmlstrip.Truncate(Text(c), n)
}
