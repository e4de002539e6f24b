package content

import "encoding/json"

// ContentKind names the variants of Content.
type ContentKind int

// Content kinds.
const (
	ContentPlainText ContentKind = iota + 1
	ContentHTML
	ContentHTMLWithAlternative
)

// String returns the tag used for the kind in JSON output.
func (k ContentKind) String() string {
	switch k {
	case ContentPlainText:
		return "plain_text"
	case ContentHTML:
		return "html"
	case ContentHTMLWithAlternative:
		return "html_with_alternative"
	default:
		return "unknown"
	}
}

// Content is one item produced by traversal. It is always a PlainText, an
// HTML, or an HTMLWithAlternative, so a type switch over those three is
// exhaustive.
type Content interface {
	// Kind returns which variant this is.
	Kind() ContentKind

	sealed()
}

// PlainText is the decoded text of a text/plain part.
type PlainText struct {
	Text string
}

// HTML is the decoded markup of a text/html part.
type HTML struct {
	Text string
}

// HTMLWithAlternative pairs the HTML rendering of a multipart/alternative
// part with its plain text rendering.
type HTMLWithAlternative struct {
	HTML HTML
	Alt  PlainText
}

// Kind returns ContentPlainText.
func (PlainText) Kind() ContentKind { return ContentPlainText }

// Kind returns ContentHTML.
func (HTML) Kind() ContentKind { return ContentHTML }

// Kind returns ContentHTMLWithAlternative.
func (HTMLWithAlternative) Kind() ContentKind { return ContentHTMLWithAlternative }

func (PlainText) sealed()           {}
func (HTML) sealed()                {}
func (HTMLWithAlternative) sealed() {}

// MarshalJSON renders the text with a "type" tag.
func (c PlainText) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{c.Kind().String(), c.Text})
}

// MarshalJSON renders the markup with a "type" tag.
func (c HTML) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{c.Kind().String(), c.Text})
}

// MarshalJSON renders both texts with a "type" tag.
func (c HTMLWithAlternative) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		HTML string `json:"html"`
		Alt  string `json:"alt"`
	}{c.Kind().String(), c.HTML.Text, c.Alt.Text})
}
