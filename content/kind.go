package content

import "strings"

// Kind is the closed set of node types the resolver understands. Any media
// type outside the set is KindOther.
type Kind int

// Node kinds.
const (
	KindOther       Kind = iota // anything else, ignored
	KindMixed                   // multipart/mixed
	KindRelated                 // multipart/related
	KindAlternative             // multipart/alternative
	KindPlainText               // text/plain
	KindHTML                    // text/html
)

var kindNames = map[Kind]string{
	KindOther:       "other",
	KindMixed:       "multipart/mixed",
	KindRelated:     "multipart/related",
	KindAlternative: "multipart/alternative",
	KindPlainText:   "text/plain",
	KindHTML:        "text/html",
}

// KindOf classifies a media type. Case, surrounding space, and any parameters
// are ignored.
func KindOf(mediaType string) Kind {
	mt, _, _ := strings.Cut(mediaType, ";")
	switch strings.ToLower(strings.TrimSpace(mt)) {
	case "multipart/mixed":
		return KindMixed
	case "multipart/related":
		return KindRelated
	case "multipart/alternative":
		return KindAlternative
	case "text/plain":
		return KindPlainText
	case "text/html":
		return KindHTML
	default:
		return KindOther
	}
}

// IsMultipart reports whether nodes of this kind hold children rather than a
// payload. KindOther is treated as a leaf.
func (k Kind) IsMultipart() bool {
	return k == KindMixed || k == KindRelated || k == KindAlternative
}

// String returns the media type of the kind, or "other".
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "other"
}
