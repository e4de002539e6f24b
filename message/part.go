package message

import (
	"io"

	"github.com/zostay/go-contenttree/message/header"
)

// Part is one node of a parsed message. It is either a branch, which has
// sub-parts, or a leaf, which has content.
//
// On a branch, IsMultipart returns true, GetParts returns the sub-parts, and
// GetReader returns nil. On a leaf, IsMultipart returns false, GetReader
// returns the content, and GetParts returns nil.
//
// A leaf may still hold a serialized multipart body when its sub-parts were
// not split out, as happens when the parse depth limit is reached.
type Part interface {
	io.WriterTo

	// IsMultipart returns true for a branch.
	IsMultipart() bool

	// IsEncoded returns true if the bytes read from GetReader still have the
	// Content-transfer-encoding applied. It is always false for a branch.
	IsEncoded() bool

	// GetHeader returns the part header.
	GetHeader() *header.Header

	// GetReader returns the content of a leaf. It can only be read once.
	GetReader() io.Reader

	// GetParts returns the sub-parts of a branch.
	GetParts() []Part
}
