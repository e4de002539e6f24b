// Package content resolves the part tree of a MIME message into the content a
// reader actually sees: plain text, HTML, or HTML paired with its plain text
// alternative.
//
// The resolver works over any tree that implements Node. FromPart adapts a
// part parsed by the message package and FromEntity adapts one parsed by
// github.com/emersion/go-message. NewLeaf and NewContainer build trees by
// hand.
//
// Traversal is lazy. Content is produced as the caller ranges over the
// sequence, and a multipart/alternative part only reads as far into its
// children as it needs to find the text it pairs up:
//
//	for c, err := range content.Traverse(content.FromPart(msg)) {
//	  if err != nil {
//	    return err
//	  }
//	  fmt.Println(c.Kind())
//	}
//
// Leaves that are neither text/plain nor text/html, such as images and other
// attachments, produce nothing and are never read.
package content
