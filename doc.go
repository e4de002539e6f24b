// Package contenttree reduces email messages to the content a person would
// read: plain text, HTML, or HTML paired with its plain text alternative.
//
// The work is split by concern. The message package parses a message into a
// tree of parts, keeping every byte so that the tree can be written back out
// exactly as it was read. Its header sub-package reads and edits header
// fields, and its transfer sub-package adds and removes base64 and
// quoted-printable encoding. The charset package decodes text bodies without
// ever failing on bad input.
//
// The content package is where a part tree becomes content. It walks the
// tree lazily and yields one item per text part, except that the two children
// of a multipart/alternative part are reconciled into a single
// content.HTMLWithAlternative:
//
//	msg, err := message.Parse(r)
//	if err != nil {
//	    return err
//	}
//
//	for c, err := range content.Traverse(content.FromPart(msg)) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(c.Kind(), content.Preview(c, 72))
//	}
//
// Messages parsed with github.com/emersion/go-message can be resolved the same
// way through content.FromEntity.
//
// The contenttree command in tools/contenttree shows the content of message
// files and mbox files from the command line.
package contenttree
