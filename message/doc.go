// Package message parses email messages into a tree of parts. Parsing is
// forgiving: a message that is not strictly correct still yields whatever
// structure can be recovered, and an unmodified message writes back out
// byte-for-byte.
//
// Every part is either an *Opaque, a header and a body, or a *Multipart, a
// header and a list of sub-parts:
//
//	msg, err := message.Parse(in, message.DecodeTransferEncoding())
//	if err != nil {
//	  panic(err)
//	}
//
//	if msg.IsMultipart() {
//	  for _, p := range msg.GetParts() {
//	    ...
//	  }
//	}
//
// Parts can also be built directly with OpaqueText, Attachment, and the
// Multipart constructors.
package message
