// Package header provides the email message header. The low-level Base keeps
// the header fields in order, exactly as they were parsed, so that a header
// can be written back out unchanged. The high-level Header adds typed
// accessors for the fields needed to read a MIME message: Content-type and
// its parameters, Content-transfer-encoding, Content-disposition, and the
// common informational fields (Subject, Date, From, and so on).
//
// Parse() is deliberately liberal. It accepts headers that RFC 5322 would
// reject and tries to make something useful out of them.
package header
