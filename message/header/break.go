package header

// Break is the line break a message uses. A parsed message keeps the break it
// was found with so that it can be written back out the same way.
type Break string

// Line breaks. When building a header from scratch, CRLF is the correct
// choice for the wire.
const (
	Meh  Break = ""         // undetermined
	CRLF Break = "\x0d\x0a" // \r\n
	LF   Break = "\x0a"     // \n
	CR   Break = "\x0d"     // \r
	LFCR Break = "\x0a\x0d" // \n\r, seen in the wild
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}
