package message

import "io"

// remainder replays bytes already taken from an io.Reader and then continues
// with the rest of that reader.
type remainder struct {
	prefix []byte
	r      io.Reader
}

// Read drains the replayed bytes before reading from the underlying reader.
func (r *remainder) Read(p []byte) (int, error) {
	n := copy(p, r.prefix)
	r.prefix = r.prefix[n:]
	if n == len(p) {
		return n, nil
	}

	rn, err := r.r.Read(p[n:])
	n += rn
	if n > 0 && err == io.EOF {
		// EOF is reported by the next call
		return n, nil
	}
	return n, err
}

// Close closes the underlying reader if it is an io.Closer.
func (r *remainder) Close() error {
	if c, isCloser := r.r.(io.Closer); isCloser {
		return c.Close()
	}
	return nil
}
