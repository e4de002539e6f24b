// Package scanner holds a small adapter that makes bufio.SplitFunc easier to
// write when a split function needs several passes over the same buffer
// before it has a token worth returning, as the multipart boundary splitter
// does.
package scanner

import (
	"bufio"
	"errors"
)

// ErrContinue is a special SplitFunc signal that asks the wrapping loop to run
// the split function again over the remaining data instead of returning to
// the bufio.Scanner. It lets a split function change its internal state and
// then immediately re-examine the same input.
var ErrContinue = errors.New("split func continue")

// MakeSplitFuncExitByAdvance wraps a bufio.SplitFunc so that the scanner only
// returns to its caller when a token is produced, when the split function
// asks for more input (advance == 0), when all the data has been consumed, or
// when a real error is returned.
//
// The stock bufio.Scanner treats atEOF with a nil token as the end of input,
// even when the split function has only consumed a chunk of data it chose not
// to return (such as the prefix before the first boundary of a multipart
// body). Wrapping the split function lets it skip such chunks without keeping
// its own inner loop.
func MakeSplitFuncExitByAdvance(split bufio.SplitFunc) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		totalAdvance := 0
		for {
			advance, token, err := split(data, atEOF)

			// advances must accumulate or the outer scanner loop will move by
			// the wrong amount
			if !errors.Is(err, ErrContinue) && (token != nil || advance == 0 || len(data)-advance <= 0 || err != nil) {
				return totalAdvance + advance, token, err
			}

			data = data[advance:]
			totalAdvance += advance
		}
	}
}
