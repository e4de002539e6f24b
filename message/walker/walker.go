// Package walker visits every part of a parsed message in depth-first order.
package walker

import (
	"errors"

	"github.com/zostay/go-contenttree/message"
)

// SkipParts may be returned by a Parts function to skip the sub-parts of the
// part it was just given. The walk continues with the next sibling.
var SkipParts = errors.New("skip sub-parts")

// Parts is called for each part visited. Depth is 0 for the part the walk
// starts from and i is the index of the part among its siblings.
type Parts func(depth, i int, part message.Part) error

// Walk calls w for msg and then for each of its sub-parts, depth first. If w
// returns an error other than SkipParts, the walk stops and returns it.
func (w Parts) Walk(msg message.Part) error {
	type frame struct {
		depth int
		i     int
		part  message.Part
	}

	stack := []frame{{0, 0, msg}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		err := w(f.depth, f.i, f.part)
		switch {
		case errors.Is(err, SkipParts):
			continue
		case err != nil:
			return err
		}

		parts := f.part.GetParts()
		for i := len(parts) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.depth + 1, i, parts[i]})
		}
	}

	return nil
}

// WalkLeaves is Walk, but w is only called for parts without sub-parts.
func (w Parts) WalkLeaves(msg message.Part) error {
	var lw Parts = func(depth, i int, part message.Part) error {
		if part.IsMultipart() {
			return nil
		}
		return w(depth, i, part)
	}
	return lw.Walk(msg)
}

// WalkMultipart is Walk, but w is only called for parts with sub-parts.
func (w Parts) WalkMultipart(msg message.Part) error {
	var mw Parts = func(depth, i int, part message.Part) error {
		if !part.IsMultipart() {
			return nil
		}
		return w(depth, i, part)
	}
	return mw.Walk(msg)
}
