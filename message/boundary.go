package message

import "math/rand/v2"

const letters = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateBoundary returns a random 30 character MIME boundary.
func GenerateBoundary() string {
	s := make([]byte, 30)
	for i := range s {
		s[i] = letters[rand.IntN(len(letters))]
	}
	return string(s)
}
