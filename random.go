package hexsketch

import (
	"errors"

	"pgregory.net/rand"
)

const hexDigits = "0123456789abcdef"

// RandomHex returns n hex digits. The same seed always gives the same input.
func RandomHex(n int, seed uint64) []byte {
	r := rand.New(seed)
	out := make([]byte, n)
	for i := range out {
		out[i] = hexDigits[r.Intn(len(hexDigits))]
	}
	return out
}

var ErrNoInput = errors.New("hex value required")

// Input picks the bytes to draw: randomLen generated digits when positive,
// otherwise the first argument.
func Input(args []string, randomLen int, seed uint64) ([]byte, error) {
	if randomLen > 0 {
		return RandomHex(randomLen, seed), nil
	}
	if len(args) == 0 {
		return nil, ErrNoInput
	}
	return []byte(args[0]), nil
}
