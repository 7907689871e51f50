package random

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

var ErrInvalidLength = fmt.Errorf("invalid length")

type Random interface {
	Hex(length int) (string, error)
}

type random struct {
	reader io.Reader
}

func New() Random {
	return &random{reader: rand.Reader}
}

// Hex returns a random lowercase hex string of the given length.
func (ran *random) Hex(length int) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}

	b := make([]byte, (length+1)/2)
	if _, err := ran.reader.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b)[:length], nil
}
