package booking

import (
	"errors"
	"math/rand/v2"
)

const (
	pnrAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	pnrLength   = 10
	pnrAttempts = 5
)

var errPNRExhausted = errors.New("could not allocate a unique pnr")

func generatePNR() string {
	b := make([]byte, pnrLength)
	for i := range b {
		b[i] = pnrAlphabet[rand.IntN(len(pnrAlphabet))]
	}
	return string(b)
}
