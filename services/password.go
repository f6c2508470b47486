package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const generatedPasswordLen = 12

var passwordClasses = []string{
	"ABCDEFGHJKLMNPQRSTUVWXYZ",
	"abcdefghijkmnopqrstuvwxyz",
	"23456789",
	"!@#$%&*",
}

// GenerateSecurePassword returns a random admin password containing at least one
// character of every class. Do not log the returned string.
func GenerateSecurePassword() (string, error) {
	all := ""
	for _, c := range passwordClasses {
		all += c
	}

	out := make([]byte, 0, generatedPasswordLen)
	for _, c := range passwordClasses {
		b, err := randomByte(c)
		if err != nil {
			return "", err
		}
		out = append(out, b)
	}
	for len(out) < generatedPasswordLen {
		b, err := randomByte(all)
		if err != nil {
			return "", err
		}
		out = append(out, b)
	}

	for i := len(out) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return "", fmt.Errorf("shuffle: %w", err)
		}
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

func randomByte(set string) (byte, error) {
	i, err := randomInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randomInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
