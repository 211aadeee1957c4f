package utils

import (
	"math/rand"
	"time"
)

const courseCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCourseCode generates a random 5-character enrollment code
func GenerateCourseCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := make([]byte, 5)
	for i := range code {
		code[i] = courseCodeAlphabet[rng.Intn(len(courseCodeAlphabet))]
	}
	return string(code)
}
