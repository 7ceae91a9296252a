package utils

import (
	"math/rand/v2"
	"strings"
)

const (
	codeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeDigits  = "0123456789"
)

// CodeGenerator issues the short customer reference codes (e.g. "QXA418").
// Codes are three uppercase letters followed by three digits, drawn
// uniformly. Collisions are possible and not checked.
type CodeGenerator struct {
	intN func(n int) int
}

func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{intN: rand.IntN}
}

// Generate returns a fresh code.
func (g *CodeGenerator) Generate() string {
	var b strings.Builder
	b.Grow(6)

	for range 3 {
		b.WriteByte(codeLetters[g.intN(len(codeLetters))])
	}
	for range 3 {
		b.WriteByte(codeDigits[g.intN(len(codeDigits))])
	}

	return b.String()
}
