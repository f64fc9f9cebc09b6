package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewSeed はランダムなアバター用シードを生成します。
func NewSeed() string {
	return uuid.NewString()
}

// SeedOrRandom は、空白のみのシードが渡された場合にランダムなシードを返します。
func SeedOrRandom(seed string) string {
	if strings.TrimSpace(seed) == "" {
		return NewSeed()
	}
	return seed
}
