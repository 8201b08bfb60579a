package id

import (
	"strings"

	"github.com/google/uuid"
)

// NewID32 returns exactly 32 lowercase hex characters (a v4 UUID without separators).
func NewID32() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewNumber returns a human-readable public number such as "APP-3F9A6A1B3D544FBE8B3A6B3E8D6B2C88".
func NewNumber(prefix string) string {
	return strings.ToUpper(prefix) + "-" + strings.ToUpper(NewID32())
}
