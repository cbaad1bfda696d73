package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string with the given prefix
func GenerateID(prefix string) string {
	return prefix + "_" + uuid.New().String()
}
