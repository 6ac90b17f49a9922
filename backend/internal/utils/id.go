package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewId returns a random 32 character hex id. Storage prefixes it with the
// row kind, e.g. "thread-".
func NewId() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
