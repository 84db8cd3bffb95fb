package query

import (
	"errors"
	"fmt"
	"strings"
)

var ErrWriteNotAllowed = errors.New("write statements are not allowed")

var readOnlyKeywords = map[string]struct{}{
	"select":  {},
	"with":    {},
	"show":    {},
	"explain": {},
	"pragma":  {},
}

// EnsureReadOnly rejects statements whose leading keyword is not a read.
// It guards generated SQL on read-only deployments; the direct endpoint
// trusts its callers and does not use it.
func EnsureReadOnly(statement string) error {
	trimmed := strings.TrimSpace(statement)
	if trimmed == "" {
		return fmt.Errorf("empty statement")
	}

	keyword := strings.ToLower(strings.Fields(trimmed)[0])
	if _, ok := readOnlyKeywords[keyword]; !ok {
		return fmt.Errorf("%w: %s", ErrWriteNotAllowed, keyword)
	}

	return nil
}
