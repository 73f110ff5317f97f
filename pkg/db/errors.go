package db

import "strings"

// Substrings emitted by Postgres and sqlite on unique-index conflicts.
var uniqueViolationMarkers = []string{
	"duplicate key value",
	"UNIQUE constraint failed",
}

// IsUniqueViolation reports whether err describes a unique-constraint
// violation. When constraintName is non-empty only errors that mention
// that constraint match.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if constraintName != "" {
		return strings.Contains(msg, constraintName)
	}
	for _, marker := range uniqueViolationMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
