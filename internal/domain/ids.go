package domain

import (
	"regexp"
	"strings"
)

// MaxIDLength bounds client supplied identifiers.
const MaxIDLength = 128

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateID applies the identifier rule shared by request validation and entity
// validation, so anything stored under an id can be read back with it.
func ValidateID(field, id string) ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return ValidationErrors{NewMissingFieldError(field)}
	}
	if len(id) > MaxIDLength {
		return ValidationErrors{NewOutOfRangeError(field, len(id), 1, MaxIDLength)}
	}
	if !idPattern.MatchString(id) {
		return ValidationErrors{NewInvalidFormatError(field, id)}
	}
	return nil
}
