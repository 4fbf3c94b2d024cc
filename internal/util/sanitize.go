package util

import (
	"regexp"
	"strings"
	"unicode"

	"food-delivery-api/pkg/apierror"
)

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\s]+`)

const maxFilenameRunes = 120

// SanitizeFilename reduces a client supplied file name to something safe to
// use as the last segment of a staging path or an object key.
func SanitizeFilename(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apierror.Validation("filename cannot be empty")
	}

	if strings.Contains(trimmed, "\x00") {
		return "", apierror.Validation("filename contains null bytes")
	}

	builder := strings.Builder{}
	builder.Grow(len(trimmed))

	for _, char := range trimmed {
		if unicode.IsControl(char) || unicode.Is(unicode.Cf, char) {
			continue
		}

		builder.WriteRune(char)
	}

	cleaned := invalidFilenameChars.ReplaceAllString(builder.String(), "_")
	cleaned = strings.TrimLeft(cleaned, "._")

	if cleaned == "" {
		return "", apierror.Validation("filename is invalid after sanitization")
	}

	// Truncate by runes (not bytes) to avoid splitting multi-byte characters.
	runes := []rune(cleaned)
	if len(runes) > maxFilenameRunes {
		runes = runes[len(runes)-maxFilenameRunes:]
	}

	return string(runes), nil
}
