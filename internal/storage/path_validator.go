package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"food-delivery-api/pkg/apierror"
)

// PathValidator confines relative names to a single directory on disk.
type PathValidator struct {
	rootAbs string
}

func NewPathValidator(root string) (*PathValidator, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("root path cannot be empty")
	}

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve staging root: %w", err)
	}

	return &PathValidator{rootAbs: rootAbs}, nil
}

func (v *PathValidator) RootAbs() string {
	return v.rootAbs
}

func (v *PathValidator) Contains(absPath string) bool {
	return isWithinRoot(v.rootAbs, filepath.Clean(absPath))
}

func (v *PathValidator) ResolvePath(name string) (string, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(name), `\`, "/")
	if normalized == "" || normalized == "/" {
		return v.rootAbs, nil
	}

	if strings.Contains(normalized, "\x00") || hasControlCharacters(normalized) {
		return "", apierror.Validation("path contains invalid characters")
	}

	for _, segment := range strings.Split(normalized, "/") {
		if segment == ".." {
			return "", apierror.Validation("path traversal attempt detected")
		}
	}

	cleanRel := filepath.Clean(strings.TrimPrefix(normalized, "/"))
	if cleanRel == "." {
		return v.rootAbs, nil
	}

	resolvedAbs, err := filepath.Abs(filepath.Join(v.rootAbs, cleanRel))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	if !isWithinRoot(v.rootAbs, resolvedAbs) {
		return "", apierror.Validation("resolved path is outside staging root")
	}

	return resolvedAbs, nil
}

func hasControlCharacters(value string) bool {
	for _, char := range value {
		if unicode.IsControl(char) {
			return true
		}
	}

	return false
}

func isWithinRoot(rootAbs string, candidateAbs string) bool {
	if candidateAbs == rootAbs {
		return true
	}

	return strings.HasPrefix(candidateAbs, rootAbs+string(filepath.Separator))
}
