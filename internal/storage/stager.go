package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"

	"github.com/google/uuid"

	"food-delivery-api/internal/model"
	"food-delivery-api/internal/util"
	"food-delivery-api/pkg/apierror"
)

// Stager writes uploaded multipart parts to a local temp directory so they can
// be handed to an ObjectStore by path.
type Stager struct {
	validator *PathValidator
	maxSize   int64
}

func NewStager(dir string, maxSize int64) (*Stager, error) {
	validator, err := NewPathValidator(dir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(validator.RootAbs(), 0o755); err != nil {
		return nil, fmt.Errorf("create staging directory: %w", err)
	}

	return &Stager{validator: validator, maxSize: maxSize}, nil
}

func (s *Stager) Dir() string {
	return s.validator.RootAbs()
}

// Stage checks that header holds an image and copies it into the staging
// directory. It returns model.ErrNoFile when header is nil.
func (s *Stager) Stage(header *multipart.FileHeader) (string, error) {
	if header == nil {
		return "", model.ErrNoFile
	}

	if header.Size == 0 {
		return "", apierror.Validation("uploaded file is empty")
	}

	if s.maxSize > 0 && header.Size > s.maxSize {
		return "", apierror.Validation("uploaded file exceeds maximum size")
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open multipart file: %w", err)
	}
	defer src.Close()

	if _, err := util.InspectImage(src); err != nil {
		if errors.Is(err, model.ErrNotAnImage) {
			return "", apierror.Validation("uploaded file must be an image").Wrap(err)
		}
		return "", fmt.Errorf("inspect upload: %w", err)
	}

	name, err := util.SanitizeFilename(header.Filename)
	if err != nil {
		name = "upload"
	}

	target, err := s.validator.ResolvePath(uuid.NewString() + "-" + name)
	if err != nil {
		return "", err
	}

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create staged file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(target)
		return "", fmt.Errorf("write staged file: %w", err)
	}

	if err := dst.Close(); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("close staged file: %w", err)
	}

	return target, nil
}

// Discard removes a staged file that never reached the object store. Paths
// outside the staging directory are left alone.
func (s *Stager) Discard(path string) {
	if path == "" || !s.validator.Contains(path) || path == s.validator.RootAbs() {
		return
	}

	removeStaged(path)
}
