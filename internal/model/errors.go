package model

import "errors"

var (
	// Token related errors
	ErrInvalidToken = errors.New("invalid token")

	// Upload related errors
	ErrNoFile      = errors.New("no file provided")
	ErrNotAnImage  = errors.New("file is not a supported image")
	ErrEmptyUpload = errors.New("object store returned no url")
)
