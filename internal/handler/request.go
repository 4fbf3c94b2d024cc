package handler

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"food-delivery-api/internal/model"
	"food-delivery-api/pkg/apierror"
)

// multipartMemory is how much of a multipart body is kept in memory; the
// rest spills to temp files managed by mime/multipart.
const multipartMemory = 8 << 20

type stager interface {
	Stage(header *multipart.FileHeader) (string, error)
	Discard(path string)
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return apierror.Validation("request body too large").Wrap(err)
		}
		if errors.Is(err, io.EOF) {
			return apierror.Validation("request body is required")
		}
		return apierror.Validation("invalid JSON body").Wrap(err)
	}

	return nil
}

func parseMultipart(r *http.Request) error {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return apierror.Validation("upload too large").Wrap(err)
		}
		return apierror.Validation("invalid multipart form").Wrap(err)
	}
	return nil
}

// cleanupMultipart drops the temp files mime/multipart may have created.
func cleanupMultipart(r *http.Request) {
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}

// stageFile stages the upload under field. A missing part yields "" and no
// error so services can report which file is required.
func stageFile(s stager, r *http.Request, field string) (string, error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return "", nil
	}

	path, err := s.Stage(r.MultipartForm.File[field][0])
	if errors.Is(err, model.ErrNoFile) {
		return "", nil
	}
	return path, err
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

func formFloat(r *http.Request, key string) (*float64, error) {
	raw := formValue(r, key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, apierror.Validation(key + " must be a number").
			WithErrors(apierror.FieldError{Field: key, Message: "must be a number"})
	}
	return &value, nil
}

func formInt(r *http.Request, key string) (*int, error) {
	raw := formValue(r, key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apierror.Validation(key + " must be an integer").
			WithErrors(apierror.FieldError{Field: key, Message: "must be an integer"})
	}
	return &value, nil
}

func formBool(r *http.Request, key string) (*bool, error) {
	raw := formValue(r, key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apierror.Validation(key + " must be true or false").
			WithErrors(apierror.FieldError{Field: key, Message: "must be a boolean"})
	}
	return &value, nil
}
