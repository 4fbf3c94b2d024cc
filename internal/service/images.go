package service

import (
	"context"
	"log/slog"
	"strings"

	"food-delivery-api/internal/model"
	"food-delivery-api/internal/storage"
	"food-delivery-api/pkg/apierror"
)

// uploadImage pushes a staged file to the object store. An empty path means
// the client sent no file.
func uploadImage(ctx context.Context, store storage.ObjectStore, localPath string, missing string, failed string) (string, error) {
	if strings.TrimSpace(localPath) == "" {
		return "", apierror.Validation(missing)
	}

	result, err := store.Upload(ctx, localPath)
	if err != nil {
		return "", apierror.Internal(failed).Wrap(err)
	}
	if result.URL == "" {
		return "", apierror.Internal(failed).Wrap(model.ErrEmptyUpload)
	}

	return result.URL, nil
}

// discardImage is best effort: the record change already happened, so a
// failed delete only leaves an orphaned object behind.
func discardImage(ctx context.Context, store storage.ObjectStore, url string, owner string) {
	if url == "" {
		return
	}

	if err := store.DeleteByURL(context.WithoutCancel(ctx), url); err != nil {
		slog.Warn("failed to delete image from object store",
			"owner", owner,
			"url", url,
			"error", err,
		)
	}
}
