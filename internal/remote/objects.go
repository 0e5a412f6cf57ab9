package remote

import (
	"context"
	"errors"
	"io"

	"github.com/navjivan/navjivan-backend/internal/storage"
	"github.com/navjivan/navjivan-backend/internal/store"
)

// Objects adapts the S3 storage layer to the store's object interface,
// translating storage errors into the sentinels the store understands.
type Objects struct {
	s3 *storage.S3Storage
}

func NewObjects(s3 *storage.S3Storage) *Objects {
	return &Objects{s3: s3}
}

func (o *Objects) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	url, err := o.s3.Upload(ctx, folder, filename, contentType, body)
	if err != nil {
		return "", translateStorageError(err)
	}
	return url, nil
}

func (o *Objects) Delete(ctx context.Context, url string) error {
	if err := o.s3.Delete(ctx, url); err != nil {
		return translateStorageError(err)
	}
	return nil
}

func translateStorageError(err error) error {
	switch {
	case errors.Is(err, storage.ErrInvalidCredentials):
		return errors.Join(store.ErrCredentialsInvalid, err)
	case errors.Is(err, storage.ErrAccessDenied):
		return errors.Join(store.ErrPermissionDenied, err)
	case errors.Is(err, storage.ErrForeignURL):
		return errors.Join(store.ErrForeignURL, err)
	default:
		return err
	}
}
