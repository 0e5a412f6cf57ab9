package store

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// UploadImage stores an image and returns its public URL. Credential and
// permission failures come back with messages an operator can act on.
func (s *Store) UploadImage(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	url, err := s.backend.Objects.Upload(ctx, folder, filename, contentType, body)
	if err != nil {
		switch {
		case errors.Is(err, ErrCredentialsInvalid):
			return "", fmt.Errorf("upload rejected, check the storage access keys: %w", err)
		case errors.Is(err, ErrPermissionDenied):
			return "", fmt.Errorf("upload refused, check the bucket policy: %w", err)
		default:
			return "", err
		}
	}
	return url, nil
}

// DeleteImage removes a stored image by its public URL. URLs that do not
// point into our object store are ignored: records may legitimately carry
// external image links, and those are not ours to delete.
func (s *Store) DeleteImage(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}
	err := s.backend.Objects.Delete(ctx, url)
	if err != nil {
		if errors.Is(err, ErrForeignURL) {
			s.log().Debug("skipping delete of external image", map[string]interface{}{
				"url": url,
			})
			return nil
		}
		return err
	}
	return nil
}

// deleteImageBestEffort is used while deleting records: a failed asset
// delete is logged but never blocks the record delete.
func (s *Store) deleteImageBestEffort(ctx context.Context, url string) {
	if err := s.DeleteImage(ctx, url); err != nil {
		s.log().Warn("failed to delete image, record delete continues", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
	}
}
