package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials means the storage credentials were rejected.
	ErrInvalidCredentials = errors.New("storage credentials invalid")

	// ErrAccessDenied means the credentials are valid but lack permission.
	ErrAccessDenied = errors.New("storage permission denied")

	// ErrForeignURL means a URL does not point into our bucket.
	ErrForeignURL = errors.New("url does not belong to this bucket")
)

type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

type PresignedURLResponse struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
	Key       string `json:"key"`
}

func NewS3Storage(region, bucket, accessKeyID, secretAccessKey, baseURL string) *S3Storage {
	var cfg aws.Config
	var err error

	// If credentials are provided, use them. Otherwise, use default credential chain
	if accessKeyID != "" && secretAccessKey != "" {
		cfg = aws.Config{
			Region: region,
			Credentials: credentials.NewStaticCredentialsProvider(
				accessKeyID,
				secretAccessKey,
				"",
			),
		}
	} else {
		// Use default credential chain (environment variables, ~/.aws/credentials, IAM role, etc.)
		cfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(region),
		)
		if err != nil {
			// If default config fails, create a basic config with region only
			cfg = aws.Config{
				Region: region,
			}
		}
	}

	client := s3.NewFromConfig(cfg)

	return &S3Storage{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// Upload stores an object under folder/<uuid><ext> and returns its public
// URL. Errors are classified so the caller can tell an operator whether to
// fix credentials, bucket policy or something else.
func (s *S3Storage) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	ext := filepath.Ext(filename)
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", classifyS3Error(err)
	}

	return s.PublicURL(key), nil
}

// Delete removes the object a public URL points at. Foreign or malformed
// URLs return ErrForeignURL without touching the bucket.
func (s *S3Storage) Delete(ctx context.Context, url string) error {
	key, ok := s.KeyFromURL(url)
	if !ok {
		return ErrForeignURL
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return classifyS3Error(err)
	}
	return nil
}

// PublicURL resolves the publicly reachable URL of a stored key.
func (s *S3Storage) PublicURL(key string) string {
	if s.baseURL != "" {
		// Use CloudFront or custom domain
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.baseURL, "/"), key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.client.Options().Region, key)
}

// KeyFromURL derives the object key from a public URL. Everything after
// the bucket path segment (or the configured base URL) is the key.
func (s *S3Storage) KeyFromURL(url string) (string, bool) {
	if url == "" {
		return "", false
	}

	if s.baseURL != "" {
		prefix := strings.TrimRight(s.baseURL, "/") + "/"
		if strings.HasPrefix(url, prefix) {
			key := strings.TrimPrefix(url, prefix)
			return key, key != ""
		}
	}

	// Virtual-hosted style: https://<bucket>.s3.<region>.amazonaws.com/<key>
	if marker := fmt.Sprintf("://%s.s3.", s.bucket); strings.Contains(url, marker) {
		if _, rest, found := strings.Cut(url, ".amazonaws.com/"); found && rest != "" {
			return rest, true
		}
	}

	// Path style: .../<bucket>/<key>
	if _, rest, found := strings.Cut(url, "/"+s.bucket+"/"); found && rest != "" {
		return rest, true
	}

	return "", false
}

// GeneratePresignedURL generates a pre-signed URL for uploading a file to a
// specific folder, for clients that upload directly from the browser.
func (s *S3Storage) GeneratePresignedURL(filename, contentType, folder string) (*PresignedURLResponse, error) {
	ext := filepath.Ext(filename)
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	presignClient := s3.NewPresignClient(s.client)

	// Presigned PUT URL (valid for 15 minutes)
	presignedReq, err := presignClient.PresignPutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(15*time.Minute))

	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return &PresignedURLResponse{
		UploadURL: presignedReq.URL,
		FileURL:   s.PublicURL(key),
		Key:       key,
	}, nil
}

// ValidateFileSize validates the file size
func (s *S3Storage) ValidateFileSize(size int64, maxSize int64) error {
	if size > maxSize {
		return fmt.Errorf("file size exceeds maximum allowed size of %d bytes", maxSize)
	}
	return nil
}

// ValidateContentType validates the content type
func (s *S3Storage) ValidateContentType(contentType string, allowedTypes []string) error {
	for _, allowed := range allowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("content type %s is not allowed", contentType)
}

func classifyS3Error(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken", "TokenRefreshRequired":
			return fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.ErrorMessage())
		case "AccessDenied", "AllAccessDisabled":
			return fmt.Errorf("%w: %s", ErrAccessDenied, apiErr.ErrorMessage())
		}
	}
	return err
}
