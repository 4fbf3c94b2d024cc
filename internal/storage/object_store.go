package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"food-delivery-api/internal/util"
)

type UploadResult struct {
	URL string
	Key string
}

// ObjectStore is the binary-object store images are pushed to.
type ObjectStore interface {
	Upload(ctx context.Context, localPath string) (UploadResult, error)
	DeleteByURL(ctx context.Context, url string) error
}

type S3Config struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Store struct {
	client  s3API
	bucket  string
	baseURL string
	now     func() time.Time
}

func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("s3 bucket cannot be empty")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Store(client, cfg), nil
}

func newS3Store(client s3API, cfg S3Config) *S3Store {
	baseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://s3.%s.amazonaws.com", cfg.Region)
	}

	return &S3Store{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
		now:     time.Now,
	}
}

// Upload pushes the staged file at localPath and removes it from disk,
// whether or not the upload succeeded.
func (s *S3Store) Upload(ctx context.Context, localPath string) (UploadResult, error) {
	if strings.TrimSpace(localPath) == "" {
		return UploadResult{}, fmt.Errorf("local path cannot be empty")
	}

	defer removeStaged(localPath)

	file, err := os.Open(localPath)
	if err != nil {
		return UploadResult{}, fmt.Errorf("open staged file: %w", err)
	}
	defer file.Close()

	contentType, err := util.DetectMIME(file)
	if err != nil {
		return UploadResult{}, fmt.Errorf("detect content type: %w", err)
	}

	key := s.objectKey(filepath.Base(localPath))
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("put object %q: %w", key, err)
	}

	return UploadResult{URL: s.urlFor(key), Key: key}, nil
}

// DeleteByURL removes the object a previous Upload returned. Empty URLs and
// URLs that do not point into the bucket are ignored.
func (s *S3Store) DeleteByURL(ctx context.Context, url string) error {
	key, ok := s.keyFor(url)
	if !ok {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %q: %w", key, err)
	}

	return nil
}

func (s *S3Store) objectKey(name string) string {
	d := s.now().UTC()
	return fmt.Sprintf("uploads/%d/%02d/%02d/%s", d.Year(), d.Month(), d.Day(), name)
}

func (s *S3Store) urlFor(key string) string {
	return s.baseURL + "/" + s.bucket + "/" + key
}

func (s *S3Store) keyFor(url string) (string, bool) {
	prefix := s.baseURL + "/" + s.bucket + "/"
	url = strings.TrimSpace(url)
	if url == "" || !strings.HasPrefix(url, prefix) {
		return "", false
	}

	key := strings.TrimPrefix(url, prefix)
	return key, key != ""
}

func removeStaged(localPath string) {
	if err := os.Remove(localPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to remove staged upload", "path", localPath, "error", err)
	}
}
