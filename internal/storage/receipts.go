package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"github.com/tahmid-dev/formbuilder-go/internal/config"
)

// MaxReceiptSize caps receipt uploads at 10MB.
const MaxReceiptSize = 10 << 20

var allowedReceiptTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

var ErrUnsupportedType = errors.New("storage: unsupported receipt content type")
var ErrTooLarge = errors.New("storage: receipt exceeds size limit")

// ReceiptStore keeps bank-transfer receipt files in an object bucket.
type ReceiptStore struct {
	client *minioSDK.Client
	bucket string
}

// NewReceiptStore connects to the object store and ensures the bucket
// exists. Returns nil without error when no endpoint is configured;
// callers treat a nil store as "uploads disabled".
func NewReceiptStore(cfg *config.Config) (*ReceiptStore, error) {
	if cfg.MinioEndpoint == "" {
		return nil, nil
	}

	client, err := minioSDK.New(cfg.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object store: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		log.WithField("bucket", cfg.MinioBucket).Info("Created receipt bucket")
	}

	return &ReceiptStore{client: client, bucket: cfg.MinioBucket}, nil
}

// AllowedType reports whether contentType is an accepted receipt format.
func AllowedType(contentType string) bool {
	_, ok := allowedReceiptTypes[contentType]
	return ok
}

// Put stores a receipt and returns its object path.
func (s *ReceiptStore) Put(ctx context.Context, uniqueID, contentType string, size int64, r io.Reader) (string, error) {
	ext, ok := allowedReceiptTypes[contentType]
	if !ok {
		return "", ErrUnsupportedType
	}
	if size > MaxReceiptSize {
		return "", ErrTooLarge
	}

	object := path.Join("receipts", fmt.Sprintf("%s_%s%s", uniqueID, uuid.NewString(), ext))
	_, err := s.client.PutObject(ctx, s.bucket, object, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("store receipt: %w", err)
	}
	return object, nil
}

// Get streams a stored receipt along with its size and content type.
func (s *ReceiptStore) Get(ctx context.Context, object string) (io.ReadCloser, int64, string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, object, minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, 0, "", fmt.Errorf("fetch receipt: %w", err)
	}
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, 0, "", fmt.Errorf("fetch receipt: %w", err)
	}
	return obj, info.Size, info.ContentType, nil
}

// PresignedURL returns a short-lived direct link to a receipt.
func (s *ReceiptStore) PresignedURL(ctx context.Context, object string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, object, 15*time.Minute, nil)
	if err != nil {
		return "", fmt.Errorf("presign receipt: %w", err)
	}
	return u.String(), nil
}
