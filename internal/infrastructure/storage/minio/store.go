// Package minio archives uploaded documents in S3-compatible object
// storage so intake staff can review the originals later.
package minio

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/turtacn/LegalAid-Assistant/internal/config"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
)

const connectTimeout = 10 * time.Second

// DocumentStore archives uploaded documents.  The application layer holds
// this interface so object storage stays optional.
type DocumentStore interface {
	Store(ctx context.Context, filename string, data []byte) (string, error)
	Fetch(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
}

// objectClient abstracts the minio client for tests.
type objectClient interface {
	PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucket, key string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	RemoveObject(ctx context.Context, bucket, key string, opts minio.RemoveObjectOptions) error
	BucketExists(ctx context.Context, bucket string) (bool, error)
	MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error
}

// clientAdapter narrows *minio.Client to objectClient.  GetObject returns
// the concrete *minio.Object, which the interface flattens to io.ReadCloser.
type clientAdapter struct {
	*minio.Client
}

func (a clientAdapter) GetObject(ctx context.Context, bucket, key string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return a.Client.GetObject(ctx, bucket, key, opts)
}

// Store is the minio-backed DocumentStore.
type Store struct {
	client objectClient
	logger logging.Logger
	bucket string
	newKey func(filename string) string
}

// NewStore connects to the object store and ensures the bucket exists.
func NewStore(cfg config.MinIOConfig, logger logging.Logger) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeStorageError, "failed to create object store client")
	}

	s := newStore(clientAdapter{client}, cfg.Bucket, logger)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	logger.Info("connected to object store",
		logging.String("endpoint", cfg.Endpoint),
		logging.String("bucket", cfg.Bucket),
	)
	return s, nil
}

// NewStoreWithClient wraps an existing client.  Tests use this.
func NewStoreWithClient(client objectClient, bucket string, logger logging.Logger) *Store {
	return newStore(client, bucket, logger)
}

func newStore(client objectClient, bucket string, logger logging.Logger) *Store {
	return &Store{
		client: client,
		logger: logger,
		bucket: bucket,
		newKey: objectKey,
	}
}

func (s *Store) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.Wrap(err, errors.CodeStorageError, "failed to check bucket existence")
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return errors.Wrap(err, errors.CodeStorageError, "failed to create bucket")
	}
	s.logger.Info("created bucket", logging.String("bucket", s.bucket))
	return nil
}

// Store uploads one document and returns its object key.
func (s *Store) Store(ctx context.Context, filename string, data []byte) (string, error) {
	key := s.newKey(filename)
	opts := minio.PutObjectOptions{ContentType: contentTypeFor(filename)}

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), opts)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeStorageError, "failed to store document")
	}

	s.logger.Debug("document archived",
		logging.String("key", key),
		logging.Int("size", len(data)),
	)
	return key, nil
}

// Fetch downloads a stored document.
func (s *Store) Fetch(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeStorageError, "failed to fetch document")
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeStorageError, "failed to read document")
	}
	return data, nil
}

// Remove deletes a stored document.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrap(err, errors.CodeStorageError, "failed to remove document")
	}
	return nil
}

// objectKey builds "uploads/{uuid}/{sanitized filename}".  The uuid segment
// keeps concurrent uploads of the same filename from colliding.
func objectKey(filename string) string {
	base := filepath.Base(filename)
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	return "uploads/" + uuid.New().String() + "/" + base
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".doc":
		return "application/msword"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

// NopStore discards uploads.  Used when object storage is disabled.
type NopStore struct{}

func (NopStore) Store(context.Context, string, []byte) (string, error) { return "", nil }
func (NopStore) Fetch(context.Context, string) ([]byte, error) {
	return nil, errors.New(errors.CodeNotFound, "object storage disabled")
}
func (NopStore) Remove(context.Context, string) error { return nil }
