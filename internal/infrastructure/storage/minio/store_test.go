package minio

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
)

type fakeObjectClient struct {
	objects      map[string][]byte
	contentTypes map[string]string
	bucketExists bool
	madeBuckets  []string
	putErr       error
	getErr       error
}

func newFakeObjectClient() *fakeObjectClient {
	return &fakeObjectClient{
		objects:      map[string][]byte{},
		contentTypes: map[string]string{},
		bucketExists: true,
	}
}

func (f *fakeObjectClient) PutObject(_ context.Context, _, key string, reader io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[key] = data
	f.contentTypes[key] = opts.ContentType
	return minio.UploadInfo{Key: key, Size: int64(len(data))}, nil
}

func (f *fakeObjectClient) GetObject(_ context.Context, _, key string, _ minio.GetObjectOptions) (io.ReadCloser, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[key]
	if !ok {
		return nil, assert.AnError
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeObjectClient) RemoveObject(_ context.Context, _, key string, _ minio.RemoveObjectOptions) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeObjectClient) BucketExists(context.Context, string) (bool, error) {
	return f.bucketExists, nil
}

func (f *fakeObjectClient) MakeBucket(_ context.Context, bucket string, _ minio.MakeBucketOptions) error {
	f.madeBuckets = append(f.madeBuckets, bucket)
	return nil
}

func TestStoreRoundTrip(t *testing.T) {
	client := newFakeObjectClient()
	store := NewStoreWithClient(client, "legalaid-documents", logging.NewNopLogger())

	key, err := store.Store(context.Background(), "complaint.pdf", []byte("%PDF-1.4 payload"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "uploads/"))
	assert.True(t, strings.HasSuffix(key, "/complaint.pdf"))
	assert.Equal(t, "application/pdf", client.contentTypes[key])

	data, err := store.Fetch(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 payload"), data)

	require.NoError(t, store.Remove(context.Background(), key))
	_, err = store.Fetch(context.Background(), key)
	assert.True(t, errors.IsCode(err, errors.CodeStorageError))
}

func TestStoreSanitizesFilename(t *testing.T) {
	client := newFakeObjectClient()
	store := NewStoreWithClient(client, "legalaid-documents", logging.NewNopLogger())

	key, err := store.Store(context.Background(), "../../etc/notice (final).txt", []byte("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, "/notice__final_.txt"), key)
	assert.NotContains(t, key, "..")
}

func TestStorePutError(t *testing.T) {
	client := newFakeObjectClient()
	client.putErr = assert.AnError
	store := NewStoreWithClient(client, "legalaid-documents", logging.NewNopLogger())

	_, err := store.Store(context.Background(), "a.txt", []byte("x"))
	assert.True(t, errors.IsCode(err, errors.CodeStorageError))
}

func TestEnsureBucketCreatesMissing(t *testing.T) {
	client := newFakeObjectClient()
	client.bucketExists = false
	store := NewStoreWithClient(client, "legalaid-documents", logging.NewNopLogger())

	require.NoError(t, store.ensureBucket(context.Background()))
	assert.Equal(t, []string{"legalaid-documents"}, client.madeBuckets)
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "application/pdf", contentTypeFor("Scan.PDF"))
	assert.Equal(t, "text/plain", contentTypeFor("notes.txt"))
	assert.Equal(t, "application/msword", contentTypeFor("old.doc"))
	assert.Equal(t, "application/octet-stream", contentTypeFor("archive.zip"))
}

func TestNopStore(t *testing.T) {
	var store DocumentStore = NopStore{}

	key, err := store.Store(context.Background(), "a.txt", []byte("x"))
	require.NoError(t, err)
	assert.Empty(t, key)

	_, err = store.Fetch(context.Background(), "anything")
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
	assert.NoError(t, store.Remove(context.Background(), "anything"))
}
