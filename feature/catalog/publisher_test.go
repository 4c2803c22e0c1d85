package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"scdb-loader/core/storage"
	"scdb-loader/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func outputDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.json"), []byte("[]"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ships.json"), []byte("[]"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "loader-20240101000000.log"), []byte("log"), 0o644))
	return dir
}

func TestPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	dir := outputDir(t)
	client := new(mocks.Client)

	client.On("BucketExists", ctx, "catalog").Return(false, nil)
	client.On("MakeBucket", ctx, "catalog", mock.Anything).Return(nil)
	client.On("PutObject", ctx, "catalog", "v1/items.json", mock.Anything, int64(2), mock.Anything).Return(minio.UploadInfo{}, nil)
	client.On("PutObject", ctx, "catalog", "v1/ships.json", mock.Anything, int64(2), mock.Anything).Return(minio.UploadInfo{}, nil)
	client.On("ListObjects", ctx, "catalog", minio.ListObjectsOptions{Prefix: "v1/"}).
		Return(mocks.Objects("v1/items.json", "v1/starmap.json", "v1/ships.json", "v1/notes.txt", "v1/old/shops.json"))

	removed := client.OnRemoveObjects(ctx, "catalog")

	p := NewPublisher(client, storage.Config{Bucket: "catalog", Prefix: "/v1/"}, nil)
	report, err := p.Publish(ctx, dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"v1/items.json", "v1/ships.json"}, report.Uploaded)
	assert.Equal(t, 1, report.Removed)
	assert.Equal(t, []string{"v1/starmap.json"}, *removed)
	client.AssertExpectations(t)
}

func TestPublisher_SharedBucketWithoutPrefix(t *testing.T) {
	ctx := context.Background()
	dir := outputDir(t)
	client := new(mocks.Client)

	client.On("BucketExists", ctx, "shared").Return(true, nil)
	client.On("PutObject", ctx, "shared", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)
	client.On("ListObjects", ctx, "shared", minio.ListObjectsOptions{Prefix: ""}).
		Return(mocks.Objects("items.json", "ships.json", "shops.json", "website/index.html", "backups/2024.tar", "website/ammo.json"))

	removed := client.OnRemoveObjects(ctx, "shared")

	report, err := NewPublisher(client, storage.Config{Bucket: "shared"}, nil).Publish(ctx, dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"shops.json"}, *removed)
	assert.Equal(t, 1, report.Removed)
	client.AssertExpectations(t)
}

func TestPublisher_NothingStale(t *testing.T) {
	ctx := context.Background()
	dir := outputDir(t)
	client := new(mocks.Client)

	client.On("BucketExists", ctx, "catalog").Return(true, nil)
	client.On("PutObject", ctx, "catalog", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)
	client.On("ListObjects", ctx, "catalog", mock.Anything).Return(mocks.Objects("items.json"))

	report, err := NewPublisher(client, storage.Config{Bucket: "catalog"}, nil).Publish(ctx, dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"items.json", "ships.json"}, report.Uploaded)
	assert.Zero(t, report.Removed)
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "RemoveObjects", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublisher_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("Bucket check", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "catalog").Return(false, errors.New("connection refused"))

		_, err := NewPublisher(client, storage.Config{Bucket: "catalog"}, nil).Publish(ctx, t.TempDir())
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("Upload", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "catalog").Return(true, nil)
		client.On("PutObject", ctx, "catalog", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("access denied"))

		_, err := NewPublisher(client, storage.Config{Bucket: "catalog"}, nil).Publish(ctx, outputDir(t))
		assert.ErrorContains(t, err, "failed to upload items.json")
		client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
	})
}
