package storage_test

import (
	"context"
	"testing"

	"scdb-loader/core/config"
	"scdb-loader/core/storage"
	"scdb-loader/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"Local minio", storage.Config{Endpoint: "localhost:9000", AccessKey: "minioadmin", SecretKey: "minioadmin", Bucket: "catalog"}},
		{"Scheme is stripped", storage.Config{Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"}},
		{"S3 over TLS", storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true, Region: "eu-west-1", TimeoutSeconds: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestNewClient_FromDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "catalog", cfg.Storage.Bucket)
	assert.Equal(t, "v1", cfg.Storage.Prefix)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.False(t, cfg.Storage.UseSSL)

	client, err := storage.NewClient(cfg.Storage)
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClient_PrefixFromEnv(t *testing.T) {
	t.Setenv("STORAGE_BUCKET", "scdb")
	t.Setenv("STORAGE_PREFIX", "catalog/4.0")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "scdb", cfg.Storage.Bucket)
	assert.Equal(t, "catalog/4.0", cfg.Storage.Prefix)
}

func TestMockObjects(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("ListObjects", ctx, "catalog", mock.Anything).Return(mocks.Objects("v1/items.json", "v1/ships.json"))
	removed := client.OnRemoveObjects(ctx, "catalog")

	var keys []string
	for obj := range client.ListObjects(ctx, "catalog", minio.ListObjectsOptions{}) {
		keys = append(keys, obj.Key)
	}
	assert.Equal(t, []string{"v1/items.json", "v1/ships.json"}, keys)

	errs := client.RemoveObjects(ctx, "catalog", mocks.Objects("v1/ammo.json"), minio.RemoveObjectsOptions{})
	for range errs {
		t.Fatal("no removal errors expected")
	}
	assert.Equal(t, []string{"v1/ammo.json"}, *removed)
	client.AssertExpectations(t)
}
