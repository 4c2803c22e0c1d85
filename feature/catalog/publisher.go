package catalog

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"scdb-loader/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publisher uploads emitted artifacts to object storage.
type Publisher struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// PublishReport summarizes one upload.
type PublishReport struct {
	Uploaded []string
	Removed  int
}

// NewPublisher creates a Publisher for the bucket and prefix in cfg.
func NewPublisher(client storage.Client, cfg storage.Config, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		logger: logger,
	}
}

// Publish uploads every JSON file in dir under the configured prefix and
// removes artifact objects directly under the prefix that are no longer
// produced. Other objects in the bucket are never removed.
func (p *Publisher) Publish(ctx context.Context, dir string) (*PublishReport, error) {
	if err := p.ensureBucket(ctx); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	report := &PublishReport{}
	keep := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		key := p.objectName(entry.Name())
		if err := p.upload(ctx, filepath.Join(dir, entry.Name()), key); err != nil {
			return nil, err
		}
		keep[key] = true
		report.Uploaded = append(report.Uploaded, key)
	}

	removed, err := p.removeStale(ctx, keep)
	if err != nil {
		return nil, err
	}
	report.Removed = removed

	p.logger.Info("Catalog published",
		zap.String("bucket", p.bucket),
		zap.String("prefix", p.prefix),
		zap.Int("uploaded", len(report.Uploaded)),
		zap.Int("removed", report.Removed))
	return report, nil
}

func (p *Publisher) ensureBucket(ctx context.Context) error {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", p.bucket, err)
	}
	if exists {
		return nil
	}
	if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
	}
	p.logger.Info("Bucket created", zap.String("bucket", p.bucket))
	return nil
}

func (p *Publisher) upload(ctx context.Context, file, key string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	_, err = p.client.PutObject(ctx, p.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

func (p *Publisher) removeStale(ctx context.Context, keep map[string]bool) (int, error) {
	opts := minio.ListObjectsOptions{Prefix: p.listPrefix()}

	var stale []minio.ObjectInfo
	for obj := range p.client.ListObjects(ctx, p.bucket, opts) {
		if obj.Err != nil {
			return 0, fmt.Errorf("failed to list %s: %w", p.bucket, obj.Err)
		}
		if keep[obj.Key] || !p.isArtifact(obj.Key) {
			continue
		}
		stale = append(stale, obj)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(stale))
	for _, obj := range stale {
		objectsCh <- obj
	}
	close(objectsCh)

	failed := 0
	for rerr := range p.client.RemoveObjects(ctx, p.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		failed++
		p.logger.Warn("Failed to remove stale object", zap.String("object", rerr.ObjectName), zap.Error(rerr.Err))
	}
	return len(stale) - failed, nil
}

func (p *Publisher) objectName(file string) string {
	if p.prefix == "" {
		return file
	}
	return path.Join(p.prefix, file)
}

// isArtifact reports whether key names an artifact directly under the prefix.
func (p *Publisher) isArtifact(key string) bool {
	file := strings.TrimPrefix(key, p.listPrefix())
	if file == key && p.prefix != "" {
		return false
	}
	return !strings.Contains(file, "/") && IsArtifactFile(file)
}

func (p *Publisher) listPrefix() string {
	if p.prefix == "" {
		return ""
	}
	return p.prefix + "/"
}
