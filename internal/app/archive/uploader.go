// Package archive uploads files to S3-compatible object storage.
package archive

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	apperrors "file-wrangler/internal/app/errors"
	"file-wrangler/internal/app/utils"
	"file-wrangler/internal/config"
	"file-wrangler/internal/logging"
)

// Uploader stores files in a MinIO bucket. It satisfies bulk.ObjectStore.
type Uploader struct {
	client *minio.Client
	bucket string
}

// NewUploader connects to object storage and ensures the bucket exists.
func NewUploader(ctx context.Context, cfg config.StorageConfig) (*Uploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, apperrors.WrapKind(err, apperrors.KindStorage, "failed to create storage client")
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, apperrors.WrapKind(err, apperrors.KindStorage,
			fmt.Sprintf("failed to check bucket %s", cfg.Bucket))
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, apperrors.WrapKind(err, apperrors.KindStorage,
				fmt.Sprintf("failed to create bucket %s", cfg.Bucket))
		}
	}

	return &Uploader{client: client, bucket: cfg.Bucket}, nil
}

// Upload stores one local file under objectName. The object carries the
// source path and a content hash so archived files can be verified later.
func (u *Uploader) Upload(ctx context.Context, localPath, objectName string) error {
	hash, err := utils.CalculateFileHash(localPath)
	if err != nil {
		return apperrors.Wrap(err, fmt.Sprintf("failed to hash %s", localPath))
	}

	contentType := mime.TypeByExtension(filepath.Ext(localPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := u.client.FPutObject(ctx, u.bucket, objectName, localPath, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"original-path": localPath,
			"sha256":        hash,
			"archived-at":   time.Now().Format(time.RFC3339),
		},
	})
	if err != nil {
		return apperrors.WrapKind(err, apperrors.KindStorage,
			fmt.Sprintf("failed to upload %s", objectName))
	}

	logging.Debug("archived file",
		zap.String("object", objectName),
		zap.Int64("size", info.Size))
	return nil
}
