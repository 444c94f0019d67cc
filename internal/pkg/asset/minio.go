package asset

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioReader fetches one object from an S3-compatible bucket.
type MinioReader struct {
	client *minio.Client
	bucket string
	key    string
}

func NewMinioReader(opts S3Options, bucket, key string) (*MinioReader, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: minio client: %v", ErrInvalidPath, err)
	}
	return &MinioReader{client: client, bucket: bucket, key: key}, nil
}

func (r *MinioReader) Read(ctx context.Context) ([]byte, error) {
	obj, err := r.client.GetObject(ctx, r.bucket, r.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, r.wrap(err)
	}
	defer obj.Close()

	b, err := io.ReadAll(obj)
	if err != nil {
		return nil, r.wrap(err)
	}
	return b, nil
}

func (r *MinioReader) wrap(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: s3://%s/%s", ErrNotFound, r.bucket, r.key)
	}
	return fmt.Errorf("%w: s3://%s/%s: %v", ErrUnreadable, r.bucket, r.key, err)
}
