// Package asset reads the static files attached to outgoing email.
package asset

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrNotFound    = errors.New("asset not found")
	ErrUnreadable  = errors.New("asset unreadable")
	ErrInvalidPath = errors.New("invalid asset path")
)

// Reader returns the full asset content. It is called once per request, so
// a replaced file is picked up without a restart.
type Reader interface {
	Read(ctx context.Context) ([]byte, error)
}

// EncodeBase64 prepares content for an email attachment.
func EncodeBase64(content []byte) string {
	return base64.StdEncoding.EncodeToString(content)
}

// S3Options configure access to an S3-compatible store.
type S3Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// New picks a Reader for path: s3://bucket/key goes to object storage,
// anything else is a local file.
func New(path string, s3 S3Options) (Reader, error) {
	if !strings.HasPrefix(path, "s3://") {
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
		}
		return NewFileReader(path), nil
	}

	bucket, key, err := parseS3URL(path)
	if err != nil {
		return nil, err
	}
	return NewMinioReader(s3, bucket, key)
}

func parseS3URL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q needs both bucket and key", ErrInvalidPath, raw)
	}
	return bucket, key, nil
}
