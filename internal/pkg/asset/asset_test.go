package asset

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileReader_ReadsOnEveryCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guia.pdf")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))

	r := NewFileReader(path)
	b, err := r.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), b)

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))
	b, err = r.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), b)
}

func TestFileReader_Missing(t *testing.T) {
	r := NewFileReader(filepath.Join(t.TempDir(), "nope.pdf"))
	_, err := r.Read(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileReader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFileReader("whatever").Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEncodeBase64(t *testing.T) {
	enc := EncodeBase64([]byte("%PDF"))
	dec, err := base64.StdEncoding.DecodeString(enc)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), dec)
}

func TestNew(t *testing.T) {
	r, err := New("/var/www/guia.pdf", S3Options{})
	require.NoError(t, err)
	assert.IsType(t, &FileReader{}, r)

	_, err = New("", S3Options{})
	assert.ErrorIs(t, err, ErrInvalidPath)

	r, err = New("s3://assets/pdf/guia-nr1.pdf", S3Options{Endpoint: "localhost:9000"})
	require.NoError(t, err)
	mr, ok := r.(*MinioReader)
	require.True(t, ok)
	assert.Equal(t, "assets", mr.bucket)
	assert.Equal(t, "pdf/guia-nr1.pdf", mr.key)

	_, err = New("s3://assets", S3Options{Endpoint: "localhost:9000"})
	assert.ErrorIs(t, err, ErrInvalidPath)
}
