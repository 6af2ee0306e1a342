package storage

import (
	"context"
	"io"
)

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; set to -1 to let the
// backend buffer/chunk as it supports.
type PutObjectOptions struct {
	Size        int64
	ContentType string
}

// Storage is an S3-compatible object store for uploaded contract files.
// Implementations stream; no local disk is used.
type Storage interface {
	// Put uploads an object under the given key
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) error
	// Delete removes an object by key
	Delete(ctx context.Context, key string) error
	// PublicURL returns the stable, credential-free URL for a stored object
	PublicURL(key string) string
}
