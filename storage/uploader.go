// Package storage publishes exported tournament reports to an
// S3-compatible bucket.
package storage

import (
	"context"
	"io"
)

// UploadResult describes one stored report object.
type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader is the report-bucket surface the export service works
// against: store a rendered report, remove a stale or half-published
// one, and resolve the public link for a key.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}
