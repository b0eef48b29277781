package storage

import (
	"context"
	"io"
)

// AvatarStore persists uploaded avatar files under their generated filenames.
type AvatarStore interface {
	Save(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, filename string) error
}
