package ports

import "context"

type BlobStore interface {
	// Read returns domain.ErrSaveNotFound when nothing was written under name.
	Read(ctx context.Context, name string) ([]byte, error)
	// Write replaces the payload stored under name as a single unit.
	Write(ctx context.Context, name string, data []byte) error
}
