package storage

import (
	"context"
	"io"
)

// Blob locates a stored file for download: either a path on local disk or a
// remote URL, depending on the backend that stored it.
type Blob struct {
	Path string
	URL  string
}

// FileStorage defines the contract for material file storage providers.
// Save returns an opaque storage ref that is persisted with the material
// metadata and later passed back to Resolve and Delete.
type FileStorage interface {
	Save(ctx context.Context, r io.Reader, fileName string) (string, error)
	// Resolve returns download coordinates for ref. Backends that can cheaply
	// check existence return apperror.ErrNotFound for a missing blob.
	Resolve(ctx context.Context, ref string) (*Blob, error)
	// Delete removes the backing file. A blob that is already gone is not an
	// error on any backend.
	Delete(ctx context.Context, ref string) error
}
