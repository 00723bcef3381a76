package ports

import (
	"context"
	"io"

	"github.com/v4health/clinic-api/internal/core/domain"
)

// FileStorage persists uploaded binaries under a generated unique filename
// and returns that filename. Callers only ever keep the filename.
//
// Delete removes a file returned by Save. Deleting a missing file is not an
// error.
type FileStorage interface {
	Save(ctx context.Context, meta domain.Upload, content io.Reader) (string, error)
	Delete(ctx context.Context, name string) error
}
