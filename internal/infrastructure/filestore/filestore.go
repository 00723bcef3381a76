// Package filestore holds the upload backends: local disk and S3-compatible
// object storage.
package filestore

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/v4health/clinic-api/internal/core/domain"
)

// DefaultMaxBytes bounds a single upload when no limit is configured.
const DefaultMaxBytes = 10 << 20

const maxExtLen = 10

// checkUpload rejects non-image content and declared sizes over max.
func checkUpload(meta domain.Upload, max int64) error {
	ct := strings.ToLower(strings.TrimSpace(meta.ContentType))
	if !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedUpload, meta.ContentType)
	}
	if meta.Size > max {
		return fmt.Errorf("%w: %d bytes, limit %d", domain.ErrUploadTooLarge, meta.Size, max)
	}
	return nil
}

// checkName rejects anything objectName could not have produced as a bare
// file name.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid stored file name %q", name)
	}
	return nil
}

// objectName builds <unix-millis>-<uuid><ext>. The client filename only
// contributes its extension.
func objectName(originalName string, now time.Time) string {
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), uuid.NewString(), safeExt(originalName))
}

func safeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(name)))
	if len(ext) < 2 || len(ext) > maxExtLen {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

// limitedReader fails with ErrUploadTooLarge once more than max bytes are read.
type limitedReader struct {
	r   io.Reader
	max int64
	n   int64
}

func newLimitedReader(r io.Reader, max int64) *limitedReader {
	return &limitedReader{r: r, max: max}
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.n += int64(n)
	if l.n > l.max {
		return n, fmt.Errorf("%w: limit %d bytes", domain.ErrUploadTooLarge, l.max)
	}
	return n, err
}
