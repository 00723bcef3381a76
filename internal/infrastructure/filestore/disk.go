package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/v4health/clinic-api/internal/core/domain"
)

// Disk stores uploads as files in a single directory.
type Disk struct {
	dir      string
	maxBytes int64
	now      func() time.Time
}

func NewDisk(dir string, maxBytes int64) (*Disk, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Disk{dir: dir, maxBytes: maxBytes, now: time.Now}, nil
}

// Dir is the directory served under /images.
func (d *Disk) Dir() string { return d.dir }

func (d *Disk) Save(ctx context.Context, meta domain.Upload, content io.Reader) (string, error) {
	if err := checkUpload(meta, d.maxBytes); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := objectName(meta.OriginalName, d.now())
	path := filepath.Join(d.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}

	_, copyErr := io.Copy(f, newLimitedReader(content, d.maxBytes))
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(path)
		if copyErr != nil {
			return "", fmt.Errorf("write %s: %w", name, copyErr)
		}
		return "", fmt.Errorf("close %s: %w", name, closeErr)
	}

	return name, nil
}

func (d *Disk) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(d.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}
