package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/v4health/clinic-api/internal/core/domain"
	"github.com/v4health/clinic-api/internal/core/ports"
)

// ImageService hands uploads to the file store and records the resulting filename.
type ImageService struct {
	files ports.FileStorage
	repo  ports.CatalogRepository
	log   zerolog.Logger
}

func NewImageService(files ports.FileStorage, repo ports.CatalogRepository, log zerolog.Logger) *ImageService {
	return &ImageService{files: files, repo: repo, log: log}
}

func (s *ImageService) Upload(ctx context.Context, meta domain.Upload, content io.Reader) (*domain.Image, error) {
	filename, err := s.files.Save(ctx, meta, content)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedUpload) || errors.Is(err, domain.ErrUploadTooLarge) {
			return nil, err
		}
		s.log.Error().Err(err).Str("original_name", meta.OriginalName).Msg("image store failed")
		return nil, fmt.Errorf("upload image: %w", err)
	}

	img := &domain.Image{Filename: filename}
	id, err := s.repo.CreateImage(ctx, img)
	if err != nil {
		s.log.Error().Err(err).Str("filename", filename).Msg("image stored but insert failed")
		if derr := s.files.Delete(context.WithoutCancel(ctx), filename); derr != nil {
			s.log.Warn().Err(derr).Str("filename", filename).Msg("orphaned image not removed")
		}
		return nil, domain.NewStorageError("create image", err)
	}
	img.ID = id

	s.log.Info().Int64("id", id).Str("filename", filename).Int64("size", meta.Size).Msg("image uploaded")
	return img, nil
}
