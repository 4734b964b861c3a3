package services

import (
	"bytes"
	"context"
	"image"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	// registered for image.DecodeConfig
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"

	"back_office/internal/cache"
	"back_office/internal/models"
	"back_office/internal/query"
	"back_office/internal/repository"
)

const entityMedia = "media"

type MediaService interface {
	List(ctx context.Context, filter query.MediaFilter) (*models.Page[models.Media], error)
	Upload(ctx context.Context, file *multipart.FileHeader, createdBy *uuid.UUID) (*models.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type mediaService struct {
	repo    repository.MediaRepository
	cache   *cache.Client
	dir     string
	baseURL string
}

func NewMediaService(repo repository.MediaRepository, cacheClient *cache.Client, dir, baseURL string) MediaService {
	return &mediaService{
		repo:    repo,
		cache:   cacheClient,
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *mediaService) List(ctx context.Context, filter query.MediaFilter) (*models.Page[models.Media], error) {
	key := cache.ListKey(entityMedia, filter.Encode())
	var page models.Page[models.Media]
	if s.cache.GetJSON(ctx, key, &page) {
		return &page, nil
	}

	items, count, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}
	page = models.Page[models.Media]{Data: items, Count: count}
	s.cache.SetJSON(ctx, entityMedia, key, page)
	return &page, nil
}

func (s *mediaService) Upload(ctx context.Context, file *multipart.FileHeader, createdBy *uuid.UUID) (*models.Media, error) {
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, invalid("only image uploads are supported")
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, invalid("invalid image file")
	}
	ext := format
	if ext == "jpeg" {
		ext = "jpg"
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}
	fileName := strings.ReplaceAll(uuid.NewString(), "-", "") + "." + ext
	filePath := filepath.Join(s.dir, fileName)
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return nil, err
	}

	media := &models.Media{
		FileName:     fileName,
		OriginalName: file.Filename,
		FileURL:      s.baseURL + "/" + fileName,
		FilePath:     filePath,
		MimeType:     "image/" + format,
		FileSize:     int64(len(data)),
		Width:        cfg.Width,
		Height:       cfg.Height,
		CreatedBy:    createdBy,
	}
	if err := s.repo.Create(media); err != nil {
		os.Remove(filePath)
		return nil, err
	}

	s.cache.Invalidate(ctx, entityMedia)
	return media, nil
}

func (s *mediaService) Delete(ctx context.Context, id uuid.UUID) error {
	media, err := s.repo.GetByID(id)
	if err != nil {
		return translateNotFound(err, "media")
	}

	// best effort; a missing file must not keep the row alive
	if err := os.Remove(media.FilePath); err != nil && !os.IsNotExist(err) {
		log.Printf("media: remove %s: %v", media.FilePath, err)
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, entityMedia)
	return nil
}
