package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/dtroode/storefront/internal/apierror"
	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

const (
	// MaxUploadSize bounds an uploaded image before decoding.
	MaxUploadSize = 10 << 20

	// MediaPrefix is the public URL prefix of stored objects.
	MediaPrefix = "/media/"

	imageWidth   = 800
	imageQuality = 80

	// maxImagePixels bounds width*height of an upload before it is decoded.
	maxImagePixels = 50_000_000

	msgUnsupportedImage = "unsupported image format, only PNG and JPEG are allowed"
)

// Media stores product images and brand logos in object storage.
type Media struct {
	storage      model.Storage
	productStore model.ProductStore
	brandStore   model.BrandStore
	logger       *logger.Logger
	now          func() time.Time
}

func NewMedia(storage model.Storage, productStore model.ProductStore, brandStore model.BrandStore, logger *logger.Logger) *Media {
	return &Media{
		storage:      storage,
		productStore: productStore,
		brandStore:   brandStore,
		logger:       logger,
		now:          time.Now,
	}
}

// UploadProductImage replaces the image of a product.
func (s *Media) UploadProductImage(ctx context.Context, productID uuid.UUID, r io.Reader) (model.Product, error) {
	product, err := s.productStore.GetByID(ctx, productID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Product{}, apierror.NewErrNotFound("product")
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	url, err := s.store(ctx, "products", r)
	if err != nil {
		return model.Product{}, err
	}

	previous := product.Image
	product.Image = url
	product.UpdatedAt = s.now()

	saved, err := s.productStore.Update(ctx, product)
	if err != nil {
		s.discard(ctx, url)
		return model.Product{}, fmt.Errorf("failed to update product image: %w", err)
	}
	s.discard(ctx, previous)

	s.logger.Info("Media service: product image stored",
		"product_id", productID,
		"url", url)

	return saved, nil
}

// UploadBrandLogo replaces the logo of a brand.
func (s *Media) UploadBrandLogo(ctx context.Context, brandID uuid.UUID, r io.Reader) (model.Brand, error) {
	brand, err := s.brandStore.GetByID(ctx, brandID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Brand{}, apierror.NewErrNotFound("brand")
	}
	if err != nil {
		return model.Brand{}, fmt.Errorf("failed to get brand: %w", err)
	}

	url, err := s.store(ctx, "brands", r)
	if err != nil {
		return model.Brand{}, err
	}

	previous := brand.Logo
	brand.Logo = url
	brand.UpdatedAt = s.now()

	saved, err := s.brandStore.Update(ctx, brand)
	if err != nil {
		s.discard(ctx, url)
		return model.Brand{}, fmt.Errorf("failed to update brand logo: %w", err)
	}
	s.discard(ctx, previous)

	s.logger.Info("Media service: brand logo stored",
		"brand_id", brandID,
		"url", url)

	return saved, nil
}

// Open streams a stored object by key.
func (s *Media) Open(ctx context.Context, key string) (io.ReadCloser, model.ObjectInfo, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return nil, model.ObjectInfo{}, apierror.NewErrNotFound("media")
	}

	rc, info, err := s.storage.Download(ctx, key)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.ObjectInfo{}, apierror.NewErrNotFound("media")
	}
	if err != nil {
		return nil, model.ObjectInfo{}, fmt.Errorf("failed to download media: %w", err)
	}
	return rc, info, nil
}

// store normalises the image and uploads it under dir, returning its public URL.
func (s *Media) store(ctx context.Context, dir string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) > MaxUploadSize {
		return "", apierror.NewErrValidation("image must be at most 10 MiB")
	}

	// The header is checked first so a small file declaring huge dimensions
	// never reaches the full decoder.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", apierror.NewErrValidation(msgUnsupportedImage)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > maxImagePixels {
		return "", apierror.NewErrValidation("image dimensions are too large")
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", apierror.NewErrValidation(msgUnsupportedImage)
	}

	if img.Bounds().Dx() > imageWidth {
		img = resize.Resize(imageWidth, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: imageQuality}); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	size := buf.Len()
	key := fmt.Sprintf("%s/%s.jpg", dir, uuid.New().String())
	if err := s.storage.Upload(ctx, key, &buf, int64(size), "image/jpeg"); err != nil {
		s.logger.Error("Media service: failed to upload object",
			"key", key,
			"error", err.Error())
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	s.logger.Debug("Media service: image normalised",
		"key", key,
		"source_format", format,
		"bytes", size)

	return MediaPrefix + key, nil
}

// discard removes an object we previously stored. Failures are only logged.
func (s *Media) discard(ctx context.Context, url string) {
	if !strings.HasPrefix(url, MediaPrefix) {
		return
	}
	key := strings.TrimPrefix(url, MediaPrefix)
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Warn("Media service: failed to delete object",
			"key", key,
			"error", err.Error())
	}
}
