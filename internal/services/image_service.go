package services

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/sjperalta/scolarite-api/internal/storage"
)

// Photo directories
const (
	StudentPhotoDir = "eleves"
	UserPhotoDir    = "utilisateurs"
)

// ThumbnailSize is the edge of the square thumbnail in pixels
const ThumbnailSize = 128

// ImageService handles photo processing and storage
type ImageService struct {
	storage *storage.LocalStorage
}

func NewImageService(storage *storage.LocalStorage) *ImageService {
	return &ImageService{storage: storage}
}

// StoredPhoto holds the relative paths of a saved photo and its thumbnail
type StoredPhoto struct {
	Original  string `json:"photo"`
	Thumbnail string `json:"thumbnail"`
}

// SavePhoto validates the image, stores it as uploaded and writes a square
// thumbnail next to it.
func (s *ImageService) SavePhoto(file io.ReadSeeker, filename, subDir string) (*StoredPhoto, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return nil, fmt.Errorf("%w: format d'image non supporté (JPG/PNG uniquement)", ErrValidation)
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: image illisible: %v", ErrValidation, err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("erreur de lecture du fichier: %w", err)
	}

	name := uuid.NewString()
	original, err := s.storage.Save(file, name, ext, subDir)
	if err != nil {
		return nil, err
	}

	var thumb bytes.Buffer
	thumbImg := imaging.Fill(img, ThumbnailSize, ThumbnailSize, imaging.Center, imaging.Lanczos)
	if ext == ".png" {
		err = png.Encode(&thumb, thumbImg)
	} else {
		err = jpeg.Encode(&thumb, thumbImg, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		_ = s.storage.Delete(original)
		return nil, fmt.Errorf("erreur de création de la miniature: %w", err)
	}

	thumbnail, err := s.storage.Save(&thumb, name+"_thumb", ext, subDir)
	if err != nil {
		_ = s.storage.Delete(original)
		return nil, err
	}

	return &StoredPhoto{Original: original, Thumbnail: thumbnail}, nil
}

// Remove deletes a photo and its thumbnail
func (s *ImageService) Remove(original string) {
	if original == "" {
		return
	}
	ext := filepath.Ext(original)
	_ = s.storage.Delete(original)
	_ = s.storage.Delete(strings.TrimSuffix(original, ext) + "_thumb" + ext)
}
