package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/scolarite-api/internal/services"
	"github.com/sjperalta/scolarite-api/internal/storage"
)

// receivePhoto stores the multipart "photo" field through images.
// It answers the client itself when the upload is rejected.
func receivePhoto(c *gin.Context, images *services.ImageService, subDir string) (*services.StoredPhoto, bool) {
	if c.Request.ContentLength > storage.MaxFileSize() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier trop volumineux"})
		return nil, false
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier requis"})
		return nil, false
	}
	defer file.Close()

	if header.Size > storage.MaxFileSize() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier trop volumineux"})
		return nil, false
	}
	if !storage.IsValidImageType(header.Header.Get("Content-Type")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type de fichier invalide"})
		return nil, false
	}

	photo, err := images.SavePhoto(file, header.Filename, subDir)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return photo, true
}
