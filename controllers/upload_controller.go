package controllers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/services"
)

const DefaultMaxUploadBytes int64 = 10 << 20

type ImageUploader interface {
	Upload(ctx context.Context, originalName string, r io.Reader) (*services.UploadResult, error)
}

type UploadController struct {
	images   ImageUploader
	maxBytes int64
}

func NewUploadController(images ImageUploader, maxBytes int64) *UploadController {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &UploadController{images: images, maxBytes: maxBytes}
}

// ----------------------------------------------------
// POST /api/upload-image (multipart "file")
// ----------------------------------------------------

func (ctl *UploadController) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ctl.maxBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, services.Validation("File too large", "file must not exceed the upload limit"))
			return
		}
		log.Printf("❌ upload: no file: %v", err)
		respondError(c, services.Validation("No file provided", "file is required"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondError(c, services.Validation("Invalid file", "file could not be read"))
		return
	}
	defer f.Close()

	res, err := ctl.images.Upload(c.Request.Context(), fh.Filename, f)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, "Image uploaded", res)
}
