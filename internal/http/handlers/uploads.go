package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"modakart.com/app/internal/http/middleware"
	"modakart.com/app/internal/http/render"
	"modakart.com/app/internal/shared/apperr"
	"modakart.com/app/internal/storage"
)

const maxUploadBytes = 5 << 20

type UploadsHandler struct {
	store storage.Storage
}

func NewUploadsHandler(store storage.Storage) *UploadsHandler {
	return &UploadsHandler{store: store}
}

type uploadView struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Upload takes a multipart "image" field and stores it under a generated key.
func (h *UploadsHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("An image file is required.", nil))
		return
	}
	if fh.Size > maxUploadBytes {
		middleware.Fail(c, apperr.InvalidErr("Image must be 5 MB or smaller.", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()

	obj, err := h.store.Put(c.Request.Context(), f, storage.UploadInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	})
	if errors.Is(err, storage.ErrUnsupportedType) {
		middleware.Fail(c, apperr.InvalidErr("Only PNG, JPEG, WebP or GIF images are accepted.", nil))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.Created(c, uploadView{Key: obj.Key, URL: obj.URL})
}

func (h *UploadsHandler) Delete(c *gin.Context) {
	// wildcard param keeps the slashes S3 keys carry
	key := strings.TrimPrefix(c.Param("key"), "/")
	if err := h.store.Delete(c.Request.Context(), key); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.Message(c, "Image deleted.")
}
