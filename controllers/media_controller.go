package controllers

import (
	"encoding/base64"
	"errors"
	"strconv"

	"github.com/contact-info00/legends-menu-sub001/entity"
	"github.com/contact-info00/legends-menu-sub001/pkg/resp"
	"github.com/contact-info00/legends-menu-sub001/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MediaController struct {
	Repo *repository.MediaRepository
}

func NewMediaController(db *gorm.DB) *MediaController {
	return &MediaController{Repo: repository.NewMediaRepository(db)}
}

type CreateMediaRequest struct {
	Data     string `json:"data" binding:"required"` // base64 body
	MimeType string `json:"mimeType" binding:"required"`
}

// POST /api/admin/media — media is create-only; replacing an image means
// creating a new record and repointing the reference.
func (ctl *MediaController) Create(c *gin.Context) {
	var req CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		resp.BadRequest(c, "data is not valid base64")
		return
	}

	m := entity.Media{
		Data:     data,
		MimeType: req.MimeType,
		Size:     int64(len(data)),
	}
	if err := ctl.Repo.Create(&m); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": m.ID, "mimeType": m.MimeType, "size": m.Size})
}

// GET /api/media/:id — raw bytes; content is immutable so the cache lifetime
// is effectively unbounded.
func (ctl *MediaController) Serve(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	m, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "media not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.Header("Cache-Control", cacheImmutable)
	c.Header("Content-Length", strconv.FormatInt(m.Size, 10))
	c.Data(200, m.MimeType, m.Data)
}
