package controllers

import (
	"github.com/contact-info00/legends-menu-sub001/entity"
	"github.com/contact-info00/legends-menu-sub001/pkg/resp"
	"github.com/contact-info00/legends-menu-sub001/repository"
	"github.com/contact-info00/legends-menu-sub001/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FeedbackController struct {
	Repo *repository.FeedbackRepository
	Hub  *ws.FeedbackHub
}

func NewFeedbackController(db *gorm.DB, hub *ws.FeedbackHub) *FeedbackController {
	return &FeedbackController{Repo: repository.NewFeedbackRepository(db), Hub: hub}
}

type CreateFeedbackRequest struct {
	StaffRating   int    `json:"staffRating" binding:"required,min=1,max=5"`
	ServiceRating int    `json:"serviceRating" binding:"required,min=1,max=5"`
	HygieneRating int    `json:"hygieneRating" binding:"required,min=1,max=5"`
	Emoji         string `json:"emoji"`
	Phone         string `json:"phone"`
	TableNo       string `json:"tableNo"`
	Comment       string `json:"comment"`
}

// POST /api/feedback — the one public write.
func (ctl *FeedbackController) Create(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fb := entity.Feedback{
		StaffRating:   req.StaffRating,
		ServiceRating: req.ServiceRating,
		HygieneRating: req.HygieneRating,
		Emoji:         req.Emoji,
		Phone:         req.Phone,
		TableNo:       req.TableNo,
		Comment:       req.Comment,
	}
	if err := ctl.Repo.Create(&fb); err != nil {
		resp.ServerError(c, err)
		return
	}

	if ctl.Hub != nil {
		ctl.Hub.Publish(&fb)
	}
	resp.Created(c, gin.H{"id": fb.ID})
}

// GET /api/admin/feedback
func (ctl *FeedbackController) List(c *gin.Context) {
	feedback, err := ctl.Repo.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Header("Cache-Control", cacheNone)
	resp.OK(c, feedback)
}
