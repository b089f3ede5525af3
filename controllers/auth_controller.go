package controllers

import (
	"net/http"
	"strings"

	"github.com/contact-info00/legends-menu-sub001/configs"
	"github.com/contact-info00/legends-menu-sub001/entity"
	"github.com/contact-info00/legends-menu-sub001/pkg/resp"
	"github.com/contact-info00/legends-menu-sub001/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// POST /api/admin/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var admin entity.Admin
	if err := a.DB.Where("email = ?", strings.ToLower(req.Email)).First(&admin).Error; err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(admin.ID, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.SetCookie(utils.SessionCookie, token, int(a.Cfg.JWTTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"admin": gin.H{"id": admin.ID, "email": admin.Email},
	})
}

// POST /api/admin/logout
func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /api/admin/check-session (behind the gate): the panel re-checks this on
// every navigation before rendering privileged UI.
func (a *AuthController) CheckSession(c *gin.Context) {
	c.Header("Cache-Control", cacheNone)
	resp.OK(c, gin.H{"authenticated": true})
}
