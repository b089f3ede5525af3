package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/contact-info00/legends-menu-sub001/configs"
	"github.com/contact-info00/legends-menu-sub001/entity"
	"github.com/contact-info00/legends-menu-sub001/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminLogin(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter()
	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	ctl := NewAuthController(db, cfg)
	r.POST("/api/admin/login", ctl.Login)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Admin{Email: "admin@legends.menu", Password: string(hash)}).Error)

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		w := performJSON(t, r, http.MethodPost, "/api/admin/login", map[string]any{
			"email": "admin@legends.menu", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		w := performJSON(t, r, http.MethodPost, "/api/admin/login", map[string]any{
			"email": "ghost@legends.menu", "password": "s3cret",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("email comparison ignores case", func(t *testing.T) {
		w := performJSON(t, r, http.MethodPost, "/api/admin/login", map[string]any{
			"email": "Admin@Legends.Menu", "password": "s3cret",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid credentials set the session cookie", func(t *testing.T) {
		w := performJSON(t, r, http.MethodPost, "/api/admin/login", map[string]any{
			"email": "admin@legends.menu", "password": "s3cret",
		})
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.NotEmpty(t, body["token"])

		var found bool
		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == utils.SessionCookie && cookie.Value != "" {
				found = true
				assert.True(t, cookie.HttpOnly)
			}
		}
		assert.True(t, found, "login must set the session cookie")
	})
}
