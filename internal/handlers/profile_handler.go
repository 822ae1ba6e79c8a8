package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshcut-app/freshcut-api/internal/httperr"
	"github.com/freshcut-app/freshcut-api/internal/httpresp"
	"github.com/freshcut-app/freshcut-api/internal/middleware"
	"github.com/freshcut-app/freshcut-api/internal/models"
	"github.com/freshcut-app/freshcut-api/internal/storage"
)

// Uploads above this size are rejected before decoding.
const maxAvatarUpload = 5 << 20

type ProfileHandler struct {
	db      *gorm.DB
	avatars storage.AvatarStore
}

func NewProfileHandler(db *gorm.DB, avatars storage.AvatarStore) *ProfileHandler {
	return &ProfileHandler{db: db, avatars: avatars}
}

type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *ProfileHandler) Me(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	httpresp.OK(c, userView(user))
}

func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, err.Error())
		return
	}

	user.Name = req.Name
	if err := h.db.WithContext(c.Request.Context()).Save(user).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update profile")
		return
	}
	httpresp.OK(c, userView(user))
}

func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "multipart field 'avatar' required")
		return
	}
	defer file.Close()

	if header.Size > maxAvatarUpload {
		httperr.BadRequest(c, httperr.CodeValidation, "avatar exceeds 5MB")
		return
	}

	raw, err := io.ReadAll(io.LimitReader(file, maxAvatarUpload+1))
	if err != nil || len(raw) > maxAvatarUpload {
		httperr.BadRequest(c, httperr.CodeValidation, "failed to read upload")
		return
	}

	normalized, err := storage.NormalizeAvatar(raw)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "unsupported image format")
		return
	}

	key, err := h.avatars.Save(c.Request.Context(), user.ID, normalized)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to store avatar")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Model(user).Update("avatar_path", key).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to save avatar reference")
		return
	}

	httpresp.OK(c, gin.H{"message": "avatar updated"})
}

// ServeAvatar is a public read. A user without an avatar answers 204 so
// clients can fall back to a placeholder without error handling.
func (h *ProfileHandler) ServeAvatar(c *gin.Context) {
	var user models.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, "id = ?", c.Param("userId")).Error; err != nil {
		httperr.Business(c, err)
		return
	}

	if user.AvatarPath == "" {
		c.Status(http.StatusNoContent)
		return
	}

	data, err := h.avatars.Open(c.Request.Context(), user.AvatarPath)
	if err != nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.Data(http.StatusOK, storage.ContentType, data)
}

func (h *ProfileHandler) currentUser(c *gin.Context) (*models.User, bool) {
	email := middleware.CurrentEmail(c)
	if email == "" {
		httperr.Unauthorized(c, "unauthenticated", "authentication required")
		return nil, false
	}

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Business(c, err)
		return nil, false
	}
	return &user, true
}
