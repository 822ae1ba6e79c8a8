package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshcut-app/freshcut-api/internal/httperr"
	"github.com/freshcut-app/freshcut-api/internal/httpresp"
	"github.com/freshcut-app/freshcut-api/internal/middleware"
	"github.com/freshcut-app/freshcut-api/internal/models"
)

type AdminUserHandler struct {
	db *gorm.DB
}

func NewAdminUserHandler(db *gorm.DB) *AdminUserHandler {
	return &AdminUserHandler{db: db}
}

func (h *AdminUserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.WithContext(c.Request.Context()).Order("created_at").Find(&users).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to load users")
		return
	}

	views := make([]gin.H, 0, len(users))
	for i := range users {
		views = append(views, userView(&users[i]))
	}
	httpresp.List(c, views)
}

func (h *AdminUserHandler) GetByEmail(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	if email == "" {
		httperr.BadRequest(c, httperr.CodeValidation, "email query parameter required")
		return
	}

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Business(c, err)
		return
	}
	httpresp.OK(c, userView(&user))
}

// Delete removes a user by id. Admins cannot remove their own account, so
// at least the acting admin always survives.
func (h *AdminUserHandler) Delete(c *gin.Context) {
	var user models.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, "id = ?", c.Param("id")).Error; err != nil {
		httperr.Business(c, err)
		return
	}

	if user.Email == middleware.CurrentEmail(c) {
		httperr.BadRequest(c, httperr.CodeValidation, "cannot delete own account")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&user).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to delete user")
		return
	}
	httpresp.OK(c, gin.H{"message": "user deleted"})
}
