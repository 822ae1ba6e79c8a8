package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freshcut-app/freshcut-api/internal/ai"
	"github.com/freshcut-app/freshcut-api/internal/chatlog"
	"github.com/freshcut-app/freshcut-api/internal/httperr"
	"github.com/freshcut-app/freshcut-api/internal/httpresp"
	"github.com/freshcut-app/freshcut-api/internal/middleware"
	"github.com/freshcut-app/freshcut-api/internal/models"
)

// AIHandler fronts the haircut recommendation chat. Off-topic questions
// are answered locally with the standard reply and never reach the
// provider; every exchange is logged asynchronously.
type AIHandler struct {
	db     *gorm.DB
	client *ai.Client
	logs   *chatlog.Dispatcher
}

func NewAIHandler(db *gorm.DB, client *ai.Client, logs *chatlog.Dispatcher) *AIHandler {
	return &AIHandler{db: db, client: client, logs: logs}
}

func (h *AIHandler) Chat(c *gin.Context) {
	var req ai.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, err.Error())
		return
	}

	email := middleware.CurrentEmail(c)
	entry := chatlog.Entry{
		Email:           email,
		Messages:        toChatMessages(req.Messages),
		FaceDescription: req.FaceDescription,
	}

	if !ai.IsRelevantText(latestUserText(req) + " " + req.FaceDescription) {
		entry.Reply = ai.StandardReply
		entry.RejectReason = "off_topic"
		h.logs.Dispatch(entry)
		httpresp.OK(c, ai.ChatResponse{Reply: ai.StandardReply})
		return
	}

	resp, consulted := h.client.Chat(c.Request.Context(), req)
	entry.Reply = resp.Reply
	if !consulted {
		entry.RejectReason = "provider_unavailable"
	}
	h.logs.Dispatch(entry)

	httpresp.OK(c, resp)
}

func (h *AIHandler) History(c *gin.Context) {
	email := middleware.CurrentEmail(c)
	if email == "" {
		httperr.Unauthorized(c, "unauthenticated", "authentication required")
		return
	}

	var logs []models.ChatLog
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		Order("created_at DESC").
		Limit(50).
		Find(&logs).Error
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to load history")
		return
	}
	httpresp.List(c, logs)
}

// SaveLatest pins the caller's most recent exchange. The worker persists
// logs asynchronously, so a chat sent moments ago may not be visible yet;
// that surfaces as not_found and the client can retry.
func (h *AIHandler) SaveLatest(c *gin.Context) {
	email := middleware.CurrentEmail(c)
	if email == "" {
		httperr.Unauthorized(c, "unauthenticated", "authentication required")
		return
	}

	var latest models.ChatLog
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		Order("created_at DESC").
		First(&latest).Error
	if err != nil {
		httperr.Business(c, err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Model(&latest).Update("saved", true).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to save chat")
		return
	}
	httpresp.OK(c, latest)
}

func latestUserText(req ai.ChatRequest) string {
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if strings.EqualFold(req.Messages[i].Role, "user") {
			return req.Messages[i].Content
		}
	}
	return ""
}

func toChatMessages(msgs []ai.Message) []models.ChatMessage {
	out := make([]models.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, models.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return out
}
