package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshcut-app/freshcut-api/internal/ai"
	"github.com/freshcut-app/freshcut-api/internal/chatlog"
	"github.com/freshcut-app/freshcut-api/internal/models"
)

type captureStore struct {
	saved chan *models.ChatLog
}

func newCaptureStore() *captureStore {
	return &captureStore{saved: make(chan *models.ChatLog, 10)}
}

func (s *captureStore) SaveChatLog(entry *models.ChatLog) error {
	s.saved <- entry
	return nil
}

func newChatRouter(store *captureStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	// Empty API key: the provider is never consulted, every relevant
	// request degrades to the standard reply.
	h := NewAIHandler(nil, ai.NewClient(""), chatlog.NewDispatcher(store))

	r := gin.New()
	r.POST("/api/ai/chat", h.Chat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, req ai.ChatRequest) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/api/ai/chat", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, httpReq)
	return w
}

func awaitLog(t *testing.T, store *captureStore) *models.ChatLog {
	t.Helper()
	select {
	case entry := <-store.saved:
		return entry
	case <-time.After(2 * time.Second):
		t.Fatal("chat log was not persisted")
		return nil
	}
}

func TestChatOffTopicAnsweredLocally(t *testing.T) {
	store := newCaptureStore()
	r := newChatRouter(store)

	w := postChat(t, r, ai.ChatRequest{
		Messages: []ai.Message{{Role: "user", Content: "dame la receta de una pizza napolitana"}},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp ai.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ai.StandardReply, resp.Reply)

	entry := awaitLog(t, store)
	assert.Equal(t, "off_topic", entry.RejectReason)
	assert.Equal(t, ai.StandardReply, entry.Reply)
}

func TestChatRelevantWithoutProviderDegrades(t *testing.T) {
	store := newCaptureStore()
	r := newChatRouter(store)

	w := postChat(t, r, ai.ChatRequest{
		Messages:        []ai.Message{{Role: "user", Content: "qué corte de cabello me recomiendas para mi rostro ovalado"}},
		FaceDescription: "rostro ovalado, barba corta",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp ai.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ai.StandardReply, resp.Reply)

	entry := awaitLog(t, store)
	assert.Equal(t, "provider_unavailable", entry.RejectReason)
	assert.Len(t, entry.Messages, 1)
}

func TestChatRejectsEmptyMessages(t *testing.T) {
	store := newCaptureStore()
	r := newChatRouter(store)

	w := postChat(t, r, ai.ChatRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
