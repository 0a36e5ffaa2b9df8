package controllers

import (
	"net/http"
	"testing"
	"time"

	"MindHavenGo/config"
	"MindHavenGo/models"
	"MindHavenGo/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageRequiresPremium(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, false)

	cc := NewChatController(nil)
	r := authedRouter(user.ID)
	r.POST("/chat", cc.SendMessage)

	w := performJSON(t, r, http.MethodPost, "/chat?message=hi", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	var errResp map[string]string
	decodeBody(t, w, &errResp)
	assert.Equal(t, "not_premium", errResp["error_code"])

	// 未通过会员校验时不写入任何消息
	var count int64
	require.NoError(t, config.DB.Model(&models.ChatMessage{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSendMessageRejectsEmptyMessage(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, true)

	cc := NewChatController(nil)
	r := authedRouter(user.ID)
	r.POST("/chat", cc.SendMessage)

	w := performJSON(t, r, http.MethodPost, "/chat", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHistoryAscendingAndEmptyDefault(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, true)

	cc := NewChatController(nil)
	r := authedRouter(user.ID)
	r.GET("/chat", cc.GetHistory)

	// 空历史返回空列表而不是错误
	w := performJSON(t, r, http.MethodGet, "/chat", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Messages []models.ChatMessage `json:"messages"`
	}
	decodeBody(t, w, &resp)
	assert.Empty(t, resp.Messages)

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	for i, content := range []string{"hello", "hi there", "how are you"} {
		role := models.RoleUser
		if i == 1 {
			role = models.RoleAssistant
		}
		msg := models.ChatMessage{
			ID:        utils.GenerateID(),
			UserID:    user.ID,
			Role:      role,
			Content:   content,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, config.DB.Create(&msg).Error)
	}

	w = performJSON(t, r, http.MethodGet, "/chat", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	require.Len(t, resp.Messages, 3)
	assert.Equal(t, "hello", resp.Messages[0].Content)
	assert.Equal(t, models.RoleAssistant, resp.Messages[1].Role)
	assert.Equal(t, "how are you", resp.Messages[2].Content)
}
