package controllers

import (
	"net/http"
	"time"

	"MindHavenGo/config"
	"MindHavenGo/models"
	"MindHavenGo/services"
	"MindHavenGo/utils"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	chatService *services.ChatService
}

func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// requirePremium 加载当前用户并校验会员权限，AI相关接口共用
func requirePremium(ctx *gin.Context) (models.User, bool) {
	var user models.User

	uid := ctx.GetString("uid")
	if uid == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return user, false
	}

	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("获取用户信息失败", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取用户信息失败"})
		return user, false
	}

	if !user.IsPremium {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"error":      "该功能仅对会员开放",
			"error_code": "not_premium",
		})
		return user, false
	}

	return user, true
}

// SendMessage 处理对话请求，同步返回完整回复。
// 用户消息先落库，模型调用失败时该条记录保留，由客户端对账。
func (c *ChatController) SendMessage(ctx *gin.Context) {
	user, ok := requirePremium(ctx)
	if !ok {
		return
	}

	// 消息通过查询参数传入，兼容JSON请求体
	message := ctx.Query("message")
	if message == "" {
		var body struct {
			Message string `json:"message"`
		}
		if err := ctx.ShouldBindJSON(&body); err == nil {
			message = body.Message
		}
	}
	if message == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "缺少消息内容"})
		return
	}

	userMessage := models.ChatMessage{
		ID:        utils.GenerateID(),
		UserID:    user.ID,
		Role:      models.RoleUser,
		Content:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := config.DB.Create(&userMessage).Error; err != nil {
		config.Logger.Errorw("保存用户消息失败", "error", err, "uid", user.ID)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "保存消息失败"})
		return
	}

	reply, err := c.chatService.Reply(ctx.Request.Context(), user.ID, message)
	if err != nil {
		config.Logger.Errorw("生成回复失败", "error", err, "uid", user.ID)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "生成回复失败"})
		return
	}

	assistantMessage := models.ChatMessage{
		ID:        utils.GenerateID(),
		UserID:    user.ID,
		Role:      models.RoleAssistant,
		Content:   reply,
		CreatedAt: time.Now().UTC(),
	}
	if err := config.DB.Create(&assistantMessage).Error; err != nil {
		// 回复已生成，落库失败只记日志，客户端仍能拿到回复
		config.Logger.Errorw("保存助手消息失败", "error", err, "uid", user.ID)
	}

	ctx.JSON(http.StatusOK, models.ChatMessageResponse{
		Message: reply,
	})
}

// GetHistory 返回按时间升序的聊天记录。
// 读取失败降级为空列表，由客户端渲染默认欢迎语。
func (c *ChatController) GetHistory(ctx *gin.Context) {
	uid := ctx.GetString("uid")
	if uid == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	var history []models.ChatMessage
	if err := config.DB.Where("user_id = ?", uid).
		Order("created_at asc").
		Find(&history).Error; err != nil {
		config.Logger.Errorw("读取聊天记录失败", "error", err, "uid", uid)
		history = nil
	}

	if history == nil {
		history = []models.ChatMessage{}
	}
	ctx.JSON(http.StatusOK, gin.H{"messages": history})
}
