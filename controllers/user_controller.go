package controllers

import (
	"net/http"

	"MindHavenGo/config"
	"MindHavenGo/models"

	"github.com/gin-gonic/gin"
)

type UserController struct{}

// GetUser 返回当前用户资料
func (uc *UserController) GetUser(c *gin.Context) {
	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "用户未认证"})
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("数据库查询失败",
			"error", err,
			"userID", uid,
		)
		c.JSON(http.StatusNotFound, gin.H{"error": "用户未找到"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": models.UserResponse{
			ID:             user.ID,
			Username:       user.GetDisplayName(),
			Email:          user.Email,
			IsPremium:      user.IsPremium,
			EmailConfirmed: user.EmailConfirmed,
		},
	})
}

// SetPremium 内部接口：开通或关闭会员
func (uc *UserController) SetPremium(c *gin.Context) {
	// 记录内部接口调用
	config.Logger.Infow("内部接口调用：设置会员状态",
		"sourceIP", c.ClientIP(),
		"userAgent", c.Request.UserAgent(),
	)

	uid := c.Query("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 uid 参数"})
		return
	}
	premium := c.DefaultQuery("premium", "true") == "true"

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("获取用户信息失败", "error", err, "uid", uid)
		c.JSON(http.StatusNotFound, gin.H{"error": "用户未找到"})
		return
	}

	if err := config.DB.Model(&user).Update("is_premium", premium).Error; err != nil {
		config.Logger.Errorw("设置会员状态失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "设置会员状态失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "会员状态已更新",
		"isPremium": premium,
	})
}
