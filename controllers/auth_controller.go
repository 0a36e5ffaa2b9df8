package controllers

import (
	"net/http"
	"time"

	"MindHavenGo/config"
	"MindHavenGo/models"
	"MindHavenGo/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthController 认证控制器
type AuthController struct{}

// Register 邮箱注册，新账号处于未确认状态
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":      "邮箱已被注册",
			"error_code": "email_taken",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "用户创建失败"})
		return
	}

	user := models.User{
		ID:           utils.GenerateID(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		ConfirmToken: utils.GenerateID(),
		CreatedAt:    time.Now(),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		config.Logger.Errorw("用户创建失败",
			"error", err,
			"email", req.Email,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "用户创建失败"})
		return
	}

	// TODO: 接入邮件服务后改为发送确认链接，当前仅写入日志供人工核对
	config.Logger.Infow("用户注册成功，待确认邮箱",
		"userID", user.ID,
		"confirmToken", user.ConfirmToken,
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "注册成功，请确认邮箱后登录",
		"user": models.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	})
}

// Confirm 邮箱确认
func (ac *AuthController) Confirm(c *gin.Context) {
	var req models.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("confirm_token = ? AND email_confirmed = ?", req.Token, false).
		First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "无效的确认令牌",
			"error_code": "invalid_token",
		})
		return
	}

	updates := map[string]interface{}{
		"email_confirmed": true,
		"confirm_token":   "",
	}
	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		config.Logger.Errorw("邮箱确认失败", "error", err, "userID", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "邮箱确认失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "邮箱确认成功"})
}

// Login 邮箱登录。错误码对客户端可区分：
// invalid_credentials / email_not_confirmed，限流由路由上的中间件返回 rate_limited。
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			config.Logger.Errorw("查询用户失败", "error", err, "email", req.Email)
		}
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":      "邮箱或密码错误",
			"error_code": "invalid_credentials",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":      "邮箱或密码错误",
			"error_code": "invalid_credentials",
		})
		return
	}

	if !user.EmailConfirmed {
		c.JSON(http.StatusForbidden, gin.H{
			"error":      "邮箱未确认，请先完成邮箱确认",
			"error_code": "email_not_confirmed",
		})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&user).Update("last_login", &now).Error; err != nil {
		config.Logger.Errorw("更新登录时间失败", "error", err, "userID", user.ID)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "令牌生成失败"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		AccessToken: token,
		User: models.UserResponse{
			ID:             user.ID,
			Username:       user.GetDisplayName(),
			Email:          user.Email,
			IsPremium:      user.IsPremium,
			EmailConfirmed: user.EmailConfirmed,
		},
	})
}

// CreateTestUser 创建测试用户，已确认邮箱并带会员权限
func (ac *AuthController) CreateTestUser(c *gin.Context) {
	testUser := models.User{
		ID:             utils.GenerateID(),
		Username:       "test_user_1",
		Email:          utils.GenerateID() + "@example.com",
		EmailConfirmed: true,
		IsPremium:      true,
		IsTestUser:     true,
		CreatedAt:      time.Now(),
	}

	if err := config.DB.Create(&testUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建测试用户失败"})
		return
	}

	// 生成 JWT
	token, err := utils.GenerateToken(testUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "令牌生成失败"})
		return
	}

	config.Logger.Infow("创建测试用户",
		"userID", testUser.ID,
		"username", testUser.Username,
	)

	c.JSON(http.StatusOK, models.AuthResponse{
		AccessToken: token,
		User: models.UserResponse{
			ID:             testUser.ID,
			Username:       testUser.Username,
			Email:          testUser.Email,
			IsPremium:      testUser.IsPremium,
			EmailConfirmed: testUser.EmailConfirmed,
		},
	})
}
