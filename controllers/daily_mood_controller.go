package controllers

import (
	"net/http"
	"time"

	"MindHavenGo/config"
	"MindHavenGo/models"
	"MindHavenGo/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DailyMoodController struct{}

// Upsert 每日心情打分，同一天重复提交为更新。
// 两个会话并发写同一天时由 (user_id, date) 唯一索引兜底。
func (dc *DailyMoodController) Upsert(c *gin.Context) {
	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	var req models.UpsertDailyMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.DailyMood
	err := config.DB.Where("user_id = ? AND date = ?", uid, req.Date).First(&existing).Error
	if err == nil {
		updates := map[string]interface{}{
			"mood_score":    req.MoodScore,
			"last_modified": time.Now().UTC(),
		}
		if err := config.DB.Model(&existing).Updates(updates).Error; err != nil {
			config.Logger.Errorw("更新每日心情失败", "error", err, "uid", uid, "date", req.Date)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "保存每日心情失败"})
			return
		}
		existing.MoodScore = req.MoodScore
		c.JSON(http.StatusOK, existing)
		return
	}
	if err != gorm.ErrRecordNotFound {
		config.Logger.Errorw("查询每日心情失败", "error", err, "uid", uid, "date", req.Date)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存每日心情失败"})
		return
	}

	record := models.DailyMood{
		ID:           utils.GenerateID(),
		UserID:       uid,
		Date:         req.Date,
		MoodScore:    req.MoodScore,
		CreatedAt:    time.Now().UTC(),
		LastModified: time.Now().UTC(),
	}
	if err := config.DB.Create(&record).Error; err != nil {
		config.Logger.Errorw("保存每日心情失败", "error", err, "uid", uid, "date", req.Date)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存每日心情失败"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// List 返回日期范围内的每日心情，按日期升序。
// 读取失败降级为空列表。
func (dc *DailyMoodController) List(c *gin.Context) {
	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	query := config.DB.Where("user_id = ?", uid)
	if start := c.Query("start"); start != "" {
		if _, err := time.Parse("2006-01-02", start); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的开始日期格式"})
			return
		}
		query = query.Where("date >= ?", start)
	}
	if end := c.Query("end"); end != "" {
		if _, err := time.Parse("2006-01-02", end); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的结束日期格式"})
			return
		}
		query = query.Where("date <= ?", end)
	}

	var records []models.DailyMood
	if err := query.Order("date asc").Find(&records).Error; err != nil {
		config.Logger.Errorw("读取每日心情失败", "error", err, "uid", uid)
		records = nil
	}

	if records == nil {
		records = []models.DailyMood{}
	}
	c.JSON(http.StatusOK, gin.H{"daily_moods": records})
}
