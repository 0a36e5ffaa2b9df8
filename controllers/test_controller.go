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

type TestController struct{}

// GetQuestions 返回DASS-21固定题目
func (tc *TestController) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": models.DassQuestions})
}

// SubmitTest 服务端计分并保存测评结果
func (tc *TestController) SubmitTest(c *gin.Context) {
	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	var req models.SubmitTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scores := services.ScoreAnswers(req.Answers)

	result := models.TestResult{
		ID:              utils.GenerateID(),
		UserID:          uid,
		DepressionScore: scores.Depression,
		AnxietyScore:    scores.Anxiety,
		StressScore:     scores.Stress,
		TotalScore:      scores.Total,
		CreatedAt:       time.Now().UTC(),
	}
	if err := config.DB.Create(&result).Error; err != nil {
		config.Logger.Errorw("保存测评结果失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存测评结果失败"})
		return
	}

	// 刷新聊天上下文用的最近测评缓存
	services.CacheTestResult(c.Request.Context(), result)

	c.JSON(http.StatusOK, newTestResultResponse(result))
}

// GetTests 返回测评历史，按时间倒序。读取失败降级为空列表。
func (tc *TestController) GetTests(c *gin.Context) {
	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	var results []models.TestResult
	if err := config.DB.Where("user_id = ?", uid).
		Order("created_at desc").
		Find(&results).Error; err != nil {
		config.Logger.Errorw("读取测评历史失败", "error", err, "uid", uid)
		results = nil
	}

	responses := make([]models.TestResultResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, newTestResultResponse(result))
	}
	c.JSON(http.StatusOK, gin.H{"results": responses})
}

func newTestResultResponse(result models.TestResult) models.TestResultResponse {
	return models.TestResultResponse{
		ID:              result.ID,
		DepressionScore: result.DepressionScore,
		AnxietyScore:    result.AnxietyScore,
		StressScore:     result.StressScore,
		TotalScore:      result.TotalScore,
		DepressionBand:  services.ClassifyScore(models.DassDepression, result.DepressionScore),
		AnxietyBand:     services.ClassifyScore(models.DassAnxiety, result.AnxietyScore),
		StressBand:      services.ClassifyScore(models.DassStress, result.StressScore),
		CreatedAt:       result.CreatedAt,
	}
}
