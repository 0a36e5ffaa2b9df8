package controllers

import (
	"net/http"
	"strconv"

	"MindHavenGo/config"
	"MindHavenGo/models"
	"MindHavenGo/services"
	"MindHavenGo/utils"

	"github.com/gin-gonic/gin"
)

type MoodController struct {
	rescoreService *services.RescoreService
}

func NewMoodController(rescoreService *services.RescoreService) *MoodController {
	return &MoodController{
		rescoreService: rescoreService,
	}
}

// CreateMood 创建情绪记录。先本地校验，未选择情绪时不发起任何外部调用；
// 附带备注时尝试AI识别，识别失败不影响落库，推断字段保持为空。
func (mc *MoodController) CreateMood(ctx *gin.Context) {
	uid := ctx.GetString("uid")
	if uid == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	var req models.CreateMoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mood, err := models.BuildMood(uid, req.SelectedEmotion, req.Note)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":      err.Error(),
			"error_code": "missing_selection",
		})
		return
	}
	mood.ID = utils.GenerateID()

	if req.Note != nil && *req.Note != "" {
		emotion, confidence, err := mc.rescoreService.Classify(ctx.Request.Context(), *req.Note)
		if err != nil {
			config.Logger.Errorw("情绪识别失败，保留原始记录", "error", err, "uid", uid)
		} else {
			mood.SetCalculated(emotion, confidence)
		}
	}

	if err := config.DB.Create(mood).Error; err != nil {
		config.Logger.Errorw("保存情绪记录失败", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "保存情绪记录失败"})
		return
	}

	ctx.JSON(http.StatusOK, models.NewMoodResponse(*mood))
}

// Rescore 对一段文本做情绪识别并落库（原始接口形态：查询参数 + Bearer认证）
func (mc *MoodController) Rescore(ctx *gin.Context) {
	user, ok := requirePremium(ctx)
	if !ok {
		return
	}

	message := ctx.Query("message")
	emotionParam := ctx.Query("emotion")
	if message == "" || emotionParam == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "缺少 message 或 emotion 参数"})
		return
	}

	selected, known := models.ParseEmotion(emotionParam)
	if !known {
		config.Logger.Warnw("收到九类之外的情绪标签", "label", emotionParam, "uid", user.ID)
	}

	emotion, confidence, err := mc.rescoreService.Classify(ctx.Request.Context(), message)
	if err != nil {
		config.Logger.Errorw("情绪识别失败", "error", err, "uid", user.ID)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "情绪识别失败"})
		return
	}

	mood, buildErr := models.BuildMood(user.ID, string(selected), &message)
	if buildErr != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": buildErr.Error()})
		return
	}
	mood.ID = utils.GenerateID()
	mood.SetCalculated(emotion, confidence)

	if err := config.DB.Create(mood).Error; err != nil {
		config.Logger.Errorw("保存情绪记录失败", "error", err, "uid", user.ID)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "保存情绪记录失败"})
		return
	}

	ctx.JSON(http.StatusOK, models.RescoreResponse{
		EmotionType: emotion,
		Confidence:  confidence,
	})
}

// ListMoods 按时间倒序返回情绪记录（日志历史视图）。
// 读取失败降级为空列表。
func (mc *MoodController) ListMoods(ctx *gin.Context) {
	uid := ctx.GetString("uid")
	if uid == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	limit := 50
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	var moods []models.Mood
	if err := config.DB.Where("user_id = ?", uid).
		Order("created_at desc").
		Limit(limit).
		Find(&moods).Error; err != nil {
		config.Logger.Errorw("读取情绪记录失败", "error", err, "uid", uid)
		moods = nil
	}

	responses := make([]models.MoodResponse, 0, len(moods))
	for _, mood := range moods {
		responses = append(responses, models.NewMoodResponse(mood))
	}
	ctx.JSON(http.StatusOK, gin.H{"moods": responses})
}

// GetHistory 按日历粒度聚合情绪强度（折线图数据）
func (mc *MoodController) GetHistory(ctx *gin.Context) {
	uid := ctx.GetString("uid")
	if uid == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	query, err := models.ParseHistoryQuery(
		ctx.Query("bucket"),
		ctx.Query("start"),
		ctx.Query("end"),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	moods := mc.loadRange(ctx, uid, query)
	buckets := services.AggregateMoods(moods, query.Bucket, query.Start, query.End)
	ctx.JSON(http.StatusOK, gin.H{"buckets": buckets})
}

// GetDistribution 统计范围内各情绪的出现次数（环形图数据）
func (mc *MoodController) GetDistribution(ctx *gin.Context) {
	uid := ctx.GetString("uid")
	if uid == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	query, err := models.ParseHistoryQuery(
		"day",
		ctx.Query("start"),
		ctx.Query("end"),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	moods := mc.loadRange(ctx, uid, query)
	counts := services.CountEmotions(moods, query.Start, query.End)
	ctx.JSON(http.StatusOK, gin.H{"distribution": counts})
}

// loadRange 查询范围内的情绪记录，失败时降级为空集
func (mc *MoodController) loadRange(ctx *gin.Context, uid string, query models.HistoryQuery) []models.Mood {
	var moods []models.Mood
	if err := config.DB.Where("user_id = ? AND created_at BETWEEN ? AND ?",
		uid, query.Start, query.End).Find(&moods).Error; err != nil {
		config.Logger.Errorw("读取情绪记录失败", "error", err, "uid", uid)
		return nil
	}
	return moods
}
