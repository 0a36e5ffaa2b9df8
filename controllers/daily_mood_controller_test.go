package controllers

import (
	"net/http"
	"testing"

	"MindHavenGo/config"
	"MindHavenGo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyMoodUpsertSameDayUpdatesInPlace(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, false)

	dc := DailyMoodController{}
	r := authedRouter(user.ID)
	r.PUT("/daily-mood", dc.Upsert)

	w := performJSON(t, r, http.MethodPut, "/daily-mood", models.UpsertDailyMoodRequest{
		Date:      "2025-03-10",
		MoodScore: 4,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// 同一天重复提交为更新而不是追加
	w = performJSON(t, r, http.MethodPut, "/daily-mood", models.UpsertDailyMoodRequest{
		Date:      "2025-03-10",
		MoodScore: 8,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var records []models.DailyMood
	require.NoError(t, config.DB.Where("user_id = ?", user.ID).Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, 8, records[0].MoodScore)
	assert.Equal(t, "2025-03-10", records[0].Date)

	// 不同日期各自一条
	w = performJSON(t, r, http.MethodPut, "/daily-mood", models.UpsertDailyMoodRequest{
		Date:      "2025-03-11",
		MoodScore: 6,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, config.DB.Where("user_id = ?", user.ID).Find(&records).Error)
	assert.Len(t, records, 2)
}

func TestDailyMoodUpsertValidation(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, false)

	dc := DailyMoodController{}
	r := authedRouter(user.ID)
	r.PUT("/daily-mood", dc.Upsert)

	w := performJSON(t, r, http.MethodPut, "/daily-mood", map[string]interface{}{
		"date":       "10.03.2025",
		"mood_score": 5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(t, r, http.MethodPut, "/daily-mood", map[string]interface{}{
		"mood_score": 11,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDailyMoodListInRange(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, false)

	dc := DailyMoodController{}
	r := authedRouter(user.ID)
	r.PUT("/daily-mood", dc.Upsert)
	r.GET("/daily-mood", dc.List)

	for _, day := range []string{"2025-03-09", "2025-03-10", "2025-03-12"} {
		w := performJSON(t, r, http.MethodPut, "/daily-mood", models.UpsertDailyMoodRequest{
			Date:      day,
			MoodScore: 5,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := performJSON(t, r, http.MethodGet, "/daily-mood?start=2025-03-10&end=2025-03-12", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		DailyMoods []models.DailyMood `json:"daily_moods"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.DailyMoods, 2)
	assert.Equal(t, "2025-03-10", resp.DailyMoods[0].Date)
	assert.Equal(t, "2025-03-12", resp.DailyMoods[1].Date)
}
