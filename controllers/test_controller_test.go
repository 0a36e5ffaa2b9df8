package controllers

import (
	"net/http"
	"strconv"
	"testing"

	"MindHavenGo/config"
	"MindHavenGo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitTestScoresAndPersists(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, false)

	tc := TestController{}
	r := authedRouter(user.ID)
	r.POST("/tests", tc.SubmitTest)
	r.GET("/tests", tc.GetTests)

	// 抑郁题全部3分，其余0分
	answers := map[string]int{}
	for i := 0; i < 21; i++ {
		answers[strconv.Itoa(i)] = 0
	}
	for _, idx := range []int{2, 4, 9, 12, 15, 16, 20} {
		answers[strconv.Itoa(idx)] = 3
	}

	w := performJSON(t, r, http.MethodPost, "/tests", map[string]interface{}{"answers": answers})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.TestResultResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, 21, resp.DepressionScore)
	assert.Equal(t, 0, resp.AnxietyScore)
	assert.Equal(t, 0, resp.StressScore)
	assert.Equal(t, 21, resp.TotalScore)
	assert.Equal(t, "Extremely Severe", resp.DepressionBand)
	assert.Equal(t, "Normal", resp.AnxietyBand)
	assert.Equal(t, "Normal", resp.StressBand)

	var count int64
	require.NoError(t, config.DB.Model(&models.TestResult{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// 历史按时间倒序
	w = performJSON(t, r, http.MethodGet, "/tests", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Results []models.TestResultResponse `json:"results"`
	}
	decodeBody(t, w, &listResp)
	require.Len(t, listResp.Results, 1)
	assert.Equal(t, resp.ID, listResp.Results[0].ID)
}

func TestSubmitTestRejectsInvalidAnswers(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, false)

	tc := TestController{}
	r := authedRouter(user.ID)
	r.POST("/tests", tc.SubmitTest)

	w := performJSON(t, r, http.MethodPost, "/tests", map[string]interface{}{
		"answers": map[string]int{"0": 5},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(t, r, http.MethodPost, "/tests", map[string]interface{}{
		"answers": map[string]int{"25": 1},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, config.DB.Model(&models.TestResult{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGetTestsEmptyHistory(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, false)

	tc := TestController{}
	r := authedRouter(user.ID)
	r.GET("/tests", tc.GetTests)

	w := performJSON(t, r, http.MethodGet, "/tests", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Results []models.TestResultResponse `json:"results"`
	}
	decodeBody(t, w, &listResp)
	assert.Empty(t, listResp.Results)
}
