package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"MindHavenGo/config"
	"MindHavenGo/models"
	"MindHavenGo/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB 用内存SQLite替换全局连接，Redis置空走降级分支
func setupTestDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.MigrateDB(db))

	config.DB = db
	config.Logger = zap.NewNop().Sugar()
	config.RedisClient = nil
}

func createUser(t *testing.T, premium bool) models.User {
	t.Helper()
	user := models.User{
		ID:             utils.GenerateID(),
		Username:       "tester",
		Email:          utils.GenerateID() + "@example.com",
		EmailConfirmed: true,
		IsPremium:      premium,
		CreatedAt:      time.Now(),
	}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

// authedRouter 返回注入了uid的测试路由，绕过JWT中间件
func authedRouter(uid string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("uid", uid)
		c.Next()
	})
	return r
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
