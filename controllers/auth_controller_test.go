package controllers

import (
	"net/http"
	"testing"

	"MindHavenGo/config"
	"MindHavenGo/models"
	"MindHavenGo/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterConfirmLoginFlow(t *testing.T) {
	setupTestDB(t)

	ac := AuthController{}
	r := authedRouter("")
	r.POST("/auth/register", ac.Register)
	r.POST("/auth/confirm", ac.Confirm)
	r.POST("/auth/login", ac.Login)

	w := performJSON(t, r, http.MethodPost, "/auth/register", models.RegisterRequest{
		Email:    "user@example.com",
		Password: "correct horse",
		Username: "user",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, config.DB.Where("email = ?", "user@example.com").First(&user).Error)
	assert.False(t, user.EmailConfirmed)
	require.NotEmpty(t, user.ConfirmToken)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	// 未确认邮箱前登录被拒，错误码可区分
	w = performJSON(t, r, http.MethodPost, "/auth/login", models.LoginRequest{
		Email:    "user@example.com",
		Password: "correct horse",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	var errResp map[string]string
	decodeBody(t, w, &errResp)
	assert.Equal(t, "email_not_confirmed", errResp["error_code"])

	w = performJSON(t, r, http.MethodPost, "/auth/confirm", models.ConfirmRequest{Token: user.ConfirmToken})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, r, http.MethodPost, "/auth/login", models.LoginRequest{
		Email:    "user@example.com",
		Password: "correct horse",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var authResp models.AuthResponse
	decodeBody(t, w, &authResp)
	require.NotEmpty(t, authResp.AccessToken)

	claims, err := utils.ParseToken(authResp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	setupTestDB(t)

	ac := AuthController{}
	r := authedRouter("")
	r.POST("/auth/register", ac.Register)
	r.POST("/auth/login", ac.Login)

	w := performJSON(t, r, http.MethodPost, "/auth/register", models.RegisterRequest{
		Email:    "user@example.com",
		Password: "correct horse",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, r, http.MethodPost, "/auth/login", models.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong horse",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	var errResp map[string]string
	decodeBody(t, w, &errResp)
	assert.Equal(t, "invalid_credentials", errResp["error_code"])

	// 不存在的邮箱返回同一错误码，不泄露账号是否存在
	w = performJSON(t, r, http.MethodPost, "/auth/login", models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	decodeBody(t, w, &errResp)
	assert.Equal(t, "invalid_credentials", errResp["error_code"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB(t)

	ac := AuthController{}
	r := authedRouter("")
	r.POST("/auth/register", ac.Register)

	req := models.RegisterRequest{Email: "dup@example.com", Password: "password1"}
	w := performJSON(t, r, http.MethodPost, "/auth/register", req)
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, r, http.MethodPost, "/auth/register", req)
	require.Equal(t, http.StatusConflict, w.Code)
	var errResp map[string]string
	decodeBody(t, w, &errResp)
	assert.Equal(t, "email_taken", errResp["error_code"])
}
