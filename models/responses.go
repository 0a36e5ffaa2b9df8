package models

import "time"

// UserResponse 用户响应结构体
type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	IsPremium      bool   `json:"is_premium"`
	EmailConfirmed bool   `json:"email_confirmed"`
}

// AuthResponse 认证响应结构体，令牌以 Bearer 方式携带
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// ChatMessageResponse 聊天回复响应结构体
type ChatMessageResponse struct {
	Message string `json:"message"`
}

// RescoreResponse AI情绪识别响应结构体
type RescoreResponse struct {
	EmotionType string  `json:"emotion_type"`
	Confidence  float64 `json:"confidence"`
}

// TestResultResponse 测评结果响应结构体，含各分量表的分级
type TestResultResponse struct {
	ID              string    `json:"id"`
	DepressionScore int       `json:"depression_score"`
	AnxietyScore    int       `json:"anxiety_score"`
	StressScore     int       `json:"stress_score"`
	TotalScore      int       `json:"total_score"`
	DepressionBand  string    `json:"depression_band"`
	AnxietyBand     string    `json:"anxiety_band"`
	StressBand      string    `json:"stress_band"`
	CreatedAt       time.Time `json:"created_at"`
}

// MoodResponse 情绪记录响应结构体
type MoodResponse struct {
	ID                   string    `json:"id"`
	SelectedEmotion      string    `json:"selected_emotion"`
	CalculatedEmotion    *string   `json:"calculated_emotion"`
	CalculatedConfidence *float64  `json:"calculated_confidence"`
	Note                 *string   `json:"note"`
	CreatedAt            time.Time `json:"created_at"`
}

// NewMoodResponse 从模型构建响应
func NewMoodResponse(m Mood) MoodResponse {
	return MoodResponse{
		ID:                   m.ID,
		SelectedEmotion:      m.SelectedEmotion,
		CalculatedEmotion:    m.CalculatedEmotion,
		CalculatedConfidence: m.CalculatedConfidence,
		Note:                 m.Note,
		CreatedAt:            m.CreatedAt,
	}
}
