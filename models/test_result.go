package models

import "time"

// TestResult DASS-21 测评结果，提交后不再修改，历史按时间倒序展示
type TestResult struct {
	ID              string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID          string    `gorm:"type:varchar(50);index:idx_results_user_created" json:"user_id"`
	DepressionScore int       `json:"depression_score"`
	AnxietyScore    int       `json:"anxiety_score"`
	StressScore     int       `json:"stress_score"`
	TotalScore      int       `json:"total_score"`
	CreatedAt       time.Time `gorm:"index:idx_results_user_created" json:"created_at"`
}
