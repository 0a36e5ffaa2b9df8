package models

import "time"

// DailyMood 每日心情打分，(user_id, date) 每天至多一条，
// 当天重复提交为原地更新而不是追加
type DailyMood struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID       string    `gorm:"type:varchar(50);index:idx_daily_user_date,unique" json:"user_id"`
	Date         string    `gorm:"type:varchar(10);index:idx_daily_user_date,unique" json:"date"` // YYYY-MM-DD
	MoodScore    int       `json:"mood_score"` // 1-10
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"lastModified"`
}
