package models

import (
	"fmt"
	"time"
)

// RegisterRequest 注册请求结构体
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username"`
}

// LoginRequest 登录请求结构体
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ConfirmRequest 邮箱确认请求结构体
type ConfirmRequest struct {
	Token string `json:"token" binding:"required"`
}

// CreateMoodRequest 情绪记录创建请求结构体
type CreateMoodRequest struct {
	SelectedEmotion string  `json:"selected_emotion"`
	Note            *string `json:"note"`
}

// SubmitTestRequest DASS-21 提交请求结构体，键为题目下标0-20，值为0-3。
// 允许部分作答甚至全部跳过，空答案得到全零结果。
type SubmitTestRequest struct {
	Answers map[int]int `json:"answers"`
}

// Validate 校验答案的下标和取值范围，允许部分作答
func (r *SubmitTestRequest) Validate() error {
	for idx, v := range r.Answers {
		if idx < 0 || idx >= len(DassQuestions) {
			return fmt.Errorf("无效的题目下标: %d", idx)
		}
		if v < 0 || v > 3 {
			return fmt.Errorf("无效的答案取值: %d", v)
		}
	}
	return nil
}

// UpsertDailyMoodRequest 每日心情打分请求结构体
type UpsertDailyMoodRequest struct {
	Date      string `json:"date"` // YYYY-MM-DD，缺省为今天（UTC）
	MoodScore int    `json:"mood_score" binding:"required,min=1,max=10"`
}

// Validate 校验日期格式，缺省时填充当天
func (r *UpsertDailyMoodRequest) Validate() error {
	if r.Date == "" {
		r.Date = time.Now().UTC().Format("2006-01-02")
		return nil
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return fmt.Errorf("无效的日期格式，应为 YYYY-MM-DD")
	}
	return nil
}

// HistoryQuery 聚合查询参数
type HistoryQuery struct {
	Bucket string
	Start  time.Time
	End    time.Time
}

// ParseHistoryQuery 解析聚合查询参数，时间缺省为最近一周
func ParseHistoryQuery(bucket, startStr, endStr string) (HistoryQuery, error) {
	q := HistoryQuery{Bucket: bucket}
	if q.Bucket == "" {
		q.Bucket = "day"
	}
	switch q.Bucket {
	case "day", "week", "month", "year":
	default:
		return q, fmt.Errorf("invalid bucket, must be one of: day, week, month, year")
	}

	now := time.Now().UTC()
	q.Start = now.AddDate(0, 0, -7)
	q.End = now

	var err error
	if startStr != "" {
		if q.Start, err = time.Parse(time.RFC3339, startStr); err != nil {
			return q, fmt.Errorf("无效的开始时间格式")
		}
	}
	if endStr != "" {
		if q.End, err = time.Parse(time.RFC3339, endStr); err != nil {
			return q, fmt.Errorf("无效的结束时间格式")
		}
	}
	if q.Start.After(q.End) {
		return q, fmt.Errorf("start date must be before end date")
	}
	return q, nil
}
