package models

import (
	"errors"
	"time"
)

// ErrMissingSelection 未选择情绪时的校验错误
var ErrMissingSelection = errors.New("未选择情绪")

// Mood 情绪记录模型
type Mood struct {
	ID                   string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID               string    `gorm:"type:varchar(50);index:idx_moods_user_created" json:"user_id"`
	SelectedEmotion      string    `gorm:"type:varchar(50)" json:"selected_emotion"`
	CalculatedEmotion    *string   `gorm:"type:varchar(50)" json:"calculated_emotion"`
	CalculatedConfidence *float64  `json:"calculated_confidence"`
	Note                 *string   `gorm:"type:text" json:"note"`
	CreatedAt            time.Time `gorm:"index:idx_moods_user_created" json:"created_at"`
}

// BuildMood 校验并构建一条情绪记录。备注可为空，原样保存；
// 九类之外的情绪不拒绝，强度计算时走统一回退。
// AI 推断字段在外部分类成功后才填充，失败时保持为空。
func BuildMood(userID, selected string, note *string) (*Mood, error) {
	if selected == "" {
		return nil, ErrMissingSelection
	}
	emotion, _ := ParseEmotion(selected)
	return &Mood{
		UserID:          userID,
		SelectedEmotion: string(emotion),
		Note:            note,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// SetCalculated 填充AI推断结果，置信度收敛到[0,1]
func (m *Mood) SetCalculated(emotion string, confidence float64) {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	m.CalculatedEmotion = &emotion
	m.CalculatedConfidence = &confidence
}
