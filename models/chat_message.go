package models

import "time"

// 聊天消息角色
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage 聊天消息模型，按用户追加写入，不做修改和删除
type ChatMessage struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(50);index:idx_chat_user_created" json:"user_id"`
	Role      string    `gorm:"type:varchar(20)" json:"role"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"index:idx_chat_user_created" json:"created_at"`
}
