package models

import "time"

// RoomRecord 是房間在資料庫中的持久化形式
// Data 保存完整的房間 JSON，超過 ExpiresAt 的記錄視同不存在
type RoomRecord struct {
	RoomID    string    `gorm:"primaryKey;type:varchar(64)"`
	Data      []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
}
