package repository

import (
	"errors"

	"poker_web/internal/models"
)

// ErrNotFound 表示指定的房間不存在或已過期
var ErrNotFound = errors.New("room not found")

// RoomRepository 定義房間的鍵值存取介面
// Get 不做任何參與者清理；Create 無條件覆寫既有記錄；
// Save 刷新最後活動時間，且每次寫入都重設保留期限
type RoomRepository interface {
	Get(roomID string) (*models.Room, error)
	Create(roomID string) (*models.Room, error)
	Save(room *models.Room) error
}

type Repositories struct {
	Room RoomRepository
}

func NewRepositories(room RoomRepository) *Repositories {
	return &Repositories{Room: room}
}

// newRoom 建立一個空房間，兩個時間戳都設為現在
func newRoom(roomID string, now int64) *models.Room {
	return &models.Room{
		ID:           roomID,
		Participants: []models.Participant{},
		Revealed:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
