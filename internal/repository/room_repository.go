package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"poker_web/internal/models"
	records "poker_web/internal/repository/models"
	"poker_web/internal/storage"
)

type postgresRoomRepository struct {
	db        *storage.PostgresDB
	clock     clockwork.Clock
	retention time.Duration
}

func NewPostgresRoomRepository(db *storage.PostgresDB, clock clockwork.Clock, retention time.Duration) RoomRepository {
	return &postgresRoomRepository{db: db, clock: clock, retention: retention}
}

func (r *postgresRoomRepository) Get(roomID string) (*models.Room, error) {
	var record records.RoomRecord
	err := r.db.Where("room_id = ? AND expires_at > ?", roomID, r.clock.Now()).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var room models.Room
	if err := json.Unmarshal(record.Data, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *postgresRoomRepository) Create(roomID string) (*models.Room, error) {
	room := newRoom(roomID, r.clock.Now().UnixMilli())
	if err := r.put(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (r *postgresRoomRepository) Save(room *models.Room) error {
	room.UpdatedAt = r.clock.Now().UnixMilli()
	return r.put(room)
}

// put 以 upsert 寫入房間記錄，每次寫入都重設保留期限
// 過期的舊記錄會被同一把鍵的新記錄直接覆寫
func (r *postgresRoomRepository) put(room *models.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}

	record := records.RoomRecord{
		RoomID:    room.ID,
		Data:      data,
		ExpiresAt: r.clock.Now().Add(r.retention),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "expires_at"}),
	}).Create(&record).Error
}
