package repository

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"poker_web/internal/models"
)

type memoryEntry struct {
	data      json.RawMessage
	expiresAt time.Time
}

// memoryRoomRepository 是開發與測試用的記憶體後端
// 與持久化後端語意一致：以序列化後的 JSON 保存（值語意），
// 讀取時檢查到期，每次寫入重設保留期限
type memoryRoomRepository struct {
	mu        sync.RWMutex
	entries   map[string]memoryEntry
	clock     clockwork.Clock
	retention time.Duration
}

func NewMemoryRoomRepository(clock clockwork.Clock, retention time.Duration) RoomRepository {
	return &memoryRoomRepository{
		entries:   make(map[string]memoryEntry),
		clock:     clock,
		retention: retention,
	}
}

func (r *memoryRoomRepository) Get(roomID string) (*models.Room, error) {
	r.mu.RLock()
	entry, ok := r.entries[roomID]
	r.mu.RUnlock()

	// 過期的記錄視同不存在，交由下一次寫入覆寫
	if !ok || !r.clock.Now().Before(entry.expiresAt) {
		return nil, ErrNotFound
	}

	var room models.Room
	if err := json.Unmarshal(entry.data, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *memoryRoomRepository) Create(roomID string) (*models.Room, error) {
	room := newRoom(roomID, r.clock.Now().UnixMilli())
	if err := r.put(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (r *memoryRoomRepository) Save(room *models.Room) error {
	room.UpdatedAt = r.clock.Now().UnixMilli()
	return r.put(room)
}

func (r *memoryRoomRepository) put(room *models.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[room.ID] = memoryEntry{
		data:      data,
		expiresAt: r.clock.Now().Add(r.retention),
	}
	return nil
}
