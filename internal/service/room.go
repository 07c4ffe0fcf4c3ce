package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"poker_web/internal/models"
	"poker_web/internal/repository"
)

// ErrRoomNotFound 表示操作目標的房間不存在
var ErrRoomNotFound = errors.New("房間不存在")

// RoomService 包含所有參與者列表的變更邏輯與閒置清理
type RoomService struct {
	roomRepo   repository.RoomRepository
	clock      clockwork.Clock
	inactivity time.Duration
}

func NewRoomService(roomRepo repository.RoomRepository, clock clockwork.Clock, inactivity time.Duration) *RoomService {
	return &RoomService{
		roomRepo:   roomRepo,
		clock:      clock,
		inactivity: inactivity,
	}
}

// CreateRoom 產生一個新的房間編號並建立空房間
func (s *RoomService) CreateRoom() (*models.Room, error) {
	return s.roomRepo.Create(uuid.NewString())
}

// Fetch 讀取房間並順帶清除閒置的參與者
// 只有在名單確實縮短時才寫回，因此重複讀取不會反覆寫入
func (s *RoomService) Fetch(roomID string) (*models.Room, error) {
	room, err := s.roomRepo.Get(roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	active := s.activeParticipants(room)
	if len(active) < len(room.Participants) {
		room.Participants = active
		if err := s.roomRepo.Save(room); err != nil {
			return nil, err
		}
	}
	return room, nil
}

// Join 將參與者加入房間，房間不存在時自動建立
// 相同編號重複加入會以全新狀態取代原條目，不保留先前的投票
func (s *RoomService) Join(roomID, participantID, name string) (*models.Room, error) {
	room, err := s.Fetch(roomID)
	if errors.Is(err, ErrRoomNotFound) {
		room, err = s.roomRepo.Create(roomID)
	}
	if err != nil {
		return nil, err
	}

	participant := models.NewParticipant(participantID, name, s.clock.Now().UnixMilli())
	replaced := false
	for i, p := range room.Participants {
		if p.ID == participantID {
			room.Participants[i] = participant
			replaced = true
			break
		}
	}
	if !replaced {
		room.Participants = append(room.Participants, participant)
	}

	if err := s.roomRepo.Save(room); err != nil {
		return nil, err
	}
	return room, nil
}

// Vote 記錄指定參與者的估點
// 房間內沒有對應的參與者時不改動名單，照常保存
func (s *RoomService) Vote(roomID, participantID, value string) (*models.Room, error) {
	room, err := s.Fetch(roomID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UnixMilli()
	for i := range room.Participants {
		if room.Participants[i].ID == participantID {
			room.Participants[i].Vote = &value
			room.Participants[i].Voted = true
			room.Participants[i].LastSeen = now
		}
	}

	if err := s.roomRepo.Save(room); err != nil {
		return nil, err
	}
	return room, nil
}

// Reveal 切換開牌狀態，再次呼叫會重新蓋牌
func (s *RoomService) Reveal(roomID string) (*models.Room, error) {
	room, err := s.Fetch(roomID)
	if err != nil {
		return nil, err
	}

	room.Revealed = !room.Revealed

	if err := s.roomRepo.Save(room); err != nil {
		return nil, err
	}
	return room, nil
}

// Reset 清空所有投票並蓋牌，開始下一輪估點
func (s *RoomService) Reset(roomID string) (*models.Room, error) {
	room, err := s.Fetch(roomID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UnixMilli()
	for i := range room.Participants {
		room.Participants[i].Vote = nil
		room.Participants[i].Voted = false
		room.Participants[i].LastSeen = now
	}
	room.Revealed = false

	if err := s.roomRepo.Save(room); err != nil {
		return nil, err
	}
	return room, nil
}

// Heartbeat 刷新指定參與者的最後活動時間
// 房間不存在時靜默忽略，沒有對應的參與者時名單不變
func (s *RoomService) Heartbeat(roomID, participantID string) error {
	room, err := s.roomRepo.Get(roomID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	now := s.clock.Now().UnixMilli()
	for i := range room.Participants {
		if room.Participants[i].ID == participantID {
			room.Participants[i].LastSeen = now
		}
	}
	return s.roomRepo.Save(room)
}

// activeParticipants 回傳最後活動時間仍在閒置門檻內的參與者
func (s *RoomService) activeParticipants(room *models.Room) []models.Participant {
	cutoff := s.clock.Now().UnixMilli() - s.inactivity.Milliseconds()
	active := make([]models.Participant, 0, len(room.Participants))
	for _, p := range room.Participants {
		if p.LastSeen >= cutoff {
			active = append(active, p)
		}
	}
	return active
}
