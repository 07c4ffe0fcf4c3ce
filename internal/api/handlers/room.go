package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"poker_web/internal/models"
	"poker_web/internal/service"
)

// 操作標籤
const (
	ActionJoin      = "join"
	ActionVote      = "vote"
	ActionReveal    = "reveal"
	ActionReset     = "reset"
	ActionHeartbeat = "heartbeat"
)

// RoomHandler 處理與估點房間相關的請求
type RoomHandler struct {
	roomService *service.RoomService
	logger      zerolog.Logger
}

// NewRoomHandler 創建一個新的 RoomHandler 實例
func NewRoomHandler(roomService *service.RoomService, logger zerolog.Logger) *RoomHandler {
	return &RoomHandler{roomService: roomService, logger: logger}
}

// CreateRoom 處理建立新房間的請求
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	room, err := h.roomService.CreateRoom()
	if err != nil {
		h.logger.Error().Err(err).Msg("建立房間失敗")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "建立房間失敗"})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// GetRoom 處理輪詢房間狀態的請求
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID := c.Param("id")

	room, err := h.roomService.Fetch(roomID)
	if errors.Is(err, service.ErrRoomNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "房間不存在"})
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("room_id", roomID).Msg("讀取房間失敗")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "讀取房間失敗"})
		return
	}

	c.JSON(http.StatusOK, room)
}

// SubmitAction 處理房間內的操作請求（加入、投票、開牌、重置、心跳）
func (h *RoomHandler) SubmitAction(c *gin.Context) {
	roomID := c.Param("id")

	var input struct {
		Action        string `json:"action" binding:"required"`
		ParticipantID string `json:"participant_id"`
		Name          string `json:"name"`
		Vote          string `json:"vote"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var room *models.Room
	var err error

	switch input.Action {
	case ActionJoin:
		if input.ParticipantID == "" || input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "缺少參與者編號或名稱"})
			return
		}
		room, err = h.roomService.Join(roomID, input.ParticipantID, input.Name)

	case ActionVote:
		if input.ParticipantID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "缺少參與者編號"})
			return
		}
		room, err = h.roomService.Vote(roomID, input.ParticipantID, input.Vote)

	case ActionReveal:
		room, err = h.roomService.Reveal(roomID)

	case ActionReset:
		room, err = h.roomService.Reset(roomID)

	case ActionHeartbeat:
		if input.ParticipantID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "缺少參與者編號"})
			return
		}
		if err := h.roomService.Heartbeat(roomID, input.ParticipantID); err != nil {
			h.logger.Error().Err(err).Str("room_id", roomID).Msg("心跳更新失敗")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "心跳更新失敗"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
		return

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的操作"})
		return
	}

	if errors.Is(err, service.ErrRoomNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "房間不存在"})
		return
	}
	if err != nil {
		h.logger.Error().Err(err).
			Str("room_id", roomID).
			Str("action", input.Action).
			Msg("操作執行失敗")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "操作執行失敗"})
		return
	}

	c.JSON(http.StatusOK, room)
}
