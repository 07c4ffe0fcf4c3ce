package service

import (
	"time"

	"github.com/jonboulle/clockwork"

	"poker_web/internal/repository"
)

type Services struct {
	Room *RoomService
}

func NewServices(repos *repository.Repositories, clock clockwork.Clock, inactivity time.Duration) *Services {
	return &Services{
		Room: NewRoomService(repos.Room, clock, inactivity),
	}
}
