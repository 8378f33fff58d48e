package checkin

import (
	"github.com/raksitnongbua/office-bot/internal/core/domain"
	"github.com/raksitnongbua/office-bot/internal/repository/roomdef"
)

// RoomFile loads the room map from a file on every run.
type RoomFile string

func (f RoomFile) LoadRoomMap() (*domain.RoomMap, error) {
	return roomdef.Load(string(f))
}
