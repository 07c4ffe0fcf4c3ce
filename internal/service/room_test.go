package service

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"poker_web/internal/repository"
)

const (
	testInactivity = 5 * time.Minute
	testRetention  = 24 * time.Hour
)

func newTestService() (*RoomService, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClock()
	repo := repository.NewMemoryRoomRepository(clock, testRetention)
	return NewRoomService(repo, clock, testInactivity), clock
}

func TestJoinCreatesRoom(t *testing.T) {
	svc, _ := newTestService()

	room, err := svc.Join("r2", "p1", "Alice")
	require.NoError(t, err)
	require.Equal(t, "r2", room.ID)
	require.Len(t, room.Participants, 1)
	require.Equal(t, "p1", room.Participants[0].ID)
	require.Equal(t, "Alice", room.Participants[0].Name)
	require.Nil(t, room.Participants[0].Vote)
	require.False(t, room.Participants[0].Voted)
	require.False(t, room.Revealed)
}

func TestVoteRevealResetScenario(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Join("r1", "p1", "Alice")
	require.NoError(t, err)
	_, err = svc.Join("r1", "p2", "Bob")
	require.NoError(t, err)

	_, err = svc.Vote("r1", "p1", "5")
	require.NoError(t, err)
	_, err = svc.Vote("r1", "p2", "8")
	require.NoError(t, err)

	room, err := svc.Fetch("r1")
	require.NoError(t, err)
	require.Len(t, room.Participants, 2)
	require.True(t, room.Participants[0].Voted)
	require.True(t, room.Participants[1].Voted)
	require.False(t, room.Revealed)

	room, err = svc.Reveal("r1")
	require.NoError(t, err)
	require.True(t, room.Revealed)
	require.Equal(t, "5", *room.Participants[0].Vote)
	require.Equal(t, "8", *room.Participants[1].Vote)

	room, err = svc.Reset("r1")
	require.NoError(t, err)
	require.False(t, room.Revealed)
	for _, p := range room.Participants {
		require.Nil(t, p.Vote)
		require.False(t, p.Voted)
	}
}

func TestRevealIsAToggle(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Join("r1", "p1", "Alice")
	require.NoError(t, err)

	room, err := svc.Reveal("r1")
	require.NoError(t, err)
	require.True(t, room.Revealed)

	// 再開牌一次會重新蓋牌
	room, err = svc.Reveal("r1")
	require.NoError(t, err)
	require.False(t, room.Revealed)
}

func TestVoteUnknownRoom(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Vote("missing", "p1", "5")
	require.ErrorIs(t, err, ErrRoomNotFound)

	// 投票不會順帶建立房間
	_, err = svc.Fetch("missing")
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestVoteUnknownParticipantIsNoOp(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Join("r1", "p1", "Alice")
	require.NoError(t, err)

	room, err := svc.Vote("r1", "ghost", "13")
	require.NoError(t, err)
	require.Len(t, room.Participants, 1)
	require.Equal(t, "p1", room.Participants[0].ID)
	require.False(t, room.Participants[0].Voted)
}

func TestRejoinDiscardsVote(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Join("r1", "p1", "Alice")
	require.NoError(t, err)
	_, err = svc.Vote("r1", "p1", "5")
	require.NoError(t, err)

	room, err := svc.Join("r1", "p1", "Alicia")
	require.NoError(t, err)
	require.Len(t, room.Participants, 1)
	require.Equal(t, "Alicia", room.Participants[0].Name)
	require.Nil(t, room.Participants[0].Vote)
	require.False(t, room.Participants[0].Voted)
}

func TestFetchPrunesIdleParticipants(t *testing.T) {
	svc, clock := newTestService()

	_, err := svc.Join("r1", "p1", "Alice")
	require.NoError(t, err)
	_, err = svc.Join("r1", "p3", "Carol")
	require.NoError(t, err)

	// p1 持續送心跳，p3 閒置超過門檻
	clock.Advance(4 * time.Minute)
	require.NoError(t, svc.Heartbeat("r1", "p1"))

	clock.Advance(2 * time.Minute)
	room, err := svc.Fetch("r1")
	require.NoError(t, err)
	require.Len(t, room.Participants, 1)
	require.Equal(t, "p1", room.Participants[0].ID)

	// 清理結果已被寫回
	room, err = svc.Fetch("r1")
	require.NoError(t, err)
	require.Len(t, room.Participants, 1)
}

func TestFetchPruneIsIdempotent(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Join("r1", "p1", "Alice")
	require.NoError(t, err)
	_, err = svc.Join("r1", "p2", "Bob")
	require.NoError(t, err)

	first, err := svc.Fetch("r1")
	require.NoError(t, err)
	second, err := svc.Fetch("r1")
	require.NoError(t, err)
	require.Equal(t, first.Participants, second.Participants)
}

func TestHeartbeatUnknownRoomIsSilent(t *testing.T) {
	svc, _ := newTestService()

	require.NoError(t, svc.Heartbeat("missing", "p1"))

	// 心跳不會建立房間
	_, err := svc.Fetch("missing")
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCreateRoomMintsID(t *testing.T) {
	svc, _ := newTestService()

	room, err := svc.CreateRoom()
	require.NoError(t, err)
	require.NotEmpty(t, room.ID)
	require.Empty(t, room.Participants)
	require.False(t, room.Revealed)

	fetched, err := svc.Fetch(room.ID)
	require.NoError(t, err)
	require.Equal(t, room.ID, fetched.ID)
}
