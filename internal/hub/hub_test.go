package hub

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"betroom-backend/internal/bet"
	"betroom-backend/internal/room"
)

func createRoom(t *testing.T, h *Hub) *room.Room {
	t.Helper()
	reply := make(chan CreateReply, 1)
	h.Inbox() <- CreateRoom{Reply: reply}
	res := <-reply
	if res.Err != nil {
		t.Fatalf("create room: %v", res.Err)
	}
	return res.Room
}

func TestHub_Create_Get_SamePointer(t *testing.T) {
	h := NewHub(context.Background(), 100, zap.NewNop())

	rm := createRoom(t, h)

	reply := make(chan *room.Room, 1)
	h.Inbox() <- GetRoom{RoomID: rm.ID(), Reply: reply}
	got := <-reply

	if got == nil || got != rm {
		t.Fatalf("expected same room pointer")
	}
}

func TestHub_GetUnknownRoomIsNil(t *testing.T) {
	h := NewHub(context.Background(), 100, zap.NewNop())

	reply := make(chan *room.Room, 1)
	h.Inbox() <- GetRoom{RoomID: "missing", Reply: reply}
	if got := <-reply; got != nil {
		t.Fatalf("expected nil for unknown room, got %v", got.ID())
	}
}

func TestHub_RoomIDsAreUniqueTokens(t *testing.T) {
	h := NewHub(context.Background(), 100, zap.NewNop())

	a := createRoom(t, h)
	b := createRoom(t, h)

	if a.ID() == b.ID() {
		t.Fatalf("expected distinct room ids, both %q", a.ID())
	}
	if len(a.ID()) != bet.RoomIDBytes*2 {
		t.Fatalf("unexpected room id %q", a.ID())
	}
}

func TestHub_RemoveRoom(t *testing.T) {
	h := NewHub(context.Background(), 100, zap.NewNop())

	rm := createRoom(t, h)
	h.Inbox() <- RemoveRoom{RoomID: rm.ID()}

	reply := make(chan *room.Room, 1)
	h.Inbox() <- GetRoom{RoomID: rm.ID(), Reply: reply}
	if got := <-reply; got != nil {
		t.Fatalf("expected room to be gone after removal")
	}
}
