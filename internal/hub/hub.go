package hub

import (
	"context"

	"go.uber.org/zap"

	"betroom-backend/internal/bet"
	"betroom-backend/internal/room"
)

type HubMsg interface{ isHubMsg() }

type CreateRoom struct {
	Reply chan CreateReply
}

type CreateReply struct {
	Room *room.Room
	Err  error
}

type GetRoom struct {
	RoomID string
	Reply  chan *room.Room
}

type RemoveRoom struct {
	RoomID string
}

type ShutdownHub struct{}

func (CreateRoom) isHubMsg()  {}
func (GetRoom) isHubMsg()     {}
func (RemoveRoom) isHubMsg()  {}
func (ShutdownHub) isHubMsg() {}

// Hub is the room directory: it owns creation (including room ID
// generation, collision-checked against the live directory) and lookup.
// Like a room, it is a single goroutine over an inbox, so directory
// access never races with itself; per-room serialization is the rooms'
// own business.
type Hub struct {
	inbox  chan HubMsg
	rooms  map[string]*room.Room
	stake  int
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(parent context.Context, stake int, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:  make(chan HubMsg, 64),
		rooms:  make(map[string]*room.Room),
		stake:  stake,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateRoom:
				id, err := bet.UniqueToken(bet.RoomIDBytes, func(tok string) bool {
					_, taken := h.rooms[tok]
					return taken
				})
				if err != nil {
					msg.Reply <- CreateReply{Err: err}
					break
				}
				rm := room.New(h.ctx, bet.NewManager(id, h.stake), h.log)
				h.rooms[id] = rm
				h.log.Info("room created", zap.String("room", id))
				msg.Reply <- CreateReply{Room: rm}

			case GetRoom:
				msg.Reply <- h.rooms[msg.RoomID] // may be nil

			case RemoveRoom:
				delete(h.rooms, msg.RoomID)

			case ShutdownHub:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) shutdown() {
	for _, rm := range h.rooms {
		rm.Inbox() <- room.Shutdown{}
	}
	clear(h.rooms)
	h.cancel()
}
