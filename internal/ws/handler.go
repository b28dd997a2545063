package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"betroom-backend/internal/hub"
	"betroom-backend/internal/room"
	"betroom-backend/internal/types"
)

// Handler subscribes a websocket client to a room's update stream. The
// stream is push-only: every message is a zero-payload "update" and the
// client is expected to re-fetch GET /room/{id}. Anything the client
// sends is ignored; the read loop only exists to notice the close.
func Handler(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID := r.URL.Query().Get("room")
		if roomID == "" {
			http.Error(w, "missing room", http.StatusBadRequest)
			return
		}

		reply := make(chan *room.Room, 1)
		h.Inbox() <- hub.GetRoom{RoomID: roomID, Reply: reply}
		rm := <-reply
		if rm == nil {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			// In dev ONLY, you can loosen origin checks:
			// OriginPatterns: []string{"http://localhost:*", "http://127.0.0.1:*"},
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan room.Update, 8)
		clientID := uuid.NewString()

		rm.Inbox() <- room.Subscribe{ClientID: clientID, Outbox: out}
		defer func() { rm.Inbox() <- room.Unsubscribe{ClientID: clientID} }()

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			payload, _ := json.Marshal(types.ServerMessage{Type: "update"})
			for range out {
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop
		for {
			if _, _, err := conn.Read(r.Context()); err != nil {
				// Treat clean close/going-away as normal:
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				// Otherwise, just exit (room.Unsubscribe in defer):
				return
			}
		}
	}
}
