package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"betroom-backend/internal/bet"
	"betroom-backend/internal/hub"
	"betroom-backend/internal/room"
)

func lookupRoom(h *hub.Hub, r *http.Request) *room.Room {
	reply := make(chan *room.Room, 1)
	h.Inbox() <- hub.GetRoom{RoomID: chi.URLParam(r, "roomID"), Reply: reply}
	return <-reply
}

func roomPlayer(rm *room.Room, id bet.PlayerID) (bet.Player, bool) {
	reply := make(chan room.PlayerReply, 1)
	rm.Inbox() <- room.GetPlayer{PlayerID: id, Reply: reply}
	pr := <-reply
	return pr.Player, pr.OK
}

// requireOwner implements the flat authorization model: the caller-side
// check reads IsOwner off the player record, the core itself never
// checks permissions. Owner-only endpoints go through here.
func requireOwner(w http.ResponseWriter, r *http.Request, rm *room.Room) bool {
	userID := r.URL.Query().Get("userid")
	if userID == "" {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	p, ok := roomPlayer(rm, bet.PlayerID(userID))
	if !ok || !p.IsOwner {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func CreateRoom(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := make(chan hub.CreateReply, 1)
		h.Inbox() <- hub.CreateRoom{Reply: reply}
		res := <-reply
		if res.Err != nil {
			http.Error(w, "failed to create room", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, struct {
			RoomID string `json:"roomId"`
		}{RoomID: res.Room.ID()})
	}
}

func RoomInfo(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := lookupRoom(h, r)
		if rm == nil {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}
		reply := make(chan bet.Snapshot, 1)
		rm.Inbox() <- room.GetSnapshot{Reply: reply}
		writeJSON(w, http.StatusOK, <-reply)
	}
}

func JoinRoom(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := lookupRoom(h, r)
		username := r.URL.Query().Get("username")
		if rm == nil || username == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		reply := make(chan room.JoinReply, 1)
		rm.Inbox() <- room.Join{Name: username, Reply: reply}
		res := <-reply
		if res.Err != nil {
			http.Error(w, "failed to join room", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, res.Player.Info())
	}
}

func StartBetting(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := lookupRoom(h, r)
		if rm == nil {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}
		if !requireOwner(w, r, rm) {
			return
		}

		reply := make(chan error, 1)
		rm.Inbox() <- room.StartBetting{Reply: reply}
		writeTransitionResult(w, <-reply)
	}
}

func EndBetting(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := lookupRoom(h, r)
		if rm == nil {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}
		if !requireOwner(w, r, rm) {
			return
		}

		reply := make(chan error, 1)
		rm.Inbox() <- room.EndBetting{Reply: reply}
		writeTransitionResult(w, <-reply)
	}
}

func CloseBet(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := lookupRoom(h, r)
		if rm == nil {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}
		if !requireOwner(w, r, rm) {
			return
		}
		winner, ok := parseCloseSide(r.URL.Query().Get("team"))
		if !ok {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		reply := make(chan error, 1)
		rm.Inbox() <- room.CloseBet{Winner: winner, Reply: reply}
		writeTransitionResult(w, <-reply)
	}
}

func PlaceBet(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := lookupRoom(h, r)
		if rm == nil {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		q := r.URL.Query()
		amount, err := strconv.Atoi(q.Get("bet"))
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		side, ok := parseBetSide(q.Get("team"))
		if !ok {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		reply := make(chan error, 1)
		rm.Inbox() <- room.PlaceBet{
			PlayerID: bet.PlayerID(q.Get("userid")),
			Amount:   amount,
			Side:     side,
			Reply:    reply,
		}
		switch err := <-reply; {
		case err == nil:
			w.WriteHeader(http.StatusOK)
		case errors.Is(err, bet.ErrWrongState):
			http.Error(w, "bets are closed", http.StatusForbidden)
		default:
			// bad player, bad side, non-positive or over-balance amount
			http.Error(w, "bad request", http.StatusBadRequest)
		}
	}
}

// Phase transitions outside their required state come back as 403, the
// same status the owner check uses.
func writeTransitionResult(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, bet.ErrWrongState):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// parseBetSide accepts only the two real pools; bets can never be
// placed on neutral.
func parseBetSide(team string) (bet.Side, bool) {
	switch team {
	case "red":
		return bet.SideRed, true
	case "blue":
		return bet.SideBlue, true
	default:
		return "", false
	}
}

// parseCloseSide additionally accepts neutral, which voids the round.
func parseCloseSide(team string) (bet.Side, bool) {
	switch team {
	case "red":
		return bet.SideRed, true
	case "blue":
		return bet.SideBlue, true
	case "neutral":
		return bet.SideNeutral, true
	default:
		return "", false
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
