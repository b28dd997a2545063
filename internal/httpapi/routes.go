package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"betroom-backend/internal/hub"
	"betroom-backend/internal/ws"
)

func SetupRoutes(h *hub.Hub) http.Handler {
	r := chi.NewRouter()

	r.Post("/room/create", CreateRoom(h))
	r.Get("/room/{roomID}", RoomInfo(h))
	r.Post("/room/{roomID}/join", JoinRoom(h))
	r.Post("/room/{roomID}/bet/betting/start", StartBetting(h))
	r.Post("/room/{roomID}/bet/betting/end", EndBetting(h))
	r.Post("/room/{roomID}/bet/close", CloseBet(h))
	r.Put("/room/{roomID}/bet/place", PlaceBet(h))

	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h))
	return r
}
