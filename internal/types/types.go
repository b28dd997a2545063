package types

// ServerMessage is what the websocket channel pushes. The only regular
// message is {"type":"update"} with no payload: clients re-fetch the
// room snapshot over HTTP when they see it.
type ServerMessage struct {
	Type  string `json:"type"` // "update" | "error"
	Error string `json:"error,omitempty"`
}
