package bet

// Player lives for the whole room lifetime; there is no leave operation.
// Seat is the 0-based join index and the first joiner owns the room.
type Player struct {
	ID      PlayerID
	Seat    int
	Name    string
	Coins   int
	IsOwner bool
}

// PlayerInfo is the wire projection of a Player.
type PlayerInfo struct {
	ID      PlayerID `json:"playerId"`
	Seat    int      `json:"seat"`
	Name    string   `json:"name"`
	Coins   int      `json:"coins"`
	IsOwner bool     `json:"isOwner"`
}

func (p *Player) Info() PlayerInfo {
	return PlayerInfo{
		ID:      p.ID,
		Seat:    p.Seat,
		Name:    p.Name,
		Coins:   p.Coins,
		IsOwner: p.IsOwner,
	}
}
