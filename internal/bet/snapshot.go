package bet

import "slices"

// Snapshot is the read-only projection handed to the transport layer.
// Which fields are present depends on the room state: ledgers only show
// while a round exists (OPEN or IN_PROGRESS), the locked display odds
// only while IN_PROGRESS, and a CLOSED room carries neither.
type Snapshot struct {
	RoomID      string                  `json:"roomId"`
	State       State                   `json:"state"`
	Players     map[PlayerID]PlayerInfo `json:"players"`
	Leaderboard []PlayerInfo            `json:"leaderBoard"`
	Red         *TeamInfo               `json:"red,omitempty"`
	Blue        *TeamInfo               `json:"blue,omitempty"`
	RatingRed   *float64                `json:"ratingRed,omitempty"`
	RatingBlue  *float64                `json:"ratingBlue,omitempty"`
}

func (m *Manager) Snapshot() Snapshot {
	players := make(map[PlayerID]PlayerInfo, len(m.players))
	for id, p := range m.players {
		players[id] = p.Info()
	}

	snap := Snapshot{
		RoomID:      m.roomID,
		State:       m.state,
		Players:     players,
		Leaderboard: m.Leaderboard(),
	}

	switch m.state {
	case StateOpen:
		snap.Red = m.red.Info()
		snap.Blue = m.blue.Info()
	case StateInProgress:
		snap.Red = m.red.Info()
		snap.Blue = m.blue.Info()
		red, blue := m.lockedRed, m.lockedBlue
		snap.RatingRed = &red
		snap.RatingBlue = &blue
	}
	return snap
}

// Leaderboard lists all players by descending balance; equal balances
// keep join order (stable sort over the seat-ordered slice).
func (m *Manager) Leaderboard() []PlayerInfo {
	list := make([]PlayerInfo, 0, len(m.players))
	for _, p := range m.players {
		list = append(list, p.Info())
	}
	slices.SortFunc(list, func(a, b PlayerInfo) int { return a.Seat - b.Seat })
	slices.SortStableFunc(list, func(a, b PlayerInfo) int { return b.Coins - a.Coins })
	return list
}
