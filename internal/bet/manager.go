package bet

import "math"

// Manager is the betting state machine for one room. It is the sole
// owner of the room's mutable state (players, both ledgers, odds) and
// is not safe for concurrent use: the room actor serializes access.
//
// Lifecycle: CLOSED --StartBetting--> OPEN --EndBetting--> IN_PROGRESS
// --CloseBet--> CLOSED, cycling indefinitely.
type Manager struct {
	roomID  string
	state   State
	stake   int
	players map[PlayerID]*Player
	red     *Team
	blue    *Team

	odds       float64
	lockedRed  float64
	lockedBlue float64
}

func NewManager(roomID string, stake int) *Manager {
	return &Manager{
		roomID:  roomID,
		state:   StateClosed,
		stake:   stake,
		players: make(map[PlayerID]*Player),
		red:     NewTeam("Red"),
		blue:    NewTeam("Blue"),
		odds:    1,
	}
}

func (m *Manager) RoomID() string { return m.roomID }
func (m *Manager) State() State   { return m.state }
func (m *Manager) Odds() float64  { return m.odds }

// LockedOdds returns the display pair computed at EndBetting.
func (m *Manager) LockedOdds() (red, blue float64) {
	return m.lockedRed, m.lockedBlue
}

func (m *Manager) Player(id PlayerID) (Player, bool) {
	p, ok := m.players[id]
	if !ok {
		return Player{}, false
	}
	return *p, true
}

// Join adds a player with the starting stake. The first joiner becomes
// the owner; the owner never changes afterwards. Display names are not
// constrained, clients key on the returned ID.
func (m *Manager) Join(name string) (Player, error) {
	id, err := UniqueToken(PlayerIDBytes, func(tok string) bool {
		_, ok := m.players[PlayerID(tok)]
		return ok
	})
	if err != nil {
		return Player{}, err
	}
	p := &Player{
		ID:      PlayerID(id),
		Seat:    len(m.players),
		Name:    name,
		Coins:   m.stake,
		IsOwner: len(m.players) == 0,
	}
	m.players[p.ID] = p
	return *p, nil
}

// PlaceBet records a wager on one side while betting is open. Any prior
// wager by the player is removed from both ledgers first, so only the
// latest placement counts and a player never sits on both sides. A
// wager may use the whole balance but never exceed it.
func (m *Manager) PlaceBet(id PlayerID, amount int, side Side) error {
	if m.state != StateOpen {
		return ErrWrongState
	}
	p, ok := m.players[id]
	if !ok {
		return ErrPlayerNotFound
	}
	if side != SideRed && side != SideBlue {
		return ErrInvalidSide
	}
	if amount <= 0 || amount > p.Coins {
		return ErrInvalidWager
	}

	m.red.RemoveWager(id)
	m.blue.RemoveWager(id)
	if side == SideRed {
		m.red.SetWager(id, amount)
	} else {
		m.blue.SetWager(id, amount)
	}
	return nil
}

// StartBetting opens a fresh round: both ledgers cleared, odds reset.
func (m *Manager) StartBetting() error {
	if m.state != StateClosed {
		return ErrWrongState
	}
	m.state = StateOpen
	m.red.Clear()
	m.blue.Clear()
	m.odds = 1
	return nil
}

// EndBetting freezes the ledgers and fixes the odds for settlement.
func (m *Manager) EndBetting() error {
	if m.state != StateOpen {
		return ErrWrongState
	}
	m.state = StateInProgress
	m.odds = ComputeOdds(m.red, m.blue)
	m.lockedRed, m.lockedBlue = lockOdds(m.odds, m.red.Sum(), m.blue.Sum())
	return nil
}

// CloseBet settles the round for the winning side, or voids it when
// winner is SideNeutral. Either way both ledgers are cleared and the
// room returns to CLOSED.
func (m *Manager) CloseBet(winner Side) error {
	if m.state != StateInProgress {
		return ErrWrongState
	}
	switch winner {
	case SideRed:
		m.cashout(m.red, m.blue)
	case SideBlue:
		m.cashout(m.blue, m.red)
	case SideNeutral:
		// void round: no payout, no debit
	default:
		return ErrInvalidSide
	}
	m.red.Clear()
	m.blue.Clear()
	m.state = StateClosed
	m.odds = 1
	return nil
}

// cashout applies the pari-mutuel settlement. The smaller pool earns
// the multiplier: winners are credited round(wager*odds) when their
// pool was the underdog, round(wager/odds) when it was the favorite.
// Odds 0 means one pool was empty, so winners get no adjustment.
// Losers are debited their wager; a balance landing on exactly 0 is
// reset to the starting stake so nobody is left unable to play.
func (m *Manager) cashout(winners, losers *Team) {
	winnersSum := winners.Sum()
	losersSum := losers.Sum()

	if m.odds != 0 {
		for id, wager := range winners.Wagers() {
			p := m.players[id]
			if winnersSum < losersSum {
				p.Coins += int(math.Round(float64(wager) * m.odds))
			} else {
				p.Coins += int(math.Round(float64(wager) / m.odds))
			}
		}
	}

	for id, wager := range losers.Wagers() {
		p := m.players[id]
		p.Coins -= wager
		if p.Coins == 0 {
			p.Coins = m.stake
		}
	}
}
