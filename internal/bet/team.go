package bet

// Team holds the current round's wagers for one side, keyed by player.
// A player appears in at most one team per room; the Manager enforces
// that on every placement.
type Team struct {
	name   string
	wagers map[PlayerID]int
}

func NewTeam(name string) *Team {
	return &Team{
		name:   name,
		wagers: make(map[PlayerID]int),
	}
}

func (t *Team) Name() string { return t.name }

func (t *Team) HasWager(id PlayerID) bool {
	_, ok := t.wagers[id]
	return ok
}

// SetWager overwrites any existing wager by this player on this side.
func (t *Team) SetWager(id PlayerID, amount int) {
	t.wagers[id] = amount
}

func (t *Team) RemoveWager(id PlayerID) {
	delete(t.wagers, id)
}

func (t *Team) Sum() int {
	sum := 0
	for _, amount := range t.wagers {
		sum += amount
	}
	return sum
}

func (t *Team) Clear() {
	t.wagers = make(map[PlayerID]int)
}

// Wagers returns a copy so callers can't mutate the ledger behind the
// Manager's back.
func (t *Team) Wagers() map[PlayerID]int {
	out := make(map[PlayerID]int, len(t.wagers))
	for id, amount := range t.wagers {
		out[id] = amount
	}
	return out
}

// TeamInfo is the wire projection of a Team.
type TeamInfo struct {
	Name   string           `json:"name"`
	Wagers map[PlayerID]int `json:"wagers"`
}

func (t *Team) Info() *TeamInfo {
	return &TeamInfo{Name: t.name, Wagers: t.Wagers()}
}
