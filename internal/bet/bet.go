package bet

import "errors"

var ErrWrongState = errors.New("operation not allowed in current state")
var ErrInvalidWager = errors.New("invalid wager amount")
var ErrInvalidSide = errors.New("invalid side")
var ErrPlayerNotFound = errors.New("unknown player")

type State string

const (
	StateOpen       State = "open"
	StateInProgress State = "in_progress"
	StateClosed     State = "closed"
)

// Side selects one of the two betting pools. SideNeutral is only valid
// when closing a round: it voids the round with no payout either way.
type Side string

const (
	SideRed     Side = "red"
	SideBlue    Side = "blue"
	SideNeutral Side = "neutral"
)

type PlayerID string
