package room

import (
	"context"

	"go.uber.org/zap"

	"betroom-backend/internal/bet"
)

type Msg interface{ isRoomMsg() }

// Update carries no payload: subscribers re-fetch the full snapshot.
type Update struct{}

type Subscribe struct {
	ClientID string
	Outbox   chan Update // where this client wants to receive updates
}

func (Subscribe) isRoomMsg() {}

type Unsubscribe struct{ ClientID string }

func (Unsubscribe) isRoomMsg() {}

type Join struct {
	Name  string
	Reply chan JoinReply
}

func (Join) isRoomMsg() {}

type JoinReply struct {
	Player bet.Player
	Err    error
}

type PlaceBet struct {
	PlayerID bet.PlayerID
	Amount   int
	Side     bet.Side
	Reply    chan error
}

func (PlaceBet) isRoomMsg() {}

type StartBetting struct{ Reply chan error }

func (StartBetting) isRoomMsg() {}

type EndBetting struct{ Reply chan error }

func (EndBetting) isRoomMsg() {}

type CloseBet struct {
	Winner bet.Side
	Reply  chan error
}

func (CloseBet) isRoomMsg() {}

type GetSnapshot struct{ Reply chan bet.Snapshot }

func (GetSnapshot) isRoomMsg() {}

type GetPlayer struct {
	PlayerID bet.PlayerID
	Reply    chan PlayerReply
}

func (GetPlayer) isRoomMsg() {}

type PlayerReply struct {
	Player bet.Player
	OK     bool
}

type Shutdown struct{}

func (Shutdown) isRoomMsg() {}

// Room is the single logical owner of one betting room: a goroutine
// draining an inbox, so no two operations on the same room interleave.
// Rooms are independent and run fully in parallel with each other.
type Room struct {
	id     string
	inbox  chan Msg
	book   *bet.Manager
	subs   map[string]chan Update
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func New(parent context.Context, book *bet.Manager, log *zap.Logger) *Room {
	ctx, cancel := context.WithCancel(parent)

	r := &Room{
		id:     book.RoomID(),
		inbox:  make(chan Msg, 64),
		book:   book,
		subs:   make(map[string]chan Update),
		log:    log.With(zap.String("room", book.RoomID())),
		ctx:    ctx,
		cancel: cancel,
	}

	go r.loop()
	return r
}

func (r *Room) ID() string { return r.id }

// Inbox exposes the message channel to the transport layer and tests.
func (r *Room) Inbox() chan<- Msg { return r.inbox }

func (r *Room) loop() {
	for {
		select {
		case <-r.ctx.Done():
			r.shutdown()
			return

		case m := <-r.inbox:
			switch msg := m.(type) {
			case Subscribe:
				// Register client + nudge it to fetch the current state.
				r.subs[msg.ClientID] = msg.Outbox
				msg.Outbox <- Update{}

			case Unsubscribe:
				delete(r.subs, msg.ClientID)

			case Join:
				p, err := r.book.Join(msg.Name)
				msg.Reply <- JoinReply{Player: p, Err: err}
				if err != nil {
					break
				}
				r.log.Info("player joined",
					zap.String("player", string(p.ID)),
					zap.String("name", p.Name),
					zap.Bool("owner", p.IsOwner))
				r.broadcast()

			case PlaceBet:
				err := r.book.PlaceBet(msg.PlayerID, msg.Amount, msg.Side)
				msg.Reply <- err
				if err != nil {
					break
				}
				r.log.Info("bet placed",
					zap.String("player", string(msg.PlayerID)),
					zap.Int("amount", msg.Amount),
					zap.String("side", string(msg.Side)))
				r.broadcast()

			case StartBetting:
				err := r.book.StartBetting()
				msg.Reply <- err
				if err != nil {
					break
				}
				r.log.Info("betting phase started")
				r.broadcast()

			case EndBetting:
				err := r.book.EndBetting()
				msg.Reply <- err
				if err != nil {
					break
				}
				red, blue := r.book.LockedOdds()
				r.log.Info("betting phase ended",
					zap.Float64("ratingRed", red),
					zap.Float64("ratingBlue", blue))
				r.broadcast()

			case CloseBet:
				err := r.book.CloseBet(msg.Winner)
				msg.Reply <- err
				if err != nil {
					break
				}
				r.log.Info("bet closed", zap.String("winner", string(msg.Winner)))
				r.broadcast()

			case GetSnapshot:
				msg.Reply <- r.book.Snapshot()

			case GetPlayer:
				p, ok := r.book.Player(msg.PlayerID)
				msg.Reply <- PlayerReply{Player: p, OK: ok}

			case Shutdown:
				r.shutdown()
				return
			}
		}
	}
}

func (r *Room) shutdown() {
	for id, ch := range r.subs {
		close(ch) // tell the client no more updates
		delete(r.subs, id)
	}
	r.cancel()
}

// broadcast is fire-and-forget: it runs after the state mutation and
// never rolls it back. A client with a full outbox is dropped.
func (r *Room) broadcast() {
	for id, ch := range r.subs {
		select {
		case ch <- Update{}:
			// ok
		default:
			close(ch)
			delete(r.subs, id)
		}
	}
}
