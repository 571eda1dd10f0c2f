package game

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// State is everything the engine mutates during play. It is owned by a Game
// and only touched from the goroutine that ticks it.
type State struct {
	Board *mino.Board
	Piece *Piece
	Queue *mino.Queue

	Score  int
	Lines  int
	Pieces int

	GameOver bool

	Seed int64

	randomizer *rand.Rand
	events     []event.Event
}

// NewState returns an empty board with a spawned piece. A zero seed is
// replaced with the current time.
func NewState(seed int64) (*State, error) {
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}

	randomizer := rand.New(rand.NewSource(seed))
	s := &State{
		Board:      mino.NewBoard(),
		Queue:      mino.NewQueue(randomizer, mino.QueueSize),
		Seed:       seed,
		randomizer: randomizer,
	}

	if err := s.Spawn(); err != nil {
		return nil, errors.Wrap(err, "failed to spawn first piece")
	}

	return s, nil
}

func (s *State) emit(e event.Event) {
	s.events = append(s.events, e)
}

// Events returns and forgets the events emitted since the last call.
func (s *State) Events() []event.Event {
	events := s.events
	s.events = nil

	return events
}
