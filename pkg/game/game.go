package game

import (
	"fmt"
	"log"
	"time"

	"github.com/pkg/errors"
	"github.com/qnkhuat/tetristerm/pkg/event"
)

const ActionQueueSize = 16

const (
	LogStandard = iota
	LogDebug
	LogVerbose
)

// Game drives a State in time. Tick must be called from a single goroutine;
// Enqueue may be called from anywhere.
type Game struct {
	State   *State
	Stopper *Stopper

	LogLevel int

	// OnEvent, when set, receives every engine event from within Tick.
	OnEvent func(event.Event)

	actions chan event.Action
	last    time.Time
	logger  *log.Logger
}

func NewGame(seed int64, logger *log.Logger) (*Game, error) {
	s, err := NewState(seed)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.Default()
	}

	g := &Game{
		State:   s,
		Stopper: NewStopper(GravityThreshold),
		actions: make(chan event.Action, ActionQueueSize),
		logger:  logger,
	}

	return g, nil
}

func (g *Game) Log(level int, a ...interface{}) {
	if level > g.LogLevel {
		return
	}

	g.logger.Print(fmt.Sprint(a...))
}

func (g *Game) Logf(level int, format string, a ...interface{}) {
	if level > g.LogLevel {
		return
	}

	g.logger.Printf(format, a...)
}

// Enqueue schedules an action for the next tick. It never blocks and
// reports false when the queue is full.
func (g *Game) Enqueue(a event.Action) bool {
	select {
	case g.actions <- a:
		return true
	default:
		g.Log(LogDebug, "action queue full, dropped ", a)
		return false
	}
}

// Reset discards the current game and starts a new one.
func (g *Game) Reset(seed int64) error {
	s, err := NewState(seed)
	if err != nil {
		return err
	}

	for {
		select {
		case <-g.actions:
			continue
		default:
		}

		break
	}

	g.State = s
	g.Stopper.Reset()
	g.last = time.Time{}

	g.Logf(LogStandard, "New game %d", s.Seed)
	return nil
}

// Tick applies queued actions, advances gravity by the time since the
// previous tick, locks a resting piece, clears full rows and returns the
// resulting snapshot. Engine invariant violations panic.
func (g *Game) Tick(now time.Time) Snapshot {
	if err := g.tick(now); err != nil {
		log.Panicf("tick failed: %+v", err)
	}

	return g.State.Snapshot()
}

func (g *Game) tick(now time.Time) error {
	g.drainActions()

	var elapsed time.Duration
	if !g.last.IsZero() {
		elapsed = now.Sub(g.last)
	}
	g.last = now

	s := g.State
	if s.GameOver {
		g.flushEvents()
		return nil
	}

	if g.Stopper.Add(elapsed) {
		g.Stopper.Reset()

		// A blocked descent is left to the lock step below.
		s.TryMove(0, 1)
	}

	if _, err := s.LockIfResting(); err != nil {
		return err
	}

	cleared, err := ScanAndClear(s.Board)
	if err != nil {
		return errors.Wrap(err, "failed to clear lines")
	}

	if cleared > 0 {
		score := ScoreDelta(cleared)

		s.Score += score
		s.Lines += cleared
		s.emit(&event.ClearEvent{Lines: cleared, Score: score})
	}

	g.flushEvents()
	return nil
}

func (g *Game) drainActions() {
	for {
		select {
		case a := <-g.actions:
			g.apply(a)
		default:
			return
		}
	}
}

func (g *Game) apply(a event.Action) {
	s := g.State
	if s.GameOver {
		return
	}

	switch a {
	case event.ActionMoveLeft:
		s.TryMove(-1, 0)
	case event.ActionMoveRight:
		s.TryMove(1, 0)
	case event.ActionSoftDrop:
		if s.TryMove(0, 1) {
			g.Stopper.Reset()
		}
	case event.ActionHardDrop:
		if s.HardDrop() > 0 {
			g.Stopper.Reset()
		}
	case event.ActionRotateCW:
		s.TryRotateClockwise()
	default:
		g.Log(LogVerbose, "ignored action ", a)
	}
}

func (g *Game) flushEvents() {
	for _, e := range g.State.Events() {
		level := LogDebug
		if _, ok := e.(*event.GameOverEvent); ok {
			level = LogStandard
		}
		g.Log(level, e.Message())

		if _, ok := e.(*event.LockEvent); ok && g.LogLevel >= LogVerbose {
			g.Logf(LogVerbose, "snapshot %s", g.State.Snapshot().Encode())
		}

		if g.OnEvent != nil {
			g.OnEvent(e)
		}
	}
}
