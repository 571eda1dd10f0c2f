package gui

import (
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
	"github.com/rivo/tview"
)

// FrameInterval is how often the game is ticked and redrawn.
const FrameInterval = 16 * time.Millisecond

type Client struct {
	App    *tview.Application
	Game   *game.Game
	Layout *tview.Grid

	Name        string
	Theme       Theme
	Keybindings Keybindings

	// Seed is used when restarting. Zero picks a new time-based seed.
	Seed int64

	board  *tview.TextView
	side   *tview.TextView
	status *tview.TextView

	done     chan struct{}
	stopOnce sync.Once
}

func NewClient(g *game.Game, name string, theme Theme, keybindings Keybindings) *Client {
	app := tview.NewApplication()

	board := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	side := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	status := tview.NewTextView().
		SetDynamicColors(true).
		SetTextColor(theme.Status)

	boardWidth := mino.Width*len(renderEmpty) + 2
	boardHeight := mino.Height + 2

	layout := tview.NewGrid().
		SetRows(-1, boardHeight, 1, -1).
		SetColumns(-1, boardWidth, 2, 20, -1).
		AddItem(tview.NewTextView(), 0, 0, 1, 5, 0, 0, false).
		AddItem(board, 1, 1, 1, 1, 0, 0, true).
		AddItem(side, 1, 3, 1, 1, 0, 0, false).
		AddItem(status, 2, 1, 1, 3, 0, 0, false).
		AddItem(tview.NewTextView(), 3, 0, 1, 5, 0, 0, false)

	cl := &Client{
		App:         app,
		Game:        g,
		Layout:      layout,
		Name:        name,
		Theme:       theme,
		Keybindings: keybindings,
		board:       board,
		side:        side,
		status:      status,
		done:        make(chan struct{}),
	}

	g.OnEvent = cl.handleEvent
	app.SetInputCapture(cl.handleKeypress)

	return cl
}

// Run blocks until the application stops.
func (cl *Client) Run() error {
	cl.render(cl.Game.State.Snapshot())

	go cl.frames()

	return cl.App.SetRoot(cl.Layout, true).Run()
}

func (cl *Client) Stop() {
	cl.stopOnce.Do(func() {
		close(cl.done)
		cl.App.Stop()
	})
}

func (cl *Client) frames() {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cl.done:
			return
		case <-ticker.C:
			cl.App.QueueUpdateDraw(cl.frame)
		}
	}
}

// frame runs on the application goroutine.
func (cl *Client) frame() {
	cl.render(cl.Game.Tick(time.Now()))
}

func (cl *Client) render(snap game.Snapshot) {
	cl.board.SetText(RenderBoard(snap, cl.Theme))
	cl.side.SetText(RenderSide(snap, cl.Theme, cl.Name))
}

func (cl *Client) handleEvent(e event.Event) {
	switch e.(type) {
	case *event.ClearEvent, *event.GameOverEvent:
		cl.status.SetText(e.Message())
	}
}

func (cl *Client) handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
		cl.Stop()
		return nil
	}

	if cl.Game.State.GameOver {
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R') {
			if err := cl.Game.Reset(cl.Seed); err != nil {
				log.Printf("failed to restart: %+v", err)
				return nil
			}

			cl.status.SetText("")
			cl.render(cl.Game.State.Snapshot())
		}
		return nil
	}

	if a := cl.Keybindings.Action(ev); a != event.ActionUnknown {
		cl.Game.Enqueue(a)
		return nil
	}

	return ev
}
