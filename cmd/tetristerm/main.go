package main

import (
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/qnkhuat/tetristerm/pkg"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
	"golang.org/x/term"
)

func main() {
	cfg, err := pkg.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("failed to start tetristerm: non-interactive terminals are not supported")
	}

	theme, err := cfg.LoadTheme()
	if err != nil {
		log.Fatal(err)
	}

	keybindings, err := cfg.LoadKeybindings()
	if err != nil {
		log.Fatalf("failed to load keybindings: %s", err)
	}

	pkg.InitLog(cfg.LogPath, "CLIENT: ")

	g, err := game.NewGame(cfg.Seed, log.Default())
	if err != nil {
		log.Fatalf("failed to start game: %+v", err)
	}
	g.LogLevel = cfg.LogLevel()

	nick := pkg.Nickname(cfg.Nick)
	g.Logf(game.LogStandard, "New game %d for %s", g.State.Seed, nick)

	cl := gui.NewClient(g, nick, theme, keybindings)
	cl.Seed = cfg.Seed

	defer func() {
		if r := recover(); r != nil {
			cl.Stop()

			log.Printf("panic: %+v\n%s", r, debug.Stack())
			panic(r)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() { // Down when receive killed signal
		<-sigc

		cl.Stop()
	}()

	if err := cl.Run(); err != nil {
		log.Fatalf("failed to run application: %s", err)
	}

	s := g.State
	g.Logf(game.LogStandard, "Quit with score %d, lines %d", s.Score, s.Lines)
}
