package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/qnkhuat/tetristerm/pkg"
)

var (
	done = make(chan bool)

	joined = color.New(color.FgGreen).SprintFunc()
	left   = color.New(color.FgYellow).SprintFunc()
	failed = color.New(color.FgRed, color.Bold).SprintFunc()
)

func main() {
	listen := flag.String("listen", pkg.SshPort, "address to serve SSH on")
	client := flag.String("client", "tetristerm", "path to the tetristerm binary")
	hostKey := flag.String("hostkey", "", "path to SSH host key, generated when empty")
	logPath := flag.String("log", "./server.log", "path to log file")
	debug := flag.Bool("debug", false, "start clients with debug logging")
	flag.Parse()

	pkg.InitLog(*logPath, "SERVER: ")

	s, err := pkg.NewServer(*listen, *client, *hostKey)
	if err != nil {
		log.Fatalf("failed to create server: %+v", err)
	}

	if *debug {
		s.ClientArgs = append(s.ClientArgs, "-debug")
	}

	s.OnJoin = func(sess *pkg.Session) {
		fmt.Fprintln(color.Output, joined("+ ", sess, " joined"))
	}
	s.OnLeave = func(sess *pkg.Session, err error) {
		if err != nil {
			fmt.Fprintln(color.Output, failed("! ", sess, " failed: ", err))
			return
		}
		fmt.Fprintln(color.Output, left("- ", sess, " left after ", sess.Duration()))
	}

	go func() {
		log.Printf("Listening at %s", *listen)
		color.Green("Listening at %s", *listen)

		if err := s.ListenAndServe(); err != nil {
			log.Printf("Server stopped: %v", err)
		}

		done <- true
	}()

	// Wait for teminate signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		done <- true
	}()

	<-done

	if err := s.Close(); err != nil {
		log.Printf("Failed to close server: %v", err)
	}
	log.Printf("Server stopped with %d sessions", len(s.Sessions()))
}
