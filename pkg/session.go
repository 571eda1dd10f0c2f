package pkg

import (
	"fmt"
	"net"
	"regexp"
	"strings"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
)

const MaxNicknameLength = 16

var nickRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-!@#$%^&*+=,./]+`)

// Nickname sanitizes user for display. Empty and anonymous users get a
// generated name.
func Nickname(user string) string {
	nick := nickRegexp.ReplaceAllString(user, "")
	if len(nick) > MaxNicknameLength {
		nick = nick[:MaxNicknameLength]
	}

	if nick == "" || strings.EqualFold(nick, "anonymous") {
		nick = petname.Generate(2, "-")
	}

	return nick
}

// Session is one SSH connection playing a game.
type Session struct {
	Id         int
	Name       string
	RemoteAddr net.Addr
	Started    time.Time
}

func NewSession(id int, user string, addr net.Addr) *Session {
	return &Session{
		Id:         id,
		Name:       Nickname(user),
		RemoteAddr: addr,
		Started:    time.Now(),
	}
}

func (s *Session) Duration() time.Duration {
	return time.Since(s.Started).Truncate(time.Second)
}

func (s *Session) String() string {
	addr := "unknown"
	if s.RemoteAddr != nil {
		addr = s.RemoteAddr.String()
	}

	return fmt.Sprintf("#%d %s (%s)", s.Id, s.Name, addr)
}
