package pkg

import (
	"encoding/json"
	"flag"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
)

const DefaultLogPath = "./tetristerm.log"

// Config holds the client settings. Values from the file given with
// -config are overridden by flags set on the command line.
type Config struct {
	LogPath string `json:"log"`
	Seed    int64  `json:"seed"`
	Theme   string `json:"theme"`
	Nick    string `json:"nick"`
	Debug   bool   `json:"debug"`
	Verbose bool   `json:"verbose"`

	Themes      []gui.ThemeHex      `json:"themes"`
	Keybindings map[string][]string `json:"keybindings"`
}

func DefaultConfig() Config {
	return Config{
		LogPath: DefaultLogPath,
		Theme:   gui.ThemeBasic.Name,
	}
}

// LoadConfig reads a JSON config file over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "failed to read config")
	}

	if err := json.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "failed to parse config %s", path)
	}

	return c, nil
}

// ParseFlags builds the client config from command line arguments.
func ParseFlags(args []string) (Config, error) {
	fs := flag.NewFlagSet("tetristerm", flag.ContinueOnError)

	configPath := fs.String("config", "", "path to config file")
	logPath := fs.String("log", DefaultLogPath, "path to log file")
	seed := fs.Int64("seed", 0, "random seed, 0 picks one from the clock")
	theme := fs.String("theme", gui.ThemeBasic.Name, "color theme")
	nick := fs.String("nick", "", "nickname")
	debug := fs.Bool("debug", false, "enable debug logging")
	verbose := fs.Bool("verbose", false, "enable verbose logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	c := DefaultConfig()
	if *configPath != "" {
		var err error
		if c, err = LoadConfig(*configPath); err != nil {
			return c, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log":
			c.LogPath = *logPath
		case "seed":
			c.Seed = *seed
		case "theme":
			c.Theme = *theme
		case "nick":
			c.Nick = *nick
		case "debug":
			c.Debug = *debug
		case "verbose":
			c.Verbose = *verbose
		}
	})

	return c, nil
}

func (c Config) LogLevel() int {
	if c.Verbose {
		return game.LogVerbose
	} else if c.Debug {
		return game.LogDebug
	}

	return game.LogStandard
}

func (c Config) LoadTheme() (gui.Theme, error) {
	return gui.ImportThemes(c.Theme, c.Themes)
}

func (c Config) LoadKeybindings() (gui.Keybindings, error) {
	return gui.ParseKeybindings(c.Keybindings)
}
