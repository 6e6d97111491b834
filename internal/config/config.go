package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"git.lost.host/meutraa/flavor/internal/game"
	"github.com/joho/godotenv"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Settings game.Settings

	Keys     string // One key per lane
	Catalog  string // Menu source, see catalog.Open
	Backend  string // "ansi" or "tcell"
	Device   string // Optional evdev device for real key releases
	Sound    string // Hit sample, empty for a generated click
	Mute     bool
	Seed     uint64 // Zero picks a random seed
	LogFile  string
	LogLevel string
}

// Load reads a .env file if present, then flags with environment fallbacks.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	d := game.DefaultSettings()
	app := kingpin.New("flavor", "Tap falling notes; hit a coloured one to order its flavour.")
	app.Version(Version)

	var (
		speed     = app.Flag("speed", "Scroll speed in pixels per frame").Default(fmt.Sprint(d.Speed)).Envar("FLAVOR_SPEED").Short('s').Float64()
		duration  = app.Flag("duration", "Session length").Default(d.Duration.String()).Envar("FLAVOR_DURATION").Short('d').Duration()
		density   = app.Flag("density", "Notes per second").Default(fmt.Sprint(d.Density)).Envar("FLAVOR_DENSITY").Int()
		frameRate = app.Flag("frame-rate", "Frames per second").Default(fmt.Sprint(d.FrameRate)).Envar("FLAVOR_FRAME_RATE").Short('R').Int()
		lanes     = app.Flag("lanes", "Number of lanes").Default(fmt.Sprint(d.Layout.Lanes)).Envar("FLAVOR_LANES").Int()
		keys      = app.Flag("keys", "Lane keys, left to right").Default("dfjk").Envar("FLAVOR_KEYS").Short('k').String()
		catalog   = app.Flag("catalog", "Menu file (.yaml) or sqlite database").Envar("FLAVOR_CATALOG").Short('c').String()
		backend   = app.Flag("backend", "Terminal backend").Default("tcell").Envar("FLAVOR_BACKEND").Enum("ansi", "tcell")
		device    = app.Flag("device", "evdev keyboard device").Envar("FLAVOR_DEVICE").String()
		sound     = app.Flag("sound", "Hit sample (.mp3 or .wav)").Envar("FLAVOR_SOUND").String()
		mute      = app.Flag("mute", "Disable the hit sound").Envar("FLAVOR_MUTE").Bool()
		seed      = app.Flag("seed", "Random seed, 0 for a random one").Default("0").Envar("FLAVOR_SEED").Uint64()
		logFile   = app.Flag("log-file", "Log file").Default("flavor.log").Envar("FLAVOR_LOG_FILE").String()
		logLevel  = app.Flag("log-level", "debug, info, warn, error or none").Default("info").Envar("FLAVOR_LOG_LEVEL").String()
	)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}

	s := d
	s.Speed = *speed
	s.Duration = *duration
	s.Density = *density
	s.FrameRate = *frameRate
	s.Layout.Lanes = *lanes

	c := &Config{
		Settings: s,
		Keys:     *keys,
		Catalog:  *catalog,
		Backend:  *backend,
		Device:   *device,
		Sound:    *sound,
		Mute:     *mute,
		Seed:     *seed,
		LogFile:  *logFile,
		LogLevel: *logLevel,
	}
	if err := c.Validate(); nil != err {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	s := c.Settings
	switch {
	case s.Layout.Lanes <= 0:
		return fmt.Errorf("%w: lanes must be positive, got %d", ErrInvalid, s.Layout.Lanes)
	case s.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive, got %v", ErrInvalid, s.Speed)
	case s.Duration < time.Second:
		return fmt.Errorf("%w: duration must be at least 1s, got %v", ErrInvalid, s.Duration)
	case s.Density <= 0:
		return fmt.Errorf("%w: density must be positive, got %d", ErrInvalid, s.Density)
	case s.FrameRate <= 0:
		return fmt.Errorf("%w: frame rate must be positive, got %d", ErrInvalid, s.FrameRate)
	case utf8.RuneCountInString(c.Keys) != s.Layout.Lanes:
		return fmt.Errorf("%w: %d keys for %d lanes", ErrInvalid, utf8.RuneCountInString(c.Keys), s.Layout.Lanes)
	}
	return nil
}
