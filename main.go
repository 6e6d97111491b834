package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"git.lost.host/meutraa/flavor/internal/catalog"
	"git.lost.host/meutraa/flavor/internal/config"
	"git.lost.host/meutraa/flavor/internal/game"
	"git.lost.host/meutraa/flavor/internal/input"
	"git.lost.host/meutraa/flavor/internal/log"
	"git.lost.host/meutraa/flavor/internal/random"
	"git.lost.host/meutraa/flavor/internal/render"
	"git.lost.host/meutraa/flavor/internal/schedule"
	"git.lost.host/meutraa/flavor/internal/session"
	"git.lost.host/meutraa/flavor/internal/sound"
	"git.lost.host/meutraa/flavor/internal/theme"
	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if nil != err {
		return err
	}

	logger, logCloser, err := log.Open(cfg.LogFile, log.LevelFromString(cfg.LogLevel))
	if nil != err {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer logCloser.Close()

	layout := cfg.Settings.Layout
	keymap, err := input.ParseKeymap(cfg.Keys, layout.Lanes)
	if nil != err {
		return err
	}

	// Ensure our Default implementations are used as interfaces
	var th theme.Theme = &theme.DefaultTheme{}

	items, err := loadItems(cfg.Catalog, th)
	if nil != err {
		return err
	}
	logger.Infof("loaded %d items from %q", len(items), cfg.Catalog)

	rng := random.Default()
	if cfg.Seed != 0 {
		rng = random.NewSeeded(cfg.Seed)
	}

	player, err := openPlayer(cfg)
	if nil != err {
		logger.Warnf("sound disabled: %v", err)
		player = sound.Nop{}
	}

	var surface render.Surface
	var events <-chan input.Event
	switch cfg.Backend {
	case "ansi":
		t := render.NewTerminal(os.Stdout, layout)
		if err := t.Init(); nil != err {
			return fmt.Errorf("unable to enter raw mode: %w", err)
		}
		defer t.Deinit()

		kb, err := input.NewKeyboard(keymap)
		if nil != err {
			return err
		}
		defer kb.Close()
		surface, events = t, kb.Events()
	default:
		screen, err := tcell.NewScreen()
		if nil != err {
			return fmt.Errorf("unable to create screen: %w", err)
		}
		if err := screen.Init(); nil != err {
			return fmt.Errorf("unable to initialise screen: %w", err)
		}
		defer screen.Fini()
		surface, events = render.NewTcell(screen, layout), input.NewTcell(screen, keymap, layout).Events()
	}

	if cfg.Device != "" {
		ev, err := input.NewEvdev(cfg.Device, keymap)
		if nil != err {
			return err
		}
		defer ev.Close()
		events = merge(controls(events), ev.Events())
	}

	rules := game.DefaultRules()
	board := render.NewBoard(surface, layout, th)
	p := NewProgram(items, rules, board, events, logger)
	p.Session = session.New(session.Config{
		Settings:  cfg.Settings,
		Rules:     rules,
		Scheduler: schedule.NewDefaultScheduler(cfg.Settings, rng, th.Note()),
		Painter:   board,
		Logger:    logger,
		OnJudge: func(kind game.Kind) {
			// Expired notes are not hits
			if kind != rules.CatchAll().Kind {
				player.Hit()
			}
		},
		OnNavigate: p.navigate,
	})
	defer p.Session.Stop()

	return p.Run()
}

func loadItems(path string, th theme.Theme) ([]game.Item, error) {
	src, err := catalog.Open(path)
	if nil != err {
		return nil, fmt.Errorf("unable to open catalog: %w", err)
	}
	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	items, err := src.Items(ctx)
	if nil != err {
		return nil, fmt.Errorf("unable to load menu items: %w", err)
	}
	return catalog.Colorize(items, th.Palette()), nil
}

func openPlayer(cfg *config.Config) (sound.Player, error) {
	if cfg.Mute {
		return sound.Nop{}, nil
	}
	sample := sound.Click(880, 40*time.Millisecond)
	if cfg.Sound != "" {
		var err error
		sample, err = sound.Load(cfg.Sound)
		if nil != err {
			return nil, err
		}
	}
	b := sound.NewBeep(sample)
	if err := b.Init(); nil != err {
		return nil, err
	}
	return b, nil
}
