package main

import (
	"sync"

	"git.lost.host/meutraa/flavor/internal/game"
	"git.lost.host/meutraa/flavor/internal/input"
	"git.lost.host/meutraa/flavor/internal/log"
	"git.lost.host/meutraa/flavor/internal/render"
	"git.lost.host/meutraa/flavor/internal/session"
)

// Program drives the screens around a session: title, play, and the
// summary or order confirmation, until the player quits.
type Program struct {
	Session *session.Session
	Board   *render.Board
	Rules   *game.Rules
	Items   []game.Item
	Events  <-chan input.Event
	Logger  *log.Logger

	navigations chan game.Navigation
}

func NewProgram(items []game.Item, rules *game.Rules, board *render.Board, events <-chan input.Event, logger *log.Logger) *Program {
	return &Program{
		Board:       board,
		Rules:       rules,
		Items:       items,
		Events:      events,
		Logger:      logger,
		navigations: make(chan game.Navigation, 1),
	}
}

func (p *Program) navigate(nav game.Navigation) {
	select {
	case p.navigations <- nav:
	default:
	}
}

func (p *Program) Run() error {
	if !p.title() {
		return nil
	}
	for {
		if err := p.Session.Start(p.Items); nil != err {
			return err
		}
		if !p.play() {
			return nil
		}
		p.result()
		if !p.await() {
			return nil
		}
	}
}

func (p *Program) title() bool {
	lines := []string{"FLAVOR", ""}
	for _, item := range p.Items {
		lines = append(lines, "  "+item.Name)
	}
	lines = append(lines, "", "press a lane key to start   esc: quit")
	if err := p.Board.Screen(lines...); nil != err {
		p.Logger.Warnf("unable to draw title: %v", err)
	}

	for ev := range p.Events {
		switch ev.Kind {
		case input.Activate, input.Restart:
			return true
		case input.Quit:
			return false
		}
	}
	return false
}

// play forwards lane events until the session ends. It returns false when
// the player quits.
func (p *Program) play() bool {
	for {
		select {
		case <-p.Session.Done():
			return true
		case ev, ok := <-p.Events:
			if !ok {
				p.Session.Stop()
				return false
			}
			switch ev.Kind {
			case input.Quit:
				p.Session.Stop()
				return false
			case input.Restart:
				if err := p.Session.Start(p.Items); nil != err {
					p.Logger.Errorf("unable to restart: %v", err)
					return false
				}
			default:
				input.Dispatch(ev, p.Session)
			}
		}
	}
}

func (p *Program) result() {
	var err error
	select {
	case nav := <-p.navigations:
		p.Logger.Infof("ordering %s (%s)", nav.ItemID, nav.Name)
		err = p.Board.Navigation(nav)
	default:
		sum := p.Session.Summary()
		p.Logger.Infof("session over: max combo %d, mean %.2fpx, stdev %.2fpx", sum.MaxCombo, sum.Mean, sum.Stdev)
		err = p.Board.Summary(sum, p.Rules.Kinds())
	}
	if nil != err {
		p.Logger.Warnf("unable to draw result: %v", err)
	}
}

// await waits for the player to ask for another session.
func (p *Program) await() bool {
	for ev := range p.Events {
		switch ev.Kind {
		case input.Restart:
			return true
		case input.Quit:
			return false
		}
	}
	return false
}

// controls keeps only the control events of a source.
func controls(events <-chan input.Event) <-chan input.Event {
	out := make(chan input.Event, cap(events))
	go func() {
		defer close(out)
		for ev := range events {
			if ev.Kind == input.Quit || ev.Kind == input.Restart {
				out <- ev
			}
		}
	}()
	return out
}

// merge fans sources into one channel, closed once every source is.
func merge(sources ...<-chan input.Event) <-chan input.Event {
	out := make(chan input.Event, 128)
	var wg sync.WaitGroup
	wg.Add(len(sources))
	for _, src := range sources {
		go func(src <-chan input.Event) {
			defer wg.Done()
			for ev := range src {
				out <- ev
			}
		}(src)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
