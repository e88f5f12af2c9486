package game

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"orbwalker/orbwalk"
	"orbwalker/targeting"
	"orbwalker/ui"
)

// Game drives one poll per tick and renders the last cycle.
type Game struct {
	poller    *orbwalk.Poller
	ctx       context.Context
	connected bool

	cycle   orbwalk.Cycle
	lastErr error
	mutex   sync.RWMutex

	strategyBtn *ui.Button
	modeBtn     *ui.Button

	mouseX, mouseY int
}

func NewGame(ctx context.Context, poller *orbwalk.Poller) *Game {
	g := &Game{
		poller:      poller,
		ctx:         ctx,
		connected:   poller != nil,
		strategyBtn: &ui.Button{X: 10, Y: 10, W: 150, H: 22},
		modeBtn:     &ui.Button{X: 170, Y: 10, W: 150, H: 22},
	}
	if poller == nil {
		g.strategyBtn.Disabled = true
		g.modeBtn.Disabled = true
	}
	g.refreshLabels()
	return g
}

func (g *Game) refreshLabels() {
	if g.poller == nil {
		return
	}
	g.strategyBtn.Label = "Focus: " + g.poller.Strategy().String()
	g.modeBtn.Label = "Mode: " + g.poller.Mode().String()
}

func nextStrategy(s targeting.Strategy) targeting.Strategy {
	return (s + 1) % (targeting.ByDistance + 1)
}

func (g *Game) handleInput() {
	g.mouseX, g.mouseY = ebiten.CursorPosition()
	g.strategyBtn.Hovered = g.strategyBtn.Contains(g.mouseX, g.mouseY)
	g.modeBtn.Hovered = g.modeBtn.Contains(g.mouseX, g.mouseY)

	if g.poller == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}

	if g.strategyBtn.Hovered {
		g.poller.SetStrategy(nextStrategy(g.poller.Strategy()))
	}
	if g.modeBtn.Hovered {
		if g.poller.Mode() == targeting.ModeDrawings {
			g.poller.SetMode(targeting.ModeAutomation)
		} else {
			g.poller.SetMode(targeting.ModeDrawings)
		}
	}
	g.refreshLabels()
}

func (g *Game) Update() error {
	if err := g.ctx.Err(); err != nil {
		return ebiten.Termination
	}

	g.handleInput()
	if !g.connected {
		return nil
	}

	cycle, err := g.poller.Poll(g.ctx)
	if err != nil && !errors.Is(err, orbwalk.ErrNoLocalPlayer) && !errors.Is(err, context.Canceled) {
		log.Printf("[Poll] %v", err)
	}

	g.mutex.Lock()
	g.lastErr = err
	if err == nil {
		g.cycle = cycle
	}
	g.mutex.Unlock()
	return nil
}

func (g *Game) snapshot() (orbwalk.Cycle, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.cycle, g.lastErr
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
