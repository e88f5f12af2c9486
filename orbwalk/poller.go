package orbwalk

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"orbwalker/config"
	"orbwalker/entity"
	"orbwalker/memory"
	"orbwalker/screen"
	"orbwalker/targeting"
)

var ErrNoLocalPlayer = errors.New("local player not available")

// Cycle is everything one poll observed and decided. It shares nothing
// with later cycles.
type Cycle struct {
	Seq      uint64
	GameTime float32
	Player   entity.Player
	Enemies  []entity.Enemy
	Minions  []entity.Minion
	Turrets  []entity.Turret

	// Spell levels are best effort; HasSpells is false on clients where
	// the spell book path is gone.
	Spells    [config.SPELL_SLOTS]int32
	HasSpells bool

	Target    entity.Enemy
	HasTarget bool
	Minion    entity.Minion
	HasMinion bool
	Turret    entity.Turret
	HasTurret bool
	Duration  time.Duration
}

// SpellSummary labels each resolved slot with its key, "Q1 W0 E0 R0".
func (c Cycle) SpellSummary() string {
	if !c.HasSpells {
		return "n/a"
	}
	var b strings.Builder
	for i, level := range c.Spells {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s%d", config.SpellKeys[i], level)
	}
	return b.String()
}

type Options struct {
	Strategy targeting.Strategy
	LastHit  bool
	Viewport screen.Viewport
}

// Poller runs one synchronous read-and-select pass per call.
type Poller struct {
	reader     *entity.Reader
	selector   targeting.Selector
	matrix     screen.MemorySource
	moduleBase uintptr
	opts       Options
	seq        uint64
}

func NewPoller(mem memory.Reader, off config.Offsets, moduleBase uintptr, sel targeting.Selector, opts Options) *Poller {
	return &Poller{
		reader:     entity.NewReader(mem, off),
		selector:   sel,
		matrix:     screen.MemorySource{Mem: mem, Address: moduleBase + uintptr(off.ViewProjMatrix)},
		moduleBase: moduleBase,
		opts:       opts,
	}
}

// Poll is not safe for concurrent use; the sequence counter belongs to
// the single driver loop.
func (p *Poller) Poll(ctx context.Context) (Cycle, error) {
	start := time.Now()
	off := p.reader.Offsets()

	addr := p.reader.LocalPlayerAddress(p.moduleBase)
	if addr == 0 {
		return Cycle{}, ErrNoLocalPlayer
	}

	p.seq++
	c := Cycle{
		Seq:      p.seq,
		GameTime: p.reader.GameTime(p.moduleBase),
		Player:   p.reader.ReadPlayer(addr),
	}
	if levels, err := p.reader.ReadSpellLevels(addr); err == nil {
		c.Spells, c.HasSpells = levels, true
	}

	me := c.Player
	champions := p.reader.ReadEnemies(p.reader.ListAddresses(p.moduleBase, off.ChampionList))
	c.Enemies = filter(champions, func(e entity.Enemy) bool {
		return e.Identity != me.Address && opposing(me.Team, e.Team) && validPosition(e.Position)
	})
	if err := ctx.Err(); err != nil {
		return c, err
	}

	if p.opts.LastHit {
		minions := p.reader.ReadMinions(p.reader.ListAddresses(p.moduleBase, off.MinionList))
		c.Minions = filter(minions, func(m entity.Minion) bool {
			return opposing(me.Team, m.Team) && validPosition(m.Position)
		})
		if err := ctx.Err(); err != nil {
			return c, err
		}
	}
	turrets := p.reader.ReadTurrets(p.reader.ListAddresses(p.moduleBase, off.TurretList))
	c.Turrets = filter(turrets, func(t entity.Turret) bool {
		return opposing(me.Team, t.Team) && validPosition(t.Position)
	})

	sel := p.selector
	if sel.Conditions.Mode == targeting.ModeDrawings {
		sel = sel.WithProjector(screen.Frame{Matrix: p.matrix.ViewProjection(), Viewport: p.opts.Viewport})
	}

	c.Target, c.HasTarget = sel.Select(p.opts.Strategy, c.Player, c.Enemies)
	if p.opts.LastHit {
		c.Minion, c.HasMinion = sel.SelectMinion(c.Player, c.Minions)
	}
	c.Turret, c.HasTurret = sel.SelectTurret(c.Player, c.Turrets)

	c.Duration = time.Since(start)
	if c.Duration > config.LOG_SLOW_POLL {
		log.Printf("[Poll] cycle %d took %v (%d enemies, %d minions)", c.Seq, c.Duration, len(c.Enemies), len(c.Minions))
	}
	return c, nil
}

// filter keeps items in order. It reuses the backing array of items.
func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// opposing reports whether a unit on team theirs is fair game for a
// player on team mine. Team 0 means the field was unreadable and is not
// used to filter.
func opposing(mine, theirs int32) bool {
	return mine == 0 || theirs != mine
}

// validPosition drops snapshots torn by a concurrent write in the client.
func validPosition(v entity.Vec3) bool {
	return memory.IsValidCoord(v.X) && memory.IsValidCoord(v.Y) && memory.IsValidCoord(v.Z)
}

func (p *Poller) Strategy() targeting.Strategy {
	return p.opts.Strategy
}

func (p *Poller) SetStrategy(s targeting.Strategy) {
	p.opts.Strategy = s
}

func (p *Poller) Mode() targeting.Mode {
	return p.selector.Conditions.Mode
}

func (p *Poller) SetMode(m targeting.Mode) {
	p.selector.Conditions.Mode = m
}
