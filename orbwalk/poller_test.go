package orbwalk

import (
	"context"
	"errors"
	"math"
	"testing"

	"orbwalker/config"
	"orbwalker/memory"
	"orbwalker/screen"
	"orbwalker/targeting"
)

const moduleBase = uintptr(0x7FF600000000)

type unit struct {
	base   uintptr
	name   string
	team   int32
	spawn  int32
	x, y   float32
	health float32
}

type world struct {
	mem *memory.Image
	off config.Offsets
	n   uintptr
}

func newWorld() *world {
	return &world{mem: memory.NewImage(), off: config.Patch1320}
}

func (w *world) unit(u unit) {
	m, off := w.mem, w.off
	m.PutString(u.base+uintptr(off.ObjName), u.name)
	m.PutInt(u.base+uintptr(off.ObjTeam), u.team)
	m.PutInt(u.base+uintptr(off.ObjSpawnCount), u.spawn)
	m.PutBool(u.base+uintptr(off.ObjTargetable), true)
	m.PutBool(u.base+uintptr(off.ObjVisible), true)
	m.PutFloat(u.base+uintptr(off.ObjX), u.x)
	m.PutFloat(u.base+uintptr(off.ObjY), u.y)
	m.PutFloat(u.base+uintptr(off.ObjHealth), u.health)
}

func (w *world) list(global config.Hex, bases ...uintptr) {
	w.n++
	manager := 0x50000000 + w.n*0x10000
	array := manager + 0x1000
	w.mem.PutPointer(moduleBase+uintptr(global), manager)
	w.mem.PutPointer(manager+uintptr(w.off.ListArray), array)
	w.mem.PutInt(manager+uintptr(w.off.ListCount), int32(len(bases)))
	for i, b := range bases {
		w.mem.PutPointer(array+uintptr(i*8), b)
	}
}

func (w *world) player(u unit, damage, attackRange float32) {
	w.unit(u)
	w.mem.PutFloat(u.base+uintptr(w.off.ObjBaseAttack), damage)
	w.mem.PutFloat(u.base+uintptr(w.off.ObjAttackRange), attackRange)
	w.mem.PutPointer(moduleBase+uintptr(w.off.LocalPlayer), u.base)
}

func scenario() *world {
	w := newWorld()
	me := unit{base: 0x20000000, name: "Ashe", team: 100, x: 0, y: 0}
	w.player(me, 50, 500)
	w.unit(unit{base: 0x20100000, name: "Ally", team: 100, x: 50, health: 10})
	w.unit(unit{base: 0x20200000, name: "Far", team: 200, x: 600, health: 100})
	w.unit(unit{base: 0x20300000, name: "Near", team: 200, x: 100, health: 400})
	w.unit(unit{base: 0x20400000, name: "Dead", team: 200, spawn: 1, x: 10, health: 1})
	w.list(w.off.ChampionList, me.base, 0x20100000, 0x20200000, 0x20300000, 0x20400000)

	w.unit(unit{base: 0x21000000, team: 200, x: 200, health: 90})
	w.unit(unit{base: 0x21100000, team: 200, x: 250, health: 40})
	w.list(w.off.MinionList, 0x21000000, 0x21100000)

	w.unit(unit{base: 0x22000000, team: 200, x: 9000})
	w.list(w.off.TurretList, 0x22000000)
	return w
}

func TestPollSelectsAndFilters(t *testing.T) {
	w := scenario()
	p := NewPoller(w.mem, w.off, moduleBase, targeting.NewSelector(targeting.Conditions{}), Options{
		Strategy: targeting.ByDistance,
		LastHit:  true,
	})

	c, err := p.Poll(context.Background())
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}

	if c.Player.Name != "Ashe" {
		t.Errorf("player = %q", c.Player.Name)
	}
	if len(c.Enemies) != 3 {
		t.Fatalf("enemies = %d, want 3 (self and ally dropped)", len(c.Enemies))
	}
	for _, e := range c.Enemies {
		if e.Name == "Ally" || e.Name == "Ashe" {
			t.Errorf("friendly %q kept", e.Name)
		}
	}
	if !c.HasTarget || c.Target.Name != "Near" {
		t.Errorf("target = %q (%v), want Near", c.Target.Name, c.HasTarget)
	}
	if !c.HasMinion || c.Minion.Identity != 0x21100000 {
		t.Errorf("minion = 0x%X (%v), want 0x21100000", c.Minion.Identity, c.HasMinion)
	}
	if len(c.Turrets) != 1 {
		t.Errorf("turrets = %d, want 1", len(c.Turrets))
	}
	if c.Seq != 1 {
		t.Errorf("Seq = %d, want 1", c.Seq)
	}

	c2, _ := p.Poll(context.Background())
	if c2.Seq != 2 {
		t.Errorf("second Seq = %d, want 2", c2.Seq)
	}
}

func TestPollByHealthPicksCheapestLiving(t *testing.T) {
	w := scenario()
	p := NewPoller(w.mem, w.off, moduleBase, targeting.NewSelector(targeting.Conditions{}), Options{Strategy: targeting.ByHealth})

	c, err := p.Poll(context.Background())
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if c.Target.Name != "Far" {
		t.Errorf("target = %q, want Far (Dead has 1 hp but is not alive)", c.Target.Name)
	}
	if c.HasSpells {
		t.Error("spell levels reported without a mapped spell book")
	}
	if c.Minions != nil || c.HasMinion {
		t.Error("minions read with last hit disabled")
	}
}

func TestPollNoLocalPlayer(t *testing.T) {
	w := newWorld()
	p := NewPoller(w.mem, w.off, moduleBase, targeting.Selector{}, Options{})
	if _, err := p.Poll(context.Background()); !errors.Is(err, ErrNoLocalPlayer) {
		t.Errorf("err = %v, want ErrNoLocalPlayer", err)
	}
}

func TestPollCanceled(t *testing.T) {
	w := scenario()
	p := NewPoller(w.mem, w.off, moduleBase, targeting.Selector{}, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Poll(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestPollDrawingsModeUsesMatrix(t *testing.T) {
	w := scenario()
	// identity view and projection: world x in [-1, 1] is on screen
	id := screen.Identity()
	vp := moduleBase + uintptr(w.off.ViewProjMatrix)
	for i := 0; i < 16; i++ {
		w.mem.PutFloat(vp+uintptr(i*4), id[i])
		w.mem.PutFloat(vp+0x40+uintptr(i*4), id[i])
	}
	w.unit(unit{base: 0x20500000, name: "Center", team: 200, x: 0.5, health: 9000})
	w.list(w.off.ChampionList, 0x20200000, 0x20500000)

	sel := targeting.NewSelector(targeting.Conditions{Mode: targeting.ModeDrawings})
	p := NewPoller(w.mem, w.off, moduleBase, sel, Options{
		Strategy: targeting.ByHealth,
		Viewport: screen.Viewport{Width: 1920, Height: 1080},
	})

	c, err := p.Poll(context.Background())
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if !c.HasTarget || c.Target.Name != "Center" {
		t.Errorf("target = %q (%v), want Center", c.Target.Name, c.HasTarget)
	}
}

func TestPollLastHitSkipsOwnTeam(t *testing.T) {
	w := scenario()
	w.unit(unit{base: 0x21200000, team: 100, x: 150, health: 5})
	w.list(w.off.MinionList, 0x21200000, 0x21000000, 0x21100000)

	p := NewPoller(w.mem, w.off, moduleBase, targeting.NewSelector(targeting.Conditions{}), Options{LastHit: true})
	c, err := p.Poll(context.Background())
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if len(c.Minions) != 2 {
		t.Errorf("minions = %d, want 2 (allied minion dropped)", len(c.Minions))
	}
	if !c.HasMinion || c.Minion.Identity != 0x21100000 {
		t.Errorf("minion = 0x%X (%v), want enemy 0x21100000", c.Minion.Identity, c.HasMinion)
	}
}

func TestPollTurretSelection(t *testing.T) {
	tests := []struct {
		name string
		team int32
		x    float32
		want bool
	}{
		{"enemy in range", 200, 300, true},
		{"enemy out of range", 200, 3000, false},
		{"allied in range", 100, 300, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := scenario()
			w.unit(unit{base: 0x22100000, team: tc.team, x: tc.x})
			w.list(w.off.TurretList, 0x22100000)

			p := NewPoller(w.mem, w.off, moduleBase, targeting.NewSelector(targeting.Conditions{}), Options{})
			c, err := p.Poll(context.Background())
			if err != nil {
				t.Fatalf("Poll: %v", err)
			}
			if c.HasTurret != tc.want {
				t.Errorf("HasTurret = %v, want %v", c.HasTurret, tc.want)
			}
			if tc.want && c.Turret.Identity != 0x22100000 {
				t.Errorf("turret = 0x%X", c.Turret.Identity)
			}
		})
	}
}

func TestPollDropsTornPositions(t *testing.T) {
	w := scenario()
	w.unit(unit{base: 0x20600000, name: "Torn", team: 200, x: float32(math.NaN()), health: 1})
	w.unit(unit{base: 0x20700000, name: "Wild", team: 200, x: 1e9, health: 1})
	w.list(w.off.ChampionList, 0x20600000, 0x20700000, 0x20300000)

	p := NewPoller(w.mem, w.off, moduleBase, targeting.NewSelector(targeting.Conditions{}), Options{Strategy: targeting.ByHealth})
	c, err := p.Poll(context.Background())
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if len(c.Enemies) != 1 || c.Enemies[0].Name != "Near" {
		t.Errorf("enemies = %+v, want only Near", c.Enemies)
	}
}

func TestCycleSpellSummary(t *testing.T) {
	if got := (Cycle{}).SpellSummary(); got != "n/a" {
		t.Errorf("no spells = %q, want n/a", got)
	}
	c := Cycle{Spells: [config.SPELL_SLOTS]int32{1, 0, 2, 1}, HasSpells: true}
	if got := c.SpellSummary(); got != "Q1 W0 E2 R1" {
		t.Errorf("SpellSummary = %q", got)
	}
}
