package targeting

import (
	"math"

	"orbwalker/config"
	"orbwalker/entity"
)

// Mode picks which geometric gate ReadyToAttack applies after Hurtable.
type Mode int

const (
	// ModeAutomation gates on attack range.
	ModeAutomation Mode = iota
	// ModeDrawings gates on the target being inside the viewport.
	ModeDrawings
)

func (m Mode) String() string {
	if m == ModeDrawings {
		return "drawings"
	}
	return "automation"
}

// RangeModel picks the radius each side contributes to the range test.
type RangeModel int

const (
	FallbackRadius RangeModel = iota
	PrecisionRadius
)

// Projector answers whether a world position is visible. Arguments are in
// projection order: x, vertical, depth.
type Projector interface {
	OnScreen(x, y, z float32) bool
}

// Target is anything the range and screen gates can be evaluated on.
type Target struct {
	Name     string
	Position entity.Vec3
	entity.Status
}

func EnemyTarget(e entity.Enemy) Target {
	return Target{Name: e.Name, Position: e.Position, Status: e.Status}
}

func MinionTarget(m entity.Minion) Target {
	return Target{Position: m.Position, Status: m.Status}
}

func TurretTarget(t entity.Turret) Target {
	return Target{Position: t.Position, Status: t.Status}
}

func Hurtable(s entity.Status) bool {
	return s.Alive && s.Visible && s.Targetable
}

// EffectiveDamage applies armor mitigation. Negative armor amplifies.
func EffectiveDamage(raw, armor float32) float32 {
	if armor >= 0 {
		return raw * 100 / (100 + armor)
	}
	return raw * (2 - 100/(100-armor))
}

// MaxDamage is the better of physical and magic burst, not their sum.
func MaxDamage(e entity.Enemy) float32 {
	return max(e.BasicAttack+e.BonusAttack, e.MagicDamage)
}

// Distance ignores height.
func Distance(p entity.Player, pos entity.Vec3) float32 {
	return float32(math.Hypot(float64(p.Position.X-pos.X), float64(p.Position.Y-pos.Y)))
}

// MinAttacks estimates the basic attacks needed to bring health to zero.
func MinAttacks(p entity.Player, health, armor float32) float32 {
	return health / EffectiveDamage(p.BasicAttack+p.BonusAttack, armor)
}

// Conditions evaluates the context dependent predicates. The zero value
// is the automation mode with fallback radii.
type Conditions struct {
	Mode      Mode
	Range     RangeModel
	Radius    RadiusTable
	Projector Projector
}

func (c Conditions) radius(name string) float32 {
	if c.Range == PrecisionRadius {
		return c.Radius.Get(name)
	}
	return config.UNIT_RADIUS
}

func (c Conditions) InRange(p entity.Player, t Target) bool {
	return Distance(p, t.Position)-c.radius(t.Name) <= p.AttackRange+c.radius(p.Name)
}

func (c Conditions) OnScreen(t Target) bool {
	if c.Projector == nil {
		return false
	}
	return c.Projector.OnScreen(t.Position.X, t.Position.Z, t.Position.Y)
}

func (c Conditions) ReadyToAttack(p entity.Player, t Target) bool {
	if !Hurtable(t.Status) {
		return false
	}
	if c.Mode == ModeDrawings {
		return c.OnScreen(t)
	}
	return c.InRange(p, t)
}
