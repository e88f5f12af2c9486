package targeting

import (
	"fmt"
	"strings"

	"orbwalker/entity"
)

type Strategy int

const (
	ByHealth Strategy = iota
	ByDamage
	ByDistance
)

var strategyNames = [...]string{"health", "damage", "distance"}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(name, n) {
			return Strategy(i), nil
		}
	}
	return ByHealth, fmt.Errorf("unknown strategy %q (want health, damage or distance)", name)
}

// Selector picks one target per call. It holds no per-call state; the
// player is always passed in.
type Selector struct {
	Conditions Conditions
}

func NewSelector(c Conditions) Selector {
	return Selector{Conditions: c}
}

// WithProjector returns a copy bound to this cycle's projector.
func (s Selector) WithProjector(p Projector) Selector {
	s.Conditions.Projector = p
	return s
}

// best returns the first candidate with the lowest score among those
// passing eligible. A later candidate must be strictly better to win.
func best[T any](items []T, eligible func(T) bool, score func(T) float32) (T, bool) {
	var (
		chosen T
		top    float32
		found  bool
	)
	for _, it := range items {
		if !eligible(it) {
			continue
		}
		v := score(it)
		if !found || v < top {
			chosen, top, found = it, v, true
		}
	}
	return chosen, found
}

func (s Selector) enemyReady(p entity.Player) func(entity.Enemy) bool {
	return func(e entity.Enemy) bool {
		return s.Conditions.ReadyToAttack(p, EnemyTarget(e))
	}
}

// SelectByHealth focuses the enemy needing the fewest basic attacks.
func (s Selector) SelectByHealth(p entity.Player, enemies []entity.Enemy) (entity.Enemy, bool) {
	return best(enemies, s.enemyReady(p), func(e entity.Enemy) float32 {
		return MinAttacks(p, e.Health, e.Armor)
	})
}

// SelectByDamage focuses the enemy with the highest burst.
func (s Selector) SelectByDamage(p entity.Player, enemies []entity.Enemy) (entity.Enemy, bool) {
	return best(enemies, s.enemyReady(p), func(e entity.Enemy) float32 {
		return -MaxDamage(e)
	})
}

// SelectByDistance focuses the nearest enemy.
func (s Selector) SelectByDistance(p entity.Player, enemies []entity.Enemy) (entity.Enemy, bool) {
	return best(enemies, s.enemyReady(p), func(e entity.Enemy) float32 {
		return Distance(p, e.Position)
	})
}

func (s Selector) Select(strategy Strategy, p entity.Player, enemies []entity.Enemy) (entity.Enemy, bool) {
	switch strategy {
	case ByDamage:
		return s.SelectByDamage(p, enemies)
	case ByDistance:
		return s.SelectByDistance(p, enemies)
	default:
		return s.SelectByHealth(p, enemies)
	}
}

// SelectMinion picks the eligible minion with the fewest hits to kill.
func (s Selector) SelectMinion(p entity.Player, minions []entity.Minion) (entity.Minion, bool) {
	return best(minions, func(m entity.Minion) bool {
		return s.Conditions.ReadyToAttack(p, MinionTarget(m))
	}, func(m entity.Minion) float32 {
		return MinAttacks(p, m.Health, m.Armor)
	})
}

// SelectTurret picks the nearest eligible turret.
func (s Selector) SelectTurret(p entity.Player, turrets []entity.Turret) (entity.Turret, bool) {
	return best(turrets, func(t entity.Turret) bool {
		return s.Conditions.ReadyToAttack(p, TurretTarget(t))
	}, func(t entity.Turret) float32 {
		return Distance(p, t.Position)
	})
}
