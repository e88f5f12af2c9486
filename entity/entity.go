package entity

import (
	"errors"

	"orbwalker/config"
	"orbwalker/memory"
)

var ErrSpellsUnavailable = errors.New("spell book unavailable for this client version")

type Vec3 struct {
	X, Y, Z float32
}

// Status is the liveness triple every attackable unit carries.
type Status struct {
	Alive      bool
	Targetable bool
	Visible    bool
}

type Player struct {
	Name        string
	BasicAttack float32
	BonusAttack float32
	Position    Vec3
	AttackRange float32
	Team        int32
	Address     uintptr
}

// Enemy is a champion snapshot. Identity is the base address it was read
// from and is only meaningful within the poll that produced it.
type Enemy struct {
	Name        string
	Health      float32
	MaxHealth   float32
	Gold        int32
	Armor       float32
	BasicAttack float32
	BonusAttack float32
	MagicDamage float32
	Position    Vec3
	Status
	AttackRange float32
	Team        int32
	Identity    uintptr
}

type Minion struct {
	Health   float32
	Armor    float32
	Position Vec3
	Status
	Team     int32
	Identity uintptr
}

type Turret struct {
	AttackRange float32
	Position    Vec3
	Status
	Team     int32
	Identity uintptr
}

// AliveFromSpawnCount: the client bumps the counter on death and again on
// respawn, so an even count means the unit is up.
func AliveFromSpawnCount(n int32) bool {
	return n%2 == 0
}

// Reader turns base addresses into snapshots using one offset table.
type Reader struct {
	mem memory.Reader
	off config.Offsets
}

func NewReader(mem memory.Reader, off config.Offsets) *Reader {
	return &Reader{mem: mem, off: off}
}

func (r *Reader) Offsets() config.Offsets {
	return r.off
}

func (r *Reader) float(base uintptr, off config.Hex) float32 {
	return r.mem.ReadFloat(base + uintptr(off))
}

func (r *Reader) position(base uintptr) Vec3 {
	return Vec3{
		X: r.float(base, r.off.ObjX),
		Y: r.float(base, r.off.ObjY),
		Z: r.float(base, r.off.ObjZ),
	}
}

func (r *Reader) status(base uintptr) Status {
	return Status{
		Alive:      AliveFromSpawnCount(r.mem.ReadInt(base + uintptr(r.off.ObjSpawnCount))),
		Targetable: r.mem.ReadBool(base + uintptr(r.off.ObjTargetable)),
		Visible:    r.mem.ReadBool(base + uintptr(r.off.ObjVisible)),
	}
}

func (r *Reader) ReadPlayer(base uintptr) Player {
	return Player{
		Name:        r.mem.ReadString(base + uintptr(r.off.ObjName)),
		BasicAttack: r.float(base, r.off.ObjBaseAttack),
		BonusAttack: r.float(base, r.off.ObjBonusAttack),
		Position:    r.position(base),
		AttackRange: r.float(base, r.off.ObjAttackRange),
		Team:        r.mem.ReadInt(base + uintptr(r.off.ObjTeam)),
		Address:     base,
	}
}

func (r *Reader) ReadEnemy(base uintptr) Enemy {
	return Enemy{
		Name:        r.mem.ReadString(base + uintptr(r.off.ObjName)),
		Health:      r.float(base, r.off.ObjHealth),
		MaxHealth:   r.float(base, r.off.ObjMaxHealth),
		Gold:        r.mem.ReadInt(base + uintptr(r.off.ObjGold)),
		Armor:       r.float(base, r.off.ObjArmor),
		BasicAttack: r.float(base, r.off.ObjBaseAttack),
		BonusAttack: r.float(base, r.off.ObjBonusAttack),
		MagicDamage: r.float(base, r.off.ObjMagicDamage),
		Position:    r.position(base),
		Status:      r.status(base),
		AttackRange: r.float(base, r.off.ObjAttackRange),
		Team:        r.mem.ReadInt(base + uintptr(r.off.ObjTeam)),
		Identity:    base,
	}
}

func (r *Reader) ReadMinion(base uintptr) Minion {
	return Minion{
		Health:   r.float(base, r.off.ObjHealth),
		Armor:    r.float(base, r.off.ObjArmor),
		Position: r.position(base),
		Status:   r.status(base),
		Team:     r.mem.ReadInt(base + uintptr(r.off.ObjTeam)),
		Identity: base,
	}
}

func (r *Reader) ReadTurret(base uintptr) Turret {
	return Turret{
		AttackRange: r.float(base, r.off.ObjAttackRange),
		Position:    r.position(base),
		Status:      r.status(base),
		Team:        r.mem.ReadInt(base + uintptr(r.off.ObjTeam)),
		Identity:    base,
	}
}

// ReadSpellLevels returns the Q, W, E and R levels. The result always has
// config.SPELL_SLOTS entries; on error every entry is zero.
func (r *Reader) ReadSpellLevels(base uintptr) ([config.SPELL_SLOTS]int32, error) {
	var levels [config.SPELL_SLOTS]int32
	if !r.off.SpellsEnabled() {
		return levels, ErrSpellsUnavailable
	}

	slots, err := r.mem.ReadInt64Array(base+uintptr(r.off.ObjSpellBook), config.SPELL_SLOTS)
	if err != nil || len(slots) != config.SPELL_SLOTS {
		return levels, ErrSpellsUnavailable
	}

	for i, slot := range slots {
		levels[i] = r.mem.ReadInt(uintptr(slot) + uintptr(r.off.SpellLevel))
	}
	return levels, nil
}
