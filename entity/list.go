package entity

import (
	"orbwalker/config"
	"orbwalker/memory"
)

// LocalPlayerAddress dereferences the local player global. Zero when the
// game has not spawned the player yet or the slot holds garbage.
func (r *Reader) LocalPlayerAddress(moduleBase uintptr) uintptr {
	addr := memory.ReadPointer(r.mem, moduleBase+uintptr(r.off.LocalPlayer))
	if !memory.IsValidPtr(addr) {
		return 0
	}
	return addr
}

// ListAddresses walks one of the global object lists and returns the
// valid entries in list order.
func (r *Reader) ListAddresses(moduleBase uintptr, list config.Hex) []uintptr {
	manager := memory.ReadPointer(r.mem, moduleBase+uintptr(list))
	if !memory.IsValidPtr(manager) {
		return nil
	}

	array := memory.ReadPointer(r.mem, manager+uintptr(r.off.ListArray))
	count := int(r.mem.ReadInt(manager + uintptr(r.off.ListCount)))
	if !memory.IsValidPtr(array) || count <= 0 {
		return nil
	}
	if count > config.MAX_LIST_ENTRIES {
		count = config.MAX_LIST_ENTRIES
	}

	raw, err := r.mem.ReadInt64Array(array, count)
	if err != nil {
		return nil
	}

	out := make([]uintptr, 0, len(raw))
	for _, p := range raw {
		if !memory.IsValidPtr(uintptr(p)) {
			continue
		}
		out = append(out, uintptr(p))
	}
	return out
}

func (r *Reader) ReadEnemies(bases []uintptr) []Enemy {
	out := make([]Enemy, 0, len(bases))
	for _, b := range bases {
		out = append(out, r.ReadEnemy(b))
	}
	return out
}

func (r *Reader) ReadMinions(bases []uintptr) []Minion {
	out := make([]Minion, 0, len(bases))
	for _, b := range bases {
		out = append(out, r.ReadMinion(b))
	}
	return out
}

func (r *Reader) ReadTurrets(bases []uintptr) []Turret {
	out := make([]Turret, 0, len(bases))
	for _, b := range bases {
		out = append(out, r.ReadTurret(b))
	}
	return out
}

// GameTime reads the match clock in seconds.
func (r *Reader) GameTime(moduleBase uintptr) float32 {
	return r.mem.ReadFloat(moduleBase + uintptr(r.off.GameTime))
}
