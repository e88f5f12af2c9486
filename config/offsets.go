package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

var ErrUnknownVersion = errors.New("unknown client version")

// Offsets maps every entity field the reader touches to its byte offset
// inside an entity block, plus the absolute addresses (relative to the
// game module base) of the global lists. One value per game patch.
type Offsets struct {
	Version string `json:"version"`

	LocalPlayer    Hex `json:"local_player"`
	GameTime       Hex `json:"game_time"`
	ViewProjMatrix Hex `json:"view_proj_matrix"`
	ChampionList   Hex `json:"champion_list"`
	MinionList     Hex `json:"minion_list"`
	TurretList     Hex `json:"turret_list"`

	// List layout: the global holds a pointer to a manager whose array
	// pointer and count live at these offsets.
	ListArray Hex `json:"list_array"`
	ListCount Hex `json:"list_count"`

	ObjName        Hex `json:"obj_name"`
	ObjTeam        Hex `json:"obj_team"`
	ObjGold        Hex `json:"obj_gold"`
	ObjHealth      Hex `json:"obj_health"`
	ObjMaxHealth   Hex `json:"obj_max_health"`
	ObjArmor       Hex `json:"obj_armor"`
	ObjBaseAttack  Hex `json:"obj_base_attack"`
	ObjBonusAttack Hex `json:"obj_bonus_attack"`
	ObjBonusAS     Hex `json:"obj_bonus_as"`
	ObjMagicDamage Hex `json:"obj_magic_damage"`
	ObjAttackRange Hex `json:"obj_attack_range"`
	ObjSpawnCount  Hex `json:"obj_spawn_count"`
	ObjTargetable  Hex `json:"obj_targetable"`
	ObjVisible     Hex `json:"obj_visible"`
	ObjX           Hex `json:"obj_x"`
	ObjY           Hex `json:"obj_y"`
	ObjZ           Hex `json:"obj_z"`

	// ObjSpellBook == 0 disables spell reading for the patch.
	ObjSpellBook  Hex `json:"obj_spell_book"`
	SpellInfo     Hex `json:"spell_info"`
	SpellData     Hex `json:"spell_data"`
	SpellName     Hex `json:"spell_name"`
	SpellLevel    Hex `json:"spell_level"`
	SpellCooldown Hex `json:"spell_cooldown"`
}

// SpellsEnabled reports whether the spell book path is usable for this patch.
func (o Offsets) SpellsEnabled() bool {
	return o.ObjSpellBook != 0
}

var Patch1320 = Offsets{
	Version: "13.20",

	LocalPlayer:    0x21F5AC0,
	GameTime:       0x21E3948,
	ViewProjMatrix: 0x223EF10,
	ChampionList:   0x21D9340,
	MinionList:     0x21DC2B0,
	TurretList:     0x21E2BC0,

	ListArray: 0x8,
	ListCount: 0x10,

	ObjName:        0x3868,
	ObjTeam:        0x3C,
	ObjGold:        0x2138,
	ObjHealth:      0x1068,
	ObjMaxHealth:   0x1080,
	ObjArmor:       0x1694,
	ObjBaseAttack:  0x166C,
	ObjBonusAttack: 0x15D8,
	ObjBonusAS:     0x164C,
	ObjMagicDamage: 0x15F8,
	ObjAttackRange: 0x16C4,
	ObjSpawnCount:  0x338,
	ObjTargetable:  0xEC0,
	ObjVisible:     0x320,
	ObjX:           0x220,
	ObjY:           0x220 + 0x8,
	ObjZ:           0x220 + 0x4,

	ObjSpellBook:  0x2A00,
	SpellInfo:     0x130,
	SpellData:     0x60,
	SpellName:     0x80,
	SpellLevel:    0x28,
	SpellCooldown: 0x30,
}

// Spell book reads were removed from the client in 13.21.
var Patch1321 = func() Offsets {
	o := Patch1320
	o.Version = "13.21"
	o.ObjSpellBook = 0
	return o
}()

var registry = map[string]Offsets{
	Patch1320.Version: Patch1320,
	Patch1321.Version: Patch1321,
}

// Lookup returns the built-in table for a client version.
func Lookup(version string) (Offsets, error) {
	o, ok := registry[version]
	if !ok {
		return Offsets{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownVersion, version, strings.Join(Versions(), ", "))
	}
	return o, nil
}

func Versions() []string {
	out := make([]string, 0, len(registry))
	for v := range registry {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// LoadOffsets reads a JSON table from disk. The table named by its
// "version" field (or base when the version is unknown) supplies every
// field the file leaves out.
func LoadOffsets(filename string, base Offsets) (Offsets, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return base, err
	}
	return ParseOffsets(data, base)
}

func ParseOffsets(data []byte, base Offsets) (Offsets, error) {
	var head struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return base, fmt.Errorf("parse offsets: %w", err)
	}

	o := base
	if known, ok := registry[head.Version]; ok {
		o = known
	}
	if err := json.Unmarshal(data, &o); err != nil {
		return base, fmt.Errorf("parse offsets: %w", err)
	}

	log.Printf("[Offsets] Loaded table %s (spells=%v)", o.Version, o.SpellsEnabled())
	return o, nil
}

// Hex is an address or offset that accepts either a JSON number or a
// "0x"-prefixed string.
type Hex uintptr

func (h Hex) String() string {
	return "0x" + strconv.FormatUint(uint64(h), 16)
}

func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal("0x" + strings.ToUpper(strconv.FormatUint(uint64(h), 16)))
}

func (h *Hex) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var n uint64
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("offset %s: want number or hex string", b)
		}
		*h = Hex(n)
		return nil
	}

	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	n, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return fmt.Errorf("offset %q: %w", s, err)
	}
	*h = Hex(n)
	return nil
}
