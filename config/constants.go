package config

import "time"

// Fallback unit radius used for both attacker and target when no
// per-name radius is known.
const UNIT_RADIUS = 65.0

// Entity list settings
const (
	MAX_LIST_ENTRIES = 512
	NAME_MAX_LEN     = 50
	SPELL_SLOTS      = 4
)

// Screen settings
const (
	SCREEN_WIDTH  = 1024
	SCREEN_HEIGHT = 768

	RADAR_RADIUS = 280
	RADAR_RANGE  = 2000.0
)

// Poll settings
const (
	POLL_TPS          = 60
	LOG_SLOW_POLL     = 8 * time.Millisecond
	DEFAULT_GAME_PROC = "League of Legends.exe"
)

// SpellKeys lists every slot the client exposes. Only the first
// SPELL_SLOTS are resolved through the spell book.
var SpellKeys = [...]string{"Q", "W", "E", "R", "D", "F"}

var Info = struct {
	ScriptVersion    string
	SettingsFile     string
	OffsetsFile      string
	RadiusFile       string
	ClientExecutable string
	GameExecutable   string
}{
	ScriptVersion:    "13.20",
	SettingsFile:     "settings.json",
	OffsetsFile:      "offsets.json",
	RadiusFile:       "radius.json",
	ClientExecutable: "LeagueClient.exe",
	GameExecutable:   DEFAULT_GAME_PROC,
}
