package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"

	"orbwalker/config"
	"orbwalker/targeting"
)

type Settings struct {
	ClientVersion string `json:"client_version"`
	OffsetsFile   string `json:"offsets_file"`
	RadiusFile    string `json:"radius_file"`
	Strategy      string `json:"strategy"`
	DrawingsMode  bool   `json:"drawings_mode"`
	Precision     bool   `json:"precision_radius"`
	LastHit       bool   `json:"last_hit"`
	PollTPS       int    `json:"poll_tps"`

	mutex sync.RWMutex
}

func Default() *Settings {
	return &Settings{
		ClientVersion: config.Info.ScriptVersion,
		OffsetsFile:   config.Info.OffsetsFile,
		RadiusFile:    config.Info.RadiusFile,
		Strategy:      targeting.ByHealth.String(),
		LastHit:       true,
		PollTPS:       config.POLL_TPS,
	}
}

// Load reads filename. A missing file is created with defaults and is
// not an error.
func Load(filename string) (*Settings, error) {
	s := Default()
	if err := s.LoadFromFile(filename); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[Settings] %s not found, creating default", filename)
			return s, s.SaveToFile(filename)
		}
		return s, err
	}
	return s, nil
}

func (s *Settings) LoadFromFile(filename string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}
	if s.PollTPS <= 0 {
		s.PollTPS = config.POLL_TPS
	}

	log.Printf("[Settings] strategy=%s drawings=%v precision=%v client=%s",
		s.Strategy, s.DrawingsMode, s.Precision, s.ClientVersion)
	return nil
}

func (s *Settings) SaveToFile(filename string) error {
	s.mutex.RLock()
	data, err := json.MarshalIndent(s, "", "  ")
	s.mutex.RUnlock()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

func (s *Settings) SetStrategy(name string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Strategy = name
}

func (s *Settings) SetDrawingsMode(on bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.DrawingsMode = on
}

func (s *Settings) Mode() targeting.Mode {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.DrawingsMode {
		return targeting.ModeDrawings
	}
	return targeting.ModeAutomation
}

func (s *Settings) RangeModel() targeting.RangeModel {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.Precision {
		return targeting.PrecisionRadius
	}
	return targeting.FallbackRadius
}

func (s *Settings) ParsedStrategy() (targeting.Strategy, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return targeting.ParseStrategy(s.Strategy)
}

// Offsets resolves the table for ClientVersion, overlaid with OffsetsFile
// when that file exists.
func (s *Settings) Offsets() (config.Offsets, error) {
	s.mutex.RLock()
	version, file := s.ClientVersion, s.OffsetsFile
	s.mutex.RUnlock()

	base, err := config.Lookup(version)
	if err != nil {
		return base, err
	}
	if file == "" {
		return base, nil
	}

	off, err := config.LoadOffsets(file, base)
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	return off, err
}

// Radius loads the precision table. A missing file yields an empty table,
// which falls back to the default radius everywhere.
func (s *Settings) Radius() (targeting.RadiusTable, error) {
	s.mutex.RLock()
	file := s.RadiusFile
	s.mutex.RUnlock()

	if file == "" {
		return targeting.RadiusTable{}, nil
	}
	r, err := targeting.LoadRadius(file)
	if errors.Is(err, fs.ErrNotExist) {
		return targeting.RadiusTable{}, nil
	}
	return r, err
}
