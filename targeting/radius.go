package targeting

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"orbwalker/config"
)

// RadiusTable maps a lower-cased unit name to its gameplay radius.
type RadiusTable map[string]float32

// Get falls back to the default unit radius for unknown names.
func (r RadiusTable) Get(name string) float32 {
	if v, ok := r[strings.ToLower(name)]; ok {
		return v
	}
	return config.UNIT_RADIUS
}

func LoadRadius(filename string) (RadiusTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseRadius(data)
}

func ParseRadius(data []byte) (RadiusTable, error) {
	var raw map[string]float32
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse radius table: %w", err)
	}
	out := make(RadiusTable, len(raw))
	for k, v := range raw {
		out[strings.ToLower(k)] = v
	}
	return out, nil
}
