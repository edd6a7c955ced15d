package streetnames

import (
	"strings"

	"github.com/pkg/errors"
)

// OsmConfiguration Allows to filter ways by certain tags from OSM data
type OsmConfiguration struct {
	EntityName string // Currently we support 'highway' only
	// Tags lists allowed values of EntityName. Empty list allows every known highway type
	Tags []string
	// CostType is the unit of route weights: meters, kilometers, seconds or hours
	CostType string
}

// CheckTag Checks if incoming tag is represented in configuration
func (cfg *OsmConfiguration) CheckTag(tag string) bool {
	if len(cfg.Tags) == 0 {
		return getHighwayType(tag) != HIGHWAY_UNDEFINED
	}
	for i := range cfg.Tags {
		if cfg.Tags[i] == tag {
			return true
		}
	}
	return false
}

// ParseCostType parsing flag cost_type
func (cfg *OsmConfiguration) ParseCostType(tag string) error {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "", "meters", "m":
		cfg.CostType = "meters"
	case "kilometers", "km":
		cfg.CostType = "kilometers"
	case "hours", "h":
		cfg.CostType = "hours"
	case "seconds", "s":
		cfg.CostType = "seconds"
	default:
		return errors.Errorf("bad value '%s' for cost_type", tag)
	}
	return nil
}

// cost converts segment length (meters) and lane speed into route weight
func (cfg *OsmConfiguration) cost(length float64, lanes LaneProfile) float64 {
	kmh := lanes.Speed * 50.0
	switch cfg.CostType {
	case "kilometers":
		return length / 1000.0
	case "hours":
		if kmh <= 0 {
			return length
		}
		return length / 1000.0 / kmh
	case "seconds":
		if kmh <= 0 {
			return length
		}
		return length / (kmh / 3.6)
	default:
		return length
	}
}
