package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	OSM    OSMConfig    `yaml:"osm" mapstructure:"osm"`
	Rules  RulesConfig  `yaml:"rules" mapstructure:"rules"`
	Naming NamingConfig `yaml:"naming" mapstructure:"naming"`
	Export ExportConfig `yaml:"export" mapstructure:"export"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// OSMConfig configures network import.
type OSMConfig struct {
	File        string   `yaml:"file" mapstructure:"file"`
	Tags        []string `yaml:"tags" mapstructure:"tags"`
	CostType    string   `yaml:"cost_type" mapstructure:"cost_type"`
	LayerHeight float64  `yaml:"layer_height" mapstructure:"layer_height"`
}

// RulesConfig points to prefix and suffix tables.
type RulesConfig struct {
	Prefixes string `yaml:"prefixes" mapstructure:"prefixes"`
	Suffixes string `yaml:"suffixes" mapstructure:"suffixes"`
}

// NamingConfig holds name generation parameters.
type NamingConfig struct {
	// Variation rotates the prefix list. Different values give a different set of names for the same map
	Variation int `yaml:"variation" mapstructure:"variation"`
}

// ExportConfig configures output files.
type ExportConfig struct {
	Out        string `yaml:"out" mapstructure:"out"`
	GeoJSON    string `yaml:"geojson" mapstructure:"geojson"`
	GeomFormat string `yaml:"geom_format" mapstructure:"geom_format"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

var defaultTags = []string{"motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "living_street", "service", "unclassified", "pedestrian", "footway"}

// Load reads configuration from streetnames.yaml (optional) and STREETNAMES_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("streetnames")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("STREETNAMES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("osm.file", "map.osm.pbf")
	v.SetDefault("osm.tags", defaultTags)
	v.SetDefault("osm.cost_type", "meters")
	v.SetDefault("osm.layer_height", 5.0)
	v.SetDefault("rules.prefixes", "data/prefixes.csv")
	v.SetDefault("rules.suffixes", "data/suffixes.csv")
	v.SetDefault("naming.variation", 0)
	v.SetDefault("export.out", "names.csv")
	v.SetDefault("export.geojson", "")
	v.SetDefault("export.geom_format", "wkt")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return errors.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
