package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/LdDl/streetnames"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfg *Config

var (
	osmFileFlag string
	outFlag     string
)

var rootCmd = &cobra.Command{
	Use:   "streetnames",
	Short: "Procedural street names for OpenStreetMap road networks",
	Long:  "Reconstructs named roads from OSM ways, classifies their shape and surroundings and generates names from weighted prefix/suffix tables.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := Load()
		if err != nil {
			return errors.Wrap(err, "load config")
		}
		cfg = c
		if cmd.Flags().Changed("file") {
			cfg.OSM.File = osmFileFlag
		}
		if cmd.Flags().Changed("out") {
			cfg.Export.Out = outFlag
		}

		if err := InitLogger(cfg.Log); err != nil {
			return errors.Wrap(err, "init logger")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Generate names for every segment and export them",
	RunE: func(cmd *cobra.Command, args []string) error {
		net, err := importNetwork()
		if err != nil {
			return err
		}
		namer := newNamer(net)
		rows := streetnames.CollectNamedSegments(namer, net)

		file, err := os.Create(cfg.Export.Out)
		if err != nil {
			return errors.Wrap(err, "Can't create file")
		}
		defer file.Close()
		if err := streetnames.ExportNamesCSV(file, rows, cfg.Export.GeomFormat); err != nil {
			return errors.Wrap(err, "Can't export names")
		}

		if cfg.Export.GeoJSON != "" {
			geojsonFile, err := os.Create(cfg.Export.GeoJSON)
			if err != nil {
				return errors.Wrap(err, "Can't create file")
			}
			defer geojsonFile.Close()
			if err := streetnames.ExportGeoJSON(geojsonFile, rows); err != nil {
				return errors.Wrap(err, "Can't export GeoJSON")
			}
		}

		stats := namer.Stats()
		zap.L().Info("Names exported",
			zap.String("file", cfg.Export.Out),
			zap.Int("segments", len(rows)),
			zap.Int("cache_hits", stats.Hits),
			zap.Int("cache_misses", stats.Misses),
			zap.Int("motorway_merges", stats.MotorwayMerges),
		)
		return nil
	},
}

var routeCmd = &cobra.Command{
	Use:   "route <from_osm_node> <to_osm_node>",
	Short: "Find shortest path between two OSM nodes and print road names along it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.Wrap(err, "Bad source node")
		}
		to, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return errors.Wrap(err, "Bad target node")
		}

		net, err := importNetwork()
		if err != nil {
			return err
		}
		router, err := streetnames.BuildRouter(net, newNamer(net))
		if err != nil {
			return errors.Wrap(err, "Can't build router")
		}
		route, err := router.Route(osm.NodeID(from), osm.NodeID(to))
		if err != nil {
			return err
		}
		fmt.Printf("Cost: %f (%s)\n", route.Cost, cfg.OSM.CostType)
		fmt.Printf("Segments: %d\n", len(route.Segments))
		fmt.Printf("Via: %s\n", strings.Join(route.Names, " -> "))
		return nil
	},
}

func importNetwork() (*streetnames.OSMNetwork, error) {
	osmCfg := streetnames.OsmConfiguration{
		EntityName: "highway", // Currently we do not support others
		Tags:       cfg.OSM.Tags,
	}
	if err := osmCfg.ParseCostType(cfg.OSM.CostType); err != nil {
		return nil, errors.Wrap(err, "Bad configuration")
	}
	net, err := streetnames.ImportFromOSMFile(cfg.OSM.File, &osmCfg,
		streetnames.WithLayerHeight(cfg.OSM.LayerHeight),
		streetnames.WithParserLogger(zap.L()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "Can't import OSM file")
	}
	return net, nil
}

func newNamer(net *streetnames.OSMNetwork) *streetnames.Namer {
	return streetnames.NewNamer(net,
		streetnames.WithRuleFiles(cfg.Rules.Prefixes, cfg.Rules.Suffixes),
		streetnames.WithVariation(cfg.Naming.Variation),
		streetnames.WithLogger(zap.L()),
	)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&osmFileFlag, "file", "", "OSM file (.osm, .xml or .pbf). Overrides osm.file")
	namesCmd.Flags().StringVar(&outFlag, "out", "", "CSV file for generated names. Overrides export.out")
	rootCmd.AddCommand(namesCmd, routeCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
