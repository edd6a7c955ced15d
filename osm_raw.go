package streetnames

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// nodeData is an OSM node referenced by kept ways
type nodeData struct {
	ID        osm.NodeID
	Lon       float64
	Lat       float64
	elevation float64
}

// OSMDataRaw holds ways and nodes as read from file
type OSMDataRaw struct {
	nodes     map[osm.NodeID]*nodeData
	ways      []*wayData
	waterWays [][]osm.NodeID
}

// newScanner guesses file extension and prepares correct scanner
func newScanner(ctx context.Context, file *os.File, filename string) (OSMScanner, error) {
	ext := filepath.Ext(filename)
	switch ext {
	case ".osm", ".xml":
		return osmxml.New(ctx, file), nil
	case ".pbf":
		return osmpbf.New(ctx, file, 4), nil
	default:
		return nil, errors.Wrapf(ErrUnknownFileExtension, "extension '%s' of file '%s'", ext, filename)
	}
}

func isWaterArea(way *osm.Way) bool {
	if len(way.Nodes) < 4 || way.Nodes[0].ID != way.Nodes[len(way.Nodes)-1].ID {
		return false
	}
	for key, values := range waterTags {
		if _, ok := values[way.Tags.Find(key)]; ok {
			return true
		}
	}
	return false
}

func readOSM(filename string, cfg *OsmConfiguration, logger *zap.Logger) (*OSMDataRaw, error) {
	logger.Info("Opening file", zap.String("file", filename))
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	defer file.Close()

	/* Process ways */
	st := time.Now()
	ways := []*wayData{}
	waterWays := [][]osm.NodeID{}
	nodesSeen := make(map[osm.NodeID]struct{})
	{
		scannerWays, err := newScanner(context.Background(), file, filename)
		if err != nil {
			return nil, err
		}
		defer scannerWays.Close()

		for scannerWays.Scan() {
			obj := scannerWays.Object()
			if obj.ObjectID().Type() != "way" {
				continue
			}
			way := obj.(*osm.Way)
			if isWaterArea(way) {
				ring := make([]osm.NodeID, 0, len(way.Nodes))
				for _, node := range way.Nodes {
					nodesSeen[node.ID] = struct{}{}
					ring = append(ring, node.ID)
				}
				waterWays = append(waterWays, ring)
				continue
			}
			tag := way.Tags.Find(cfg.EntityName)
			if tag == "" || !cfg.CheckTag(tag) {
				continue
			}
			if len(way.Nodes) < 2 {
				continue
			}
			preparedWay := &wayData{
				ID:     way.ID,
				Nodes:  make([]osm.NodeID, 0, len(way.Nodes)),
				TagMap: make(osm.Tags, len(way.Tags)),
			}
			copy(preparedWay.TagMap, way.Tags)
			// Mark way's nodes as seen to remove isolated nodes in further
			for _, node := range way.Nodes {
				nodesSeen[node.ID] = struct{}{}
				preparedWay.Nodes = append(preparedWay.Nodes, node.ID)
			}
			// Call tags flattening to make further processing easier
			preparedWay.processTags(logger)
			preparedWay.processOneway(logger)
			if preparedWay.IsReversed {
				for i, j := 0, len(preparedWay.Nodes)-1; i < j; i, j = i+1, j-1 {
					preparedWay.Nodes[i], preparedWay.Nodes[j] = preparedWay.Nodes[j], preparedWay.Nodes[i]
				}
			}
			ways = append(ways, preparedWay)
		}
		err = scannerWays.Err()
		if err != nil {
			return nil, errors.Wrap(err, "Scanner error on ways")
		}
	}
	logger.Info("Ways processed", zap.Int("ways", len(ways)), zap.Int("water_areas", len(waterWays)), zap.Duration("elapsed", time.Since(st)))

	// Seek file to start
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking after ways scanning")
	}

	/* Process nodes */
	st = time.Now()
	nodes := make(map[osm.NodeID]*nodeData, len(nodesSeen))
	{
		scannerNodes, err := newScanner(context.Background(), file, filename)
		if err != nil {
			return nil, err
		}
		defer scannerNodes.Close()

		for scannerNodes.Scan() {
			obj := scannerNodes.Object()
			if obj.ObjectID().Type() != "node" {
				continue
			}
			node := obj.(*osm.Node)
			if _, ok := nodesSeen[node.ID]; !ok {
				continue
			}
			delete(nodesSeen, node.ID)
			elevation := 0.0
			if ele := numberRegExp.FindString(node.Tags.Find("ele")); ele != "" {
				elevation, _ = strconv.ParseFloat(ele, 64)
			}
			nodes[node.ID] = &nodeData{
				ID:        node.ID,
				Lon:       node.Lon,
				Lat:       node.Lat,
				elevation: elevation,
			}
		}
		err = scannerNodes.Err()
		if err != nil {
			return nil, errors.Wrap(err, "Scanner error on nodes")
		}
	}
	if len(nodesSeen) > 0 {
		logger.Warn("Some nodes referenced by ways are missing in file", zap.Int("missing", len(nodesSeen)))
	}
	logger.Info("Nodes processed", zap.Int("nodes", len(nodes)), zap.Duration("elapsed", time.Since(st)))

	return &OSMDataRaw{
		nodes:     nodes,
		ways:      ways,
		waterWays: waterWays,
	}, nil
}
