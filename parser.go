package streetnames

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	defaultLayerHeight       = 5.0
	defaultStraightTolerance = 0.02
)

// Parser holds parameters of OSM import
type Parser struct {
	filename          string
	cfg               *OsmConfiguration
	layerHeight       float64
	straightTolerance float64
	logger            *zap.Logger
}

func (parser *Parser) String() string {
	return fmt.Sprintf(`
Network parser parameters:
	filename: '%s'
	entity: '%s'
	tags: '%s'
	cost_type: '%s'
	layer_height: %f
	straight_tolerance: %f
	`,
		parser.filename,
		parser.cfg.EntityName,
		strings.Join(parser.cfg.Tags, ","),
		parser.cfg.CostType,
		parser.layerHeight,
		parser.straightTolerance,
	)
}

func NewParser(fileName string, cfg *OsmConfiguration, options ...func(*Parser)) *Parser {
	if cfg == nil {
		cfg = &OsmConfiguration{}
	}
	if cfg.EntityName == "" {
		cfg.EntityName = "highway"
	}
	parser := &Parser{
		filename:          fileName,
		cfg:               cfg,
		layerHeight:       defaultLayerHeight,
		straightTolerance: defaultStraightTolerance,
		logger:            zap.L(),
	}
	for _, option := range options {
		option(parser)
	}
	return parser
}

// WithLayerHeight sets elevation of one `layer` step for bridges (meters)
func WithLayerHeight(height float64) func(*Parser) {
	return func(parser *Parser) {
		parser.layerHeight = height
	}
}

// WithStraightTolerance sets how much longer than its chord a segment may be and still count as straight
func WithStraightTolerance(tolerance float64) func(*Parser) {
	return func(parser *Parser) {
		parser.straightTolerance = tolerance
	}
}

// WithParserLogger sets logger. Default is zap.L()
func WithParserLogger(logger *zap.Logger) func(*Parser) {
	return func(parser *Parser) {
		if logger != nil {
			parser.logger = logger
		}
	}
}

// ReadOSM reads the file and builds road network out of it
func (parser *Parser) ReadOSM() (*OSMNetwork, error) {
	data, err := readOSM(parser.filename, parser.cfg, parser.logger)
	if err != nil {
		return nil, err
	}
	return data.buildNetwork(parser)
}
