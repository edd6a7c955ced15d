package streetnames

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Namer answers name requests for segments of a network. Names are cached until InvalidateAll is called.
//
// Calls are serialised, so a Namer may be shared between goroutines, but the caller still has to invalidate
// the cache before asking for names after the network has changed
type Namer struct {
	net        NetworkQuery
	logger     *zap.Logger
	variation  int
	prefixPath string
	suffixPath string

	rules     *RuleTables
	rulesOnce sync.Once
	generator *NameGenerator

	mu    sync.Mutex
	cache *NameCache
	stats NamerStats
}

// NamerStats counts cache usage of a Namer
type NamerStats struct {
	Hits          int
	Misses        int
	Invalidations int
	// MotorwayMerges counts identity seeds rewritten by the motorway matcher
	MotorwayMerges int
}

func (namer *Namer) String() string {
	return fmt.Sprintf(`
Namer parameters:
	prefixes file: '%s'
	suffixes file: '%s'
	variation: %d
	preloaded rules?: %t
	`,
		namer.prefixPath,
		namer.suffixPath,
		namer.variation,
		namer.rules != nil,
	)
}

// NewNamer returns namer over given network. Without WithRules or WithRuleFiles every name is built from sentinel entries
func NewNamer(net NetworkQuery, options ...func(*Namer)) *Namer {
	namer := &Namer{
		net:    net,
		logger: zap.L(),
		cache:  NewNameCache(),
	}
	for _, option := range options {
		option(namer)
	}
	return namer
}

// WithRules sets prebuilt rule tables
func WithRules(rules *RuleTables) func(*Namer) {
	return func(namer *Namer) {
		namer.rules = rules
	}
}

// WithRuleFiles sets CSV rule tables. They are loaded on first name request
func WithRuleFiles(prefixPath, suffixPath string) func(*Namer) {
	return func(namer *Namer) {
		namer.prefixPath = prefixPath
		namer.suffixPath = suffixPath
	}
}

// WithVariation sets the per-session offset rotating the prefix list
func WithVariation(variation int) func(*Namer) {
	return func(namer *Namer) {
		namer.variation = variation
	}
}

// WithLogger sets logger. Default is zap.L()
func WithLogger(logger *zap.Logger) func(*Namer) {
	return func(namer *Namer) {
		if logger != nil {
			namer.logger = logger
		}
	}
}

// nameGenerator loads rule tables once and returns generator over them
func (namer *Namer) nameGenerator() *NameGenerator {
	namer.rulesOnce.Do(func() {
		if namer.rules == nil {
			rules, err := LoadRuleTables(namer.prefixPath, namer.suffixPath, namer.logger)
			if err != nil {
				namer.logger.Error("Can't load rule tables, falling back to sentinel rules", zap.Error(err))
				rules = NewRuleTables([]*PrefixRule{missingPrefixRule()}, nil)
			}
			namer.rules = rules
		}
		namer.generator = NewNameGenerator(namer.rules, namer.variation, namer.logger)
	})
	return namer.generator
}

// GenerateName returns name of the road the segment belongs to in given elevation context.
// Empty string means the road stays unnamed. Invalid segments get empty names
func (namer *Namer) GenerateName(segmentID SegmentID, elevation ElevationContext) string {
	namer.mu.Lock()
	defer namer.mu.Unlock()

	if name, ok := namer.cache.Find(segmentID, elevation); ok {
		namer.stats.Hits++
		return name
	}
	if !namer.net.IsValidSegment(segmentID) {
		return ""
	}
	namer.stats.Misses++

	road := NewRoad(namer.net, segmentID)
	if road.Category == CATEGORY_MOTORWAY && matchMotorway(namer.net, road, namer.logger) {
		namer.stats.MotorwayMerges++
	}
	name := namer.nameGenerator().Generate(road, elevation)
	namer.cache.Store(road, name, elevation)
	return name
}

// InvalidateAll drops every cached name. It must be called after the network topology or identity seeds change
func (namer *Namer) InvalidateAll() {
	namer.mu.Lock()
	defer namer.mu.Unlock()
	namer.cache.ClearAll()
	namer.stats.Invalidations++
	namer.logger.Debug("Name cache invalidated")
}

// AffectedSegments expands changed segments onto every segment of the roads they belong to.
// Invalid segments are skipped. Result keeps the order in which roads were discovered
func (namer *Namer) AffectedSegments(segmentIDs []SegmentID) []SegmentID {
	namer.mu.Lock()
	defer namer.mu.Unlock()

	affected := []SegmentID{}
	seen := make(map[SegmentID]struct{})
	for _, segmentID := range segmentIDs {
		if _, ok := seen[segmentID]; ok {
			continue
		}
		if !namer.net.IsValidSegment(segmentID) {
			continue
		}
		road := DiscoverRoad(namer.net, segmentID)
		for _, memberID := range road.Segments {
			if _, ok := seen[memberID]; ok {
				continue
			}
			seen[memberID] = struct{}{}
			affected = append(affected, memberID)
		}
	}
	return affected
}

// Stats returns cache usage counters
func (namer *Namer) Stats() NamerStats {
	namer.mu.Lock()
	defer namer.mu.Unlock()
	return namer.stats
}
