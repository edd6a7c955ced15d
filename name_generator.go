package streetnames

import (
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// motorwayMinLaneLength is the total lane length a motorway needs to get a name
const motorwayMinLaneLength = 2000.0

type suffixListKey struct {
	category RoadCategory
	features RoadFeature
}

// NameGenerator draws names from rule tables. Draws are seeded by the road identity seed, so the same road
// always gets the same name for the same tables and variation
type NameGenerator struct {
	rules    *RuleTables
	prefixes *prefixList
	logger   *zap.Logger

	mu          sync.Mutex
	suffixLists map[suffixListKey]*suffixList
}

// NewNameGenerator returns generator over rule tables. variation rotates the prefix list and is expected
// to be fixed for a session
func NewNameGenerator(rules *RuleTables, variation int, logger *zap.Logger) *NameGenerator {
	if logger == nil {
		logger = zap.L()
	}
	return &NameGenerator{
		rules:       rules,
		prefixes:    newPrefixList(rules.Prefixes, variation),
		logger:      logger,
		suffixLists: make(map[suffixListKey]*suffixList),
	}
}

// Generate returns name for a classified road in given elevation context. Empty name means the road
// should stay unnamed
func (generator *NameGenerator) Generate(road *Road, elevation ElevationContext) string {
	if road.Category == CATEGORY_NONE {
		return ""
	}
	if road.Category == CATEGORY_MOTORWAY {
		if road.LaneLength < motorwayMinLaneLength {
			return ""
		}
		return MotorwayName(road.NameSeed)
	}

	category := road.Category
	if forced := elevation.category(); forced != CATEGORY_NONE {
		category = forced
	}

	suffix := generator.suffix(category, road.Features, newRandomizer(road.NameSeed, streamSuffix))
	prefix := generator.prefix(road, category, suffix, newRandomizer(road.NameSeed, streamPrefix))
	if prefix.SelfContained {
		return prefix.Text()
	}
	return prefix.Text() + " " + suffix
}

// MotorwayName returns motorway number for identity seed: "A<n>(M)" for every seventh seed, "M<n>" otherwise.
// The smaller of two draws is used so low numbers are more common
func MotorwayName(seed NameSeed) string {
	rnd := newRandomizer(seed, streamMotorway)
	if seed%7 == 0 {
		return "A" + strconv.Itoa(int(min(rnd.between(10, 999), rnd.between(10, 999)))) + "(M)"
	}
	return "M" + strconv.Itoa(int(min(rnd.between(1, 179), rnd.between(1, 179))))
}

func (generator *NameGenerator) suffix(category RoadCategory, features RoadFeature, rnd *randomizer) string {
	list := generator.suffixList(category, features)
	return list.pick(rnd.uint32())
}

// suffixList returns cached suffix distribution for category and features
func (generator *NameGenerator) suffixList(category RoadCategory, features RoadFeature) *suffixList {
	key := suffixListKey{category, features}
	generator.mu.Lock()
	defer generator.mu.Unlock()
	if list, ok := generator.suffixLists[key]; ok {
		return list
	}
	list := newSuffixList(generator.rules.Suffixes, category, features)
	if list.empty() {
		generator.logger.Warn("No suitable suffixes", zap.Stringer("category", category), zap.Stringer("features", features))
	}
	generator.suffixLists[key] = list
	return list
}

// prefix draws prefixes until one fits the road and does not repeat the suffix. If none fits within the
// attempt budget, the last drawn prefix is used
func (generator *NameGenerator) prefix(road *Road, category RoadCategory, suffix string, rnd *randomizer) *PrefixRule {
	upperSuffix := strings.ToUpper(suffix)
	candidates := generator.prefixes.candidates(rnd)
	for {
		rule, ok := candidates.next()
		if !ok {
			generator.logger.Warn("Could not find suitable prefix", zap.Uint16("seed", uint16(road.NameSeed)), zap.String("suffix", suffix), zap.Stringer("category", category), zap.Stringer("features", road.Features))
			return rule
		}
		if strings.Contains(strings.ToUpper(rule.Text()), upperSuffix) {
			continue
		}
		if rule.IsValidFor(road.Features, category) {
			return rule
		}
	}
}
