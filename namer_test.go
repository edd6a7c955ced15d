package streetnames

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func namerTestRules() *RuleTables {
	return NewRuleTables(
		[]*PrefixRule{NewPrefixRule("Church", 2), NewPrefixRule("Mill", 1), NewPrefixRule("Victoria", 1)},
		[]*SuffixRule{
			testSuffixRule("Street", getCategorySet("URBAN"), 3),
			testSuffixRule("Road", getCategorySet("URBAN"), 1),
			testSuffixRule("Bridge", getCategorySet("BRIDGE"), 1),
			testSuffixRule("Tunnel", getCategorySet("TUNNEL"), 1),
		},
	)
}

// namerTestNetwork has road 1 with three segments and road 2 with one segment crossing it
func namerTestNetwork() (*testNetwork, []SegmentID, SegmentID) {
	net := newTestNetwork()
	road := net.addPolyline(1, minorUrbanLanes, orb.Point{0, 0}, orb.Point{100, 0}, orb.Point{200, 0}, orb.Point{300, 0})
	net.segments[road[1]].Elevated = true
	other := net.addSegment(net.segments[road[0]].EndNode, net.addNode(100, 100), 2, minorUrbanLanes)
	return net, road, other
}

func TestNamerCachesWholeRoad(t *testing.T) {
	net, road, _ := namerTestNetwork()
	namer := NewNamer(net, WithRules(namerTestRules()), WithLogger(zap.NewNop()))

	name := namer.GenerateName(road[0], ELEVATION_GROUND)
	require.NotEmpty(t, name)
	for _, segmentID := range road {
		assert.Equal(t, name, namer.GenerateName(segmentID, ELEVATION_GROUND))
	}
	stats := namer.Stats()
	assert.Equal(t, 1, stats.Misses)
	assert.Equal(t, 3, stats.Hits)
}

func TestNamerElevationContexts(t *testing.T) {
	net, road, _ := namerTestNetwork()
	namer := NewNamer(net, WithRules(namerTestRules()), WithLogger(zap.NewNop()))

	ground := namer.GenerateName(road[1], ELEVATION_GROUND)
	bridge := namer.GenerateName(road[1], ELEVATION_BRIDGE)
	tunnel := namer.GenerateName(road[1], ELEVATION_TUNNEL)
	assert.Regexp(t, `^(Church|Mill|Victoria) (Street|Road)$`, ground)
	assert.Regexp(t, `^(Church|Mill|Victoria) Bridge$`, bridge)
	assert.Regexp(t, `^(Church|Mill|Victoria) Tunnel$`, tunnel)
	assert.Equal(t, 3, namer.Stats().Misses)
}

func TestNamerUnknownElevationContext(t *testing.T) {
	net, road, _ := namerTestNetwork()
	namer := NewNamer(net, WithRules(namerTestRules()), WithLogger(zap.NewNop()))

	unknown := ElevationContext(elevationContextsNum)
	var name string
	require.NotPanics(t, func() { name = namer.GenerateName(road[0], unknown) })
	// named like ground, but never cached
	assert.Equal(t, name, namer.GenerateName(road[0], unknown))
	assert.Equal(t, name, namer.GenerateName(road[0], ELEVATION_GROUND))
	assert.Equal(t, 3, namer.Stats().Misses)
	assert.Zero(t, namer.Stats().Hits)
}

func TestNamerInvalidSegment(t *testing.T) {
	net, _, _ := namerTestNetwork()
	namer := NewNamer(net, WithRules(namerTestRules()), WithLogger(zap.NewNop()))

	assert.Empty(t, namer.GenerateName(SegmentID(99), ELEVATION_GROUND))
	assert.Equal(t, NamerStats{}, namer.Stats())
}

func TestNamerInvalidateAll(t *testing.T) {
	net, road, _ := namerTestNetwork()
	namer := NewNamer(net, WithRules(namerTestRules()), WithLogger(zap.NewNop()))

	before := namer.GenerateName(road[0], ELEVATION_GROUND)
	namer.InvalidateAll()
	after := namer.GenerateName(road[0], ELEVATION_GROUND)

	assert.Equal(t, before, after)
	stats := namer.Stats()
	assert.Equal(t, 2, stats.Misses)
	assert.Equal(t, 0, stats.Hits)
	assert.Equal(t, 1, stats.Invalidations)
}

func TestNamerNetworkChange(t *testing.T) {
	net, road, other := namerTestNetwork()
	namer := NewNamer(net, WithRules(namerTestRules()), WithLogger(zap.NewNop()))
	namer.GenerateName(road[0], ELEVATION_GROUND)

	// the crossing street joins road 1
	net.SetNameSeed(other, 1)
	affected := namer.AffectedSegments([]SegmentID{other})
	assert.ElementsMatch(t, append([]SegmentID{other}, road...), affected)

	namer.InvalidateAll()
	name := namer.GenerateName(other, ELEVATION_GROUND)
	for _, segmentID := range road {
		assert.Equal(t, name, namer.GenerateName(segmentID, ELEVATION_GROUND))
	}
}

func TestNamerAffectedSegments(t *testing.T) {
	net, road, other := namerTestNetwork()
	namer := NewNamer(net, WithRules(namerTestRules()), WithLogger(zap.NewNop()))

	affected := namer.AffectedSegments([]SegmentID{road[2], SegmentID(99), other, road[0]})
	require.Len(t, affected, 4)
	assert.ElementsMatch(t, road, affected[:3])
	assert.Equal(t, other, affected[3])
	assert.Empty(t, namer.AffectedSegments(nil))
}

func TestNamerSameNamesAcrossInstances(t *testing.T) {
	net, road, other := namerTestNetwork()
	first := NewNamer(net, WithRules(namerTestRules()), WithVariation(4), WithLogger(zap.NewNop()))
	second := NewNamer(net, WithRules(namerTestRules()), WithVariation(4), WithLogger(zap.NewNop()))

	for _, segmentID := range append(road, other) {
		assert.Equal(t, first.GenerateName(segmentID, ELEVATION_GROUND), second.GenerateName(segmentID, ELEVATION_GROUND))
	}
}

func TestNamerMissingRuleFiles(t *testing.T) {
	net, road, _ := namerTestNetwork()
	dir := t.TempDir()
	namer := NewNamer(net, WithRuleFiles(filepath.Join(dir, "prefixes.csv"), filepath.Join(dir, "suffixes.csv")), WithLogger(zap.NewNop()))

	assert.Equal(t, missingPrefix, namer.GenerateName(road[0], ELEVATION_GROUND))
}

func TestNamerSampleRuleFiles(t *testing.T) {
	net, road, _ := namerTestNetwork()
	namer := NewNamer(net, WithRuleFiles("data/prefixes.csv", "data/suffixes.csv"), WithLogger(zap.NewNop()))

	name := namer.GenerateName(road[0], ELEVATION_GROUND)
	assert.NotEmpty(t, name)
	assert.NotContains(t, name, missingSuffix)
	assert.NotContains(t, name, missingPrefix)
}

func TestNamerMotorwayMerge(t *testing.T) {
	net := newTestNetwork()
	first := net.addPolyline(10, motorwayLanes, orb.Point{0, 0}, orb.Point{1000, 0}, orb.Point{2000, 0})
	second := net.addPolyline(20, motorwayLanes, orb.Point{0, 50}, orb.Point{1000, 50}, orb.Point{2000, 50})
	namer := NewNamer(net, WithRules(namerTestRules()), WithLogger(zap.NewNop()))

	name := namer.GenerateName(first[0], ELEVATION_GROUND)
	assert.Equal(t, MotorwayName(20), name)
	assert.Equal(t, name, namer.GenerateName(second[1], ELEVATION_GROUND))
	assert.Equal(t, NameSeed(20), net.NameSeed(first[1]))
	assert.Equal(t, 1, namer.Stats().MotorwayMerges)
}

func TestNamerConcurrentRequests(t *testing.T) {
	net, road, other := namerTestNetwork()
	namer := NewNamer(net, WithRules(namerTestRules()), WithLogger(zap.NewNop()))
	expected := NewNamer(net, WithRules(namerTestRules()), WithLogger(zap.NewNop())).GenerateName(other, ELEVATION_GROUND)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, segmentID := range road {
				namer.GenerateName(segmentID, ELEVATION_GROUND)
			}
			assert.Equal(t, expected, namer.GenerateName(other, ELEVATION_GROUND))
		}()
	}
	wg.Wait()
	stats := namer.Stats()
	assert.Equal(t, 2, stats.Misses)
	assert.Equal(t, 8*4-2, stats.Hits)
}
