package streetnames

// NameCache keeps generated names per segment, separately for every elevation context.
// It is cleared as a whole whenever the network changes
type NameCache struct {
	names [elevationContextsNum]map[SegmentID]string
}

// NewNameCache returns empty cache
func NewNameCache() *NameCache {
	cache := &NameCache{}
	cache.ClearAll()
	return cache
}

// Find returns cached name of the segment in given context
func (cache *NameCache) Find(segmentID SegmentID, elevation ElevationContext) (string, bool) {
	if elevation >= elevationContextsNum {
		return "", false
	}
	name, ok := cache.names[elevation][segmentID]
	return name, ok
}

// Store caches name for every segment of the road in given context. Unknown contexts are not cached
func (cache *NameCache) Store(road *Road, name string, elevation ElevationContext) {
	if elevation >= elevationContextsNum {
		return
	}
	for _, segmentID := range road.Segments {
		cache.names[elevation][segmentID] = name
	}
}

// ClearAll drops every cached name
func (cache *NameCache) ClearAll() {
	for i := range cache.names {
		cache.names[i] = make(map[SegmentID]string)
	}
}

// Len returns number of cached names in given context
func (cache *NameCache) Len(elevation ElevationContext) int {
	if elevation >= elevationContextsNum {
		return 0
	}
	return len(cache.names[elevation])
}
