package streetnames

import (
	"encoding/csv"
	"fmt"
	"io"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// NamedSegment is a segment together with its generated name and the classification of its road
type NamedSegment struct {
	SegmentID SegmentID
	WayID     osm.WayID
	// TagName is the `name` tag of the source way
	TagName   string
	Elevation ElevationContext
	Name      string
	Category  RoadCategory
	Features  RoadFeature
	Length    float64
	// Geometry is in WGS84
	Geometry orb.LineString
}

// CollectNamedSegments names every segment of the network in its own elevation context
func CollectNamedSegments(namer *Namer, net *OSMNetwork) []NamedSegment {
	rows := make([]NamedSegment, 0, net.SegmentsNum())
	roads := make(map[SegmentID]*Road)
	for i := 0; i < net.SegmentsNum(); i++ {
		segmentID := SegmentID(i)
		segment := net.Segment(segmentID)
		elevation := ElevationContextOf(segment)
		name := namer.GenerateName(segmentID, elevation)

		// motorway matching may have rewritten seeds, so roads are rebuilt after naming
		road, ok := roads[segmentID]
		if !ok {
			road = NewRoad(net, segmentID)
			for _, memberID := range road.Segments {
				roads[memberID] = road
			}
		}
		rows = append(rows, NamedSegment{
			SegmentID: segmentID,
			WayID:     net.WayID(segmentID),
			TagName:   net.TagName(segmentID),
			Elevation: elevation,
			Name:      name,
			Category:  road.Category,
			Features:  road.Features,
			Length:    segment.Length,
			Geometry:  net.Geometry(segmentID),
		})
	}
	return rows
}

// ExportNamesCSV writes rows as ';'-separated CSV. geomFormat is either "wkt" or "geojson"
func ExportNamesCSV(w io.Writer, rows []NamedSegment, geomFormat string) error {
	if geomFormat != "wkt" && geomFormat != "geojson" {
		return errors.Wrapf(ErrUnknownGeomFormat, "'%s'", geomFormat)
	}
	writer := csv.NewWriter(w)
	writer.Comma = ';'

	err := writer.Write([]string{"segment_id", "osm_way_id", "osm_name", "elevation", "name", "category", "features", "length_meters", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, row := range rows {
		geomStr := PrepareWKTLinestring(row.Geometry)
		if geomFormat == "geojson" {
			geomStr, err = PrepareGeoJSONLinestring(row.Geometry)
			if err != nil {
				return errors.Wrapf(err, "Segment %d", row.SegmentID)
			}
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", row.SegmentID),
			fmt.Sprintf("%d", row.WayID),
			row.TagName,
			row.Elevation.String(),
			row.Name,
			row.Category.String(),
			row.Features.String(),
			fmt.Sprintf("%f", row.Length),
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write segment")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "Can't flush")
}

// ExportGeoJSON writes rows as GeoJSON FeatureCollection of LineStrings
func ExportGeoJSON(w io.Writer, rows []NamedSegment) error {
	collection := geojson.NewFeatureCollection()
	for _, row := range rows {
		feature := geojson.NewLineStringFeature(lineCoordinates(row.Geometry))
		feature.SetProperty("segment_id", row.SegmentID)
		feature.SetProperty("osm_way_id", int64(row.WayID))
		feature.SetProperty("osm_name", row.TagName)
		feature.SetProperty("elevation", row.Elevation.String())
		feature.SetProperty("name", row.Name)
		feature.SetProperty("category", row.Category.String())
		feature.SetProperty("features", row.Features.String())
		feature.SetProperty("length_meters", row.Length)
		collection.AddFeature(feature)
	}
	b, err := collection.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Can't marshal feature collection")
	}
	_, err = w.Write(b)
	return errors.Wrap(err, "Can't write feature collection")
}
