package streetnames

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleRows(t *testing.T) []NamedSegment {
	t.Helper()
	net := importSample(t)
	namer := NewNamer(net, WithRules(namerTestRules()), WithLogger(zap.NewNop()))
	return CollectNamedSegments(namer, net)
}

func TestCollectNamedSegments(t *testing.T) {
	rows := sampleRows(t)
	require.Len(t, rows, 5)

	assert.Equal(t, rows[0].Name, rows[1].Name)
	assert.Equal(t, "High Street", rows[0].TagName)
	assert.Equal(t, CATEGORY_MINOR_URBAN, rows[0].Category)
	assert.Equal(t, ELEVATION_GROUND, rows[0].Elevation)

	bridge := rows[4]
	assert.Equal(t, ELEVATION_BRIDGE, bridge.Elevation)
	assert.True(t, strings.HasSuffix(bridge.Name, " Bridge"), bridge.Name)
	assert.True(t, bridge.Features.Has(FEATURE_CROSSES_WATER))
	for _, row := range rows {
		assert.NotEmpty(t, row.Name)
		assert.NotEmpty(t, row.Geometry)
	}
}

func TestExportNamesCSV(t *testing.T) {
	rows := sampleRows(t)

	var buf bytes.Buffer
	require.NoError(t, ExportNamesCSV(&buf, rows, "wkt"))

	reader := csv.NewReader(&buf)
	reader.Comma = ';'
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, []string{"segment_id", "osm_way_id", "osm_name", "elevation", "name", "category", "features", "length_meters", "geom"}, records[0])
	assert.Equal(t, "0", records[1][0])
	assert.Equal(t, "100", records[1][1])
	assert.Equal(t, rows[0].Name, records[1][4])
	assert.Equal(t, "minor_urban", records[1][5])
	assert.True(t, strings.HasPrefix(records[1][8], "LINESTRING("), records[1][8])
	assert.Equal(t, "bridge", records[5][3])
}

func TestExportNamesCSVGeoJSONGeometry(t *testing.T) {
	rows := sampleRows(t)

	var buf bytes.Buffer
	require.NoError(t, ExportNamesCSV(&buf, rows, "geojson"))

	reader := csv.NewReader(&buf)
	reader.Comma = ';'
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	geometry, err := geojson.UnmarshalGeometry([]byte(records[1][8]))
	require.NoError(t, err)
	assert.True(t, geometry.IsLineString())
	assert.Len(t, geometry.LineString, 2)
}

func TestExportNamesCSVUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := ExportNamesCSV(&buf, nil, "kml")
	assert.True(t, errors.Is(err, ErrUnknownGeomFormat), "%v", err)
	assert.Zero(t, buf.Len())
}

func TestExportGeoJSON(t *testing.T) {
	rows := sampleRows(t)

	var buf bytes.Buffer
	require.NoError(t, ExportGeoJSON(&buf, rows))

	collection, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, collection.Features, 5)
	feature := collection.Features[4]
	assert.True(t, feature.Geometry.IsLineString())
	assert.Equal(t, rows[4].Name, feature.PropertyMustString("name"))
	assert.Equal(t, "bridge", feature.PropertyMustString("elevation"))
	assert.InDelta(t, 104, feature.PropertyMustFloat64("osm_way_id"), 1e-9)
}

func TestPrepareGeometryStrings(t *testing.T) {
	line := orb.LineString{{37.6, 55.75}, {37.602, 55.75}}
	assert.Equal(t, "LINESTRING(37.6 55.75,37.602 55.75)", PrepareWKTLinestring(line))
	assert.Equal(t, "POINT(37.6 55.75)", PrepareWKTPoint(line[0]))

	str, err := PrepareGeoJSONLinestring(line)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"LineString","coordinates":[[37.6,55.75],[37.602,55.75]]}`, str)

	str, err = PrepareGeoJSONPoint(line[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[37.6,55.75]}`, str)
}
