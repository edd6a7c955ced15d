package streetnames

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	earthRadius = 6370.986884258304
	pi180       = math.Pi / 180.0
	pi180Rev    = 180.0 / math.Pi
)

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// radiansTodegrees r = deg  * 180 / pi
func radiansTodegrees(d float64) float64 {
	return d * pi180Rev
}

func abs(x float64) float64 {
	return math.Abs(x)
}

func add(p, q orb.Point) orb.Point {
	return orb.Point{p[0] + q[0], p[1] + q[1]}
}

func sub(p, q orb.Point) orb.Point {
	return orb.Point{p[0] - q[0], p[1] - q[1]}
}

func scale(p orb.Point, k float64) orb.Point {
	return orb.Point{p[0] * k, p[1] * k}
}

func negate(p orb.Point) orb.Point {
	return orb.Point{-p[0], -p[1]}
}

func dot(p, q orb.Point) float64 {
	return p[0]*q[0] + p[1]*q[1]
}

func magnitude(p orb.Point) float64 {
	return math.Sqrt(p[0]*p[0] + p[1]*p[1])
}

// normalize returns unit vector of the same direction. Zero vector stays zero
func normalize(p orb.Point) orb.Point {
	l := magnitude(p)
	if l == 0 {
		return orb.Point{}
	}
	return orb.Point{p[0] / l, p[1] / l}
}

// rotate90Clockwise rotates vector by -90 degrees
func rotate90Clockwise(v orb.Point) orb.Point {
	return orb.Point{v[1], -v[0]}
}

// rotate90CounterClockwise rotates vector by +90 degrees
func rotate90CounterClockwise(v orb.Point) orb.Point {
	return orb.Point{-v[1], v[0]}
}

// angleDeg returns unsigned angle between two vectors in range [0; 180] degrees.
// Returns 0 if any of vectors has zero length
func angleDeg(p, q orb.Point) float64 {
	denominator := magnitude(p) * magnitude(q)
	if denominator < 1e-15 {
		return 0
	}
	cos := dot(p, q) / denominator
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return radiansTodegrees(math.Acos(cos))
}

// distanceSquared returns squared euclidean distance between two planar points
func distanceSquared(p, q orb.Point) float64 {
	return planar.DistanceSquared(p, q)
}

// boundAspectRatio returns min(width, height) / max(width, height) for given bound
func boundAspectRatio(bound orb.Bound) float64 {
	width := bound.Max[0] - bound.Min[0]
	height := bound.Max[1] - bound.Min[1]
	longest := math.Max(width, height)
	if longest == 0 {
		return 0
	}
	return math.Min(width, height) / longest
}

// rotatedBound returns bounding box of points after rotating them by angle (radians) around the origin
func rotatedBound(points []orb.Point, angle float64) orb.Bound {
	sin, cos := math.Sincos(angle)
	var bound orb.Bound
	for i, p := range points {
		rotated := orb.Point{p[0]*cos - p[1]*sin, p[1]*cos + p[0]*sin}
		if i == 0 {
			bound = orb.Bound{Min: rotated, Max: rotated}
			continue
		}
		bound = bound.Extend(rotated)
	}
	return bound
}

// projectEquirectangular projects WGS84 point onto a local plane (meters) around given origin
func projectEquirectangular(origin, pt orb.Point) orb.Point {
	cosLat := math.Cos(degreesToRadians(origin.Lat()))
	x := degreesToRadians(pt.Lon()-origin.Lon()) * cosLat * earthRadius * 1000.0
	y := degreesToRadians(pt.Lat()-origin.Lat()) * earthRadius * 1000.0
	return orb.Point{x, y}
}

// getLength returns length for given line (assuming points of the line are Euclidean)
func getLength(line orb.LineString) float64 {
	return planar.Length(line)
}

// findMiddlePoint returns middle point for given line (not center point)
func findMiddlePoint(line orb.LineString) orb.Point {
	if len(line) == 1 {
		return line[0]
	}
	halfDistance := getLength(line) / 2.0
	cl := 0.0
	for i := 1; i < len(line); i++ {
		ol := cl
		tmpDist := planar.Distance(line[i-1], line[i])
		cl += tmpDist
		if halfDistance <= cl && tmpDist > 0 {
			return pointOnSegmentByFraction(line[i-1], line[i], (halfDistance-ol)/tmpDist)
		}
	}
	return line[len(line)-1]
}

// pointOnSegmentByFraction returns a point on given segment by fraction of its length
func pointOnSegmentByFraction(p, q orb.Point, fraction float64) orb.Point {
	return orb.Point{
		(1-fraction)*p[0] + (fraction * q[0]),
		(1-fraction)*p[1] + (fraction * q[1]),
	}
}

// isLineStraight reports whether path length exceeds chord length by no more than given tolerance
func isLineStraight(line orb.LineString, tolerance float64) bool {
	if len(line) <= 2 {
		return true
	}
	chord := planar.Distance(line[0], line[len(line)-1])
	if chord == 0 {
		return false
	}
	return getLength(line) <= chord*(1+tolerance)
}
