// Package probemap builds a triangulated surface from probed samples
// (e.g. a probe log written by the canon layer) and answers the
// surface Z at any XY inside the probed region.
package probemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fogleman/delaunay"

	"github.com/mastercactapus/gcanon/coord"
)

// barySlack tolerates hits exactly on a shared triangle edge.
const barySlack = 1e-9

// tri caches one Delaunay triangle in barycentric form: the surface
// is p0 + u*e1 + v*e2 with u,v >= 0 and u+v <= 1, so containment and
// Z interpolation come from the same two coordinates.
type tri struct {
	p0     coord.Point
	e1, e2 coord.Point
	invDen float64
}

func newTri(p0, p1, p2 coord.Point) (tri, bool) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	den := e1.X*e2.Y - e1.Y*e2.X
	if math.Abs(den) < 1e-12 {
		// degenerate sliver, drop it
		return tri{}, false
	}
	return tri{p0: p0, e1: e1, e2: e2, invDen: 1 / den}, true
}

// bary returns the barycentric coordinates of (x,y).
func (t tri) bary(x, y float64) (u, v float64) {
	dx := x - t.p0.X
	dy := y - t.p0.Y
	u = (dx*t.e2.Y - dy*t.e2.X) * t.invDen
	v = (dy*t.e1.X - dx*t.e1.Y) * t.invDen
	return u, v
}

func (t tri) contains(u, v float64) bool {
	return u >= -barySlack && v >= -barySlack && u+v <= 1+barySlack
}

func (t tri) z(u, v float64) float64 {
	return t.p0.Z + u*t.e1.Z + v*t.e2.Z
}

type Map struct {
	minX, minY, maxX, maxY float64
	triangles              []tri
}

// New triangulates the probed points.
func New(points []coord.Point) (*Map, error) {
	if len(points) < 3 {
		return nil, errors.New("need at least 3 points to build a probe map")
	}

	m := &Map{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
	points2d := make([]delaunay.Point, len(points))
	for i, p := range points {
		m.minX = math.Min(m.minX, p.X)
		m.minY = math.Min(m.minY, p.Y)
		m.maxX = math.Max(m.maxX, p.X)
		m.maxY = math.Max(m.maxY, p.Y)
		points2d[i] = delaunay.Point{X: p.X, Y: p.Y}
	}

	dt, err := delaunay.Triangulate(points2d)
	if err != nil {
		return nil, err
	}

	// dt.Triangles indexes the input points in order, so the probed
	// Z values carry over directly
	for i := 0; i+3 <= len(dt.Triangles); i += 3 {
		t, ok := newTri(
			points[dt.Triangles[i]],
			points[dt.Triangles[i+1]],
			points[dt.Triangles[i+2]])
		if ok {
			m.triangles = append(m.triangles, t)
		}
	}
	if len(m.triangles) == 0 {
		return nil, errors.New("probed points are collinear")
	}

	return m, nil
}

// SurfaceZ returns the interpolated surface height at x,y; ok is
// false outside the probed region.
func (m *Map) SurfaceZ(x, y float64) (z float64, ok bool) {
	if x < m.minX || x > m.maxX || y < m.minY || y > m.maxY {
		return 0, false
	}
	for _, t := range m.triangles {
		u, v := t.bary(x, y)
		if t.contains(u, v) {
			return t.z(u, v), true
		}
	}
	return 0, false
}

// ReadSamples parses probe-log lines: nine space-separated floats per
// line, of which X, Y and Z are kept. Blank lines are skipped.
func ReadSamples(r io.Reader) ([]coord.Point, error) {
	var points []coord.Point
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var p coord.Pose
		_, err := fmt.Sscanf(line, "%f %f %f %f %f %f %f %f %f",
			&p.X, &p.Y, &p.Z, &p.A, &p.B, &p.C, &p.U, &p.V, &p.W)
		if err != nil {
			return nil, fmt.Errorf("parse probe sample %q: %w", line, err)
		}
		points = append(points, p.Tran())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return points, nil
}
