package obj

import (
	"slices"

	"github.com/oliverbestmann/wavefront/glm"
)

// Triangulate splits the faces of all subgroups into triangles and returns the
// number of triangles added. Subgroups that already hold triangles are skipped,
// so calling Triangulate repeatedly is harmless.
func (doc *Document) Triangulate() int {
	var tri triangulator

	var count int
	for _, group := range doc.Groups {
		for _, sub := range group.Subgroups {
			count += tri.subgroup(sub, doc.Vertices)
		}
	}

	return count
}

// Triangulate splits the faces of the subgroup into triangles, looking up corner
// positions in vertices. It does nothing if the subgroup already has triangles.
func (s *Subgroup) Triangulate(vertices []Vertex) int {
	var tri triangulator
	return tri.subgroup(s, vertices)
}

// triangulator keeps scratch buffers that are reused between faces.
type triangulator struct {
	positions []Vertex
	projected []glm.Vec2[Real]
	ring      []int
}

func (t *triangulator) subgroup(sub *Subgroup, vertices []Vertex) int {
	if len(sub.Triangles) > 0 {
		return 0
	}

	// a face with n corners yields up to n-2 triangles
	sub.Triangles = make([]Triangle, 0, max(0, len(sub.Index)-2*len(sub.Faces)))

	for face := range sub.Faces {
		corners := sub.FaceCorners(face)

		t.positions = t.positions[:0]
		for _, corner := range corners {
			t.positions = append(t.positions, vertices[sub.Corners[corner].VertexIndex()])
		}

		if len(corners) < 4 || t.convex(corners) {
			sub.Triangles = fan(sub.Triangles, corners)
		} else {
			sub.Triangles = t.clipEars(sub.Triangles, corners)
		}
	}

	return len(sub.Triangles)
}

// convex reports whether the polygon turns in the same direction at
// every corner. Straight and repeated corners are ignored.
func (t *triangulator) convex(corners []uint32) bool {
	count := len(corners)

	var reference Vertex
	var hasReference bool

	for idx := range count {
		a, b, c := idx, (idx+1)%count, (idx+2)%count
		if corners[a] == corners[b] || corners[b] == corners[c] || corners[a] == corners[c] {
			continue
		}

		turn := turnNormal(t.positions[a], t.positions[b], t.positions[c])

		if !hasReference {
			if !isZeroVec(turn) {
				reference = turn
				hasReference = true
			}

			continue
		}

		if reference.Dot(turn) < 0 {
			return false
		}
	}

	return true
}

// fan splits a convex polygon into triangles sharing the first corner.
// Triangles using a corner twice are dropped.
func fan(triangles []Triangle, corners []uint32) []Triangle {
	for idx := 1; idx+1 < len(corners); idx++ {
		a, b, c := corners[0], corners[idx], corners[idx+1]
		if a == b || b == c || a == c {
			continue
		}

		triangles = append(triangles, Triangle{a, b, c})
	}

	return triangles
}

// clipEars triangulates a concave or non planar polygon by projecting it onto a
// plane and repeatedly cutting off ears.
func (t *triangulator) clipEars(triangles []Triangle, corners []uint32) []Triangle {
	count := len(corners)

	var normal, axisX Vertex
	var hasPlane bool

	for idx := range count {
		a, b, c := t.positions[idx], t.positions[(idx+1)%count], t.positions[(idx+2)%count]

		normal = turnNormal(a, b, c)
		if !isZeroVec(normal) {
			axisX = b.Sub(a).Normalize()
			hasPlane = true
			break
		}
	}

	if !hasPlane {
		// all corners are on a line
		return triangles
	}

	axisY := normal.Cross(axisX).Normalize()

	origin := t.positions[0]

	t.projected = t.projected[:0]
	for _, position := range t.positions {
		rel := position.Sub(origin)
		t.projected = append(t.projected, glm.Vec2[Real]{rel.Dot(axisX), rel.Dot(axisY)})
	}

	var area Real
	for idx := range count {
		area += t.projected[idx].Cross(t.projected[(idx+1)%count])
	}

	var winding Real
	switch {
	case area > 0:
		winding = 1
	case area < 0:
		winding = -1
	default:
		return triangles
	}

	ring := t.ring[:0]
	for idx := range count {
		ring = append(ring, idx)
	}

	defer func() { t.ring = ring }()

	var at, stalled int
	for len(ring) > 3 && stalled < len(ring) {
		if at >= len(ring) {
			at = 0
		}

		prev := ring[(at+len(ring)-1)%len(ring)]
		cur := ring[at]
		next := ring[(at+1)%len(ring)]

		if corners[prev] == corners[cur] || corners[cur] == corners[next] || corners[prev] == corners[next] {
			// collapse repeated corners
			ring = slices.Delete(ring, at, at+1)
			stalled = 0
			continue
		}

		if t.isEar(ring, corners, prev, cur, next, winding) {
			triangles = append(triangles, Triangle{corners[prev], corners[cur], corners[next]})
			ring = slices.Delete(ring, at, at+1)
			stalled = 0
			continue
		}

		at++
		stalled++
	}

	if len(ring) == 3 {
		a, b, c := corners[ring[0]], corners[ring[1]], corners[ring[2]]
		if a != b && b != c && a != c {
			triangles = append(triangles, Triangle{a, b, c})
		}
	}

	return triangles
}

// isEar reports whether the triangle prev, cur, next has the winding of the
// polygon and contains no other corner of the ring.
func (t *triangulator) isEar(ring []int, corners []uint32, prev, cur, next int, winding Real) bool {
	a, b, c := t.projected[prev], t.projected[cur], t.projected[next]

	area := b.Sub(a).Cross(c.Sub(a))
	if area*winding <= 0 {
		return false
	}

	for _, idx := range ring {
		if idx == prev || idx == cur || idx == next {
			continue
		}

		// the same corner may appear multiple times in a face
		corner := corners[idx]
		if corner == corners[prev] || corner == corners[cur] || corner == corners[next] {
			continue
		}

		if insideTriangle(t.projected[idx], a, b, c) {
			return false
		}
	}

	return true
}

// insideTriangle reports whether p lies inside or on the boundary of the
// triangle a, b, c. It is evaluated in float64 so that points close to an edge
// do not flip sides.
func insideTriangle(p, a, b, c glm.Vec2[Real]) bool {
	pd, ad, bd, cd := widen(p), widen(a), widen(b), widen(c)

	d1 := bd.Sub(ad).Cross(pd.Sub(ad))
	d2 := cd.Sub(bd).Cross(pd.Sub(bd))
	d3 := ad.Sub(cd).Cross(pd.Sub(cd))

	negative := d1 < 0 || d2 < 0 || d3 < 0
	positive := d1 > 0 || d2 > 0 || d3 > 0

	return !(negative && positive)
}

func widen(v glm.Vec2[Real]) glm.Vec2d {
	return glm.Vec2d{float64(v[0]), float64(v[1])}
}

// turnNormal returns the cross product of the normalized edges a->b and b->c.
// Its length is the sine of the turning angle at b, independent of the
// size of the polygon.
func turnNormal(a, b, c Vertex) Vertex {
	return b.Sub(a).Normalize().Cross(c.Sub(b).Normalize())
}

func isZero(value Real) bool {
	return value < epsilon && value > -epsilon
}

func isZeroVec(v Vertex) bool {
	return isZero(v[0]) && isZero(v[1]) && isZero(v[2])
}
