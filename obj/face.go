package obj

import (
	"bytes"
	"log/slog"
	"slices"
	"strconv"
)

// faceCorner is a resolved corner reference of a face directive. All
// indices are one based, zero marks an absent normal or uv.
type faceCorner struct {
	vertex uint32
	normal uint32
	uv     uint32
}

// face decodes a face directive. All corners are resolved before the
// subgroup is touched, so a rejected face leaves no trace.
func (p *parser) face(args [][]byte) {
	corners := p.corners[:0]
	defer func() { p.corners = corners }()

	for _, arg := range args {
		corner, ok := p.resolveCorner(arg)
		if !ok {
			slog.Debug("Discarding face with invalid vertex reference",
				slog.Int("line", p.tokens.Line()),
				slog.String("corner", string(arg)),
			)

			return
		}

		corners = append(corners, corner)
	}

	if len(corners) < 3 {
		slog.Debug("Discarding face with less than three corners",
			slog.Int("line", p.tokens.Line()),
			slog.Int("corners", len(corners)),
		)

		return
	}

	sub := p.activeSubgroup()

	face := Face{Offset: uint32(len(sub.Index))}
	for _, corner := range corners {
		sub.Index = append(sub.Index, sub.corner(corner))
		face.Count++
	}

	sub.Faces = append(sub.Faces, face)
}

// resolveCorner decodes a corner token of the form v, v/t, v//n or v/t/n.
func (p *parser) resolveCorner(token []byte) (faceCorner, bool) {
	vertex, rest, _ := bytes.Cut(token, []byte{'/'})
	uv, normal, _ := bytes.Cut(rest, []byte{'/'})

	corner := faceCorner{
		vertex: resolveIndex(parseIndex(vertex), len(p.doc.Vertices)),
		normal: resolveIndex(parseIndex(normal), len(p.doc.Normals)),
		uv:     resolveIndex(parseIndex(uv), len(p.doc.UVs)),
	}

	return corner, corner.vertex != 0
}

// parseIndex parses an index component, an empty or malformed
// component yields zero.
func parseIndex(token []byte) int64 {
	if len(token) == 0 {
		return 0
	}

	value, err := strconv.ParseInt(string(token), 10, 64)
	if err != nil {
		return 0
	}

	return value
}

// resolveIndex turns a one based or negative, relative index into a one based
// index into a sequence of the given length. Zero is returned for indices out
// of range.
func resolveIndex(value int64, count int) uint32 {
	if value < 0 {
		value += int64(count) + 1
	}

	if value < 1 || value > int64(count) {
		return 0
	}

	return uint32(value)
}

// corner returns the index of the corner matching the reference, adding a new
// corner if no existing one matches. A corner matches if its normal and uv are
// either equal to the requested ones, or one of them is absent. Absent values
// of the matched corner are filled in from the request.
func (s *Subgroup) corner(ref faceCorner) uint32 {
	slot := int(ref.vertex) - 1

	if missing := slot + 1 - len(s.vertexCorner); missing > 0 {
		s.vertexCorner = append(s.vertexCorner, slices.Repeat([]int32{NoCorner}, missing)...)
	}

	at := s.vertexCorner[slot]
	if at == NoCorner {
		idx := s.appendCorner(ref)
		s.vertexCorner[slot] = int32(idx)
		return idx
	}

	for {
		stored := &s.Corners[at]

		if attributeMatches(stored.Normal, ref.normal) && attributeMatches(stored.UV, ref.uv) {
			if stored.Normal == 0 {
				stored.Normal = ref.normal
			}

			if stored.UV == 0 {
				stored.UV = ref.uv
			}

			return uint32(at)
		}

		if stored.Next == NoCorner {
			break
		}

		at = stored.Next
	}

	// link the new corner at the tail of the chain
	idx := s.appendCorner(ref)
	s.Corners[at].Next = int32(idx)

	return idx
}

func (s *Subgroup) appendCorner(ref faceCorner) uint32 {
	s.Corners = append(s.Corners, Corner{
		Vertex: ref.vertex,
		Normal: ref.normal,
		UV:     ref.uv,
		Next:   NoCorner,
	})

	return uint32(len(s.Corners) - 1)
}

func attributeMatches(stored, requested uint32) bool {
	return stored == 0 || requested == 0 || stored == requested
}
