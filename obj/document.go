package obj

import "github.com/oliverbestmann/wavefront/glm"

// NoCorner terminates a chain of corners sharing the same vertex.
const NoCorner = -1

// NoMaterial is the material index of subgroups without an active material.
const NoMaterial = -1

const unnamed = "__unnamed"

type Vertex = glm.Vec3[Real]
type Normal = glm.Vec3[Real]
type UV = glm.Vec2[Real]

// Corner is a unique combination of vertex, normal and texture coordinate
// within a Subgroup.
type Corner struct {
	// Vertex index plus one, always greater than zero.
	Vertex uint32

	// Normal index plus one, zero if the corner has no normal.
	Normal uint32

	// UV index plus one, zero if the corner has no texture coordinate.
	UV uint32

	// Next is the index of the next corner with the same vertex but
	// different attributes, or NoCorner.
	Next int32
}

// VertexIndex returns the zero based index into Document.Vertices.
func (c Corner) VertexIndex() int {
	return int(c.Vertex) - 1
}

func (c Corner) NormalIndex() (int, bool) {
	return int(c.Normal) - 1, c.Normal > 0
}

func (c Corner) UVIndex() (int, bool) {
	return int(c.UV) - 1, c.UV > 0
}

// Face is a polygon of Count corner indices starting at Offset in Subgroup.Index.
type Face struct {
	Count  uint32
	Offset uint32
}

// Triangle holds three indices into Subgroup.Corners.
type Triangle [3]uint32

// Subgroup holds all faces of a Group that share the same material.
type Subgroup struct {
	// Material is an index into Document.Materials or NoMaterial.
	Material int

	Faces   []Face
	Index   []uint32
	Corners []Corner

	// Triangles is filled by Triangulate.
	Triangles []Triangle

	// maps a zero based vertex index to the first corner using it
	vertexCorner []int32
}

func newSubgroup(material int, vertexHint int) *Subgroup {
	// a closed triangle mesh has about twice as many faces as vertices
	hint := max(vertexHint, 16)

	return &Subgroup{
		Material:     material,
		Faces:        make([]Face, 0, 2*hint),
		Index:        make([]uint32, 0, 6*hint),
		Corners:      make([]Corner, 0, hint),
		vertexCorner: make([]int32, 0, hint),
	}
}

// FaceCorners returns the corner indices of the given face.
func (s *Subgroup) FaceCorners(face int) []uint32 {
	f := s.Faces[face]
	return s.Index[f.Offset : f.Offset+f.Count : f.Offset+f.Count]
}

type Group struct {
	Name      string
	Subgroups []*Subgroup
}

// Document is the decoded content of an OBJ file together with the
// materials of all referenced material libraries.
type Document struct {
	// BasePath is the directory material library references are resolved against.
	BasePath string

	Vertices  []Vertex
	Normals   []Normal
	UVs       []UV
	Materials []Material
	Groups    []*Group
}

// Release drops everything the document holds.
func (doc *Document) Release() {
	*doc = Document{}
}

// MaterialIndex returns the index of the first material with the
// given name, or NoMaterial.
func (doc *Document) MaterialIndex(name string) int {
	for idx := range doc.Materials {
		if doc.Materials[idx].Name == name {
			return idx
		}
	}

	return NoMaterial
}

func (doc *Document) FaceCount() int {
	var count int
	for _, group := range doc.Groups {
		for _, sub := range group.Subgroups {
			count += len(sub.Faces)
		}
	}

	return count
}

func (doc *Document) TriangleCount() int {
	var count int
	for _, group := range doc.Groups {
		for _, sub := range group.Subgroups {
			count += len(sub.Triangles)
		}
	}

	return count
}
