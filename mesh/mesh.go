// Package mesh flattens triangulated OBJ documents into an indexed triangle mesh
// that can be uploaded to a vertex buffer.
package mesh

import (
	"errors"
	"log/slog"

	"github.com/oliverbestmann/wavefront/glm"
	"github.com/oliverbestmann/wavefront/obj"
)

var ErrNotImplemented = errors.New("mesh: not implemented")

// Vertex references one coordinate, normal and uv. Missing normals
// and uvs reference index zero.
type Vertex struct {
	Coordinate uint32
	Normal     uint32
	UV         uint32
}

// Triangle holds three indices into Mesh.Vertices.
type Triangle [3]uint32

// Mesh is an indexed triangle mesh.
type Mesh struct {
	// Coordinates have a w component of one.
	Coordinates []glm.Vec4[obj.Real]

	// Normals have a w component of zero.
	Normals []glm.Vec4[obj.Real]

	UVs []glm.Vec2[obj.Real]

	Vertices  []Vertex
	Triangles []Triangle
}

// FromDocument converts the triangles of all subgroups of the document into a
// mesh. Every triangle corner becomes its own vertex. Faces of documents that
// were not triangulated are not part of the mesh.
func FromDocument(doc *obj.Document) *Mesh {
	if doc == nil {
		return nil
	}

	triangleCount := doc.TriangleCount()

	mesh := &Mesh{
		Coordinates: make([]glm.Vec4[obj.Real], 0, len(doc.Vertices)),
		Normals:     make([]glm.Vec4[obj.Real], 0, len(doc.Normals)),
		UVs:         make([]glm.Vec2[obj.Real], 0, len(doc.UVs)),
		Vertices:    make([]Vertex, 0, 3*triangleCount),
		Triangles:   make([]Triangle, 0, triangleCount),
	}

	for _, vertex := range doc.Vertices {
		mesh.Coordinates = append(mesh.Coordinates, vertex.Extend(1))
	}

	for _, normal := range doc.Normals {
		mesh.Normals = append(mesh.Normals, normal.Extend(0))
	}

	mesh.UVs = append(mesh.UVs, doc.UVs...)

	for _, group := range doc.Groups {
		for _, sub := range group.Subgroups {
			for _, tri := range sub.Triangles {
				var triangle Triangle
				for idx, corner := range tri {
					triangle[idx] = mesh.addVertex(sub.Corners[corner])
				}

				mesh.Triangles = append(mesh.Triangles, triangle)
			}
		}
	}

	slog.Debug("Transcoded document to mesh",
		slog.Int("vertices", len(mesh.Vertices)),
		slog.Int("triangles", len(mesh.Triangles)),
	)

	return mesh
}

func (m *Mesh) addVertex(corner obj.Corner) uint32 {
	var vertex Vertex

	vertex.Coordinate = uint32(max(corner.VertexIndex(), 0))

	if normal, ok := corner.NormalIndex(); ok {
		vertex.Normal = uint32(normal)
	}

	if uv, ok := corner.UVIndex(); ok {
		vertex.UV = uint32(uv)
	}

	m.Vertices = append(m.Vertices, vertex)
	return uint32(len(m.Vertices) - 1)
}

// ToDocument converts a mesh back into an OBJ document. This direction
// is not supported yet.
func ToDocument(mesh *Mesh, doc *obj.Document) error {
	if mesh == nil || doc == nil {
		return nil
	}

	slog.Error("Converting a mesh to an obj document is not implemented")
	return ErrNotImplemented
}
