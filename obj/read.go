package obj

import (
	"strconv"

	"github.com/oliverbestmann/wavefront/glm"
)

// parser holds the state of a single Loader.Read call.
type parser struct {
	loader *Loader
	doc    *Document
	tokens *Tokenizer

	// currently open group and subgroup, nil if the next face opens a new one
	group    *Group
	subgroup *Subgroup

	// name of the next group to open
	groupName string

	// active material index or NoMaterial
	material int

	// used to size the tables of the next subgroup
	verticesSinceGroup int

	// scratch space for the corners of the current face
	corners []faceCorner
}

func (p *parser) run() {
	for p.tokens.Next() {
		args := p.tokens.Args()

		switch lookupDirective(p.tokens.Command()) {
		case directiveVertex:
			p.doc.Vertices = append(p.doc.Vertices, parseVec3(args))
			p.verticesSinceGroup++

		case directiveNormal:
			if p.doc.Normals == nil {
				p.doc.Normals = make([]Normal, 0, max(len(p.doc.Vertices), 64))
			}

			p.doc.Normals = append(p.doc.Normals, parseVec3(args))

		case directiveUV:
			if p.doc.UVs == nil {
				p.doc.UVs = make([]UV, 0, max(len(p.doc.Vertices), 64))
			}

			p.doc.UVs = append(p.doc.UVs, parseVec2(args))

		case directiveGroup:
			p.beginGroup(args)

		case directiveUseMaterial:
			p.useMaterial(args)

		case directiveMaterialLibrary:
			p.loadLibraries(args)

		case directiveFace:
			p.face(args)
		}
	}

	// lookup tables are only needed while faces are added
	for _, group := range p.doc.Groups {
		for _, sub := range group.Subgroups {
			sub.vertexCorner = nil
		}
	}
}

func (p *parser) beginGroup(args [][]byte) {
	p.group = nil
	p.subgroup = nil

	p.groupName = unnamed
	if len(args) > 0 {
		p.groupName = string(args[0])
	}
}

func (p *parser) useMaterial(args [][]byte) {
	var name string
	if len(args) > 0 {
		name = string(args[0])
	}

	material := p.doc.MaterialIndex(name)
	if material != p.material {
		p.material = material
		p.subgroup = nil
	}
}

func (p *parser) loadLibraries(args [][]byte) {
	for _, arg := range args {
		materials, ok := p.loader.library(p.doc.BasePath, string(arg))
		if !ok {
			continue
		}

		p.doc.Materials = append(p.doc.Materials, materials...)
	}
}

// activeSubgroup returns the subgroup new faces are added to, opening a new
// group and subgroup if required.
func (p *parser) activeSubgroup() *Subgroup {
	if p.group == nil {
		p.group = &Group{Name: p.groupName}
		p.doc.Groups = append(p.doc.Groups, p.group)
	}

	if p.subgroup == nil {
		p.subgroup = newSubgroup(p.material, p.verticesSinceGroup)
		p.group.Subgroups = append(p.group.Subgroups, p.subgroup)
		p.verticesSinceGroup = 0
	}

	return p.subgroup
}

func parseVec3(args [][]byte) glm.Vec3[Real] {
	var vec glm.Vec3[Real]
	for idx := 0; idx < len(vec) && idx < len(args); idx++ {
		vec[idx] = parseReal(args[idx])
	}

	return vec
}

func parseVec2(args [][]byte) UV {
	var vec UV
	for idx := 0; idx < len(vec) && idx < len(args); idx++ {
		vec[idx] = parseReal(args[idx])
	}

	return vec
}

// parseReal parses a number, yielding zero for anything malformed.
func parseReal(token []byte) Real {
	value, err := strconv.ParseFloat(string(token), realBits)
	if err != nil {
		return 0
	}

	return Real(value)
}
