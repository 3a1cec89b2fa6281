package obj

import (
	"fmt"
	"io"
)

// Material is a single material of a material library.
type Material struct {
	Name string

	Ambient      Color
	Diffuse      Color
	Specular     Color
	Emissive     Color
	Transmission Color

	Dissolve  Real
	Shininess Real

	// paths of texture maps, exactly as found in the material library
	AmbientTexture   string
	DiffuseTexture   string
	SpecularTexture  string
	EmissiveTexture  string
	DissolveTexture  string
	ShininessTexture string
	BumpTexture      string
}

// DefaultMaterial returns an opaque white material with the given name.
func DefaultMaterial(name string) Material {
	return Material{
		Name:         name,
		Ambient:      ColorBlack,
		Diffuse:      ColorWhite,
		Specular:     ColorBlack,
		Emissive:     ColorBlack,
		Transmission: ColorBlack,
		Dissolve:     1,
		Shininess:    1,
	}
}

// ReadMaterials parses a material library. Attributes before the first newmtl
// directive are dropped, unknown directives are ignored. The returned error only
// reports failures of the reader, the materials parsed up to that point are
// returned as well.
func ReadMaterials(r io.Reader, bufferSize int) ([]Material, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	tokens := NewTokenizer(r, bufferSize)

	var materials []Material

	var current Material
	var hasCurrent bool

	for tokens.Next() {
		args := tokens.Args()

		d := lookupDirective(tokens.Command())
		if d == directiveNewMaterial {
			if hasCurrent {
				materials = append(materials, current)
			}

			name := unnamed
			if len(args) > 0 {
				name = string(args[0])
			}

			current = DefaultMaterial(name)
			hasCurrent = true
			continue
		}

		if !hasCurrent {
			continue
		}

		switch d {
		case directiveAmbient:
			current.Ambient = parseColor(args, current.Ambient)
		case directiveDiffuse:
			current.Diffuse = parseColor(args, current.Diffuse)
		case directiveSpecular:
			current.Specular = parseColor(args, current.Specular)
		case directiveEmissive:
			current.Emissive = parseColor(args, current.Emissive)
		case directiveTransmission:
			current.Transmission = parseColor(args, current.Transmission)

		case directiveDissolve:
			current.Dissolve = parseScalar(args, current.Dissolve)
		case directiveShininess:
			current.Shininess = parseScalar(args, current.Shininess)

		case directiveAmbientMap:
			current.AmbientTexture = parseTexture(args, current.AmbientTexture)
		case directiveDiffuseMap:
			current.DiffuseTexture = parseTexture(args, current.DiffuseTexture)
		case directiveSpecularMap:
			current.SpecularTexture = parseTexture(args, current.SpecularTexture)
		case directiveEmissiveMap:
			current.EmissiveTexture = parseTexture(args, current.EmissiveTexture)
		case directiveDissolveMap:
			current.DissolveTexture = parseTexture(args, current.DissolveTexture)
		case directiveShininessMap:
			current.ShininessTexture = parseTexture(args, current.ShininessTexture)
		case directiveBumpMap:
			current.BumpTexture = parseTexture(args, current.BumpTexture)
		}
	}

	if hasCurrent {
		materials = append(materials, current)
	}

	if err := tokens.Err(); err != nil {
		return materials, fmt.Errorf("read materials: %w", err)
	}

	return materials, nil
}

// parseColor reads up to three components. Missing components repeat
// the previous one, so a single value describes a gray.
func parseColor(args [][]byte, fallback Color) Color {
	if len(args) == 0 {
		return fallback
	}

	color := Gray(parseReal(args[0]))

	if len(args) > 1 {
		color.G = parseReal(args[1])
		color.B = color.G
	}

	if len(args) > 2 {
		color.B = parseReal(args[2])
	}

	return color
}

func parseScalar(args [][]byte, fallback Real) Real {
	if len(args) == 0 {
		return fallback
	}

	return parseReal(args[0])
}

func parseTexture(args [][]byte, fallback string) string {
	if len(args) == 0 {
		return fallback
	}

	return string(args[0])
}
