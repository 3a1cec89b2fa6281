package obj

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

const brickLibrary = `
# stray attributes are dropped
Kd 1 0 0

newmtl brick
Ka 0.1
Kd 0.2 0.4
Ks 0.3 0.2 0.1
Ke 0 0 0.5
Tf 0.7 0.8
d 0.5
Ns 96
map_Ka brick_ambient.png
map_Kd textures/brick.png
map_Ks -o 1 1 1 brick_spec.png
map_Ke glow.png
map_d alpha.png
map_Ns shiny.png
map_bump bump.png
illum 2

newmtl
`

func TestReadMaterials(t *testing.T) {
	materials, err := ReadMaterials(strings.NewReader(brickLibrary), 0)
	if err != nil {
		t.Fatal(err)
	}

	if len(materials) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(materials))
	}

	expected := Material{
		Name:             "brick",
		Ambient:          Gray(0.1),
		Diffuse:          RGB(0.2, 0.4, 0.4),
		Specular:         RGB(0.3, 0.2, 0.1),
		Emissive:         RGB(0, 0, 0.5),
		Transmission:     RGB(0.7, 0.8, 0.8),
		Dissolve:         0.5,
		Shininess:        96,
		AmbientTexture:   "brick_ambient.png",
		DiffuseTexture:   "textures/brick.png",
		SpecularTexture:  "-o",
		EmissiveTexture:  "glow.png",
		DissolveTexture:  "alpha.png",
		ShininessTexture: "shiny.png",
		BumpTexture:      "bump.png",
	}

	if !reflect.DeepEqual(materials[0], expected) {
		t.Errorf("expected %+v, got %+v", expected, materials[0])
	}

	if !reflect.DeepEqual(materials[1], DefaultMaterial(unnamed)) {
		t.Errorf("expected an unnamed default material, got %+v", materials[1])
	}
}

func TestDefaultMaterial(t *testing.T) {
	material := DefaultMaterial("plain")

	if material.Diffuse != ColorWhite || material.Ambient != ColorBlack || material.Specular != ColorBlack {
		t.Errorf("unexpected colors in %+v", material)
	}

	if material.Emissive != ColorBlack || material.Transmission != ColorBlack {
		t.Errorf("unexpected emissive or transmission color in %+v", material)
	}

	if material.Dissolve != 1 || material.Shininess != 1 {
		t.Errorf("unexpected factors in %+v", material)
	}
}

func TestReadMaterialsColorShorthand(t *testing.T) {
	cases := []struct {
		line     string
		expected Color
	}{
		{"Kd 0.5", Gray(0.5)},
		{"Kd 0.2 0.4", RGB(0.2, 0.4, 0.4)},
		{"Kd 0.2 0.4 0.6", RGB(0.2, 0.4, 0.6)},
		{"Kd 0.2 0.4 0.6 0.8", RGB(0.2, 0.4, 0.6)},
		{"Kd", ColorWhite},
	}

	for _, tc := range cases {
		materials, err := ReadMaterials(strings.NewReader("newmtl m\n"+tc.line), 0)
		if err != nil {
			t.Fatal(err)
		}

		if materials[0].Diffuse != tc.expected {
			t.Errorf("%q: expected %v, got %v", tc.line, tc.expected, materials[0].Diffuse)
		}
	}
}

func TestReadMaterialsWithoutNewMaterial(t *testing.T) {
	materials, err := ReadMaterials(strings.NewReader("Kd 1 1 1\nNs 10\n"), 0)
	if err != nil {
		t.Fatal(err)
	}

	if len(materials) != 0 {
		t.Errorf("expected no materials, got %+v", materials)
	}
}

func TestReadMaterialsReaderError(t *testing.T) {
	errBroken := errors.New("broken")

	r := io.MultiReader(strings.NewReader("newmtl a\nKd 1 0 0\n"), iotest.ErrReader(errBroken))

	materials, err := ReadMaterials(r, 0)
	if !errors.Is(err, errBroken) {
		t.Errorf("expected error %v, got %v", errBroken, err)
	}

	if len(materials) != 1 || materials[0].Diffuse != RGB(1, 0, 0) {
		t.Errorf("expected the material read before the error, got %+v", materials)
	}

	if _, err := ReadMaterials(nil, 0); !errors.Is(err, ErrNilReader) {
		t.Errorf("expected ErrNilReader, got %v", err)
	}
}
