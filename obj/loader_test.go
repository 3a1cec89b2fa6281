package obj

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const twoMaterials = "newmtl red\nKd 1 0 0\nnewmtl green\nKd 0 1 0\n"

type countingCloser struct {
	io.Reader
	closed *int
}

func (c countingCloser) Close() error {
	*c.closed++
	return nil
}

// libraryOpener serves material libraries from memory and counts how often
// they are opened and closed.
type libraryOpener struct {
	files  map[string]string
	opened int
	closed int
}

func (o *libraryOpener) Open(path string) (io.ReadCloser, error) {
	content, ok := o.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}

	o.opened++
	return countingCloser{Reader: strings.NewReader(content), closed: &o.closed}, nil
}

func TestLoaderMaterialLibraryFromOpener(t *testing.T) {
	opener := &libraryOpener{files: map[string]string{"colors.mtl": twoMaterials}}

	input := square + "mtllib colors.mtl\nusemtl red\nf 1 2 3\nusemtl red\nf 1 3 4\nusemtl green\nf 2 3 4\nusemtl\nf 1 2 4\n"

	var doc Document
	if err := NewLoader(Config{Open: opener.Open}).Read(&doc, strings.NewReader(input)); err != nil {
		t.Fatal(err)
	}

	if len(doc.Materials) != 2 || doc.Materials[1].Name != "green" {
		t.Fatalf("expected two materials, got %+v", doc.Materials)
	}

	if opener.closed != opener.opened {
		t.Errorf("expected every library to be closed, opened %d, closed %d", opener.opened, opener.closed)
	}

	if len(doc.Groups) != 1 {
		t.Fatalf("expected one group, got %d", len(doc.Groups))
	}

	subgroups := doc.Groups[0].Subgroups

	var materials []int
	var faces []int
	for _, sub := range subgroups {
		materials = append(materials, sub.Material)
		faces = append(faces, len(sub.Faces))
	}

	if len(subgroups) != 3 {
		t.Fatalf("expected 3 subgroups, got materials %v", materials)
	}

	if materials[0] != 0 || materials[1] != 1 || materials[2] != NoMaterial {
		t.Errorf("unexpected subgroup materials %v", materials)
	}

	if faces[0] != 2 || faces[1] != 1 || faces[2] != 1 {
		t.Errorf("unexpected faces per subgroup %v", faces)
	}
}

func TestLoaderMaterialLibraryIsCached(t *testing.T) {
	opener := &libraryOpener{files: map[string]string{"colors.mtl": twoMaterials}}
	loader := NewLoader(Config{Open: opener.Open})

	for range 3 {
		var doc Document
		if err := loader.Read(&doc, strings.NewReader("mtllib colors.mtl\n")); err != nil {
			t.Fatal(err)
		}

		if len(doc.Materials) != 2 {
			t.Fatalf("expected two materials, got %d", len(doc.Materials))
		}

		// the cached library must not be changed through the document
		doc.Materials[0].Name = "changed"
	}

	if opener.opened != 1 {
		t.Errorf("expected the library to be opened once, got %d", opener.opened)
	}

	var doc Document
	if err := loader.Read(&doc, strings.NewReader("mtllib colors.mtl\n")); err != nil {
		t.Fatal(err)
	}

	if doc.Materials[0].Name != "red" {
		t.Errorf("expected cached material to be unchanged, got %q", doc.Materials[0].Name)
	}
}

func TestLoaderMaterialLibraryMissing(t *testing.T) {
	doc := readString(t, square+"mtllib does-not-exist.mtl\nusemtl red\nf 1 2 3\n")

	if len(doc.Materials) != 0 {
		t.Errorf("expected no materials, got %d", len(doc.Materials))
	}

	if sub := singleSubgroup(t, doc); sub.Material != NoMaterial || len(sub.Faces) != 1 {
		t.Error("expected parsing to continue after a missing library")
	}
}

func TestLoaderMaterialLibraryRelativeToBasePath(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "colors.mtl"), twoMaterials)
	writeFile(t, filepath.Join(dir, "model.obj"), square+"mtllib colors.mtl\nusemtl green\nf 1 2 3\n")

	var doc Document
	if err := NewLoader(Config{}).ReadFile(&doc, filepath.Join(dir, "model.obj")); err != nil {
		t.Fatal(err)
	}

	if len(doc.Materials) != 2 {
		t.Fatalf("expected two materials, got %d", len(doc.Materials))
	}

	if sub := singleSubgroup(t, &doc); sub.Material != 1 {
		t.Errorf("expected material 1, got %d", sub.Material)
	}
}

func TestLoaderMaterialLibraryFromSearchPath(t *testing.T) {
	models := t.TempDir()
	libraries := t.TempDir()

	writeFile(t, filepath.Join(libraries, "shared.mtl"), "newmtl shared\nKd 0.5\n")
	writeFile(t, filepath.Join(models, "model.obj"), "mtllib shared.mtl other.mtl\n")

	loader := NewLoader(Config{SearchPaths: []string{t.TempDir(), libraries}})

	var doc Document
	if err := loader.ReadFile(&doc, filepath.Join(models, "model.obj")); err != nil {
		t.Fatal(err)
	}

	if len(doc.Materials) != 1 || doc.Materials[0].Diffuse != Gray(0.5) {
		t.Errorf("expected the shared material, got %+v", doc.Materials)
	}
}

func TestConfigResolveOrder(t *testing.T) {
	base := t.TempDir()
	search := t.TempDir()

	writeFile(t, filepath.Join(base, "a.mtl"), "")
	writeFile(t, filepath.Join(search, "a.mtl"), "")
	writeFile(t, filepath.Join(search, "b.mtl"), "")

	opener := &libraryOpener{files: map[string]string{"c.mtl": ""}}
	config := Config{Open: opener.Open, SearchPaths: []string{search}}

	cases := map[string]string{
		"a.mtl": filepath.Join(base, "a.mtl"),
		"b.mtl": filepath.Join(search, "b.mtl"),
		"c.mtl": "c.mtl",
	}

	for path, expected := range cases {
		stream, resolved, ok := config.resolve(base, path)
		if !ok {
			t.Errorf("%s: expected the file to be found", path)
			continue
		}

		_ = stream.Close()

		if resolved != expected {
			t.Errorf("%s: expected %q, got %q", path, expected, resolved)
		}
	}

	if _, _, ok := config.resolve(base, "d.mtl"); ok {
		t.Error("expected d.mtl not to be found")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
