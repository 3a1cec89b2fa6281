// Package obj decodes Wavefront OBJ geometry and the MTL material libraries it
// references into a Document, and triangulates the polygonal faces of a Document.
//
// Faces are stored per Subgroup as runs of indices into a table of corners. A corner
// is a unique combination of vertex, normal and texture coordinate within its
// Subgroup, so vertices shared between faces are stored once.
//
//	var doc obj.Document
//	if err := obj.NewLoader(obj.Config{}).ReadFile(&doc, "model.obj"); err != nil {
//		return err
//	}
//
//	doc.Triangulate()
package obj
